package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the tabgroup demo configuration.
type Config struct {
	Options Options `toml:"options"`
	Log     Log     `toml:"log"`
	Trace   Trace   `toml:"trace"`
	Forms   []Form  `toml:"forms"`
}

// Options mirror the focus controller options.
type Options struct {
	AutoFocus        bool `toml:"auto_focus"`
	UseArrows        bool `toml:"use_arrows"`
	Debug            bool `toml:"debug"`
	PassiveAutoFocus bool `toml:"passive_auto_focus"`
	DisableShiftTab  bool `toml:"disable_shift_tab"`
}

// Log configures the diagnostic log file. An empty path discards logs.
type Log struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Trace configures span export. An empty endpoint keeps spans in-process.
type Trace struct {
	Endpoint    string `toml:"endpoint"`
	ServiceName string `toml:"service_name"`
	Insecure    bool   `toml:"insecure"`
}

// Form is one screen of fields. Switching forms replaces the focus root.
type Form struct {
	Title    string    `toml:"title"`
	Sections []Section `toml:"sections"`
}

// Section groups fields under a heading.
type Section struct {
	Title  string  `toml:"title"`
	Fields []Field `toml:"fields"`
}

// Field is a text input. TabIndex is kept as raw text; an empty value
// leaves the attribute off.
type Field struct {
	Label       string `toml:"label"`
	Placeholder string `toml:"placeholder"`
	TabIndex    string `toml:"tabindex"`
}

const (
	defaultConfigPath  = "~/.config/tabgroup/config.toml"
	defaultLogLevel    = "info"
	debugLogLevel      = "debug"
	defaultServiceName = "tabgroup"
)

// Load locates and parses the config, falling back to defaults when the
// file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	cfg := Config{Forms: defaultForms()}
	cfg.normalize()
	return cfg
}

// LogLevel returns the level the log file is opened at. An explicit level
// wins; otherwise debug mode logs at debug so its diagnostics are kept.
func (c Config) LogLevel() string {
	switch level := strings.ToLower(strings.TrimSpace(c.Log.Level)); {
	case level != "":
		return level
	case c.Options.Debug:
		return debugLogLevel
	default:
		return defaultLogLevel
	}
}

func (c *Config) normalize() {
	c.Log.Path = strings.TrimSpace(c.Log.Path)
	if c.Log.Path != "" {
		c.Log.Path = mustExpand(c.Log.Path)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	c.Trace.Endpoint = strings.TrimSpace(c.Trace.Endpoint)
	c.Trace.ServiceName = strings.TrimSpace(c.Trace.ServiceName)
	if c.Trace.ServiceName == "" {
		c.Trace.ServiceName = defaultServiceName
	}

	if len(c.Forms) == 0 {
		c.Forms = defaultForms()
	}
	for i := range c.Forms {
		if strings.TrimSpace(c.Forms[i].Title) == "" {
			c.Forms[i].Title = fmt.Sprintf("Form %d", i+1)
		}
	}
}

func defaultForms() []Form {
	return []Form{
		{
			Title: "Shipping",
			Sections: []Section{
				{
					Title: "Recipient",
					Fields: []Field{
						{Label: "Last name", TabIndex: "2"},
						{Label: "First name", TabIndex: "1"},
						{Label: "Company", Placeholder: "optional"},
					},
				},
				{
					Title: "Address",
					Fields: []Field{
						{Label: "Postcode", TabIndex: "10"},
						{Label: "Street", TabIndex: "3"},
						{Label: "City", TabIndex: "4"},
						{Label: "Notes", TabIndex: "-1", Placeholder: "skipped"},
					},
				},
			},
		},
		{
			Title: "Login",
			Sections: []Section{
				{
					Title: "Account",
					Fields: []Field{
						{Label: "Password", TabIndex: "2"},
						{Label: "User", TabIndex: "1"},
						{Label: "Remember me", TabIndex: "0"},
					},
				},
			},
		},
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
