package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tabgroup/internal/config"
	"tabgroup/internal/logging"
	"tabgroup/internal/trace"
	"tabgroup/internal/ui"
)

// flags holds the parsed command line. Option flags only override the
// config file when they were given explicitly.
type flags struct {
	configPath string
	logPath    string
	logLevel   string
	endpoint   string

	autoFocus bool
	arrows    bool
	debug     bool
	passive   bool
	noShift   bool

	set map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (flags, error) {
	var f flags

	fs.StringVar(&f.configPath, "config", "", "path to config TOML (default ~/.config/tabgroup/config.toml)")
	fs.StringVar(&f.logPath, "log", "", "write JSON logs to this file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.endpoint, "otlp-endpoint", "", "export debug spans to this OTLP/HTTP endpoint")
	fs.BoolVar(&f.autoFocus, "autofocus", false, "focus the first group member on start")
	fs.BoolVar(&f.arrows, "arrows", false, "arrow keys move through the group")
	fs.BoolVar(&f.debug, "debug", false, "log and trace focus decisions")
	fs.BoolVar(&f.passive, "passive-autofocus", false, "auto-focus without setting the active position")
	fs.BoolVar(&f.noShift, "no-shift-tab", false, "leave shift+tab to native traversal")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: tabgroup [flags]\n\n")
		fmt.Fprintf(fs.Output(), "tabgroup moves focus through form fields in tabindex order.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply overrides cfg with explicitly set flags.
func (f flags) apply(cfg *config.Config) {
	if f.set["autofocus"] {
		cfg.Options.AutoFocus = f.autoFocus
	}
	if f.set["arrows"] {
		cfg.Options.UseArrows = f.arrows
	}
	if f.set["debug"] {
		cfg.Options.Debug = f.debug
	}
	if f.set["passive-autofocus"] {
		cfg.Options.PassiveAutoFocus = f.passive
	}
	if f.set["no-shift-tab"] {
		cfg.Options.DisableShiftTab = f.noShift
	}
	if f.set["log"] {
		cfg.Log.Path = f.logPath
	}
	if f.set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
	if f.set["otlp-endpoint"] {
		cfg.Trace.Endpoint = f.endpoint
	}
}

func run(f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	f.apply(&cfg)

	logger, err := logging.Open(cfg.Log.Path, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	ctx := context.Background()
	tp, err := trace.NewProvider(ctx, trace.Settings{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
		Insecure:    cfg.Trace.Insecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", slog.Any("error", err))
		}
	}()

	logger.Info("starting",
		slog.Int("forms", len(cfg.Forms)),
		slog.Bool("auto_focus", cfg.Options.AutoFocus),
		slog.Bool("use_arrows", cfg.Options.UseArrows),
		slog.Bool("debug", cfg.Options.Debug),
		slog.String("log_level", cfg.LogLevel()),
		slog.Bool("exporting", tp.Exporting()),
	)

	model, err := ui.NewAppModel(cfg, ui.AppOptions{Logger: logger.Logger, TracerProvider: tp})
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	f, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
