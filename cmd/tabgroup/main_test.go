package main

import (
	"flag"
	"io"
	"testing"

	"tabgroup/internal/config"
)

func parse(t *testing.T, args ...string) flags {
	t.Helper()
	fs := flag.NewFlagSet("tabgroup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f, err := parseFlags(fs, args)
	if err != nil {
		t.Fatalf("parseFlags(%v): %v", args, err)
	}
	return f
}

func TestFlags_UnsetFlagsKeepConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Options.AutoFocus = true
	cfg.Log.Level = "warn"

	parse(t).apply(&cfg)
	if !cfg.Options.AutoFocus {
		t.Error("unset -autofocus cleared the config value")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Log.Level)
	}
}

func TestFlags_ExplicitFlagsOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Options.AutoFocus = true

	parse(t,
		"-autofocus=false", "-arrows", "-debug", "-passive-autofocus", "-no-shift-tab",
		"-log", "/tmp/tg.log", "-log-level", "error", "-otlp-endpoint", "localhost:4318",
	).apply(&cfg)

	want := config.Options{
		AutoFocus:        false,
		UseArrows:        true,
		Debug:            true,
		PassiveAutoFocus: true,
		DisableShiftTab:  true,
	}
	if cfg.Options != want {
		t.Errorf("options = %+v, want %+v", cfg.Options, want)
	}
	if cfg.Log.Path != "/tmp/tg.log" {
		t.Errorf("log path = %q", cfg.Log.Path)
	}
	if got := cfg.LogLevel(); got != "error" {
		t.Errorf("LogLevel() = %q, want explicit error over -debug", got)
	}
	if cfg.Trace.Endpoint != "localhost:4318" {
		t.Errorf("endpoint = %q", cfg.Trace.Endpoint)
	}
}

func TestFlags_DebugRaisesLogLevel(t *testing.T) {
	cfg := config.Default()
	if got := cfg.LogLevel(); got != "info" {
		t.Fatalf("default LogLevel() = %q, want info", got)
	}

	parse(t, "-debug").apply(&cfg)
	if got := cfg.LogLevel(); got != "debug" {
		t.Errorf("LogLevel() with -debug = %q, want debug", got)
	}
}

func TestFlags_UnknownFlagErrors(t *testing.T) {
	fs := flag.NewFlagSet("tabgroup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := parseFlags(fs, []string{"-nope"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestFlags_ConfigPath(t *testing.T) {
	if f := parse(t, "-config", "/etc/tabgroup.toml"); f.configPath != "/etc/tabgroup.toml" {
		t.Errorf("configPath = %q", f.configPath)
	}
}
