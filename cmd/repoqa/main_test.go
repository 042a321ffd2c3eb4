package main

import (
	"testing"

	"github.com/repoqa/repoqa/pkg/config"
)

func TestLoggerSettings_ConfigSectionApplies(t *testing.T) {
	cfg := config.Default()
	cfg.Logger.Level = "debug"
	cfg.Logger.File = "/tmp/repoqa.log"
	cfg.Logger.Format = "verbose"

	cli := &CLI{}
	lc := cli.loggerSettings(cfg)

	if lc.Level != "debug" {
		t.Errorf("Level = %q, want the config file's debug", lc.Level)
	}
	if lc.File != "/tmp/repoqa.log" {
		t.Errorf("File = %q, want the config file's path", lc.File)
	}
	if lc.Format != "verbose" {
		t.Errorf("Format = %q, want the config file's verbose", lc.Format)
	}
}

func TestLoggerSettings_EnvironmentBeatsConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "verbose")

	cfg := config.Default()
	cfg.Logger.Level = "debug"

	cli := &CLI{}
	lc := cli.loggerSettings(cfg)

	if lc.Level != "warn" {
		t.Errorf("Level = %q, want the env var's warn over the config's debug", lc.Level)
	}
	if lc.Format != "verbose" {
		t.Errorf("Format = %q, want the env var's verbose", lc.Format)
	}
}

func TestLoggerSettings_FlagsBeatEnvironmentAndConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FILE", "/tmp/env.log")

	cfg := config.Default()
	cfg.Logger.Level = "debug"

	cli := &CLI{LogLevel: "error", LogFile: "/tmp/flag.log", LogFormat: "simple"}
	lc := cli.loggerSettings(cfg)

	if lc.Level != "error" {
		t.Errorf("Level = %q, want the flag's error", lc.Level)
	}
	if lc.File != "/tmp/flag.log" {
		t.Errorf("File = %q, want the flag's path", lc.File)
	}
	if lc.Format != "simple" {
		t.Errorf("Format = %q, want the flag's simple", lc.Format)
	}
}
