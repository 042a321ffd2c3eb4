// Command repoqa answers questions about an indexed codebase.
//
// Usage:
//
//	repoqa search "where is the session cache evicted" --config config.yaml
//	repoqa ask "how does authentication work" --namespaces repo_backend
//	repoqa chat --config config.yaml
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/repoqa/repoqa/pkg/config"
	"github.com/repoqa/repoqa/pkg/logger"
	"github.com/repoqa/repoqa/pkg/observability"
	"github.com/repoqa/repoqa/pkg/runtime"
)

// CLI defines the command-line interface.
type CLI struct {
	Version VersionCmd `cmd:"" help:"Show version information."`
	Search  SearchCmd  `cmd:"" help:"Search the index directly, without the model."`
	Ask     AskCmd     `cmd:"" help:"Ask one question and print the grounded answer."`
	Chat    ChatCmd    `cmd:"" help:"Interactive question-answering session."`

	Config    string `short:"c" help:"Path to config file." type:"path"`
	LogLevel  string `help:"Log level (debug, info, warn, error). Overrides config and LOG_LEVEL."`
	LogFile   string `help:"Log file path (empty = stderr). Overrides config and LOG_FILE."`
	LogFormat string `help:"Log format (simple or verbose). Overrides config and LOG_FORMAT."`
}

// loadConfig reads the config file when one was given, otherwise falls
// back to the zero-config defaults (keys from the environment).
func (cli *CLI) loadConfig() (*config.Config, error) {
	if cli.Config != "" {
		cfg, err := config.LoadFile(cli.Config)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// buildRuntime loads config, initializes logging, and wires the pipeline.
// The returned cleanup closes the runtime, flushes traces, and closes the
// log file.
func (cli *CLI) buildRuntime(ctx context.Context) (*runtime.Runtime, func(), error) {
	cfg, err := cli.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logCleanup, err := initLogger(cli.loggerSettings(cfg))
	if err != nil {
		return nil, nil, err
	}

	tp, err := observability.InitGlobalTracer(ctx, cfg.Tracing)
	if err != nil {
		logCleanup()
		return nil, nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	rt, err := runtime.New(cfg)
	if err != nil {
		logCleanup()
		return nil, nil, err
	}

	cleanup := func() {
		if err := rt.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cleanup error: %v\n", err)
		}
		if shutdown, ok := tp.(interface{ Shutdown(context.Context) error }); ok {
			_ = shutdown.Shutdown(ctx)
		}
		logCleanup()
	}
	return rt, cleanup, nil
}

// loggerSettings merges logging sources. CLI flags win over the LOG_LEVEL,
// LOG_FILE, and LOG_FORMAT environment variables, which win over the
// config file's logger section.
func (cli *CLI) loggerSettings(cfg *config.Config) config.LoggerConfig {
	lc := cfg.Logger
	lc.FromEnvironment()
	if cli.LogLevel != "" {
		lc.Level = cli.LogLevel
	}
	if cli.LogFile != "" {
		lc.File = cli.LogFile
	}
	if cli.LogFormat != "" {
		lc.Format = cli.LogFormat
	}
	return lc
}

func initLogger(lc config.LoggerConfig) (func(), error) {
	level, _ := logger.ParseLevel(lc.Level)

	output := os.Stderr
	cleanup := func() {}
	if lc.File != "" {
		file, closeFile, err := logger.OpenLogFile(lc.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
		cleanup = closeFile
	}

	logger.Init(level, output, lc.Format)
	return cleanup, nil
}

func main() {
	_ = config.LoadEnvFiles()

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("repoqa"),
		kong.Description("repoqa - ask questions against an indexed codebase"),
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
