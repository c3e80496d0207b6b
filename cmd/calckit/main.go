package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/calckit/internal/config"
	"github.com/iwvelando/calckit/pkg/calculator"
	"github.com/iwvelando/calckit/pkg/catalog"
	"github.com/iwvelando/calckit/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	// Results go to stdout; keep logs off it.
	cfg.OutputPaths = []string{"stderr"}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		cfg.OutputPaths = []string{loggingConfig.OutputFile}
		cfg.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return cfg.Build()
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	conf   *config.Configuration
	logger *zap.Logger
	runner *calculator.Runner
}

type rootFlags struct {
	configPath string
	logLevel   string
	locale     string
}

func (f *rootFlags) load() (*app, error) {
	conf, err := config.LoadConfiguration(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", f.configPath, err)
	}
	if f.locale != "" {
		conf.Locale = f.locale
	}

	logger, err := initializeLogger(conf.Logging, f.logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	registry, err := catalog.Default(logger)
	if err != nil {
		return nil, err
	}
	return &app{conf: conf, logger: logger, runner: calculator.NewRunner(logger, registry, nil)}, nil
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "calckit",
		Short:         "Financial, medical, construction, electrical and time calculators",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.locale, "locale", "", "display locale override (en, ru, de, es, fr, it, pl, tr, pt-BR)")

	root.AddCommand(
		newListCommand(flags),
		newComputeCommand(flags),
		newServeCommand(flags),
		newClockCommand(flags),
		newCountdownCommand(flags),
	)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": %q}\n", err.Error())
		os.Exit(1)
	}
}
