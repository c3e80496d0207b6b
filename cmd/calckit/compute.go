package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/iwvelando/calckit/internal/config"
	"github.com/iwvelando/calckit/internal/output"
	"github.com/iwvelando/calckit/pkg/calculator"
	"github.com/iwvelando/calckit/pkg/debounce"
	"github.com/iwvelando/calckit/pkg/format"
	"github.com/iwvelando/calckit/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type computeFlags struct {
	input        string
	outputFormat string
	watch        bool
}

func newComputeCommand(flags *rootFlags) *cobra.Command {
	cf := &computeFlags{}
	cmd := &cobra.Command{
		Use:   "compute <calculator>",
		Short: "Evaluate a calculator on a YAML or JSON input document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := flags.load()
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			outputFormat := a.conf.Output.Format
			if cf.outputFormat != "" {
				outputFormat = cf.outputFormat
			}
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}
			if _, err := a.runner.Registry().Lookup(args[0]); err != nil {
				return err
			}

			renderer := format.NewRenderer(a.conf.Locale)
			compute := func() error {
				return computeOnce(cmd.OutOrStdout(), a.runner, args[0], cf.input, outputFormat, renderer)
			}
			if !cf.watch {
				return compute()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchInput(ctx, a.logger, cf.input, debounce.New(a.conf.Debounce()), compute)
		},
	}
	cmd.Flags().StringVar(&cf.input, "input", "", "path to the input document (required)")
	cmd.Flags().StringVar(&cf.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	cmd.Flags().BoolVar(&cf.watch, "watch", false, "recalculate whenever the input document changes")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// computeOnce evaluates the input document once and writes the outcome.
// Validation failures are part of the output, not an error.
func computeOnce(w io.Writer, runner *calculator.Runner, id, inputPath, outputFormat string, r *format.Renderer) error {
	in, err := config.LoadInput(inputPath)
	if err != nil {
		return err
	}
	out, err := runner.Run(id, in)
	if err != nil {
		return err
	}
	return output.Write(w, outputFormat, out, r)
}

// watchInput calls compute now and after every burst of changes to path
// has settled for the debouncer's delay. It returns when ctx is done.
func watchInput(ctx context.Context, logger *zap.Logger, path string, d *debounce.Debouncer, compute func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	recompute := func() {
		if err := compute(); err != nil {
			logger.Error("recalculation failed",
				zap.String("op", "main.watchInput"),
				zap.String("input", path),
				zap.Error(err),
			)
		}
	}
	recompute()

	for {
		select {
		case <-ctx.Done():
			d.Cancel()
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("input changed",
				zap.String("op", "main.watchInput"),
				zap.String("event", event.Op.String()),
			)
			d.Trigger(recompute)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error",
				zap.String("op", "main.watchInput"),
				zap.Error(err),
			)
		}
	}
}
