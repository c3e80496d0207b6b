package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/calckit/pkg/calculator"
	"github.com/iwvelando/calckit/pkg/constants"
	"github.com/iwvelando/calckit/pkg/datetime"
	"github.com/iwvelando/calckit/pkg/format"
	"github.com/iwvelando/calckit/pkg/timecalc"
	"github.com/spf13/cobra"
)

const tickInterval = constants.DefaultTickMillis * time.Millisecond

func newClockCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clock [city...]",
		Short: "Show a live world clock until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := flags.load()
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			in := calculator.Input{}
			if len(args) > 0 {
				in["cities"] = args
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := format.NewRenderer(a.conf.Locale)
			return runLive(ctx, a.runner, timecalc.WorldClockID, in, func(w io.Writer, res any) bool {
				for _, c := range res.(timecalc.WorldClockResult).Clocks {
					dst := ""
					if c.DST {
						dst = " DST"
					}
					fmt.Fprintf(w, "%-16s %s  UTC%s%s  %s\n", c.City.Name, r.DateTime(c.LocalTime), c.UTCOffset, dst, c.Weekday)
				}
				return true
			}, cmd.OutOrStdout())
		},
	}
}

func newCountdownCommand(flags *rootFlags) *cobra.Command {
	var target string
	var weeks bool
	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Count down to a target instant, exiting when it is reached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := flags.load()
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			in := calculator.Input{"target": target, "showWeeks": weeks}
			return runLive(ctx, a.runner, timecalc.CountdownID, in, func(w io.Writer, res any) bool {
				c := res.(timecalc.CountdownResult)
				if c.Finished {
					fmt.Fprintln(w, "finished")
					return false
				}
				if weeks {
					fmt.Fprintf(w, "%dw %dd %02d:%02d:%02d\n", c.Weeks, c.WeekDays, c.Hours, c.Minutes, c.Seconds)
				} else {
					fmt.Fprintf(w, "%dd %02d:%02d:%02d\n", c.Days, c.Hours, c.Minutes, c.Seconds)
				}
				return true
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "target instant, RFC 3339 or YYYY-MM-DD (required)")
	cmd.Flags().BoolVar(&weeks, "weeks", false, "show whole weeks")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// runLive re-evaluates calculator id every tick and hands the result to
// show until show returns false or ctx is done. Invalid input stops the
// loop with an error listing the violations.
func runLive(ctx context.Context, runner *calculator.Runner, id string, in calculator.Input, show func(io.Writer, any) bool, w io.Writer) error {
	var runErr error
	err := timecalc.Tick(ctx, tickInterval, datetime.SystemClock{}, func(time.Time) bool {
		out, err := runner.Run(id, in)
		if err != nil {
			runErr = err
			return false
		}
		if !out.Valid {
			runErr = out.Errors
			return false
		}
		return show(w, out.Result)
	})
	if runErr != nil {
		return runErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
