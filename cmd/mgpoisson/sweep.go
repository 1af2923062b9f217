// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mgpoisson/solver"
)

var (
	sweepConfig      = defaultConfig()
	sweepMinLevel    = 2
	sweepMaxLevel    = 8
	sweepConcurrency = runtime.GOMAXPROCS(0)
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "solve the manufactured problem at a range of levels",
	Long: `
Solve the same problem at every level in [--min-level, --max-level]. Levels
run concurrently, each with its own problem and solver, and the final
residual, error and step count are tabulated per level.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(os.Stderr, logLevel)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return runSweep(ctx, cmd.OutOrStdout(), sweepConfig, sweepMinLevel, sweepMaxLevel, sweepConcurrency, logger)
	},
}

func init() {
	sweepConfig.register(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepMinLevel, "min-level", sweepMinLevel, "coarsest level to solve")
	sweepCmd.Flags().IntVar(&sweepMaxLevel, "max-level", sweepMaxLevel, "finest level to solve")
	sweepCmd.Flags().IntVarP(&sweepConcurrency, "concurrency", "c", sweepConcurrency, "number of levels solved at once")
}

// sweepResult is the outcome for one level.
type sweepResult struct {
	level int
	n     int
	h     float64
	rep   *solver.Report
	err   float64 // distance to the analytic solution
}

func runSweep(ctx context.Context, w io.Writer, c config, lo, hi, workers int, logger *slog.Logger) error {
	if err := c.validate(); err != nil {
		return err
	}
	if lo > hi {
		return errors.Newf("--min-level %d exceeds --max-level %d", lo, hi)
	}
	if workers < 1 {
		workers = 1
	}

	// Each task owns its problem and solver; nothing is shared.
	p := pool.NewWithResults[sweepResult]().WithContext(ctx).WithMaxGoroutines(workers)
	for l := lo; l <= hi; l++ {
		p.Go(func(ctx context.Context) (sweepResult, error) {
			prob, err := c.problem(l)
			if err != nil {
				return sweepResult{}, err
			}
			m, err := c.methodFor(prob, logger)
			if err != nil {
				return sweepResult{}, err
			}
			rep, err := solver.Solve(ctx, prob, m, c.solveOptions(logger)...)
			if err != nil {
				return sweepResult{}, errors.Wrapf(err, "level %d", l)
			}
			return sweepResult{level: l, n: prob.N(), h: prob.H(), rep: rep, err: prob.Error()}, nil
		})
	}
	results, err := p.Wait()
	if err != nil {
		return err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].level < results[j].level })

	renderSweep(w, results)

	return nil
}

func renderSweep(w io.Writer, results []sweepResult) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Level", "N", "h", "Method", "Steps", "Residual", "Error", "Ratio", "Reason", "Time"})
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range results {
		tbl.Append([]string{
			fmt.Sprintf("%d", r.level),
			fmt.Sprintf("%d", r.n),
			fmt.Sprintf("%g", r.h),
			r.rep.Method,
			fmt.Sprintf("%d", r.rep.Steps()),
			fmt.Sprintf("%.3e", r.rep.Final().Residual),
			fmt.Sprintf("%.3e", r.err),
			fmt.Sprintf("%.3f", r.rep.MeanRatio()),
			string(r.rep.Reason),
			r.rep.Elapsed.Round(time.Microsecond).String(),
		})
	}
	tbl.Render()
}
