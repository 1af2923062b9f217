// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mgpoisson/solver"
)

var (
	solveConfig = defaultConfig()
	solveOutput = output{plot: true}
)

// output selects what runSolve prints.
type output struct {
	json bool // the report as JSON instead of tables
	plot bool // an ascii plot of the residual history
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "solve the manufactured problem at one level",
	Long: `
Solve ∆u = f on a square with zero boundary values, where f is chosen so
that u = sin(2πkx/a)·sin(2πky/a) is the analytic solution. Prints the
residual after every step, a convergence plot and step-time quantiles.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(os.Stderr, logLevel)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return runSolve(ctx, cmd.OutOrStdout(), solveConfig, solveOutput, logger)
	},
}

func init() {
	solveConfig.register(solveCmd)
	solveCmd.Flags().IntVarP(&solveConfig.level, "level", "l", solveConfig.level, "finest grid level (n = 2^level+1)")
	solveCmd.Flags().BoolVar(&solveOutput.json, "json", solveOutput.json, "print the report as JSON")
	solveCmd.Flags().BoolVar(&solveOutput.plot, "plot", solveOutput.plot, "plot log10 of the residual")
}

func runSolve(ctx context.Context, w io.Writer, c config, out output, logger *slog.Logger) error {
	if err := c.validate(); err != nil {
		return err
	}
	p, err := c.problem(c.level)
	if err != nil {
		return err
	}
	m, err := c.methodFor(p, logger)
	if err != nil {
		return err
	}

	rep, err := solver.Solve(ctx, p, m, c.solveOptions(logger)...)
	if err != nil {
		return err
	}
	if out.json {
		return writeJSON(w, rep)
	}

	fmt.Fprintf(w, "%s  level=%d n=%d h=%g mode=%g\n\n", rep.Method, rep.Level, p.N(), rep.H, p.Mode())
	renderSteps(w, rep)
	if out.plot {
		renderPlot(w, rep)
	}
	renderLatency(w, latencyHistogram(rep.Durations()))
	fmt.Fprintf(w, "\n%s after %d steps (%s), mean ratio %.3f, final error %.6g\n",
		outcome(rep), rep.Steps(), rep.Reason, rep.MeanRatio(), p.Error())

	return nil
}

func outcome(rep *solver.Report) string {
	if rep.Converged {
		return "converged"
	}

	return "stopped"
}
