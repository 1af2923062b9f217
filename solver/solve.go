// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mgpoisson/poisson"
)

// Solve applies m to p until one of the stopping rules fires. p.U() is
// updated in place and p.R() holds the final residual on return.
//
// The report is returned even when an error is: it covers every step
// completed before the failure.
func Solve(ctx context.Context, p *poisson.Problem, m Method, opts ...Option) (*Report, error) {
	if p == nil {
		return nil, errors.Wrap(ErrNilProblem, "solver.Solve")
	}
	if m == nil {
		return nil, errors.Wrap(ErrNilMethod, "solver.Solve")
	}
	o := gatherOptions(opts...)
	log := o.logger.With(slog.String("method", m.Name()), slog.Int("level", p.Level()))

	rep := &Report{
		Method:  m.Name(),
		Level:   p.Level(),
		H:       p.H(),
		Reason:  ReasonMaxSteps,
		Records: make([]Record, 0, o.maxSteps+1),
	}
	start := time.Now()
	defer func() { rep.Elapsed = time.Since(start) }()

	p.Residual()
	initial := p.Norm()
	rep.Records = append(rep.Records, o.record(p, 0, initial, 0, 0))

	if stop, reason := o.done(initial, initial); stop {
		rep.Converged, rep.Reason = true, reason
		log.Info("solve finished", slog.String("reason", string(reason)), slog.Int("steps", 0))

		return rep, nil
	}

	prev := initial
	for step := 1; step <= o.maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			rep.Reason = ReasonCancelled
			log.Info("solve cancelled", slog.Int("steps", step-1))

			return rep, errors.Wrapf(err, "solver.Solve: after %d steps", step-1)
		}

		t0 := time.Now()
		if err := m.Step(p); err != nil {
			return rep, errors.Wrapf(err, "solver.Solve: step %d", step)
		}
		elapsed := time.Since(t0)

		p.Residual()
		res := p.Norm()
		rec := o.record(p, step, res, ratio(res, prev), elapsed)
		rep.Records = append(rep.Records, rec)
		log.Debug("step",
			slog.Int("step", step),
			slog.Float64("residual", res),
			slog.Float64("ratio", rec.Ratio),
			slog.Duration("elapsed", elapsed))

		if math.IsNaN(res) || math.IsInf(res, 0) {
			rep.Reason = ReasonDiverged

			return rep, errors.Wrapf(ErrDiverged, "solver.Solve: step %d", step)
		}
		if stop, reason := o.done(res, initial); stop {
			rep.Converged, rep.Reason = true, reason

			break
		}
		prev = res
	}

	log.Info("solve finished",
		slog.String("reason", string(rep.Reason)),
		slog.Int("steps", rep.Steps()),
		slog.Float64("residual", rep.Final().Residual),
		slog.Bool("converged", rep.Converged))

	return rep, nil
}

// ratio returns res/prev, or 0 when prev is 0 and the ratio is undefined.
func ratio(res, prev float64) float64 {
	if prev == 0 {
		return 0
	}

	return res / prev
}

// done applies the absolute and relative stopping rules.
func (o Options) done(res, initial float64) (bool, Reason) {
	if o.tolerance > 0 && res <= o.tolerance {
		return true, ReasonTolerance
	}
	if o.reduction > 0 && res <= o.reduction*initial {
		return true, ReasonReduction
	}

	return false, ""
}

// record builds a Record and hands it to the observer.
func (o Options) record(p *poisson.Problem, step int, res, stepRatio float64, elapsed time.Duration) Record {
	rec := Record{Step: step, Residual: res, Ratio: stepRatio, Elapsed: elapsed}
	if o.trackError {
		rec.Error = p.Error()
	}
	if o.observer != nil {
		o.observer(rec)
	}

	return rec
}
