// SPDX-License-Identifier: MIT

package solver

import (
	"math"
	"time"
)

// Reason tells why Solve stopped.
type Reason string

const (
	ReasonTolerance Reason = "tolerance"
	ReasonReduction Reason = "reduction"
	ReasonMaxSteps  Reason = "max-steps"
	ReasonCancelled Reason = "cancelled"
	ReasonDiverged  Reason = "diverged"
)

// Record describes the state after one step. Step 0 is the initial state.
type Record struct {
	Step     int           `json:"step"`
	Residual float64       `json:"residual"`
	Error    float64       `json:"error,omitempty"`
	Ratio    float64       `json:"ratio,omitempty"` // Residual / previous Residual, 0 if that was 0
	Elapsed  time.Duration `json:"elapsed_ns"`      // time spent in the step
}

// Report is the outcome of one Solve call.
type Report struct {
	Method    string        `json:"method"`
	Level     int           `json:"level"`
	H         float64       `json:"h"`
	Converged bool          `json:"converged"`
	Reason    Reason        `json:"reason"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Records   []Record      `json:"records"`
}

// Steps returns the number of steps taken.
func (r *Report) Steps() int {
	if len(r.Records) == 0 {
		return 0
	}

	return len(r.Records) - 1
}

// Final returns the last record, or the zero Record when there is none.
func (r *Report) Final() Record {
	if len(r.Records) == 0 {
		return Record{}
	}

	return r.Records[len(r.Records)-1]
}

// Durations returns the per-step times, initial record excluded.
func (r *Report) Durations() []time.Duration {
	if len(r.Records) < 2 {
		return nil
	}
	out := make([]time.Duration, 0, len(r.Records)-1)
	for _, rec := range r.Records[1:] {
		out = append(out, rec.Elapsed)
	}

	return out
}

// Residuals returns the residual norm of every record, initial included.
func (r *Report) Residuals() []float64 {
	out := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Residual
	}

	return out
}

// MeanRatio returns the geometric mean of the per-step residual ratios,
// the average convergence factor. It is 0 when no step was taken.
func (r *Report) MeanRatio() float64 {
	steps := r.Steps()
	if steps == 0 || r.Records[0].Residual == 0 {
		return 0
	}

	return math.Pow(r.Final().Residual/r.Records[0].Residual, 1/float64(steps))
}
