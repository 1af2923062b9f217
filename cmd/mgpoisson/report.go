// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/bytedance/sonic"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/mgpoisson/solver"
)

const (
	minLatency = time.Microsecond
	maxLatency = time.Minute
)

// renderSteps prints one row per record.
func renderSteps(w io.Writer, rep *solver.Report) {
	tracked := false
	for _, r := range rep.Records {
		if r.Error != 0 {
			tracked = true
			break
		}
	}

	header := []string{"Step", "Residual", "Ratio"}
	if tracked {
		header = append(header, "Error")
	}
	header = append(header, "Time")

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range rep.Records {
		row := []string{fmt.Sprintf("%d", r.Step), fmt.Sprintf("%.6e", r.Residual), "-"}
		if r.Step > 0 {
			row[2] = fmt.Sprintf("%.4f", r.Ratio)
		}
		if tracked {
			row = append(row, fmt.Sprintf("%.6e", r.Error))
		}
		row = append(row, r.Elapsed.Round(time.Microsecond).String())
		tbl.Append(row)
	}
	tbl.Render()
}

// renderPlot draws log10 of the residual norm against the step number.
func renderPlot(w io.Writer, rep *solver.Report) {
	if len(rep.Records) < 2 {
		return
	}
	values := make([]float64, 0, len(rep.Records))
	for _, res := range rep.Residuals() {
		if res <= 0 {
			break
		}
		values = append(values, math.Log10(res))
	}
	if len(values) < 2 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Caption("log10 residual per step")))
}

// latencyHistogram records step times in nanoseconds.
func latencyHistogram(durations []time.Duration) *hdrhistogram.Histogram {
	h := hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 3)
	for _, d := range durations {
		v := d.Nanoseconds()
		if v < minLatency.Nanoseconds() {
			v = minLatency.Nanoseconds()
		}
		if v > maxLatency.Nanoseconds() {
			v = maxLatency.Nanoseconds()
		}
		_ = h.RecordValue(v)
	}

	return h
}

// renderLatency prints step-time quantiles.
func renderLatency(w io.Writer, h *hdrhistogram.Histogram) {
	if h.TotalCount() == 0 {
		return
	}
	q := func(p float64) string {
		return time.Duration(h.ValueAtQuantile(p)).Round(time.Microsecond).String()
	}
	fmt.Fprintf(w, "\nstep time: n=%d mean=%s p50=%s p95=%s p99=%s max=%s\n",
		h.TotalCount(),
		time.Duration(h.Mean()).Round(time.Microsecond),
		q(50), q(95), q(99), q(100))
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}
