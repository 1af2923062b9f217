// SPDX-License-Identifier: MIT

package poisson_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mgpoisson/grid"
	"github.com/katalvlaran/mgpoisson/poisson"
)

// discreteEigenvalue returns λ_h with L_h φ = λ_h φ for the manufactured
// mode φ = sin(s·x)·sin(s·y) on a grid of spacing h.
func discreteEigenvalue(n int, h, mode float64) float64 {
	s := 2 * math.Pi * mode / (h * float64(n-1))
	sn := math.Sin(s * h / 2)

	return -8 * sn * sn / (h * h)
}

// TestNewProblem_Errors verifies constructor validation.
func TestNewProblem_Errors(t *testing.T) {
	cases := []struct {
		name string
		l    int
		h    float64
		mode float64
		err  error
	}{
		{"LevelZero", 0, 0.5, 1, grid.ErrBadLevel},
		{"LevelTooLarge", grid.MaxLevel + 1, 0.5, 1, grid.ErrBadLevel},
		{"ZeroSpacing", 3, 0, 1, grid.ErrBadSpacing},
		{"NaNSpacing", 3, math.NaN(), 1, grid.ErrBadSpacing},
		{"InfMode", 3, 0.125, math.Inf(-1), poisson.ErrBadMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := poisson.NewProblem(tc.l, tc.h, tc.mode)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, p)
		})
	}
}

// TestNewProblem_Fields checks shapes, zero initial u and r, and f filled
// by Forcing.
func TestNewProblem_Fields(t *testing.T) {
	p, err := poisson.NewProblem(4, 1.0/16, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Level())
	assert.Equal(t, 17, p.N())
	assert.Equal(t, 1.0/16, p.H())
	assert.Equal(t, 1.0, p.Mode())

	assert.Equal(t, 0.0, p.U().MaxNorm())
	assert.Equal(t, 0.0, p.R().MaxNorm())

	want := make([]float64, 17*17)
	poisson.Forcing(want, 17, 1.0/16, 1)
	assert.Equal(t, want, p.F().Data())
}

// TestForcing_MatchesExact checks f = Δu for the manufactured pair and the
// vanishing boundary of an integer mode.
func TestForcing_MatchesExact(t *testing.T) {
	const n, h, mode = 33, 1.0 / 32, 2.0
	f := make([]float64, n*n)
	u := make([]float64, n*n)
	poisson.Forcing(f, n, h, mode)
	poisson.Exact(u, n, h, mode)

	s := 2 * math.Pi * mode
	for k := range f {
		assert.InDelta(t, -2*s*s*u[k], f[k], 1e-9, "point %d", k)
	}
	for j := 0; j < n; j++ {
		assert.InDelta(t, 0, u[j], 1e-12)
		assert.InDelta(t, 0, u[j+(n-1)*n], 1e-12)
		assert.InDelta(t, 0, u[(n-1)+j*n], 1e-12)
	}
}

// TestResidual_DiscreteEigenmode checks r = f - λ_h·u on the interior when
// u is the manufactured mode, and that boundary entries of r are untouched.
func TestResidual_DiscreteEigenmode(t *testing.T) {
	const l = 4
	n, h := grid.Size(l), grid.Spacing(l, 1)
	u := make([]float64, n*n)
	f := make([]float64, n*n)
	r := make([]float64, n*n)
	for k := range r {
		r[k] = math.NaN()
	}
	poisson.Exact(u, n, h, 1)
	poisson.Forcing(f, n, h, 1)

	poisson.Residual(r, u, f, n, h)

	lambda := discreteEigenvalue(n, h, 1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k := j + i*n
			if i == 0 || j == 0 || i == n-1 || j == n-1 {
				assert.True(t, math.IsNaN(r[k]), "boundary (%d,%d) must not be written", i, j)
				continue
			}
			assert.InDelta(t, f[k]-lambda*u[k], r[k], 1e-9, "(%d,%d)", i, j)
		}
	}
}

// TestResidual_ZeroSolution checks r = f when u = 0.
func TestResidual_ZeroSolution(t *testing.T) {
	p, err := poisson.NewProblem(3, 0.125, 1)
	require.NoError(t, err)
	before := p.F().Checksum()

	p.Residual()

	n := p.N()
	for i := 1; i < n-1; i++ {
		for j := 1; j < n-1; j++ {
			got, _ := p.R().At(i, j)
			want, _ := p.F().At(i, j)
			assert.Equal(t, want, got)
		}
	}
	assert.Equal(t, before, p.F().Checksum(), "f is read-only")
	assert.Greater(t, p.Norm(), 0.0)
}

// TestProblem_Error checks the error norm against its closed form for u = 0
// and its vanishing for u equal to the analytic solution.
func TestProblem_Error(t *testing.T) {
	p, err := poisson.NewProblem(5, 1.0/32, 1)
	require.NoError(t, err)

	assert.InDelta(t, 4/(math.Pi*math.Pi), p.Error(), 0.01)

	poisson.Exact(p.U().Data(), p.N(), p.H(), p.Mode())
	p.Residual()
	r := p.R().Checksum()
	assert.Equal(t, 0.0, p.Error())
	assert.Equal(t, r, p.R().Checksum(), "Error must not clobber r")

	// The analytic solution misses the discrete equation only by the O(h²)
	// truncation error.
	assert.Less(t, p.Norm(), 0.05*grid.L1Norm(p.F().Data(), p.N(), p.N(), p.H(), p.H()))

	p.Reset()
	assert.Equal(t, 0.0, p.U().MaxNorm())
	assert.Equal(t, 0.0, p.R().MaxNorm())
}
