// SPDX-License-Identifier: MIT

package smoother_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mgpoisson/grid"
	"github.com/katalvlaran/mgpoisson/smoother"
)

// variants lists every smoother under test.
var variants = []smoother.Smoother{
	smoother.GaussSeidel{},
	smoother.RedBlack{},
	smoother.RedBlack{Parallel: true},
}

// randomField returns a level-l field filled with values in [-1, 1),
// boundary included.
func randomField(t *testing.T, l int, seed uint64) *grid.Field {
	t.Helper()
	f, err := grid.NewLevelField(l)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	f.Fill(func(int, int) float64 { return 2*rng.Float64() - 1 })

	return f
}

// zeroBoundary clears the Dirichlet boundary of f.
func zeroBoundary(f *grid.Field) {
	n := f.N()
	for k := 0; k < n; k++ {
		_ = f.Set(0, k, 0)
		_ = f.Set(n-1, k, 0)
		_ = f.Set(k, 0, 0)
		_ = f.Set(k, n-1, 0)
	}
}

// TestRelax_SinglePoint checks the stencil on the 3×3 grid, where all
// variants reduce to u[1,1] = -0.25·h²·f[1,1].
func TestRelax_SinglePoint(t *testing.T) {
	for _, s := range variants {
		t.Run(s.Name(), func(t *testing.T) {
			u := make([]float64, 9)
			f := make([]float64, 9)
			f[4] = 4
			s.Relax(u, f, 3, 0.5)
			assert.Equal(t, -0.25, u[4])
		})
	}
}

// TestRelax_BoundaryUntouched verifies boundary values are bit-for-bit
// unchanged after many sweeps of every variant.
func TestRelax_BoundaryUntouched(t *testing.T) {
	for _, s := range variants {
		t.Run(s.Name(), func(t *testing.T) {
			u := randomField(t, 7, 1)
			f := randomField(t, 7, 2)
			before := u.Clone()
			for sweep := 0; sweep < 5; sweep++ {
				s.Relax(u.Data(), f.Data(), u.N(), 1.0/128)
			}
			assert.Equal(t, before.BoundaryChecksum(), u.BoundaryChecksum())
			assert.NotEqual(t, before.Checksum(), u.Checksum(), "interior must move")
			n := u.N()
			for k := 0; k < n; k++ {
				for _, p := range [][2]int{{0, k}, {n - 1, k}, {k, 0}, {k, n - 1}} {
					got, _ := u.At(p[0], p[1])
					want, _ := before.At(p[0], p[1])
					assert.Equal(t, math.Float64bits(want), math.Float64bits(got), "boundary (%d,%d)", p[0], p[1])
				}
			}
		})
	}
}

// TestRelax_MaxNormNonIncreasing checks that with f = 0 and a zero boundary
// every sweep leaves the discrete maximum norm no larger than before.
func TestRelax_MaxNormNonIncreasing(t *testing.T) {
	for _, s := range variants {
		t.Run(s.Name(), func(t *testing.T) {
			u := randomField(t, 3, 3)
			zeroBoundary(u)
			f := make([]float64, len(u.Data()))
			prev := u.MaxNorm()
			for sweep := 0; sweep < 300; sweep++ {
				s.Relax(u.Data(), f, u.N(), 1.0/8)
				cur := u.MaxNorm()
				require.LessOrEqual(t, cur, prev, "sweep %d", sweep)
				prev = cur
			}
			assert.Less(t, prev, 1e-6, "u must approach the zero field")
		})
	}
}

// TestRelax_SameFixedPoint runs both orderings to convergence from the same
// start and compares the limits.
func TestRelax_SameFixedPoint(t *testing.T) {
	const l = 3
	h := grid.Spacing(l, 1)
	start := randomField(t, l, 4)
	zeroBoundary(start)
	rhs, err := grid.NewLevelField(l)
	require.NoError(t, err)
	rhs.Fill(func(i, j int) float64 { return float64(i - 2*j) })

	natural := start.Clone()
	redBlack := start.Clone()
	smoother.GaussSeidel{}.Relax(natural.Data(), rhs.Data(), natural.N(), h)
	smoother.RedBlack{}.Relax(redBlack.Data(), rhs.Data(), redBlack.N(), h)
	assert.False(t, floats.Equal(natural.Data(), redBlack.Data()), "one sweep of each ordering differs")

	for sweep := 0; sweep < 500; sweep++ {
		smoother.GaussSeidel{}.Relax(natural.Data(), rhs.Data(), natural.N(), h)
		smoother.RedBlack{}.Relax(redBlack.Data(), rhs.Data(), redBlack.N(), h)
	}
	assert.True(t, floats.EqualApprox(natural.Data(), redBlack.Data(), 1e-12))
}

// TestRedBlack_PassIndependence checks that a red-black sweep equals a
// Jacobi update of the red points followed by a Jacobi update of the black
// points, i.e. that no update inside a pass reads a value of its own colour.
func TestRedBlack_PassIndependence(t *testing.T) {
	const l, h = 3, 0.125
	u := randomField(t, l, 5)
	f := randomField(t, l, 6)
	n := u.N()

	want := u.Clone().Data()
	for color := 0; color < 2; color++ {
		old := append([]float64(nil), want...)
		for i := 1; i < n-1; i++ {
			for j := 1; j < n-1; j++ {
				if (i+j)%2 != color {
					continue
				}
				k := j + i*n
				want[k] = -0.25 * (h*h*f.Data()[k] - old[k+1] - old[k-1] - old[k+n] - old[k-n])
			}
		}
	}

	smoother.RedBlack{}.Relax(u.Data(), f.Data(), n, h)
	assert.Equal(t, want, u.Data())
}

// TestRedBlack_ParallelMatchesSequential verifies the parallel passes are
// bit-identical to the sequential ones on a grid large enough to split.
func TestRedBlack_ParallelMatchesSequential(t *testing.T) {
	const l = 8
	h := grid.Spacing(l, 1)
	seq := randomField(t, l, 7)
	par := seq.Clone()
	f := randomField(t, l, 8)

	for sweep := 0; sweep < 3; sweep++ {
		smoother.RedBlack{}.Relax(seq.Data(), f.Data(), seq.N(), h)
		smoother.RedBlack{Parallel: true}.Relax(par.Data(), f.Data(), par.N(), h)
	}
	assert.Equal(t, seq.Checksum(), par.Checksum())
	assert.Equal(t, seq.Data(), par.Data())
}

// TestRepeat checks the sweep multiplier.
func TestRepeat(t *testing.T) {
	u := randomField(t, 3, 9)
	f := randomField(t, 3, 10)
	ref := u.Clone()

	smoother.Repeat(smoother.GaussSeidel{}, 3).Relax(u.Data(), f.Data(), u.N(), 0.125)
	for i := 0; i < 3; i++ {
		smoother.GaussSeidel{}.Relax(ref.Data(), f.Data(), ref.N(), 0.125)
	}
	assert.Equal(t, ref.Data(), u.Data())

	assert.Equal(t, smoother.RedBlack{}, smoother.Repeat(smoother.RedBlack{}, 1))
	assert.Equal(t, "Gauss-Seidel x2", smoother.Repeat(smoother.GaussSeidel{}, 2).Name())
	assert.Panics(t, func() { smoother.Repeat(smoother.GaussSeidel{}, 0) })
}

// TestKind covers parsing and construction of the variants.
func TestKind(t *testing.T) {
	cases := []struct {
		in   string
		kind smoother.Kind
		name string
	}{
		{"gauss-seidel", smoother.NaturalOrder, "Gauss-Seidel"},
		{" Red-Black ", smoother.RedBlackOrder, "Gauss-Seidel (red-black)"},
		{"red-black-parallel", smoother.ParallelRedBlack, "Gauss-Seidel (red-black, parallel)"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			k, err := smoother.ParseKind(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, k)
			s, err := smoother.New(k)
			require.NoError(t, err)
			assert.Equal(t, tc.name, s.Name())
			assert.Equal(t, strings.TrimSpace(strings.ToLower(tc.in)), k.String())
		})
	}

	_, err := smoother.ParseKind("jacobi")
	assert.ErrorIs(t, err, smoother.ErrUnknownKind)
	_, err = smoother.New(smoother.Kind(42))
	assert.ErrorIs(t, err, smoother.ErrUnknownKind)
	assert.Equal(t, "unknown", smoother.Kind(42).String())
}
