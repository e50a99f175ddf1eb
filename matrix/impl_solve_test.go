package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/truss/matrix"
	"github.com/stretchr/testify/require"
)

// TestSolve_ReferenceSystem solves the 3×3 reference system and checks that
// A·x reproduces b and that neither input was mutated.
func TestSolve_ReferenceSystem(t *testing.T) {
	t.Parallel()

	vals := []float32{22, 15, 3, -3, -1, 0, -2, 1, 0}
	a := NewFilledDense(t, 3, 3, vals)
	b := MustVector(t, 8, -11, 3)

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	CompareVec(t, []float32{1.6, 6.2, -40.066666}, x, 1e-3)

	ax, err := matrix.MulVec(a, x)
	require.NoError(t, err)
	for i, want := range []float32{8, -11, 3} {
		got, _ := ax.At(i)
		require.LessOrEqual(t, math.Abs(float64(got-want)), 1e-3*math.Max(1, math.Abs(float64(want))),
			"row %d: want %g, got %g", i, want, got)
	}

	CompareDense(t, vals, a, 0)
	CompareVec(t, []float32{8, -11, 3}, b, 0)
}

// TestSolve_RequiresPivot exercises a zero on the leading diagonal.
func TestSolve_RequiresPivot(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float32{0, 1, 1, 0})
	x, err := matrix.Solve(a, MustVector(t, 3, 4))
	require.NoError(t, err)
	CompareVec(t, []float32{4, 3}, x, tol)

	// Same answer through the interface fallback.
	x, err = matrix.Solve(hide{a}, MustVector(t, 3, 4))
	require.NoError(t, err)
	CompareVec(t, []float32{4, 3}, x, tol)
}

func TestSolve_Identity(t *testing.T) {
	t.Parallel()

	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	x, err := matrix.Solve(I, MustVector(t, 1, -2, 3, -4))
	require.NoError(t, err)
	CompareVec(t, []float32{1, -2, 3, -4}, x, 0)
}

func TestSolve_Singular(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		vals   []float32
		column int
	}{
		{"zero first column", []float32{0, 1, 0, 2}, 0},
		{"dependent rows", []float32{1, 2, 2, 4}, 1},
		{"all zero", []float32{0, 0, 0, 0}, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := NewFilledDense(t, 2, 2, tc.vals)
			b := MustVector(t, 1, 1)
			x, err := matrix.Solve(a, b)
			require.Nil(t, x)
			require.ErrorIs(t, err, matrix.ErrSingular)

			var se *matrix.SingularError
			require.True(t, errors.As(err, &se))
			require.Equal(t, tc.column, se.Column)

			// Inputs untouched.
			CompareDense(t, tc.vals, a, 0)
			CompareVec(t, []float32{1, 1}, b, 0)
		})
	}
}

func TestSolve_DimensionErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Solve(MustDense(t, 2, 3), MustVector(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(MustDense(t, 3, 3), MustVector(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(nil, MustVector(t, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Solve(MustDense(t, 1, 1), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
