// Package matrix_test contains unit tests for Dense and Vector storage.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/truss/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewVector(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroed verifies that freshly allocated storage is all zeros.
func TestNewDenseZeroed(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	CompareDense(t, make([]float32, 12), m, 0)
}

// TestNewDenseFromLength rejects literal data of the wrong length.
func TestNewDenseFromLength(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float32{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.5), matrix.ErrOutOfRange)

	v := MustVector(t, 1, 2)
	_, err = v.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Add(5, 0), matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float32{1, 0, 0, 2})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))
	require.Equal(t, float32(1), MustAt(t, m, 0, 0))
	require.Equal(t, float32(3), MustAt(t, clone, 0, 0))

	v := MustVector(t, 1, 2, 3)
	vc := v.Clone()
	require.NoError(t, vc.Set(1, 9))
	CompareVec(t, []float32{1, 2, 3}, v, 0)
	CompareVec(t, []float32{1, 9, 3}, vc, 0)
}

// TestZeroResets verifies in-place zeroing of both storage types.
func TestZeroResets(t *testing.T) {
	m := NewFilledDense(t, 1, 3, []float32{1, 2, 3})
	m.Zero()
	CompareDense(t, []float32{0, 0, 0}, m, 0)

	v := MustVector(t, 4, 5)
	v.Zero()
	CompareVec(t, []float32{0, 0}, v, 0)
}

// TestVectorAddAccumulates checks that Add sums into an entry.
func TestVectorAddAccumulates(t *testing.T) {
	v := MustVector(t, 1, 1)
	require.NoError(t, v.Add(1, 2.5))
	require.NoError(t, v.Add(1, -0.5))
	CompareVec(t, []float32{1, 3}, v, 0)
}

func TestStringers(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float32{1, 2, 3, 4.5})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
	require.Equal(t, "[1, -2]\n", MustVector(t, 1, -2).String())
}

func TestRowCopy(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float32{1, 2, 3, 4, 5, 6})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float32{4, 5, 6}, row)
	row[0] = 100
	require.Equal(t, float32(4), MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
