// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over Matrix and Vector:
// in-place addition and scaling, matrix×matrix and matrix×vector products.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches; nothing is silently truncated or broadcast.
//
// Ownership:
//   - In-place kernels (AddInPlace, ScaleInPlace, ...) never allocate and only
//     mutate their first argument.
//   - Allocating kernels (Mul, MulVec, Solve) return values owned by the caller.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot products and substitution.
const ZeroSum = float32(0)

// Operation name constants for unified error wrapping.
const (
	opAddInPlace      = "AddInPlace"
	opAddVecInPlace   = "AddVecInPlace"
	opScaleInPlace    = "ScaleInPlace"
	opScaleVecInPlace = "ScaleVecInPlace"
	opMul             = "Mul"
	opMulVec          = "MulVec"
	opSolve           = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AddInPlace computes a += b element-wise.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: if b is *Dense, one flat loop over both buffers; otherwise read b via At
//     in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. On error a is left untouched.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AddInPlace(a *Dense, b Matrix) error {
	if a == nil {
		return matrixErrorf(opAddInPlace, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}

	// Fast path: both dense.
	if db, ok := b.(*Dense); ok {
		for idx := range a.data {
			a.data[idx] += db.data[idx]
		}

		return nil
	}

	// Fallback: validate all reads before the first write so a stays untouched on error.
	tmp := make([]float32, len(a.data))
	var (
		i, j int
		bv   float32
		err  error
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			bv, err = b.At(i, j)
			if err != nil {
				return matrixErrorf(opAddInPlace, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			tmp[i*a.c+j] = bv
		}
	}
	for idx := range a.data {
		a.data[idx] += tmp[idx]
	}

	return nil
}

// AddVecInPlace computes a += b entry-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AddVecInPlace(a, b *Vector) error {
	if a == nil {
		return matrixErrorf(opAddVecInPlace, ErrNilMatrix)
	}
	if err := ValidateVecLen(b, a.Len()); err != nil {
		return matrixErrorf(opAddVecInPlace, err)
	}
	for i := range a.data {
		a.data[i] += b.data[i]
	}

	return nil
}

// ScaleInPlace multiplies every entry of m by s.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ScaleInPlace(m *Dense, s float32) error {
	if m == nil {
		return matrixErrorf(opScaleInPlace, ErrNilMatrix)
	}
	for i := range m.data {
		m.data[i] *= s
	}

	return nil
}

// ScaleVecInPlace multiplies every entry of v by s.
// Errors: ErrNilMatrix.
func ScaleVecInPlace(v *Vector, s float32) error {
	if v == nil {
		return matrixErrorf(opScaleVecInPlace, ErrNilMatrix)
	}
	for i := range v.data {
		v.data[i] *= s
	}

	return nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: if A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use the i→j→k triple loop over At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (never truncates or pads).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float32
	)
	// Fast path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MulVec computes y = A·v for a column vector v.
//
// Contract: A non-nil; v non-nil; v.Len() == A.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MulVec(a Matrix, v *Vector) (*Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, a.Cols()); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	rows, cols := a.Rows(), a.Cols()
	y, err := NewVector(rows)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	var i, j int
	var acc float32
	// Fast path: flat row-major dot products.
	if d, ok := a.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * v.data[j]
			}
			y.data[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot products via At.
	var av float32
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMulVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += av * v.data[j]
		}
		y.data[i] = acc
	}

	return y, nil
}
