// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// ZeroPivot is the sentinel for detecting a column with no usable pivot.
const ZeroPivot = float32(0)

// Solve returns x such that A·x = b, using Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare(A), ValidateVecLen(b, n). Copy A and b into working
//     storage; the inputs are never mutated.
//   - Stage 2: for each column k = 0..n-1:
//     pick the row p ≥ k with the largest |A[p,k]| (first maximum wins);
//     if that value is exactly 0 return *SingularError{Column: k};
//     swap rows p and k (and rhs entries); divide row k from the diagonal
//     rightward (and rhs[k]) by the pivot; eliminate column k from every row below.
//   - Stage 3: back-substitute on the unit upper-triangular system from the last
//     row up: x[i] = rhs[i] − Σ_{j>i} A[i,j]·x[j].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch), ErrDimensionMismatch,
//     *SingularError (matches ErrSingular).
//
// Determinism:
//   - Fixed loop orders; ties in pivot magnitude resolve to the smallest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
//
// Notes:
//   - Single precision, no iterative refinement. Pivoting only picks the best
//     candidate; rank deficiency is reported only when a whole candidate column is 0.
func Solve(a Matrix, b *Vector) (*Vector, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	w, err := workingCopy(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rhs := b.Clone()

	if err = eliminate(w, rhs); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return backSubstitute(w, rhs), nil
}

// workingCopy materializes a as an independent *Dense.
func workingCopy(a Matrix) (*Dense, error) {
	if d, ok := a.(*Dense); ok {
		return d.clone(), nil
	}
	rows, cols := a.Rows(), a.Cols()
	w, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float32
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			w.data[i*cols+j] = v
		}
	}

	return w, nil
}

// eliminate reduces w to unit upper-triangular form, applying the same row
// operations to rhs. w must be square and len(rhs) == w.r.
func eliminate(w *Dense, rhs *Vector) error {
	n := w.r
	var (
		k, i, j, p int
		best, mag  float32
		pivot, f   float32
		rowK, rowI int
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude at or below the diagonal.
		p, best = k, ZeroPivot
		for i = k; i < n; i++ {
			mag = abs32(w.data[i*n+k])
			if mag > best {
				p, best = i, mag
			}
		}
		if best == ZeroPivot {
			return &SingularError{Column: k}
		}
		w.swapRows(k, p)
		rhs.data[k], rhs.data[p] = rhs.data[p], rhs.data[k]

		// Normalize row k so the diagonal becomes 1.
		rowK = k * n
		pivot = w.data[rowK+k]
		for j = k; j < n; j++ {
			w.data[rowK+j] /= pivot
		}
		rhs.data[k] /= pivot

		// Eliminate column k from every row below.
		for i = k + 1; i < n; i++ {
			rowI = i * n
			f = w.data[rowI+k]
			if f == 0 {
				continue
			}
			for j = k; j < n; j++ {
				w.data[rowI+j] -= f * w.data[rowK+j]
			}
			rhs.data[i] -= f * rhs.data[k]
		}
	}

	return nil
}

// backSubstitute solves the unit upper-triangular system left by eliminate.
func backSubstitute(w *Dense, rhs *Vector) *Vector {
	n := w.r
	x := &Vector{data: make([]float32, n)}
	var sum float32
	for i := n - 1; i >= 0; i-- {
		sum = ZeroSum
		for j := i + 1; j < n; j++ {
			sum += w.data[i*n+j] * x.data[j]
		}
		x.data[i] = rhs.data[i] - sum
	}

	return x
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
