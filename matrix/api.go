// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points composed from the canonical kernels.
//   - Each facade delegates to a kernel.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// Residual returns r = A·x − b.
// Implementation: MulVec → ScaleVecInPlace(b', −1) → AddVecInPlace. No custom loops.
// Errors: those of MulVec plus ErrDimensionMismatch when len(b) != Rows(A).
func Residual(a Matrix, x, b *Vector) (*Vector, error) {
	ax, err := MulVec(a, x)
	if err != nil {
		return nil, err
	}
	if err = ValidateVecLen(b, ax.Len()); err != nil {
		return nil, matrixErrorf("Residual", err)
	}
	nb := b.Clone()
	if err = ScaleVecInPlace(nb, -1); err != nil {
		return nil, err
	}
	if err = AddVecInPlace(ax, nb); err != nil {
		return nil, err
	}

	return ax, nil
}

// MaxAbs returns the largest |v[i]|; 0 for a nil vector.
func MaxAbs(v *Vector) float32 {
	if v == nil {
		return 0
	}
	var m float32
	for _, x := range v.data {
		if a := abs32(x); a > m {
			m = a
		}
	}

	return m
}
