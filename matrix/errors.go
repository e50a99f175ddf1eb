// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (wrapped with an operation tag) and
// tests check them via errors.Is. No kernel panics on user-triggered errors.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is added at the call site with
// matrixErrorf(op, err); callers still match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or element) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., AddInPlace on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It wraps ErrDimensionMismatch so both sentinels match.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)

	// ErrNilMatrix indicates that a nil Matrix or Vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned by Solve when a column has no nonzero pivot candidate.
	// The concrete error is *SingularError, which carries the column index.
	ErrSingular = errors.New("matrix: singular matrix")
)

// SingularError reports the elimination column that had no nonzero pivot.
// errors.Is(err, ErrSingular) holds for every *SingularError.
type SingularError struct {
	Column int // zero-based column index where every candidate was exactly 0
}

// Error implements error.
func (e *SingularError) Error() string {
	return fmt.Sprintf("%s: no nonzero pivot in column %d", ErrSingular.Error(), e.Column)
}

// Unwrap exposes ErrSingular to errors.Is.
func (e *SingularError) Unwrap() error { return ErrSingular }
