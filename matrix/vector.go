// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Vector is a dense column vector of float32 values with a fixed length.
// It is mutable in place; Clone produces independent storage.
type Vector struct {
	data []float32
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector creates a zero vector of length n (n > 0).
// Returns ErrInvalidDimensions for n <= 0.
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]float32, n)}, nil
}

// NewVectorFrom creates a vector holding a copy of vals.
// Returns ErrInvalidDimensions when vals is empty.
func NewVectorFrom(vals []float32) (*Vector, error) {
	v, err := NewVector(len(vals))
	if err != nil {
		return nil, err
	}
	copy(v.data, vals)

	return v, nil
}

// Len returns the number of entries.
func (v *Vector) Len() int { return len(v.data) }

// At returns entry i or ErrOutOfRange.
func (v *Vector) At(i int) (float32, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at entry i or returns ErrOutOfRange.
func (v *Vector) Set(i int, x float32) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Add accumulates x into entry i (v[i] += x) or returns ErrOutOfRange.
// Assemblers use it to sum several contributions into one row.
func (v *Vector) Add(i int, x float32) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Add(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] += x

	return nil
}

// Zero resets every entry to 0 in place.
func (v *Vector) Zero() { clear(v.data) }

// Clone returns a deep copy with independent storage.
func (v *Vector) Clone() *Vector {
	cp := make([]float32, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp}
}

// Values returns a copy of the entries.
func (v *Vector) Values() []float32 {
	out := make([]float32, len(v.data))
	copy(out, v.data)

	return out
}

// String renders the vector as a single bracketed row.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString(_fmtRowClose)

	return b.String()
}
