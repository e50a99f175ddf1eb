// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernel tests.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/truss/matrix"
)

// tol is the float32 comparison tolerance used across kernel tests.
const tol = 1e-4

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// MustVector builds a *Vector from literal values.
func MustVector(t *testing.T, vals ...float32) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVectorFrom(vals)
	if err != nil {
		t.Fatalf("NewVectorFrom(%v): %v", vals, err)
	}

	return v
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareVec fails when any |got[i]-want[i]| > eps.
func CompareVec(t *testing.T, want []float32, got *matrix.Vector, eps float64) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("length mismatch: want %d, got %d", len(want), got.Len())
	}
	vals := got.Values()
	for i := range want {
		if math.Abs(float64(vals[i]-want[i])) > eps {
			t.Fatalf("entry %d: want %g, got %g (eps %g)", i, want[i], vals[i], eps)
		}
	}
}

// CompareDense fails when any element differs from the row-major want by more than eps.
func CompareDense(t *testing.T, want []float32, got matrix.Matrix, eps float64) {
	t.Helper()
	if got.Rows()*got.Cols() != len(want) {
		t.Fatalf("size mismatch: want %d elements, got %dx%d", len(want), got.Rows(), got.Cols())
	}
	for i := 0; i < got.Rows(); i++ {
		for j := 0; j < got.Cols(); j++ {
			v := MustAt(t, got, i, j)
			w := want[i*got.Cols()+j]
			if math.Abs(float64(v-w)) > eps {
				t.Fatalf("[%d,%d]: want %g, got %g", i, j, w, v)
			}
		}
	}
}
