package statics

import (
	"fmt"

	"github.com/katalvlaran/truss/matrix"
	"github.com/katalvlaran/truss/truss"
)

// Formulation turns a Structure into a linear system and maps the solution
// back onto it.
type Formulation interface {
	// Name identifies the formulation in errors and reports.
	Name() string

	// Validate reports, without assembling, whether s has the shape this
	// formulation needs. Failures match truss.ErrValidation.
	Validate(s *truss.Structure) error

	// Assemble builds A and B. It calls Validate first.
	Assemble(s *truss.Structure) (*System, error)

	// Apply writes a solution vector onto s.
	Apply(s *truss.Structure, x *matrix.Vector) error

	// Residual measures how far the forces currently on s are from
	// satisfying this formulation's equations.
	Residual(s *truss.Structure) (*matrix.Vector, error)
}

// Solution is the outcome of a successful Solve.
type Solution struct {
	System      *System
	X           *matrix.Vector
	MaxResidual float32 // max |entry| of the formulation residual after write-back
}

// Assemble resolves s and assembles it with f. A node reference that no
// longer resolves matches truss.ErrValidation.
func Assemble(s *truss.Structure, f Formulation) (*System, error) {
	if s == nil || f == nil {
		return nil, staticsErrorf(opAssemble, ErrNilInput)
	}
	if err := resolve(opAssemble, s); err != nil {
		return nil, err
	}
	sys, err := f.Assemble(s)
	if err != nil {
		return nil, staticsErrorf(opAssemble, err)
	}

	return sys, nil
}

// Solve assembles s with f, solves the system and writes the result back.
//
// Stages:
//   - options are applied; an invalid one is ErrOptionViolation;
//   - s is resolved (truss.ErrValidation on a dangling node reference);
//   - WithConnectivityCheck rejects disconnected structures (truss.ErrValidation);
//   - Assemble (truss.ErrValidation on shape problems);
//   - matrix.Solve (matrix.ErrSingular is propagated, nothing is written);
//   - f.Apply and s.MarkSolved;
//   - WithVerify checks the residual (ErrUnbalanced). The forces stay on s.
func Solve(s *truss.Structure, f Formulation, opts ...Option) (*Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if s == nil || f == nil {
		return nil, staticsErrorf(opSolve, ErrNilInput)
	}

	if err := resolve(opSolve, s); err != nil {
		return nil, err
	}
	if o.CheckConnectivity {
		if lost := s.Disconnected(); len(lost) > 0 {
			return nil, staticsErrorf(opSolve, validationErrorf(f.Name(), "nodes %v are not connected to node %d", lost, s.Nodes[0].ID))
		}
	}

	sys, err := Assemble(s, f)
	if err != nil {
		return nil, err
	}
	x, err := matrix.Solve(sys.A, sys.B)
	if err != nil {
		return nil, staticsErrorf(opSolve, fmt.Errorf("%s: %w", f.Name(), err))
	}
	if err = f.Apply(s, x); err != nil {
		return nil, staticsErrorf(opSolve, err)
	}
	s.MarkSolved()

	r, err := f.Residual(s)
	if err != nil {
		return nil, staticsErrorf(opSolve, err)
	}
	sol := &Solution{System: sys, X: x, MaxResidual: matrix.MaxAbs(r)}
	if o.Verify && sol.MaxResidual > o.Tolerance {
		return nil, staticsErrorf(opSolve, unbalancedErrorf(f.Name(), sol.MaxResidual, o.Tolerance))
	}

	return sol, nil
}

// Verify fails with ErrUnbalanced when any entry of f.Residual(s) exceeds tol.
func Verify(s *truss.Structure, f Formulation, tol float32) error {
	if s == nil || f == nil {
		return ErrNilInput
	}
	r, err := f.Residual(s)
	if err != nil {
		return err
	}
	if m := matrix.MaxAbs(r); m > tol {
		return unbalancedErrorf(f.Name(), m, tol)
	}

	return nil
}

// resolve re-derives node indices and beam lengths from the current slices.
func resolve(op string, s *truss.Structure) error {
	if err := s.Resolve(); err != nil {
		return staticsErrorf(op, err)
	}

	return nil
}

func unbalancedErrorf(name string, got, tol float32) error {
	return fmt.Errorf("%s: max residual %g > %g: %w", name, got, tol, ErrUnbalanced)
}
