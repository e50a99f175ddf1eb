package statics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/truss/truss"
)

// Sentinel errors.
var (
	// ErrUnbalanced is returned by Verify when the equilibrium residual
	// exceeds the tolerance.
	ErrUnbalanced = errors.New("statics: equilibrium residual exceeds tolerance")

	// ErrNilInput is returned for a nil Structure or Formulation.
	ErrNilInput = errors.New("statics: nil structure or formulation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("statics: invalid option supplied")
)

// Operation tags for error wrapping.
const (
	opSolve           = "Solve"
	opAssemble        = "Assemble"
	opConnectivity    = "ConnectivityMatrix"
	opAppliedLoads    = "AppliedLoads"
	opGlobalReactions = "GlobalReactions"
	opNodalLoads      = "NodalLoads"
	opResidual        = "Residual"
)

// staticsErrorf wraps err with an operation tag, preserving it for errors.Is.
func staticsErrorf(op string, err error) error {
	return fmt.Errorf("statics: %s: %w", op, err)
}

// validationErrorf reports a shape problem for formulation name.
func validationErrorf(name, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", name, fmt.Sprintf(format, args...), truss.ErrValidation)
}
