package statics

import (
	"fmt"
	"math"
)

// DefaultTolerance is the residual bound used by WithVerify callers that have
// no better estimate (single precision, forces of order 1..1e3).
const DefaultTolerance = float32(1e-3)

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaces as ErrOptionViolation.
type Option func(*Options)

// Options holds the knobs of one Solve call.
type Options struct {
	// CheckConnectivity rejects structures whose beams do not connect every
	// node, before any assembly.
	CheckConnectivity bool

	// Verify runs Verify with Tolerance after write-back.
	Verify bool

	// Tolerance bounds every |residual| entry when Verify is set.
	Tolerance float32

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with every check disabled and
// Tolerance = DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// WithConnectivityCheck enables the connectivity pre-check.
func WithConnectivityCheck() Option {
	return func(o *Options) {
		o.CheckConnectivity = true
	}
}

// WithVerify enables post-solve verification with tolerance tol (> 0).
func WithVerify(tol float32) Option {
	return func(o *Options) {
		if tol <= 0 || math.IsNaN(float64(tol)) {
			o.err = fmt.Errorf("%w: tolerance must be > 0, got %g", ErrOptionViolation, tol)
			return
		}
		o.Verify = true
		o.Tolerance = tol
	}
}
