package truss

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema reports a missing section or a missing/mistyped value while
	// extracting from a table. The table error is wrapped alongside it.
	ErrSchema = errors.New("truss: schema mismatch")

	// ErrValidation reports a structure that is well-formed text but
	// inconsistent: dangling node references, duplicate node ids, degenerate
	// beams, or a shape a formulation cannot solve.
	ErrValidation = errors.New("truss: validation failed")
)

// validationErrorf wraps ErrValidation with entity context, e.g. "beam 3: ...".
func validationErrorf(kind string, id int, format string, args ...any) error {
	return fmt.Errorf("%s %d: %s: %w", kind, id, fmt.Sprintf(format, args...), ErrValidation)
}
