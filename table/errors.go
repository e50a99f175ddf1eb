// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing and typed access.
var (
	// ErrIO indicates that the source could not be read.
	ErrIO = errors.New("table: source unreadable")

	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax = errors.New("table: syntax error")

	// ErrSchema indicates a missing or mistyped value at an item position.
	ErrSchema = errors.New("table: schema mismatch")
)

// SyntaxError locates a fatal parse failure in the source.
type SyntaxError struct {
	Offset int64  // zero-based byte offset of the offending byte
	Line   int    // one-based line number
	Column int    // one-based byte column within the line
	Char   byte   // offending byte
	Msg    string // what went wrong
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("table: line %d, column %d (offset %d, byte %q): %s",
		e.Line, e.Column, e.Offset, e.Char, e.Msg)
}

// Unwrap exposes ErrSyntax to errors.Is.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// schemaErrorf wraps ErrSchema with item and position context.
func schemaErrorf(id, idx int, format string, args ...any) error {
	return fmt.Errorf("item %d, value %d: %s: %w", id, idx, fmt.Sprintf(format, args...), ErrSchema)
}

// ioErrorf wraps ErrIO and the underlying cause; both match errors.Is.
func ioErrorf(loc string, err error) error {
	return fmt.Errorf("%s: %w: %w", loc, ErrIO, err)
}
