// SPDX-License-Identifier: MIT

// Package table parses the sectioned structure-description text format into
// a generic Table → Section → Item → Value tree.
//
// The format is a sequence of sections:
//
//	Nodes
//	1 0.0 0.0
//	2 3.0 4.0
//	%
//
// A section starts with a name line; every following line is an item
// ("<id> <value> <value> ...") until a terminator line holding a single '%'.
// Values are typed lexically: a token containing '.' is a Float, anything
// else is an Int. A '#' opens a comment that runs through the next newline;
// the comment is transparent and the reader resumes exactly where it was,
// even in the middle of a token.
//
// Parsing is a single left-to-right pass over a byte stream with four
// states (section name, comment, line id, value). Errors are fatal and no
// partial Table is returned:
//
//   - *SyntaxError (matches ErrSyntax) for oversized tokens, malformed
//     terminators, malformed ids or numbers, and duplicate section names;
//   - ErrIO when the source cannot be read.
//
// Lookups by name or id report absence with a false flag, never an error.
// Typed accessors on Item return ErrSchema for a missing position or a
// value of the wrong variant.
package table
