// SPDX-License-Identifier: MIT

package table

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MaxTokenLen bounds every token (section name, id, value). A token that
// reaches this many bytes is a syntax error.
const MaxTokenLen = 255

// Read states.
type state uint8

const (
	stateSectionName state = iota
	stateComment
	stateLineID
	stateValue
)

const (
	commentByte    = '#'
	terminatorByte = '%'
	separatorByte  = ' '
	newlineByte    = '\n'
	decimalByte    = '.'
)

// Load reads the whole file at path and parses it.
// Failure to read the file is ErrIO (the os error also matches).
func Load(path string) (*Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, ioErrorf(path, err)
	}

	return Parse(src, path)
}

// Parse parses an in-memory source. loc is recorded as Table.Loc.
func Parse(src []byte, loc string) (*Table, error) {
	return Read(bytes.NewReader(src), loc)
}

// Read parses the byte stream r in a single pass.
//
// Errors:
//   - *SyntaxError (matches ErrSyntax) on malformed input;
//   - ErrIO when r fails with anything other than io.EOF.
//
// Trailing data that was never committed by a newline or a terminator is
// dropped at end of input.
func Read(r io.Reader, loc string) (*Table, error) {
	p := &parser{
		r:    bufio.NewReader(r),
		t:    &Table{Loc: loc},
		buf:  make([]byte, 0, MaxTokenLen),
		st:   stateSectionName,
		line: 1,
	}
	for {
		c, err := p.r.ReadByte()
		if errors.Is(err, io.EOF) {
			return p.t, nil
		}
		if err != nil {
			return nil, ioErrorf(loc, err)
		}
		p.col++
		if err = p.step(c); err != nil {
			return nil, err
		}
		p.off++
		if c == newlineByte {
			p.line++
			p.col = 0
		}
	}
}

// parser holds the state of one Read call.
type parser struct {
	r *bufio.Reader
	t *Table

	st     state
	resume state // state to return to when a comment ends
	term   bool  // a terminator was seen and the next byte must be '\n'

	buf  []byte
	sect *Section
	item *Item

	off       int64
	line, col int
}

// step feeds one byte through the state machine.
func (p *parser) step(c byte) error {
	if p.term {
		if c != newlineByte {
			return p.errorf(c, "terminator must be followed by a newline")
		}
		p.term = false
		p.st = stateSectionName

		return nil
	}

	if p.st == stateComment {
		if c == newlineByte {
			p.st = p.resume
		}

		return nil
	}
	if c == commentByte {
		p.resume, p.st = p.st, stateComment

		return nil
	}
	if c == terminatorByte {
		return p.terminate(c)
	}

	switch p.st {
	case stateSectionName:
		if c != newlineByte {
			return p.push(c)
		}
		if len(p.buf) == 0 {
			return nil // blank line between sections
		}
		name := string(p.buf)
		p.buf = p.buf[:0]
		if _, dup := p.t.Section(name); dup {
			return p.errorf(c, "duplicate section %q", name)
		}
		p.sect = &Section{Name: name}
		p.st = stateLineID

	case stateLineID:
		switch c {
		case separatorByte:
			if len(p.buf) == 0 {
				return nil
			}
			if err := p.openItem(c); err != nil {
				return err
			}
			p.st = stateValue
		case newlineByte:
			if len(p.buf) == 0 {
				return nil // blank line between items
			}
			if err := p.openItem(c); err != nil {
				return err
			}
			p.closeItem()
		default:
			return p.push(c)
		}

	case stateValue:
		switch c {
		case separatorByte:
			return p.closeValue(c)
		case newlineByte:
			if err := p.closeValue(c); err != nil {
				return err
			}
			p.closeItem()
			p.st = stateLineID
		default:
			return p.push(c)
		}
	}

	return nil
}

// terminate finalizes the in-progress item and appends the current section.
func (p *parser) terminate(c byte) error {
	switch p.st {
	case stateSectionName:
		return p.errorf(c, "terminator while reading a section name")
	case stateLineID:
		if len(p.buf) > 0 {
			if err := p.openItem(c); err != nil {
				return err
			}
			p.closeItem()
		}
	case stateValue:
		if err := p.closeValue(c); err != nil {
			return err
		}
		p.closeItem()
	}
	p.t.Sections = append(p.t.Sections, *p.sect)
	p.sect = nil
	p.term = true

	return nil
}

// push appends c to the token buffer, enforcing MaxTokenLen.
func (p *parser) push(c byte) error {
	p.buf = append(p.buf, c)
	if len(p.buf) >= MaxTokenLen {
		return p.errorf(c, "token reaches %d bytes", MaxTokenLen)
	}

	return nil
}

// openItem parses the buffered id and starts a new item.
func (p *parser) openItem(c byte) error {
	id, err := strconv.Atoi(string(p.buf))
	if err != nil {
		return p.errorf(c, "malformed item id %q", p.buf)
	}
	p.buf = p.buf[:0]
	p.item = &Item{ID: id}

	return nil
}

// closeValue types and appends the buffered token; an empty buffer is a no-op.
func (p *parser) closeValue(c byte) error {
	if len(p.buf) == 0 {
		return nil
	}
	tok := string(p.buf)
	p.buf = p.buf[:0]
	if strings.IndexByte(tok, decimalByte) >= 0 {
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return p.errorf(c, "malformed float %q", tok)
		}
		p.item.Values = append(p.item.Values, Float(f))

		return nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return p.errorf(c, "malformed int %q", tok)
	}
	p.item.Values = append(p.item.Values, Int(n))

	return nil
}

// closeItem moves the in-progress item into the current section.
func (p *parser) closeItem() {
	p.sect.Items = append(p.sect.Items, *p.item)
	p.item = nil
}

func (p *parser) errorf(c byte, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Offset: p.off,
		Line:   p.line,
		Column: p.col,
		Char:   c,
		Msg:    fmt.Sprintf(format, args...),
	}
}
