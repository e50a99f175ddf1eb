// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Value is a tagged scalar: exactly one of Int or Float.
type Value interface {
	fmt.Stringer
	isValue()
}

// Int is an integer value (a token without '.').
type Int int

// Float is a single-precision value (a token containing '.').
type Float float32

func (Int) isValue()   {}
func (Float) isValue() {}

// String renders the integer in base 10.
func (v Int) String() string { return strconv.Itoa(int(v)) }

// String renders the shortest exact float32 form without an exponent and
// keeps a '.' so the text reads back as a Float.
func (v Float) String() string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// Item is one line of a section: an id followed by typed values.
type Item struct {
	ID     int
	Values []Value
}

// Len returns the number of values on the item.
func (it *Item) Len() int { return len(it.Values) }

// Value returns the raw value at idx or ErrSchema when idx is out of range.
func (it *Item) Value(idx int) (Value, error) {
	if idx < 0 || idx >= len(it.Values) {
		return nil, schemaErrorf(it.ID, idx, "item has %d values", len(it.Values))
	}

	return it.Values[idx], nil
}

// Int returns the Int at idx. A Float at that position is ErrSchema.
func (it *Item) Int(idx int) (int, error) {
	v, err := it.Value(idx)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case Int:
		return int(x), nil
	default:
		return 0, schemaErrorf(it.ID, idx, "want int, got float %s", x)
	}
}

// Float returns the Float at idx. An Int at that position is ErrSchema.
func (it *Item) Float(idx int) (float32, error) {
	v, err := it.Value(idx)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case Float:
		return float32(x), nil
	default:
		return 0, schemaErrorf(it.ID, idx, "want float, got int %s", x)
	}
}

// Section is a named, ordered list of items.
type Section struct {
	Name  string
	Items []Item
}

// Item returns the first item with the given id.
// Ids are not unique; absence is reported by ok == false.
func (s *Section) Item(id int) (*Item, bool) {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i], true
		}
	}

	return nil, false
}

// Table is the parsed form of one source.
type Table struct {
	Loc      string // source location as given to Parse, Read or Load
	Sections []Section
}

// Section returns the section with the exact name.
func (t *Table) Section(name string) (*Section, bool) {
	for i := range t.Sections {
		if t.Sections[i].Name == name {
			return &t.Sections[i], true
		}
	}

	return nil, false
}

// WriteTo renders t back into the text format. The output parses to an
// equal Table.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, s := range t.Sections {
		b.WriteString(s.Name)
		b.WriteByte('\n')
		for _, it := range s.Items {
			b.WriteString(strconv.Itoa(it.ID))
			for _, v := range it.Values {
				b.WriteByte(' ')
				b.WriteString(v.String())
			}
			b.WriteByte('\n')
		}
		b.WriteString("%\n")
	}
	n, err := io.WriteString(w, b.String())

	return int64(n), err
}
