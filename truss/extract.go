package truss

import (
	"fmt"

	"github.com/katalvlaran/truss/table"
)

// Section names recognized by FromTable.
const (
	SectionNodes       = "Nodes"
	SectionBeams       = "Beams"
	SectionForces      = "Forces"
	SectionConstraints = "Constraints"
	SectionWalls       = "Walls"
)

// FromTable extracts a Structure from a parsed table and resolves it.
//
// Item schemas (positional, typed):
//
//	Nodes       = [x:float, y:float]
//	Beams       = [n1:int, n2:int]
//	Forces      = [node:int, theta:float, mag:float]
//	Constraints = [node:int, theta:float]
//	Walls       = [m:float, b:float, theta:float, above:int]   (optional section)
//
// Extra values past the schema and unknown sections are ignored.
// A missing required section or a missing/mistyped value is ErrSchema;
// reference problems are ErrValidation (see Resolve).
func FromTable(t *table.Table) (*Structure, error) {
	if t == nil {
		return nil, fmt.Errorf("nil table: %w", ErrSchema)
	}
	s := &Structure{}

	sec, err := required(t, SectionNodes)
	if err != nil {
		return nil, err
	}
	s.Nodes = make([]Node, 0, len(sec.Items))
	for i := range sec.Items {
		it := &sec.Items[i]
		n := Node{ID: it.ID}
		if n.Pos.X, err = it.Float(0); err != nil {
			return nil, schemaErrorf(SectionNodes, err)
		}
		if n.Pos.Y, err = it.Float(1); err != nil {
			return nil, schemaErrorf(SectionNodes, err)
		}
		s.Nodes = append(s.Nodes, n)
	}

	if sec, err = required(t, SectionBeams); err != nil {
		return nil, err
	}
	s.Beams = make([]Beam, 0, len(sec.Items))
	for i := range sec.Items {
		it := &sec.Items[i]
		b := Beam{ID: it.ID}
		if b.N1, err = it.Int(0); err != nil {
			return nil, schemaErrorf(SectionBeams, err)
		}
		if b.N2, err = it.Int(1); err != nil {
			return nil, schemaErrorf(SectionBeams, err)
		}
		s.Beams = append(s.Beams, b)
	}

	if sec, err = required(t, SectionForces); err != nil {
		return nil, err
	}
	s.Forces = make([]Force, 0, len(sec.Items))
	for i := range sec.Items {
		it := &sec.Items[i]
		f := Force{ID: it.ID}
		if f.Node, err = it.Int(0); err != nil {
			return nil, schemaErrorf(SectionForces, err)
		}
		if f.Theta, err = it.Float(1); err != nil {
			return nil, schemaErrorf(SectionForces, err)
		}
		if f.Mag, err = it.Float(2); err != nil {
			return nil, schemaErrorf(SectionForces, err)
		}
		s.Forces = append(s.Forces, f)
	}

	if sec, err = required(t, SectionConstraints); err != nil {
		return nil, err
	}
	s.Constraints = make([]Constraint, 0, len(sec.Items))
	for i := range sec.Items {
		it := &sec.Items[i]
		c := Constraint{ID: it.ID}
		if c.Node, err = it.Int(0); err != nil {
			return nil, schemaErrorf(SectionConstraints, err)
		}
		if c.Theta, err = it.Float(1); err != nil {
			return nil, schemaErrorf(SectionConstraints, err)
		}
		s.Constraints = append(s.Constraints, c)
	}

	if sec, ok := t.Section(SectionWalls); ok {
		s.Walls = make([]Wall, 0, len(sec.Items))
		for i := range sec.Items {
			it := &sec.Items[i]
			w := Wall{ID: it.ID}
			if w.M, err = it.Float(0); err != nil {
				return nil, schemaErrorf(SectionWalls, err)
			}
			if w.B, err = it.Float(1); err != nil {
				return nil, schemaErrorf(SectionWalls, err)
			}
			if w.Theta, err = it.Float(2); err != nil {
				return nil, schemaErrorf(SectionWalls, err)
			}
			var above int
			if above, err = it.Int(3); err != nil {
				return nil, schemaErrorf(SectionWalls, err)
			}
			w.Above = above != 0
			s.Walls = append(s.Walls, w)
		}
	}

	if err = s.Resolve(); err != nil {
		return nil, err
	}

	return s, nil
}

func required(t *table.Table, name string) (*table.Section, error) {
	sec, ok := t.Section(name)
	if !ok {
		return nil, fmt.Errorf("section %q missing: %w", name, ErrSchema)
	}

	return sec, nil
}

// schemaErrorf tags a table accessor error with the section and ErrSchema.
func schemaErrorf(section string, err error) error {
	return fmt.Errorf("section %q: %w: %w", section, ErrSchema, err)
}
