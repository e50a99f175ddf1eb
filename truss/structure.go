package truss

// Structure owns every entity of one analysis run.
//
// Entities reference nodes by id; Resolve maps those ids to indices into
// Nodes and derives beam lengths. The exported slices may be edited freely
// between calls; every statics entry point resolves again before reading
// indices or lengths.
type Structure struct {
	Nodes       []Node
	Beams       []Beam
	Forces      []Force
	Constraints []Constraint
	Walls       []Wall

	byID   map[int]int // node id -> index in Nodes, as of the last Resolve
	solved bool
}

// New copies the given entities into a fresh Structure and resolves it.
// Any slice may be nil.
func New(nodes []Node, beams []Beam, forces []Force, constraints []Constraint, walls []Wall) (*Structure, error) {
	s := &Structure{
		Nodes:       append([]Node(nil), nodes...),
		Beams:       append([]Beam(nil), beams...),
		Forces:      append([]Force(nil), forces...),
		Constraints: append([]Constraint(nil), constraints...),
		Walls:       append([]Wall(nil), walls...),
	}
	if err := s.Resolve(); err != nil {
		return nil, err
	}

	return s, nil
}

// Resolve validates node references and derives beam lengths.
//
// Errors (all match ErrValidation):
//   - duplicate node id;
//   - a beam, force or constraint naming a node id that does not exist;
//   - a beam of zero length (coincident or identical end nodes).
//
// Resolve may be called any number of times. On error node lookups fall
// back to a linear scan.
func (s *Structure) Resolve() error {
	s.byID = nil
	byID := make(map[int]int, len(s.Nodes))
	for i, n := range s.Nodes {
		if _, dup := byID[n.ID]; dup {
			return validationErrorf("node", n.ID, "duplicate id")
		}
		byID[n.ID] = i
	}

	lookup := func(kind string, id, node int) (int, error) {
		idx, ok := byID[node]
		if !ok {
			return 0, validationErrorf(kind, id, "unknown node %d", node)
		}

		return idx, nil
	}

	var err error
	for i := range s.Beams {
		b := &s.Beams[i]
		if b.i1, err = lookup("beam", b.ID, b.N1); err != nil {
			return err
		}
		if b.i2, err = lookup("beam", b.ID, b.N2); err != nil {
			return err
		}
		b.Length = s.Nodes[b.i1].Pos.Sub(s.Nodes[b.i2].Pos).Norm()
		if b.Length == 0 {
			return validationErrorf("beam", b.ID, "zero length between nodes %d and %d", b.N1, b.N2)
		}
	}
	for i := range s.Forces {
		f := &s.Forces[i]
		if f.idx, err = lookup("force", f.ID, f.Node); err != nil {
			return err
		}
	}
	for i := range s.Constraints {
		c := &s.Constraints[i]
		if c.idx, err = lookup("constraint", c.ID, c.Node); err != nil {
			return err
		}
	}

	s.byID = byID

	return nil
}

// NodeIndex returns the index of the node with the given id.
func (s *Structure) NodeIndex(id int) (int, bool) {
	if idx, ok := s.byID[id]; ok && idx < len(s.Nodes) && s.Nodes[idx].ID == id {
		return idx, true
	}
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return i, true
		}
	}

	return 0, false
}

// Node returns the node with the given id.
func (s *Structure) Node(id int) (*Node, bool) {
	idx, ok := s.NodeIndex(id)
	if !ok {
		return nil, false
	}

	return &s.Nodes[idx], true
}

// Beam returns the first beam with the given id.
func (s *Structure) Beam(id int) (*Beam, bool) {
	for i := range s.Beams {
		if s.Beams[i].ID == id {
			return &s.Beams[i], true
		}
	}

	return nil, false
}

// Constraint returns the first constraint with the given id.
func (s *Structure) Constraint(id int) (*Constraint, bool) {
	for i := range s.Constraints {
		if s.Constraints[i].ID == id {
			return &s.Constraints[i], true
		}
	}

	return nil, false
}

// MarkSolved records that solved forces were written back.
func (s *Structure) MarkSolved() { s.solved = true }

// Solved reports whether a solver wrote results since the last Reset.
func (s *Structure) Solved() bool { return s.solved }

// Reset clears every solved beam force and reaction magnitude.
func (s *Structure) Reset() {
	for i := range s.Beams {
		s.Beams[i].Force = 0
	}
	for i := range s.Constraints {
		s.Constraints[i].Force = 0
	}
	s.solved = false
}
