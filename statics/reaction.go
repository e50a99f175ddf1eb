package statics

import (
	"github.com/katalvlaran/truss/matrix"
	"github.com/katalvlaran/truss/truss"
)

// ReactionConstraints is the number of reaction unknowns the reaction-based
// formulation solves for.
const ReactionConstraints = 3

// ReactionBased solves for every beam force and the three reaction magnitudes.
//
// Columns are the beams in order, then the constraints in order. A
// constraint at node n with angle θ puts cos θ in row n and sin θ in row n+N.
// The right-hand side is the negated applied load, so a solution satisfies
// beam contributions + reactions + applied loads = 0 at every node.
type ReactionBased struct{}

var _ Formulation = ReactionBased{}

// Name implements Formulation.
func (ReactionBased) Name() string { return "reaction-based" }

// Validate resolves s, then checks the constraint count, the absence of
// walls and beams + 3 == 2·nodes.
func (f ReactionBased) Validate(s *truss.Structure) error {
	if s == nil {
		return ErrNilInput
	}
	if err := s.Resolve(); err != nil {
		return err
	}
	if len(s.Constraints) != ReactionConstraints {
		return validationErrorf(f.Name(), "need exactly %d constraints, got %d", ReactionConstraints, len(s.Constraints))
	}
	if len(s.Walls) != 0 {
		return validationErrorf(f.Name(), "walls are not supported, got %d", len(s.Walls))
	}
	if nb, nn := len(s.Beams), len(s.Nodes); nb+ReactionConstraints != 2*nn {
		return validationErrorf(f.Name(), "beams + %d must equal 2·nodes, got %d + %d != 2·%d",
			ReactionConstraints, nb, ReactionConstraints, nn)
	}

	return nil
}

// Assemble implements Formulation.
func (f ReactionBased) Assemble(s *truss.Structure) (*System, error) {
	if err := f.Validate(s); err != nil {
		return nil, err
	}
	n, nb := len(s.Nodes), len(s.Beams)

	a, err := matrix.NewDense(2*n, 2*n)
	if err != nil {
		return nil, err
	}
	if err = fillBeamColumns(a, s); err != nil {
		return nil, err
	}
	cols := make([]Column, 0, 2*n)
	for i := range s.Beams {
		cols = append(cols, Column{Kind: KindBeam, ID: s.Beams[i].ID})
	}
	for k := range s.Constraints {
		c := &s.Constraints[k]
		co, sn := polar(c.Theta)
		idx := c.NodeIndex()
		if err = a.Set(idx, nb+k, co); err != nil {
			return nil, err
		}
		if err = a.Set(idx+n, nb+k, sn); err != nil {
			return nil, err
		}
		cols = append(cols, Column{Kind: KindConstraint, ID: c.ID})
	}

	b, err := loadVector(s, -1)
	if err != nil {
		return nil, err
	}

	return &System{Formulation: f.Name(), A: a, B: b, Columns: cols}, nil
}

// Apply writes x[:B] to Beam.Force and x[B:] to Constraint.Force.
func (f ReactionBased) Apply(s *truss.Structure, x *matrix.Vector) error {
	nb := len(s.Beams)
	if err := matrix.ValidateVecLen(x, nb+len(s.Constraints)); err != nil {
		return err
	}
	vals := x.Values()
	for i := range s.Beams {
		s.Beams[i].Force = vals[i]
	}
	for k := range s.Constraints {
		s.Constraints[k].Force = vals[nb+k]
	}

	return nil
}

// Residual returns the nodal equilibrium residual; see Residual.
func (ReactionBased) Residual(s *truss.Structure) (*matrix.Vector, error) {
	return Residual(s)
}
