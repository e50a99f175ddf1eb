package statics

import (
	"github.com/katalvlaran/truss/matrix"
	"github.com/katalvlaran/truss/truss"
)

// DirectMapping solves C · f = L for beam forces f, where C is the
// connectivity matrix and L the applied-load vector (not negated).
//
// C is square only when beams == 2·nodes. Every beam column holds a vector
// and its negation, so the x rows (and the y rows) of C always sum to zero;
// in exact arithmetic the square system is singular and Solve reports
// matrix.ErrSingular.
type DirectMapping struct{}

var _ Formulation = DirectMapping{}

// Name implements Formulation.
func (DirectMapping) Name() string { return "direct-mapping" }

// Validate resolves s, then checks that it has nodes and beams == 2·nodes.
// Walls and constraints are ignored.
func (f DirectMapping) Validate(s *truss.Structure) error {
	if s == nil {
		return ErrNilInput
	}
	if err := s.Resolve(); err != nil {
		return err
	}
	if len(s.Nodes) == 0 {
		return validationErrorf(f.Name(), "need at least one node")
	}
	if nb, nn := len(s.Beams), len(s.Nodes); nb != 2*nn {
		return validationErrorf(f.Name(), "beams must equal 2·nodes, got %d != 2·%d", nb, nn)
	}

	return nil
}

// Assemble implements Formulation.
func (f DirectMapping) Assemble(s *truss.Structure) (*System, error) {
	if err := f.Validate(s); err != nil {
		return nil, err
	}
	a, err := ConnectivityMatrix(s)
	if err != nil {
		return nil, err
	}
	b, err := AppliedLoads(s)
	if err != nil {
		return nil, err
	}
	cols := make([]Column, len(s.Beams))
	for i := range s.Beams {
		cols[i] = Column{Kind: KindBeam, ID: s.Beams[i].ID}
	}

	return &System{Formulation: f.Name(), A: a, B: b, Columns: cols}, nil
}

// Apply writes every entry of x to Beam.Force.
func (DirectMapping) Apply(s *truss.Structure, x *matrix.Vector) error {
	if err := matrix.ValidateVecLen(x, len(s.Beams)); err != nil {
		return err
	}
	for i, v := range x.Values() {
		s.Beams[i].Force = v
	}

	return nil
}

// Residual returns C · f - L for the beam forces currently on s.
func (DirectMapping) Residual(s *truss.Structure) (*matrix.Vector, error) {
	c, err := ConnectivityMatrix(s)
	if err != nil {
		return nil, err
	}
	forces, err := beamForces(s)
	if err != nil {
		return nil, err
	}
	loads, err := AppliedLoads(s)
	if err != nil {
		return nil, err
	}
	r, err := matrix.Residual(c, forces, loads)
	if err != nil {
		return nil, staticsErrorf(opResidual, err)
	}

	return r, nil
}
