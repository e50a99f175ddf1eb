package statics

import (
	"github.com/katalvlaran/truss/matrix"
	"github.com/katalvlaran/truss/truss"
)

// GlobalReactions solves the three reaction magnitudes from rigid-body
// equilibrium of the whole structure and writes them to Constraint.Force.
//
// Equations, one per row, one column per constraint k at position p_k:
//
//	Σ R_k·cos θ_k           = -Σ F·cos φ
//	Σ R_k·sin θ_k           = -Σ F·sin φ
//	Σ R_k·(p_k × û(θ_k))    = -Σ p × F        (torque about the origin)
//
// Beam forces are not touched and the Structure is not marked solved.
// Returns the reaction vector in constraint order.
func GlobalReactions(s *truss.Structure) (*matrix.Vector, error) {
	if s == nil {
		return nil, staticsErrorf(opGlobalReactions, ErrNilInput)
	}
	if err := resolve(opGlobalReactions, s); err != nil {
		return nil, err
	}
	if len(s.Constraints) != ReactionConstraints {
		return nil, staticsErrorf(opGlobalReactions, validationErrorf("global reactions",
			"need exactly %d constraints, got %d", ReactionConstraints, len(s.Constraints)))
	}

	var netX, netY, netT float32
	for i := range s.Forces {
		f := &s.Forces[i]
		c, sn := polar(f.Theta)
		fx, fy := f.Mag*c, f.Mag*sn
		p := s.Nodes[f.NodeIndex()].Pos
		netX += fx
		netY += fy
		netT += p.X*fy - p.Y*fx
	}

	a, err := matrix.NewDense(ReactionConstraints, ReactionConstraints)
	if err != nil {
		return nil, staticsErrorf(opGlobalReactions, err)
	}
	for k := range s.Constraints {
		cst := &s.Constraints[k]
		c, sn := polar(cst.Theta)
		p := s.Nodes[cst.NodeIndex()].Pos
		for row, v := range [ReactionConstraints]float32{c, sn, p.X*sn - p.Y*c} {
			if err = a.Set(row, k, v); err != nil {
				return nil, staticsErrorf(opGlobalReactions, err)
			}
		}
	}
	b, err := matrix.NewVectorFrom([]float32{-netX, -netY, -netT})
	if err != nil {
		return nil, staticsErrorf(opGlobalReactions, err)
	}

	r, err := matrix.Solve(a, b)
	if err != nil {
		return nil, staticsErrorf(opGlobalReactions, err)
	}
	for k, v := range r.Values() {
		s.Constraints[k].Force = v
	}

	return r, nil
}

// NodalLoads returns the 2N net external load per node: applied forces plus
// the reactions currently stored in Constraint.Force.
func NodalLoads(s *truss.Structure) (*matrix.Vector, error) {
	if s == nil {
		return nil, staticsErrorf(opNodalLoads, ErrNilInput)
	}
	if err := resolve(opNodalLoads, s); err != nil {
		return nil, err
	}
	v, err := loadVector(s, 1)
	if err != nil {
		return nil, staticsErrorf(opNodalLoads, err)
	}
	n := len(s.Nodes)
	for k := range s.Constraints {
		cst := &s.Constraints[k]
		c, sn := polar(cst.Theta)
		idx := cst.NodeIndex()
		if err = v.Add(idx, cst.Force*c); err != nil {
			return nil, staticsErrorf(opNodalLoads, err)
		}
		if err = v.Add(idx+n, cst.Force*sn); err != nil {
			return nil, staticsErrorf(opNodalLoads, err)
		}
	}

	return v, nil
}

// Residual returns, per node, the sum of beam axial contributions,
// reactions and applied loads (x block then y block), using the forces
// currently stored on s. A reaction-based solution drives it to zero.
func Residual(s *truss.Structure) (*matrix.Vector, error) {
	r, err := NodalLoads(s)
	if err != nil {
		return nil, staticsErrorf(opResidual, err)
	}
	if len(s.Beams) == 0 {
		return r, nil
	}
	c, err := ConnectivityMatrix(s)
	if err != nil {
		return nil, staticsErrorf(opResidual, err)
	}
	forces, err := beamForces(s)
	if err != nil {
		return nil, staticsErrorf(opResidual, err)
	}
	internal, err := matrix.MulVec(c, forces)
	if err != nil {
		return nil, staticsErrorf(opResidual, err)
	}
	if err = matrix.AddVecInPlace(r, internal); err != nil {
		return nil, staticsErrorf(opResidual, err)
	}

	return r, nil
}
