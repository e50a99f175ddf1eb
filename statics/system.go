package statics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/truss/matrix"
	"github.com/katalvlaran/truss/truss"
)

// Kind tells what a System column solves for.
type Kind uint8

const (
	KindBeam       Kind = iota // axial force of a beam
	KindConstraint             // reaction magnitude of a constraint
)

func (k Kind) String() string {
	switch k {
	case KindBeam:
		return "beam"
	case KindConstraint:
		return "constraint"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Column names the unknown behind one column of System.A.
type Column struct {
	Kind Kind
	ID   int
}

// System is an assembled linear system A·x = B.
// Columns[j] describes unknown x[j].
type System struct {
	Formulation string
	A           *matrix.Dense
	B           *matrix.Vector
	Columns     []Column
}

// direction returns the unit vector (p1 - p2) / L of beam b.
func direction(s *truss.Structure, b *truss.Beam) (dx, dy float32) {
	i1, i2 := b.Ends()
	d := s.Nodes[i1].Pos.Sub(s.Nodes[i2].Pos)

	return d.X / b.Length, d.Y / b.Length
}

// polar returns (cos θ, sin θ) in single precision.
func polar(theta float32) (c, sn float32) {
	s, co := math.Sincos(float64(theta))

	return float32(co), float32(s)
}

// fillBeamColumns writes one column per beam into a (2N rows, at least B cols).
// Row n1 gets (dx, dy) in the x and y blocks; row n2 gets (-dx, -dy).
func fillBeamColumns(a *matrix.Dense, s *truss.Structure) error {
	n := len(s.Nodes)
	for j := range s.Beams {
		b := &s.Beams[j]
		dx, dy := direction(s, b)
		i1, i2 := b.Ends()
		for _, e := range [...]struct {
			row int
			v   float32
		}{
			{i1, dx}, {i1 + n, dy},
			{i2, -dx}, {i2 + n, -dy},
		} {
			if err := a.Set(e.row, j, e.v); err != nil {
				return err
			}
		}
	}

	return nil
}

// loadVector accumulates sign·(mag·cos θ, mag·sin θ) of every force into a
// 2N vector.
func loadVector(s *truss.Structure, sign float32) (*matrix.Vector, error) {
	n := len(s.Nodes)
	v, err := matrix.NewVector(2 * n)
	if err != nil {
		return nil, err
	}
	for i := range s.Forces {
		f := &s.Forces[i]
		c, sn := polar(f.Theta)
		idx := f.NodeIndex()
		if err = v.Add(idx, sign*f.Mag*c); err != nil {
			return nil, err
		}
		if err = v.Add(idx+n, sign*f.Mag*sn); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// ConnectivityMatrix builds the 2N×B matrix C with node net force = C · beam forces.
// s is resolved first and must hold at least one node and one beam.
func ConnectivityMatrix(s *truss.Structure) (*matrix.Dense, error) {
	if s == nil {
		return nil, staticsErrorf(opConnectivity, ErrNilInput)
	}
	if err := resolve(opConnectivity, s); err != nil {
		return nil, err
	}
	c, err := matrix.NewDense(2*len(s.Nodes), len(s.Beams))
	if err != nil {
		return nil, staticsErrorf(opConnectivity, err)
	}
	if err = fillBeamColumns(c, s); err != nil {
		return nil, staticsErrorf(opConnectivity, err)
	}

	return c, nil
}

// AppliedLoads returns the 2N applied-load vector (x block then y block),
// accumulating mag·cos θ and mag·sin θ per force. Not negated.
func AppliedLoads(s *truss.Structure) (*matrix.Vector, error) {
	if s == nil {
		return nil, staticsErrorf(opAppliedLoads, ErrNilInput)
	}
	if err := resolve(opAppliedLoads, s); err != nil {
		return nil, err
	}
	v, err := loadVector(s, 1)
	if err != nil {
		return nil, staticsErrorf(opAppliedLoads, err)
	}

	return v, nil
}

// beamForces collects Beam.Force in beam order.
func beamForces(s *truss.Structure) (*matrix.Vector, error) {
	vals := make([]float32, len(s.Beams))
	for i := range s.Beams {
		vals[i] = s.Beams[i].Force
	}

	return matrix.NewVectorFrom(vals)
}
