package truss

import "math"

// Point is a 2D position.
type Point struct {
	X, Y float32
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Norm returns the Euclidean length of p.
func (p Point) Norm() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Node is a pinned joint.
type Node struct {
	ID  int
	Pos Point
}

// Beam is a two-force member between nodes N1 and N2 (node ids).
// Length is derived by Resolve; Force is the solved axial force.
type Beam struct {
	ID     int
	N1, N2 int
	Length float32
	Force  float32

	i1, i2 int
}

// Ends returns the resolved indices of N1 and N2 in Structure.Nodes.
func (b *Beam) Ends() (int, int) { return b.i1, b.i2 }

// Force is an applied point load of magnitude Mag along angle Theta (radians).
type Force struct {
	ID    int
	Node  int
	Theta float32
	Mag   float32

	idx int
}

// NodeIndex returns the resolved index of the loaded node.
func (f *Force) NodeIndex() int { return f.idx }

// Constraint is a support reaction acting along a fixed angle Theta (radians).
// Force is the solved reaction magnitude.
type Constraint struct {
	ID    int
	Node  int
	Theta float32
	Force float32

	idx int
}

// NodeIndex returns the resolved index of the supported node.
func (c *Constraint) NodeIndex() int { return c.idx }

// Wall is a one-sided positional constraint along the line y = M·x + B.
// Theta is the direction normal to the line; Above selects the allowed side.
// No formulation in this module consumes walls yet.
type Wall struct {
	ID    int
	M, B  float32
	Theta float32
	Above bool
}
