// Package statics assembles and solves the static-equilibrium equations of a
// truss.Structure.
//
// Two formulations are provided and are deliberately kept apart:
//
//   - ReactionBased: unknowns are one axial force per beam followed by the
//     three reaction magnitudes. The right-hand side is the negated applied
//     load per node. Requires exactly three constraints, no walls, and
//     beams + 3 == 2·nodes.
//   - DirectMapping: unknowns are beam forces only. The coefficient matrix is
//     the 2N×B connectivity matrix and the right-hand side is the applied-load
//     vector, not negated. Requires beams == 2·nodes. Walls are ignored.
//
// Rows are laid out as every node's x equation first, then every node's y
// equation (row n and row n+N for node index n). A beam column for a beam
// from n1 to n2 holds the unit vector (p1-p2)/L at n1 and its negation at n2.
//
// Sign of solved beam forces: with that column, a positive Beam.Force pushes
// both end nodes away from the member, so positive means compression and
// negative means tension. This is the opposite of the tension-positive
// convention common in structural texts; negate a force to convert.
//
// Solve assembles, runs matrix.Solve and writes results back onto the
// Structure. A singular system surfaces as matrix.ErrSingular and nothing is
// written back. Shape problems found before solving match truss.ErrValidation.
//
// GlobalReactions solves the three reactions from rigid-body equilibrium
// (net x, net y and net torque about the origin) without touching beams;
// Residual and Verify check nodal equilibrium after a solve.
package statics
