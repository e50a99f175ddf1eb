// Package truss holds the typed model of a 2D pin-jointed structure:
// nodes, beams, applied forces, support constraints and walls.
//
// A Structure is extracted from a parsed table.Table with FromTable, or built
// from values with New. Both run Resolve, which checks that node ids are
// unique and that every beam, force and constraint references an existing
// node. References are kept twice: as the node id written in the source and
// as a resolved index into Structure.Nodes, so lookups never hold pointers
// into a slice that may grow.
//
// Solvers (see package statics) write Beam.Force and Constraint.Force back
// onto the Structure and mark it solved; Reset clears those results.
package truss
