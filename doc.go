// Package truss is the root of a small toolkit for the static analysis of
// two-dimensional pin-jointed trusses: point nodes joined by straight,
// axially loaded beams, held by directional supports and pushed by point
// loads.
//
// The work is split across four packages, each usable on its own:
//
//	table/    – sectioned, whitespace-delimited text format (parse and render)
//	truss/    – structure model: nodes, beams, forces, constraints, walls
//	matrix/   – dense float32 matrices and Gaussian elimination
//	statics/  – equilibrium assembly and solving (reaction-based, direct-mapping)
//
// and the trussctl command wires them together:
//
//	trussctl solve bridge.truss --format yaml
//	trussctl check bridge.truss
//	trussctl inspect bridge.truss
//
// A minimal input file, a 3-4-5 triangle pushed sideways at its apex:
//
//	     3
//	     |\
//	  F→ | \
//	     |  \
//	     1───2
//	     ^   ^
//
//	Nodes
//	1 0.0 0.0
//	2 3.0 0.0
//	3 0.0 4.0
//	%
//	Beams
//	1 1 2
//	2 2 3
//	3 3 1
//	%
//	Forces
//	1 3 0.0 5.0
//	%
//	Constraints
//	1 1 0.0
//	2 1 1.5707964
//	3 2 1.5707964
//	%
//
// Angles are in radians, counter-clockwise from +x. A positive solved beam
// force means compression and a negative one tension; package statics
// documents why.
package truss
