package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/truss/statics"
	"github.com/katalvlaran/truss/truss"
)

// Member states by sign of the solved axial force. statics solves with the
// beam column (p1-p2)/L, so a positive force pushes both end nodes away from
// the member: positive is compression, negative is tension. This inverts the
// tension-positive textbook convention.
const (
	stateCompression = "compression"
	stateTension     = "tension"
	stateUnloaded    = "unloaded"
)

type beamReport struct {
	ID     int     `yaml:"id"`
	N1     int     `yaml:"n1"`
	N2     int     `yaml:"n2"`
	Length float32 `yaml:"length"`
	Force  float32 `yaml:"force"`
	State  string  `yaml:"state"`
}

type constraintReport struct {
	ID    int     `yaml:"id"`
	Node  int     `yaml:"node"`
	Theta float32 `yaml:"theta"`
	Force float32 `yaml:"force"`
}

type solveReport struct {
	Source      string             `yaml:"source"`
	Formulation string             `yaml:"formulation"`
	MaxResidual float32            `yaml:"max_residual"`
	Beams       []beamReport       `yaml:"beams"`
	Constraints []constraintReport `yaml:"constraints,omitempty"`
}

func memberState(force float32) string {
	switch {
	case force > 0:
		return stateCompression
	case force < 0:
		return stateTension
	default:
		return stateUnloaded
	}
}

func newSolveReport(path string, s *truss.Structure, sol *statics.Solution) *solveReport {
	r := &solveReport{
		Source:      path,
		Formulation: sol.System.Formulation,
		MaxResidual: sol.MaxResidual,
		Beams:       make([]beamReport, 0, len(s.Beams)),
	}
	for _, b := range s.Beams {
		r.Beams = append(r.Beams, beamReport{
			ID: b.ID, N1: b.N1, N2: b.N2, Length: b.Length, Force: b.Force, State: memberState(b.Force),
		})
	}
	if !solvesReactions(sol.System) {
		return r
	}
	for _, c := range s.Constraints {
		r.Constraints = append(r.Constraints, constraintReport{
			ID: c.ID, Node: c.Node, Theta: c.Theta, Force: c.Force,
		})
	}

	return r
}

func solvesReactions(sys *statics.System) bool {
	for _, c := range sys.Columns {
		if c.Kind == statics.KindConstraint {
			return true
		}
	}

	return false
}

// writeReport renders v as YAML, or as aligned text when v knows how.
func writeReport(w io.Writer, format string, v any) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	}
	tr, ok := v.(interface{ writeText(io.Writer) error })
	if !ok {
		return fmt.Errorf("%w: no text form for %T", errBadFormat, v)
	}

	return tr.writeText(w)
}

func (r *solveReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "source:\t%s\n", r.Source)
	fmt.Fprintf(tw, "formulation:\t%s\n", r.Formulation)
	fmt.Fprintf(tw, "max residual:\t%.3g\n\n", r.MaxResidual)

	fmt.Fprintln(tw, "BEAM\tNODES\tLENGTH\tFORCE\tSTATE")
	for _, b := range r.Beams {
		fmt.Fprintf(tw, "%d\t%d-%d\t%.4g\t%.4f\t%s\n", b.ID, b.N1, b.N2, b.Length, b.Force, b.State)
	}
	if len(r.Constraints) > 0 {
		fmt.Fprintln(tw, "\nCONSTRAINT\tNODE\tTHETA\tFORCE")
		for _, c := range r.Constraints {
			fmt.Fprintf(tw, "%d\t%d\t%.4g\t%.4f\n", c.ID, c.Node, c.Theta, c.Force)
		}
	}

	return tw.Flush()
}
