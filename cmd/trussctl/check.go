package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/truss/statics"
	"github.com/katalvlaran/truss/truss"
)

var errNotSolvable = errors.New("structure cannot be solved by any formulation")

type formulationCheck struct {
	Name  string `yaml:"name"`
	OK    bool   `yaml:"ok"`
	Issue string `yaml:"issue,omitempty"`
}

type checkReport struct {
	Source       string             `yaml:"source"`
	Nodes        int                `yaml:"nodes"`
	Beams        int                `yaml:"beams"`
	Forces       int                `yaml:"forces"`
	Constraints  int                `yaml:"constraints"`
	Walls        int                `yaml:"walls"`
	Components   int                `yaml:"components"`
	Disconnected []int              `yaml:"disconnected,omitempty"`
	Formulations []formulationCheck `yaml:"formulations"`
	Reactions    []float32          `yaml:"global_reactions,omitempty"`
}

func newCheckCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report determinacy and connectivity without solving",
		Long: `check parses and validates FILE, then reports which formulations accept
its shape, whether every node is connected, and the support reactions from
whole-structure equilibrium when exactly three constraints are present.
It fails when the structure is disconnected or no formulation applies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, g, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, g *globalOptions, path string) error {
	s, err := g.loadStructure(path)
	if err != nil {
		return err
	}
	r := newCheckReport(path, s)
	g.logger.Printf("%d component(s)", r.Components)

	if len(s.Constraints) == statics.ReactionConstraints {
		if v, gerr := statics.GlobalReactions(s); gerr != nil {
			g.logger.Printf("global reactions: %v", gerr)
		} else {
			r.Reactions = v.Values()
		}
	}

	if err = writeReport(cmd.OutOrStdout(), g.format, r); err != nil {
		return err
	}
	if len(r.Disconnected) > 0 {
		return fmt.Errorf("nodes %v are disconnected: %w", r.Disconnected, errNotSolvable)
	}
	for _, fc := range r.Formulations {
		if fc.OK {
			return nil
		}
	}

	return errNotSolvable
}

func newCheckReport(path string, s *truss.Structure) *checkReport {
	r := &checkReport{
		Source:       path,
		Nodes:        len(s.Nodes),
		Beams:        len(s.Beams),
		Forces:       len(s.Forces),
		Constraints:  len(s.Constraints),
		Walls:        len(s.Walls),
		Components:   len(s.Components()),
		Disconnected: s.Disconnected(),
	}
	for _, f := range []statics.Formulation{statics.ReactionBased{}, statics.DirectMapping{}} {
		fc := formulationCheck{Name: f.Name(), OK: true}
		if err := f.Validate(s); err != nil {
			fc.OK, fc.Issue = false, err.Error()
		}
		r.Formulations = append(r.Formulations, fc)
	}

	return r
}

func (r *checkReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "source:\t%s\n", r.Source)
	fmt.Fprintf(tw, "entities:\t%d nodes, %d beams, %d forces, %d constraints, %d walls\n",
		r.Nodes, r.Beams, r.Forces, r.Constraints, r.Walls)
	if len(r.Disconnected) > 0 {
		fmt.Fprintf(tw, "connectivity:\t%d components, disconnected nodes %v\n", r.Components, r.Disconnected)
	} else {
		fmt.Fprintf(tw, "connectivity:\tconnected\n")
	}
	for _, fc := range r.Formulations {
		status := "ok"
		if !fc.OK {
			status = fc.Issue
		}
		fmt.Fprintf(tw, "%s:\t%s\n", fc.Name, status)
	}
	if len(r.Reactions) > 0 {
		fmt.Fprintf(tw, "global reactions:\t")
		for i, v := range r.Reactions {
			if i > 0 {
				fmt.Fprint(tw, " ")
			}
			fmt.Fprintf(tw, "%.4f", v)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
