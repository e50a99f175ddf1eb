package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/truss/statics"
)

var errBadFormulation = errors.New("unknown formulation")

type solveOptions struct {
	formulation string
	tol         float32
	connected   bool
}

func newSolveCmd(g *globalOptions) *cobra.Command {
	o := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve beam forces and support reactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, o, args[0])
		},
	}
	addSolveFlags(cmd.Flags(), o)

	return cmd
}

func addSolveFlags(fs *pflag.FlagSet, o *solveOptions) {
	fs.StringVarP(&o.formulation, "formulation", "f", "reaction", "equilibrium formulation: reaction or direct")
	fs.Float32Var(&o.tol, "tol", 0, "fail when any equilibrium residual exceeds this bound (0 disables)")
	fs.BoolVar(&o.connected, "connected", false, "reject structures whose beams leave nodes disconnected")
}

// formulationFor maps a flag value to a Formulation.
func formulationFor(name string) (statics.Formulation, error) {
	switch name {
	case "reaction", "reaction-based":
		return statics.ReactionBased{}, nil
	case "direct", "direct-mapping":
		return statics.DirectMapping{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want reaction or direct)", errBadFormulation, name)
	}
}

func runSolve(cmd *cobra.Command, g *globalOptions, o *solveOptions, path string) error {
	f, err := formulationFor(o.formulation)
	if err != nil {
		return err
	}
	s, err := g.loadStructure(path)
	if err != nil {
		return err
	}

	var opts []statics.Option
	if o.tol > 0 {
		opts = append(opts, statics.WithVerify(o.tol))
	}
	if o.connected {
		opts = append(opts, statics.WithConnectivityCheck())
	}

	g.logger.Printf("solving with %s", f.Name())
	sol, err := statics.Solve(s, f, opts...)
	if err != nil {
		return err
	}
	g.logger.Printf("max residual %g", sol.MaxResidual)

	return writeReport(cmd.OutOrStdout(), g.format, newSolveReport(path, s, sol))
}
