package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/truss/table"
	"github.com/katalvlaran/truss/truss"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var errBadFormat = errors.New("unknown output format")

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
	format  string

	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:   "trussctl",
		Short: "Solve static equilibrium of 2D pin-jointed trusses",
		Long: `trussctl reads a sectioned truss description (Nodes, Beams, Forces,
Constraints and optional Walls), assembles the equilibrium equations and
solves them for beam forces and support reactions.

Example: trussctl solve bridge.truss --format yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if g.format != formatText && g.format != formatYAML {
				return fmt.Errorf("%w %q (want %s or %s)", errBadFormat, g.format, formatText, formatYAML)
			}
			out := io.Discard
			if g.verbose {
				out = cmd.ErrOrStderr()
			}
			g.logger = log.New(out, "trussctl: ", log.Lmsgprefix)

			return nil
		},
	}
	addGlobalFlags(rootCmd.PersistentFlags(), g)

	rootCmd.AddCommand(
		newSolveCmd(g),
		newCheckCmd(g),
		newInspectCmd(g),
	)

	return rootCmd
}

func addGlobalFlags(fs *pflag.FlagSet, g *globalOptions) {
	fs.BoolVarP(&g.verbose, "verbose", "v", false, "log each stage to stderr")
	fs.StringVarP(&g.format, "format", "o", formatText, "output format: text or yaml")
}

// loadStructure parses path and extracts a resolved Structure.
func (g *globalOptions) loadStructure(path string) (*truss.Structure, error) {
	g.logger.Printf("parsing %s", path)
	tb, err := table.Load(path)
	if err != nil {
		return nil, err
	}
	g.logger.Printf("parsed %d sections", len(tb.Sections))

	s, err := truss.FromTable(tb)
	if err != nil {
		return nil, err
	}
	g.logger.Printf("extracted %d nodes, %d beams, %d forces, %d constraints, %d walls",
		len(s.Nodes), len(s.Beams), len(s.Forces), len(s.Constraints), len(s.Walls))

	return s, nil
}
