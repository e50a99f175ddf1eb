package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/truss/table"
)

type itemDump struct {
	ID     int   `yaml:"id"`
	Values []any `yaml:"values,flow"`
}

type sectionDump struct {
	Name  string     `yaml:"name"`
	Items []itemDump `yaml:"items"`
}

// tableDump is the YAML view of a parsed table; the text view is the
// canonical source format.
type tableDump struct {
	t        *table.Table
	Source   string        `yaml:"source"`
	Sections []sectionDump `yaml:"sections"`
}

func newInspectCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Dump the parsed sections and items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g.logger.Printf("parsing %s", args[0])
			tb, err := table.Load(args[0])
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), g.format, newTableDump(tb))
		},
	}
}

func newTableDump(tb *table.Table) *tableDump {
	d := &tableDump{t: tb, Source: tb.Loc}
	for _, s := range tb.Sections {
		sd := sectionDump{Name: s.Name, Items: make([]itemDump, 0, len(s.Items))}
		for _, it := range s.Items {
			dump := itemDump{ID: it.ID, Values: make([]any, 0, len(it.Values))}
			for _, v := range it.Values {
				switch x := v.(type) {
				case table.Int:
					dump.Values = append(dump.Values, int(x))
				case table.Float:
					dump.Values = append(dump.Values, float32(x))
				}
			}
			sd.Items = append(sd.Items, dump)
		}
		d.Sections = append(d.Sections, sd)
	}

	return d
}

func (d *tableDump) writeText(w io.Writer) error {
	_, err := d.t.WriteTo(w)

	return err
}
