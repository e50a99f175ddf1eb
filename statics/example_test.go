package statics_test

import (
	"fmt"

	"github.com/katalvlaran/truss/statics"
	"github.com/katalvlaran/truss/table"
	"github.com/katalvlaran/truss/truss"
)

func ExampleSolve() {
	src := []byte(`Nodes
1 0.0 0.0
2 3.0 0.0
3 0.0 4.0
%
Beams
1 1 2
2 2 3
3 3 1
%
Forces
1 3 0.0 5.0
%
Constraints
1 1 0.0
2 1 1.5707964
3 2 1.5707964
%
`)
	tb, err := table.Parse(src, "example")
	if err != nil {
		fmt.Println(err)
		return
	}
	s, err := truss.FromTable(tb)
	if err != nil {
		fmt.Println(err)
		return
	}
	if _, err = statics.Solve(s, statics.ReactionBased{}, statics.WithVerify(statics.DefaultTolerance)); err != nil {
		fmt.Println(err)
		return
	}
	for _, b := range s.Beams {
		fmt.Printf("beam %d: %.3f\n", b.ID, b.Force)
	}
	for _, c := range s.Constraints {
		fmt.Printf("constraint %d: %.3f\n", c.ID, c.Force)
	}
	// Output:
	// beam 1: -5.000
	// beam 2: 8.333
	// beam 3: -6.667
	// constraint 1: -5.000
	// constraint 2: -6.667
	// constraint 3: 6.667
}
