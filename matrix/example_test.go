package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/truss/matrix"
)

// ExampleSolve solves a 2×2 system that needs a row swap.
func ExampleSolve() {
	a, _ := matrix.NewDenseFrom(2, 2, []float32{
		0, 2,
		4, 0,
	})
	b, _ := matrix.NewVectorFrom([]float32{6, 8})

	x, err := matrix.Solve(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(x)
	// Output:
	// [2, 3]
}

// ExampleSolve_singular shows how to read the failing column.
func ExampleSolve_singular() {
	a, _ := matrix.NewDenseFrom(2, 2, []float32{
		1, 2,
		2, 4,
	})
	b, _ := matrix.NewVectorFrom([]float32{1, 1})

	_, err := matrix.Solve(a, b)
	var se *matrix.SingularError
	if errors.As(err, &se) {
		fmt.Println("singular at column", se.Column)
	}
	// Output:
	// singular at column 1
}
