package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/refactor/matrix"
)

// ExampleNormalizeColumnsL2 centers two columns and rescales them to unit length.
func ExampleNormalizeColumnsL2() {
	X, _ := matrix.NewDenseFrom(4, 2, []float64{
		1, 10,
		1, 30,
		3, 10,
		3, 30,
	})
	Xc, means, _ := matrix.CenterColumns(X)
	Y, norms, _ := matrix.NormalizeColumnsL2(Xc)

	fmt.Println("means:", means)
	fmt.Println("norms:", norms)
	fmt.Print(Y)

	// Output:
	// means: [2 20]
	// norms: [2 20]
	// [-0.5, -0.5]
	// [-0.5, 0.5]
	// [0.5, -0.5]
	// [0.5, 0.5]
}
