// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/splinegen/matrix"
)

// ExampleReduce solves a0 = 0, a0 + a1 = 1.
func ExampleReduce() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0},
		{1, 1},
	})
	aug, _ := matrix.Augment(a, []float64{0, 1})

	red, err := matrix.Reduce(aug)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(red.Solution)
	fmt.Print(red.Generated)
	// Output:
	// [0 1]
	// [1, 0, 0]
	// [1, 1, 1]
}
