package matrix_test

import (
	"fmt"

	"github.com/Zhang-joey/tiny-gpu-next/matrix"
)

// ExampleMulTransposed multiplies a matrix by the transpose of another
// without building the transpose explicitly.
func ExampleMulTransposed() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{1, 0}, {0, 1}, {1, 1}})

	c, err := matrix.MulTransposed(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	_, err = matrix.MulTransposed(a, c)
	fmt.Println(err)

	// Output:
	// [1, 2, 3]
	// [3, 4, 7]
	// MulTransposed: ValidateMulTransposedCompatible: 2 cols vs 3 cols: matrix: invalid shape
}
