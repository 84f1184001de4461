package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/polconv/matrix"
)

// ExamplePseudoInverse shows the minimum-norm inverse of a single row:
// the one measured quantity maps back onto the only coordinate that produced it.
func ExamplePseudoInverse() {
	a, _ := matrix.NewCDenseFrom(1, 4, []complex128{1, 0, 0, 1})
	p, _ := matrix.PseudoInverse(a)
	fmt.Print(p)
	// Output:
	// [(0.5+0i)]
	// [(0+0i)]
	// [(0+0i)]
	// [(0.5+0i)]
}

// ExampleCMul multiplies two complex matrices through the real embedding.
func ExampleCMul() {
	a, _ := matrix.NewCDenseFrom(1, 2, []complex128{1, 1i})
	b, _ := matrix.NewCDenseFrom(2, 1, []complex128{1i, 1})
	c, _ := matrix.CMul(a, b)
	fmt.Print(c)
	// Output:
	// [(0+2i)]
}
