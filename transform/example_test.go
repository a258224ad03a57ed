// SPDX-License-Identifier: MIT
package transform_test

import (
	"fmt"

	"github.com/katalvlaran/polydual/builder"
	"github.com/katalvlaran/polydual/transform"
)

// ExampleTransform builds the dual of two triangles sharing an edge.
func ExampleTransform() {
	src, err := builder.Build(builder.Diamond())
	if err != nil {
		fmt.Println(err)
		return
	}
	d, err := transform.Transform(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.Names())
	nb, _ := d.Neighbors("B")
	fmt.Println(nb)
	fmt.Println(d.Validate())
	// Output:
	// [A B C D]
	// [A C D]
	// <nil>
}
