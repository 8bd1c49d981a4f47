package depth_test

import (
	"fmt"

	"github.com/katalvlaran/depthviz/depth"
)

// ExampleCBT shows the balanced-binary-split depth for a power of two and
// for a domain value just past one.
func ExampleCBT() {
	fmt.Println(depth.CBT(16), depth.CBT(17))
	// Output:
	// 4 5
}

// ExampleCurves prints the depth of each standard strategy
// at n = 255, the top of the domain.
func ExampleCurves() {
	last := len(depth.Domain()) - 1
	for _, c := range depth.Curves() {
		fmt.Printf("%s: %v\n", c.Name, c.Depth[last])
	}
	// Output:
	// Complete Binary Tree: 8
	// Recursive: 255
	// Recursive 4-step: 65
	// Recursive 8-step: 34
}

// ExampleCurveFor evaluates a single strategy over a custom domain.
func ExampleCurveFor() {
	c, err := depth.CurveFor(depth.Recursive4, []int{4, 7, 100})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(c.Name, c.Depth)
	// Output:
	// Recursive 4-step [1 3 25]
}
