// Package depth computes closed-form recursion-depth curves over a fixed
// integer domain of "alternatives" (2..255).
//
// 🚀 What is depth?
//
//	Each curve answers the same question for one dispatch strategy:
//	given n alternatives, how deep does the decision recursion go?
//	  • CompleteBinaryTree — balanced binary split: ceil(log2(n))
//	  • Recursive          — one alternative per step: n
//	  • Recursive4         — four alternatives per step, with remainder terms
//	  • Recursive8         — eight alternatives per step, with remainder terms
//
// ✨ Key properties:
//   - all standard curves share one domain (see Domain, DomainMin, DomainMax)
//   - CompleteBinaryTree and Recursive are non-decreasing in n; the grouped
//     strategies dip by the absorbed remainder levels just past each full
//     group (Rec4(3)=2, Rec4(4)=1) and grow one level per full group:
//     Rec4(n+4) = Rec4(n)+1, Rec8(n+8) = Rec8(n)+1
//   - values are computed once per call and never mutated afterwards
//   - worst-case companions (CBTWorst, Rec4Worst, Rec8Worst) are available
//     but excluded from the standard set; see WorstCurves
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/depthviz/depth"
//
//	for _, c := range depth.Curves() {
//	  fmt.Println(c.Name, c.Depth[0])
//	}
//
//	// or evaluate one strategy over a custom domain:
//	c, err := depth.CurveFor(depth.Recursive8, []int{2, 64, 255})
//
// Complexity: every curve is O(len(domain)) time and memory.
//
// See examples in example_test.go.
package depth
