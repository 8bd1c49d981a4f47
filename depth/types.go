// Package depth defines strategies, curve types, and sentinel errors
// for the depth subpackage of github.com/katalvlaran/depthviz.
package depth

import "errors"

// Sentinel errors for depth operations.
var (
	// ErrEmptyDomain indicates a caller-supplied domain has no values.
	ErrEmptyDomain = errors.New("depth: domain must contain at least one value")
	// ErrDomainValue indicates a domain value below DomainMin (log2(n-1) and
	// the grouping formulas are meaningless for n < 2).
	ErrDomainValue = errors.New("depth: domain values must be at least 2")
	// ErrUnknownStrategy indicates a Strategy outside the declared set.
	ErrUnknownStrategy = errors.New("depth: unknown strategy")
)

// Domain bounds for the standard curves: the number of alternatives
// ranges over [DomainMin, DomainMax] inclusive.
const (
	DomainMin = 2
	DomainMax = 255
)

// Strategy selects one recursion-depth formula.
type Strategy int

const (
	// CompleteBinaryTree dispatches by balanced binary splits: ceil(log2(n)).
	CompleteBinaryTree Strategy = iota
	// Recursive dispatches one alternative per step: depth equals n.
	Recursive
	// Recursive4 dispatches in groups of four, then two, then one.
	Recursive4
	// Recursive8 dispatches in groups of eight, then four, two, one.
	Recursive8
	// CBTWorst is the analytic upper bound log2(n-1)+1 for CompleteBinaryTree.
	CBTWorst
	// Rec4Worst is the analytic upper bound n/4+1.25 for Recursive4.
	Rec4Worst
	// Rec8Worst is the analytic upper bound n/8+2.125 for Recursive8.
	Rec8Worst
)

// String returns the legend label used for the strategy's curve.
func (s Strategy) String() string {
	switch s {
	case CompleteBinaryTree:
		return "Complete Binary Tree"
	case Recursive:
		return "Recursive"
	case Recursive4:
		return "Recursive 4-step"
	case Recursive8:
		return "Recursive 8-step"
	case CBTWorst:
		return "CBT Worst Case"
	case Rec4Worst:
		return "Rec4 Worst Case"
	case Rec8Worst:
		return "Rec8 Worst Case"
	default:
		return "Unknown"
	}
}

// Curve is a labeled sequence of depth values over a domain of alternatives.
// N and Depth always have equal length; Curve values are never mutated after
// construction.
type Curve struct {
	// Name is the legend label of the curve.
	Name string
	// Color is the display color as a #rrggbb hex string.
	Color string
	// N holds the domain values (number of alternatives).
	N []int
	// Depth holds the depth value for each entry of N.
	Depth []float64
}
