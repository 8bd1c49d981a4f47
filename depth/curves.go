package depth

import "math"

// Display colors for each strategy's curve.
const (
	colorCBT      = "#07f02e"
	colorRec      = "#4e03fc"
	colorRec4     = "#7204d9"
	colorRec8     = "#eb4034"
	colorCBTWorst = "#1e4d26"
	colorR4Worst  = "#462c5e"
	colorR8Worst  = "#8c3d38"
)

// Domain returns the standard domain [DomainMin..DomainMax] as a fresh slice.
// Callers own the result; internal state is never aliased.
// Complexity: O(DomainMax-DomainMin).
func Domain() []int {
	ns := make([]int, DomainMax-DomainMin+1)
	for i := range ns {
		ns[i] = DomainMin + i
	}

	return ns
}

// CBT returns the recursion depth of a complete binary tree over n
// alternatives: ceil(log2(n)).
func CBT(n int) float64 {
	return math.Ceil(math.Log2(float64(n)))
}

// Linear returns the depth of one-alternative-per-step recursion: n itself.
func Linear(n int) float64 {
	return float64(n)
}

// Rec4 returns the depth of four-way grouped recursion:
// floor(n/4) + floor((n mod 4)/2) + (n mod 2).
func Rec4(n int) float64 {
	return float64(n/4 + (n%4)/2 + n%2)
}

// Rec8 returns the depth of eight-way grouped recursion:
// floor(n/8) + floor((n mod 8)/4) + floor((n mod 4)/2) + (n mod 2).
func Rec8(n int) float64 {
	return float64(n/8 + (n%8)/4 + (n%4)/2 + n%2)
}

// CBTWorstDepth returns the analytic worst-case bound log2(n-1) + 1.
func CBTWorstDepth(n int) float64 {
	return math.Log2(float64(n-1)) + 1
}

// Rec4WorstDepth returns the analytic worst-case bound n/4 + 1.25.
func Rec4WorstDepth(n int) float64 {
	return float64(n)/4 + 1.25
}

// Rec8WorstDepth returns the analytic worst-case bound n/8 + 2.125.
func Rec8WorstDepth(n int) float64 {
	return float64(n)/8 + 2.125
}

// formulaFor maps a Strategy to its point-wise formula and display color.
func formulaFor(s Strategy) (func(int) float64, string, error) {
	switch s {
	case CompleteBinaryTree:
		return CBT, colorCBT, nil
	case Recursive:
		return Linear, colorRec, nil
	case Recursive4:
		return Rec4, colorRec4, nil
	case Recursive8:
		return Rec8, colorRec8, nil
	case CBTWorst:
		return CBTWorstDepth, colorCBTWorst, nil
	case Rec4Worst:
		return Rec4WorstDepth, colorR4Worst, nil
	case Rec8Worst:
		return Rec8WorstDepth, colorR8Worst, nil
	default:
		return nil, "", ErrUnknownStrategy
	}
}

// CurveFor evaluates strategy s over the domain ns and returns the resulting
// curve. The domain is copied, so later mutation of ns does not affect the
// result.
// Returns ErrEmptyDomain if ns is empty, ErrDomainValue if any value is
// below DomainMin, ErrUnknownStrategy for an undeclared strategy.
// Complexity: O(len(ns)) time and memory.
func CurveFor(s Strategy, ns []int) (Curve, error) {
	if len(ns) == 0 {
		return Curve{}, ErrEmptyDomain
	}
	f, col, err := formulaFor(s)
	if err != nil {
		return Curve{}, err
	}

	domain := make([]int, len(ns))
	values := make([]float64, len(ns))
	for i, n := range ns {
		if n < DomainMin {
			return Curve{}, ErrDomainValue
		}
		domain[i] = n
		values[i] = f(n)
	}

	return Curve{Name: s.String(), Color: col, N: domain, Depth: values}, nil
}

// Curves returns the four standard curves over Domain(), in plot order:
// CompleteBinaryTree, Recursive, Recursive4, Recursive8.
// Complexity: O(4·len(Domain())).
func Curves() []Curve {
	return mustCurves(CompleteBinaryTree, Recursive, Recursive4, Recursive8)
}

// WorstCurves returns the three analytic worst-case curves over Domain().
// They are not part of the standard plot; callers opt in explicitly.
func WorstCurves() []Curve {
	return mustCurves(CBTWorst, Rec4Worst, Rec8Worst)
}

// mustCurves evaluates the given strategies over the standard domain.
// The domain is fixed and valid, so errors cannot occur here.
func mustCurves(ss ...Strategy) []Curve {
	ns := Domain()
	out := make([]Curve, len(ss))
	for i, s := range ss {
		c, err := CurveFor(s, ns)
		if err != nil {
			panic(err) // unreachable on the standard domain
		}
		out[i] = c
	}

	return out
}
