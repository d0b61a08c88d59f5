package expr

// Stats counts the operations of a tree.
type Stats struct {
	// Add, Mul and MulAdd count the arithmetic nodes, bindings included.
	Add    int
	Mul    int
	MulAdd int
	// Bindings is the number of materialized values.
	Bindings int
	// Leaves is the number of leaf nodes other than references.
	Leaves int
	// Depth is the length of the longest chain of dependent arithmetic
	// operations, i.e. the latency of the expression in operations.
	Depth int
}

// Ops returns the total number of arithmetic operations.
func (s Stats) Ops() int {
	return s.Add + s.Mul + s.MulAdd
}

// Analyze returns the [Stats] of n.
func Analyze[T any](n Node[T]) (s Stats) {
	depths := map[*Binding[T]]int{}
	s.Depth = analyze(n, &s, depths)
	return
}

func analyze[T any](n Node[T], s *Stats, depths map[*Binding[T]]int) (depth int) {

	switch n := n.(type) {
	case *Ref[T]:
		return depths[n.Binding]
	case *Block[T]:
		for _, b := range n.Bindings {
			s.Bindings++
			depths[b] = analyze(b.Value, s, depths)
		}
		return analyze(n.Result, s, depths)
	case *Add[T]:
		s.Add++
	case *Mul[T]:
		s.Mul++
	case *MulAdd[T]:
		s.MulAdd++
	default:
		children := n.Children()
		if len(children) == 0 {
			s.Leaves++
			return 0
		}
		for _, c := range children {
			depth = max(depth, analyze(c, s, depths))
		}
		return depth
	}

	for _, c := range n.Children() {
		depth = max(depth, analyze(c, s, depths))
	}

	return depth + 1
}
