package expr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polyeval/arith"
)

var op = arith.Integer[int64]{}

func TestFormat(t *testing.T) {

	c := []Node[int64]{NewConstant[int64]("c0", 1), NewConstant[int64]("c1", 2), NewConstant[int64]("c2", 3)}
	x := NewBinding[int64]("x", NewConstant[int64]("", 2))

	t.Run("Nested", func(t *testing.T) {
		n := NewAdd[int64](op, c[0], NewMul[int64](op, x.Ref(), NewAdd[int64](op, c[1], NewMul[int64](op, x.Ref(), c[2]))))
		require.Equal(t, "c0 + x * (c1 + x * c2)", n.String())
	})

	t.Run("Associativity", func(t *testing.T) {
		left := NewAdd[int64](op, NewAdd[int64](op, c[0], c[1]), c[2])
		right := NewAdd[int64](op, c[0], NewAdd[int64](op, c[1], c[2]))
		require.Equal(t, "c0 + c1 + c2", left.String())
		require.Equal(t, "c0 + (c1 + c2)", right.String())
		require.Equal(t, "(c0 + c1) * c2", NewMul[int64](op, NewAdd[int64](op, c[0], c[1]), c[2]).String())
	})

	t.Run("MulAdd", func(t *testing.T) {
		inner := NewMulAdd[int64](op, x.Ref(), c[2], c[1])
		n := NewMulAdd[int64](op, x.Ref(), inner, c[0])
		require.Equal(t, "fma(x, fma(x, c2, c1), c0)", n.String())
		require.Equal(t, "math.FMA(x, math.FMA(x, c2, c1), c0)", Format[int64](n, Printer{FMA: "math.FMA"}))
		require.Equal(t, "c0 + x * (c1 + x * c2)", Format[int64](n, Printer{Unfuse: true}))
	})

	t.Run("Round", func(t *testing.T) {
		p := Printer{Round: "T"}
		n := NewAdd[int64](op, c[0], NewMul[int64](op, x.Ref(), NewAdd[int64](op, c[1], NewMul[int64](op, x.Ref(), c[2]))))
		require.Equal(t, "c0 + T(x * (c1 + T(x * c2)))", Format[int64](n, p))
		require.Equal(t, "T(x * c1) + c0", Format[int64](NewAdd[int64](op, NewMul[int64](op, x.Ref(), c[1]), c[0]), p))
		// products outside of sums are left as is
		require.Equal(t, "x * c1", Format[int64](NewMul[int64](op, x.Ref(), c[1]), p))

		fused := NewMulAdd[int64](op, x.Ref(), NewMulAdd[int64](op, x.Ref(), c[2], c[1]), c[0])
		require.Equal(t, "c0 + T(x * (c1 + T(x * c2)))", Format[int64](fused, Printer{Round: "T", Unfuse: true}))
		require.Equal(t, "fma(x, fma(x, c2, c1), c0)", Format[int64](fused, p))
	})

	t.Run("Block", func(t *testing.T) {
		x2 := NewBinding[int64]("x2", NewMul[int64](op, x.Ref(), x.Ref()))
		n := NewBlock[int64](NewAdd[int64](op, c[0], NewMul[int64](op, x2.Ref(), c[1])), x, x2)
		require.Equal(t, "{x := 2; x2 := x * x; c0 + x2 * c1}", n.String())
	})

	t.Run("Leaves", func(t *testing.T) {
		require.Equal(t, "0", NewZero[int64](op).String())
		require.Equal(t, "y", NewFunc[int64]("y", nil).String())
		require.Equal(t, []string{"4", "5"}, []string{Constants[int64](4, 5)[0].String(), Constants[int64](4, 5)[1].String()})
	})
}

func TestEvaluate(t *testing.T) {

	t.Run("BlockMaterializesOnce", func(t *testing.T) {
		var calls int
		x := NewBinding[int64]("x", NewFunc("f", func() int64 {
			calls++
			return 5
		}))

		n := NewBlock[int64](NewAdd[int64](op, NewMul[int64](op, x.Ref(), x.Ref()), x.Ref()), x)

		require.Equal(t, int64(30), Evaluate[int64](n))
		require.Equal(t, 1, calls)

		require.Equal(t, int64(30), Evaluate[int64](n))
		require.Equal(t, 2, calls)
	})

	t.Run("MulAddOperandOrder", func(t *testing.T) {
		var order []string
		leaf := func(name string, v int64) Node[int64] {
			return NewFunc(name, func() int64 {
				order = append(order, name)
				return v
			})
		}

		n := NewMulAdd[int64](op, leaf("a", 3), leaf("b", 4), leaf("c", 5))
		require.Equal(t, int64(17), Evaluate[int64](n))
		require.Equal(t, []string{"c", "a", "b"}, order)
	})

	t.Run("Zero", func(t *testing.T) {
		require.Equal(t, int64(0), Evaluate[int64](NewZero[int64](op)))
	})

	t.Run("UnboundRef", func(t *testing.T) {
		x := NewBinding[int64]("x", NewConstant[int64]("", 1))
		require.Panics(t, func() { Evaluate[int64](x.Ref()) })
	})

	t.Run("NilOperand", func(t *testing.T) {
		require.Panics(t, func() { NewAdd[int64](op, nil, NewZero[int64](op)) })
		require.Panics(t, func() { NewBinding[int64]("x", nil) })
		require.Panics(t, func() { Evaluate[int64](NewFunc[int64]("y", nil)) })
	})
}

func TestAnalyze(t *testing.T) {

	x := NewBinding[int64]("x", NewFunc[int64]("f", func() int64 { return 0 }))
	x2 := NewBinding[int64]("x2", NewMul[int64](op, x.Ref(), x.Ref()))
	c0, c1 := NewConstant[int64]("c0", 1), NewConstant[int64]("c1", 1)

	t.Run("Plain", func(t *testing.T) {
		n := NewBlock[int64](NewAdd[int64](op, c0, NewMul[int64](op, x2.Ref(), c1)), x, x2)
		want := Stats{Add: 1, Mul: 2, Bindings: 2, Leaves: 3, Depth: 3}
		got := Analyze[int64](n)
		require.True(t, cmp.Equal(want, got), cmp.Diff(want, got))
		require.Equal(t, 3, got.Ops())
	})

	t.Run("Fused", func(t *testing.T) {
		n := NewBlock[int64](NewMulAdd[int64](op, x2.Ref(), c1, c0), x, x2)
		want := Stats{Mul: 1, MulAdd: 1, Bindings: 2, Leaves: 3, Depth: 2}
		got := Analyze[int64](n)
		require.True(t, cmp.Equal(want, got), cmp.Diff(want, got))
	})
}

func TestFingerprint(t *testing.T) {

	x := NewBinding[int64]("x", NewConstant[int64]("", 3))
	c0, c1 := NewConstant[int64]("c0", 1), NewConstant[int64]("c1", 2)

	plain := NewBlock[int64](NewAdd[int64](op, c0, NewMul[int64](op, x.Ref(), c1)), x)
	fused := NewBlock[int64](NewMulAdd[int64](op, x.Ref(), c1, c0), x)

	require.Equal(t, Fingerprint[int64](plain), Fingerprint[int64](plain))
	require.NotEqual(t, Fingerprint[int64](plain), Fingerprint[int64](fused))
	require.Equal(t, ShapeFingerprint[int64](plain), ShapeFingerprint[int64](fused))
	require.Len(t, Fingerprint[int64](plain).String(), 64)
}
