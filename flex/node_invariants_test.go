package flex_test

import (
	"testing"

	"github.com/corelayout/flexlayout/flex"
	v "github.com/corelayout/flexlayout/internal/core/value"
	"github.com/stretchr/testify/require"
)

// TestMarkDirty_PropagatesOnceUpward verifies invariant 4: dirtying stops
// monotonically at the first already-dirty ancestor, and DirtiedFunc
// fires exactly once per clean->dirty transition.
func TestMarkDirty_PropagatesOnceUpward(t *testing.T) {
	root := flex.NewNode(nil)
	mid := flex.NewNode(nil)
	leaf := flex.NewNode(nil)
	root.InsertChild(mid, 0)
	mid.InsertChild(leaf, 0)

	require.NoError(t, leaf.SetMeasureFunc(func(n *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		return flex.Size{Width: 10, Height: 10}
	}))

	flex.CalculateLTR(root, 100, 100)
	require.False(t, root.IsDirty())
	require.False(t, mid.IsDirty())
	require.False(t, leaf.IsDirty())

	rootDirtyCalls := 0
	midDirtyCalls := 0
	root.SetDirtiedFunc(func(n *flex.Node) { rootDirtyCalls++ })
	mid.SetDirtiedFunc(func(n *flex.Node) { midDirtyCalls++ })

	leaf.MarkDirty()

	require.True(t, leaf.IsDirty())
	require.True(t, mid.IsDirty())
	require.True(t, root.IsDirty())
	require.Equal(t, 1, midDirtyCalls)
	require.Equal(t, 1, rootDirtyCalls)

	// A second MarkDirty on an already-dirty leaf must not re-fire
	// ancestors' DirtiedFunc.
	leaf.MarkDirty()
	require.Equal(t, 1, midDirtyCalls)
	require.Equal(t, 1, rootDirtyCalls)
}

// TestMarkDirty_OnlyLegalOnMeasureLeaf verifies MarkDirty is a no-op on a
// node without a measure callback (it is only a public API for measure
// leaves signaling content change; ordinary style mutation dirties via
// the internal setter path instead).
func TestMarkDirty_OnlyLegalOnMeasureLeaf(t *testing.T) {
	n := flex.NewNode(nil)
	flex.CalculateLTR(n, 10, 10)
	require.False(t, n.IsDirty())
	n.MarkDirty()
	require.False(t, n.IsDirty())
}

// TestSetWidth_DirtiesNode verifies a style setter marks its node dirty,
// unlike MarkDirty's measure-leaf-only restriction.
func TestSetWidth_DirtiesNode(t *testing.T) {
	n := flex.NewNode(nil)
	flex.CalculateLTR(n, 10, 10)
	require.False(t, n.IsDirty())
	n.SetWidth(50)
	require.True(t, n.IsDirty())
}

// TestEnsureChildrenOwned_CopyOnWrite verifies invariant: mutating a
// node that shares a child list with a clone triggers child cloning
// rather than mutating the shared node's children out from under it.
func TestEnsureChildrenOwned_CopyOnWrite(t *testing.T) {
	root := flex.NewNode(nil)
	a := flex.NewNode(nil)
	a.SetWidth(10)
	root.InsertChild(a, 0)

	clone := root.Clone()
	require.Equal(t, 1, clone.ChildCount())
	require.Same(t, a, clone.Child(0))

	// Mutating the clone's children must not affect root's child a, nor
	// root's own child pointer.
	b := flex.NewNode(nil)
	clone.InsertChild(b, 1)

	require.Equal(t, 1, root.ChildCount())
	require.Same(t, a, root.Child(0))
	require.Equal(t, 2, clone.ChildCount())
	require.NotSame(t, a, clone.Child(0), "clone's first child must be a fresh copy-on-write clone, not the shared original")
}

// TestReset_RejectsNodeWithChildrenOrOwner verifies Reset's documented
// constraint-violation preconditions.
func TestReset_RejectsNodeWithChildrenOrOwner(t *testing.T) {
	root := flex.NewNode(nil)
	child := flex.NewNode(nil)
	root.InsertChild(child, 0)

	require.Error(t, root.Reset())
	require.Error(t, child.Reset())

	root.RemoveAllChildren()
	require.NoError(t, root.Reset())
	require.NoError(t, child.Reset())
}

// TestSetMeasureFunc_RejectsNodeWithChildren verifies invariant 1: a
// node cannot have both children and a measure callback.
func TestSetMeasureFunc_RejectsNodeWithChildren(t *testing.T) {
	root := flex.NewNode(nil)
	child := flex.NewNode(nil)
	root.InsertChild(child, 0)

	err := root.SetMeasureFunc(func(n *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		return flex.Size{}
	})
	require.Error(t, err)
	require.False(t, root.HasMeasureFunc())
}

// TestCopyStyle_OnlyDirtiesOnDifference exercises CopyStyle's documented
// byte-compare-first short circuit.
func TestCopyStyle_OnlyDirtiesOnDifference(t *testing.T) {
	src := flex.NewNode(nil)
	dst := flex.NewNode(nil)
	flex.CalculateLTR(src, 10, 10)
	flex.CalculateLTR(dst, 10, 10)
	require.False(t, dst.IsDirty())

	dst.CopyStyle(src)
	require.False(t, dst.IsDirty(), "identical styles must not dirty the destination")

	src.SetWidth(42)
	dst.CopyStyle(src)
	require.True(t, dst.IsDirty())
	require.True(t, dst.Style().Dimensions[v.DimWidth].Equal(v.Point(42)))
}
