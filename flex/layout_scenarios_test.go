package flex_test

import (
	"math"
	"testing"

	"github.com/corelayout/flexlayout/flex"
	v "github.com/corelayout/flexlayout/internal/core/value"
	"github.com/stretchr/testify/require"
)

/*
TestCalculate_RowFlexGrowSplit
Row, two children with flexGrow 1/2 and an explicit flexBasis of 0.
innerW = 200; bases = 0,0; free = 200; totalGrow = 3
a = 200 * 1/3 = 66.667; b = 200 * 2/3 = 133.333
*/
func TestCalculate_RowFlexGrowSplit(t *testing.T) {
	root := flex.NewNode(nil)
	root.SetWidth(200)
	root.SetHeight(100)
	root.SetFlexDirection(flex.FlexDirectionRow)

	a := flex.NewNode(nil)
	a.SetFlexGrow(v.Defined(1))
	a.SetFlexBasis(0)
	root.InsertChild(a, 0)

	b := flex.NewNode(nil)
	b.SetFlexGrow(v.Defined(2))
	b.SetFlexBasis(0)
	root.InsertChild(b, 1)

	flex.CalculateLTR(root, 200, 100)

	require.InDelta(t, 66.667, a.Layout().Width(), 0.01)
	require.InDelta(t, 133.333, b.Layout().Width(), 0.01)
	require.InDelta(t, 0, a.Layout().Left(), 0.01)
	require.InDelta(t, 66.667, b.Layout().Left(), 0.01)
}

/*
TestCalculate_PercentDimension
Column root 100x100; child width=50%, height unset (auto).
Expect child width=50, height=0 (no content, no basis).
*/
func TestCalculate_PercentDimension(t *testing.T) {
	root := flex.NewNode(nil)
	root.SetWidth(100)
	root.SetHeight(100)

	child := flex.NewNode(nil)
	child.SetWidthPercent(50)
	root.InsertChild(child, 0)

	flex.CalculateLTR(root, 100, 100)

	require.InDelta(t, 50, child.Layout().Width(), 0.01)
	require.InDelta(t, 0, child.Layout().Height(), 0.01)
}

/*
TestCalculate_RTLRow
Row direction under RTL: two children of widths 30 and 70 pack from
the right edge (LTR would give lefts 0 and 30; RTL gives 70 and 0).
innerW = 100; children sized to 30 and 70 in document order.
RTL places the first child (30) starting at the physical right edge.
*/
func TestCalculate_RTLRow(t *testing.T) {
	root := flex.NewNode(nil)
	root.SetWidth(100)
	root.SetHeight(50)
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetDirection(flex.DirectionRTL)

	a := flex.NewNode(nil)
	a.SetWidth(30)
	root.InsertChild(a, 0)

	b := flex.NewNode(nil)
	b.SetWidth(70)
	root.InsertChild(b, 1)

	flex.Calculate(root, 100, 50, flex.DirectionRTL)

	require.InDelta(t, 70, a.Layout().Left(), 0.01)
	require.InDelta(t, 0, b.Layout().Left(), 0.01)
}

/*
TestCalculate_AbsolutePositioning
Absolute child with explicit left/top insets ignores flex flow entirely.
*/
func TestCalculate_AbsolutePositioning(t *testing.T) {
	root := flex.NewNode(nil)
	root.SetWidth(200)
	root.SetHeight(200)

	abs := flex.NewNode(nil)
	abs.SetPositionType(flex.PositionTypeAbsolute)
	abs.SetPosition(v.EdgeLeft, 10)
	abs.SetPosition(v.EdgeTop, 20)
	abs.SetWidth(40)
	abs.SetHeight(40)
	root.InsertChild(abs, 0)

	flex.CalculateLTR(root, 200, 200)

	require.InDelta(t, 10, abs.Layout().Left(), 0.01)
	require.InDelta(t, 20, abs.Layout().Top(), 0.01)
	require.InDelta(t, 40, abs.Layout().Width(), 0.01)
	require.InDelta(t, 40, abs.Layout().Height(), 0.01)
}

/*
TestCalculate_AspectRatio
Child has width=80 and aspectRatio=2 (width/height); height should be
derived as 40 even though no height style is set.
*/
func TestCalculate_AspectRatio(t *testing.T) {
	root := flex.NewNode(nil)
	root.SetWidth(200)
	root.SetHeight(200)
	root.SetAlignItems(flex.AlignFlexStart)

	child := flex.NewNode(nil)
	child.SetWidth(80)
	child.SetAspectRatio(v.Defined(2))
	root.InsertChild(child, 0)

	flex.CalculateLTR(root, 200, 200)

	require.InDelta(t, 80, child.Layout().Width(), 0.01)
	require.InDelta(t, 40, child.Layout().Height(), 0.01)
}

/*
TestCalculate_WrapTwoLines
Row, wrap, 3 children of width 40 in a 100-wide root: a+b pack onto
line 1 (80 <= 100); c alone would make 120 > 100, so it wraps to line 2.
*/
func TestCalculate_WrapTwoLines(t *testing.T) {
	root := flex.NewNode(nil)
	root.SetWidth(100)
	root.SetHeight(200)
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetFlexWrap(flex.WrapWrap)
	root.SetAlignItems(flex.AlignFlexStart)

	mk := func() *flex.Node {
		n := flex.NewNode(nil)
		n.SetWidth(40)
		n.SetHeight(20)
		return n
	}
	a, b, c := mk(), mk(), mk()
	root.InsertChild(a, 0)
	root.InsertChild(b, 1)
	root.InsertChild(c, 2)

	flex.CalculateLTR(root, 100, 200)

	require.InDelta(t, 0, a.Layout().Left(), 0.01)
	require.InDelta(t, 40, b.Layout().Left(), 0.01)
	require.InDelta(t, 0, a.Layout().Top(), 0.01)
	require.InDelta(t, 0, b.Layout().Top(), 0.01)
	require.InDelta(t, 0, c.Layout().Left(), 0.01)
	require.InDelta(t, 20, c.Layout().Top(), 0.01)
}

/*
TestCalculate_WrapStretchesChildWithNoDefiniteCrossSize
Row, wrap, default AlignItems (stretch). Line 1 holds a (height=30,
definite) and b (no height set); line 1's crossDim is driven by a's 30,
so b — stretch-eligible and cross-size-undefined — must be resized to
30 too, even though the container wraps (Step 5 skips the stretch
resize for wrapping containers; Step 7 is where it must still happen).
c alone overflows onto line 2 and keeps its own explicit height.
*/
func TestCalculate_WrapStretchesChildWithNoDefiniteCrossSize(t *testing.T) {
	root := flex.NewNode(nil)
	root.SetWidth(100)
	root.SetHeight(200)
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetFlexWrap(flex.WrapWrap)

	a := flex.NewNode(nil)
	a.SetWidth(40)
	a.SetHeight(30)
	root.InsertChild(a, 0)

	b := flex.NewNode(nil)
	b.SetWidth(40)
	root.InsertChild(b, 1)

	c := flex.NewNode(nil)
	c.SetWidth(40)
	c.SetHeight(20)
	root.InsertChild(c, 2)

	flex.CalculateLTR(root, 100, 200)

	require.InDelta(t, 30, a.Layout().Height(), 0.01)
	require.InDelta(t, 30, b.Layout().Height(), 0.01, "stretch must still apply to a wrapped line's cross-undefined child")
	require.InDelta(t, 30, c.Layout().Top(), 0.01)
	require.InDelta(t, 20, c.Layout().Height(), 0.01)
}

/*
TestCalculate_PixelGridRounding
A PointScaleFactor of 2 (half-pixel grid) should round a fractional
child width up to the nearest 0.5.
*/
func TestCalculate_PixelGridRounding(t *testing.T) {
	cfg := flex.NewConfig()
	require.NoError(t, cfg.SetPointScaleFactor(2))

	root := flex.NewNode(cfg)
	root.SetWidth(100)
	root.SetHeight(30)
	root.SetFlexDirection(flex.FlexDirectionRow)

	a := flex.NewNode(cfg)
	a.SetFlexGrow(v.Defined(1))
	a.SetFlexBasis(0)
	root.InsertChild(a, 0)

	b := flex.NewNode(cfg)
	b.SetFlexGrow(v.Defined(2))
	b.SetFlexBasis(0)
	root.InsertChild(b, 1)

	flex.CalculateLTR(root, 100, 30)

	// 100/3 = 33.333..., 66.666...; rounded to the nearest 0.5 grid.
	halfGrid := math.Mod(a.Layout().Width()*2, 1)
	require.InDelta(t, 0, halfGrid, 1e-9)
	require.InDelta(t, a.Layout().Width()+b.Layout().Width(), 100, 0.01)
}
