package flex_test

import (
	"testing"

	"github.com/corelayout/flexlayout/flex"
	v "github.com/corelayout/flexlayout/internal/core/value"
	"github.com/stretchr/testify/require"
)

// TestCalculate_MeasureFuncBasisThenStretch verifies a measure leaf sees
// two distinct constraint calls within one Calculate: an atMost probe
// while Step 3 discovers its flex basis from intrinsic content, then an
// exactly-mode call once its stretched cross size and resolved main size
// are known. The two calls are not cache-compatible (atMost->exactly
// never is), so the callback legitimately runs twice.
func TestCalculate_MeasureFuncBasisThenStretch(t *testing.T) {
	var modes []flex.MeasureMode
	leaf := flex.NewNode(nil)
	require.NoError(t, leaf.SetMeasureFunc(func(n *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		modes = append(modes, hm)
		return flex.Size{Width: 40, Height: 20}
	}))

	root := flex.NewNode(nil)
	root.SetWidth(200)
	root.SetHeight(100)
	root.InsertChild(leaf, 0)

	flex.CalculateLTR(root, 200, 100)

	require.Equal(t, []flex.MeasureMode{flex.MeasureModeAtMost, flex.MeasureModeExactly}, modes)
	// Default AlignItems (stretch) on a column root stretches the leaf's
	// cross axis (width) to the full inner width; its main axis (height)
	// takes the basis discovered from the measure callback's AtMost probe.
	require.InDelta(t, 200, leaf.Layout().Width(), 0.01)
	require.InDelta(t, 20, leaf.Layout().Height(), 0.01)
}

// TestConfig_SetPointScaleFactor_RejectsNegative verifies the
// constraint-violation path documented on SetPointScaleFactor.
func TestConfig_SetPointScaleFactor_RejectsNegative(t *testing.T) {
	cfg := flex.NewConfig()
	require.Equal(t, 1.0, cfg.PointScaleFactor)
	require.Error(t, cfg.SetPointScaleFactor(-1))
	require.Equal(t, 1.0, cfg.PointScaleFactor, "a rejected update must not mutate the config")
	require.NoError(t, cfg.SetPointScaleFactor(0))
	require.Equal(t, 0.0, cfg.PointScaleFactor)
}

// TestCalculate_LayoutEventsFire verifies the OnLayoutEvent collaborator
// observes exactly one start/end pair per Calculate call.
func TestCalculate_LayoutEventsFire(t *testing.T) {
	var kinds []flex.NodeEventKind
	cfg := flex.NewConfig()
	cfg.OnLayoutEvent = func(n *flex.Node, kind flex.NodeEventKind) {
		kinds = append(kinds, kind)
	}

	root := flex.NewNode(cfg)
	root.SetWidth(50)
	root.SetHeight(50)

	flex.CalculateLTR(root, 50, 50)

	require.Equal(t, []flex.NodeEventKind{flex.EventLayoutStart, flex.EventLayoutEnd}, kinds)
}

// TestNode_PercentMarginResolvesAgainstOwnerWidth verifies the CSS quirk
// documented on resolvePhysicalEdge: even a vertical margin percentage
// resolves against the owner's width, not its height.
func TestNode_PercentMarginResolvesAgainstOwnerWidth(t *testing.T) {
	root := flex.NewNode(nil)
	root.SetWidth(200)
	root.SetHeight(50)

	child := flex.NewNode(nil)
	child.SetWidth(10)
	child.SetHeight(10)
	child.SetMarginPercent(v.EdgeTop, 10) // 10% of owner width (200) = 20
	root.InsertChild(child, 0)

	flex.CalculateLTR(root, 200, 50)

	require.InDelta(t, 20, child.Layout().Top(), 0.01)
}
