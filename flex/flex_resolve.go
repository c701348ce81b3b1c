package flex

import (
	"math"

	v "github.com/corelayout/flexlayout/internal/core/value"
)

// resolveFlexibleLengths implements Step 5: distribute a line's free
// space across its items in two passes, then recursively lay each item
// out at its resolved main size.
//
// Pass A detects items whose naive grow/shrink share would violate their
// own min/max and freezes them at the clamped size, removing their
// weight from the pool before Pass B distributes what's left. The CSS
// Flexible Box algorithm iterates this to a fixed point; one correction
// pass is enough for the cases this engine targets and is the documented
// deviation from that iterative solver.
func (n *Node) resolveFlexibleLengths(line *flexLine, axes axes, availableInnerMain, availableInnerCross float64,
	direction Direction, ownerWidth, ownerHeight v.OptionalFloat, generation uint32) {

	ownerMain := ownerWidth
	if axes.mainDim == v.DimHeight {
		ownerMain = ownerHeight
	}

	freeSpace := availableInnerMain - line.sizeConsumed
	growing := freeSpace > 0

	remaining := freeSpace
	totalGrow := line.totalFlexGrow
	totalScaledShrink := line.totalScaledShrink

	naiveSize := func(it *flexItem) float64 {
		switch {
		case growing && totalGrow > 0:
			return it.hypothetical + remaining*(it.flexGrow/totalGrow)
		case !growing && totalScaledShrink > 0:
			return it.hypothetical + remaining*(it.scaledShrink/totalScaledShrink)
		default:
			return it.hypothetical
		}
	}

	for _, it := range line.items {
		naive := naiveSize(it)
		clamped := boundAxis(it.node, axes.mainDim, naive, ownerMain)
		if !floatsEqual(clamped, naive) {
			delta := clamped - it.hypothetical
			remaining -= delta
			if growing {
				totalGrow -= it.flexGrow
			} else {
				totalScaledShrink -= it.scaledShrink
			}
			it.frozen = true
			it.mainSize = clamped
		}
	}

	for _, it := range line.items {
		if !it.frozen {
			it.mainSize = boundAxis(it.node, axes.mainDim, naiveSize(it), ownerMain)
		}
		n.layoutFlexItem(it, axes, availableInnerCross, direction, ownerWidth, ownerHeight, generation)
		line.mainDim += it.mainSize + it.margin
	}

	line.remainingFreeSpace = remaining
	if remaining < -sizeTolerance {
		n.layout.HadOverflow = true
	}
}

// layoutFlexItem recursively lays a single resolved-main-size item out,
// determining its cross-axis constraint from its own style, alignSelf
// stretch eligibility, and aspect ratio.
func (n *Node) layoutFlexItem(it *flexItem, axes axes, availableInnerCross float64, direction Direction,
	ownerWidth, ownerHeight v.OptionalFloat, generation uint32) {

	child := it.node
	mainSize := it.mainSize

	mainWidth, mainHeight := mainSize, math.NaN()
	mainWidthMode, mainHeightMode := MeasureModeExactly, MeasureModeUndefined
	if axes.mainDim == v.DimHeight {
		mainWidth, mainHeight = math.NaN(), mainSize
		mainWidthMode, mainHeightMode = MeasureModeUndefined, MeasureModeExactly
	}

	alignSelf := alignItem(n.style.AlignItems, child.style.AlignSelf, axes.mainFD)
	crossAutoMargin := hasAutoCrossMargin(child, axes.crossFD, direction)
	stretchEligible := alignSelf == AlignStretch && !crossAutoMargin &&
		!math.IsNaN(availableInnerCross) && n.style.FlexWrap == WrapNoWrap

	ownerCross := ownerWidth
	if axes.crossDim == v.DimHeight {
		ownerCross = ownerHeight
	}

	var crossSize float64
	var crossMode MeasureMode
	switch {
	case childHasDefiniteSize(&child.style, axes.crossDim):
		r := child.style.Dimensions[axes.crossDim].Resolve(ownerCross)
		crossSize, crossMode = r.OrElse(availableInnerCross), MeasureModeExactly
	case stretchEligible:
		crossSize, crossMode = availableInnerCross, MeasureModeExactly
	default:
		crossSize, crossMode = availableInnerCross, MeasureModeAtMost
	}

	if aspect := child.style.AspectRatio; !aspect.IsUndefined() {
		if axes.mainDim == v.DimWidth {
			crossSize, crossMode = mainSize/aspect.Value, MeasureModeExactly
		} else {
			crossSize, crossMode = mainSize*aspect.Value, MeasureModeExactly
		}
	}

	width, widthMode := mainWidth, mainWidthMode
	height, heightMode := mainHeight, mainHeightMode
	if axes.crossDim == v.DimWidth {
		width, widthMode = crossSize, crossMode
	} else {
		height, heightMode = crossSize, crossMode
	}

	child.layoutInternal(width, height, direction, widthMode, heightMode,
		ownerWidth.OrElse(math.NaN()), ownerHeight.OrElse(math.NaN()), true, generation)
}
