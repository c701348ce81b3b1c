package flex

import (
	"math"

	v "github.com/corelayout/flexlayout/internal/core/value"
)

// justifyMainAxis implements Step 6: place a line's items along the main
// axis per justifyContent, unless any item has an auto margin on that
// axis, in which case auto margins absorb the free space instead and
// justifyContent is ignored (matching the CSS auto-margin override rule).
func justifyMainAxis(n *Node, line *flexLine, axes axes) {
	remaining := line.remainingFreeSpace
	if remaining < 0 {
		remaining = 0
	}

	autoMargins := 0
	for _, it := range line.items {
		if leadingValue(it.node.style.Margin, axes.mainFD, axes.direction, v.Undefined).IsAuto() {
			autoMargins++
		}
		if trailingValue(it.node.style.Margin, axes.mainFD, axes.direction, v.Undefined).IsAuto() {
			autoMargins++
		}
	}

	count := len(line.items)
	leading, between := 0.0, 0.0
	switch {
	case autoMargins > 0:
		// handled per-item below via autoMarginUnit
	case n.style.Justify == JustifyCenter:
		leading = remaining / 2
	case n.style.Justify == JustifyFlexEnd:
		leading = remaining
	case n.style.Justify == JustifySpaceBetween:
		if count > 1 {
			between = remaining / float64(count-1)
		}
	case n.style.Justify == JustifySpaceAround:
		unit := remaining / float64(count)
		leading, between = unit/2, unit
	case n.style.Justify == JustifySpaceEvenly:
		unit := remaining / float64(count+1)
		leading, between = unit, unit
	}

	autoMarginUnit := 0.0
	if autoMargins > 0 {
		autoMarginUnit = remaining / float64(autoMargins)
	}

	pos := leading + n.leadingBorder(axes.mainFD) + n.leadingPadding(axes.mainFD)
	for _, it := range line.items {
		if autoMargins > 0 && leadingValue(it.node.style.Margin, axes.mainFD, axes.direction, v.Undefined).IsAuto() {
			pos += autoMarginUnit
		}
		it.node.layout.Position[leadingEdge[axes.mainFD]] = pos + it.node.leadingMargin(axes.mainFD)
		pos += it.outer
		if autoMargins > 0 && trailingValue(it.node.style.Margin, axes.mainFD, axes.direction, v.Undefined).IsAuto() {
			pos += autoMarginUnit
		}
		pos += between
	}
}

// alignCrossAxis implements Step 7: position one line's items along the
// cross axis per alignSelf/alignItems, honoring cross-axis auto margins
// first. A stretch-eligible child with no definite cross size is
// re-laid-out here at the line's final crossDim: resolveFlexibleLengths
// (Step 5) deliberately skips this resize when the container wraps,
// since a line's crossDim isn't known until every line has been
// measured, so this is the only place left to apply it.
func alignCrossAxis(n *Node, line *flexLine, axes axes, lineCrossStart float64, direction Direction,
	ownerWidth, ownerHeight v.OptionalFloat, generation uint32) {

	for _, it := range line.items {
		child := it.node
		alignSelf := alignItem(n.style.AlignItems, child.style.AlignSelf, axes.mainFD)
		childCross := dimOf(child, axes.crossDim)

		leadAuto := leadingValue(child.style.Margin, axes.crossFD, axes.direction, v.Undefined).IsAuto()
		trailAuto := trailingValue(child.style.Margin, axes.crossFD, axes.direction, v.Undefined).IsAuto()

		var pos float64
		switch {
		case leadAuto || trailAuto:
			remaining := line.crossDim - childCross - child.marginForAxis(axes.crossFD)
			if remaining < 0 {
				remaining = 0
			}
			switch {
			case leadAuto && trailAuto:
				pos = remaining/2 + child.leadingMargin(axes.crossFD)
			case leadAuto:
				pos = remaining + child.leadingMargin(axes.crossFD)
			default:
				pos = child.leadingMargin(axes.crossFD)
			}
		case alignSelf == AlignFlexEnd:
			pos = line.crossDim - childCross - child.trailingMargin(axes.crossFD)
		case alignSelf == AlignCenter:
			pos = (line.crossDim-childCross)/2 + child.leadingMargin(axes.crossFD)
		case alignSelf == AlignBaseline:
			pos = child.leadingMargin(axes.crossFD) + child.layout.computedAscent.OrElse(0)
		case alignSelf == AlignStretch:
			if !childHasDefiniteSize(&child.style, axes.crossDim) {
				stretchChildCrossAxis(child, axes, line.crossDim, direction, ownerWidth, ownerHeight, generation)
			}
			pos = child.leadingMargin(axes.crossFD)
		default: // AlignFlexStart
			pos = child.leadingMargin(axes.crossFD)
		}

		child.layout.Position[leadingEdge[axes.crossFD]] = lineCrossStart + pos
	}
}

// stretchChildCrossAxis re-lays a child out with its cross axis pinned
// to exactly lineCross, keeping its already-resolved main size fixed.
func stretchChildCrossAxis(child *Node, axes axes, lineCross float64, direction Direction,
	ownerWidth, ownerHeight v.OptionalFloat, generation uint32) {

	mainSize := measuredDimOf(child, axes.mainDim)
	crossSize := lineCross - child.marginForAxis(axes.crossFD)

	mainWidth, mainHeight := mainSize, crossSize
	if axes.mainDim == v.DimHeight {
		mainWidth, mainHeight = crossSize, mainSize
	}

	child.layoutInternal(mainWidth, mainHeight, direction, MeasureModeExactly, MeasureModeExactly,
		ownerWidth.OrElse(math.NaN()), ownerHeight.OrElse(math.NaN()), true, generation)
}

// alignContentMultiline implements Step 8: distribute lines across the
// cross axis via alignContent (the same distribution shapes as
// justifyContent, plus stretch), then runs each line's cross alignment
// and baseline resolution at its assigned offset.
func alignContentMultiline(n *Node, lines []*flexLine, axes axes, availableInnerCross float64, direction Direction,
	ownerWidth, ownerHeight v.OptionalFloat, generation uint32) {
	totalCross := 0.0
	for _, l := range lines {
		totalCross += l.crossDim
	}
	remaining := availableInnerCross - totalCross
	if math.IsNaN(remaining) || remaining < 0 {
		remaining = 0
	}
	count := len(lines)

	leading, between := 0.0, 0.0
	switch n.style.AlignContent {
	case AlignCenter:
		leading = remaining / 2
	case AlignFlexEnd:
		leading = remaining
	case AlignSpaceBetween:
		if count > 1 {
			between = remaining / float64(count-1)
		}
	case AlignSpaceAround:
		unit := remaining / float64(count)
		leading, between = unit/2, unit
	case AlignStretch:
		if count > 0 && !math.IsNaN(availableInnerCross) {
			extra := remaining / float64(count)
			for _, l := range lines {
				l.crossDim += extra
			}
		}
	}

	cursor := n.leadingBorder(axes.crossFD) + n.leadingPadding(axes.crossFD) + leading
	for _, l := range lines {
		resolveBaseline(n, l, axes)
		alignCrossAxis(n, l, axes, cursor, direction, ownerWidth, ownerHeight, generation)
		cursor += l.crossDim + between
	}
}

// resolveBaseline computes a line's shared baseline from its
// AlignBaseline items (if any) and offsets each of them so their
// individual ascents line up, growing the line's crossDim to fit.
func resolveBaseline(n *Node, line *flexLine, axes axes) {
	hasBaseline := false
	var maxAscent, maxDescent float64
	for _, it := range line.items {
		child := it.node
		if alignItem(n.style.AlignItems, child.style.AlignSelf, axes.mainFD) != AlignBaseline {
			continue
		}
		hasBaseline = true
		ascent := baselineOf(child)
		descent := dimOf(child, axes.crossDim) + child.marginForAxis(axes.crossFD) - ascent
		maxAscent = math.Max(maxAscent, ascent)
		maxDescent = math.Max(maxDescent, descent)
	}
	if !hasBaseline {
		return
	}
	for _, it := range line.items {
		child := it.node
		if alignItem(n.style.AlignItems, child.style.AlignSelf, axes.mainFD) != AlignBaseline {
			continue
		}
		child.layout.computedAscent = v.Defined(maxAscent - baselineOf(child))
	}
	if line.crossDim < maxAscent+maxDescent {
		line.crossDim = maxAscent + maxDescent
	}
}

// baselineOf returns a child's ascent via its BaselineFunc, or (per the
// documented synthesis fallback) its own bottom edge when none is set.
func baselineOf(child *Node) float64 {
	if child.baseline != nil {
		return child.baseline(child, child.layout.Dimensions[0], child.layout.Dimensions[1])
	}
	return child.layout.Dimensions[1]
}
