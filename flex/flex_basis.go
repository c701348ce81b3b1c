package flex

import (
	"math"

	v "github.com/corelayout/flexlayout/internal/core/value"
)

// --- resolved-edge bookkeeping -------------------------------------------

// resolvePhysicalEdge resolves one physical or logical edge of a style's
// edge vector: Left/Right and Top/Bottom go through the row/column
// leading-trailing tables so Start/End override them when set and RTL
// swaps Left<->Right; Start/End/Horizontal/Vertical/All fall through
// ComputedEdgeValue directly. Percentages always resolve against the
// owner's width, matching the CSS quirk that margin/border/padding
// percentages (even vertical ones) are relative to the containing
// block's width.
func resolvePhysicalEdge(edges [v.EdgeCount]v.Value, edge v.Edge, dir Direction, def v.Value, isMargin bool, ownerWidth v.OptionalFloat) float64 {
	var val v.Value
	switch edge {
	case v.EdgeLeft:
		val = leadingValue(edges, FlexDirectionRow, dir, def)
	case v.EdgeRight:
		val = trailingValue(edges, FlexDirectionRow, dir, def)
	case v.EdgeTop:
		val = leadingValue(edges, FlexDirectionColumn, dir, def)
	case v.EdgeBottom:
		val = trailingValue(edges, FlexDirectionColumn, dir, def)
	default:
		val = v.ComputedEdgeValue(edges, edge, def)
	}

	var resolved v.OptionalFloat
	if isMargin {
		resolved = val.ResolveMargin(ownerWidth)
	} else {
		resolved = val.Resolve(ownerWidth)
	}
	f := resolved.OrElse(0)
	if !isMargin && f < 0 {
		return 0
	}
	return f
}

// computeEdges fills n.layout.{Margin,Border,Padding} for the six
// addressable edges (Left, Top, Right, Bottom, Start, End), resolved
// against the owner's width and the node's already-resolved direction.
// This is Step 0's edge resolution, run once per layoutImpl call.
func (n *Node) computeEdges(dir Direction, ownerWidth v.OptionalFloat) {
	for _, e := range [6]v.Edge{v.EdgeLeft, v.EdgeTop, v.EdgeRight, v.EdgeBottom, v.EdgeStart, v.EdgeEnd} {
		n.layout.Margin[e] = resolvePhysicalEdge(n.style.Margin, e, dir, v.Point(0), true, ownerWidth)
		n.layout.Border[e] = resolvePhysicalEdge(n.style.Border, e, dir, v.Point(0), false, ownerWidth)
		n.layout.Padding[e] = resolvePhysicalEdge(n.style.Padding, e, dir, v.Point(0), false, ownerWidth)
	}
}

func (n *Node) leadingMargin(fd FlexDirection) float64  { return n.layout.Margin[leadingEdge[fd]] }
func (n *Node) trailingMargin(fd FlexDirection) float64 { return n.layout.Margin[trailingEdge[fd]] }
func (n *Node) leadingBorder(fd FlexDirection) float64  { return n.layout.Border[leadingEdge[fd]] }
func (n *Node) trailingBorder(fd FlexDirection) float64 { return n.layout.Border[trailingEdge[fd]] }
func (n *Node) leadingPadding(fd FlexDirection) float64 { return n.layout.Padding[leadingEdge[fd]] }
func (n *Node) trailingPadding(fd FlexDirection) float64 {
	return n.layout.Padding[trailingEdge[fd]]
}

func (n *Node) marginForAxis(fd FlexDirection) float64 {
	return n.leadingMargin(fd) + n.trailingMargin(fd)
}

func (n *Node) paddingAndBorderForAxis(fd FlexDirection) float64 {
	return n.leadingPadding(fd) + n.trailingPadding(fd) + n.leadingBorder(fd) + n.trailingBorder(fd)
}

func (n *Node) paddingAndBorderForAxisDim(dim v.Dim) float64 {
	if dim == v.DimWidth {
		return n.paddingAndBorderForAxis(FlexDirectionRow)
	}
	return n.paddingAndBorderForAxis(FlexDirectionColumn)
}

// dimOf reads a node's already-computed width or height.
func dimOf(n *Node, dim v.Dim) float64 {
	if dim == v.DimWidth {
		return n.layout.Dimensions[0]
	}
	return n.layout.Dimensions[1]
}

// measuredDimOf reads a node's own just-finalized MeasuredDimensions, the
// live value while still inside its own layoutImpl call, before
// layoutInternal copies it into Dimensions on return.
func measuredDimOf(n *Node, dim v.Dim) float64 {
	if dim == v.DimWidth {
		return n.layout.MeasuredDimensions[0]
	}
	return n.layout.MeasuredDimensions[1]
}

// --- min/max clamping ------------------------------------------------------

// boundAxis clamps value to the node's style min/max for dim, resolved
// against ownerSize. Max is applied before min, so an inverted min>max
// pair resolves to min.
func boundAxis(n *Node, dim v.Dim, value float64, ownerSize v.OptionalFloat) float64 {
	minV := n.style.MinDimensions[dim].Resolve(ownerSize)
	maxV := n.style.MaxDimensions[dim].Resolve(ownerSize)
	if !maxV.IsUndefined() && value > maxV.Value {
		value = maxV.Value
	}
	if !minV.IsUndefined() && value < minV.Value {
		value = minV.Value
	}
	if value < 0 {
		value = 0
	}
	return value
}

func clampAvailableInner(n *Node, dim v.Dim, avail float64, ownerSize v.OptionalFloat) float64 {
	if math.IsNaN(avail) {
		return avail
	}
	minV := n.style.MinDimensions[dim].Resolve(ownerSize)
	maxV := n.style.MaxDimensions[dim].Resolve(ownerSize)
	pb := n.paddingAndBorderForAxisDim(dim)
	if !maxV.IsUndefined() && avail > maxV.Value-pb {
		avail = maxV.Value - pb
	}
	if !minV.IsUndefined() && avail < minV.Value-pb {
		avail = minV.Value - pb
	}
	if avail < 0 {
		avail = 0
	}
	return avail
}

func childHasDefiniteSize(style *Style, dim v.Dim) bool {
	d := style.Dimensions[dim]
	return !d.IsUndefined() && !d.IsAuto()
}

func floatToOwnerSize(f float64) v.OptionalFloat {
	if math.IsNaN(f) {
		return v.UndefinedFloat
	}
	return v.Defined(f)
}

func hasAutoCrossMargin(child *Node, crossFD FlexDirection, dir Direction) bool {
	return leadingValue(child.style.Margin, crossFD, dir, v.Undefined).IsAuto() ||
		trailingValue(child.style.Margin, crossFD, dir, v.Undefined).IsAuto()
}

// --- Step 0: leaf/empty/trivial shortcuts -----------------------------

// measureLeaf handles a node with a measure callback: it resolves the
// content-box constraint from available space and the node's own style
// dimensions, invokes the callback, then bounds the border-box result by
// min/max.
func (n *Node) measureLeaf(availableWidth, availableHeight float64, widthMode, heightMode MeasureMode, ownerWidth, ownerHeight v.OptionalFloat) {
	pbW := n.paddingAndBorderForAxis(FlexDirectionRow)
	pbH := n.paddingAndBorderForAxis(FlexDirectionColumn)
	marginW := n.marginForAxis(FlexDirectionRow)
	marginH := n.marginForAxis(FlexDirectionColumn)

	measuredW, mW := availableWidth-marginW-pbW, widthMode
	measuredH, mH := availableHeight-marginH-pbH, heightMode

	if styleW := n.style.Dimensions[v.DimWidth]; !styleW.IsUndefined() && !styleW.IsAuto() {
		if r := styleW.Resolve(ownerWidth); !r.IsUndefined() {
			measuredW, mW = r.Value-pbW, MeasureModeExactly
		}
	}
	if styleH := n.style.Dimensions[v.DimHeight]; !styleH.IsUndefined() && !styleH.IsAuto() {
		if r := styleH.Resolve(ownerHeight); !r.IsUndefined() {
			measuredH, mH = r.Value-pbH, MeasureModeExactly
		}
	}
	if measuredW < 0 || math.IsNaN(measuredW) {
		measuredW = 0
	}
	if measuredH < 0 || math.IsNaN(measuredH) {
		measuredH = 0
	}

	size := n.measure(n, measuredW, mW, measuredH, mH)

	contentW := size.Width
	if mW == MeasureModeExactly {
		contentW = measuredW
	}
	contentH := size.Height
	if mH == MeasureModeExactly {
		contentH = measuredH
	}

	n.layout.MeasuredDimensions[0] = boundAxis(n, v.DimWidth, contentW+pbW, ownerWidth)
	n.layout.MeasuredDimensions[1] = boundAxis(n, v.DimHeight, contentH+pbH, ownerHeight)
}

// measureEmpty sizes a childless, measure-less node from its own
// padding+border and, when the mode pins a size, the available space.
func (n *Node) measureEmpty(availableWidth, availableHeight float64, widthMode, heightMode MeasureMode, ownerWidth, ownerHeight v.OptionalFloat) {
	w := n.paddingAndBorderForAxis(FlexDirectionRow)
	if widthMode == MeasureModeExactly {
		w = availableWidth - n.marginForAxis(FlexDirectionRow)
	}
	h := n.paddingAndBorderForAxis(FlexDirectionColumn)
	if heightMode == MeasureModeExactly {
		h = availableHeight - n.marginForAxis(FlexDirectionColumn)
	}
	n.layout.MeasuredDimensions[0] = boundAxis(n, v.DimWidth, w, ownerWidth)
	n.layout.MeasuredDimensions[1] = boundAxis(n, v.DimHeight, h, ownerHeight)
}

func isTriviallySized(availableWidth, availableHeight float64, widthMode, heightMode MeasureMode) bool {
	bothExact := widthMode == MeasureModeExactly && heightMode == MeasureModeExactly
	widthPinned := widthMode != MeasureModeUndefined && availableWidth <= 0
	heightPinned := heightMode != MeasureModeUndefined && availableHeight <= 0
	return bothExact || widthPinned || heightPinned
}

// --- Step 2: single flex child optimization -----------------------------

// singleFlexChildOptimization returns the one child eligible to skip
// flex-basis computation (its basis is pinned to 0 instead), or nil if
// no such child exists: the main axis must be exactly sized, and exactly
// one non-absolute child may have both flexGrow>0 and flexShrink>0 with
// no other child participating in flex at all.
func singleFlexChildOptimization(n *Node, mainMode MeasureMode) *Node {
	if mainMode != MeasureModeExactly {
		return nil
	}
	var candidate *Node
	for _, child := range n.children {
		if child.style.Display == DisplayNone || child.style.PositionType == PositionTypeAbsolute {
			continue
		}
		grow := resolveFlexGrow(&child.style)
		shrink := resolveFlexShrink(&child.style, n.config.UseWebDefaults)
		switch {
		case grow > 0 && shrink > 0:
			if candidate != nil {
				return nil
			}
			candidate = child
		case grow > 0 || shrink > 0:
			return nil
		}
	}
	return candidate
}

// --- Step 3: flex basis per child ---------------------------------------

func setComputedFlexBasis(n *Node, basis float64, generation uint32) {
	n.layout.ComputedFlexBasis = v.Defined(basis)
	n.layout.ComputedFlexBasisGeneration = generation
}

// childConstraint resolves the (size, mode) a child should be measured
// under along one dimension for the purpose of discovering its intrinsic
// flex basis: its own definite style size wins; otherwise it inherits
// the parent's available space in atMost mode when that space is known.
func childConstraint(child *Node, dim v.Dim, parentAvailable float64, parentMode MeasureMode, ownerSize v.OptionalFloat) (float64, MeasureMode) {
	if childHasDefiniteSize(&child.style, dim) {
		if r := child.style.Dimensions[dim].Resolve(ownerSize); !r.IsUndefined() {
			return r.Value, MeasureModeExactly
		}
	}
	if math.IsNaN(parentAvailable) || parentMode == MeasureModeUndefined {
		return math.NaN(), MeasureModeUndefined
	}
	return parentAvailable, MeasureModeAtMost
}

// computeFlexBasisForChild implements Step 3's per-child resolution: an
// explicit flexBasis wins, then a definite main-axis style dimension,
// then a recursive intrinsic measurement bounded below by the child's
// own padding+border.
func (n *Node) computeFlexBasisForChild(child *Node, axes axes, direction Direction,
	availableInnerWidth, availableInnerHeight float64,
	widthMeasureMode, heightMeasureMode MeasureMode,
	ownerWidth, ownerHeight v.OptionalFloat, generation uint32) {

	mainDim := axes.mainDim
	ownerMain := ownerWidth
	if mainDim == v.DimHeight {
		ownerMain = ownerHeight
	}
	basisFloor := child.paddingAndBorderForAxis(axes.mainFD)

	if basisStyle := resolveFlexBasis(&child.style); !basisStyle.IsUndefined() && !basisStyle.IsAuto() {
		if resolved := basisStyle.Resolve(ownerMain); !resolved.IsUndefined() {
			setComputedFlexBasis(child, math.Max(resolved.Value, basisFloor), generation)
			return
		}
	}

	// ExperimentalWebFlexBasis: a child already flex-resolved once this
	// generation (e.g. by a prior stretch/multi-pass re-layout) carries a
	// main size that reflects flex-grow/shrink; prefer that over the raw
	// style dimension, which would otherwise re-derive a stale basis.
	if n.config.IsExperimentalFeatureEnabled(ExperimentalWebFlexBasis) &&
		child.layout.ComputedFlexBasisGeneration == generation {
		if resolvedMain := measuredDimOf(child, mainDim); !math.IsNaN(resolvedMain) && resolvedMain > 0 {
			setComputedFlexBasis(child, math.Max(resolvedMain, basisFloor), generation)
			return
		}
	}

	if childHasDefiniteSize(&child.style, mainDim) {
		if resolved := child.style.Dimensions[mainDim].Resolve(ownerMain); !resolved.IsUndefined() {
			setComputedFlexBasis(child, math.Max(resolved.Value, basisFloor), generation)
			return
		}
	}

	childWidth, childWidthMode := childConstraint(child, v.DimWidth, availableInnerWidth, widthMeasureMode, ownerWidth)
	childHeight, childHeightMode := childConstraint(child, v.DimHeight, availableInnerHeight, heightMeasureMode, ownerHeight)

	if aspect := child.style.AspectRatio; !aspect.IsUndefined() {
		if childWidthMode == MeasureModeExactly && childHeightMode != MeasureModeExactly {
			childHeight, childHeightMode = childWidth/aspect.Value, MeasureModeExactly
		} else if childHeightMode == MeasureModeExactly && childWidthMode != MeasureModeExactly {
			childWidth, childWidthMode = childHeight*aspect.Value, MeasureModeExactly
		}
	}

	child.layoutInternal(childWidth, childHeight, direction, childWidthMode, childHeightMode, availableInnerWidth, availableInnerHeight, false, generation)

	main := dimOf(child, mainDim)
	// dimOf reads layout.Dimensions, which only reflects performLayout
	// calls; read the measurement result directly for this probe.
	if mainDim == v.DimWidth {
		main = child.layout.MeasuredDimensions[0]
	} else {
		main = child.layout.MeasuredDimensions[1]
	}
	setComputedFlexBasis(child, math.Max(main, basisFloor), generation)
}

type flexItem struct {
	node         *Node
	basis        float64
	margin       float64
	hypothetical float64
	outer        float64
	flexGrow     float64
	flexShrink   float64
	scaledShrink float64
	frozen       bool
	mainSize     float64
}

// buildFlexItem snapshots the per-item bookkeeping Steps 4-5 need:
// the basis already computed in computeFlexBasisForChild, clamped to the
// child's own min/max, plus its resolved flexGrow/flexShrink factors.
func buildFlexItem(child *Node, axes axes, ownerMainSize v.OptionalFloat, webDefaults bool) *flexItem {
	basis := child.layout.ComputedFlexBasis.OrElse(0)
	margin := child.marginForAxis(axes.mainFD)
	hyp := boundAxis(child, axes.mainDim, basis, ownerMainSize)
	shrink := resolveFlexShrink(&child.style, webDefaults)
	return &flexItem{
		node:         child,
		basis:        basis,
		margin:       margin,
		hypothetical: hyp,
		outer:        hyp + margin,
		flexGrow:     resolveFlexGrow(&child.style),
		flexShrink:   shrink,
		scaledShrink: shrink * basis,
	}
}

// --- layoutImpl: the 11-step recursion -----------------------------------

// layoutImpl is the uncached flex algorithm body; layoutInternal is the
// cache gateway that decides whether this needs to run at all.
func (n *Node) layoutImpl(availableWidth, availableHeight float64, direction Direction,
	widthMeasureMode, heightMeasureMode MeasureMode, parentWidth, parentHeight float64,
	performLayout bool, generation uint32) {

	ownerWidth := floatToOwnerSize(parentWidth)
	ownerHeight := floatToOwnerSize(parentHeight)

	n.computeEdges(direction, ownerWidth)

	if n.measure != nil {
		n.measureLeaf(availableWidth, availableHeight, widthMeasureMode, heightMeasureMode, ownerWidth, ownerHeight)
		return
	}
	if len(n.children) == 0 {
		n.measureEmpty(availableWidth, availableHeight, widthMeasureMode, heightMeasureMode, ownerWidth, ownerHeight)
		return
	}
	if !performLayout && isTriviallySized(availableWidth, availableHeight, widthMeasureMode, heightMeasureMode) {
		n.layout.MeasuredDimensions[0] = boundAxis(n, v.DimWidth, availableWidth-n.marginForAxis(FlexDirectionRow), ownerWidth)
		n.layout.MeasuredDimensions[1] = boundAxis(n, v.DimHeight, availableHeight-n.marginForAxis(FlexDirectionColumn), ownerHeight)
		return
	}

	n.ensureChildrenOwned()
	n.layout.HadOverflow = false

	axs := resolveAxes(&n.style, direction)

	availableInnerWidth := clampAvailableInner(n, v.DimWidth,
		availableWidth-n.marginForAxis(FlexDirectionRow)-n.paddingAndBorderForAxis(FlexDirectionRow), ownerWidth)
	availableInnerHeight := clampAvailableInner(n, v.DimHeight,
		availableHeight-n.marginForAxis(FlexDirectionColumn)-n.paddingAndBorderForAxis(FlexDirectionColumn), ownerHeight)

	availableInnerMain, availableInnerCross := availableInnerWidth, availableInnerHeight
	mainMode := widthMeasureMode
	if axs.mainDim == v.DimHeight {
		availableInnerMain, availableInnerCross = availableInnerHeight, availableInnerWidth
		mainMode = heightMeasureMode
	}

	wrap := n.style.FlexWrap != WrapNoWrap
	singleFlexChild := singleFlexChildOptimization(n, mainMode)

	ownerMain := ownerWidth
	if axs.mainDim == v.DimHeight {
		ownerMain = ownerHeight
	}

	var items []*flexItem
	var absoluteChildren []*Node
	for _, child := range n.children {
		if child.style.Display == DisplayNone {
			continue
		}
		if child.style.PositionType == PositionTypeAbsolute {
			absoluteChildren = append(absoluteChildren, child)
			continue
		}
		if singleFlexChild == child {
			setComputedFlexBasis(child, 0, generation)
		} else {
			n.computeFlexBasisForChild(child, axs, direction, availableInnerWidth, availableInnerHeight,
				widthMeasureMode, heightMeasureMode, ownerWidth, ownerHeight, generation)
		}
		items = append(items, buildFlexItem(child, axs, ownerMain, n.config.UseWebDefaults))
	}

	lines := collectFlexLines(items, wrap, availableInnerMain)

	for _, line := range lines {
		n.resolveFlexibleLengths(line, axs, availableInnerMain, availableInnerCross, direction, ownerWidth, ownerHeight, generation)
		for _, it := range line.items {
			cross := dimOf(it.node, axs.crossDim) + it.node.marginForAxis(axs.crossFD)
			if cross > line.crossDim {
				line.crossDim = cross
			}
		}
	}

	for _, line := range lines {
		justifyMainAxis(n, line, axs)
	}
	alignContentMultiline(n, lines, axs, availableInnerCross, direction, ownerWidth, ownerHeight, generation)

	mainContent := 0.0
	for _, line := range lines {
		if line.mainDim > mainContent {
			mainContent = line.mainDim
		}
	}
	crossContent := 0.0
	for _, line := range lines {
		crossContent += line.crossDim
	}

	finalizeDimensions(n, axs, mainContent, crossContent, availableWidth, availableHeight,
		widthMeasureMode, heightMeasureMode, ownerWidth, ownerHeight)

	mainSize := measuredDimOf(n, axs.mainDim)
	crossSizeFinal := measuredDimOf(n, axs.crossDim)
	innerMain := mainSize - n.paddingAndBorderForAxis(axs.mainFD)
	innerCross := crossSizeFinal - n.paddingAndBorderForAxis(axs.crossFD)

	n.layoutAbsoluteChildren(absoluteChildren, axs, direction, innerMain, innerCross, ownerWidth, ownerHeight, generation)

	applyTrailingPositions(n, lines, axs)
}
