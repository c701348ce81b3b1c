package flex

import v "github.com/corelayout/flexlayout/internal/core/value"

// leadingEdge maps a resolved FlexDirection to the edge its main axis
// grows away from.
var leadingEdge = [4]v.Edge{
	FlexDirectionColumn:        v.EdgeTop,
	FlexDirectionColumnReverse: v.EdgeBottom,
	FlexDirectionRow:           v.EdgeLeft,
	FlexDirectionRowReverse:    v.EdgeRight,
}

// trailingEdge is the opposite of leadingEdge.
var trailingEdge = [4]v.Edge{
	FlexDirectionColumn:        v.EdgeBottom,
	FlexDirectionColumnReverse: v.EdgeTop,
	FlexDirectionRow:           v.EdgeRight,
	FlexDirectionRowReverse:    v.EdgeLeft,
}

// dimForAxis maps a FlexDirection to the dimension its main axis measures.
var dimForAxis = [4]v.Dim{
	FlexDirectionColumn:        v.DimHeight,
	FlexDirectionColumnReverse: v.DimHeight,
	FlexDirectionRow:           v.DimWidth,
	FlexDirectionRowReverse:    v.DimWidth,
}

// isRow reports whether fd lays out along the horizontal axis.
func isRow(fd FlexDirection) bool {
	return fd == FlexDirectionRow || fd == FlexDirectionRowReverse
}

// isColumn reports whether fd lays out along the vertical axis.
func isColumn(fd FlexDirection) bool {
	return fd == FlexDirectionColumn || fd == FlexDirectionColumnReverse
}

// resolveDirection implements resolveDirection: inherit from the owner
// unless the node specifies LTR/RTL explicitly.
func resolveDirection(style *Style, ownerDirection Direction) Direction {
	if style.Direction == DirectionInherit {
		if ownerDirection != DirectionInherit {
			return ownerDirection
		}
		return DirectionLTR
	}
	return style.Direction
}

// resolveFlexDirection swaps row<->rowReverse under RTL; columns are
// unaffected since vertical writing-mode reversal is out of scope.
func resolveFlexDirection(fd FlexDirection, dir Direction) FlexDirection {
	if dir == DirectionRTL {
		switch fd {
		case FlexDirectionRow:
			return FlexDirectionRowReverse
		case FlexDirectionRowReverse:
			return FlexDirectionRow
		}
	}
	return fd
}

// flexDirectionCross returns the cross-axis direction for a resolved
// main axis: the row form (RTL-aware) for column mains, plain column
// for row mains.
func flexDirectionCross(fd FlexDirection, dir Direction) FlexDirection {
	if isColumn(fd) {
		return resolveFlexDirection(FlexDirectionRow, dir)
	}
	return FlexDirectionColumn
}

// axes bundles the resolved main/cross directions and their dimensions
// for one layoutImpl invocation.
type axes struct {
	direction  Direction
	mainFD     FlexDirection
	crossFD    FlexDirection
	mainDim    v.Dim
	crossDim   v.Dim
	mainIsRow  bool
	crossIsRow bool
}

// resolveAxes computes the axis bundle for a node's resolved style.
func resolveAxes(style *Style, ownerDirection Direction) axes {
	dir := resolveDirection(style, ownerDirection)
	mainFD := resolveFlexDirection(style.FlexDirection, dir)
	crossFD := flexDirectionCross(mainFD, dir)
	return axes{
		direction:  dir,
		mainFD:     mainFD,
		crossFD:    crossFD,
		mainDim:    dimForAxis[mainFD],
		crossDim:   dimForAxis[crossFD],
		mainIsRow:  isRow(mainFD),
		crossIsRow: isRow(crossFD),
	}
}

// leadingEdgeForAxis returns the logical edge that leads axis fd: Start
// for a row axis (End under RTL), or the physical leading edge for a
// column axis. It does not check whether a value is set on that edge.
func leadingEdgeForAxis(fd FlexDirection, dir Direction) v.Edge {
	if isRow(fd) {
		if dir == DirectionRTL {
			return v.EdgeEnd
		}
		return v.EdgeStart
	}
	return leadingEdge[fd]
}

// trailingEdgeForAxis is the Start/End-aware counterpart of leadingEdgeForAxis.
func trailingEdgeForAxis(fd FlexDirection, dir Direction) v.Edge {
	if isRow(fd) {
		if dir == DirectionRTL {
			return v.EdgeStart
		}
		return v.EdgeEnd
	}
	return trailingEdge[fd]
}

// edgeOrFallback resolves a row-axis Start/End edge first, falling back
// to the physical Left/Right edge via computedEdgeValue when Start/End
// is undefined, per the GLOSSARY's Leading/trailing rule.
func edgeOrFallback(edges [v.EdgeCount]v.Value, startEnd, physical v.Edge, def v.Value) v.Value {
	val := v.ComputedEdgeValue(edges, startEnd, v.Undefined)
	if !val.IsUndefined() {
		return val
	}
	return v.ComputedEdgeValue(edges, physical, def)
}

// leadingValue returns the resolved margin/position/padding/border value
// for the leading edge of axis fd under direction dir.
func leadingValue(edges [v.EdgeCount]v.Value, fd FlexDirection, dir Direction, def v.Value) v.Value {
	if isRow(fd) {
		physical := v.EdgeLeft
		startEnd := v.EdgeStart
		if dir == DirectionRTL {
			physical = v.EdgeRight
			startEnd = v.EdgeEnd
		}
		return edgeOrFallback(edges, startEnd, physical, def)
	}
	return v.ComputedEdgeValue(edges, leadingEdge[fd], def)
}

// trailingValue is the leadingValue counterpart for the trailing edge.
func trailingValue(edges [v.EdgeCount]v.Value, fd FlexDirection, dir Direction, def v.Value) v.Value {
	if isRow(fd) {
		physical := v.EdgeRight
		startEnd := v.EdgeEnd
		if dir == DirectionRTL {
			physical = v.EdgeLeft
			startEnd = v.EdgeStart
		}
		return edgeOrFallback(edges, startEnd, physical, def)
	}
	return v.ComputedEdgeValue(edges, trailingEdge[fd], def)
}

// clampNonNegative clamps a resolved border/padding value to zero; a
// negative border or padding is silently treated as absent rather than
// rejected.
func clampNonNegative(f v.OptionalFloat) v.OptionalFloat {
	if f.IsUndefined() {
		return f
	}
	if f.Value < 0 {
		return v.Defined(0)
	}
	return f
}

// alignItem implements the alignItem(parent, child) rule: child
// AlignSelf wins unless it is AlignAuto, in which case the parent's
// AlignItems applies; baseline demotes to flex-start in column flows.
func alignItem(parentAlignItems Align, childAlignSelf Align, parentMainFD FlexDirection) Align {
	align := childAlignSelf
	if align == AlignAuto {
		align = parentAlignItems
	}
	if align == AlignBaseline && isColumn(parentMainFD) {
		return AlignFlexStart
	}
	return align
}
