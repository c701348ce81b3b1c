package flex

import (
	"math"

	v "github.com/corelayout/flexlayout/internal/core/value"
)

// layoutAbsoluteChildren implements Step 10: size and position each
// absolutely positioned child independently of the flex flow.
func (n *Node) layoutAbsoluteChildren(children []*Node, axes axes, direction Direction,
	innerMain, innerCross float64, ownerWidth, ownerHeight v.OptionalFloat, generation uint32) {

	for _, child := range children {
		width, widthMode := absoluteChildAxis(n, child, v.DimWidth, direction, innerCross, innerMain, axes, ownerWidth, ownerHeight)
		height, heightMode := absoluteChildAxis(n, child, v.DimHeight, direction, innerCross, innerMain, axes, ownerWidth, ownerHeight)

		if aspect := child.style.AspectRatio; !aspect.IsUndefined() {
			if widthMode == MeasureModeExactly && heightMode != MeasureModeExactly {
				height, heightMode = width/aspect.Value, MeasureModeExactly
			} else if heightMode == MeasureModeExactly && widthMode != MeasureModeExactly {
				width, widthMode = height*aspect.Value, MeasureModeExactly
			}
		}

		if widthMode != MeasureModeExactly || heightMode != MeasureModeExactly {
			child.layoutInternal(width, height, direction, widthMode, heightMode,
				ownerWidth.OrElse(math.NaN()), ownerHeight.OrElse(math.NaN()), false, generation)
			if widthMode != MeasureModeExactly {
				width, widthMode = child.layout.MeasuredDimensions[0], MeasureModeExactly
			}
			if heightMode != MeasureModeExactly {
				height, heightMode = child.layout.MeasuredDimensions[1], MeasureModeExactly
			}
		}

		child.layoutInternal(width, height, direction, widthMode, heightMode,
			ownerWidth.OrElse(math.NaN()), ownerHeight.OrElse(math.NaN()), true, generation)

		positionAbsoluteChild(n, child, axes, direction, innerMain, innerCross)
	}
}

// absoluteChildAxis resolves one dimension of an absolute child from (in
// order) an explicit style dimension, or both opposite insets (size =
// distance between them, against the owner's content box for that
// axis), leaving it content-driven (MeasureModeUndefined) otherwise.
func absoluteChildAxis(n *Node, child *Node, dim v.Dim, direction Direction, innerCross, innerMain float64, axes axes, ownerWidth, ownerHeight v.OptionalFloat) (float64, MeasureMode) {
	ownerSize := ownerWidth
	if dim == v.DimHeight {
		ownerSize = ownerHeight
	}
	if childHasDefiniteSize(&child.style, dim) {
		if r := child.style.Dimensions[dim].Resolve(ownerSize); !r.IsUndefined() {
			return r.Value, MeasureModeExactly
		}
	}

	fd := FlexDirectionRow
	containerSize := innerCross
	if dim == v.DimHeight {
		fd = FlexDirectionColumn
	}
	if dim == axes.mainDim {
		containerSize = innerMain
	}

	leadInset := leadingValue(child.style.Position, fd, direction, v.Undefined)
	trailInset := trailingValue(child.style.Position, fd, direction, v.Undefined)
	if !leadInset.IsUndefined() && !trailInset.IsUndefined() {
		lead := leadInset.Resolve(v.Defined(containerSize)).OrElse(0)
		trail := trailInset.Resolve(v.Defined(containerSize)).OrElse(0)
		size := containerSize - lead - trail
		if size < 0 {
			size = 0
		}
		return size, MeasureModeExactly
	}
	return math.NaN(), MeasureModeUndefined
}

// positionAbsoluteChild places an already-sized absolute child: an
// explicit inset on an axis wins outright; a lone trailing inset anchors
// to the opposite edge; with neither inset set, the owner's
// justifyContent/alignItems fraction positions it, falling back to the
// leading edge.
func positionAbsoluteChild(n *Node, child *Node, axes axes, direction Direction, innerMain, innerCross float64) {
	positionOnAxis(n, child, axes.mainFD, direction, innerMain, mainInsetFraction(n))
	positionOnAxis(n, child, axes.crossFD, direction, innerCross, crossInsetFraction(n))
}

func mainInsetFraction(n *Node) float64 {
	switch n.style.Justify {
	case JustifyCenter:
		return 0.5
	case JustifyFlexEnd:
		return 1
	default:
		return 0
	}
}

func crossInsetFraction(n *Node) float64 {
	switch n.style.AlignItems {
	case AlignCenter:
		return 0.5
	case AlignFlexEnd:
		return 1
	default:
		return 0
	}
}

func positionOnAxis(n *Node, child *Node, fd FlexDirection, direction Direction, innerSize float64, fallbackFraction float64) {
	lead := leadingValue(child.style.Position, fd, direction, v.Undefined)
	trail := trailingValue(child.style.Position, fd, direction, v.Undefined)
	size := dimOf(child, dimForAxis[fd])
	pb := n.leadingBorder(fd) + n.leadingPadding(fd)

	switch {
	case !lead.IsUndefined():
		l := lead.Resolve(v.Defined(innerSize)).OrElse(0)
		child.layout.Position[leadingEdge[fd]] = pb + l + child.leadingMargin(fd)
	case !trail.IsUndefined():
		t := trail.Resolve(v.Defined(innerSize)).OrElse(0)
		child.layout.Position[leadingEdge[fd]] = pb + innerSize - t - size - child.trailingMargin(fd)
	default:
		child.layout.Position[leadingEdge[fd]] = pb + (innerSize-size)*fallbackFraction + child.leadingMargin(fd)
	}
}
