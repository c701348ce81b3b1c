package flex

import v "github.com/corelayout/flexlayout/internal/core/value"

// finalizeDimensions implements Step 9: convert the accumulated
// main/cross content size into the node's own border-box
// MeasuredDimensions, honoring the requested MeasureMode and, under
// overflow=scroll, clamping an atMost content size to the available
// space rather than letting it size to content.
func finalizeDimensions(n *Node, axes axes, mainContentSize, crossContentSize float64,
	availableWidth, availableHeight float64, widthMode, heightMode MeasureMode,
	ownerWidth, ownerHeight v.OptionalFloat) {

	mainContentSize += n.paddingAndBorderForAxis(axes.mainFD)
	crossContentSize += n.paddingAndBorderForAxis(axes.crossFD)

	widthContent, heightContent := mainContentSize, crossContentSize
	if axes.mainDim == v.DimHeight {
		widthContent, heightContent = crossContentSize, mainContentSize
	}

	n.layout.MeasuredDimensions[0] = resolveFinalAxis(n, v.DimWidth, widthContent, availableWidth, widthMode, ownerWidth)
	n.layout.MeasuredDimensions[1] = resolveFinalAxis(n, v.DimHeight, heightContent, availableHeight, heightMode, ownerHeight)
}

func resolveFinalAxis(n *Node, dim v.Dim, contentSize, available float64, mode MeasureMode, ownerSize v.OptionalFloat) float64 {
	margin := n.marginForAxis(FlexDirectionRow)
	if dim == v.DimHeight {
		margin = n.marginForAxis(FlexDirectionColumn)
	}
	switch mode {
	case MeasureModeExactly:
		return boundAxis(n, dim, available-margin, ownerSize)
	case MeasureModeAtMost:
		if n.style.Overflow == OverflowScroll && contentSize > available {
			return boundAxis(n, dim, available-margin, ownerSize)
		}
		return boundAxis(n, dim, contentSize, ownerSize)
	default:
		return boundAxis(n, dim, contentSize, ownerSize)
	}
}

// applyTrailingPositions implements Step 11: a …Reverse main or cross
// axis only has its leading-edge position written by Steps 6-8 (into
// the physical edge that axis's leadingEdge table points at); this
// converts that into the true trailing-physical-edge coordinate so
// Left()/Top() always report real coordinates regardless of direction.
// wrap-reverse additionally mirrors every line's cross position. Both
// positions are measured from the node's own border-box origin, so the
// flip uses the node's full box size, not its content box.
func applyTrailingPositions(n *Node, lines []*flexLine, axes axes) {
	mainSize := measuredDimOf(n, axes.mainDim)
	crossSize := measuredDimOf(n, axes.crossDim)
	mainReverse := axes.mainFD == FlexDirectionRowReverse || axes.mainFD == FlexDirectionColumnReverse
	crossReverse := axes.crossFD == FlexDirectionRowReverse || axes.crossFD == FlexDirectionColumnReverse

	for _, l := range lines {
		for _, it := range l.items {
			child := it.node
			if mainReverse {
				lead := child.layout.Position[leadingEdge[axes.mainFD]]
				size := dimOf(child, axes.mainDim)
				child.layout.Position[trailingEdge[axes.mainFD]] = mainSize - size - lead
			}
			if crossReverse {
				lead := child.layout.Position[leadingEdge[axes.crossFD]]
				size := dimOf(child, axes.crossDim)
				child.layout.Position[trailingEdge[axes.crossFD]] = crossSize - size - lead
			}
		}
	}

	if n.style.FlexWrap == WrapWrapReverse {
		for _, l := range lines {
			for _, it := range l.items {
				child := it.node
				old := child.layout.Position[leadingEdge[axes.crossFD]]
				size := dimOf(child, axes.crossDim)
				child.layout.Position[leadingEdge[axes.crossFD]] = crossSize - old - size
			}
		}
	}
}
