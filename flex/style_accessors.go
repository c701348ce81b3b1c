package flex

import v "github.com/corelayout/flexlayout/internal/core/value"

// Every setter no-ops if the new value already equals the current one;
// any real change marks the node dirty. Dimensional setters get
// Point/Percent/Auto variants where the CSS property allows them.

func (n *Node) SetDirection(d Direction) {
	if n.style.Direction == d {
		return
	}
	n.style.Direction = d
	n.markDirty()
}
func (n *Node) GetDirection() Direction { return n.style.Direction }

func (n *Node) SetFlexDirection(d FlexDirection) {
	if n.style.FlexDirection == d {
		return
	}
	n.style.FlexDirection = d
	n.markDirty()
}
func (n *Node) GetFlexDirection() FlexDirection { return n.style.FlexDirection }

func (n *Node) SetJustifyContent(j Justify) {
	if n.style.Justify == j {
		return
	}
	n.style.Justify = j
	n.markDirty()
}
func (n *Node) GetJustifyContent() Justify { return n.style.Justify }

func (n *Node) SetAlignContent(a Align) {
	if n.style.AlignContent == a {
		return
	}
	n.style.AlignContent = a
	n.markDirty()
}
func (n *Node) GetAlignContent() Align { return n.style.AlignContent }

func (n *Node) SetAlignItems(a Align) {
	if n.style.AlignItems == a {
		return
	}
	n.style.AlignItems = a
	n.markDirty()
}
func (n *Node) GetAlignItems() Align { return n.style.AlignItems }

func (n *Node) SetAlignSelf(a Align) {
	if n.style.AlignSelf == a {
		return
	}
	n.style.AlignSelf = a
	n.markDirty()
}
func (n *Node) GetAlignSelf() Align { return n.style.AlignSelf }

func (n *Node) SetPositionType(p PositionType) {
	if n.style.PositionType == p {
		return
	}
	n.style.PositionType = p
	n.markDirty()
}
func (n *Node) GetPositionType() PositionType { return n.style.PositionType }

func (n *Node) SetFlexWrap(w FlexWrap) {
	if n.style.FlexWrap == w {
		return
	}
	n.style.FlexWrap = w
	n.markDirty()
}
func (n *Node) GetFlexWrap() FlexWrap { return n.style.FlexWrap }

func (n *Node) SetOverflow(o Overflow) {
	if n.style.Overflow == o {
		return
	}
	n.style.Overflow = o
	n.markDirty()
}
func (n *Node) GetOverflow() Overflow { return n.style.Overflow }

func (n *Node) SetDisplay(d Display) {
	if n.style.Display == d {
		return
	}
	n.style.Display = d
	n.markDirty()
}
func (n *Node) GetDisplay() Display { return n.style.Display }

// SetFlex sets the CSS `flex` shorthand (see resolveFlex* in style.go).
func (n *Node) SetFlex(f v.OptionalFloat) {
	if n.style.Flex.Equal(f) {
		return
	}
	n.style.Flex = f
	n.markDirty()
}
func (n *Node) GetFlex() v.OptionalFloat { return n.style.Flex }

func (n *Node) SetFlexGrow(f v.OptionalFloat) {
	if n.style.FlexGrow.Equal(f) {
		return
	}
	n.style.FlexGrow = f
	n.markDirty()
}
func (n *Node) GetFlexGrow() v.OptionalFloat { return n.style.FlexGrow }

func (n *Node) SetFlexShrink(f v.OptionalFloat) {
	if n.style.FlexShrink.Equal(f) {
		return
	}
	n.style.FlexShrink = f
	n.markDirty()
}
func (n *Node) GetFlexShrink() v.OptionalFloat { return n.style.FlexShrink }

func (n *Node) setFlexBasis(val v.Value) {
	if n.style.FlexBasis.Equal(val) {
		return
	}
	n.style.FlexBasis = val
	n.markDirty()
}
func (n *Node) SetFlexBasis(points float64)   { n.setFlexBasis(v.Point(points)) }
func (n *Node) SetFlexBasisPercent(pct float64) { n.setFlexBasis(v.Percent(pct)) }
func (n *Node) SetFlexBasisAuto()             { n.setFlexBasis(v.Auto) }
func (n *Node) GetFlexBasis() v.Value         { return n.style.FlexBasis }

func (n *Node) setEdge(edges *[v.EdgeCount]v.Value, edge v.Edge, val v.Value) {
	if edges[edge].Equal(val) {
		return
	}
	edges[edge] = val
	n.markDirty()
}

func (n *Node) SetMargin(edge v.Edge, points float64) { n.setEdge(&n.style.Margin, edge, v.Point(points)) }
func (n *Node) SetMarginPercent(edge v.Edge, pct float64) {
	n.setEdge(&n.style.Margin, edge, v.Percent(pct))
}
func (n *Node) SetMarginAuto(edge v.Edge) { n.setEdge(&n.style.Margin, edge, v.Auto) }
func (n *Node) GetMargin(edge v.Edge) v.Value {
	return v.ComputedEdgeValue(n.style.Margin, edge, v.Undefined)
}

func (n *Node) SetPosition(edge v.Edge, points float64) {
	n.setEdge(&n.style.Position, edge, v.Point(points))
}
func (n *Node) SetPositionPercent(edge v.Edge, pct float64) {
	n.setEdge(&n.style.Position, edge, v.Percent(pct))
}
func (n *Node) GetPosition(edge v.Edge) v.Value {
	return v.ComputedEdgeValue(n.style.Position, edge, v.Undefined)
}

func (n *Node) SetPadding(edge v.Edge, points float64) {
	n.setEdge(&n.style.Padding, edge, v.Point(points))
}
func (n *Node) SetPaddingPercent(edge v.Edge, pct float64) {
	n.setEdge(&n.style.Padding, edge, v.Percent(pct))
}
func (n *Node) GetPadding(edge v.Edge) v.Value {
	return v.ComputedEdgeValue(n.style.Padding, edge, v.Undefined)
}

func (n *Node) SetBorder(edge v.Edge, points float64) {
	n.setEdge(&n.style.Border, edge, v.Point(points))
}
func (n *Node) GetBorder(edge v.Edge) v.Value {
	return v.ComputedEdgeValue(n.style.Border, edge, v.Undefined)
}

func (n *Node) setDim(dims *[v.DimCount]v.Value, dim v.Dim, val v.Value) {
	if dims[dim].Equal(val) {
		return
	}
	dims[dim] = val
	n.markDirty()
}

func (n *Node) SetWidth(points float64)    { n.setDim(&n.style.Dimensions, v.DimWidth, v.Point(points)) }
func (n *Node) SetWidthPercent(pct float64) { n.setDim(&n.style.Dimensions, v.DimWidth, v.Percent(pct)) }
func (n *Node) SetWidthAuto()              { n.setDim(&n.style.Dimensions, v.DimWidth, v.Auto) }
func (n *Node) GetWidth() v.Value          { return n.style.Dimensions[v.DimWidth] }

func (n *Node) SetHeight(points float64) { n.setDim(&n.style.Dimensions, v.DimHeight, v.Point(points)) }
func (n *Node) SetHeightPercent(pct float64) {
	n.setDim(&n.style.Dimensions, v.DimHeight, v.Percent(pct))
}
func (n *Node) SetHeightAuto()    { n.setDim(&n.style.Dimensions, v.DimHeight, v.Auto) }
func (n *Node) GetHeight() v.Value { return n.style.Dimensions[v.DimHeight] }

func (n *Node) SetMinWidth(points float64) {
	n.setDim(&n.style.MinDimensions, v.DimWidth, v.Point(points))
}
func (n *Node) SetMinWidthPercent(pct float64) {
	n.setDim(&n.style.MinDimensions, v.DimWidth, v.Percent(pct))
}
func (n *Node) GetMinWidth() v.Value { return n.style.MinDimensions[v.DimWidth] }

func (n *Node) SetMinHeight(points float64) {
	n.setDim(&n.style.MinDimensions, v.DimHeight, v.Point(points))
}
func (n *Node) SetMinHeightPercent(pct float64) {
	n.setDim(&n.style.MinDimensions, v.DimHeight, v.Percent(pct))
}
func (n *Node) GetMinHeight() v.Value { return n.style.MinDimensions[v.DimHeight] }

func (n *Node) SetMaxWidth(points float64) {
	n.setDim(&n.style.MaxDimensions, v.DimWidth, v.Point(points))
}
func (n *Node) SetMaxWidthPercent(pct float64) {
	n.setDim(&n.style.MaxDimensions, v.DimWidth, v.Percent(pct))
}
func (n *Node) GetMaxWidth() v.Value { return n.style.MaxDimensions[v.DimWidth] }

func (n *Node) SetMaxHeight(points float64) {
	n.setDim(&n.style.MaxDimensions, v.DimHeight, v.Point(points))
}
func (n *Node) SetMaxHeightPercent(pct float64) {
	n.setDim(&n.style.MaxDimensions, v.DimHeight, v.Percent(pct))
}
func (n *Node) GetMaxHeight() v.Value { return n.style.MaxDimensions[v.DimHeight] }

func (n *Node) SetAspectRatio(ratio v.OptionalFloat) {
	if n.style.AspectRatio.Equal(ratio) {
		return
	}
	n.style.AspectRatio = ratio
	n.markDirty()
}
func (n *Node) GetAspectRatio() v.OptionalFloat { return n.style.AspectRatio }
