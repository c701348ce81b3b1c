package flex

import v "github.com/corelayout/flexlayout/internal/core/value"

// Direction is the writing direction a node resolves to at layout time.
type Direction int8

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// FlexDirection selects the main axis and its leading edge.
type FlexDirection int8

const (
	FlexDirectionColumn FlexDirection = iota
	FlexDirectionColumnReverse
	FlexDirectionRow
	FlexDirectionRowReverse
)

// Justify controls free-space distribution along the main axis.
type Justify int8

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align is shared by AlignContent, AlignItems and AlignSelf. Not every
// value is legal on every field; see the per-field doc comments.
type Align int8

const (
	// AlignAuto is only legal on AlignSelf: "defer to the parent's AlignItems".
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
)

// PositionType controls whether a node participates in flex flow.
type PositionType int8

const (
	PositionTypeRelative PositionType = iota
	PositionTypeAbsolute
)

// FlexWrap controls whether a line may break into multiple lines, and
// the cross-axis order of those lines.
type FlexWrap int8

const (
	WrapNoWrap FlexWrap = iota
	WrapWrap
	WrapWrapReverse
)

// Overflow affects how a node's own content-driven size behaves once
// min/max clamped (visual clipping itself is out of scope).
type Overflow int8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// Display toggles whether a node and its subtree participate in layout.
type Display int8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// NodeType distinguishes measure-driven leaves ("text") from ordinary
// container nodes. It is set implicitly by SetMeasureFunc/nil.
type NodeType int8

const (
	NodeTypeDefault NodeType = iota
	NodeTypeText
)

// Style is the full set of per-node layout inputs. It is owned by its
// Node and never shared; copy it by value (see CopyStyle) to clone.
type Style struct {
	Direction     Direction
	FlexDirection FlexDirection
	Justify       Justify
	AlignContent  Align
	AlignItems    Align
	AlignSelf     Align
	PositionType  PositionType
	FlexWrap      FlexWrap
	Overflow      Overflow
	Display       Display

	Flex       v.OptionalFloat
	FlexGrow   v.OptionalFloat
	FlexShrink v.OptionalFloat
	FlexBasis  v.Value

	Margin   [v.EdgeCount]v.Value
	Position [v.EdgeCount]v.Value
	Padding  [v.EdgeCount]v.Value
	Border   [v.EdgeCount]v.Value

	Dimensions    [v.DimCount]v.Value
	MinDimensions [v.DimCount]v.Value
	MaxDimensions [v.DimCount]v.Value

	AspectRatio v.OptionalFloat
}

// defaultStyle returns a Style with the fresh-node defaults: column
// direction, flex-start justify/align-content, stretch align-items,
// auto align-self, relative position, no-wrap, visible overflow, flex
// display, and all numeric/edge fields undefined/auto.
func defaultStyle() Style {
	var s Style
	s.FlexDirection = FlexDirectionColumn
	s.Justify = JustifyFlexStart
	s.AlignContent = AlignFlexStart
	s.AlignItems = AlignStretch
	s.AlignSelf = AlignAuto
	s.PositionType = PositionTypeRelative
	s.FlexWrap = WrapNoWrap
	s.Overflow = OverflowVisible
	s.Display = DisplayFlex

	s.Flex = v.UndefinedFloat
	s.FlexGrow = v.UndefinedFloat
	s.FlexShrink = v.UndefinedFloat
	s.FlexBasis = v.Auto
	s.AspectRatio = v.UndefinedFloat

	for i := range s.Margin {
		s.Margin[i] = v.Undefined
		s.Position[i] = v.Undefined
		s.Padding[i] = v.Undefined
		s.Border[i] = v.Undefined
	}
	for i := range s.Dimensions {
		s.Dimensions[i] = v.Auto
		s.MinDimensions[i] = v.Undefined
		s.MaxDimensions[i] = v.Undefined
	}
	return s
}

// applyWebDefaults mutates s to match Config.UseWebDefaults: row
// direction, stretch content alignment, and a flexShrink default of 1
// (applied lazily wherever flexShrink is resolved, see resolveFlexShrink).
func applyWebDefaults(s *Style) {
	s.FlexDirection = FlexDirectionRow
	s.AlignContent = AlignStretch
}

// Equal byte-for-byte-equivalent comparison used by CopyStyle to decide
// whether a copy is a no-op. Two styles are equal if every field
// compares equal under Value/OptionalFloat semantics.
func (s Style) Equal(o Style) bool {
	if s.Direction != o.Direction || s.FlexDirection != o.FlexDirection ||
		s.Justify != o.Justify || s.AlignContent != o.AlignContent ||
		s.AlignItems != o.AlignItems || s.AlignSelf != o.AlignSelf ||
		s.PositionType != o.PositionType || s.FlexWrap != o.FlexWrap ||
		s.Overflow != o.Overflow || s.Display != o.Display {
		return false
	}
	if !s.Flex.Equal(o.Flex) || !s.FlexGrow.Equal(o.FlexGrow) ||
		!s.FlexShrink.Equal(o.FlexShrink) || !s.FlexBasis.Equal(o.FlexBasis) ||
		!s.AspectRatio.Equal(o.AspectRatio) {
		return false
	}
	for i := range s.Margin {
		if !s.Margin[i].Equal(o.Margin[i]) || !s.Position[i].Equal(o.Position[i]) ||
			!s.Padding[i].Equal(o.Padding[i]) || !s.Border[i].Equal(o.Border[i]) {
			return false
		}
	}
	for i := range s.Dimensions {
		if !s.Dimensions[i].Equal(o.Dimensions[i]) ||
			!s.MinDimensions[i].Equal(o.MinDimensions[i]) ||
			!s.MaxDimensions[i].Equal(o.MaxDimensions[i]) {
			return false
		}
	}
	return true
}

// resolveFlexGrow returns the effective flex-grow factor, falling back
// to the CSS `flex` shorthand and finally to 0.
func resolveFlexGrow(s *Style) float64 {
	if !s.FlexGrow.IsUndefined() {
		return s.FlexGrow.Value
	}
	if !s.Flex.IsUndefined() && s.Flex.Value > 0 {
		return s.Flex.Value
	}
	return 0
}

// resolveFlexShrink returns the effective flex-shrink factor, falling
// back to the `flex` shorthand, then to the config's web-defaults value
// (1 instead of 0).
func resolveFlexShrink(s *Style, webDefaults bool) float64 {
	if !s.FlexShrink.IsUndefined() {
		return s.FlexShrink.Value
	}
	if !s.Flex.IsUndefined() && s.Flex.Value < 0 {
		return -s.Flex.Value
	}
	if webDefaults {
		return 1
	}
	return 0
}

// resolveFlexBasis returns the effective flex-basis, falling back to
// the `flex` shorthand (basis 0 when flex>0) before auto.
func resolveFlexBasis(s *Style) v.Value {
	if !s.FlexBasis.IsUndefined() && !s.FlexBasis.IsAuto() {
		return s.FlexBasis
	}
	if !s.Flex.IsUndefined() && s.Flex.Value > 0 {
		return v.Point(0)
	}
	return v.Auto
}
