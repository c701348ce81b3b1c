package flexlayout

import (
	"github.com/corelayout/flexlayout/flex"
	v "github.com/corelayout/flexlayout/internal/core/value"
)

// Type aliases for public API.
//
// These aliases re-export types from the flex and value packages to
// present a unified and concise public interface under the flexlayout
// namespace, so callers can depend on this root package alone.
type (
	Node   = flex.Node
	Config = flex.Config
	Style  = flex.Style
	Layout = flex.Layout
	Size   = flex.Size

	Value         = v.Value
	OptionalFloat = v.OptionalFloat

	Direction     = flex.Direction
	FlexDirection = flex.FlexDirection
	Justify       = flex.Justify
	Align         = flex.Align
	FlexWrap      = flex.FlexWrap
	PositionType  = flex.PositionType
	Overflow      = flex.Overflow
	Display       = flex.Display
	MeasureMode   = flex.MeasureMode

	MeasureFunc  = flex.MeasureFunc
	BaselineFunc = flex.BaselineFunc
	DirtiedFunc  = flex.DirtiedFunc
	PrintFunc    = flex.PrintFunc
)

// Direction constants.
const (
	DirectionInherit = flex.DirectionInherit
	DirectionLTR     = flex.DirectionLTR
	DirectionRTL     = flex.DirectionRTL
)

// FlexDirection constants.
const (
	FlexDirectionColumn        = flex.FlexDirectionColumn
	FlexDirectionColumnReverse = flex.FlexDirectionColumnReverse
	FlexDirectionRow           = flex.FlexDirectionRow
	FlexDirectionRowReverse    = flex.FlexDirectionRowReverse
)

// Constructors for creating new layout trees.
//
// A Node is the layout tree's unit; Calculate resolves a tree's geometry
// given the available space.
var (
	// NewNode creates a new layout node under the given config (nil uses
	// package defaults).
	NewNode = flex.NewNode

	// NewConfig creates a new Config with default settings.
	NewConfig = flex.NewConfig

	// Calculate resolves the layout of root and its subtree against the
	// given available space and owner direction.
	Calculate = flex.Calculate

	// CalculateLTR is Calculate with DirectionLTR as the owner direction.
	CalculateLTR = flex.CalculateLTR
)

// Value constructors.
var (
	// Defined creates a defined OptionalFloat.
	Defined = v.Defined

	// Point creates a Value in point units.
	Point = v.Point

	// Percent creates a Value in percent units.
	Percent = v.Percent
)
