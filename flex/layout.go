package flex

import v "github.com/corelayout/flexlayout/internal/core/value"

// MeasureMode mirrors the CSS intrinsic-sizing constraint modes a
// measure callback or recursive layout call may be invoked under.
type MeasureMode int8

const (
	MeasureModeUndefined MeasureMode = iota
	MeasureModeExactly
	MeasureModeAtMost
)

// Size is the result of a MeasureFunc call.
type Size struct {
	Width, Height float64
}

// cacheSlots is the maximum number of non-layout measurement entries
// retained per node.
const cacheSlots = 16

// CachedMeasurement records one prior (availW, availH, modeW, modeH) ->
// (computedW, computedH) measurement.
type CachedMeasurement struct {
	AvailableWidth, AvailableHeight float64
	WidthMode, HeightMode           MeasureMode
	ComputedWidth, ComputedHeight   float64
	valid                           bool
}

// Layout is the computed result written by the flex algorithm and read
// back by consumers after Calculate returns.
type Layout struct {
	Position [4]float64 // left, top, right, bottom; owner-relative
	Dimensions [2]float64 // width, height

	Margin  [6]float64
	Border  [6]float64
	Padding [6]float64

	Direction   Direction // never DirectionInherit once computed
	HadOverflow bool

	ComputedFlexBasis           v.OptionalFloat
	ComputedFlexBasisGeneration uint32

	MeasuredDimensions [2]float64

	cachedLayout          CachedMeasurement
	cachedMeasurements    [cacheSlots]CachedMeasurement
	nextCacheIndex        uint32

	lastOwnerDirection Direction
	hasLastOwnerDir    bool
	generationCount    uint32

	// computedAscent is filled during baseline alignment (Step 8); it is
	// unexported and not part of the public contract.
	computedAscent v.OptionalFloat
}

func newLayout() Layout {
	l := Layout{}
	l.ComputedFlexBasis = v.UndefinedFloat
	l.MeasuredDimensions = [2]float64{0, 0}
	return l
}

// Width/Height are convenience readers over Dimensions.
func (l *Layout) Width() float64  { return l.Dimensions[0] }
func (l *Layout) Height() float64 { return l.Dimensions[1] }

// Left/Top/Right/Bottom are convenience readers over Position.
func (l *Layout) Left() float64   { return l.Position[0] }
func (l *Layout) Top() float64    { return l.Position[1] }
func (l *Layout) Right() float64  { return l.Position[2] }
func (l *Layout) Bottom() float64 { return l.Position[3] }
