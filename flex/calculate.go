package flex

import (
	"math"
	"sync/atomic"

	v "github.com/corelayout/flexlayout/internal/core/value"
)

// globalGeneration backs the default (non-per-tree) cache invalidation
// counter, shared across every Config that doesn't opt into
// Config.PerTreeGeneration.
var globalGeneration uint32

func nextGeneration(root *Node) uint32 {
	if root.config != nil && root.config.PerTreeGeneration {
		root.treeGeneration++
		return root.treeGeneration
	}
	return atomic.AddUint32(&globalGeneration, 1)
}

// resolveDirectionForNode applies invariant 7: a tree root resolves an
// inherited direction against LTR, never against the caller-supplied
// ownerDirection, so a root never lays out as if it had an owner.
func resolveDirectionForNode(n *Node, ownerDirection Direction) Direction {
	if n.owner == nil {
		return resolveDirection(&n.style, DirectionLTR)
	}
	return resolveDirection(&n.style, ownerDirection)
}

// rootAvailable resolves one of the root's available-space/mode pairs
// from (in order): the supplied avail, the root's own definite style
// dimension (plus margin), its style max dimension (atMost), or
// undefined.
func rootAvailable(root *Node, dim v.Dim, avail float64) (float64, MeasureMode) {
	if !math.IsNaN(avail) {
		return avail, MeasureModeExactly
	}
	if childHasDefiniteSize(&root.style, dim) {
		if r := root.style.Dimensions[dim].Resolve(v.UndefinedFloat); !r.IsUndefined() {
			return r.Value + rootMarginForDim(root, dim), MeasureModeExactly
		}
	}
	if maxV := root.style.MaxDimensions[dim]; !maxV.IsUndefined() {
		if r := maxV.Resolve(v.UndefinedFloat); !r.IsUndefined() {
			return r.Value, MeasureModeAtMost
		}
	}
	return math.NaN(), MeasureModeUndefined
}

func rootMarginForDim(root *Node, dim v.Dim) float64 {
	dir := resolveDirection(&root.style, DirectionLTR)
	fd := FlexDirectionRow
	if dim == v.DimHeight {
		fd = FlexDirectionColumn
	}
	return leadingValue(root.style.Margin, fd, dir, v.Point(0)).ResolveMargin(v.UndefinedFloat).OrElse(0) +
		trailingValue(root.style.Margin, fd, dir, v.Point(0)).ResolveMargin(v.UndefinedFloat).OrElse(0)
}

// Calculate is the engine's entry point: it resolves root-level
// available width/height/modes, recurses the flex algorithm over the
// whole tree, then rounds every node's box to the pixel grid defined by
// root.Config().PointScaleFactor (a factor of 0 disables rounding).
func Calculate(root *Node, availableWidth, availableHeight float64, ownerDirection Direction) {
	generation := nextGeneration(root)
	root.config.fireEvent(root, EventLayoutStart)

	width, widthMode := rootAvailable(root, v.DimWidth, availableWidth)
	height, heightMode := rootAvailable(root, v.DimHeight, availableHeight)

	root.layoutInternal(width, height, ownerDirection, widthMode, heightMode, width, height, true, generation)

	root.layout.Position = [4]float64{0, 0, 0, 0}

	if root.config.PointScaleFactor != 0 {
		roundToPixelGrid(root, root.config.PointScaleFactor, 0, 0)
	}

	root.config.fireEvent(root, EventLayoutEnd)
}

// CalculateLTR is Calculate with DirectionLTR as the owner direction,
// the common case for a standalone root.
func CalculateLTR(root *Node, availableWidth, availableHeight float64) {
	Calculate(root, availableWidth, availableHeight, DirectionLTR)
}

// layoutInternal is the cache gateway around layoutImpl: it decides
// whether a compatible prior measurement already answers this call
// before falling back to the full recursive algorithm.
func (n *Node) layoutInternal(availableWidth, availableHeight float64, ownerDirection Direction,
	widthMeasureMode, heightMeasureMode MeasureMode, parentWidth, parentHeight float64,
	performLayout bool, generation uint32) {

	layout := &n.layout
	direction := resolveDirectionForNode(n, ownerDirection)

	if !layout.hasLastOwnerDir || layout.lastOwnerDirection != direction || layout.generationCount != generation {
		n.clearCache()
	}
	layout.hasLastOwnerDir = true
	layout.lastOwnerDirection = direction
	layout.generationCount = generation

	var cached CachedMeasurement
	var hit bool
	switch {
	case n.measure != nil && performLayout:
		cached, hit = cacheHit(&layout.cachedLayout, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode)
		if !hit {
			cached, hit = n.findCachedMeasurement(availableWidth, availableHeight, widthMeasureMode, heightMeasureMode)
		}
	case n.measure != nil:
		cached, hit = n.findCachedMeasurement(availableWidth, availableHeight, widthMeasureMode, heightMeasureMode)
	case performLayout:
		cached, hit = cacheHit(&layout.cachedLayout, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode)
	default:
		cached, hit = n.findCachedMeasurement(availableWidth, availableHeight, widthMeasureMode, heightMeasureMode)
	}

	if hit {
		layout.MeasuredDimensions[0] = cached.ComputedWidth
		layout.MeasuredDimensions[1] = cached.ComputedHeight
	} else {
		n.layoutImpl(availableWidth, availableHeight, direction, widthMeasureMode, heightMeasureMode,
			parentWidth, parentHeight, performLayout, generation)
		m := CachedMeasurement{
			AvailableWidth: availableWidth, AvailableHeight: availableHeight,
			WidthMode: widthMeasureMode, HeightMode: heightMeasureMode,
			ComputedWidth: layout.MeasuredDimensions[0], ComputedHeight: layout.MeasuredDimensions[1],
		}
		if performLayout {
			n.storeLayoutMeasurement(m)
		} else {
			n.storeCachedMeasurement(m)
		}
	}

	if performLayout {
		layout.Dimensions[0] = layout.MeasuredDimensions[0]
		layout.Dimensions[1] = layout.MeasuredDimensions[1]
		layout.Direction = direction
		n.hasNewLayout = true
		n.isDirty = false
	}
}
