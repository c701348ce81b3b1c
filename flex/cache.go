package flex

import "math"

// sizeTolerance is the epsilon used for cache compatibility comparisons,
// distinct from value.epsilon only in name.
const sizeTolerance = 1e-4

func floatsEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) < sizeTolerance
}

// measureModeSizeIsExact reports whether mode/size pins a definite size.
func measureModeSizeIsExact(mode MeasureMode) bool { return mode == MeasureModeExactly }

// cacheAxisCompatible implements the four compatibility predicates for
// reusing a prior measurement on a single axis (width or height).
func cacheAxisCompatible(oldMode MeasureMode, oldSize, oldComputed float64, newMode MeasureMode, newSize float64) bool {
	// Spec match.
	if oldMode == newMode && floatsEqual(oldSize, newSize) {
		return true
	}
	// Exact reuse: mode is exactly and the prior computed size equals the
	// new available size.
	if newMode == MeasureModeExactly && oldMode == MeasureModeExactly {
		return floatsEqual(oldComputed, newSize)
	}
	if newMode == MeasureModeAtMost {
		// Undefined -> AtMost still fits.
		if oldMode == MeasureModeUndefined {
			return newSize >= oldComputed || floatsEqual(newSize, oldComputed)
		}
		// AtMost -> AtMost tighter, but still >= old computed.
		if oldMode == MeasureModeAtMost {
			if oldSize > newSize && (newSize >= oldComputed || floatsEqual(newSize, oldComputed)) {
				return true
			}
		}
	}
	return false
}

// cacheHit looks up a compatible CachedMeasurement for the requested
// (availableWidth, availableHeight, widthMode, heightMode). It returns
// the measurement and true on a hit.
func cacheHit(c *CachedMeasurement, availableWidth, availableHeight float64, widthMode, heightMode MeasureMode) (CachedMeasurement, bool) {
	if !c.valid {
		return CachedMeasurement{}, false
	}
	widthOK := cacheAxisCompatible(c.WidthMode, c.AvailableWidth, c.ComputedWidth, widthMode, availableWidth)
	heightOK := cacheAxisCompatible(c.HeightMode, c.AvailableHeight, c.ComputedHeight, heightMode, availableHeight)
	if widthOK && heightOK {
		return *c, true
	}
	return CachedMeasurement{}, false
}

// findCachedMeasurement scans the node's measurement ring (not the
// distinguished layout slot) for a compatible entry.
func (n *Node) findCachedMeasurement(availableWidth, availableHeight float64, widthMode, heightMode MeasureMode) (CachedMeasurement, bool) {
	for i := range n.layout.cachedMeasurements {
		if m, ok := cacheHit(&n.layout.cachedMeasurements[i], availableWidth, availableHeight, widthMode, heightMode); ok {
			return m, true
		}
	}
	return CachedMeasurement{}, false
}

// storeCachedMeasurement inserts into the 16-slot ring, wrapping on
// overflow (invariant 5: unordered set, insertion wraps).
func (n *Node) storeCachedMeasurement(m CachedMeasurement) {
	m.valid = true
	idx := n.layout.nextCacheIndex % cacheSlots
	n.layout.cachedMeasurements[idx] = m
	n.layout.nextCacheIndex = (n.layout.nextCacheIndex + 1) % cacheSlots
}

// storeLayoutMeasurement overwrites the single distinguished cache slot
// reserved for performLayout=true calls.
func (n *Node) storeLayoutMeasurement(m CachedMeasurement) {
	m.valid = true
	n.layout.cachedLayout = m
}

// clearCache invalidates every cached entry on the node (but not its
// final computed Layout fields, which are overwritten by the next
// layoutImpl call regardless).
func (n *Node) clearCache() {
	n.layout.cachedLayout = CachedMeasurement{}
	for i := range n.layout.cachedMeasurements {
		n.layout.cachedMeasurements[i] = CachedMeasurement{}
	}
	n.layout.nextCacheIndex = 0
}
