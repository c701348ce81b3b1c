package flex

// flexLine groups the flex items that share one pass through Steps 5-8:
// main-axis resolution, justification, and cross-axis alignment all
// operate per-line, with Step 8 reconciling lines against each other
// afterward.
type flexLine struct {
	items              []*flexItem
	sizeConsumed       float64
	totalFlexGrow      float64
	totalFlexShrink    float64
	totalScaledShrink  float64
	mainDim            float64
	crossDim           float64
	remainingFreeSpace float64
}

// collectFlexLines implements Step 4: greedily pack items onto the
// current line until the next one would overflow availableInnerMain, at
// which point (if wrapping) a new line starts. A non-wrapping node
// always produces exactly one line, however far it overflows.
func collectFlexLines(items []*flexItem, wrap bool, availableInnerMain float64) []*flexLine {
	line := &flexLine{}
	var lines []*flexLine
	for _, it := range items {
		overflows := wrap && len(line.items) > 0 && line.sizeConsumed+it.outer > availableInnerMain+sizeTolerance
		if overflows {
			lines = append(lines, line)
			line = &flexLine{}
		}
		line.items = append(line.items, it)
		line.sizeConsumed += it.outer
		line.totalFlexGrow += it.flexGrow
		line.totalFlexShrink += it.flexShrink
		line.totalScaledShrink += it.scaledShrink
	}
	lines = append(lines, line)
	return lines
}
