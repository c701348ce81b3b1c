package flex

import (
	"math"

	"github.com/corelayout/flexlayout/internal/core/geom"
)

// roundValue snaps v to the nearest 1/s grid line. It multiplies by the
// scale factor, snaps fractional parts within sizeTolerance of 0 or 1 to
// the nearest integer, otherwise applies forceCeil/forceFloor or rounds
// half-up, then divides back down.
//
// The scaled fixed-point math reuses geom.Fix/geom.Unfix, the same
// 1/64-pixel representation used for text metrics, so both subsystems
// share one rounding domain.
func roundValue(v, scaleFactor float64, forceCeil, forceFloor bool) float64 {
	if math.IsNaN(v) {
		return v
	}
	scaled := geom.Unfix(geom.Fix(v * scaleFactor))
	fraction := scaled - math.Floor(scaled)

	var rounded float64
	switch {
	case fraction < sizeTolerance:
		rounded = math.Floor(scaled)
	case 1-fraction < sizeTolerance:
		rounded = math.Ceil(scaled)
	case forceCeil:
		rounded = math.Ceil(scaled)
	case forceFloor:
		rounded = math.Floor(scaled)
	case fraction >= 0.5:
		rounded = math.Ceil(scaled)
	default:
		rounded = math.Floor(scaled)
	}
	return rounded / scaleFactor
}

// roundToPixelGrid is a pre-order recursion over the already-computed
// layout tree, snapping absolute positions and sizes to the pixel grid
// defined by scaleFactor: each node is rounded before its children, which
// receive its rounded absolute origin. Called once at the root after
// Calculate.
func roundToPixelGrid(n *Node, scaleFactor, absoluteLeft, absoluteTop float64) {
	if scaleFactor == 0 {
		return
	}

	nodeLeft := n.layout.Position[0]
	nodeTop := n.layout.Position[1]

	textRounding := n.nodeType == NodeTypeText

	// Adjust by the parent's already-rounded absolute origin so each
	// node rounds in absolute space, not parent-relative space.
	absLeft := absoluteLeft + nodeLeft
	absTop := absoluteTop + nodeTop

	hasFractionalWidth := math.Mod(n.layout.Dimensions[0]*scaleFactor, 1) != 0
	hasFractionalHeight := math.Mod(n.layout.Dimensions[1]*scaleFactor, 1) != 0

	roundedLeft := roundValue(absLeft, scaleFactor, false, textRounding)
	roundedTop := roundValue(absTop, scaleFactor, false, textRounding)

	roundedRight := roundValue(absLeft+n.layout.Dimensions[0], scaleFactor, textRounding && hasFractionalWidth, false)
	roundedBottom := roundValue(absTop+n.layout.Dimensions[1], scaleFactor, textRounding && hasFractionalHeight, false)

	n.layout.Position[0] = roundedLeft - roundValue(absoluteLeft, scaleFactor, false, false)
	n.layout.Position[1] = roundedTop - roundValue(absoluteTop, scaleFactor, false, false)
	n.layout.Dimensions[0] = roundedRight - roundedLeft
	n.layout.Dimensions[1] = roundedBottom - roundedTop

	for _, c := range n.children {
		if c.style.Display == DisplayNone {
			continue
		}
		roundToPixelGrid(c, scaleFactor, roundedLeft, roundedTop)
	}
}
