package textmeasure

import (
	"math"

	"github.com/corelayout/flexlayout/flex"
)

// Measurer adapts a Font plus a run of text into the flex package's
// intrinsic-size measurement callback. One Measurer is meant to be
// attached to exactly one leaf Node via MeasureFunc.
type Measurer struct {
	Font     *Font
	Text     string
	MaxLines int // 0 means unbounded
}

// NewMeasurer constructs a Measurer for a single text leaf.
func NewMeasurer(f *Font, text string) *Measurer {
	return &Measurer{Font: f, Text: text}
}

// MeasureFunc returns a flex.MeasureFunc bound to this Measurer's font
// and text. widthMode/heightMode follow the same AtMost/Exactly/
// Undefined contract as any other leaf: AtMost wraps the text to the
// given width and reports the wrapped block's size; Exactly reports the
// constrained size directly, still honoring line count for height.
func (m *Measurer) MeasureFunc() flex.MeasureFunc {
	return func(_ *flex.Node, width float64, widthMode flex.MeasureMode, height float64, heightMode flex.MeasureMode) flex.Size {
		return m.measure(width, widthMode, height, heightMode)
	}
}

// BaselineFunc returns a flex.BaselineFunc reporting the first line's
// ascent as the node's baseline, matching CSS inline baseline alignment
// for single- and multi-line text.
func (m *Measurer) BaselineFunc() flex.BaselineFunc {
	return func(_ *flex.Node, _, _ float64) float64 {
		return m.Font.AscentPx()
	}
}

func (m *Measurer) measure(width float64, widthMode flex.MeasureMode, height float64, heightMode flex.MeasureMode) flex.Size {
	maxWidth := 0.0
	if widthMode == flex.MeasureModeAtMost || widthMode == flex.MeasureModeExactly {
		maxWidth = width
	}

	lines := wrapWidth(m.Font, m.Text, maxWidth)
	if m.MaxLines > 0 && len(lines) > m.MaxLines {
		lines = lines[:m.MaxLines]
	}

	var contentWidth float64
	for _, l := range lines {
		if w := m.Font.MeasureString(l); w > contentWidth {
			contentWidth = w
		}
	}
	contentHeight := float64(len(lines)) * m.Font.LineHeightPx()
	if len(lines) == 0 {
		contentHeight = 0
	}

	size := flex.Size{Width: contentWidth, Height: contentHeight}

	switch widthMode {
	case flex.MeasureModeExactly:
		size.Width = width
	case flex.MeasureModeAtMost:
		size.Width = math.Min(size.Width, width)
	}
	switch heightMode {
	case flex.MeasureModeExactly:
		size.Height = height
	case flex.MeasureModeAtMost:
		size.Height = math.Min(size.Height, height)
	}
	return size
}
