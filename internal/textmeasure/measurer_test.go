package textmeasure_test

import (
	"testing"

	"github.com/corelayout/flexlayout/flex"
	"github.com/corelayout/flexlayout/internal/textmeasure"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewMeasurer_DefaultsMaxLinesUnbounded(t *testing.T) {
	m := textmeasure.NewMeasurer(nil, "hello world")
	require.Equal(t, 0, m.MaxLines)
	require.Equal(t, "hello world", m.Text)
}

func TestMeasurer_MeasureWrapsTextUnderRealFont(t *testing.T) {
	f, err := textmeasure.LoadFontFromBytes(goregular.TTF, 16)
	require.NoError(t, err)

	text := "one two three four five six seven eight"
	m := textmeasure.NewMeasurer(f, text)
	measure := m.MeasureFunc()

	full := f.MeasureString(text)
	size := measure(nil, full/3, flex.MeasureModeAtMost, 1000, flex.MeasureModeAtMost)

	require.LessOrEqual(t, size.Width, full/3+0.5)
	require.Greater(t, size.Height, f.LineHeightPx(), "a width this narrow must wrap to more than one line")

	lineCount := size.Height / f.LineHeightPx()
	require.InDelta(t, lineCount, float64(int(lineCount+0.5)), 1e-6, "height must be a whole multiple of line height")
}

func TestMeasurer_MeasureTruncatesToMaxLines(t *testing.T) {
	f, err := textmeasure.LoadFontFromBytes(goregular.TTF, 16)
	require.NoError(t, err)

	text := "one two three four five six seven eight"
	m := textmeasure.NewMeasurer(f, text)
	m.MaxLines = 1

	full := f.MeasureString(text)
	size := m.MeasureFunc()(nil, full/3, flex.MeasureModeAtMost, 1000, flex.MeasureModeAtMost)

	require.InDelta(t, f.LineHeightPx(), size.Height, 0.01)
}

func TestMeasurer_BaselineFuncReturnsFontAscent(t *testing.T) {
	f, err := textmeasure.LoadFontFromBytes(goregular.TTF, 16)
	require.NoError(t, err)

	m := textmeasure.NewMeasurer(f, "hello")
	require.InDelta(t, f.AscentPx(), m.BaselineFunc()(nil, 0, 0), 0.01)
}
