// Package textmeasure adapts a TrueType font into the flex package's
// MeasureFunc/BaselineFunc extension points, so a leaf Node can report
// intrinsic size and baseline from real glyph metrics instead of a
// synthetic stub.
package textmeasure

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const defaultDPI = 72

// Font wraps a TrueType font with the metrics needed for layout
// measurement: advance widths, line height, ascent/descent.
//
// A Font is typically measured hundreds of times in a row (one call per
// candidate wrap point of a paragraph), always at the same size and DPI,
// so it keeps its own single hinted face rather than sharing a cache
// keyed across unrelated fonts: face rebuilds only when size or DPI
// actually changes, and there is nothing to evict.
type Font struct {
	tt            *truetype.Font
	sizePt        float64
	dpi           float64
	letterPercent float64

	face     font.Face
	faceSize float64
	faceDPI  float64
}

// LoadFont loads a .ttf file from disk at the given point size.
// 1pt = 1/72 inch; at the default 72 DPI, 1pt = 1px.
func LoadFont(path string, sizePt float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, sizePt)
}

// LoadFontFromBytes parses a TrueType font from memory.
func LoadFontFromBytes(data []byte, sizePt float64) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	f := &Font{tt: ttf, dpi: defaultDPI}
	return f.SetFontSizePt(sizePt), nil
}

// MustLoadFont loads a .ttf font from disk and panics on error. Intended
// for static initialization at package level.
func MustLoadFont(path string, sizePt float64) *Font {
	f, err := LoadFont(path, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// SetDPI sets the font's DPI scaling. Defaults to 72 if <= 0.
func (f *Font) SetDPI(dpi float64) *Font {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	f.dpi = dpi
	return f
}

// SetFontSizePt sets the font size in points.
func (f *Font) SetFontSizePt(pt float64) *Font {
	if pt <= 0 {
		pt = 0.01
	}
	f.sizePt = pt
	return f
}

// SetLetterSpacingPercent sets tracking as a percentage of font size.
func (f *Font) SetLetterSpacingPercent(percent float64) *Font {
	f.letterPercent = percent
	return f
}

// Face returns a font.Face configured with the current size and DPI,
// cached so repeated measurement calls don't rebuild hinting tables.
// The cached face is rebuilt only when SetFontSizePt/SetDPI actually
// change the values it was built from.
func (f *Font) Face() font.Face {
	if f.face != nil && f.faceSize == f.sizePt && f.faceDPI == f.dpi {
		return f.face
	}
	if closer, ok := f.face.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	f.face = truetype.NewFace(f.tt, &truetype.Options{
		Size:    f.sizePt,
		DPI:     f.dpi,
		Hinting: font.HintingNone,
	})
	f.faceSize, f.faceDPI = f.sizePt, f.dpi
	return f.face
}

// TrackingPx returns the tracking offset, in pixels, applied between glyphs.
func (f *Font) TrackingPx() float64 {
	return (f.letterPercent / 100.0) * f.sizePt * f.dpi / 72.0
}

// AscentPx returns the distance from baseline to top, in pixels.
func (f *Font) AscentPx() float64 {
	return float64(f.Face().Metrics().Ascent >> 6)
}

// DescentPx returns the distance from baseline to bottom, in pixels.
func (f *Font) DescentPx() float64 {
	return float64(f.Face().Metrics().Descent >> 6)
}

// LineHeightPx returns the total line height (ascent + descent + leading).
func (f *Font) LineHeightPx() float64 {
	return float64(f.Face().Metrics().Height >> 6)
}

// MeasureString measures the pixel width of a single line of text. Glyph
// advances plus tracking between characters.
func (f *Font) MeasureString(s string) float64 {
	if s == "" {
		return 0
	}
	face := f.Face()
	adv := font.MeasureString(face, s)
	w := float64(adv >> 6)
	runes := []rune(s)
	if len(runes) > 1 {
		w += float64(len(runes)-1) * f.TrackingPx()
	}
	return w
}
