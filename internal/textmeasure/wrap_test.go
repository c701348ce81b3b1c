package textmeasure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

// testFont loads the embedded Go Regular face x/image ships for exactly
// this purpose: exercising font-dependent code without a testdata fixture.
func testFont(t *testing.T, sizePt float64) *Font {
	t.Helper()
	f, err := LoadFontFromBytes(goregular.TTF, sizePt)
	require.NoError(t, err)
	return f
}

func TestSplitWords_CollapsesSeparatorsAndPreservesNBSP(t *testing.T) {
	words := splitWords("hello   world\tfoo bar")
	require.Equal(t, []string{"hello", "world", "foo bar"}, words)
}

func TestSplitWords_Empty(t *testing.T) {
	require.Nil(t, splitWords(""))
	require.Nil(t, splitWords("   "))
}

func TestGraphemes_SplitsCombiningMarkAsOneCluster(t *testing.T) {
	s := "e\u0301x" // "e" + combining acute accent (U+0301), then "x"
	clusters, offsets := graphemes(s)
	require.Equal(t, []string{"e\u0301", "x"}, clusters)
	require.Equal(t, []int{0, len("e\u0301"), len(s)}, offsets)
}

func TestNormalizeNewlines(t *testing.T) {
	require.Equal(t, "a\nb\nc", normalizeNewlines("a\r\nb\rc"))
}

// wrapWidth's maxWidth<=0 fast path never touches the font, so it is
// safe to exercise without a real loaded TrueType face.
func TestWrapWidth_NoWrapSplitsOnExistingNewlinesOnly(t *testing.T) {
	lines := wrapWidth(nil, "one two\nthree", 0)
	require.Equal(t, []string{"one two", "three"}, lines)
}

func TestWrapParagraph_BreaksLongParagraphIntoMultipleLinesUnderRealFont(t *testing.T) {
	f := testFont(t, 18)
	text := "the quick brown fox jumps over the lazy dog"
	maxWidth := f.MeasureString(text) / 4 // wider than any single word, far short of the whole sentence

	lines := wrapParagraph(f, text, maxWidth)
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		require.NotEmpty(t, l)
		require.LessOrEqual(t, f.MeasureString(l), maxWidth+f.MeasureString(" "))
	}
}

func TestSplitLongWord_SplitsOverlongTokenByGraphemeUnderRealFont(t *testing.T) {
	f := testFont(t, 18)
	word := "supercalifragilisticexpialidocious"
	maxWidth := f.MeasureString(word) / 5

	parts := splitLongWord(f, word, maxWidth)
	require.Greater(t, len(parts), 1)

	var rejoined strings.Builder
	for _, p := range parts {
		rejoined.WriteString(p)
		require.LessOrEqual(t, f.MeasureString(p), maxWidth+0.5)
	}
	require.Equal(t, word, rejoined.String())
}

func TestWrapWidth_WrapsWordsAndPreservesExistingNewlines(t *testing.T) {
	f := testFont(t, 16)
	full := f.MeasureString("alpha beta gamma delta")
	maxWidth := full / 2 // comfortably fits "hi" alone, not the whole first line

	lines := wrapWidth(f, "alpha beta gamma delta\nhi", maxWidth)
	require.Greater(t, len(lines), 2, "the first paragraph must wrap across more than one line before the newline")
	require.Equal(t, "hi", lines[len(lines)-1])
}
