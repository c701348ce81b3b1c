package textmeasure

import (
	"strings"

	"github.com/rivo/uniseg"
)

// wrapWidth breaks text into lines that each fit within maxWidth under f,
// wrapping at word boundaries and falling back to grapheme-cluster
// splitting for any single word wider than maxWidth. maxWidth <= 0 means
// no wrapping: the text is split only on existing newlines.
func wrapWidth(f *Font, text string, maxWidth float64) []string {
	text = normalizeNewlines(text)
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wrapParagraph(f, para, maxWidth)...)
	}
	return out
}

func wrapParagraph(f *Font, p string, maxWidth float64) []string {
	words := splitWords(p)
	if len(words) == 0 {
		return []string{""}
	}

	cache := make(map[string]float64)
	measure := func(s string) float64 {
		if s == "" {
			return 0
		}
		if w, ok := cache[s]; ok {
			return w
		}
		w := f.MeasureString(s)
		cache[s] = w
		return w
	}

	var lines []string
	i := 0
	for i < len(words) {
		if measure(words[i]) > maxWidth {
			lines = append(lines, splitLongWord(f, words[i], maxWidth)...)
			i++
			continue
		}

		spaceW := measure(" ")
		rem := words[i:]
		prefix := make([]float64, len(rem)+1)
		for k := 1; k <= len(rem); k++ {
			prefix[k] = prefix[k-1] + measure(rem[k-1])
			if k > 1 {
				prefix[k] += spaceW
			}
		}

		lo, hi := 1, len(rem)
		best := 1
		for lo <= hi {
			mid := (lo + hi) >> 1
			if prefix[mid] <= maxWidth {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}

		lines = append(lines, strings.Join(rem[:best], " "))
		i += best
	}
	return lines
}

// splitLongWord splits a single overlong word by grapheme cluster so a
// long unbreakable token (a URL, a CJK run) still wraps instead of
// overflowing the box.
func splitLongWord(f *Font, word string, maxWidth float64) []string {
	clusters, offs := graphemes(word)
	var out []string
	start := 0
	for start < len(clusters) {
		if f.MeasureString(word[offs[start]:offs[start+1]]) > maxWidth {
			out = append(out, word[offs[start]:offs[start+1]])
			start++
			continue
		}
		lo, hi := start+1, len(clusters)
		best := start + 1
		for lo <= hi {
			mid := (lo + hi) >> 1
			if f.MeasureString(word[offs[start]:offs[mid]]) <= maxWidth {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		out = append(out, word[offs[start]:offs[best]])
		start = best
	}
	return out
}

// graphemes returns grapheme clusters and their byte offsets into s.
func graphemes(s string) (clusters []string, offsets []int) {
	g := uniseg.NewGraphemes(s)
	offsets = append(offsets, 0)
	for g.Next() {
		cl := g.Str()
		clusters = append(clusters, cl)
		offsets = append(offsets, offsets[len(offsets)-1]+len(cl))
	}
	return clusters, offsets
}

// splitWords splits on ASCII space/tab, collapsing separator runs and
// preserving NBSP (U+00A0) inside a token so it never breaks alone.
func splitWords(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}
