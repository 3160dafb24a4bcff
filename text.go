package tuix

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal cells the string
// occupies, honoring double-width and zero-width characters.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// WrapAndCenter wraps text to maxWidth and centers the block
// horizontally. Every returned line is padded to exactly maxWidth.
//
// Packing is greedy over whitespace/non-whitespace token runs and
// counts characters, not display cells. The centering pad is computed
// from the first produced line only and shared by every line, so
// multi-line blocks sit left of true per-line centering. Single and
// near-single line labels are the intended use.
func WrapAndCenter(text string, maxWidth int) []string {
	var tokens []string
	for _, part := range strings.Split(text, "\n") {
		if part != "" {
			tokens = append(tokens, splitRuns(part)...)
		}
		tokens = append(tokens, "\n")
	}

	var lines []string
	current, lineLen := "", 0
	for _, tok := range tokens {
		if tok == "\n" {
			lines = append(lines, trimTrailingSpace(current))
			current, lineLen = "", 0
			continue
		}
		tokLen := utf8.RuneCountInString(tok)
		if lineLen+tokLen > maxWidth {
			lines = append(lines, trimTrailingSpace(current))
			current, lineLen = tok, tokLen
		} else {
			current += tok
			lineLen += tokLen
		}
	}
	if strings.TrimSpace(current) != "" {
		lines = append(lines, trimTrailingSpace(current))
	}

	// Drop the trailing empty line produced by the final newline token.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	leftPad := 0
	if len(lines) > 0 {
		leftPad = (maxWidth - utf8.RuneCountInString(lines[0])) / 2
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		right := maxWidth - utf8.RuneCountInString(line) - leftPad
		out[i] = spaces(leftPad) + line + spaces(right)
	}
	return out
}

// FitToWidth compacts text whose display width exceeds maxWidth-4 by
// greedily chunking on display cells and rejoining with single spaces.
// A lossy compaction, not a wrap: original line breaks are not kept.
func FitToWidth(text string, maxWidth int) string {
	if DisplayWidth(text) <= maxWidth-4 {
		return text
	}
	var pieces []string
	chunk := ""
	for _, ch := range text {
		if DisplayWidth(chunk+string(ch)) >= maxWidth-4 {
			pieces = append(pieces, chunk)
			chunk = string(ch)
		} else {
			chunk += string(ch)
		}
	}
	if chunk != "" {
		pieces = append(pieces, chunk)
	}
	return strings.Join(pieces, " ")
}

// splitRuns tokenizes a string into alternating runs of whitespace and
// non-whitespace characters.
func splitRuns(s string) []string {
	var out []string
	start := 0
	inSpace := false
	for i, r := range s {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
			continue
		}
		if isSpace != inSpace {
			out = append(out, s[start:i])
			start = i
			inSpace = isSpace
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
