package tuix

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapAndCenter(t *testing.T) {
	t.Run("SingleLineCentered", func(t *testing.T) {
		lines := WrapAndCenter("Test", 16)
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		if lines[0] != "      Test      " {
			t.Errorf("got %q", lines[0])
		}
	})

	t.Run("EveryLineIsExactWidth", func(t *testing.T) {
		inputs := []struct {
			text  string
			width int
		}{
			{"Test", 16},
			{"alpha beta gamma", 10},
			{"one\ntwo\nthree", 12},
			{"", 8},
			{"a b c d e f g h", 5},
		}
		for _, in := range inputs {
			for _, line := range WrapAndCenter(in.text, in.width) {
				if got := utf8.RuneCountInString(line); got != in.width {
					t.Errorf("WrapAndCenter(%q, %d): line %q has width %d", in.text, in.width, line, got)
				}
			}
		}
	})

	t.Run("GreedyWrapKeepsLeadingSpaceOnContinuation", func(t *testing.T) {
		lines := WrapAndCenter("alpha beta gamma", 10)
		want := []string{"alpha beta", " gamma    "}
		if len(lines) != len(want) {
			t.Fatalf("expected %d lines, got %v", len(want), lines)
		}
		for i := range want {
			if lines[i] != want[i] {
				t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
			}
		}
	})

	t.Run("WordContentPreserved", func(t *testing.T) {
		text := "the quick brown fox jumps over the lazy dog"
		lines := WrapAndCenter(text, 12)
		joined := strings.Join(lines, " ")
		for _, word := range strings.Fields(text) {
			if !strings.Contains(joined, word) {
				t.Errorf("word %q missing from wrapped output %v", word, lines)
			}
		}
		// Order preserved too.
		idx := 0
		for _, word := range strings.Fields(text) {
			at := strings.Index(joined[idx:], word)
			if at < 0 {
				t.Fatalf("word %q out of order in %q", word, joined)
			}
			idx += at + len(word)
		}
	})

	t.Run("OnlyFirstLinePadIsShared", func(t *testing.T) {
		// Second line is shorter but gets the first line's left pad,
		// appearing left of true centering.
		lines := WrapAndCenter("aaaa\nbb", 10)
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %v", lines)
		}
		firstPad := len(lines[0]) - len(strings.TrimLeft(lines[0], " "))
		secondPad := len(lines[1]) - len(strings.TrimLeft(lines[1], " "))
		if firstPad != secondPad {
			t.Errorf("pads differ: first %d, second %d", firstPad, secondPad)
		}
		if firstPad != 3 { // (10-4)/2
			t.Errorf("first pad = %d, want 3", firstPad)
		}
	})

	t.Run("ExplicitNewlines", func(t *testing.T) {
		lines := WrapAndCenter("one\ntwo", 8)
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %v", lines)
		}
		if strings.TrimSpace(lines[0]) != "one" || strings.TrimSpace(lines[1]) != "two" {
			t.Errorf("got %v", lines)
		}
	})

	t.Run("CenteringPadsSum", func(t *testing.T) {
		lines := WrapAndCenter("abcde", 12)
		left := len(lines[0]) - len(strings.TrimLeft(lines[0], " "))
		right := len(lines[0]) - len(strings.TrimRight(lines[0], " "))
		if left != (12-5)/2 {
			t.Errorf("left pad = %d, want %d", left, (12-5)/2)
		}
		if left+right+5 != 12 {
			t.Errorf("pads %d+%d don't fill width 12", left, right)
		}
	})
}

func TestFitToWidth(t *testing.T) {
	t.Run("FitsUntouched", func(t *testing.T) {
		if got := FitToWidth("Test", 16); got != "Test" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("ChunksOverlongText", func(t *testing.T) {
		if got := FitToWidth("abcdefghij", 10); got != "abcde fghij" {
			t.Errorf("got %q, want %q", got, "abcde fghij")
		}
	})

	t.Run("ChunksByDisplayWidthNotRuneCount", func(t *testing.T) {
		// Four double-width runes are 8 cells wide.
		got := FitToWidth("日本語字", 8) // limit 8-4 = 4 cells
		if !strings.Contains(got, " ") {
			t.Errorf("expected chunking for double-width text, got %q", got)
		}
	})
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
		{"a日b", 4},
	}
	for _, tt := range tests {
		if got := DisplayWidth(tt.in); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
