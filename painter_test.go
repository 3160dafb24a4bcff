package tuix

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// testRig wires a painter over a fixed-size writer terminal.
type testRig struct {
	reg    *Registry
	styles *Styles
	geo    *Geometry
	sel    *Selection
	out    *bytes.Buffer
	p      *Painter
}

func newRig(cols, rows int) *testRig {
	reg := NewRegistry()
	styles := NewStyles()
	geo := NewGeometry(reg)
	sel := &Selection{}
	out := &bytes.Buffer{}
	term := NewWriterTerminal(out, cols, rows)
	return &testRig{
		reg:    reg,
		styles: styles,
		geo:    geo,
		sel:    sel,
		out:    out,
		p:      NewPainter(reg, styles, geo, term, sel),
	}
}

// frameLines strips the clear sequence and splits the frame.
func (r *testRig) frameLines(t *testing.T) []string {
	t.Helper()
	s := r.out.String()
	prefix := seqClearScreen + seqCursorHome
	if !strings.HasPrefix(s, prefix) {
		t.Fatalf("frame does not start with clear sequence: %q", s[:min(len(s), 20)])
	}
	return strings.Split(strings.TrimSuffix(s[len(prefix):], crlf), crlf)
}

func (r *testRig) addChoice(t *testing.T, label string, choices [][]Choice) {
	t.Helper()
	if _, err := r.reg.Create(KindChoice, "choice"); err != nil {
		t.Fatal(err)
	}
	if err := r.reg.SetLabel("choice", label); err != nil {
		t.Fatal(err)
	}
	if err := r.reg.SetChoices("choice", choices); err != nil {
		t.Fatal(err)
	}
}

func TestDrawFrameErrors(t *testing.T) {
	t.Run("EmptyRegistry", func(t *testing.T) {
		r := newRig(40, 20)
		if err := r.p.DrawFrame(); !errors.Is(err, ErrEmptyRegistry) {
			t.Errorf("got %v, want ErrEmptyRegistry", err)
		}
	})

	t.Run("MultipleWidgets", func(t *testing.T) {
		r := newRig(40, 20)
		r.reg.Create(KindChoice, "a")
		r.reg.Create(KindChoice, "b")
		if err := r.p.DrawFrame(); !errors.Is(err, ErrMultiWidgetUnsupported) {
			t.Errorf("got %v, want ErrMultiWidgetUnsupported", err)
		}
	})

	t.Run("UnsupportedKind", func(t *testing.T) {
		r := newRig(40, 20)
		r.reg.Create(KindProgressBar, "bar")
		if err := r.p.DrawFrame(); !errors.Is(err, ErrUnsupportedKind) {
			t.Errorf("got %v, want ErrUnsupportedKind", err)
		}
	})

	t.Run("EmptyChoices", func(t *testing.T) {
		r := newRig(40, 20)
		r.reg.Create(KindChoice, "choice")
		if err := r.p.DrawFrame(); !errors.Is(err, ErrEmptyChoices) {
			t.Errorf("got %v, want ErrEmptyChoices", err)
		}
	})
}

func TestDrawFrameCenteredChoice(t *testing.T) {
	r := newRig(40, 20)
	r.addChoice(t, "Test", [][]Choice{{
		{Name: "Test", Action: "pass"},
		{Name: "Test", Action: "pass"},
	}})
	if err := r.geo.SetMarginMode("choice", MarginCentered, AxisTop, AxisLeft); err != nil {
		t.Fatal(err)
	}
	if err := r.p.DrawFrame(); err != nil {
		t.Fatalf("draw: %v", err)
	}

	lines := r.frameLines(t)

	// Geometry: 20x10 widget, margins (10, 5).
	margin := strings.Repeat(" ", 10)
	for i := 0; i < 5; i++ {
		if lines[i] != "" {
			t.Errorf("line %d should be top margin, got %q", i, lines[i])
		}
	}
	if want := margin + "┏" + strings.Repeat("━", 18) + "┓"; lines[5] != want {
		t.Errorf("top border:\n got %q\nwant %q", lines[5], want)
	}
	if want := margin + "┃ " + "      Test      " + " ┃"; lines[7] != want {
		t.Errorf("label line:\n got %q\nwant %q", lines[7], want)
	}
	if want := margin + "┗" + strings.Repeat("━", 18) + "┛"; lines[len(lines)-1] != want {
		t.Errorf("bottom border:\n got %q\nwant %q", lines[len(lines)-1], want)
	}

	// Button area: 4 rows tall, single button row bottom-anchored,
	// so two filler blanks precede it.
	blank := margin + "┃" + strings.Repeat(" ", 18) + "┃"
	if lines[9] != blank || lines[10] != blank {
		t.Errorf("expected filler blanks at 9-10, got %q / %q", lines[9], lines[10])
	}
	buttonLine := lines[11]
	if !strings.Contains(buttonLine, "Test") {
		t.Errorf("line 11 should hold the button row, got %q", buttonLine)
	}

	// First button selected: highlight colors from the classic preset,
	// trailing separator folded into the span.
	esc := "\x1b[48;2;255;255;255m\x1b[38;2;0;0;0mTest\x1b[0m    Test"
	if !strings.Contains(buttonLine, esc) {
		t.Errorf("selected button not highlighted:\n got %q\nwant substring %q", buttonLine, esc)
	}
}

func TestDrawFrameHighlight(t *testing.T) {
	t.Run("SecondButtonLeadingSeparator", func(t *testing.T) {
		r := newRig(40, 20)
		r.addChoice(t, "Test", [][]Choice{{
			{Name: "Yes", Action: "y"},
			{Name: "No", Action: "n"},
		}})
		r.sel.Col = 1
		if err := r.p.DrawFrame(); err != nil {
			t.Fatal(err)
		}
		// The selected buttons own the gap on their leading edge.
		want := "Yes    \x1b[48;2;255;255;255m\x1b[38;2;0;0;0mNo\x1b[0m"
		if !strings.Contains(r.out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	})

	t.Run("CustomSelectionColors", func(t *testing.T) {
		r := newRig(40, 20)
		r.addChoice(t, "Test", [][]Choice{{{Name: "Go", Action: "go"}}})
		if err := r.styles.SetOverride(KeySelectedBackground, RGB{10, 20, 30}); err != nil {
			t.Fatal(err)
		}
		if err := r.styles.SetOverride(KeySelectedText, RGB{1, 2, 3}); err != nil {
			t.Fatal(err)
		}
		if err := r.p.DrawFrame(); err != nil {
			t.Fatal(err)
		}
		want := "\x1b[48;2;10;20;30m\x1b[38;2;1;2;3mGo\x1b[0m"
		if !strings.Contains(r.out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	})
}

func TestDrawFrameBottomAnchoring(t *testing.T) {
	// Three button rows but room for only one: the last row wins.
	r := newRig(40, 14)
	r.addChoice(t, "T", [][]Choice{
		{{Name: "first", Action: "1"}},
		{{Name: "second", Action: "2"}},
		{{Name: "third", Action: "3"}},
	})
	if err := r.p.DrawFrame(); err != nil {
		t.Fatal(err)
	}
	out := r.out.String()
	// Widget height floor(0.5*14)=7, label 1 line, button area 7-1-5=1:
	// only the final row fits.
	if strings.Contains(out, "first") || strings.Contains(out, "second") {
		t.Errorf("clipped rows leaked into output:\n%q", out)
	}
	if !strings.Contains(out, "third") {
		t.Errorf("last row missing from output:\n%q", out)
	}
}
