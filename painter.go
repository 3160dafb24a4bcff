package tuix

import (
	"bytes"
	"fmt"
	"strings"
)

// Box-drawing runes for the widget frame.
const (
	frameTopLeft     = "┏"
	frameTopRight    = "┓"
	frameBottomLeft  = "┗"
	frameBottomRight = "┛"
	frameVertical    = "┃"
	frameHorizontal  = "━"
)

// buttonSep is the gap between buttons in a row.
const buttonSep = "    "

// crlf terminates every frame line. Raw mode disables output post
// processing, so a bare LF would not return the carriage.
const crlf = "\r\n"

// Painter emits complete frames to the terminal: borders, the wrapped
// and centered label, and the button grid with the current selection
// highlighted.
type Painter struct {
	reg    *Registry
	styles *Styles
	geo    *Geometry
	term   Terminal
	sel    *Selection

	buf bytes.Buffer // reused between frames
}

// NewPainter wires a painter over its collaborators.
func NewPainter(reg *Registry, styles *Styles, geo *Geometry, term Terminal, sel *Selection) *Painter {
	return &Painter{reg: reg, styles: styles, geo: geo, term: term, sel: sel}
}

// DrawFrame clears the screen, resolves geometry against the live
// terminal size, and paints the registry's sole widget. Rendering is
// single-widget only: an empty registry and a multi-widget registry
// are both fatal.
func (p *Painter) DrawFrame() error {
	if err := p.term.Clear(); err != nil {
		return err
	}
	cols, rows := p.term.Size()
	p.geo.RecomputeAll(cols, rows)

	switch p.reg.Count() {
	case 0:
		return ErrEmptyRegistry
	case 1:
	default:
		return fmt.Errorf("%d widgets registered: %w", p.reg.Count(), ErrMultiWidgetUnsupported)
	}

	w := p.reg.first()
	if w.Kind() != KindChoice {
		return fmt.Errorf("%s widget %q: %w", w.Kind(), w.ID(), ErrUnsupportedKind)
	}

	p.buf.Reset()
	if err := p.paintChoice(w); err != nil {
		return err
	}
	_, err := p.term.Write(p.buf.Bytes())
	return err
}

// paintChoice assembles the full frame for a choice widget into p.buf.
func (p *Painter) paintChoice(w *Widget) error {
	l := &w.Layout

	for i := 0; i < l.MarginTop; i++ {
		p.buf.WriteString(crlf)
	}

	// Top border sized to the resolved width.
	p.buf.WriteString(spaces(l.MarginLeft))
	p.buf.WriteString(frameTopLeft)
	p.buf.WriteString(strings.Repeat(frameHorizontal, max(0, l.X-2)))
	p.buf.WriteString(frameTopRight)
	p.buf.WriteString(crlf)

	label := WrapAndCenter(w.Label, l.X-4)

	p.blankRow(l)
	for _, line := range label {
		p.buf.WriteString(spaces(l.MarginLeft))
		p.buf.WriteString(frameVertical + " ")
		p.buf.WriteString(line)
		p.buf.WriteString(" " + frameVertical)
		p.buf.WriteString(crlf)
	}
	p.blankRow(l)

	if err := p.paintButtons(w, l.X-4, l.Y-len(label)-5); err != nil {
		return err
	}

	p.blankRow(l)
	p.buf.WriteString(spaces(l.MarginLeft))
	p.buf.WriteString(frameBottomLeft)
	p.buf.WriteString(strings.Repeat(frameHorizontal, max(0, l.X-2)))
	p.buf.WriteString(frameBottomRight)
	p.buf.WriteString(crlf)
	return nil
}

// paintButtons renders the button grid bottom-anchored into the
// drawable area: when there are more rows than fit, the earliest rows
// are silently clipped.
func (p *Painter) paintButtons(w *Widget, maxWidth, maxHeight int) error {
	if len(w.Choices) == 0 {
		return fmt.Errorf("widget %q: %w", w.ID(), ErrEmptyChoices)
	}
	l := &w.Layout

	rendered := make([]string, 0, len(w.Choices))
	for _, row := range w.Choices {
		parts := make([]string, 0, len(row))
		for _, choice := range row {
			parts = append(parts, FitToWidth(choice.Name, maxWidth))
		}
		rendered = append(rendered, strings.Join(parts, buttonSep))
	}

	total := min(len(rendered), maxHeight)
	if total < 0 {
		total = 0
	}
	visible := rendered[len(rendered)-total:]

	// Filler above the rows; each visible row takes two lines (button
	// line plus trailing blank).
	for i := 0; i < maxHeight-len(visible)*2; i++ {
		p.blankRow(l)
	}

	for rowIdx, text := range visible {
		rowWidth := DisplayWidth(text)
		leftOffset := max((maxWidth-rowWidth)/2, 0)
		rightPad := l.X - 2 - leftOffset - rowWidth

		lineText := text
		if rowIdx == p.sel.Row {
			lineText = p.highlightRow(text)
		}

		p.buf.WriteString(spaces(l.MarginLeft))
		p.buf.WriteString(frameVertical)
		p.buf.WriteString(spaces(leftOffset))
		p.buf.WriteString(lineText)
		p.buf.WriteString(spaces(rightPad))
		p.buf.WriteString(frameVertical)
		p.buf.WriteString(crlf)
		p.blankRow(l)
	}
	return nil
}

// highlightRow re-renders a button row with the selected button shown
// in the snapshot's selection colors. The separators the selected
// button owns fold into the highlighted span: the leading gap joins
// the highlight for every button but the first, which keeps its
// trailing gap instead.
func (p *Painter) highlightRow(text string) string {
	snap := p.styles.Snapshot()
	esc := appendFg(appendBg(nil, snap.SelectedBackground), snap.SelectedText)

	var hl strings.Builder
	for idx, segment := range strings.Split(text, buttonSep) {
		if idx == p.sel.Col {
			if idx != 0 {
				hl.WriteString(buttonSep)
			}
			hl.Write(esc)
			hl.WriteString(strings.TrimSpace(segment))
			hl.WriteString(ansiReset)
			if idx == 0 {
				hl.WriteString(buttonSep)
			}
		} else {
			hl.WriteString(strings.TrimSpace(segment))
		}
	}
	return trimTrailingSpace(hl.String())
}

// blankRow writes one empty bordered line.
func (p *Painter) blankRow(l *Layout) {
	p.buf.WriteString(spaces(l.MarginLeft))
	p.buf.WriteString(frameVertical)
	p.buf.WriteString(spaces(l.X - 2))
	p.buf.WriteString(frameVertical)
	p.buf.WriteString(crlf)
}
