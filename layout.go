package tuix

import "fmt"

// MarginMode selects how a widget's margin on one axis is produced:
// from an explicit fraction, or derived to center the widget.
type MarginMode uint8

const (
	MarginCustom MarginMode = iota
	MarginCentered
)

func (m MarginMode) String() string {
	switch m {
	case MarginCustom:
		return "custom"
	case MarginCentered:
		return "centered"
	}
	return fmt.Sprintf("MarginMode(%d)", uint8(m))
}

func (m MarginMode) valid() bool {
	return m == MarginCustom || m == MarginCentered
}

// Axis names a margin axis.
type Axis uint8

const (
	AxisTop Axis = iota
	AxisLeft
)

func (a Axis) String() string {
	switch a {
	case AxisTop:
		return "margin_top"
	case AxisLeft:
		return "margin_left"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

func (a Axis) valid() bool {
	return a == AxisTop || a == AxisLeft
}

// Point is a terminal cell coordinate.
type Point struct {
	X, Y int
}

// Corners are the resolved rectangle corners of a widget.
type Corners struct {
	TopLeft     Point
	BottomRight Point
}

// Layout holds a widget's declared size and margin intents, plus the
// absolute geometry derived from them. The fractional modifiers are
// the source of truth; everything else is recomputed each frame.
type Layout struct {
	WidthMod  float64 // fraction of terminal columns, 0.0-1.0
	HeightMod float64 // fraction of terminal rows, 0.0-1.0
	TopMod    float64 // top margin fraction, used in custom mode
	LeftMod   float64 // left margin fraction, used in custom mode
	TopMode   MarginMode
	LeftMode  MarginMode

	// Derived per frame by Geometry.RecomputeAll.
	X          int // width in cells
	Y          int // height in cells
	MarginTop  int
	MarginLeft int
	Corners    Corners
}

// DefaultLayout returns the layout a freshly created widget starts
// with: half the terminal in both dimensions, flush to the top left.
func DefaultLayout() Layout {
	return Layout{
		WidthMod:  0.5,
		HeightMod: 0.5,
		TopMode:   MarginCustom,
		LeftMode:  MarginCustom,
	}
}

// DimensionUpdate is a partial update for SetDimensions. Nil fields
// are left untouched.
type DimensionUpdate struct {
	Width      *float64
	Height     *float64
	MarginTop  *float64
	MarginLeft *float64
}

// Frac is a convenience for building DimensionUpdate fields.
func Frac(v float64) *float64 { return &v }

// Geometry converts fractional size and margin intents into absolute
// terminal coordinates against the live terminal size.
type Geometry struct {
	reg *Registry
}

// NewGeometry creates a geometry resolver over the given registry.
func NewGeometry(reg *Registry) *Geometry {
	return &Geometry{reg: reg}
}

// SetDimensions applies a partial dimension update to a widget. Margin
// fields are rejected while their axis is in centered mode; all values
// must lie in [0.0, 1.0].
func (g *Geometry) SetDimensions(id string, u DimensionUpdate) error {
	w, err := g.reg.Get(id)
	if err != nil {
		return err
	}
	if u.Width == nil && u.Height == nil && u.MarginTop == nil && u.MarginLeft == nil {
		return fmt.Errorf("set dimensions on %q: %w", id, ErrNoOpUpdate)
	}

	// Validate everything before mutating anything.
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"width_modifier", u.Width},
		{"height_modifier", u.Height},
		{"margin_top", u.MarginTop},
		{"margin_left", u.MarginLeft},
	} {
		if f.value == nil {
			continue
		}
		if *f.value < 0.0 || *f.value > 1.0 {
			return fmt.Errorf("%s %v: %w", f.name, *f.value, ErrOutOfRange)
		}
	}
	if u.MarginTop != nil && w.Layout.TopMode == MarginCentered {
		return fmt.Errorf("margin_top on %q: %w", id, ErrInvalidModeForMargin)
	}
	if u.MarginLeft != nil && w.Layout.LeftMode == MarginCentered {
		return fmt.Errorf("margin_left on %q: %w", id, ErrInvalidModeForMargin)
	}

	if u.Width != nil {
		w.Layout.WidthMod = *u.Width
	}
	if u.Height != nil {
		w.Layout.HeightMod = *u.Height
	}
	if u.MarginTop != nil {
		w.Layout.TopMod = *u.MarginTop
	}
	if u.MarginLeft != nil {
		w.Layout.LeftMod = *u.MarginLeft
	}
	return nil
}

// SetMarginMode switches the margin mode on one or more axes.
func (g *Geometry) SetMarginMode(id string, mode MarginMode, axes ...Axis) error {
	w, err := g.reg.Get(id)
	if err != nil {
		return err
	}
	for _, a := range axes {
		if !a.valid() {
			return fmt.Errorf("axis %v: %w", a, ErrInvalidAxis)
		}
	}
	if !mode.valid() {
		return fmt.Errorf("mode %v: %w", mode, ErrInvalidMode)
	}
	for _, a := range axes {
		switch a {
		case AxisTop:
			w.Layout.TopMode = mode
		case AxisLeft:
			w.Layout.LeftMode = mode
		}
	}
	return nil
}

// RecomputeAll resolves every widget's absolute geometry against the
// given terminal size. Called once per frame; the derived fields are a
// cache, never a source of truth.
//
// Sizes truncate: x = floor(widthMod*cols), y = floor(heightMod*rows).
// Custom margins truncate the same way. Centered margins truncate the
// size term first, then halve: (dim - floor(mod*dim)) / 2.
func (g *Geometry) RecomputeAll(cols, rows int) {
	g.reg.Each(func(id string, w *Widget) {
		l := &w.Layout
		l.X = int(l.WidthMod * float64(cols))
		l.Y = int(l.HeightMod * float64(rows))

		if l.TopMode == MarginCustom {
			l.MarginTop = int(l.TopMod * float64(rows))
		} else {
			l.MarginTop = (rows - l.Y) / 2
		}
		if l.LeftMode == MarginCustom {
			l.MarginLeft = int(l.LeftMod * float64(cols))
		} else {
			l.MarginLeft = (cols - l.X) / 2
		}

		l.Corners = Corners{
			TopLeft:     Point{X: l.MarginLeft, Y: l.MarginTop},
			BottomRight: Point{X: l.MarginLeft + l.X, Y: l.MarginTop + l.Y},
		}
	})
}
