package tuix

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Engine wires the toolkit together: the widget registry, the style
// cascade, the geometry resolver, the painter and the selection loop.
// Construct one per process with New and pass it around explicitly;
// there is no ambient shared state.
type Engine struct {
	components *Registry
	styles     *Styles
	layout     *Geometry
	painter    *Painter
	sel        Selection

	term Terminal
	keys KeyboardSource
	log  zerolog.Logger

	pollTimeout time.Duration
	idleDelay   time.Duration
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger sets the logger used at the render-loop boundary.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithTerminal replaces the output terminal.
func WithTerminal(t Terminal) Option {
	return func(e *Engine) { e.term = t }
}

// WithKeyboard replaces the keyboard source.
func WithKeyboard(k KeyboardSource) Option {
	return func(e *Engine) { e.keys = k }
}

// WithPollTimeout sets the bounded key poll timeout.
func WithPollTimeout(d time.Duration) Option {
	return func(e *Engine) { e.pollTimeout = d }
}

// New constructs an engine. Defaults: stdout terminal, the platform
// keyboard source, a no-op logger, 100ms poll with a 50ms idle delay.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		log:         zerolog.Nop(),
		pollTimeout: 100 * time.Millisecond,
		idleDelay:   50 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.term == nil {
		term, err := NewTerminal(os.Stdout)
		if err != nil {
			return nil, err
		}
		e.term = term
	}
	if e.keys == nil {
		e.keys = NewKeyboard()
	}

	e.components = NewRegistry()
	e.styles = NewStyles()
	e.layout = NewGeometry(e.components)
	e.painter = NewPainter(e.components, e.styles, e.layout, e.term, &e.sel)
	return e, nil
}

// Components returns the widget registry.
func (e *Engine) Components() *Registry { return e.components }

// Styles returns the style resolver.
func (e *Engine) Styles() *Styles { return e.styles }

// Layout returns the geometry resolver.
func (e *Engine) Layout() *Geometry { return e.layout }

// Painter returns the frame painter.
func (e *Engine) Painter() *Painter { return e.painter }

// Selection returns the current selection cursor.
func (e *Engine) Selection() Selection { return e.sel }

// Run drives one rendering session: raw mode is entered as a scoped
// resource, the first frame is painted, and the loop polls for keys,
// applying selection transitions and repainting until enter. Returns
// the final selected column index.
//
// Everything runs on the calling goroutine; the selection cursor and
// the registry have a single writer by construction. The keyboard and
// terminal are restored on every exit path, including panics.
func (e *Engine) Run(ctx context.Context) (index int, err error) {
	if err := e.keys.Open(); err != nil {
		e.log.Error().Err(err).Msg("raw mode unavailable")
		return -1, err
	}
	defer func() {
		if cerr := e.keys.Close(); cerr != nil {
			e.log.Error().Err(cerr).Msg("terminal restore failed")
			if err == nil {
				err = cerr
			}
		}
	}()

	if err := e.painter.DrawFrame(); err != nil {
		e.log.Error().Err(err).Msg("initial frame failed")
		return -1, err
	}

	for {
		if cerr := ctx.Err(); cerr != nil {
			return -1, cerr
		}

		key, err := e.keys.Poll(e.pollTimeout)
		if err != nil {
			e.log.Error().Err(err).Msg("key poll failed")
			return -1, err
		}

		switch key {
		case KeyNone:
			time.Sleep(e.idleDelay)
			continue

		case KeyEnter:
			if cerr := e.term.Clear(); cerr != nil {
				return -1, cerr
			}
			e.log.Debug().Int("row", e.sel.Row).Int("index", e.sel.Col).Msg("selection confirmed")
			return e.sel.Col, nil

		default:
			w := e.components.first()
			if w == nil {
				return -1, ErrEmptyRegistry
			}
			if !e.sel.Apply(key, w.Choices) {
				continue
			}
			if err := e.painter.DrawFrame(); err != nil {
				e.log.Error().Err(err).Msg("repaint failed")
				return -1, err
			}
		}
	}
}
