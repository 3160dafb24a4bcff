package tuix

import "fmt"

// Kind identifies a widget's variant. The set is closed: adding a kind
// means extending the exhaustive switches in this file and the painter.
type Kind uint8

const (
	KindChoice Kind = iota
	KindProgressBar
	KindTextInput
)

// String returns the kind's wire name.
func (k Kind) String() string {
	switch k {
	case KindChoice:
		return "choice"
	case KindProgressBar:
		return "progress_bar"
	case KindTextInput:
		return "text_input"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) valid() bool {
	switch k {
	case KindChoice, KindProgressBar, KindTextInput:
		return true
	}
	return false
}

// Choice is a single selectable button inside a choice widget row.
type Choice struct {
	Name   string
	Action string
}

// Widget is a single interactive terminal element. Kind is fixed at
// creation; payload fields are guarded by the kind applicability
// checks on the setters.
type Widget struct {
	id   string
	kind Kind

	Label    string
	Choices  [][]Choice // choice: rows of buttons
	Progress int        // progress_bar: 0-100
	Text     string     // text_input: buffer

	Layout Layout
}

// ID returns the widget's unique id.
func (w *Widget) ID() string { return w.id }

// Kind returns the widget's immutable kind.
func (w *Widget) Kind() Kind { return w.kind }

// Property names a settable widget field.
type Property uint8

const (
	PropLabel Property = iota
	PropChoices
	PropProgress
	PropText
)

func (p Property) String() string {
	switch p {
	case PropLabel:
		return "label"
	case PropChoices:
		return "choices"
	case PropProgress:
		return "progress"
	case PropText:
		return "default_text"
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

// appliesTo reports whether the property is settable on the kind.
func (p Property) appliesTo(k Kind) bool {
	switch p {
	case PropLabel:
		return true
	case PropChoices:
		return k == KindChoice
	case PropProgress:
		return k == KindProgressBar
	case PropText:
		return k == KindTextInput
	}
	return false
}

// Registry owns all widgets for an engine. Iteration order is the
// order of creation.
type Registry struct {
	widgets map[string]*Widget
	order   []string
}

// NewRegistry creates an empty widget registry.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]*Widget)}
}

// Create registers a new widget under the given id.
func (r *Registry) Create(kind Kind, id string) (*Widget, error) {
	if _, ok := r.widgets[id]; ok {
		return nil, fmt.Errorf("create %q: %w", id, ErrDuplicateWidget)
	}
	if !kind.valid() {
		return nil, fmt.Errorf("create %q: %w", id, ErrUnknownKind)
	}
	w := &Widget{
		id:     id,
		kind:   kind,
		Layout: DefaultLayout(),
	}
	r.widgets[id] = w
	r.order = append(r.order, id)
	return w, nil
}

// Get returns the widget with the given id.
func (r *Registry) Get(id string) (*Widget, error) {
	w, ok := r.widgets[id]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", id, ErrUnknownWidget)
	}
	return w, nil
}

// Delete removes the widget with the given id.
func (r *Registry) Delete(id string) error {
	if _, ok := r.widgets[id]; !ok {
		return fmt.Errorf("delete %q: %w", id, ErrUnknownWidget)
	}
	delete(r.widgets, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of registered widgets.
func (r *Registry) Count() int { return len(r.widgets) }

// Each calls fn for every widget in creation order.
func (r *Registry) Each(fn func(id string, w *Widget)) {
	for _, id := range r.order {
		fn(id, r.widgets[id])
	}
}

// first returns the sole widget, or nil when the registry is empty.
func (r *Registry) first() *Widget {
	if len(r.order) == 0 {
		return nil
	}
	return r.widgets[r.order[0]]
}

// SetLabel sets the widget's label. Applicable to every kind.
func (r *Registry) SetLabel(id, label string) error {
	w, err := r.checkProperty(id, PropLabel)
	if err != nil {
		return err
	}
	w.Label = label
	return nil
}

// SetChoices sets the button grid of a choice widget. Each inner slice
// is one row of buttons.
func (r *Registry) SetChoices(id string, choices [][]Choice) error {
	w, err := r.checkProperty(id, PropChoices)
	if err != nil {
		return err
	}
	w.Choices = choices
	return nil
}

// SetProgress sets a progress bar's completion, 0-100.
func (r *Registry) SetProgress(id string, progress int) error {
	w, err := r.checkProperty(id, PropProgress)
	if err != nil {
		return err
	}
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress %d: %w", progress, ErrOutOfRange)
	}
	w.Progress = progress
	return nil
}

// SetText sets a text input's buffer.
func (r *Registry) SetText(id, text string) error {
	w, err := r.checkProperty(id, PropText)
	if err != nil {
		return err
	}
	w.Text = text
	return nil
}

// SetProperty is the dynamic setter surface. It dispatches to the
// typed setter for the property; a property outside the closed set
// fails ErrUnknownProperty, a value of the wrong type fails
// ErrPropertyNotApplicable. Prefer the typed setters when the property
// is known at compile time.
func (r *Registry) SetProperty(id string, p Property, value any) error {
	switch p {
	case PropLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("set %s on %q: want string, got %T: %w", p, id, value, ErrPropertyNotApplicable)
		}
		return r.SetLabel(id, v)
	case PropChoices:
		v, ok := value.([][]Choice)
		if !ok {
			return fmt.Errorf("set %s on %q: want [][]Choice, got %T: %w", p, id, value, ErrPropertyNotApplicable)
		}
		return r.SetChoices(id, v)
	case PropProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("set %s on %q: want int, got %T: %w", p, id, value, ErrPropertyNotApplicable)
		}
		return r.SetProgress(id, v)
	case PropText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("set %s on %q: want string, got %T: %w", p, id, value, ErrPropertyNotApplicable)
		}
		return r.SetText(id, v)
	}
	return fmt.Errorf("set property %d on %q: %w", uint8(p), id, ErrUnknownProperty)
}

func (r *Registry) checkProperty(id string, p Property) (*Widget, error) {
	w, ok := r.widgets[id]
	if !ok {
		return nil, fmt.Errorf("set %s on %q: %w", p, id, ErrUnknownWidget)
	}
	if !p.appliesTo(w.kind) {
		return nil, fmt.Errorf("set %s on %s widget %q: %w", p, w.kind, id, ErrPropertyNotApplicable)
	}
	return w, nil
}
