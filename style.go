package tuix

import "fmt"

// StyleKey names one slot in the style schema.
type StyleKey string

const (
	KeyShadow               StyleKey = "shadow"
	KeyBackground           StyleKey = "background"
	KeyPromptBackground     StyleKey = "prompt_background"
	KeyBorder               StyleKey = "border"
	KeyTextColor            StyleKey = "text_color"
	KeyTextBackground       StyleKey = "text_background"
	KeyUnselectedBackground StyleKey = "unselected_background"
	KeyUnselectedText       StyleKey = "unselected_text"
	KeySelectedBackground   StyleKey = "selected_background"
	KeySelectedText         StyleKey = "selected_text"
	KeyText                 StyleKey = "text"
)

// canonicalKeys is the schema every preset must match exactly.
var canonicalKeys = []StyleKey{
	KeyShadow, KeyBackground, KeyPromptBackground, KeyBorder,
	KeyTextColor, KeyTextBackground, KeyUnselectedBackground,
	KeyUnselectedText, KeySelectedBackground, KeySelectedText, KeyText,
}

// keyClass is the type constraint a style key's values must satisfy.
type keyClass uint8

const (
	classRGB     keyClass = iota // RGB triple only
	classBoolRGB                 // boolean off, or RGB triple
	classText                    // nested boolean text options
)

func classOf(k StyleKey) (keyClass, bool) {
	switch k {
	case KeyPromptBackground, KeyBorder, KeyTextColor,
		KeyUnselectedText, KeySelectedBackground, KeySelectedText:
		return classRGB, true
	case KeyShadow, KeyBackground, KeyTextBackground, KeyUnselectedBackground:
		return classBoolRGB, true
	case KeyText:
		return classText, true
	}
	return 0, false
}

// TextOption addresses one nested text decoration flag.
type TextOption string

const (
	OptBold      TextOption = "bold"
	OptItalic    TextOption = "italic"
	OptUnderline TextOption = "underline"
	OptDim       TextOption = "dim"
)

// StyleValue is a value assignable to a style key: an RGB triple, a
// Flag, or a TextFlags set for the nested text key.
type StyleValue interface {
	styleValue()
}

func (RGB) styleValue() {}

// Flag is the boolean style value. Flag(false) is an explicit "off",
// distinct from no override at all.
type Flag bool

func (Flag) styleValue() {}

// TextFlags are the nested text decoration switches.
type TextFlags struct {
	Bold      bool
	Italic    bool
	Underline bool
	Dim       bool
}

func (TextFlags) styleValue() {}

// Paint is a resolved bool-or-color slot: a color, or switched off.
type Paint struct {
	Color RGB
	On    bool
}

// Snapshot is the fully resolved style state after overlaying custom
// overrides atop the active preset. It is the only style artifact the
// painter reads.
type Snapshot struct {
	Shadow               Paint
	Background           Paint
	PromptBackground     RGB
	Border               RGB
	TextColor            RGB
	TextBackground       Paint
	UnselectedBackground Paint
	UnselectedText       RGB
	SelectedBackground   RGB
	SelectedText         RGB
	Text                 TextFlags
}

// textOverrides carries the tri-state nested overrides: nil means the
// preset value stands, a pointer carries an explicit true or false.
type textOverrides struct {
	bold      *bool
	italic    *bool
	underline *bool
	dim       *bool
}

func (t *textOverrides) slot(opt TextOption) **bool {
	switch opt {
	case OptBold:
		return &t.bold
	case OptItalic:
		return &t.italic
	case OptUnderline:
		return &t.underline
	case OptDim:
		return &t.dim
	}
	return nil
}

// overrides is the typed record of custom style values. A nil
// StyleValue means "no override"; Flag(false) is an explicit off.
type overrides struct {
	shadow               StyleValue
	background           StyleValue
	promptBackground     StyleValue
	border               StyleValue
	textColor            StyleValue
	textBackground       StyleValue
	unselectedBackground StyleValue
	unselectedText       StyleValue
	selectedBackground   StyleValue
	selectedText         StyleValue
	text                 textOverrides
}

func (o *overrides) slot(k StyleKey) *StyleValue {
	switch k {
	case KeyShadow:
		return &o.shadow
	case KeyBackground:
		return &o.background
	case KeyPromptBackground:
		return &o.promptBackground
	case KeyBorder:
		return &o.border
	case KeyTextColor:
		return &o.textColor
	case KeyTextBackground:
		return &o.textBackground
	case KeyUnselectedBackground:
		return &o.unselectedBackground
	case KeyUnselectedText:
		return &o.unselectedText
	case KeySelectedBackground:
		return &o.selectedBackground
	case KeySelectedText:
		return &o.selectedText
	}
	return nil
}

// PromptType selects the prompt interaction mode.
const (
	PromptAdaptive = "adaptive"
	PromptStrict   = "strict"
)

// Styles resolves a named preset plus per-key overrides into a cached
// effective snapshot. Every mutating call eagerly recomputes the cache.
type Styles struct {
	presets    map[string]map[StyleKey]StyleValue
	active     string
	promptType string
	custom     overrides
	snapshot   Snapshot
}

// classicPreset is the built-in preset and the source of the canonical
// key set.
func classicPreset() map[StyleKey]StyleValue {
	return map[StyleKey]StyleValue{
		KeyShadow:               Flag(false),
		KeyBackground:           Flag(false),
		KeyPromptBackground:     RGB{0, 0, 0},
		KeyBorder:               RGB{255, 255, 255},
		KeyTextColor:            RGB{255, 255, 255},
		KeyTextBackground:       Flag(false),
		KeyUnselectedBackground: Flag(false),
		KeyUnselectedText:       RGB{255, 255, 255},
		KeySelectedBackground:   RGB{255, 255, 255},
		KeySelectedText:         RGB{0, 0, 0},
		KeyText:                 TextFlags{},
	}
}

// NewStyles creates a style resolver with the classic preset active.
func NewStyles() *Styles {
	s := &Styles{
		presets:    map[string]map[StyleKey]StyleValue{"classic": classicPreset()},
		active:     "classic",
		promptType: PromptStrict,
	}
	s.recompute()
	return s
}

// SetPromptType switches between adaptive and strict prompt modes.
func (s *Styles) SetPromptType(name string) error {
	if name != PromptAdaptive && name != PromptStrict {
		return fmt.Errorf("prompt type %q: %w", name, ErrUnknownPromptType)
	}
	s.promptType = name
	return nil
}

// PromptType returns the active prompt mode.
func (s *Styles) PromptType() string { return s.promptType }

// SetPreset activates a registered preset.
func (s *Styles) SetPreset(name string) error {
	if _, ok := s.presets[name]; !ok {
		return fmt.Errorf("preset %q: %w", name, ErrUnknownPreset)
	}
	s.active = name
	s.recompute()
	return nil
}

// SetOverride sets a custom value for a style key. RGB-only keys take
// an RGB triple. Bool-or-RGB keys additionally accept Flag(false);
// Flag(true) on shadow derives a blended shadow color from the
// resolved background and prompt background, while Flag(true) on the
// background toggles is rejected (there is no "on" without a color).
// The text key is addressed per option via SetTextOption.
func (s *Styles) SetOverride(key StyleKey, value StyleValue) error {
	class, ok := classOf(key)
	if !ok {
		return fmt.Errorf("key %q: %w", key, ErrUnknownStyleKey)
	}

	slot := s.custom.slot(key)
	switch class {
	case classRGB:
		c, ok := value.(RGB)
		if !ok {
			return fmt.Errorf("key %q wants an RGB triple: %w", key, ErrInvalidStyleValue)
		}
		*slot = c

	case classBoolRGB:
		switch v := value.(type) {
		case RGB:
			*slot = v
		case Flag:
			if !v {
				*slot = Flag(false)
				break
			}
			if key != KeyShadow {
				return fmt.Errorf("key %q cannot be true: %w", key, ErrInvalidStyleValue)
			}
			shadow, err := s.deriveShadow()
			if err != nil {
				return err
			}
			*slot = shadow
		default:
			return fmt.Errorf("key %q wants a boolean or an RGB triple: %w", key, ErrInvalidStyleValue)
		}

	case classText:
		return fmt.Errorf("key %q is set per option via SetTextOption: %w", key, ErrInvalidStyleValue)
	}

	s.recompute()
	return nil
}

// deriveShadow blends the effective background toward the effective
// prompt background at fixed intensity. Both must resolve to colors.
func (s *Styles) deriveShadow() (RGB, error) {
	resolve := func(key StyleKey) (RGB, bool) {
		if ov := *s.custom.slot(key); ov != nil {
			c, ok := ov.(RGB)
			return c, ok
		}
		c, ok := s.presets[s.active][key].(RGB)
		return c, ok
	}
	bg, ok := resolve(KeyBackground)
	if !ok {
		return RGB{}, fmt.Errorf("shadow needs a background color: %w", ErrInvalidStyleValue)
	}
	fg, ok := resolve(KeyPromptBackground)
	if !ok {
		return RGB{}, fmt.Errorf("shadow needs a prompt background color: %w", ErrInvalidStyleValue)
	}
	return blendShadow(bg, fg), nil
}

// SetTextOption sets one nested text decoration flag.
func (s *Styles) SetTextOption(opt TextOption, value bool) error {
	slot := s.custom.text.slot(opt)
	if slot == nil {
		return fmt.Errorf("text option %q: %w", opt, ErrUnknownStyleOption)
	}
	v := value
	*slot = &v
	s.recompute()
	return nil
}

// RemoveOverride resets the given keys to their preset defaults. The
// text key is removed per option via RemoveTextOption.
func (s *Styles) RemoveOverride(keys ...StyleKey) error {
	for _, key := range keys {
		if key == KeyText {
			return fmt.Errorf("key %q is removed per option via RemoveTextOption: %w", key, ErrInvalidStyleValue)
		}
		slot := s.custom.slot(key)
		if slot == nil {
			return fmt.Errorf("key %q: %w", key, ErrUnknownStyleKey)
		}
		*slot = nil
	}
	s.recompute()
	return nil
}

// RemoveTextOption resets the given text decoration flags to their
// preset defaults.
func (s *Styles) RemoveTextOption(opts ...TextOption) error {
	for _, opt := range opts {
		slot := s.custom.text.slot(opt)
		if slot == nil {
			return fmt.Errorf("text option %q: %w", opt, ErrUnknownStyleOption)
		}
		*slot = nil
	}
	s.recompute()
	return nil
}

// DefineStyle registers a new preset. Its key set must match the
// canonical key set exactly, and each value must satisfy its key's
// type class. Registering an existing name is a no-op.
func (s *Styles) DefineStyle(name string, config map[StyleKey]StyleValue) error {
	if len(config) != len(canonicalKeys) {
		return fmt.Errorf("define %q: %w", name, ErrSchemaMismatch)
	}
	for _, key := range canonicalKeys {
		value, ok := config[key]
		if !ok {
			return fmt.Errorf("define %q: missing %q: %w", name, key, ErrSchemaMismatch)
		}
		class, _ := classOf(key)
		switch class {
		case classRGB:
			if _, ok := value.(RGB); !ok {
				return fmt.Errorf("define %q: key %q wants an RGB triple: %w", name, key, ErrInvalidStyleValue)
			}
		case classBoolRGB:
			switch v := value.(type) {
			case RGB:
			case Flag:
				if v {
					return fmt.Errorf("define %q: key %q cannot be true: %w", name, key, ErrInvalidStyleValue)
				}
			default:
				return fmt.Errorf("define %q: key %q wants a boolean or an RGB triple: %w", name, key, ErrInvalidStyleValue)
			}
		case classText:
			if _, ok := value.(TextFlags); !ok {
				return fmt.Errorf("define %q: key %q wants text flags: %w", name, key, ErrInvalidStyleValue)
			}
		}
	}
	if _, exists := s.presets[name]; exists {
		return nil
	}
	cfg := make(map[StyleKey]StyleValue, len(config))
	for k, v := range config {
		cfg[k] = v
	}
	s.presets[name] = cfg
	return nil
}

// Snapshot returns the cached effective style.
func (s *Styles) Snapshot() Snapshot { return s.snapshot }

// recompute overlays custom overrides atop the active preset. Preset
// schema parity and override validation make this total.
func (s *Styles) recompute() {
	cfg := s.presets[s.active]

	resolve := func(key StyleKey) StyleValue {
		if ov := *s.custom.slot(key); ov != nil {
			return ov
		}
		return cfg[key]
	}
	paint := func(key StyleKey) Paint {
		if c, ok := resolve(key).(RGB); ok {
			return Paint{Color: c, On: true}
		}
		return Paint{}
	}
	color := func(key StyleKey) RGB {
		c, _ := resolve(key).(RGB)
		return c
	}

	text, _ := cfg[KeyText].(TextFlags)
	if s.custom.text.bold != nil {
		text.Bold = *s.custom.text.bold
	}
	if s.custom.text.italic != nil {
		text.Italic = *s.custom.text.italic
	}
	if s.custom.text.underline != nil {
		text.Underline = *s.custom.text.underline
	}
	if s.custom.text.dim != nil {
		text.Dim = *s.custom.text.dim
	}

	s.snapshot = Snapshot{
		Shadow:               paint(KeyShadow),
		Background:           paint(KeyBackground),
		PromptBackground:     color(KeyPromptBackground),
		Border:               color(KeyBorder),
		TextColor:            color(KeyTextColor),
		TextBackground:       paint(KeyTextBackground),
		UnselectedBackground: paint(KeyUnselectedBackground),
		UnselectedText:       color(KeyUnselectedText),
		SelectedBackground:   color(KeySelectedBackground),
		SelectedText:         color(KeySelectedText),
		Text:                 text,
	}
}
