package tuix

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want Key
	}{
		{"Empty", nil, KeyNone},
		{"CR", []byte{'\r'}, KeyEnter},
		{"LF", []byte{'\n'}, KeyEnter},
		{"Up", []byte("\x1b[A"), KeyUp},
		{"Down", []byte("\x1b[B"), KeyDown},
		{"Right", []byte("\x1b[C"), KeyRight},
		{"Left", []byte("\x1b[D"), KeyLeft},
		{"BareEscape", []byte{0x1b}, KeyNone},
		{"UnknownCSI", []byte("\x1b[Z"), KeyNone},
		{"PlainRune", []byte{'q'}, KeyNone},
		{"Garbage", []byte{0xff, 0xfe}, KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseKey(tt.in); got != tt.want {
				t.Errorf("parseKey(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	pairs := map[Key]string{
		KeyNone:  "none",
		KeyUp:    "up",
		KeyDown:  "down",
		KeyLeft:  "left",
		KeyRight: "right",
		KeyEnter: "enter",
		Key(99):  "invalid",
	}
	for k, want := range pairs {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
