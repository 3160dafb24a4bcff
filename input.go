package tuix

import "time"

// Key is a decoded keyboard event.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	}
	return "invalid"
}

// KeyboardSource is the platform capability for raw keyboard access.
// Open puts the terminal into raw mode, Close restores it. Poll blocks
// for at most timeout and returns KeyNone when nothing readable or the
// bytes read decode to no recognized key. The core never branches on
// platform; NewKeyboard returns the implementation for the build
// target.
type KeyboardSource interface {
	Open() error
	Close() error
	Poll(timeout time.Duration) (Key, error)
}

// parseKey decodes a raw byte sequence read from the terminal. Both
// platform sources receive VT input sequences, so decoding is shared:
// CSI A/B/C/D arrows plus CR/LF for enter. Anything else is KeyNone.
func parseKey(b []byte) Key {
	if len(b) == 0 {
		return KeyNone
	}
	if b[0] == '\r' || b[0] == '\n' {
		return KeyEnter
	}
	if len(b) >= 3 && b[0] == 0x1b && b[1] == '[' {
		switch b[2] {
		case 'A':
			return KeyUp
		case 'B':
			return KeyDown
		case 'C':
			return KeyRight
		case 'D':
			return KeyLeft
		}
	}
	return KeyNone
}
