//go:build windows

package tuix

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

// winKeyboard reads keys from the console input handle. Virtual
// terminal input is enabled so arrows arrive as the same VT sequences
// the unix source reads, keeping the decoder shared.
type winKeyboard struct {
	handle windows.Handle
	orig   uint32
	open   bool
	buf    [8]byte
}

// NewKeyboard returns the keyboard source for this platform.
func NewKeyboard() KeyboardSource {
	return &winKeyboard{handle: windows.Handle(os.Stdin.Fd())}
}

// Open switches the console to raw-style input, saving the current
// mode for Close.
func (k *winKeyboard) Open() error {
	if err := windows.GetConsoleMode(k.handle, &k.orig); err != nil {
		return fmt.Errorf("get console mode: %w", err)
	}
	mode := k.orig
	mode &^= windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	if err := windows.SetConsoleMode(k.handle, mode); err != nil {
		return fmt.Errorf("set console mode: %w", err)
	}
	k.open = true
	return nil
}

// Close restores the console mode saved by Open.
func (k *winKeyboard) Close() error {
	if !k.open {
		return nil
	}
	k.open = false
	if err := windows.SetConsoleMode(k.handle, k.orig); err != nil {
		return fmt.Errorf("restore console mode: %w", err)
	}
	return nil
}

// Poll waits up to timeout for console input and decodes it.
func (k *winKeyboard) Poll(timeout time.Duration) (Key, error) {
	ev, err := windows.WaitForSingleObject(k.handle, uint32(timeout.Milliseconds()))
	if err != nil {
		return KeyNone, fmt.Errorf("wait for input: %w", err)
	}
	if ev != windows.WAIT_OBJECT_0 {
		return KeyNone, nil
	}

	var read uint32
	if err := windows.ReadFile(k.handle, k.buf[:], &read, nil); err != nil {
		return KeyNone, fmt.Errorf("read console: %w", err)
	}
	return parseKey(k.buf[:read]), nil
}
