//go:build linux || darwin

package tuix

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// unixKeyboard reads keys from stdin in raw mode, polling readiness
// with select(2) so reads never block past the caller's timeout.
type unixKeyboard struct {
	fd   int
	orig *unix.Termios
	buf  [8]byte
}

// NewKeyboard returns the keyboard source for this platform.
func NewKeyboard() KeyboardSource {
	return &unixKeyboard{fd: int(os.Stdin.Fd())}
}

// Open puts the terminal into raw mode, saving the current settings
// for Close.
func (k *unixKeyboard) Open() error {
	termios, err := unix.IoctlGetTermios(k.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	k.orig = termios

	raw := *termios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: min bytes = 1, timeout = 0; select gates readiness
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(k.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	return nil
}

// Close restores the terminal settings saved by Open.
func (k *unixKeyboard) Close() error {
	if k.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(k.fd, ioctlSetTermios, k.orig); err != nil {
		return fmt.Errorf("restore termios: %w", err)
	}
	k.orig = nil
	return nil
}

// Poll waits up to timeout for input and decodes it. Interrupted
// system calls and timeouts both report KeyNone.
func (k *unixKeyboard) Poll(timeout time.Duration) (Key, error) {
	var fds unix.FdSet
	fds.Zero()
	fds.Set(k.fd)
	tv := unix.NsecToTimeval(timeout.Nanoseconds())

	n, err := unix.Select(k.fd+1, &fds, nil, nil, &tv)
	if err != nil {
		if err == unix.EINTR {
			return KeyNone, nil
		}
		return KeyNone, fmt.Errorf("select: %w", err)
	}
	if n == 0 || !fds.IsSet(k.fd) {
		return KeyNone, nil
	}

	nr, err := unix.Read(k.fd, k.buf[:])
	if err != nil {
		return KeyNone, fmt.Errorf("read: %w", err)
	}
	return parseKey(k.buf[:nr]), nil
}
