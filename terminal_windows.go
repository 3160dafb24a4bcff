//go:build windows

package tuix

import "golang.org/x/sys/windows"

// enableVTOutput turns on virtual terminal processing so the console
// honors the VT escape sequences the painter emits.
func enableVTOutput(fd uintptr) error {
	handle := windows.Handle(fd)
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return err
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING | windows.ENABLE_PROCESSED_OUTPUT
	return windows.SetConsoleMode(handle, mode)
}
