//go:build linux || darwin

package tuix

// enableVTOutput is a no-op on unix terminals, which speak VT natively.
func enableVTOutput(fd uintptr) error {
	return nil
}
