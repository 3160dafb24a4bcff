package tuix

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is the output surface the painter draws on.
type Terminal interface {
	// Size returns the terminal dimensions in character cells.
	Size() (cols, rows int)
	// Clear erases the screen and homes the cursor.
	Clear() error
	Write(p []byte) (int, error)
}

const (
	seqClearScreen = "\x1b[2J"
	seqCursorHome  = "\x1b[H"
)

// ansiTerminal drives a real terminal through VT escape sequences.
type ansiTerminal struct {
	f *os.File
}

// NewTerminal creates a terminal over the given tty file (usually
// os.Stdout). On Windows this also enables VT output processing so the
// escape sequences are honored.
func NewTerminal(f *os.File) (Terminal, error) {
	if err := enableVTOutput(f.Fd()); err != nil {
		return nil, err
	}
	return &ansiTerminal{f: f}, nil
}

// Size queries the live terminal size, falling back to 80x24 when the
// query fails (e.g. output is not a tty).
func (t *ansiTerminal) Size() (int, int) {
	cols, rows, err := term.GetSize(int(t.f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return 80, 24
	}
	return cols, rows
}

func (t *ansiTerminal) Clear() error {
	_, err := io.WriteString(t.f, seqClearScreen+seqCursorHome)
	return err
}

func (t *ansiTerminal) Write(p []byte) (int, error) {
	return t.f.Write(p)
}

// writerTerminal renders to an arbitrary writer at a fixed size. Used
// by tests and non-tty output.
type writerTerminal struct {
	w    io.Writer
	cols int
	rows int
}

// NewWriterTerminal creates a fixed-size terminal over any writer.
func NewWriterTerminal(w io.Writer, cols, rows int) Terminal {
	return &writerTerminal{w: w, cols: cols, rows: rows}
}

func (t *writerTerminal) Size() (int, int) { return t.cols, t.rows }

func (t *writerTerminal) Clear() error {
	_, err := io.WriteString(t.w, seqClearScreen+seqCursorHome)
	return err
}

func (t *writerTerminal) Write(p []byte) (int, error) {
	return t.w.Write(p)
}
