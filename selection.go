package tuix

// Selection is the 2-D cursor over a choice widget's button grid:
// a row index and a button index within that row. Both indices stay
// valid for the widget's choice data after every transition.
type Selection struct {
	Row int
	Col int
}

// Apply advances the cursor for one directional key against the given
// choice rows. Vertical moves clamp the row to [0, rows-1] and then
// clamp the column to the new row's bounds; horizontal moves clamp the
// column within the current row. Returns true when the key was a
// recognized direction (a repaint is due even if the cursor hit a
// wall), false otherwise.
func (s *Selection) Apply(key Key, choices [][]Choice) bool {
	if len(choices) == 0 {
		return false
	}
	switch key {
	case KeyUp:
		s.Row = max(0, s.Row-1)
		s.Col = min(s.Col, len(choices[s.Row])-1)
	case KeyDown:
		s.Row = min(len(choices)-1, s.Row+1)
		s.Col = min(s.Col, len(choices[s.Row])-1)
	case KeyLeft:
		s.Col = max(0, s.Col-1)
	case KeyRight:
		s.Col = min(len(choices[s.Row])-1, s.Col+1)
	default:
		return false
	}
	return true
}

// Reset returns the cursor to the origin.
func (s *Selection) Reset() {
	s.Row, s.Col = 0, 0
}
