// Package tuix is a terminal-rendering toolkit. It keeps a registry of
// UI widgets (choice menus, progress bars, text inputs), resolves each
// widget's fractional size and margin intents into absolute character
// cells against the live terminal size, paints frames with box-drawing
// characters and 24-bit ANSI styling, and drives keyboard navigation
// between selectable buttons.
//
// Construct an Engine, register a widget, then Run a session:
//
//	eng, _ := tuix.New()
//	eng.Components().Create(tuix.KindChoice, "menu")
//	eng.Components().SetLabel("menu", "Pick one")
//	eng.Components().SetChoices("menu", [][]tuix.Choice{{
//		{Name: "Yes", Action: "yes"},
//		{Name: "No", Action: "no"},
//	}})
//	eng.Layout().SetMarginMode("menu", tuix.MarginCentered, tuix.AxisTop, tuix.AxisLeft)
//	index, err := eng.Run(context.Background())
package tuix
