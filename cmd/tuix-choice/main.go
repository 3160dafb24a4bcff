// tuix-choice renders a centered choice menu and prints the selection.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"tuix"
)

var (
	label = flag.String("label", "Test", "label shown above the buttons")
	debug = flag.Bool("debug", false, "log render-loop events to stderr")
)

func main() {
	flag.Parse()

	logger := zerolog.Nop()
	if *debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	eng, err := tuix.New(tuix.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reg := eng.Components()
	if _, err := reg.Create(tuix.KindChoice, "choice"); err != nil {
		fatal(err)
	}
	if err := reg.SetLabel("choice", *label); err != nil {
		fatal(err)
	}
	if err := reg.SetChoices("choice", [][]tuix.Choice{{
		{Name: "Test", Action: "pass"},
		{Name: "Test", Action: "pass"},
	}}); err != nil {
		fatal(err)
	}

	if err := eng.Layout().SetMarginMode("choice", tuix.MarginCentered, tuix.AxisTop, tuix.AxisLeft); err != nil {
		fatal(err)
	}

	index, err := eng.Run(context.Background())
	if err != nil {
		fatal(err)
	}

	banner := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("22")).
		Padding(0, 1)
	fmt.Println(banner.Render(fmt.Sprintf("Selected index: %d", index)))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
