package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sokinpui/blocnote/blocnote"
	"github.com/sokinpui/blocnote/cli"
	"github.com/sokinpui/blocnote/internal/tui"
	"github.com/sokinpui/blocnote/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := cli.ParseFlags()
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		// pflag already prints its own parse errors.
		if errors.Is(err, cli.ErrTooManyFiles) {
			ui.Error("%v", err)
		}
		os.Exit(1)
	}

	app, err := blocnote.New(cfg, blocnote.WithMaxLines(tui.MaxLines))
	if err != nil {
		ui.Error("Failed to initialize application: %v", err)
		os.Exit(1)
	}
	defer app.Close()

	// A startup I/O failure is shown inside the editor; a panic is not recoverable.
	startErr := app.Start()
	var detailed *blocnote.DetailedError
	if errors.As(startErr, &detailed) {
		ui.Error("%v", detailed.Err)
		fmt.Fprintln(os.Stderr, string(detailed.Stack))
		app.Close()
		os.Exit(1)
	}

	model := tui.New(app, startErr)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		ui.Error("Error running program: %v", err)
		app.Close()
		os.Exit(1)
	}

	ui.PrintExitSummary(app.Summary())
}
