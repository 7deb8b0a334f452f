package ui

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/sokinpui/blocnote/model"
)

var (
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

// Output is where messages are printed. The TUI owns stdout, so it is stderr.
var Output io.Writer = os.Stderr

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(Output, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(Output, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(Output, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(Output, "  "+format+"\n", a...)
}

// PrintExitSummary reports what happened to the document after the TUI closed.
func PrintExitSummary(summary model.Summary) {
	for _, w := range summary.Warnings {
		Warning("%s", w)
	}
	if summary.LastFile == "" {
		return
	}
	if summary.Saved {
		Success("Saved:")
	} else {
		Warning("Closed with unsaved changes:")
	}
	Path("%s", summary.LastFile)
}
