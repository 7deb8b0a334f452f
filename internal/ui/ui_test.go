package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/sokinpui/blocnote/model"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := Output, color.NoColor
	Output, color.NoColor = &buf, true
	t.Cleanup(func() {
		Output, color.NoColor = prevOut, prevNoColor
	})
	return &buf
}

func TestPrintExitSummary(t *testing.T) {
	t.Run("saved file", func(t *testing.T) {
		buf := captureOutput(t)
		PrintExitSummary(model.Summary{LastFile: "/tmp/a.txt", Saved: true})
		assert.Equal(t, "Saved:\n  /tmp/a.txt\n", buf.String())
	})

	t.Run("unsaved file with warning", func(t *testing.T) {
		buf := captureOutput(t)
		PrintExitSummary(model.Summary{
			LastFile: "/tmp/a.txt",
			Warnings: []string{"config not stored"},
		})
		assert.Equal(t, "config not stored\nClosed with unsaved changes:\n  /tmp/a.txt\n", buf.String())
	})

	t.Run("untitled prints nothing", func(t *testing.T) {
		buf := captureOutput(t)
		PrintExitSummary(model.Summary{})
		assert.Empty(t, buf.String())
	})
}

func TestMessageHelpers(t *testing.T) {
	buf := captureOutput(t)
	Error("Failed to initialize application: %v", "boom")
	Warning("%s", "config not stored")
	assert.Equal(t, "Failed to initialize application: boom\nconfig not stored\n", buf.String())
}
