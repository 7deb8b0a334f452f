package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Provider reads and writes the system clipboard.
type Provider struct{}

// New creates a new Provider.
func New() *Provider {
	return &Provider{}
}

// Read returns the clipboard text.
func (p *Provider) Read() (string, error) {
	content, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read from clipboard: %w", err)
	}
	return content, nil
}

// Write replaces the clipboard text.
func (p *Provider) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

// Available reports whether a clipboard backend exists on this system.
func (p *Provider) Available() bool {
	return !clipboard.Unsupported
}

// Memory is an in-process clipboard used when no system clipboard exists.
type Memory struct {
	text string
}

// Read returns the stored text.
func (m *Memory) Read() (string, error) {
	return m.text, nil
}

// Write stores text.
func (m *Memory) Write(text string) error {
	m.text = text
	return nil
}
