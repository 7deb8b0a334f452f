package state

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sokinpui/blocnote/model"
)

// DefaultPath is where the config sidecar lives when no path is given.
const DefaultPath = "./config.json"

// Manager handles the lifecycle of the config sidecar file.
type Manager struct {
	path string
}

// New creates a Manager bound to path, or to DefaultPath when path is empty.
func New(path string) *Manager {
	if path == "" {
		path = DefaultPath
	}
	return &Manager{path: path}
}

// Path returns the file the manager reads and writes.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the stored settings. A missing file is not an error.
func (m *Manager) Load() (model.Settings, error) {
	var settings model.Settings

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("could not read config %s: %w", m.path, err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return model.Settings{}, fmt.Errorf("invalid config file %s: %w", m.path, err)
	}
	return settings, nil
}

// Store overwrites the config file with settings.
func (m *Manager) Store(settings model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("could not write config %s: %w", m.path, err)
	}
	return nil
}
