package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokinpui/blocnote/internal/state"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		ConfigPath: state.DefaultPath,
		LogLevel:   "info",
	}, cfg)
}

func TestParseArgs_AllFlags(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"-c", "/tmp/blocnote.json",
		"--read-only",
		"--no-restore",
		"--log-file", "/tmp/blocnote.log",
		"--log-level", "debug",
		"notes.txt",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/blocnote.json", cfg.ConfigPath)
	assert.True(t, cfg.ReadOnly)
	assert.True(t, cfg.NoRestore)
	assert.Equal(t, "/tmp/blocnote.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "notes.txt", cfg.File)
}

func TestParseArgs_TooManyFiles(t *testing.T) {
	_, err := ParseArgs([]string{"a.txt", "b.txt"})
	assert.ErrorIs(t, err, ErrTooManyFiles)
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"--bogus"})
	assert.Error(t, err)
}
