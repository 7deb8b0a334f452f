package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sokinpui/blocnote/internal/state"
)

// ErrTooManyFiles is returned when more than one file is given.
var ErrTooManyFiles = errors.New("expected at most one file")

// Config holds all the command-line flag values.
type Config struct {
	File       string
	ConfigPath string
	ReadOnly   bool
	NoRestore  bool
	LogFile    string
	LogLevel   string
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses args without touching the global flag set.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}
	flags := pflag.NewFlagSet("blocnote", pflag.ContinueOnError)

	// Define flags
	flags.StringVarP(&cfg.ConfigPath, "config", "c", state.DefaultPath, "Path of the settings file written on exit.")
	flags.BoolVarP(&cfg.ReadOnly, "read-only", "r", false, "Start with editing disabled.")
	flags.BoolVar(&cfg.NoRestore, "no-restore", false, "Do not reopen the last file when no file is given.")
	flags.StringVar(&cfg.LogFile, "log-file", "", "Write structured logs to this file (disabled by default).")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error.")

	flags.Usage = func() {
		fmt.Println("Usage: blocnote [flags] [file]")
		fmt.Println("\nA minimal text editor for the terminal.")
		fmt.Println("\nExample: blocnote notes.txt")
		fmt.Println("\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	rest := flags.Args()
	if len(rest) > 1 {
		return nil, fmt.Errorf("%w, got %d", ErrTooManyFiles, len(rest))
	}
	if len(rest) == 1 {
		cfg.File = rest[0]
	}

	return cfg, nil
}
