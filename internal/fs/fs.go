package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when a file is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")

// Store reads and writes whole text files.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// ReadText reads the entire file at path as text.
func (s *Store) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}

// WriteText overwrites the file at path with content.
func (s *Store) WriteText(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// LineCount returns the number of lines in text. "\n", "\r\n" and a
// lone "\r" each end a line.
func LineCount(text string) int {
	breaks := strings.Count(text, "\n") + strings.Count(text, "\r") - strings.Count(text, "\r\n")
	return breaks + 1
}

// NormalizeNewlines converts "\r\n" and lone "\r" line breaks to "\n".
func NormalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// PathResolver turns picker input into absolute paths.
type PathResolver struct {
	baseDir string
}

// NewPathResolver creates a PathResolver rooted at baseDir, or at the
// current working directory when baseDir is empty.
func NewPathResolver(baseDir string) *PathResolver {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			// This is unlikely to fail, but if it does, it's a critical error.
			panic(fmt.Sprintf("could not get current working directory: %v", err))
		}
		return &PathResolver{baseDir: wd}
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		abs = baseDir
	}
	return &PathResolver{baseDir: abs}
}

// BaseDir returns the directory relative paths are resolved against.
func (r *PathResolver) BaseDir() string {
	return r.baseDir
}

// Resolve returns path unchanged when absolute, otherwise joined to the base dir.
func (r *PathResolver) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.baseDir, path)
}

// DisplayName returns the last segment of path prefixed with a separator.
func DisplayName(path string) string {
	if path == "" {
		return ""
	}
	return string(filepath.Separator) + filepath.Base(path)
}
