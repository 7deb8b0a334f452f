package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sokinpui/blocnote/internal/fs"
	"github.com/sokinpui/blocnote/model"
)

const appTitle = "BlocNote"

var (
	// ErrCancelled is returned by a Prompter when the user dismisses a dialog.
	ErrCancelled = errors.New("cancelled by user")
	// ErrConfigNotStored wraps a failure to persist settings on close.
	ErrConfigNotStored = errors.New("config not stored")
	// ErrTooManyLines is returned by Load for a file longer than the line limit.
	ErrTooManyLines = errors.New("file has too many lines")
)

// IOError reports a failed read or write of a document.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Prompter asks the user the questions a lifecycle operation needs.
type Prompter interface {
	// ConfirmSave reports whether unsaved changes should be saved first.
	ConfirmSave() (bool, error)
	// OpenPath returns the file chosen for opening, or ErrCancelled.
	OpenPath() (string, error)
	// SavePath returns the destination chosen for saving, or ErrCancelled.
	SavePath() (string, error)
}

// FileStore reads and writes whole text files.
type FileStore interface {
	ReadText(path string) (string, error)
	WriteText(path, content string) error
}

// ConfigStore persists the settings written on close.
type ConfigStore interface {
	Store(settings model.Settings) error
}

// Window reports the current size of the editor window.
type Window interface {
	Size() (width, height int)
}

// Session tracks the single open document and whether it is saved.
type Session struct {
	files  FileStore
	config ConfigStore
	window Window
	logger zerolog.Logger

	maxLines int

	filePath       string
	savedContent   string
	currentContent string
}

// New creates an untitled Session.
func New(files FileStore, config ConfigStore, window Window, logger zerolog.Logger) *Session {
	return &Session{
		files:  files,
		config: config,
		window: window,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// SetMaxLines limits the files Load accepts to n lines. Zero means no limit.
func (s *Session) SetMaxLines(n int) {
	s.maxLines = n
}

// FilePath returns the backing file, or "" for an untitled document.
func (s *Session) FilePath() string {
	return s.filePath
}

// Content returns the content currently held by the text buffer.
func (s *Session) Content() string {
	return s.currentContent
}

// IsSaved reports whether the buffer holds non-empty content equal to
// the last loaded or written snapshot.
func (s *Session) IsSaved() bool {
	return s.currentContent != "" && s.currentContent == s.savedContent
}

// DisplayName returns the file name prefixed with a separator, or "".
func (s *Session) DisplayName() string {
	return fs.DisplayName(s.filePath)
}

// Title returns the window title for the current state.
func (s *Session) Title() string {
	if !s.IsSaved() {
		return appTitle + " *"
	}
	if s.filePath != "" {
		return appTitle + " " + s.DisplayName()
	}
	return appTitle
}

// OnContentChanged mirrors an edit of the text buffer.
func (s *Session) OnContentChanged(text string) bool {
	s.currentContent = text
	return s.IsSaved()
}

// NewFile offers to save pending changes, then detaches from the current file.
// It returns ErrCancelled when the user backs out of the save.
func (s *Session) NewFile(p Prompter) error {
	if err := s.resolveUnsaved(p); err != nil {
		return err
	}
	s.filePath = ""
	s.savedContent = ""
	s.currentContent = ""
	s.logger.Debug().Msg("new document")
	return nil
}

// OpenFile asks for a file and loads it.
func (s *Session) OpenFile(p Prompter) error {
	path, err := p.OpenPath()
	if err != nil {
		return ignoreCancel(err)
	}
	return s.Load(path)
}

// Load reads path and replaces the whole session with its content.
// A file over the line limit is refused and the session is left as is.
func (s *Session) Load(path string) error {
	text, err := s.files.ReadText(path)
	if err == nil && s.maxLines > 0 {
		if n := fs.LineCount(text); n > s.maxLines {
			err = fmt.Errorf("%w: %d lines, limit is %d", ErrTooManyLines, n, s.maxLines)
		}
	}
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("failed to open file")
		return &IOError{Op: "open", Path: path, Err: err}
	}
	s.filePath = path
	s.currentContent = text
	s.savedContent = text
	s.logger.Debug().Str("path", path).Int("bytes", len(text)).Msg("file opened")
	return nil
}

// SaveFile writes the buffer to the current file, asking for one if untitled.
// Dismissing the file dialog is not an error.
func (s *Session) SaveFile(p Prompter) error {
	return ignoreCancel(s.save(p))
}

// SaveFileAs asks for a destination and writes the buffer there.
// Dismissing the file dialog leaves the session untouched.
func (s *Session) SaveFileAs(p Prompter) error {
	return ignoreCancel(s.saveAs(p))
}

func (s *Session) save(p Prompter) error {
	if s.filePath == "" {
		return s.saveAs(p)
	}
	return s.writeTo(s.filePath)
}

func (s *Session) saveAs(p Prompter) error {
	path, err := p.SavePath()
	if err != nil {
		return err
	}
	if err := s.writeTo(path); err != nil {
		return err
	}
	s.filePath = path
	return nil
}

// Close persists the window geometry and the current file path.
// A failure is returned but nothing else depends on it.
func (s *Session) Close() error {
	width, height := s.window.Size()
	settings := model.NewSettings(model.Geometry{Width: width, Height: height}, s.filePath)
	if err := s.config.Store(settings); err != nil {
		s.logger.Warn().Err(err).Msg("failed to store config")
		return fmt.Errorf("%w: %w", ErrConfigNotStored, err)
	}
	s.logger.Debug().Int("width", width).Int("height", height).Str("last_file", s.filePath).Msg("config stored")
	return nil
}

// Exit offers to save pending changes, then closes the session.
// It returns ErrCancelled when the user backs out of the save, in which
// case the application must keep running.
func (s *Session) Exit(p Prompter) error {
	if err := s.resolveUnsaved(p); err != nil {
		return err
	}
	return s.Close()
}

func (s *Session) writeTo(path string) error {
	if err := s.files.WriteText(path, s.currentContent); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("failed to save file")
		return &IOError{Op: "save", Path: path, Err: err}
	}
	s.savedContent = s.currentContent
	s.logger.Debug().Str("path", path).Int("bytes", len(s.currentContent)).Msg("file saved")
	return nil
}

// resolveUnsaved runs the unsaved-changes prompt. A cancelled or failed
// save aborts the caller's operation.
func (s *Session) resolveUnsaved(p Prompter) error {
	if s.IsSaved() {
		return nil
	}
	save, err := p.ConfirmSave()
	if err != nil {
		return err
	}
	if !save {
		return nil
	}
	return s.save(p)
}

func ignoreCancel(err error) error {
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	return err
}
