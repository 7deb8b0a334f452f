package blocnote

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/sokinpui/blocnote/cli"
	"github.com/sokinpui/blocnote/internal/clipboard"
	"github.com/sokinpui/blocnote/internal/fs"
	"github.com/sokinpui/blocnote/internal/logging"
	"github.com/sokinpui/blocnote/internal/session"
	"github.com/sokinpui/blocnote/internal/state"
	"github.com/sokinpui/blocnote/model"
)

// Clipboard reads and writes clipboard text.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Window holds the current size of the editor window.
type Window struct {
	geometry model.Geometry
}

// Resize records a new window size.
func (w *Window) Resize(width, height int) {
	w.geometry = model.Geometry{Width: width, Height: height}
}

// Size returns the current window size.
func (w *Window) Size() (int, int) {
	return w.geometry.Width, w.geometry.Height
}

// App orchestrates the editor: the document session and its collaborators.
type App struct {
	cfg          *cli.Config
	logger       zerolog.Logger
	logCloser    io.Closer
	stateManager *state.Manager
	pathResolver *fs.PathResolver
	clipboard    Clipboard
	window       *Window
	session      *session.Session
	warnings     []string
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// Option customizes an App built by New.
type Option func(*options)

type options struct {
	clipboard Clipboard
	maxLines  int
}

// WithClipboard replaces the system clipboard.
func WithClipboard(cb Clipboard) Option {
	return func(o *options) {
		o.clipboard = cb
	}
}

// WithMaxLines refuses to open files longer than n lines, the capacity of
// the text buffer the document is edited in.
func WithMaxLines(n int) Option {
	return func(o *options) {
		o.maxLines = n
	}
}

// New creates a new App instance.
func New(cfg *cli.Config, opts ...Option) (*App, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger, logCloser, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cb := o.clipboard
	if cb == nil {
		if provider := clipboard.New(); provider.Available() {
			cb = provider
		} else {
			logger.Warn().Msg("no system clipboard, using in-process clipboard")
			cb = &clipboard.Memory{}
		}
	}

	app := newApp(cfg, logger, logCloser, cb)
	app.session.SetMaxLines(o.maxLines)
	return app, nil
}

func newApp(cfg *cli.Config, logger zerolog.Logger, logCloser io.Closer, cb Clipboard) *App {
	stateManager := state.New(cfg.ConfigPath)
	window := &Window{}
	return &App{
		cfg:          cfg,
		logger:       logger,
		logCloser:    logCloser,
		stateManager: stateManager,
		pathResolver: fs.NewPathResolver(""),
		clipboard:    cb,
		window:       window,
		session:      session.New(fs.NewStore(), stateManager, window, logger),
	}
}

// Session returns the document session.
func (a *App) Session() *session.Session { return a.session }

// Clipboard returns the clipboard used for cut, copy and paste.
func (a *App) Clipboard() Clipboard { return a.clipboard }

// Window returns the window whose size is stored on exit.
func (a *App) Window() *Window { return a.window }

// Logger returns the application logger.
func (a *App) Logger() zerolog.Logger { return a.logger }

// ReadOnly reports whether editing starts disabled.
func (a *App) ReadOnly() bool { return a.cfg.ReadOnly }

// ResolvePath turns user input from a path prompt into an absolute path.
func (a *App) ResolvePath(path string) string {
	return a.pathResolver.Resolve(path)
}

// Start opens the file given on the command line, or reopens the last
// file recorded in the settings. A remembered file that no longer exists
// is skipped silently.
func (a *App) Start() (err error) {
	// Centralized panic recovery to provide stack traces for unexpected errors.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	path := a.cfg.File
	restoring := false
	if path == "" && !a.cfg.NoRestore {
		settings, loadErr := a.stateManager.Load()
		if loadErr != nil {
			a.logger.Warn().Err(loadErr).Msg("ignoring unreadable settings")
			return nil
		}
		path = settings.LastFilePath()
		restoring = true
	}
	if path == "" {
		return nil
	}

	if err := a.session.Load(a.ResolvePath(path)); err != nil {
		if restoring && errors.Is(err, os.ErrNotExist) {
			a.logger.Info().Str("path", path).Msg("last file is gone, starting untitled")
			return nil
		}
		return err
	}
	return nil
}

// Exit runs the session exit. A settings write failure does not keep the
// application open; it is recorded as a warning for the exit summary.
func (a *App) Exit(p session.Prompter) error {
	err := a.session.Exit(p)
	if errors.Is(err, session.ErrConfigNotStored) {
		a.warnings = append(a.warnings, err.Error())
		return nil
	}
	return err
}

// Summary describes the session state at shutdown.
func (a *App) Summary() model.Summary {
	return model.Summary{
		LastFile: a.session.FilePath(),
		Saved:    a.session.IsSaved(),
		Warnings: a.warnings,
	}
}

// Close releases the logger.
func (a *App) Close() error {
	return a.logCloser.Close()
}
