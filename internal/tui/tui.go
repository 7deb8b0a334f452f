package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/sokinpui/blocnote/blocnote"
	"github.com/sokinpui/blocnote/internal/about"
	"github.com/sokinpui/blocnote/internal/fs"
	"github.com/sokinpui/blocnote/internal/history"
	"github.com/sokinpui/blocnote/internal/session"
)

// MaxLines is the number of lines the text area can hold. Longer files
// are refused instead of being truncated.
const MaxLines = 10000

// convertedNotice is shown when a loaded file had line breaks or tabs the
// text area rewrites.
const convertedNotice = "Line breaks or tabs were converted; save to keep the converted text"

// chromeHeight is the number of rows used by the title, menu, status and help bars.
const chromeHeight = 4

type pendingOp struct {
	action   action
	prompter *replayPrompter
}

// --- Model ---
type Model struct {
	app     *blocnote.App
	session *session.Session
	logger  zerolog.Logger

	editor  textarea.Model
	help    help.Model
	keys    keyMap
	history *history.History
	menu    menuState
	dialog  dialogState
	pending *pendingOp

	width, height int
	lastValue     string
	readOnly      bool
	selectAll     bool

	font, background, foreground int

	status      string
	statusError bool
	quitting    bool
}

// New builds the editor window around app. startupErr, if any, is shown
// in the status line.
func New(app *blocnote.App, startupErr error) Model {
	ta := textarea.New()
	ta.Placeholder = ""
	ta.Prompt = ""
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	m := Model{
		app:      app,
		session:  app.Session(),
		logger:   app.Logger().With().Str("component", "tui").Logger(),
		editor:   ta,
		help:     help.New(),
		keys:     defaultKeyMap(),
		readOnly: app.ReadOnly(),
	}
	m.session.SetMaxLines(MaxLines)
	m.applyTextStyle()
	converted := m.loadEditor(m.session.Content())
	switch {
	case startupErr != nil:
		m.setError(startupErr)
	case converted:
		m.setInfo(convertedNotice)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Quitting reports whether the session exited and the program is stopping.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.dialog.kind == dialogOpen {
			var cmd tea.Cmd
			m.dialog.picker, cmd = m.dialog.picker.Update(tea.WindowSizeMsg{Width: msg.Width, Height: pickerHeight(msg.Height)})
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case m.dialog.active():
			return m.updateDialog(msg)
		case m.menu.open:
			return m.updateMenu(msg)
		}
		if a, ok := m.bindingAction(msg); ok {
			return m.dispatch(a)
		}
		return m.updateEditor(msg)
	}

	// Everything else (cursor blinks, directory listings) goes to the
	// focused widget.
	var cmd tea.Cmd
	switch m.dialog.kind {
	case dialogOpen:
		m.dialog.picker, cmd = m.dialog.picker.Update(msg)
	case dialogSaveAs:
		m.dialog.input, cmd = m.dialog.input.Update(msg)
	default:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.app.Window().Resize(width, height)
	m.editor.SetWidth(width)
	m.editor.SetHeight(max(height-chromeHeight, 1))
	m.help.Width = width
}

func (m Model) bindingAction(msg tea.KeyMsg) (action, bool) {
	bindings := []struct {
		binding key.Binding
		action  action
	}{
		{m.keys.New, actionNew},
		{m.keys.Open, actionOpen},
		{m.keys.Save, actionSave},
		{m.keys.SaveAs, actionSaveAs},
		{m.keys.Quit, actionQuit},
		{m.keys.Undo, actionUndo},
		{m.keys.Redo, actionRedo},
		{m.keys.Cut, actionCut},
		{m.keys.Copy, actionCopy},
		{m.keys.Paste, actionPaste},
		{m.keys.SelectAll, actionSelectAll},
		{m.keys.ReadOnly, actionReadOnly},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action, true
		}
	}
	return 0, false
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Menu) {
		m.menu.toggle()
		return m, nil
	}
	if m.readOnly && !m.isNavigation(msg) {
		return m, nil
	}
	m.selectAll = false
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.syncContent()
	return m, cmd
}

func (m Model) isNavigation(msg tea.KeyMsg) bool {
	km := m.editor.KeyMap
	return key.Matches(msg,
		km.CharacterBackward, km.CharacterForward,
		km.WordBackward, km.WordForward,
		km.LineStart, km.LineEnd,
		km.LinePrevious, km.LineNext,
		km.InputBegin, km.InputEnd,
	)
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.menu.up()
	case "down", "j":
		m.menu.down()
	case "enter":
		a := m.menu.selected()
		m.menu.open = false
		return m.dispatch(a)
	case "esc", "f10", "q":
		m.menu.open = false
	}
	return m, nil
}

func (m Model) dispatch(a action) (tea.Model, tea.Cmd) {
	if a.isLifecycle() {
		m.pending = &pendingOp{action: a, prompter: newReplayPrompter()}
		return m.resume()
	}

	switch a {
	case actionUndo:
		if m.readOnly {
			m.setInfo("Document is read only")
		} else if text, ok := m.history.Undo(); ok {
			m.setEditorValue(text)
		}
	case actionRedo:
		if m.readOnly {
			m.setInfo("Document is read only")
		} else if text, ok := m.history.Redo(); ok {
			m.setEditorValue(text)
		}
	case actionCut:
		m.cut()
	case actionCopy:
		m.copy()
	case actionPaste:
		m.paste()
	case actionSelectAll:
		m.selectAll = true
		m.setInfo("All text selected")
	case actionReadOnly:
		m.readOnly = !m.readOnly
	case actionFont:
		m.dialog = newChoiceDialog(dialogFont, m.font)
	case actionBackground:
		m.dialog = newChoiceDialog(dialogBackground, m.background)
	case actionForeground:
		m.dialog = newChoiceDialog(dialogForeground, m.foreground)
	case actionAbout:
		m.showAbout(about.AppMarkdown)
	case actionAboutToolkit:
		m.showAbout(about.ToolkitMarkdown)
	}
	return m, nil
}

// resume runs the pending lifecycle operation with the answers collected
// so far. It either finishes the operation or opens the next dialog.
func (m Model) resume() (tea.Model, tea.Cmd) {
	op := m.pending
	if op == nil {
		return m, nil
	}

	var err error
	switch op.action {
	case actionNew:
		err = m.session.NewFile(op.prompter)
	case actionOpen:
		err = m.session.OpenFile(op.prompter)
	case actionSave:
		err = m.session.SaveFile(op.prompter)
	case actionSaveAs:
		err = m.session.SaveFileAs(op.prompter)
	case actionQuit:
		err = m.app.Exit(op.prompter)
	}

	var waiting *awaitingInputError
	if errors.As(err, &waiting) {
		return m.ask(waiting.q)
	}

	m.pending = nil
	switch {
	case errors.Is(err, session.ErrCancelled):
		return m, nil
	case err != nil:
		m.setError(err)
		return m, nil
	}

	switch op.action {
	case actionNew:
		m.loadEditor(m.session.Content())
	case actionOpen:
		if !op.prompter.cancelled() {
			if m.loadEditor(m.session.Content()) {
				m.setInfo(convertedNotice)
			} else {
				m.setInfo("Opened " + m.session.DisplayName())
			}
		}
	case actionSave, actionSaveAs:
		if !op.prompter.cancelled() {
			m.setInfo("Saved " + m.session.DisplayName())
		}
	case actionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) ask(q question) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch q {
	case questionConfirmSave:
		m.dialog = newConfirmDialog()
	case questionOpenPath:
		m.dialog, cmd = newOpenDialog(m.startDir(), m.width, m.height)
	case questionSavePath:
		m.dialog, cmd = newSaveAsDialog(m.session.FilePath())
	}
	return m, cmd
}

func (m Model) startDir() string {
	if path := m.session.FilePath(); path != "" {
		return filepath.Dir(path)
	}
	return m.app.ResolvePath(".")
}

// answer records the user's reply to the open dialog and resumes the operation.
func (m Model) answer(q question, a answer) (tea.Model, tea.Cmd) {
	m.dialog = dialogState{}
	if m.pending == nil {
		return m, nil
	}
	m.pending.prompter.answer(q, a)
	return m.resume()
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.dialog.kind {
	case dialogConfirmSave:
		switch msg.String() {
		case "left", "shift+tab", "h":
			m.dialog.move(-1)
		case "right", "tab", "l":
			m.dialog.move(1)
		case "y":
			return m.answer(questionConfirmSave, answer{yes: true})
		case "n":
			return m.answer(questionConfirmSave, answer{yes: false})
		case "esc":
			return m.answer(questionConfirmSave, answer{cancelled: true})
		case "enter":
			switch m.dialog.cursor {
			case confirmSave:
				return m.answer(questionConfirmSave, answer{yes: true})
			case confirmDiscard:
				return m.answer(questionConfirmSave, answer{yes: false})
			default:
				return m.answer(questionConfirmSave, answer{cancelled: true})
			}
		}
		return m, nil

	case dialogSaveAs:
		switch msg.String() {
		case "esc":
			return m.answer(questionSavePath, answer{cancelled: true})
		case "enter":
			value := strings.TrimSpace(m.dialog.input.Value())
			if value == "" {
				return m, nil
			}
			return m.answer(questionSavePath, answer{path: m.app.ResolvePath(value)})
		}
		var cmd tea.Cmd
		m.dialog.input, cmd = m.dialog.input.Update(msg)
		return m, cmd

	case dialogOpen:
		if msg.String() == "esc" {
			return m.answer(questionOpenPath, answer{cancelled: true})
		}
		var cmd tea.Cmd
		m.dialog.picker, cmd = m.dialog.picker.Update(msg)
		if ok, path := m.dialog.picker.DidSelectFile(msg); ok {
			return m.answer(questionOpenPath, answer{path: path})
		}
		return m, cmd

	case dialogFont, dialogBackground, dialogForeground:
		switch msg.String() {
		case "up", "k":
			m.dialog.move(-1)
		case "down", "j":
			m.dialog.move(1)
		case "enter":
			switch m.dialog.kind {
			case dialogFont:
				m.font = m.dialog.cursor
			case dialogBackground:
				m.background = m.dialog.cursor
			case dialogForeground:
				m.foreground = m.dialog.cursor
			}
			m.applyTextStyle()
			m.dialog = dialogState{}
		case "esc":
			m.dialog = dialogState{}
		}
		return m, nil
	}

	// About dialogs close on any key.
	m.dialog = dialogState{}
	return m, nil
}

func (m *Model) showAbout(markdown string) {
	width := min(max(m.width-10, 20), 60)
	body, err := about.Render(markdown, width)
	if err != nil {
		m.setError(err)
		return
	}
	m.dialog = newAboutDialog(body)
}

func (m *Model) applyTextStyle() {
	st := textStyle(m.font, m.background, m.foreground)
	m.editor.FocusedStyle.Text = st
	m.editor.FocusedStyle.CursorLine = st
	m.editor.BlurredStyle.Text = st
	m.editor.BlurredStyle.CursorLine = st
	// Focus re-points the textarea at the updated style.
	m.editor.Focus()
}

// loadEditor replaces the buffer after a new or opened document. The text
// area stores "\n" line breaks and expands tabs, so a document it cannot
// hold verbatim is mirrored back into the session as an edit, and
// loadEditor reports true.
func (m *Model) loadEditor(text string) bool {
	m.editor.SetValue(fs.NormalizeNewlines(text))
	m.lastValue = m.editor.Value()
	m.selectAll = false
	if m.history == nil {
		m.history = history.New(m.lastValue, history.DefaultLimit)
	} else {
		m.history.Reset(m.lastValue)
	}
	if m.lastValue == text {
		return false
	}
	m.logger.Warn().Str("path", m.session.FilePath()).Msg("buffer differs from loaded file")
	m.session.OnContentChanged(m.lastValue)
	return true
}

func (m *Model) setEditorValue(text string) {
	m.editor.SetValue(text)
	m.syncContent()
}

// syncContent mirrors an edit of the buffer into the session and history.
func (m *Model) syncContent() {
	value := m.editor.Value()
	if value == m.lastValue {
		return
	}
	m.lastValue = value
	m.selectAll = false
	m.session.OnContentChanged(value)
	m.history.Record(value)
}

func (m *Model) currentLine() (lines []string, index int) {
	lines = strings.Split(m.editor.Value(), "\n")
	index = m.editor.Line()
	if index >= len(lines) {
		index = len(lines) - 1
	}
	return lines, index
}

func (m *Model) copy() {
	text := m.editor.Value()
	if !m.selectAll {
		lines, i := m.currentLine()
		text = lines[i]
	}
	if err := m.app.Clipboard().Write(text); err != nil {
		m.setError(err)
		return
	}
	m.setInfo("Copied")
}

func (m *Model) cut() {
	if m.readOnly {
		m.setInfo("Document is read only")
		return
	}
	all := m.selectAll
	m.copy()
	if m.statusError {
		return
	}
	if all {
		m.setEditorValue("")
	} else {
		lines, i := m.currentLine()
		lines = append(lines[:i], lines[i+1:]...)
		m.setEditorValue(strings.Join(lines, "\n"))
	}
	m.setInfo("Cut")
}

func (m *Model) paste() {
	if m.readOnly {
		m.setInfo("Document is read only")
		return
	}
	text, err := m.app.Clipboard().Read()
	if err != nil {
		m.setError(err)
		return
	}
	if m.selectAll {
		m.selectAll = false
		m.setEditorValue(text)
		return
	}
	m.editor.InsertString(text)
	m.syncContent()
}

func (m *Model) setInfo(msg string) {
	m.status, m.statusError = msg, false
}

func (m *Model) setError(err error) {
	m.logger.Error().Err(err).Msg("operation failed")
	m.status, m.statusError = err.Error(), true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.session.Title()
	if m.readOnly {
		title += " [read only]"
	}

	body := m.editor.View()
	bodyHeight := max(m.height-chromeHeight, 1)
	switch {
	case m.dialog.active():
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.dialog.view())
	case m.menu.open:
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, m.menu.view(m.readOnly))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Width(m.width).Render(" "+title),
		menuBar(m.width),
		body,
		m.statusLine(),
		m.help.View(m.keys),
	)
}

func (m Model) statusLine() string {
	if m.status != "" {
		if m.statusError {
			return errorStyle.Render("Error: " + m.status)
		}
		return successStyle.Render(m.status)
	}
	info := m.editor.LineInfo()
	line := fmt.Sprintf("Ln %d, Col %d", m.editor.Line()+1, info.StartColumn+info.ColumnOffset+1)
	if m.selectAll {
		line += " • all selected"
	}
	return faintStyle.Render(line)
}
