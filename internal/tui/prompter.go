package tui

import (
	"fmt"

	"github.com/sokinpui/blocnote/internal/session"
)

type question int

const (
	questionConfirmSave question = iota
	questionOpenPath
	questionSavePath
)

// awaitingInputError stops a session operation until the user answers q.
type awaitingInputError struct {
	q question
}

func (e *awaitingInputError) Error() string {
	return fmt.Sprintf("waiting for answer to question %d", e.q)
}

type answer struct {
	given     bool
	cancelled bool
	yes       bool
	path      string
}

// replayPrompter answers session questions from dialogs the user already
// completed. An unanswered question suspends the operation; it is run
// again from the start once the dialog closes. Session operations ask
// every question before touching any state, so the replay is safe.
type replayPrompter struct {
	answers map[question]answer
}

func newReplayPrompter() *replayPrompter {
	return &replayPrompter{answers: make(map[question]answer)}
}

func (p *replayPrompter) answer(q question, a answer) {
	a.given = true
	p.answers[q] = a
}

func (p *replayPrompter) lookup(q question) (answer, error) {
	a, ok := p.answers[q]
	if !ok || !a.given {
		return answer{}, &awaitingInputError{q: q}
	}
	if a.cancelled {
		return answer{}, session.ErrCancelled
	}
	return a, nil
}

func (p *replayPrompter) ConfirmSave() (bool, error) {
	a, err := p.lookup(questionConfirmSave)
	return a.yes, err
}

func (p *replayPrompter) OpenPath() (string, error) {
	a, err := p.lookup(questionOpenPath)
	return a.path, err
}

func (p *replayPrompter) SavePath() (string, error) {
	a, err := p.lookup(questionSavePath)
	return a.path, err
}

// cancelled reports whether the user dismissed any dialog of the operation.
func (p *replayPrompter) cancelled() bool {
	for _, a := range p.answers {
		if a.cancelled {
			return true
		}
	}
	return false
}
