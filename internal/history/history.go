package history

// DefaultLimit is the number of snapshots kept when no limit is given.
const DefaultLimit = 200

// History is a linear undo/redo history of buffer snapshots.
// Recording a new snapshot after an undo discards the redo branch.
type History struct {
	entries      []string
	currentIndex int
	limit        int
}

// New creates a History seeded with initial as its only snapshot.
func New(initial string, limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{
		entries:      []string{initial},
		currentIndex: 0,
		limit:        limit,
	}
}

// Reset drops every snapshot and starts over from initial.
func (h *History) Reset(initial string) {
	h.entries = []string{initial}
	h.currentIndex = 0
}

// Current returns the snapshot the history points at.
func (h *History) Current() string {
	return h.entries[h.currentIndex]
}

// Record adds a snapshot. Recording the current snapshot again is a no-op.
func (h *History) Record(text string) {
	if text == h.Current() {
		return
	}
	if h.currentIndex < len(h.entries)-1 {
		h.entries = h.entries[:h.currentIndex+1]
	}
	h.entries = append(h.entries, text)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.currentIndex = len(h.entries) - 1
}

// CanUndo reports whether an older snapshot exists.
func (h *History) CanUndo() bool {
	return h.currentIndex > 0
}

// CanRedo reports whether a newer snapshot exists.
func (h *History) CanRedo() bool {
	return h.currentIndex < len(h.entries)-1
}

// Undo moves back one snapshot and returns it.
func (h *History) Undo() (string, bool) {
	if !h.CanUndo() {
		return "", false
	}
	h.currentIndex--
	return h.entries[h.currentIndex], true
}

// Redo moves forward one snapshot and returns it.
func (h *History) Redo() (string, bool) {
	if !h.CanRedo() {
		return "", false
	}
	h.currentIndex++
	return h.entries[h.currentIndex], true
}
