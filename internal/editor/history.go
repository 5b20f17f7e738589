package editor

// History is a linear stack of element snapshots with a cursor. Selection is
// never part of a snapshot.
type History struct {
	snapshots [][]Element
	index     int
}

// NewHistory returns a history seeded with the empty collection.
func NewHistory() *History {
	h := &History{}
	h.Seed()
	return h
}

// Seed pushes an empty snapshot when the stack is empty so undo can always
// land on a valid state.
func (h *History) Seed() {
	if len(h.snapshots) == 0 {
		h.snapshots = [][]Element{{}}
		h.index = 0
	}
}

// Commit discards everything after the cursor and appends a copy of els.
func (h *History) Commit(els []Element) {
	h.Seed()
	h.snapshots = h.snapshots[:h.index+1]
	h.snapshots = append(h.snapshots, cloneElements(els))
	h.index = len(h.snapshots) - 1
}

// Undo moves the cursor back and returns the snapshot now under it.
func (h *History) Undo() ([]Element, bool) {
	h.Seed()
	if h.index == 0 {
		return nil, false
	}
	h.index--
	return cloneElements(h.snapshots[h.index]), true
}

// Redo moves the cursor forward and returns the snapshot now under it.
func (h *History) Redo() ([]Element, bool) {
	if h.index >= len(h.snapshots)-1 {
		return nil, false
	}
	h.index++
	return cloneElements(h.snapshots[h.index]), true
}

// Reset replaces the whole stack with a single snapshot of els.
func (h *History) Reset(els []Element) {
	h.snapshots = [][]Element{cloneElements(els)}
	h.index = 0
}

// Current returns a copy of the snapshot under the cursor.
func (h *History) Current() []Element {
	h.Seed()
	return cloneElements(h.snapshots[h.index])
}

func (h *History) CanUndo() bool { return h.index > 0 }

func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }

func (h *History) Len() int { return len(h.snapshots) }

func (h *History) Index() int { return h.index }
