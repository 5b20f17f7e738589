package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistorySeeded(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Index())
	assert.Empty(t, h.Current())

	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistoryZeroValueSeedsOnUse(t *testing.T) {
	var h History
	h.Commit([]Element{{ID: "a"}})
	assert.Equal(t, 2, h.Len())

	els, ok := h.Undo()
	assert.True(t, ok)
	assert.Empty(t, els)
}

func TestHistorySnapshotsAreCopies(t *testing.T) {
	h := NewHistory()
	els := []Element{{ID: "a", X: 1}}
	h.Commit(els)
	els[0].X = 50

	assert.Equal(t, 1.0, h.Current()[0].X)
	cur := h.Current()
	cur[0].X = 70
	assert.Equal(t, 1.0, h.Current()[0].X)
}

func TestHistoryBranching(t *testing.T) {
	h := NewHistory()
	h.Commit([]Element{{ID: "a"}})
	h.Commit([]Element{{ID: "a"}, {ID: "b"}})
	h.Commit([]Element{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	h.Undo()
	h.Undo()
	assert.Equal(t, 1, h.Index())
	assert.True(t, h.CanRedo())

	h.Commit([]Element{{ID: "z"}})
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Index())
	assert.False(t, h.CanRedo())
	assert.Equal(t, "z", h.Current()[0].ID)
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory()
	h.Commit([]Element{{ID: "a"}})
	h.Reset([]Element{{ID: "b"}})
	assert.Equal(t, 1, h.Len())
	assert.False(t, h.CanUndo())
	assert.Equal(t, "b", h.Current()[0].ID)
}
