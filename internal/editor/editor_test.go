package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("el-%d", n)
	}
}

func newTestEditor() *Editor {
	return New(WithIDGenerator(seqIDs()))
}

func box(w, h float64) Template {
	return Template{Kind: KindShape, Label: "Box", Width: w, Height: h}
}

func TestPlaceCommitsAndSelects(t *testing.T) {
	ed := newTestEditor()
	a := ed.Place(box(100, 50), 0, 0)

	assert.Equal(t, "el-1", a.ID)
	assert.Equal(t, 1, a.ZIndex)
	assert.Equal(t, []string{a.ID}, ed.Selected())
	assert.Equal(t, 2, ed.History().Len())
	assert.Equal(t, 1, ed.History().Index())
}

func TestDropCentersOnPoint(t *testing.T) {
	ed := newTestEditor()
	el := ed.Drop(box(100, 40), 200, 100)
	assert.Equal(t, 150.0, el.X)
	assert.Equal(t, 80.0, el.Y)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	ed := newTestEditor()
	ed.Place(box(100, 50), 0, 0)
	ed.Place(box(100, 50), 200, 0)
	ed.SelectAll()
	ed.Align(EdgeTop)
	final := ed.Elements()

	for i := 0; i < 3; i++ {
		ed.Undo()
	}
	assert.Empty(t, ed.Elements())
	assert.False(t, ed.CanUndo())

	ed.Undo()
	assert.Empty(t, ed.Elements(), "undo at index 0 is a no-op")

	for i := 0; i < 3; i++ {
		ed.Redo()
	}
	assert.Equal(t, final, ed.Elements())
	assert.False(t, ed.CanRedo())
}

func TestCommitAfterUndoDropsRedoTail(t *testing.T) {
	ed := newTestEditor()
	ed.Place(box(10, 10), 0, 0)
	ed.Place(box(10, 10), 50, 0)
	ed.Undo()
	require.True(t, ed.CanRedo())

	ed.Place(box(10, 10), 100, 0)
	assert.False(t, ed.CanRedo())
	assert.Equal(t, 3, ed.History().Len())
	assert.Len(t, ed.Elements(), 2)
}

// Selection is not restorable through history: undo and redo always leave
// nothing selected.
func TestUndoRedoClearSelection(t *testing.T) {
	ed := newTestEditor()
	ed.Place(box(10, 10), 0, 0)
	ed.Place(box(10, 10), 50, 0)
	ed.SelectAll()
	require.Len(t, ed.Selected(), 2)

	ed.Undo()
	assert.Empty(t, ed.Selected())

	ed.SelectAll()
	ed.Redo()
	assert.Empty(t, ed.Selected())
}

func TestDeleteRemovesCommitsAndClears(t *testing.T) {
	ed := newTestEditor()
	a := ed.Place(box(10, 10), 0, 0)
	ed.Place(box(10, 10), 50, 0)
	ed.ClearSelection()
	ed.Select(a.ID, false)

	ed.Delete()
	assert.Len(t, ed.Elements(), 1)
	assert.Empty(t, ed.Selected())
	assert.Equal(t, 3, ed.History().Index())

	ed.Delete()
	assert.Equal(t, 3, ed.History().Index(), "delete with empty selection does not commit")
}

func TestSelectStaleIDIsIgnored(t *testing.T) {
	ed := newTestEditor()
	ed.Select("missing", false)
	assert.Empty(t, ed.Selected())
}

func TestSelectedPrunesRemovedIDs(t *testing.T) {
	ed := newTestEditor()
	a := ed.Place(box(10, 10), 0, 0)
	b := ed.Place(box(10, 10), 50, 0)
	ed.SelectAll()

	ed.store.Remove([]string{a.ID})
	assert.Equal(t, []string{b.ID}, ed.Selected())
}

func TestEditCommitsOnce(t *testing.T) {
	ed := newTestEditor()
	ed.Place(Template{Kind: KindText, Width: 100, Height: 20, Content: "a"}, 0, 0)
	before := ed.History().Len()

	ed.Edit(Patch{Content: Ptr("ab")})
	ed.Edit(Patch{Content: Ptr("abc")})
	assert.Equal(t, before, ed.History().Len(), "live edits are not committed")

	ed.CommitEdit()
	assert.Equal(t, before+1, ed.History().Len())
	ed.CommitEdit()
	assert.Equal(t, before+1, ed.History().Len(), "unchanged state is not committed twice")
}

func TestAlignAndDistributeCardinality(t *testing.T) {
	ed := newTestEditor()
	ed.Place(box(10, 10), 0, 5)
	idx := ed.History().Index()

	ed.Align(EdgeTop)
	ed.Distribute(Horizontal)
	assert.Equal(t, idx, ed.History().Index())

	ed.Place(box(10, 10), 40, 0)
	ed.SelectAll()
	idx = ed.History().Index()
	ed.Distribute(Horizontal)
	assert.Equal(t, idx, ed.History().Index(), "distribute needs three")
	ed.Align(EdgeTop)
	assert.Equal(t, idx+1, ed.History().Index())
}

func TestSurfacePresetDoesNotTouchElements(t *testing.T) {
	ed := newTestEditor()
	ed.Place(box(10, 10), 0, 0)
	els := ed.Elements()
	idx := ed.History().Index()

	phone, ok := PresetByName("Phone")
	require.True(t, ok)
	ed.SetSurface(phone)

	assert.Equal(t, 375.0, ed.Surface().W)
	assert.Equal(t, els, ed.Elements())
	assert.Equal(t, idx, ed.History().Index())
}

func TestScenarioOverlapMarqueeAlignDistribute(t *testing.T) {
	ed := newTestEditor()
	a := ed.Place(box(100, 50), 0, 0)
	b := ed.Place(box(100, 50), 50, 0)

	ed.MarqueeSelect(RectFrom(10, 10, 60, 40), false)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ed.Selected())

	ed.Align(EdgeTop)
	for _, el := range ed.Elements() {
		assert.Equal(t, 0.0, el.Y)
	}

	ed2 := newTestEditor()
	ed2.Place(box(20, 20), 0, 0)
	ed2.Place(box(20, 20), 50, 0)
	ed2.Place(box(20, 20), 120, 0)
	ed2.SelectAll()
	ed2.Distribute(Horizontal)
	var xs []float64
	for _, el := range ed2.Elements() {
		xs = append(xs, el.X)
	}
	assert.Equal(t, []float64{0, 60, 120}, xs)
}
