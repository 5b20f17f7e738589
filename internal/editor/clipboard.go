package editor

import "sort"

// PasteOffset is added to both axes of every pasted clone.
const PasteOffset = 20.0

// Copy puts the selected elements on the in-memory clipboard. With nothing
// selected the clipboard keeps its previous contents.
func (e *Editor) Copy() int {
	selected := e.SelectedElements()
	if len(selected) == 0 {
		return 0
	}
	e.clipboard = selected
	return len(selected)
}

// Clipboard returns a copy of the clipboard contents.
func (e *Editor) Clipboard() []Element {
	return cloneElements(e.clipboard)
}

// Paste clones the clipboard with fresh ids, offset by PasteOffset, stacked
// above every existing element. The clones become the selection and the
// result is committed.
func (e *Editor) Paste() []Element {
	if len(e.clipboard) == 0 {
		return nil
	}

	// Clones keep their relative paint order above the current maximum.
	order := make([]int, len(e.clipboard))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return e.clipboard[order[a]].ZIndex < e.clipboard[order[b]].ZIndex
	})
	base := e.store.MaxZ()
	clones := make([]Element, len(e.clipboard))
	for rank, i := range order {
		el := e.clipboard[i]
		el.X += PasteOffset
		el.Y += PasteOffset
		el.ZIndex = base + 1 + rank
		clones[i] = el
	}

	added := e.store.Add(clones...)
	ids := make([]string, len(added))
	for i, el := range added {
		ids[i] = el.ID
	}
	e.selection.Set(ids)
	e.commit("paste")
	return added
}
