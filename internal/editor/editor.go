// Package editor is the headless core of the canvas editor: the element
// store, history, selection, geometric transforms and pointer gestures.
//
// An Editor is not safe for concurrent use. All calls are expected to come
// from the single goroutine that receives input events.
package editor

import (
	"io"
	"log/slog"
	"slices"
)

// Editor owns every piece of mutable editor state. Front ends hold one
// Editor and call into it; nothing here is package-global.
type Editor struct {
	store     *Store
	history   *History
	selection *Selection
	pointer   *Pointer
	clipboard []Element
	surface   Surface
	handle    float64
	logger    *slog.Logger

	move    MoveGesture
	resize  ResizeGesture
	marquee MarqueeGesture
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger used for committing actions.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSurface sets the initial surface size.
func WithSurface(s Surface) Option {
	return func(e *Editor) { e.surface = s }
}

// WithHandleSize sets the side of the square resize handle hit region.
func WithHandleSize(size float64) Option {
	return func(e *Editor) {
		if size > 0 {
			e.handle = size
		}
	}
}

// WithIDGenerator replaces the uuid generator, mostly for tests.
func WithIDGenerator(gen func() string) Option {
	return func(e *Editor) {
		if gen != nil {
			e.store.newID = gen
		}
	}
}

// New builds an Editor with an empty store and a seeded history.
func New(opts ...Option) *Editor {
	e := &Editor{
		store:     NewStore(),
		history:   NewHistory(),
		selection: &Selection{},
		pointer:   &Pointer{},
		surface:   DefaultSurface,
		handle:    DefaultHandleSize,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.move.ed = e
	e.resize.ed = e
	e.marquee.ed = e
	return e
}

// DefaultHandleSize is the resize handle side in surface units.
const DefaultHandleSize = 8.0

// Elements returns a copy of the live collection.
func (e *Editor) Elements() []Element { return e.store.Elements() }

// Element returns one element by id.
func (e *Editor) Element(id string) (Element, bool) { return e.store.Get(id) }

// Len returns the number of elements.
func (e *Editor) Len() int { return e.store.Len() }

// Selected returns the selected ids, first dropping any that no longer exist.
func (e *Editor) Selected() []string {
	e.selection.Prune(e.store.Has)
	return e.selection.IDs()
}

// SelectedElements returns the selected elements in store order.
func (e *Editor) SelectedElements() []Element {
	return pick(e.store.elements, e.Selected())
}

// IsSelected reports whether id is currently selected.
func (e *Editor) IsSelected(id string) bool {
	return e.store.Has(id) && e.selection.Contains(id)
}

func (e *Editor) Surface() Surface { return e.surface }

// SetSurface changes the surface size. Elements are untouched.
func (e *Editor) SetSurface(s Surface) {
	e.surface = s
	e.logger.Debug("surface changed", "name", s.Name, "width", s.W, "height", s.H)
}

// Pointer exposes the listener registry, mainly so tests can check that
// gestures release what they acquire.
func (e *Editor) Pointer() *Pointer { return e.pointer }

func (e *Editor) History() *History { return e.history }

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Drop creates an element from tmpl centered on (x, y), selects it and
// commits.
func (e *Editor) Drop(tmpl Template, x, y float64) Element {
	w, h := floorSize(tmpl.Width), floorSize(tmpl.Height)
	el := e.store.Create(tmpl, x-w/2, y-h/2)
	e.selection.Set([]string{el.ID})
	e.commit("drop")
	return el
}

// Place creates an element from tmpl with its top-left corner at (x, y),
// selects it and commits.
func (e *Editor) Place(tmpl Template, x, y float64) Element {
	el := e.store.Create(tmpl, x, y)
	e.selection.Set([]string{el.ID})
	e.commit("place")
	return el
}

// Select applies click selection rules to id. Stale ids are ignored.
func (e *Editor) Select(id string, additive bool) {
	if !e.store.Has(id) {
		return
	}
	e.selection.Select(id, additive)
}

// SelectAll selects every element.
func (e *Editor) SelectAll() {
	e.selection.SelectAll(e.store.IDs())
}

// ClearSelection deselects everything.
func (e *Editor) ClearSelection() {
	e.selection.Clear()
}

// MarqueeSelect selects elements overlapping r.
func (e *Editor) MarqueeSelect(r Rect, additive bool) {
	e.selection.MarqueeSelect(e.store.elements, r, additive)
}

// Delete removes the selection, commits and clears the selection.
func (e *Editor) Delete() {
	ids := e.Selected()
	if len(ids) == 0 {
		return
	}
	e.store.Remove(ids)
	e.commit("delete")
	e.selection.Clear()
}

// Align aligns the selection on edge and commits. Fewer than two selected
// elements is a no-op.
func (e *Editor) Align(edge Edge) {
	ids := e.Selected()
	if len(ids) < 2 {
		return
	}
	e.store.Replace(Align(e.store.elements, ids, edge))
	e.commit("align " + edge.String())
}

// Distribute spaces the selection along axis and commits. Fewer than three
// selected elements is a no-op.
func (e *Editor) Distribute(axis Axis) {
	ids := e.Selected()
	if len(ids) < 3 {
		return
	}
	e.store.Replace(Distribute(e.store.elements, ids, axis))
	e.commit("distribute " + axis.String())
}

// Edit applies p to every selected element without committing. Call
// CommitEdit once the edit is complete.
func (e *Editor) Edit(p Patch) {
	e.store.UpdateMany(e.Selected(), p)
}

// EditElement applies p to one element without committing.
func (e *Editor) EditElement(id string, p Patch) {
	e.store.Update(id, p)
}

// CommitEdit snapshots the store if live edits changed it.
func (e *Editor) CommitEdit() {
	e.commitIfChanged("edit")
}

// Undo restores the previous snapshot, then clears the selection.
func (e *Editor) Undo() {
	els, ok := e.history.Undo()
	if !ok {
		return
	}
	e.store.Replace(els)
	e.selection.Clear()
	e.logger.Debug("undo", "index", e.history.Index())
}

// Redo restores the next snapshot, then clears the selection.
func (e *Editor) Redo() {
	els, ok := e.history.Redo()
	if !ok {
		return
	}
	e.store.Replace(els)
	e.selection.Clear()
	e.logger.Debug("redo", "index", e.history.Index())
}

// Load adopts els as a fresh session: history restarts at els and the
// selection is cleared.
func (e *Editor) Load(els []Element, s Surface) {
	e.cancelGestures()
	e.store.Replace(els)
	e.history.Reset(els)
	e.selection.Clear()
	e.surface = s
	e.logger.Debug("loaded", "elements", len(els))
}

// Press routes a pointer press: the resize handle of a selected element
// wins over the element body, which wins over the background.
func (e *Editor) Press(ev PointerEvent) GestureKind {
	e.cancelGestures()
	if id, ok := e.HandleAt(ev.X, ev.Y); ok {
		e.resize.Press(id, ev)
		return GestureResize
	}
	if el, ok := e.store.HitTest(ev.X, ev.Y); ok {
		e.move.Press(el.ID, ev)
		return GestureMove
	}
	e.marquee.Press(ev)
	return GestureMarquee
}

// Move delivers a pointer move to the active gesture, if any.
func (e *Editor) Move(ev PointerEvent) {
	e.pointer.Move(ev)
}

// Release ends the active gesture, if any.
func (e *Editor) Release(ev PointerEvent) {
	e.pointer.Up(ev)
}

// Gesture reports which gesture is active.
func (e *Editor) Gesture() GestureKind {
	switch {
	case e.resize.Active():
		return GestureResize
	case e.move.Active():
		return GestureMove
	case e.marquee.Active():
		return GestureMarquee
	default:
		return GestureNone
	}
}

// Marquee returns the box being drawn while a marquee gesture is active.
func (e *Editor) Marquee() (Rect, bool) {
	if !e.marquee.Active() {
		return Rect{}, false
	}
	return e.marquee.Rect(), true
}

// HandleAt returns the selected element whose resize handle covers (x, y).
func (e *Editor) HandleAt(x, y float64) (string, bool) {
	id, found, bestZ := "", false, 0
	for _, el := range e.store.elements {
		if !e.selection.Contains(el.ID) {
			continue
		}
		if x < el.Right()-e.handle || x > el.Right() || y < el.Bottom()-e.handle || y > el.Bottom() {
			continue
		}
		if !found || el.ZIndex >= bestZ {
			id, found, bestZ = el.ID, true, el.ZIndex
		}
	}
	return id, found
}

// cancelGestures finishes any gesture whose release never arrived, so its
// listeners are not leaked into the next one.
func (e *Editor) cancelGestures() {
	if e.pointer.Listeners() == 0 {
		return
	}
	e.logger.Debug("releasing stale gesture", "gesture", e.Gesture().String())
	switch {
	case e.resize.Active():
		e.resize.finish()
	case e.move.Active():
		e.move.finish()
	case e.marquee.Active():
		e.marquee.finish()
	}
}

func (e *Editor) commit(action string) {
	e.history.Commit(e.store.elements)
	e.logger.Debug("commit", "action", action, "elements", e.store.Len(), "index", e.history.Index())
}

func (e *Editor) commitIfChanged(action string) {
	if slices.Equal(e.store.elements, e.history.Current()) {
		return
	}
	e.commit(action)
}
