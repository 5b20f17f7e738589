package editor

// GestureKind identifies which interaction is in progress.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureMove
	GestureResize
	GestureMarquee
)

func (g GestureKind) String() string {
	switch g {
	case GestureMove:
		return "move"
	case GestureResize:
		return "resize"
	case GestureMarquee:
		return "marquee"
	default:
		return "none"
	}
}

// Every gesture is Idle until press and Idle again after release. The
// listener handle taken on press is released on every way out of Active.

// MoveGesture drags the whole selection as a rigid body. Deltas are taken
// from the previous sample.
type MoveGesture struct {
	ed     *Editor
	active bool
	lastX  float64
	lastY  float64
	handle Handle
}

func (g *MoveGesture) Active() bool { return g.active }

// Press selects id (keeping an existing group) and starts the drag.
func (g *MoveGesture) Press(id string, ev PointerEvent) {
	if g.active {
		return
	}
	g.ed.selection.Select(id, ev.Additive)
	g.lastX, g.lastY = ev.X, ev.Y
	g.active = true
	g.handle = g.ed.pointer.Listen(g.move, g.release)
}

func (g *MoveGesture) move(ev PointerEvent) {
	dx, dy := ev.X-g.lastX, ev.Y-g.lastY
	g.lastX, g.lastY = ev.X, ev.Y
	if dx == 0 && dy == 0 {
		return
	}
	ids := g.ed.Selected()
	if len(ids) == 0 {
		return
	}
	g.ed.store.Replace(Translate(g.ed.store.elements, ids, dx, dy))
}

func (g *MoveGesture) release(ev PointerEvent) {
	defer g.finish()
	g.move(ev)
}

func (g *MoveGesture) finish() {
	g.handle.Release()
	g.active = false
	g.ed.commitIfChanged("move")
}

// ResizeGesture resizes one selected element from its bottom-right handle.
// Deltas are taken from the original press point.
type ResizeGesture struct {
	ed     *Editor
	active bool
	id     string
	startX float64
	startY float64
	baseW  float64
	baseH  float64
	handle Handle
}

func (g *ResizeGesture) Active() bool { return g.active }

// Target returns the id being resized.
func (g *ResizeGesture) Target() string { return g.id }

// Press starts a resize of id. It does nothing if id is gone.
func (g *ResizeGesture) Press(id string, ev PointerEvent) {
	if g.active {
		return
	}
	el, ok := g.ed.store.Get(id)
	if !ok {
		return
	}
	g.id = id
	g.startX, g.startY = ev.X, ev.Y
	g.baseW, g.baseH = el.W, el.H
	g.active = true
	g.handle = g.ed.pointer.Listen(g.move, g.release)
}

func (g *ResizeGesture) move(ev PointerEvent) {
	if !g.ed.store.Has(g.id) {
		return
	}
	dw, dh := ev.X-g.startX, ev.Y-g.startY
	g.ed.store.Replace(Resize(g.ed.store.elements, g.id, g.baseW, g.baseH, dw, dh))
}

func (g *ResizeGesture) release(ev PointerEvent) {
	defer g.finish()
	g.move(ev)
}

func (g *ResizeGesture) finish() {
	g.handle.Release()
	g.active = false
	g.id = ""
	g.ed.commitIfChanged("resize")
}

// MarqueeGesture draws a selection box over the background. It never
// touches history.
type MarqueeGesture struct {
	ed       *Editor
	active   bool
	additive bool
	startX   float64
	startY   float64
	curX     float64
	curY     float64
	handle   Handle
}

func (g *MarqueeGesture) Active() bool { return g.active }

// Rect returns the box drawn so far.
func (g *MarqueeGesture) Rect() Rect {
	return RectFrom(g.startX, g.startY, g.curX, g.curY)
}

// Press starts a box. Without the additive modifier the selection is cleared
// right away.
func (g *MarqueeGesture) Press(ev PointerEvent) {
	if g.active {
		return
	}
	g.additive = ev.Additive
	if !g.additive {
		g.ed.selection.Clear()
	}
	g.startX, g.startY = ev.X, ev.Y
	g.curX, g.curY = ev.X, ev.Y
	g.active = true
	g.handle = g.ed.pointer.Listen(g.move, g.release)
}

func (g *MarqueeGesture) move(ev PointerEvent) {
	g.curX, g.curY = ev.X, ev.Y
}

func (g *MarqueeGesture) release(ev PointerEvent) {
	defer g.finish()
	g.move(ev)
}

func (g *MarqueeGesture) finish() {
	g.handle.Release()
	g.active = false
	g.ed.selection.MarqueeSelect(g.ed.store.elements, g.Rect(), g.additive)
}
