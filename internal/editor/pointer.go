package editor

// PointerEvent is one pointer sample in surface coordinates. Additive is set
// while the multi-select modifier is held.
type PointerEvent struct {
	X, Y     float64
	Additive bool
}

type pointerListener struct {
	id uint32
	fn func(PointerEvent)
}

// Pointer holds the global move and release listeners. A gesture acquires
// one pair on press and must release it when the gesture ends.
type Pointer struct {
	move    []pointerListener
	release []pointerListener
	nextID  uint32
}

// Handle releases a listener pair acquired with Listen.
type Handle struct {
	id uint32
	p  *Pointer
}

// Listen registers a move and a release listener and returns the handle
// that removes both.
func (p *Pointer) Listen(onMove, onRelease func(PointerEvent)) Handle {
	p.nextID++
	id := p.nextID
	p.move = append(p.move, pointerListener{id: id, fn: onMove})
	p.release = append(p.release, pointerListener{id: id, fn: onRelease})
	return Handle{id: id, p: p}
}

// Release unregisters the listener pair. Releasing twice, or releasing the
// zero Handle, does nothing.
func (h Handle) Release() {
	if h.p == nil {
		return
	}
	h.p.move = removeListener(h.p.move, h.id)
	h.p.release = removeListener(h.p.release, h.id)
}

// Move delivers a move sample to every listener in registration order.
func (p *Pointer) Move(ev PointerEvent) {
	for _, l := range append([]pointerListener(nil), p.move...) {
		l.fn(ev)
	}
}

// Up delivers a release to every listener. Listeners usually release
// themselves while handling it.
func (p *Pointer) Up(ev PointerEvent) {
	for _, l := range append([]pointerListener(nil), p.release...) {
		l.fn(ev)
	}
}

// Listeners returns the number of registered listener pairs.
func (p *Pointer) Listeners() int {
	return len(p.move)
}

func removeListener(s []pointerListener, id uint32) []pointerListener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerListener{}
			return s[:len(s)-1]
		}
	}
	return s
}
