package editor

import (
	"math"
	"sort"
)

// Edge names an alignment target.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeCenter
	EdgeRight
	EdgeTop
	EdgeMiddle
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeCenter:
		return "center"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeMiddle:
		return "middle"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Axis names a distribution direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// The transforms below never modify their input; each returns a new
// collection for the store to adopt.

// Translate moves every targeted element by (dx, dy).
func Translate(els []Element, ids []string, dx, dy float64) []Element {
	set := idSet(ids)
	out := cloneElements(els)
	for i := range out {
		if set[out[i].ID] {
			out[i].X += dx
			out[i].Y += dy
		}
	}
	return out
}

// Resize sets the element's size to base plus delta, anchored at its
// top-left corner and floored at MinSize.
func Resize(els []Element, id string, baseW, baseH, dw, dh float64) []Element {
	out := cloneElements(els)
	for i := range out {
		if out[i].ID == id {
			out[i].W = math.Max(MinSize, baseW+dw)
			out[i].H = math.Max(MinSize, baseH+dh)
		}
	}
	return out
}

// Align lines up the targets on a shared edge or midpoint. It needs at
// least two targets present in els.
func Align(els []Element, ids []string, edge Edge) []Element {
	targets := pick(els, ids)
	if len(targets) < 2 {
		return cloneElements(els)
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, el := range targets {
		minX = math.Min(minX, el.X)
		maxX = math.Max(maxX, el.Right())
		minY = math.Min(minY, el.Y)
		maxY = math.Max(maxY, el.Bottom())
	}

	var ref float64
	switch edge {
	case EdgeLeft:
		ref = minX
	case EdgeCenter:
		ref = (minX + maxX) / 2
	case EdgeRight:
		ref = maxX
	case EdgeTop:
		ref = minY
	case EdgeMiddle:
		ref = (minY + maxY) / 2
	case EdgeBottom:
		ref = maxY
	default:
		return cloneElements(els)
	}

	set := idSet(ids)
	out := cloneElements(els)
	for i := range out {
		el := &out[i]
		if !set[el.ID] {
			continue
		}
		switch edge {
		case EdgeLeft:
			el.X = ref
		case EdgeCenter:
			el.X = ref - el.W/2
		case EdgeRight:
			el.X = ref - el.W
		case EdgeTop:
			el.Y = ref
		case EdgeMiddle:
			el.Y = ref - el.H/2
		case EdgeBottom:
			el.Y = ref - el.H
		}
	}
	return out
}

// Distribute spaces the targets' leading edges at an equal pitch between the
// first and last target along axis. Gaps are not equalized when sizes
// differ. It needs at least three targets present in els.
func Distribute(els []Element, ids []string, axis Axis) []Element {
	targets := pick(els, ids)
	if len(targets) < 3 {
		return cloneElements(els)
	}

	lead := func(el Element) float64 {
		if axis == Vertical {
			return el.Y
		}
		return el.X
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return lead(targets[i]) < lead(targets[j])
	})

	start := lead(targets[0])
	step := (lead(targets[len(targets)-1]) - start) / float64(len(targets)-1)
	pos := make(map[string]float64, len(targets))
	for i, el := range targets {
		pos[el.ID] = start + step*float64(i)
	}

	out := cloneElements(els)
	for i := range out {
		p, ok := pos[out[i].ID]
		if !ok {
			continue
		}
		if axis == Vertical {
			out[i].Y = p
		} else {
			out[i].X = p
		}
	}
	return out
}

// pick returns the targeted elements in collection order.
func pick(els []Element, ids []string) []Element {
	set := idSet(ids)
	var out []Element
	for _, el := range els {
		if set[el.ID] {
			out = append(out, el)
		}
	}
	return out
}

// Bounds returns the bounding rect of the given elements.
func Bounds(els []Element) (Rect, bool) {
	if len(els) == 0 {
		return Rect{}, false
	}
	r := Rect{X1: math.Inf(1), Y1: math.Inf(1), X2: math.Inf(-1), Y2: math.Inf(-1)}
	for _, el := range els {
		r.X1 = math.Min(r.X1, el.X)
		r.Y1 = math.Min(r.Y1, el.Y)
		r.X2 = math.Max(r.X2, el.Right())
		r.Y2 = math.Max(r.Y2, el.Bottom())
	}
	return r, true
}
