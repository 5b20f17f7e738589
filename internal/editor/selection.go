package editor

import "math"

// Rect is an axis-aligned rectangle given by two corners in any order.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// RectFrom builds a normalized rect from two corner points.
func RectFrom(ax, ay, bx, by float64) Rect {
	return Rect{
		X1: math.Min(ax, bx),
		Y1: math.Min(ay, by),
		X2: math.Max(ax, bx),
		Y2: math.Max(ay, by),
	}
}

func (r Rect) Width() float64  { return r.X2 - r.X1 }
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// IsClick reports whether the rect is too small to count as a box-select.
func (r Rect) IsClick() bool {
	return r.Width() <= 2 && r.Height() <= 2
}

// Overlaps uses strict inequalities, so touching edges do not count.
func (r Rect) Overlaps(el Element) bool {
	return el.X < r.X2 && el.Right() > r.X1 && el.Y < r.Y2 && el.Bottom() > r.Y1
}

// Selection is the ordered set of active element ids.
type Selection struct {
	ids []string
}

// Select toggles id when additive. Otherwise it replaces the selection with
// id, unless id is already selected, in which case the group is kept so it
// can be dragged as a whole.
func (s *Selection) Select(id string, additive bool) {
	if additive {
		if s.Contains(id) {
			s.remove(id)
		} else {
			s.ids = append(s.ids, id)
		}
		return
	}
	if s.Contains(id) {
		return
	}
	s.ids = []string{id}
}

// SelectAll replaces the selection with ids.
func (s *Selection) SelectAll(ids []string) {
	s.Set(ids)
}

// Set replaces the selection, dropping duplicates.
func (s *Selection) Set(ids []string) {
	s.ids = dedupe(nil, ids)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id string) bool {
	for _, sel := range s.ids {
		if sel == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the selected ids in selection order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Selection) Len() int { return len(s.ids) }

// Prune drops ids that fail the keep test.
func (s *Selection) Prune(keep func(id string) bool) {
	kept := s.ids[:0]
	for _, id := range s.ids {
		if keep(id) {
			kept = append(kept, id)
		}
	}
	s.ids = kept
}

// MarqueeSelect selects every element overlapping r. A click-sized rect is a
// no-op. When additive the hits are unioned with the current selection.
func (s *Selection) MarqueeSelect(els []Element, r Rect, additive bool) {
	if r.IsClick() {
		return
	}
	var hits []string
	for _, el := range els {
		if r.Overlaps(el) {
			hits = append(hits, el.ID)
		}
	}
	if additive {
		s.ids = dedupe(s.ids, hits)
		return
	}
	s.ids = dedupe(nil, hits)
}

func (s *Selection) remove(id string) {
	s.Prune(func(other string) bool { return other != id })
}

func dedupe(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, id := range list {
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
