package editor

import "github.com/google/uuid"

// Store maps element identity to element state. It keeps insertion order,
// which breaks zIndex ties when painting.
type Store struct {
	elements []Element
	newID    func() string
}

// NewStore creates an empty store that assigns uuid identifiers.
func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Create builds an element from tmpl at (x, y) and appends it.
func (s *Store) Create(tmpl Template, x, y float64) Element {
	el := Element{
		ID:      s.newID(),
		Kind:    tmpl.Kind,
		Name:    tmpl.Label,
		X:       x,
		Y:       y,
		W:       floorSize(tmpl.Width),
		H:       floorSize(tmpl.Height),
		ZIndex:  len(s.elements) + 1,
		Content: tmpl.Content,
		Style:   tmpl.Style.Apply(DefaultStyle()),
		IconRef: tmpl.IconRef,
	}
	s.elements = append(s.elements, el)
	return el
}

// Add appends fully formed elements, giving each a fresh id.
func (s *Store) Add(els ...Element) []Element {
	added := make([]Element, 0, len(els))
	for _, el := range els {
		el.ID = s.newID()
		el.W = floorSize(el.W)
		el.H = floorSize(el.H)
		s.elements = append(s.elements, el)
		added = append(added, el)
	}
	return added
}

// Get returns the element with the given id.
func (s *Store) Get(id string) (Element, bool) {
	if i := s.index(id); i >= 0 {
		return s.elements[i], true
	}
	return Element{}, false
}

// Has reports whether id is present.
func (s *Store) Has(id string) bool {
	return s.index(id) >= 0
}

// Update merges p into the element with the given id. Unknown ids are ignored.
func (s *Store) Update(id string, p Patch) {
	if i := s.index(id); i >= 0 {
		s.elements[i] = p.Apply(s.elements[i])
	}
}

// UpdateMany merges p into every element whose id is listed.
func (s *Store) UpdateMany(ids []string, p Patch) {
	set := idSet(ids)
	for i := range s.elements {
		if set[s.elements[i].ID] {
			s.elements[i] = p.Apply(s.elements[i])
		}
	}
}

// Remove drops every element whose id is listed and reports how many went.
func (s *Store) Remove(ids []string) int {
	set := idSet(ids)
	kept := s.elements[:0]
	removed := 0
	for _, el := range s.elements {
		if set[el.ID] {
			removed++
			continue
		}
		kept = append(kept, el)
	}
	for i := len(kept); i < len(s.elements); i++ {
		s.elements[i] = Element{}
	}
	s.elements = kept
	return removed
}

// Replace adopts a new collection wholesale.
func (s *Store) Replace(els []Element) {
	s.elements = cloneElements(els)
}

// Elements returns a copy of the collection in insertion order.
func (s *Store) Elements() []Element {
	return cloneElements(s.elements)
}

// IDs returns every id in insertion order.
func (s *Store) IDs() []string {
	ids := make([]string, len(s.elements))
	for i, el := range s.elements {
		ids[i] = el.ID
	}
	return ids
}

// Len returns the number of elements.
func (s *Store) Len() int {
	return len(s.elements)
}

// MaxZ returns the highest zIndex, or 0 when empty.
func (s *Store) MaxZ() int {
	maxZ := 0
	for _, el := range s.elements {
		if el.ZIndex > maxZ {
			maxZ = el.ZIndex
		}
	}
	return maxZ
}

// HitTest returns the top-most element containing (x, y). Higher zIndex wins;
// among equal zIndex the later insertion is on top.
func (s *Store) HitTest(x, y float64) (Element, bool) {
	best := -1
	for i, el := range s.elements {
		if !el.Contains(x, y) {
			continue
		}
		if best == -1 || el.ZIndex >= s.elements[best].ZIndex {
			best = i
		}
	}
	if best == -1 {
		return Element{}, false
	}
	return s.elements[best], true
}

func (s *Store) index(id string) int {
	for i, el := range s.elements {
		if el.ID == id {
			return i
		}
	}
	return -1
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func cloneElements(els []Element) []Element {
	if els == nil {
		return []Element{}
	}
	out := make([]Element, len(els))
	copy(out, els)
	return out
}
