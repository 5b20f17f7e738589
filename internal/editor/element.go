package editor

import "strings"

// MinSize is the smallest width or height an element may have.
const MinSize = 8.0

// Kind is the closed set of element variants.
type Kind int

const (
	KindContainer Kind = iota
	KindCard
	KindText
	KindHeading
	KindButton
	KindInput
	KindSelect
	KindCheckbox
	KindRadio
	KindSwitch
	KindSlider
	KindProgress
	KindAvatar
	KindBadge
	KindImage
	KindLine
	KindIcon
	KindShape
	numKinds
)

var kindNames = [numKinds]string{
	KindContainer: "container",
	KindCard:      "card",
	KindText:      "text",
	KindHeading:   "heading",
	KindButton:    "button",
	KindInput:     "input",
	KindSelect:    "select",
	KindCheckbox:  "checkbox",
	KindRadio:     "radio",
	KindSwitch:    "switch",
	KindSlider:    "slider",
	KindProgress:  "progress",
	KindAvatar:    "avatar",
	KindBadge:     "badge",
	KindImage:     "image",
	KindLine:      "line",
	KindIcon:      "icon",
	KindShape:     "shape",
}

// AllKinds lists every kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return kindNames[KindShape]
	}
	return kindNames[k]
}

// ParseKind maps a name back to its kind. Unknown names become KindShape.
func ParseKind(name string) Kind {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "textarea" {
		return KindShape
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i)
		}
	}
	return KindShape
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}

// TextAlign is the horizontal alignment of an element's content.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// Style is always fully populated; partial edits go through StylePatch.
type Style struct {
	BackgroundColor string    `yaml:"background_color"`
	TextColor       string    `yaml:"text_color"`
	FontSize        float64   `yaml:"font_size"`
	FontWeight      string    `yaml:"font_weight"`
	BorderRadius    float64   `yaml:"border_radius"`
	BorderWidth     float64   `yaml:"border_width"`
	BorderColor     string    `yaml:"border_color"`
	Padding         float64   `yaml:"padding"`
	TextAlign       TextAlign `yaml:"text_align"`
	Opacity         float64   `yaml:"opacity"`
	Shadow          bool      `yaml:"shadow"`
}

// DefaultStyle is merged under every template style at creation.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: "transparent",
		TextColor:       "#1e293b",
		FontSize:        14,
		FontWeight:      "normal",
		BorderRadius:    0,
		BorderWidth:     0,
		BorderColor:     "#e2e8f0",
		Padding:         8,
		TextAlign:       AlignLeft,
		Opacity:         1,
		Shadow:          false,
	}
}

// StylePatch carries the style fields an edit sets. Nil fields are left alone.
type StylePatch struct {
	BackgroundColor *string
	TextColor       *string
	FontSize        *float64
	FontWeight      *string
	BorderRadius    *float64
	BorderWidth     *float64
	BorderColor     *string
	Padding         *float64
	TextAlign       *TextAlign
	Opacity         *float64
	Shadow          *bool
}

// Apply returns s with every non-nil field of p merged in.
func (p *StylePatch) Apply(s Style) Style {
	if p == nil {
		return s
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = *p.BackgroundColor
	}
	if p.TextColor != nil {
		s.TextColor = *p.TextColor
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.FontWeight != nil {
		s.FontWeight = *p.FontWeight
	}
	if p.BorderRadius != nil {
		s.BorderRadius = *p.BorderRadius
	}
	if p.BorderWidth != nil {
		s.BorderWidth = *p.BorderWidth
	}
	if p.BorderColor != nil {
		s.BorderColor = *p.BorderColor
	}
	if p.Padding != nil {
		s.Padding = *p.Padding
	}
	if p.TextAlign != nil {
		s.TextAlign = *p.TextAlign
	}
	if p.Opacity != nil {
		s.Opacity = clamp(*p.Opacity, 0, 1)
	}
	if p.Shadow != nil {
		s.Shadow = *p.Shadow
	}
	return s
}

// Element is one placed, styled, positioned unit on the surface.
type Element struct {
	ID      string  `yaml:"id"`
	Kind    Kind    `yaml:"kind"`
	Name    string  `yaml:"name,omitempty"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	ZIndex  int     `yaml:"z_index"`
	Content string  `yaml:"content"`
	Style   Style   `yaml:"style"`
	IconRef string  `yaml:"icon_ref,omitempty"`
}

// Right is the far horizontal edge.
func (e Element) Right() float64 { return e.X + e.W }

// Bottom is the far vertical edge.
func (e Element) Bottom() float64 { return e.Y + e.H }

// Contains reports whether the point lies inside the element's box.
func (e Element) Contains(x, y float64) bool {
	return x >= e.X && x < e.Right() && y >= e.Y && y < e.Bottom()
}

// Patch is a partial update of an element's top-level fields. ID and Kind
// are not patchable.
type Patch struct {
	Name    *string
	X       *float64
	Y       *float64
	W       *float64
	H       *float64
	ZIndex  *int
	Content *string
	IconRef *string
	Style   *StylePatch
}

// Apply merges p into e. Size is floored at MinSize.
func (p Patch) Apply(e Element) Element {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.X != nil {
		e.X = *p.X
	}
	if p.Y != nil {
		e.Y = *p.Y
	}
	if p.W != nil {
		e.W = floorSize(*p.W)
	}
	if p.H != nil {
		e.H = floorSize(*p.H)
	}
	if p.ZIndex != nil {
		e.ZIndex = *p.ZIndex
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.IconRef != nil {
		e.IconRef = *p.IconRef
	}
	if p.Style != nil {
		e.Style = p.Style.Apply(e.Style)
	}
	return e
}

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T {
	return &v
}

func floorSize(v float64) float64 {
	if v < MinSize {
		return MinSize
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
