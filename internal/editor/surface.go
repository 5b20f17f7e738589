package editor

import (
	"fmt"
	"strings"
)

// Surface is the fixed-size design area.
type Surface struct {
	Name string  `yaml:"name,omitempty"`
	W    float64 `yaml:"width"`
	H    float64 `yaml:"height"`
}

func (s Surface) String() string {
	if s.Name == "" {
		return fmt.Sprintf("%gx%g", s.W, s.H)
	}
	return fmt.Sprintf("%s %gx%g", s.Name, s.W, s.H)
}

// DefaultSurface is used until a preset is chosen.
var DefaultSurface = Surface{Name: "default", W: 800, H: 600}

// Presets are the selectable surface sizes.
var Presets = []Surface{
	{Name: "phone", W: 375, H: 812},
	{Name: "tablet", W: 768, H: 1024},
	{Name: "desktop", W: 1280, H: 800},
}

// PresetByName finds a preset, including "default". Matching ignores case.
func PresetByName(name string) (Surface, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == DefaultSurface.Name {
		return DefaultSurface, true
	}
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Surface{}, false
}
