package editor

import "strings"

// Template is a palette entry: what a drop or placement creates.
type Template struct {
	Kind     Kind
	Label    string
	Category string
	Width    float64
	Height   float64
	Content  string
	Style    *StylePatch
	IconRef  string
}

const (
	CategoryLayout     = "Layout"
	CategoryTypography = "Typography"
	CategoryForm       = "Form"
	CategoryUI         = "UI Elements"
	CategoryMedia      = "Media"
	CategoryIcons      = "Icons"
)

var catalog = []Template{
	{Kind: KindContainer, Label: "Container", Category: CategoryLayout, Width: 300, Height: 200, Style: &StylePatch{
		BackgroundColor: Ptr("#ffffff"), BorderWidth: Ptr(1.0), BorderColor: Ptr("#e2e8f0"), BorderRadius: Ptr(4.0), Shadow: Ptr(true),
	}},
	{Kind: KindCard, Label: "Card", Category: CategoryLayout, Width: 280, Height: 160, Style: &StylePatch{
		BackgroundColor: Ptr("#ffffff"), BorderWidth: Ptr(1.0), BorderColor: Ptr("#e2e8f0"), BorderRadius: Ptr(8.0), Shadow: Ptr(true),
	}},
	{Kind: KindLine, Label: "H-Line", Category: CategoryLayout, Width: 200, Height: 2, Content: "horizontal", Style: &StylePatch{
		BackgroundColor: Ptr("#cbd5e1"), BorderWidth: Ptr(0.0),
	}},
	{Kind: KindLine, Label: "V-Line", Category: CategoryLayout, Width: 2, Height: 200, Content: "vertical", Style: &StylePatch{
		BackgroundColor: Ptr("#cbd5e1"), BorderWidth: Ptr(0.0),
	}},

	{Kind: KindHeading, Label: "Heading", Category: CategoryTypography, Width: 200, Height: 40, Content: "Heading", Style: &StylePatch{
		FontSize: Ptr(24.0), FontWeight: Ptr("bold"), TextColor: Ptr("#0f172a"),
	}},
	{Kind: KindText, Label: "Text", Category: CategoryTypography, Width: 200, Height: 60, Content: "Lorem ipsum dolor sit amet.", Style: &StylePatch{
		FontSize: Ptr(14.0), TextColor: Ptr("#475569"),
	}},

	{Kind: KindButton, Label: "Button", Category: CategoryForm, Width: 120, Height: 40, Content: "Button", Style: &StylePatch{
		BackgroundColor: Ptr("#3b82f6"), TextColor: Ptr("#ffffff"), BorderRadius: Ptr(6.0), TextAlign: Ptr(AlignCenter), FontWeight: Ptr("500"),
	}},
	{Kind: KindInput, Label: "Input", Category: CategoryForm, Width: 200, Height: 40, Style: &StylePatch{
		BackgroundColor: Ptr("#ffffff"), BorderWidth: Ptr(1.0), BorderColor: Ptr("#cbd5e1"), BorderRadius: Ptr(4.0), Padding: Ptr(8.0),
	}},
	{Kind: KindSwitch, Label: "Switch", Category: CategoryForm, Width: 44, Height: 24, Style: &StylePatch{
		BackgroundColor: Ptr("#3b82f6"), BorderRadius: Ptr(999.0),
	}},
	{Kind: KindSlider, Label: "Slider", Category: CategoryForm, Width: 160, Height: 20, Style: &StylePatch{
		TextColor: Ptr("#3b82f6"),
	}},
	{Kind: KindCheckbox, Label: "Checkbox", Category: CategoryForm, Width: 20, Height: 20, Style: &StylePatch{
		BackgroundColor: Ptr("#ffffff"), BorderWidth: Ptr(1.0), BorderColor: Ptr("#cbd5e1"), BorderRadius: Ptr(4.0),
	}},
	{Kind: KindRadio, Label: "Radio", Category: CategoryForm, Width: 20, Height: 20, Style: &StylePatch{
		BackgroundColor: Ptr("#ffffff"), BorderWidth: Ptr(1.0), BorderColor: Ptr("#cbd5e1"), BorderRadius: Ptr(10.0),
	}},
	{Kind: KindSelect, Label: "Select", Category: CategoryForm, Width: 200, Height: 40, Content: "Option", Style: &StylePatch{
		BackgroundColor: Ptr("#ffffff"), BorderWidth: Ptr(1.0), BorderColor: Ptr("#cbd5e1"), BorderRadius: Ptr(4.0), Padding: Ptr(8.0),
	}},

	{Kind: KindAvatar, Label: "Avatar", Category: CategoryUI, Width: 48, Height: 48, Style: &StylePatch{
		BackgroundColor: Ptr("#e2e8f0"), BorderRadius: Ptr(999.0),
	}},
	{Kind: KindBadge, Label: "Badge", Category: CategoryUI, Width: 60, Height: 24, Content: "Badge", Style: &StylePatch{
		BackgroundColor: Ptr("#dbeafe"), TextColor: Ptr("#1e40af"), BorderRadius: Ptr(999.0), FontSize: Ptr(12.0),
		FontWeight: Ptr("600"), TextAlign: Ptr(AlignCenter), Padding: Ptr(4.0),
	}},
	{Kind: KindProgress, Label: "Progress", Category: CategoryUI, Width: 200, Height: 8, Style: &StylePatch{
		BackgroundColor: Ptr("#e2e8f0"), TextColor: Ptr("#3b82f6"), BorderRadius: Ptr(999.0),
	}},
	{Kind: KindShape, Label: "Shape", Category: CategoryUI, Width: 80, Height: 80, Style: &StylePatch{
		BackgroundColor: Ptr("#cbd5e1"),
	}},

	{Kind: KindImage, Label: "Image", Category: CategoryMedia, Width: 100, Height: 100, Style: &StylePatch{
		BackgroundColor: Ptr("#f1f5f9"), BorderRadius: Ptr(4.0),
	}},

	iconTemplate("Search", "Search", "#64748b"),
	iconTemplate("Settings", "Settings", "#64748b"),
	iconTemplate("User", "User", "#64748b"),
	iconTemplate("Users", "Users", "#64748b"),
	iconTemplate("Calendar", "Calendar", "#64748b"),
	iconTemplate("File", "FileText", "#64748b"),
	iconTemplate("Chart", "BarChart", "#64748b"),
	iconTemplate("Arrow", "ArrowRight", "#64748b"),
	iconTemplate("Trash", "Trash2", "#ef4444"),
}

func iconTemplate(label, ref, color string) Template {
	return Template{
		Kind:     KindIcon,
		Label:    label,
		Category: CategoryIcons,
		Width:    32,
		Height:   32,
		IconRef:  ref,
		Style:    &StylePatch{TextColor: Ptr(color)},
	}
}

// Catalog returns the palette templates in display order.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// TemplateByLabel finds a palette entry by its label, ignoring case.
func TemplateByLabel(label string) (Template, bool) {
	for _, t := range catalog {
		if strings.EqualFold(t.Label, label) {
			return t, true
		}
	}
	return Template{}, false
}
