package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protox/internal/editor"
)

func sample() []editor.Element {
	ed := editor.New()
	for _, label := range []string{"Card", "Button", "Heading", "Progress", "Trash"} {
		tmpl, _ := editor.TemplateByLabel(label)
		ed.Place(tmpl, 10, 10)
	}
	return ed.Elements()
}

func TestFragmentsCoverEveryKind(t *testing.T) {
	for _, k := range editor.AllKinds() {
		_, ok := fragments[k]
		assert.True(t, ok, "no fragment for %s", k)
	}
}

func TestHTMLDeterministic(t *testing.T) {
	els := sample()
	a := HTML(els, editor.DefaultSurface)
	b := HTML(els, editor.DefaultSurface)
	assert.Equal(t, a, b)
	assert.Contains(t, string(a), "<title>"+DocumentTitle+"</title>")
	assert.Contains(t, string(a), `style="width: 800px; height: 600px;"`)
}

func TestHTMLPaintsInZOrder(t *testing.T) {
	els := []editor.Element{
		{ID: "top", Kind: editor.KindText, Content: "TOP", ZIndex: 3, Style: editor.DefaultStyle()},
		{ID: "first", Kind: editor.KindText, Content: "FIRST", ZIndex: 1, Style: editor.DefaultStyle()},
		{ID: "second", Kind: editor.KindText, Content: "SECOND", ZIndex: 1, Style: editor.DefaultStyle()},
	}
	out := string(HTML(els, editor.DefaultSurface))
	first := strings.Index(out, "FIRST")
	second := strings.Index(out, "SECOND")
	top := strings.Index(out, "TOP")
	assert.True(t, first < second && second < top, "got order %d %d %d", first, second, top)
}

func TestRaisingTopmostTieKeepsVisualOrder(t *testing.T) {
	ed := editor.New()
	a := ed.Place(editor.Template{Kind: editor.KindText, Width: 50, Height: 20, Content: "A"}, 0, 0)
	b := ed.Place(editor.Template{Kind: editor.KindText, Width: 50, Height: 20, Content: "B"}, 10, 10)
	ed.EditElement(a.ID, editor.Patch{ZIndex: editor.Ptr(1)})
	ed.EditElement(b.ID, editor.Patch{ZIndex: editor.Ptr(1)})
	ed.ClearSelection()

	ids := func(els []editor.Element) []string {
		out := make([]string, 0, len(els))
		for _, el := range els {
			out = append(out, el.ID)
		}
		return out
	}
	before := ids(PaintOrder(ed.Elements()))
	require.Equal(t, []string{a.ID, b.ID}, before)
	htmlBefore := string(HTML(ed.Elements(), editor.DefaultSurface))

	ed.EditElement(b.ID, editor.Patch{ZIndex: editor.Ptr(2)})
	assert.Equal(t, before, ids(PaintOrder(ed.Elements())))

	htmlAfter := string(HTML(ed.Elements(), editor.DefaultSurface))
	assert.Less(t, strings.Index(htmlBefore, ">A<"), strings.Index(htmlBefore, ">B<"))
	assert.Less(t, strings.Index(htmlAfter, ">A<"), strings.Index(htmlAfter, ">B<"))
}

func TestHTMLEscapesContent(t *testing.T) {
	style := editor.DefaultStyle()
	style.BackgroundColor = `red" onload="x`
	els := []editor.Element{
		{Kind: editor.KindButton, Content: `<script>alert("x")</script>`, Style: style},
		{Kind: editor.KindInput, Content: `"><b>`, Style: style},
	}
	out := string(HTML(els, editor.DefaultSurface))
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, `"><b>`)
	assert.NotContains(t, out, `onload="x`)
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestBoxStyle(t *testing.T) {
	el := editor.Element{X: 10.5, Y: 20, W: 100, H: 40, ZIndex: 7, Style: editor.DefaultStyle()}
	el.Style.TextAlign = editor.AlignRight
	s := boxStyle(el)
	assert.Contains(t, s, "left: 10.5px")
	assert.Contains(t, s, "z-index: 7")
	assert.Contains(t, s, "justify-content: flex-end")
	assert.NotContains(t, s, "box-shadow")

	el.Style.Shadow = true
	assert.Contains(t, boxStyle(el), "box-shadow")
}

func TestFragments(t *testing.T) {
	tests := []struct {
		name string
		el   editor.Element
		want string
	}{
		{"image", editor.Element{Kind: editor.KindImage, W: 120.7, H: 80.2}, "https://picsum.photos/120/80"},
		{"checkbox", editor.Element{Kind: editor.KindCheckbox}, `type="checkbox" checked`},
		{"radio", editor.Element{Kind: editor.KindRadio}, `type="radio" checked`},
		{"select", editor.Element{Kind: editor.KindSelect, Content: "Pick"}, "<option>Pick</option>"},
		{"input", editor.Element{Kind: editor.KindInput, Content: "Email"}, `placeholder="Email"`},
		{"progress", editor.Element{Kind: editor.KindProgress}, "width:60%"},
		{"slider", editor.Element{Kind: editor.KindSlider}, "left:50%"},
		{"switch", editor.Element{Kind: editor.KindSwitch}, "right:2px"},
		{"avatar", editor.Element{Kind: editor.KindAvatar}, "<svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Fragment(tt.el), tt.want)
		})
	}
	assert.Empty(t, Fragment(editor.Element{Kind: editor.KindLine, Content: "horizontal"}))
}

func TestIconFallback(t *testing.T) {
	assert.True(t, HasIcon("Trash2"))
	assert.False(t, HasIcon("Nope"))
	assert.Contains(t, IconSVG("Nope", "#000"), defaultIconBody)
	assert.Contains(t, IconSVG("", "#000"), defaultIconBody)
	assert.Contains(t, IconSVG("Search", `#f"00`), `stroke="#f&#34;00"`)
}

func TestParseColor(t *testing.T) {
	c, ok := parseColor("#3b82f6", 0.5)
	require.True(t, ok)
	assert.Equal(t, uint8(0x3b), c.R)
	assert.Equal(t, uint8(128), c.A)

	c, ok = parseColor("White", 1)
	require.True(t, ok)
	assert.Equal(t, uint8(255), c.G)

	for _, s := range []string{"", "transparent", "none", "not-a-color"} {
		_, ok := parseColor(s, 1)
		assert.False(t, ok, s)
	}
}

func TestPNGMatchesSurface(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, sample(), editor.Surface{W: 200, H: 100}, 2))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestPNGEmptySurface(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, nil, editor.Surface{}, 1))
}
