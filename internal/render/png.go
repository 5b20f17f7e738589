package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"protox/internal/editor"
)

// PNG draws a raster preview of els on the surface. Scale multiplies every
// surface unit; values <= 0 mean 1.
func PNG(w io.Writer, els []editor.Element, surface editor.Surface, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	width := int(math.Ceil(surface.W * scale))
	height := int(math.Ceil(surface.H * scale))
	if width < 1 || height < 1 {
		return fmt.Errorf("surface %s is empty", surface)
	}

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	p := &painter{
		dc:    gg.NewContext(width, height),
		font:  ttf,
		faces: map[float64]font.Face{},
		scale: scale,
	}
	p.dc.SetColor(color.White)
	p.dc.Clear()

	for _, el := range PaintOrder(els) {
		p.element(el)
	}
	return p.dc.EncodePNG(w)
}

type painter struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face
	scale float64
}

func (p *painter) face(size float64) font.Face {
	size *= p.scale
	if size < 1 {
		size = 1
	}
	if f, ok := p.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(p.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	p.faces[size] = f
	return f
}

func (p *painter) element(el editor.Element) {
	s := el.Style
	x, y := el.X*p.scale, el.Y*p.scale
	w, h := el.W*p.scale, el.H*p.scale
	r := math.Min(s.BorderRadius*p.scale, math.Min(w, h)/2)

	if s.Shadow {
		p.dc.SetColor(color.NRGBA{A: uint8(25 * s.Opacity)})
		p.dc.DrawRoundedRectangle(x, y+4*p.scale, w, h, r)
		p.dc.Fill()
	}
	if bg, ok := parseColor(s.BackgroundColor, s.Opacity); ok && el.Kind != editor.KindSwitch && el.Kind != editor.KindAvatar {
		p.dc.SetColor(bg)
		p.dc.DrawRoundedRectangle(x, y, w, h, r)
		p.dc.Fill()
	}
	if s.BorderWidth > 0 {
		if bc, ok := parseColor(s.BorderColor, s.Opacity); ok {
			p.dc.SetColor(bc)
			p.dc.SetLineWidth(s.BorderWidth * p.scale)
			p.dc.DrawRoundedRectangle(x, y, w, h, r)
			p.dc.Stroke()
		}
	}

	fg, ok := parseColor(s.TextColor, s.Opacity)
	if !ok {
		fg = color.NRGBA{A: uint8(255 * s.Opacity)}
	}
	bg, _ := parseColor(s.BackgroundColor, s.Opacity)
	knob := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255 * s.Opacity)}

	switch el.Kind {
	case editor.KindImage:
		p.dc.SetColor(color.NRGBA{R: 148, G: 163, B: 184, A: uint8(255 * s.Opacity)})
		p.dc.SetLineWidth(p.scale)
		p.dc.DrawLine(x, y, x+w, y+h)
		p.dc.DrawLine(x+w, y, x, y+h)
		p.dc.Stroke()
	case editor.KindInput:
		p.text(el, "#94a3b8")
	case editor.KindSelect:
		p.text(el, "")
		p.dc.SetColor(fg)
		p.dc.SetFontFace(p.face(s.FontSize))
		p.dc.DrawStringAnchored("v", x+w-(s.Padding+4)*p.scale, y+h/2, 1, 0.35)
	case editor.KindCheckbox:
		p.dc.SetColor(fg)
		p.dc.SetLineWidth(2 * p.scale)
		p.dc.MoveTo(x+w*0.25, y+h*0.5)
		p.dc.LineTo(x+w*0.45, y+h*0.7)
		p.dc.LineTo(x+w*0.75, y+h*0.3)
		p.dc.Stroke()
	case editor.KindRadio:
		p.dc.SetColor(fg)
		p.dc.DrawCircle(x+w/2, y+h/2, math.Min(w, h)/4)
		p.dc.Fill()
	case editor.KindSwitch:
		p.dc.SetColor(bg)
		p.dc.DrawRoundedRectangle(x, y, w, h, h/2)
		p.dc.Fill()
		p.dc.SetColor(knob)
		p.dc.DrawCircle(x+w-h/2, y+h/2, h/2-2*p.scale)
		p.dc.Fill()
	case editor.KindSlider:
		track := 4 * p.scale
		p.dc.SetColor(color.NRGBA{R: 226, G: 232, B: 240, A: uint8(255 * s.Opacity)})
		p.dc.DrawRoundedRectangle(x, y+h/2-track/2, w, track, track/2)
		p.dc.Fill()
		p.dc.SetColor(fg)
		p.dc.DrawRoundedRectangle(x, y+h/2-track/2, w/2, track, track/2)
		p.dc.Fill()
		p.dc.SetColor(knob)
		p.dc.DrawCircle(x+w/2, y+h/2, 8*p.scale)
		p.dc.Fill()
		p.dc.SetColor(fg)
		p.dc.SetLineWidth(2 * p.scale)
		p.dc.DrawCircle(x+w/2, y+h/2, 8*p.scale)
		p.dc.Stroke()
	case editor.KindProgress:
		p.dc.SetColor(fg)
		p.dc.DrawRoundedRectangle(x, y, w*progressFill/100, h, r)
		p.dc.Fill()
	case editor.KindAvatar:
		p.dc.SetColor(bg)
		p.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
		p.dc.Fill()
		p.dc.SetColor(color.NRGBA{R: 100, G: 116, B: 139, A: uint8(255 * s.Opacity)})
		p.dc.DrawCircle(x+w/2, y+h*0.38, math.Min(w, h)*0.15)
		p.dc.Fill()
	case editor.KindIcon:
		p.dc.SetColor(fg)
		p.dc.SetLineWidth(2 * p.scale)
		p.dc.DrawCircle(x+w/2, y+h/2, math.Min(w, h)*0.4)
		p.dc.Stroke()
	case editor.KindLine:
	default:
		p.text(el, "")
	}
}

// text draws el.Content inside the padded box, wrapped and aligned. A
// non-empty override replaces the text color.
func (p *painter) text(el editor.Element, override string) {
	if el.Content == "" {
		return
	}
	s := el.Style
	c := s.TextColor
	if override != "" {
		c = override
	}
	fg, ok := parseColor(c, s.Opacity)
	if !ok {
		return
	}
	pad := s.Padding * p.scale
	x, y := el.X*p.scale+pad, el.Y*p.scale
	w, h := el.W*p.scale-2*pad, el.H*p.scale
	if w <= 0 {
		return
	}

	align, ax := gg.AlignLeft, 0.0
	switch s.TextAlign {
	case editor.AlignCenter:
		align, ax, x = gg.AlignCenter, 0.5, x+w/2
	case editor.AlignRight:
		align, ax, x = gg.AlignRight, 1, x+w
	}
	p.dc.SetColor(fg)
	p.dc.SetFontFace(p.face(s.FontSize))
	p.dc.DrawStringWrapped(el.Content, x, y+h/2, ax, 0.5, w, 1.2, align)
}
