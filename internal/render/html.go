// Package render turns an element collection into static artifacts: a
// standalone HTML document and a PNG preview.
package render

import (
	"fmt"
	"html"
	"math"
	"sort"
	"strconv"
	"strings"

	"protox/internal/editor"
)

// DocumentTitle is the <title> of exported documents.
const DocumentTitle = "Prototype Export"

// progressFill is the fixed fraction drawn by progress bars.
const progressFill = 60

type fragmentFunc func(el editor.Element) string

// fragments renders the inner content of each kind. Every kind must have an
// entry; kinds whose content is plain text use textFragment.
var fragments = map[editor.Kind]fragmentFunc{
	editor.KindContainer: textFragment,
	editor.KindCard:      textFragment,
	editor.KindText:      textFragment,
	editor.KindHeading:   textFragment,
	editor.KindButton:    textFragment,
	editor.KindBadge:     textFragment,
	editor.KindShape:     textFragment,
	editor.KindImage:     imageFragment,
	editor.KindInput:     inputFragment,
	editor.KindSelect:    selectFragment,
	editor.KindCheckbox:  checkFragment("checkbox"),
	editor.KindRadio:     checkFragment("radio"),
	editor.KindSwitch:    switchFragment,
	editor.KindSlider:    sliderFragment,
	editor.KindProgress:  progressFragment,
	editor.KindAvatar:    avatarFragment,
	editor.KindIcon:      iconFragment,
	editor.KindLine:      lineFragment,
}

func textFragment(el editor.Element) string {
	return html.EscapeString(el.Content)
}

func imageFragment(el editor.Element) string {
	w, h := int(math.Floor(el.W)), int(math.Floor(el.H))
	return fmt.Sprintf(`<img src="https://picsum.photos/%d/%d" alt="" style="width:100%%;height:100%%;object-fit:cover;" />`, w, h)
}

func inputFragment(el editor.Element) string {
	return fmt.Sprintf(`<input type="text" placeholder="%s" style="width:100%%;height:100%%;border:none;background:transparent;outline:none;" />`,
		html.EscapeString(el.Content))
}

func selectFragment(el editor.Element) string {
	return fmt.Sprintf(`<select style="width:100%%;height:100%%;border:none;background:transparent;"><option>%s</option></select>`,
		html.EscapeString(el.Content))
}

func checkFragment(inputType string) fragmentFunc {
	return func(editor.Element) string {
		return fmt.Sprintf(`<input type="%s" checked style="transform: scale(1.5);" />`, inputType)
	}
}

func switchFragment(el editor.Element) string {
	return fmt.Sprintf(`<div style="width:100%%;height:100%%;border-radius:99px;background-color:%s;position:relative;">`+
		`<div style="position:absolute;top:2px;bottom:2px;right:2px;aspect-ratio:1;background:white;border-radius:50%%;"></div></div>`,
		attr(el.Style.BackgroundColor))
}

func sliderFragment(el editor.Element) string {
	c := attr(el.Style.TextColor)
	return fmt.Sprintf(`<div style="width:100%%;height:100%%;display:flex;align-items:center;">`+
		`<div style="width:100%%;height:4px;background:#e2e8f0;border-radius:2px;position:relative;">`+
		`<div style="width:50%%;height:100%%;background:%s;border-radius:2px;"></div>`+
		`<div style="width:16px;height:16px;background:white;border:2px solid %s;border-radius:50%%;position:absolute;left:50%%;top:50%%;transform:translate(-50%%,-50%%);"></div>`+
		`</div></div>`, c, c)
}

func progressFragment(el editor.Element) string {
	return fmt.Sprintf(`<div style="width:100%%;height:100%%;background:%s;border-radius:%spx;overflow:hidden;">`+
		`<div style="width:%d%%;height:100%%;background:%s;"></div></div>`,
		attr(el.Style.BackgroundColor), num(el.Style.BorderRadius), progressFill, attr(el.Style.TextColor))
}

func avatarFragment(el editor.Element) string {
	return fmt.Sprintf(`<div style="width:100%%;height:100%%;background:%s;border-radius:50%%;display:flex;align-items:center;justify-content:center;color:#64748b;">`+
		`<svg width="60%%" height="60%%" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">`+
		`<path d="M20 21v-2a4 4 0 0 0-4-4H8a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/></svg></div>`,
		attr(el.Style.BackgroundColor))
}

func iconFragment(el editor.Element) string {
	return IconSVG(el.IconRef, el.Style.TextColor)
}

func lineFragment(editor.Element) string {
	return ""
}

// Fragment returns the inner markup for el.
func Fragment(el editor.Element) string {
	if fn, ok := fragments[el.Kind]; ok {
		return fn(el)
	}
	return textFragment(el)
}

// PaintOrder returns els sorted by zIndex. Equal zIndex keeps collection
// order.
func PaintOrder(els []editor.Element) []editor.Element {
	out := make([]editor.Element, len(els))
	copy(out, els)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}

// HTML renders els onto a surface-sized container as a standalone document.
// The same input always produces the same bytes.
func HTML(els []editor.Element, surface editor.Surface) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", DocumentTitle)
	b.WriteString("  <style>\n")
	b.WriteString("    body { margin: 0; display: flex; justify-content: center; background: #f0f2f5; font-family: -apple-system, BlinkMacSystemFont, \"Segoe UI\", Roboto, sans-serif; }\n")
	b.WriteString("    .canvas { position: relative; background: white; box-shadow: 0 4px 6px rgba(0,0,0,0.1); overflow: hidden; margin-top: 20px; }\n")
	b.WriteString("    .element { position: absolute; box-sizing: border-box; display: flex; align-items: center; overflow: hidden; }\n")
	b.WriteString("  </style>\n</head>\n<body>\n")
	fmt.Fprintf(&b, "  <div class=\"canvas\" style=\"width: %spx; height: %spx;\">\n", num(surface.W), num(surface.H))
	for _, el := range PaintOrder(els) {
		fmt.Fprintf(&b, "    <div class=\"element\" data-kind=\"%s\" style=\"%s\">%s</div>\n",
			el.Kind, boxStyle(el), Fragment(el))
	}
	b.WriteString("  </div>\n</body>\n</html>\n")
	return []byte(b.String())
}

const shadowCSS = "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)"

// boxStyle flattens geometry and style into an inline declaration list.
func boxStyle(el editor.Element) string {
	s := el.Style
	decls := []string{
		"left: " + num(el.X) + "px",
		"top: " + num(el.Y) + "px",
		"width: " + num(el.W) + "px",
		"height: " + num(el.H) + "px",
		"z-index: " + strconv.Itoa(el.ZIndex),
		"background-color: " + attr(s.BackgroundColor),
		"color: " + attr(s.TextColor),
		"font-size: " + num(s.FontSize) + "px",
		"font-weight: " + attr(s.FontWeight),
		"border-radius: " + num(s.BorderRadius) + "px",
		"border: " + num(s.BorderWidth) + "px solid " + attr(s.BorderColor),
		"padding: " + num(s.Padding) + "px",
		"text-align: " + attr(string(s.TextAlign)),
		"justify-content: " + justify(s.TextAlign),
		"opacity: " + num(s.Opacity),
	}
	if s.Shadow {
		decls = append(decls, "box-shadow: "+shadowCSS)
	}
	return strings.Join(decls, "; ") + ";"
}

func justify(a editor.TextAlign) string {
	switch a {
	case editor.AlignCenter:
		return "center"
	case editor.AlignRight:
		return "flex-end"
	default:
		return "flex-start"
	}
}

// num formats a float without trailing zeros so output is stable.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// attr escapes a value for use inside a double-quoted style attribute.
func attr(v string) string {
	return html.EscapeString(v)
}
