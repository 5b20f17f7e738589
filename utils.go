package main

import (
	"html"
	"math"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/microcosm-cc/bluemonday"

	"protox/internal/editor"
)

// canvasHeight is the number of terminal rows given to the surface view.
func (m *model) canvasHeight() int {
	h := m.height - statusLines
	if h < 1 {
		h = 1
	}
	return h
}

// surfacePoint maps a screen cell to the surface coordinate of its center.
func (m *model) surfacePoint(col, row int) (float64, float64) {
	x := (float64(col+m.panX) + 0.5) * m.config.CellWidth
	y := (float64(row+m.panY) + 0.5) * m.config.CellHeight
	return x, y
}

// cursorPoint is surfacePoint for the keyboard cursor.
func (m *model) cursorPoint() (float64, float64) {
	return m.surfacePoint(m.cursorX, m.cursorY)
}

// span returns the world cells whose centers fall inside [pos, pos+size).
// Anything smaller than a cell still gets one.
func span(pos, size, unit float64) (int, int) {
	start := int(math.Ceil(pos/unit - 0.5))
	end := int(math.Ceil((pos+size)/unit-0.5)) - 1
	if end < start {
		end = start
	}
	return start, end
}

func (m *model) footprint(el editor.Element) cellRect {
	x0, x1 := span(el.X, el.W, m.config.CellWidth)
	y0, y1 := span(el.Y, el.H, m.config.CellHeight)
	return cellRect{x0: x0, y0: y0, x1: x1, y1: y1}
}

func (m *model) rectFootprint(r editor.Rect) cellRect {
	return m.footprint(editor.Element{X: r.X1, Y: r.Y1, W: r.Width(), H: r.Height()})
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	if maxY := m.canvasHeight() - 1; m.cursorY > maxY {
		m.cursorY = maxY
	}
}

// singleSelected returns the selected element when exactly one is selected.
func (m *model) singleSelected() (editor.Element, bool) {
	sel := m.ed.SelectedElements()
	if len(sel) != 1 {
		return editor.Element{}, false
	}
	return sel[0], true
}

var plainText = bluemonday.StrictPolicy()

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

func isHTML(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "<") &&
		(strings.Contains(text, "<html") || strings.Contains(text, "<body") || strings.Contains(text, "<div"))
}

// cleanClipboardText turns whatever the system clipboard holds into plain
// text fit for a single property field.
func cleanClipboardText(text string) string {
	switch {
	case isRTF(text):
		text = stripRTF(text)
	case isHTML(text):
		text = stripTags(text)
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\r' || r == '\n' || r == '\t' {
			r = ' '
		}
		if r >= 32 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// stripTags drops all markup and decodes entities.
func stripTags(s string) string {
	return html.UnescapeString(plainText.Sanitize(s))
}

func stripRTF(text string) string {
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}':
			continue
		case '\\':
			if i+1 >= len(runes) {
				continue
			}
			next := runes[i+1]
			if next == '\\' || next == '{' || next == '}' {
				b.WriteRune(next)
				i++
				continue
			}
			// Skip a control word and its optional trailing space.
			for i+1 < len(runes) && runes[i+1] != ' ' && runes[i+1] != '\\' && runes[i+1] != '{' && runes[i+1] != '}' {
				i++
			}
			if i+1 < len(runes) && runes[i+1] == ' ' {
				i++
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
