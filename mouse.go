package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"protox/internal/editor"
)

// handleMouse turns terminal mouse reports into pointer events for the
// editor's gestures. Cells are mapped to the surface through the pan offset
// and the configured cell size.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.panY--
		return m, nil
	case tea.MouseButtonWheelDown:
		m.panY++
		return m, nil
	case tea.MouseButtonWheelLeft:
		m.panX--
		return m, nil
	case tea.MouseButtonWheelRight:
		m.panX++
		return m, nil
	}

	x, y := m.surfacePoint(msg.X, msg.Y)
	ev := editor.PointerEvent{X: x, Y: y, Additive: m.additive || msg.Shift || msg.Ctrl}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y >= m.canvasHeight() {
			return m, nil
		}
		if m.mode == ModePalette {
			m.dropTemplate(x, y)
			return m, nil
		}
		if m.mode != ModeNormal {
			return m, nil
		}
		m.clearMessages()
		m.cursorX, m.cursorY = msg.X, msg.Y
		m.ensureCursorInBounds()
		m.mouseDown = true
		m.ed.Press(ev)

	case tea.MouseActionMotion:
		if !m.mouseDown {
			return m, nil
		}
		m.ed.Move(ev)

	case tea.MouseActionRelease:
		// A release anywhere ends the gesture, even off the canvas rows.
		if !m.mouseDown {
			return m, nil
		}
		m.mouseDown = false
		m.ed.Release(ev)
	}
	return m, nil
}

// dropTemplate creates the palette's current template centered on (x, y).
func (m *model) dropTemplate(x, y float64) {
	catalog := editor.Catalog()
	if m.paletteIndex < 0 || m.paletteIndex >= len(catalog) {
		return
	}
	tmpl := catalog[m.paletteIndex]
	el := m.ed.Drop(tmpl, x, y)
	m.mode = ModeNormal
	m.successMessage = "Added " + tmpl.Label
	m.logger.Debug("dropped template", "label", tmpl.Label, "id", el.ID)
}
