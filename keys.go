package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"protox/internal/editor"
)

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if isNavigationKey(key) {
		m.handleNavigation(key, m.getMoveSpeed(key))
		return m, nil
	}
	m.clearMessages()

	switch key {
	case "ctrl+c":
		if n := m.ed.Copy(); n > 0 {
			m.successMessage = fmt.Sprintf("Copied %d element(s)", n)
		}
	case "ctrl+v":
		if pasted := m.ed.Paste(); len(pasted) > 0 {
			m.successMessage = fmt.Sprintf("Pasted %d element(s)", len(pasted))
		}
	case "delete", "backspace":
		if len(m.ed.Selected()) == 0 {
			return m, nil
		}
		if m.confirm(ConfirmDelete) {
			m.ed.Delete()
		}
	case "ctrl+a":
		m.ed.SelectAll()
	case "ctrl+z":
		m.ed.Undo()
	case "ctrl+y":
		m.ed.Redo()
	case "esc":
		m.ed.ClearSelection()
		m.additive = false

	case " ":
		// A click at the cursor: select, toggle or deselect without moving.
		x, y := m.cursorPoint()
		ev := editor.PointerEvent{X: x, Y: y, Additive: m.additive}
		m.ed.Press(ev)
		m.ed.Release(ev)
	case "m":
		m.additive = !m.additive
	case "z":
		m.zPanMode = !m.zPanMode
	case "g":
		m.showGrid = !m.showGrid

	case "p":
		m.mode = ModePalette
	case "e":
		m.startEdit(FieldContent)
	case "b":
		m.startEdit(FieldBackground)
	case "t":
		m.startEdit(FieldTextColor)
	case "i":
		if len(m.editableFields()) == 0 {
			m.errorMessage = "Nothing selected"
			return m, nil
		}
		m.propertyIndex = 0
		m.mode = ModeProperties
	case "S":
		m.startEdit(FieldShadow)
	case "]":
		m.shiftLayer(1)
	case "[":
		m.shiftLayer(-1)
	case "a":
		if len(m.ed.Selected()) < 2 {
			m.errorMessage = "Select at least two elements to align"
			return m, nil
		}
		m.mode = ModeAlign

	case "1", "2", "3", "4":
		surfaces := append([]editor.Surface{editor.DefaultSurface}, editor.Presets...)
		s := surfaces[int(key[0]-'1')]
		m.ed.SetSurface(s)
		m.successMessage = "Surface: " + s.String()

	case "s":
		m.startFileInput(FileOpSave)
	case "o":
		m.startFileInput(FileOpOpen)
	case "E":
		m.startFileInput(FileOpExportPNG)
	case "x":
		path, err := m.exportHTML()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.successMessage = "Exported " + path
	case "n":
		if m.confirm(ConfirmNewDocument) {
			m.newDocument()
		}

	case "?":
		m.help = true
		m.helpScroll = 0
	case "q":
		if m.confirm(ConfirmQuit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) handleStartupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "enter":
		m.mode = ModeNormal
	case "o":
		m.fromStartup = true
		m.startFileInput(FileOpOpen)
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.helpScroll++
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "?", "esc", "q":
		m.help = false
	}
	return m, nil
}

func (m model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(editor.Catalog())
	switch msg.String() {
	case "j", "down":
		m.paletteIndex = (m.paletteIndex + 1) % n
	case "k", "up":
		m.paletteIndex = (m.paletteIndex - 1 + n) % n
	case "enter":
		m.dropTemplate(m.cursorPoint())
	case "esc", "p":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleAlignKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	edges := map[string]editor.Edge{
		"l": editor.EdgeLeft,
		"c": editor.EdgeCenter,
		"r": editor.EdgeRight,
		"t": editor.EdgeTop,
		"m": editor.EdgeMiddle,
		"b": editor.EdgeBottom,
	}
	axes := map[string]editor.Axis{
		"h": editor.Horizontal,
		"v": editor.Vertical,
	}

	key := msg.String()
	m.mode = ModeNormal
	if edge, ok := edges[key]; ok {
		m.ed.Align(edge)
		m.successMessage = "Aligned " + edge.String()
		return m, nil
	}
	if axis, ok := axes[key]; ok {
		if len(m.ed.Selected()) < 3 {
			m.errorMessage = "Select at least three elements to distribute"
			return m, nil
		}
		m.ed.Distribute(axis)
		m.successMessage = "Distributed " + axis.String()
		return m, nil
	}
	if key != "esc" {
		m.mode = ModeAlign
	}
	return m, nil
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmDelete:
			m.ed.Delete()
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmNewDocument:
			m.newDocument()
		case ConfirmOverwriteFile:
			m.runFileOp(m.filename)
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		}
	}
	return m, nil
}
