package main

import (
	"fmt"
	"slices"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"protox/internal/editor"
)

var fieldNames = [numFields]string{
	FieldContent:      "content",
	FieldBackground:   "background",
	FieldTextColor:    "text color",
	FieldX:            "x",
	FieldY:            "y",
	FieldWidth:        "width",
	FieldHeight:       "height",
	FieldFontSize:     "font size",
	FieldFontWeight:   "font weight",
	FieldTextAlign:    "text align",
	FieldBorderRadius: "border radius",
	FieldBorderWidth:  "border width",
	FieldBorderColor:  "border color",
	FieldOpacity:      "opacity",
	FieldShadow:       "shadow",
}

var fontWeights = []string{"normal", "500", "600", "bold"}

var textAligns = []string{string(editor.AlignLeft), string(editor.AlignCenter), string(editor.AlignRight)}

func (f EditField) String() string {
	if f < 0 || f >= numFields {
		return fieldNames[FieldContent]
	}
	return fieldNames[f]
}

// allowed reports whether a kind with field set fs shows f. Typography
// follows the text-based flag; geometry and border fields exist on every kind.
func (f EditField) allowed(fs editor.FieldSet) bool {
	switch f {
	case FieldContent, FieldFontSize, FieldFontWeight, FieldTextAlign:
		return fs.Content
	case FieldBackground:
		return fs.Background
	case FieldTextColor:
		return fs.TextColor
	default:
		return true
	}
}

// bulk fields can be set on a multi-selection of any kinds.
func (f EditField) bulk() bool {
	return f == FieldBackground || f == FieldTextColor
}

func (f EditField) choices() []string {
	switch f {
	case FieldFontWeight:
		return fontWeights
	case FieldTextAlign:
		return textAligns
	}
	return nil
}

func (f EditField) value(el editor.Element) string {
	switch f {
	case FieldContent:
		return el.Content
	case FieldBackground:
		return el.Style.BackgroundColor
	case FieldTextColor:
		return el.Style.TextColor
	case FieldX:
		return formatNumber(el.X)
	case FieldY:
		return formatNumber(el.Y)
	case FieldWidth:
		return formatNumber(el.W)
	case FieldHeight:
		return formatNumber(el.H)
	case FieldFontSize:
		return formatNumber(el.Style.FontSize)
	case FieldFontWeight:
		return el.Style.FontWeight
	case FieldTextAlign:
		return string(el.Style.TextAlign)
	case FieldBorderRadius:
		return formatNumber(el.Style.BorderRadius)
	case FieldBorderWidth:
		return formatNumber(el.Style.BorderWidth)
	case FieldBorderColor:
		return el.Style.BorderColor
	case FieldOpacity:
		return formatNumber(el.Style.Opacity)
	case FieldShadow:
		return strconv.FormatBool(el.Style.Shadow)
	}
	return ""
}

// patch parses typed text into an edit of f. Sizes are floored and opacity
// clamped by the editor.
func (f EditField) patch(v string) (editor.Patch, error) {
	if opts := f.choices(); opts != nil && !slices.Contains(opts, v) {
		return editor.Patch{}, fmt.Errorf("%s must be one of %v", f, opts)
	}
	switch f {
	case FieldContent:
		return editor.Patch{Content: editor.Ptr(v)}, nil
	case FieldBackground:
		return stylePatch(editor.StylePatch{BackgroundColor: editor.Ptr(v)}), nil
	case FieldTextColor:
		return stylePatch(editor.StylePatch{TextColor: editor.Ptr(v)}), nil
	case FieldBorderColor:
		return stylePatch(editor.StylePatch{BorderColor: editor.Ptr(v)}), nil
	case FieldFontWeight:
		return stylePatch(editor.StylePatch{FontWeight: editor.Ptr(v)}), nil
	case FieldTextAlign:
		return stylePatch(editor.StylePatch{TextAlign: editor.Ptr(editor.TextAlign(v))}), nil
	case FieldShadow:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return editor.Patch{}, fmt.Errorf("%s must be true or false", f)
		}
		return stylePatch(editor.StylePatch{Shadow: editor.Ptr(b)}), nil
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return editor.Patch{}, fmt.Errorf("%s must be a number", f)
	}
	if n < 0 && f != FieldX && f != FieldY {
		return editor.Patch{}, fmt.Errorf("%s must not be negative", f)
	}
	switch f {
	case FieldX:
		return editor.Patch{X: editor.Ptr(n)}, nil
	case FieldY:
		return editor.Patch{Y: editor.Ptr(n)}, nil
	case FieldWidth:
		return editor.Patch{W: editor.Ptr(n)}, nil
	case FieldHeight:
		return editor.Patch{H: editor.Ptr(n)}, nil
	case FieldFontSize:
		return stylePatch(editor.StylePatch{FontSize: editor.Ptr(n)}), nil
	case FieldBorderRadius:
		return stylePatch(editor.StylePatch{BorderRadius: editor.Ptr(n)}), nil
	case FieldBorderWidth:
		return stylePatch(editor.StylePatch{BorderWidth: editor.Ptr(n)}), nil
	default:
		return stylePatch(editor.StylePatch{Opacity: editor.Ptr(n)}), nil
	}
}

func stylePatch(sp editor.StylePatch) editor.Patch {
	return editor.Patch{Style: &sp}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// editableFields lists the fields the current selection can edit: every
// field its kind shows for a single element, the bulk fields otherwise.
func (m *model) editableFields() []EditField {
	sel := m.ed.SelectedElements()
	var fields []EditField
	for f := EditField(0); f < numFields; f++ {
		switch {
		case len(sel) == 1 && f.allowed(editor.EditableFields(sel[0].Kind)):
			fields = append(fields, f)
		case len(sel) > 1 && f.bulk():
			fields = append(fields, f)
		}
	}
	return fields
}

// startEdit focuses the property field for the selection. A single element
// must expose the field; a multi-selection only takes the bulk fields.
func (m *model) startEdit(field EditField) {
	sel := m.ed.SelectedElements()
	switch {
	case len(sel) == 0:
		m.errorMessage = "Nothing selected"
		return
	case len(sel) == 1 && !field.allowed(editor.EditableFields(sel[0].Kind)):
		m.errorMessage = sel[0].Kind.String() + " has no editable " + field.String()
		return
	case len(sel) > 1 && !field.bulk():
		m.errorMessage = "Select one element to edit its " + field.String()
		return
	}
	if field == FieldShadow {
		m.toggleShadow()
		return
	}

	originals := make(map[string]string, len(sel))
	for _, el := range sel {
		originals[el.ID] = field.value(el)
	}
	m.editField = field
	m.editOriginal = originals
	m.editText = field.value(sel[0])
	m.editCursorPos = len([]rune(m.editText))
	m.mode = ModeEditing
}

// toggleShadow flips the drop shadow of every selected element and commits.
func (m *model) toggleShadow() {
	for _, el := range m.ed.SelectedElements() {
		m.ed.EditElement(el.ID, stylePatch(editor.StylePatch{Shadow: editor.Ptr(!el.Style.Shadow)}))
	}
	m.ed.CommitEdit()
}

// shiftLayer moves every selected element one step up or down the paint
// order and commits.
func (m *model) shiftLayer(delta int) {
	sel := m.ed.SelectedElements()
	if len(sel) == 0 {
		return
	}
	for _, el := range sel {
		m.ed.EditElement(el.ID, editor.Patch{ZIndex: editor.Ptr(el.ZIndex + delta)})
	}
	m.ed.CommitEdit()
	if len(sel) == 1 {
		m.successMessage = fmt.Sprintf("Layer %d", sel[0].ZIndex+delta)
	}
}

// handleEditingKey treats the property field as a focused text input: the
// editor's shortcuts are suppressed except undo.
func (m model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	runes := []rune(m.editText)
	switch msg.String() {
	case "ctrl+z":
		m.ed.Undo()
		m.endEdit()
		return m, nil
	case "enter":
		p, err := m.editField.patch(m.editText)
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.ed.Edit(p)
		m.ed.CommitEdit()
		m.endEdit()
		return m, nil
	case "esc":
		for id, v := range m.editOriginal {
			if p, err := m.editField.patch(v); err == nil {
				m.ed.EditElement(id, p)
			}
		}
		m.endEdit()
		return m, nil
	case "tab", "shift+tab":
		opts := m.editField.choices()
		if opts == nil {
			return m, nil
		}
		i := slices.Index(opts, m.editText)
		if msg.String() == "tab" {
			i = (i + 1) % len(opts)
		} else {
			i = (i - 1 + len(opts)) % len(opts)
		}
		runes = []rune(opts[i])
		m.editCursorPos = len(runes)
	case "ctrl+v":
		text, err := readClipboardText()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		ins := []rune(cleanClipboardText(text))
		runes = append(runes[:m.editCursorPos], append(ins, runes[m.editCursorPos:]...)...)
		m.editCursorPos += len(ins)
	case "backspace":
		if m.editCursorPos == 0 {
			return m, nil
		}
		runes = append(runes[:m.editCursorPos-1], runes[m.editCursorPos:]...)
		m.editCursorPos--
	case "delete":
		if m.editCursorPos >= len(runes) {
			return m, nil
		}
		runes = append(runes[:m.editCursorPos], runes[m.editCursorPos+1:]...)
	case "left":
		if m.editCursorPos > 0 {
			m.editCursorPos--
		}
		return m, nil
	case "right":
		if m.editCursorPos < len(runes) {
			m.editCursorPos++
		}
		return m, nil
	case "home", "ctrl+a":
		m.editCursorPos = 0
		return m, nil
	case "end", "ctrl+e":
		m.editCursorPos = len(runes)
		return m, nil
	default:
		if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
			return m, nil
		}
		ins := msg.Runes
		if msg.Type == tea.KeySpace {
			ins = []rune{' '}
		}
		runes = append(runes[:m.editCursorPos], append(ins, runes[m.editCursorPos:]...)...)
		m.editCursorPos += len(ins)
	}

	m.editText = string(runes)
	m.errorMessage = ""
	// Text that does not parse yet stays in the field until it does.
	if p, err := m.editField.patch(m.editText); err == nil {
		m.ed.Edit(p)
	}
	return m, nil
}

func (m *model) endEdit() {
	m.mode = ModeNormal
	m.editOriginal = nil
	m.editText = ""
	m.editCursorPos = 0
	m.errorMessage = ""
}

// handlePropertiesKey picks a field from the properties list.
func (m model) handlePropertiesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.editableFields()
	if len(fields) == 0 {
		m.mode = ModeNormal
		return m, nil
	}
	n := len(fields)
	m.propertyIndex = min(max(m.propertyIndex, 0), n-1)
	switch msg.String() {
	case "j", "down":
		m.propertyIndex = (m.propertyIndex + 1) % n
	case "k", "up":
		m.propertyIndex = (m.propertyIndex - 1 + n) % n
	case "enter":
		m.mode = ModeNormal
		m.startEdit(fields[m.propertyIndex])
	case "esc", "i":
		m.mode = ModeNormal
	}
	return m, nil
}
