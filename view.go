package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"protox/internal/editor"
	"protox/internal/render"
)

const (
	colorText    lipgloss.Color = "#cdd6f4"
	colorSubtle  lipgloss.Color = "#6c7086"
	colorSurface lipgloss.Color = "#313244"
	colorBase    lipgloss.Color = "#1e1e2e"
	colorAccent  lipgloss.Color = "#f5c2e7"
	colorMarquee lipgloss.Color = "#89b4fa"
	colorHandle  lipgloss.Color = "#f9e2af"
	colorMode    lipgloss.Color = "#cba6f7"
	colorError   lipgloss.Color = "#f38ba8"
	colorSuccess lipgloss.Color = "#a6e3a1"
)

const paletteWidth = 26

var (
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	handleStyle   = lipgloss.NewStyle().Foreground(colorHandle).Bold(true)
	marqueeStyle  = lipgloss.NewStyle().Foreground(colorMarquee)
	surfaceStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorText)
	statusStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface)
	modeStyle     = lipgloss.NewStyle().Foreground(colorBase).Background(colorMode).Bold(true).Padding(0, 1)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface)
	paletteStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorSubtle).PaddingLeft(1)
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
)

// cellKind selects the style a grid cell is painted with.
type cellKind uint8

const (
	cellPlain cellKind = iota
	cellSurface
	cellSelected
	cellHandle
	cellMarquee
	cellCursor
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellSurface:  surfaceStyle,
	cellSelected: selectedStyle,
	cellHandle:   handleStyle,
	cellMarquee:  marqueeStyle,
	cellCursor:   cursorStyle,
}

// grid is the rune canvas the view paints into, in screen cells.
type grid struct {
	runes [][]rune
	kinds [][]cellKind
}

func newGrid(width, height int) *grid {
	g := &grid{runes: make([][]rune, height), kinds: make([][]cellKind, height)}
	for y := range g.runes {
		g.runes[y] = []rune(strings.Repeat(" ", width))
		g.kinds[y] = make([]cellKind, width)
	}
	return g
}

func (g *grid) set(x, y int, r rune, k cellKind) {
	if y < 0 || y >= len(g.runes) || x < 0 || x >= len(g.runes[y]) {
		return
	}
	g.runes[y][x] = r
	g.kinds[y][x] = k
}

func (g *grid) text(x, y, maxX int, s string, k cellKind) {
	for _, r := range s {
		if x > maxX {
			return
		}
		g.set(x, y, r, k)
		x++
	}
}

// lines renders each row, styling runs of equal kind.
func (g *grid) lines() []string {
	out := make([]string, len(g.runes))
	for y, row := range g.runes {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && g.kinds[y][x] == g.kinds[y][start] {
				continue
			}
			run := string(row[start:x])
			if style, ok := cellStyles[g.kinds[y][start]]; ok {
				run = style.Render(run)
			}
			b.WriteString(run)
			start = x
		}
		out[y] = b.String()
	}
	return out
}

func (m model) View() string {
	if m.mode == ModeStartup {
		return m.startupView()
	}
	if m.help {
		return m.helpView()
	}

	width := m.width
	if width < 1 {
		width = 80
	}
	height := m.canvasHeight()
	if m.height < 1 {
		height = 24
	}

	var body string
	switch {
	case m.mode == ModeFileInput && m.fileOp == FileOpOpen:
		body = m.fileListView(width, height)
	case m.mode == ModePalette && width > paletteWidth*2:
		canvas := strings.Join(m.renderCanvas(width-paletteWidth, height), "\n")
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.paletteView(height))
	case m.mode == ModeProperties && width > paletteWidth*2:
		canvas := strings.Join(m.renderCanvas(width-paletteWidth, height), "\n")
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.propertiesView(height))
	default:
		body = strings.Join(m.renderCanvas(width, height), "\n")
	}
	return body + "\n" + m.statusLine(width)
}

// renderCanvas paints the surface, the elements in paint order, the
// selection chrome, the marquee and the cursor.
func (m model) renderCanvas(width, height int) []string {
	g := newGrid(width, height)
	m.drawSurface(g)
	for _, el := range render.PaintOrder(m.ed.Elements()) {
		m.drawElement(g, el, m.ed.IsSelected(el.ID))
	}
	if r, ok := m.ed.Marquee(); ok {
		m.drawFrame(g, m.rectFootprint(r), '.', '.', '.', cellMarquee)
	}
	if !m.mouseDown {
		g.set(m.cursorX, m.cursorY, '█', cellCursor)
	}
	return g.lines()
}

func (m model) drawSurface(g *grid) {
	s := m.ed.Surface()
	area := m.footprint(editor.Element{W: s.W, H: s.H})
	if m.showGrid {
		for wy := area.y0; wy <= area.y1; wy++ {
			for wx := area.x0; wx <= area.x1; wx++ {
				if wx%4 == 0 && wy%2 == 0 {
					g.set(wx-m.panX, wy-m.panY, '·', cellSurface)
				}
			}
		}
	}
	frame := cellRect{x0: area.x0 - 1, y0: area.y0 - 1, x1: area.x1 + 1, y1: area.y1 + 1}
	m.drawFrame(g, frame, '┈', '┊', '+', cellSurface)
}

func (m model) drawFrame(g *grid, r cellRect, horizontal, vertical, corner rune, k cellKind) {
	for wx := r.x0; wx <= r.x1; wx++ {
		g.set(wx-m.panX, r.y0-m.panY, horizontal, k)
		g.set(wx-m.panX, r.y1-m.panY, horizontal, k)
	}
	for wy := r.y0; wy <= r.y1; wy++ {
		g.set(r.x0-m.panX, wy-m.panY, vertical, k)
		g.set(r.x1-m.panX, wy-m.panY, vertical, k)
	}
	for _, c := range [][2]int{{r.x0, r.y0}, {r.x1, r.y0}, {r.x0, r.y1}, {r.x1, r.y1}} {
		g.set(c[0]-m.panX, c[1]-m.panY, corner, k)
	}
}

func (m model) drawElement(g *grid, el editor.Element, selected bool) {
	r := m.footprint(el)
	x0, y0 := r.x0-m.panX, r.y0-m.panY
	x1, y1 := r.x1-m.panX, r.y1-m.panY

	k := cellPlain
	if selected {
		k = cellSelected
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.set(x, y, ' ', k)
		}
	}

	switch {
	case el.Kind == editor.KindLine:
		fill := '─'
		if el.H > el.W {
			fill = '│'
		}
		if selected {
			fill = '#'
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				g.set(x, y, fill, k)
			}
		}
	case y1 > y0 && x1 > x0:
		corner, horizontal, vertical := '+', '-', '|'
		if selected {
			corner, horizontal, vertical = '#', '#', '#'
		}
		m.drawFrame(g, r, horizontal, vertical, corner, k)
		g.text(x0+1, y0+(y1-y0)/2, x1-1, elementLabel(el), k)
	default:
		g.text(x0, y0, x1, elementLabel(el), k)
	}

	if selected {
		g.set(x1, y1, '◢', cellHandle)
	}
}

// elementLabel is the short text shown inside an element's box.
func elementLabel(el editor.Element) string {
	switch el.Kind {
	case editor.KindCheckbox:
		return "[x]"
	case editor.KindRadio:
		return "(*)"
	case editor.KindSwitch:
		return "(on)"
	case editor.KindSlider:
		return "--o--"
	case editor.KindProgress:
		return "▰▰▰▱▱"
	case editor.KindAvatar:
		return "(@)"
	case editor.KindImage:
		return "[img]"
	case editor.KindIcon:
		if el.IconRef == "" {
			return "*"
		}
		return "*" + el.IconRef
	case editor.KindSelect:
		return el.Content + " v"
	case editor.KindInput:
		if el.Content == "" {
			return "____"
		}
		return el.Content
	default:
		return el.Content
	}
}

func (m model) paletteView(height int) string {
	lines := []string{titleStyle.Render("Palette")}
	category := ""
	for i, tmpl := range editor.Catalog() {
		if tmpl.Category != category {
			category = tmpl.Category
			lines = append(lines, surfaceStyle.Render(category))
		}
		marker := "  "
		label := tmpl.Label
		if i == m.paletteIndex {
			marker = "> "
			label = selectedStyle.Render(label)
		}
		lines = append(lines, marker+label)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return paletteStyle.Height(height).Width(paletteWidth - 2).Render(strings.Join(lines, "\n"))
}

// propertiesView lists the selection's editable fields with their values.
func (m model) propertiesView(height int) string {
	lines := []string{titleStyle.Render("Properties")}
	sel := m.ed.SelectedElements()
	for i, f := range m.editableFields() {
		text := f.String()
		if len(sel) == 1 {
			text = fmt.Sprintf("%-13s %s", text, truncate(f.value(sel[0]), 9))
		}
		marker := "  "
		if i == m.propertyIndex {
			marker = "> "
			text = selectedStyle.Render(text)
		}
		lines = append(lines, marker+text)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return paletteStyle.Height(height).Width(paletteWidth - 2).Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (m model) fileListView(width, height int) string {
	lines := []string{"Select a saved document:", strings.Repeat("─", width)}
	if len(m.fileList) == 0 {
		lines = append(lines, "  (no documents found)")
	}
	for i, name := range m.fileList {
		marker := "  "
		if i == m.selectedFileIndex {
			marker = "> "
			name = selectedStyle.Render(name)
		}
		lines = append(lines, marker+name)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}

func (m model) modeString() string {
	switch m.mode {
	case ModeStartup:
		return "STARTUP"
	case ModeNormal:
		if m.zPanMode {
			return "PAN"
		}
		if m.additive {
			return "MULTI"
		}
		return "NORMAL"
	case ModePalette:
		return "PALETTE"
	case ModeEditing:
		return "EDIT"
	case ModeAlign:
		return "ALIGN"
	case ModeProperties:
		return "PROPERTIES"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) statusLine(width int) string {
	var parts []string
	switch m.mode {
	case ModePalette:
		parts = append(parts, "j/k=choose, Enter=place at cursor, click=place, Esc=cancel")
	case ModeEditing:
		runes := []rune(m.editText)
		text := string(runes[:m.editCursorPos]) + "▏" + string(runes[m.editCursorPos:])
		parts = append(parts, fmt.Sprintf("%s: %s", m.editField, text))
		if opts := m.editField.choices(); opts != nil {
			parts = append(parts, "Tab="+strings.Join(opts, "/"))
		}
		parts = append(parts, "Enter=apply, Esc=cancel, Ctrl+Z=undo")
	case ModeProperties:
		parts = append(parts, "j/k=choose, Enter=edit, Esc=close")
	case ModeAlign:
		parts = append(parts, "align l/c/r t/m/b, distribute h/v, Esc=cancel")
	case ModeFileInput:
		op := map[FileOperation]string{FileOpSave: "Save", FileOpOpen: "Open", FileOpExportPNG: "Export PNG"}[m.fileOp]
		parts = append(parts, fmt.Sprintf("%s filename: %s", op, m.filename))
		if m.fileOp == FileOpOpen {
			parts = append(parts, "↑/↓=navigate, Enter=confirm, Esc=cancel")
		} else {
			parts = append(parts, "Enter=confirm, Esc=cancel")
		}
	case ModeConfirm:
		parts = append(parts, m.confirmMessage())
	default:
		parts = append(parts, m.ed.Surface().String(), fmt.Sprintf("%d elements", m.ed.Len()))
		if el, ok := m.singleSelected(); ok {
			parts = append(parts, fmt.Sprintf("%s x: %g, y: %g, w: %g, h: %g", el.Kind, el.X, el.Y, el.W, el.H))
		} else if n := len(m.ed.Selected()); n > 1 {
			parts = append(parts, fmt.Sprintf("%d selected", n))
		}
		if m.errorMessage == "" && m.successMessage == "" {
			parts = append(parts, "? for help | q to quit")
		}
	}

	line := modeStyle.Render(m.modeString()) + statusStyle.Render(" "+strings.Join(parts, " | "))
	switch {
	case m.errorMessage != "":
		line += errorStyle.Render(" | ERROR: " + m.errorMessage)
	case m.successMessage != "":
		line += successStyle.Render(" | " + m.successMessage)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func (m model) confirmMessage() string {
	switch m.confirmAction {
	case ConfirmDelete:
		return fmt.Sprintf("Delete %d element(s)? (y/n)", len(m.ed.Selected()))
	case ConfirmQuit:
		return "Quit protox? (y/n)"
	case ConfirmNewDocument:
		return "Start a new document? Unsaved changes will be lost. (y/n)"
	case ConfirmOverwriteFile:
		return fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
	default:
		return "(y/n)"
	}
}

func (m model) startupView() string {
	lines := []string{
		titleStyle.Render("protox"),
		"",
		"A canvas for UI prototypes in your terminal.",
		"",
		"  n  New document",
		"  o  Open a saved document",
		"  q  Quit",
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMode).Padding(1, 3)
	return box.Render(strings.Join(lines, "\n"))
}

func (m model) helpView() string {
	helpLines := []string{
		titleStyle.Render("protox help"),
		"",
		"Mouse:",
		"  drag an element          move the selection",
		"  drag the ◢ corner        resize a selected element",
		"  drag the background      box-select (shift/ctrl or 'm' adds)",
		"  wheel                    pan",
		"",
		"Keyboard:",
		"  hjkl / arrows            move cursor (HJKL faster)",
		"  z                        toggle pan mode",
		"  space                    click at cursor",
		"  m                        toggle multi-select",
		"  p                        palette: place a component",
		"  e / b / t                edit content / background / text color",
		"  i                        properties: geometry, type, border, opacity",
		"  S                        toggle drop shadow",
		"  [ / ]                    send back / bring forward one layer",
		"  a                        align or distribute the selection",
		"  1 2 3 4                  surface: default, phone, tablet, desktop",
		"  g                        toggle grid",
		"  ctrl+c / ctrl+v          copy / paste",
		"  delete                   delete selection",
		"  ctrl+a                   select all",
		"  ctrl+z / ctrl+y          undo / redo",
		"  esc                      clear selection",
		"",
		"Files:",
		"  s / o                    save / open document",
		"  x                        export prototype.html (also copied)",
		"  E                        export PNG preview",
		"  n                        new document",
		"  q                        quit",
		"",
		"j/k to scroll, ? or esc to close",
	}
	start := m.helpScroll
	if start >= len(helpLines) {
		start = len(helpLines) - 1
	}
	visible := helpLines[start:]
	if m.height > 0 && len(visible) > m.height {
		visible = visible[:m.height]
	}
	return strings.Join(visible, "\n")
}
