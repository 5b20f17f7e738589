package main

import (
	"log/slog"

	"protox/internal/editor"
)

type model struct {
	ed     *editor.Editor
	config *Config
	logger *slog.Logger

	width    int
	height   int
	cursorX  int
	cursorY  int
	panX     int
	panY     int
	zPanMode bool

	mode       Mode
	help       bool
	helpScroll int
	showGrid   bool
	additive   bool
	mouseDown  bool

	paletteIndex  int
	propertyIndex int

	editField     EditField
	editText      string
	editCursorPos int
	editOriginal  map[string]string

	filename          string
	currentFile       string
	fileList          []string
	selectedFileIndex int
	fileOp            FileOperation
	confirmAction     ConfirmAction
	fromStartup       bool

	errorMessage   string
	successMessage string
}

// cellRect is an element's footprint in world cells, inclusive on both ends.
type cellRect struct {
	x0, y0, x1, y1 int
}
