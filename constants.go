package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModePalette
	ModeEditing
	ModeAlign
	ModeProperties
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpOpen
	FileOpExportPNG
)

type ConfirmAction int

const (
	ConfirmDelete ConfirmAction = iota
	ConfirmQuit
	ConfirmNewDocument
	ConfirmOverwriteFile
)

// EditField is the property being typed into while in ModeEditing.
type EditField int

const (
	FieldContent EditField = iota
	FieldBackground
	FieldTextColor
	FieldX
	FieldY
	FieldWidth
	FieldHeight
	FieldFontSize
	FieldFontWeight
	FieldTextAlign
	FieldBorderRadius
	FieldBorderWidth
	FieldBorderColor
	FieldOpacity
	FieldShadow
	numFields
)

const (
	documentExt    = ".yaml"
	htmlExportName = "prototype.html"
	pngExportExt   = ".png"
	statusLines    = 1
)
