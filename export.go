package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"protox/internal/render"
)

// exportHTML writes the page into the save directory and puts the markup on
// the system clipboard. A clipboard failure is logged, not returned.
func (m *model) exportHTML() (string, error) {
	if err := m.config.EnsureSaveDirectory(); err != nil {
		return "", err
	}
	page := render.HTML(m.ed.Elements(), m.ed.Surface())
	path := m.config.GetSavePath(htmlExportName)
	if err := os.WriteFile(path, page, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := writeClipboardText(string(page)); err != nil {
		m.logger.Warn("copy html to clipboard", "err", err)
	}
	m.logger.Info("exported html", "path", path, "elements", m.ed.Len())
	return path, nil
}

func (m *model) exportPNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := render.PNG(f, m.ed.Elements(), m.ed.Surface(), 1); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	m.logger.Info("exported png", "path", path)
	return nil
}

func (m *model) saveDocument(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := m.ed.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	m.currentFile = path
	m.logger.Info("saved document", "path", path, "elements", m.ed.Len())
	return nil
}

// openDocument loads a document file as a fresh session.
func (m *model) openDocument(name string) error {
	path := m.resolveDocument(name)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := m.ed.Open(f); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	m.currentFile = path
	m.centerOnSurface()
	m.logger.Info("opened document", "path", path, "elements", m.ed.Len())
	return nil
}

func (m *model) newDocument() {
	m.ed.Load(nil, m.ed.Surface())
	m.currentFile = ""
	m.centerOnSurface()
}

// resolveDocument adds the document extension when missing and falls back to
// the save directory for bare names.
func (m *model) resolveDocument(name string) string {
	if filepath.Ext(name) == "" {
		name += documentExt
	}
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return m.config.GetSavePath(name)
}

func withExt(name, ext string) string {
	if strings.EqualFold(filepath.Ext(name), ext) {
		return name
	}
	return name + ext
}

// scanDocuments lists saved documents in the save directory, or the working
// directory when none is configured.
func (m *model) scanDocuments() {
	m.fileList = nil
	m.selectedFileIndex = -1

	dir := m.config.SaveDirectory
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return
		}
		dir = wd
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), documentExt) {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)
	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
		m.filename = strings.TrimSuffix(m.fileList[0], documentExt)
	}
}

func (m *model) startFileInput(op FileOperation) {
	m.fileOp = op
	m.filename = ""
	m.errorMessage = ""
	m.mode = ModeFileInput
	switch op {
	case FileOpOpen:
		m.scanDocuments()
	case FileOpSave:
		if m.currentFile != "" {
			m.filename = strings.TrimSuffix(filepath.Base(m.currentFile), documentExt)
		}
	}
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		if m.fromStartup {
			m.mode = ModeStartup
			m.fromStartup = false
		}
		m.filename = ""
		m.errorMessage = ""
		return m, nil
	case "up", "down":
		if m.fileOp != FileOpOpen || len(m.fileList) == 0 {
			return m, nil
		}
		n := len(m.fileList)
		if msg.String() == "up" {
			m.selectedFileIndex = (m.selectedFileIndex - 1 + n) % n
		} else {
			m.selectedFileIndex = (m.selectedFileIndex + 1) % n
		}
		m.filename = strings.TrimSuffix(m.fileList[m.selectedFileIndex], documentExt)
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.filename)
		if name == "" {
			m.errorMessage = "Please enter a filename"
			return m, nil
		}
		if m.fileOp != FileOpOpen && m.config.Confirmations {
			if _, err := os.Stat(m.targetPath(name)); err == nil && m.targetPath(name) != m.currentFile {
				m.filename = name
				m.confirm(ConfirmOverwriteFile)
				return m, nil
			}
		}
		m.runFileOp(name)
		return m, nil
	case "backspace":
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m *model) targetPath(name string) string {
	switch m.fileOp {
	case FileOpExportPNG:
		return m.config.GetSavePath(withExt(name, pngExportExt))
	case FileOpOpen:
		return m.resolveDocument(name)
	default:
		return m.config.GetSavePath(withExt(name, documentExt))
	}
}

// runFileOp performs the pending file operation. On failure the prompt stays
// open so the name can be corrected.
func (m *model) runFileOp(name string) {
	path := m.targetPath(name)
	var err error
	switch m.fileOp {
	case FileOpSave:
		if err = m.config.EnsureSaveDirectory(); err == nil {
			err = m.saveDocument(path)
		}
	case FileOpOpen:
		err = m.openDocument(name)
	case FileOpExportPNG:
		if err = m.config.EnsureSaveDirectory(); err == nil {
			err = m.exportPNG(path)
		}
	}
	if err != nil {
		m.mode = ModeFileInput
		m.setError(err)
		if errors.Is(err, os.ErrNotExist) {
			m.errorMessage = "File not found: " + path
		}
		return
	}
	m.mode = ModeNormal
	m.fromStartup = false
	m.filename = ""
	m.errorMessage = ""
	switch m.fileOp {
	case FileOpSave:
		m.successMessage = "Saved " + path
	case FileOpOpen:
		m.successMessage = "Opened " + path
	case FileOpExportPNG:
		m.successMessage = "Exported " + path
	}
}
