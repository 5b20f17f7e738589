package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"protox/internal/editor"
)

func initialModel(ed *editor.Editor, cfg *Config, logger *slog.Logger) model {
	m := model{
		ed:                ed,
		config:            cfg,
		logger:            logger,
		mode:              ModeNormal,
		selectedFileIndex: -1,
	}
	if cfg.StartMenu {
		m.mode = ModeStartup
	}
	m.centerOnSurface()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help && m.mode != ModeStartup {
			return m.handleHelpKey(msg)
		}
		switch m.mode {
		case ModeStartup:
			return m.handleStartupKey(msg)
		case ModePalette:
			return m.handlePaletteKey(msg)
		case ModeEditing:
			return m.handleEditingKey(msg)
		case ModeAlign:
			return m.handleAlignKey(msg)
		case ModeProperties:
			return m.handlePropertiesKey(msg)
		case ModeFileInput:
			return m.handleFileInputKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}
	return m, nil
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) setError(err error) {
	m.errorMessage = err.Error()
	m.successMessage = ""
	m.logger.Warn("operation failed", "err", err)
}

// confirm asks before action when confirmations are enabled and reports
// whether the caller should go ahead right away.
func (m *model) confirm(action ConfirmAction) bool {
	if !m.config.Confirmations {
		return true
	}
	m.confirmAction = action
	m.mode = ModeConfirm
	return false
}
