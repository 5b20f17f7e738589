// Command protox is a terminal canvas editor for UI prototypes. Elements are
// placed, arranged and styled on a fixed-size surface and exported as a
// standalone HTML page or a PNG preview.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"protox/internal/editor"
	"protox/internal/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:          "protox [document]",
		Short:        "Terminal canvas editor for UI prototypes",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(configPath, args)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/protox/config.yaml)")
	root.AddCommand(
		newExportCmd(&configPath),
		newPNGCmd(&configPath),
		newPresetsCmd(),
	)
	return root
}

func runEditor(configPath string, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger, closeLog, err := setupLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ed := newEditor(cfg, logger)
	m := initialModel(ed, cfg, logger)
	if len(args) == 1 {
		if err := m.openDocument(args[0]); err != nil {
			return err
		}
		m.mode = ModeNormal
	}

	logger.Info("starting editor", "surface", ed.Surface().String(), "document", m.currentFile)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

// newEditor sizes the resize handle to one terminal cell so the bottom-right
// cell of a selected element always grabs it.
func newEditor(cfg *Config, logger *slog.Logger) *editor.Editor {
	return editor.New(
		editor.WithLogger(logger),
		editor.WithSurface(cfg.SurfacePreset()),
		editor.WithHandleSize(math.Max(cfg.CellWidth, cfg.CellHeight)),
	)
}

// setupLogger opens the log file for appending. The terminal belongs to the
// UI, so with no file configured logs are discarded.
func setupLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

// loadForExport reads a document and applies an optional surface override.
func loadForExport(path, surface string) (editor.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return editor.Document{}, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	doc, err := editor.ReadDocument(f)
	if err != nil {
		return editor.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	if surface != "" {
		s, ok := editor.PresetByName(surface)
		if !ok {
			return editor.Document{}, fmt.Errorf("unknown surface %q", surface)
		}
		doc.Surface = s
	}
	return doc, nil
}

func newExportCmd(configPath *string) *cobra.Command {
	var out, surface string
	cmd := &cobra.Command{
		Use:   "export <document>",
		Short: "Write a document as a standalone HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			doc, err := loadForExport(args[0], surface)
			if err != nil {
				return err
			}
			if out == "" {
				if err := cfg.EnsureSaveDirectory(); err != nil {
					return err
				}
				out = cfg.GetSavePath(htmlExportName)
			}
			if err := os.WriteFile(out, render.HTML(doc.Elements, doc.Surface), 0644); err != nil {
				return fmt.Errorf("write html: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d elements to %s\n", len(doc.Elements), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default prototype.html in the save directory)")
	cmd.Flags().StringVar(&surface, "surface", "", "override the document surface with a preset")
	return cmd
}

func newPNGCmd(configPath *string) *cobra.Command {
	var out, surface string
	var scale float64
	cmd := &cobra.Command{
		Use:   "png <document>",
		Short: "Render a PNG preview of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			doc, err := loadForExport(args[0], surface)
			if err != nil {
				return err
			}
			if out == "" {
				if err := cfg.EnsureSaveDirectory(); err != nil {
					return err
				}
				base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				out = cfg.GetSavePath(base + pngExportExt)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create png: %w", err)
			}
			defer f.Close()
			if err := render.PNG(f, doc.Elements, doc.Surface, scale); err != nil {
				return fmt.Errorf("render png: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s (%s)\n", out, doc.Surface)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default <document>.png in the save directory)")
	cmd.Flags().StringVar(&surface, "surface", "", "override the document surface with a preset")
	cmd.Flags().Float64Var(&scale, "scale", 1, "pixels per surface unit")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the surface presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			all := append([]editor.Surface{editor.DefaultSurface}, editor.Presets...)
			for _, s := range all {
				fmt.Fprintf(w, "%-8s %gx%g\n", s.Name, s.W, s.H)
			}
		},
	}
}
