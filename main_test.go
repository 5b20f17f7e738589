package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protox/internal/editor"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestDocument(t *testing.T, dir string) string {
	t.Helper()
	ed := editor.New(editor.WithSurface(editor.Presets[0]))
	ed.Place(editor.Template{Kind: editor.KindHeading, Width: 200, Height: 40, Content: "Welcome"}, 10, 10)
	ed.Place(editor.Template{Kind: editor.KindButton, Width: 120, Height: 40, Content: "Sign in"}, 10, 80)

	path := filepath.Join(dir, "doc.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, ed.Save(f))
	require.NoError(t, f.Close())
	return path
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "default  800x600")
	assert.Contains(t, out, "phone    375x812")
	assert.Contains(t, out, "desktop  1280x800")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	doc := writeTestDocument(t, dir)
	out := filepath.Join(dir, "page.html")

	stdout, err := execute(t, "export", doc, "-o", out, "--config", filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported 2 elements")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sign in")
	assert.Contains(t, string(data), "375px")
}

func TestExportCommandSurfaceOverride(t *testing.T) {
	dir := t.TempDir()
	doc := writeTestDocument(t, dir)
	out := filepath.Join(dir, "page.html")

	_, err := execute(t, "export", doc, "-o", out, "--surface", "desktop", "--config", filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1280px")

	_, err = execute(t, "export", doc, "-o", out, "--surface", "watch", "--config", filepath.Join(dir, "none.yaml"))
	assert.ErrorContains(t, err, `unknown surface "watch"`)
}

func TestPNGCommand(t *testing.T) {
	dir := t.TempDir()
	doc := writeTestDocument(t, dir)
	out := filepath.Join(dir, "shot.png")

	stdout, err := execute(t, "png", doc, "-o", out, "--scale", "0.5", "--config", filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Rendered")
	assert.FileExists(t, out)
}

func TestExportCommandBadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [a document"), 0644))

	_, err := execute(t, "export", path, "--config", filepath.Join(dir, "none.yaml"))
	assert.ErrorIs(t, err, editor.ErrBadDocument)
}

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "protox.log")
	logger, closeLog, err := setupLogger(path)
	require.NoError(t, err)
	logger.Info("hello", "k", "v")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}
