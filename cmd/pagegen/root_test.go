package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/pagegen/internal/adapters/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	var buf bytes.Buffer
	cmd := newRootCmd(cli.NewWriterOutput(&buf), io.Discard)
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestNewPageThenGenerate(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "site")
	tmpl := filepath.Join(dir, "templates")

	out, err := run(t, "new-page", "events", "--root", root, "--templates", tmpl)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Created new page: events")

	out, err = run(t, "--root", root, "--templates", tmpl, "--jobs", "2")
	require.NoError(t, err, out)
	assert.Contains(t, out, "🚀 Community Page Generator")
	assert.Contains(t, out, "Generated 1/1 pages successfully!")
	assert.Contains(t, out, "🎉 Generation completed successfully!")
	assert.FileExists(t, filepath.Join(root, "events", "body.html"))

	out, err = run(t, "events", "--root", root, "--templates", tmpl)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Generating specific page: events")
}

func TestGenerateFailures(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "site")
	require.NoError(t, os.MkdirAll(root, 0755))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "no pages",
			args: []string{"--root", root},
			want: "No page folders found",
		},
		{
			name: "unknown page",
			args: []string{"ghost", "--root", root},
			want: "page folder 'ghost' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			assert.ErrorIs(t, err, errReported)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "💥 Generation failed!")
		})
	}
}

func TestNewPage_Exists(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "site")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "events"), 0755))

	out, err := run(t, "new-page", "events", "--root", root, "--templates", filepath.Join(dir, "templates"))
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "page folder 'events' already exists")
}

func TestArgs(t *testing.T) {
	_, err := run(t, "a", "b")
	assert.Error(t, err)

	_, err = run(t, "new-page")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// matching testing.T.Chdir (unavailable before Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
