package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want, cfg)
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr)
	assert.Empty(t, cfg.File)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pagegen.yaml"), []byte(
		"root: site\ntemplates: tmpl\njobs: 4\nlog_level: debug\n",
	), 0644))

	t.Setenv("PAGEGEN_TEMPLATES", "env-templates")
	t.Setenv("PAGEGEN_JOBS", "2")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("jobs", 1, "")
	flags.String("addr", "", "")
	require.NoError(t, flags.Parse([]string{"--jobs", "8"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "site", cfg.Root, "file overrides default")
	assert.Equal(t, "env-templates", cfg.Templates, "env overrides file")
	assert.Equal(t, 8, cfg.Jobs, "changed flag overrides env")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr, "unchanged flag keeps default")
	assert.Equal(t, "pagegen.yaml", filepath.Base(cfg.File))
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, t.TempDir())

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: 0.0.0.0:9000\nreload: false\n"), 0644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
	assert.False(t, cfg.Reload)

	_, err = Load(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_JobsFloor(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PAGEGEN_JOBS", "0")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Jobs)
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
