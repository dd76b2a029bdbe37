package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gamearena.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultTitle, cfg.Title)
	assert.Equal(t, 100, cfg.TicksPerSecond)
	assert.Equal(t, "BLACK", cfg.BackgroundColour)
	assert.Empty(t, cfg.BackgroundImage)
	assert.True(t, cfg.Vsync)
}

func TestLoadFile_AllValues(t *testing.T) {
	path := writeConfig(t, `
title = "Pong Practice"
ticks_per_second = 60
background_colour = "#102040"
background_image = "court.png"
vsync = false
`)
	cfg, err := LoadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "Pong Practice", cfg.Title)
	assert.Equal(t, 60, cfg.TicksPerSecond)
	assert.Equal(t, "#102040", cfg.BackgroundColour)
	assert.Equal(t, "court.png", cfg.BackgroundImage)
	assert.False(t, cfg.Vsync)
}

func TestLoadFile_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
title = "Just A Title"
`)
	cfg, err := LoadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "Just A Title", cfg.Title)
	assert.Equal(t, 100, cfg.TicksPerSecond)
	assert.Equal(t, "BLACK", cfg.BackgroundColour)
	assert.True(t, cfg.Vsync)
}

func TestLoadFile_MissingFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, Default(), cfg, "a failed load must still hand back usable settings")
}

func TestLoadFile_MalformedFile(t *testing.T) {
	path := writeConfig(t, `title = = "broken"`)
	cfg, err := LoadFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
	assert.Equal(t, Default(), cfg)
}

func TestLoad_NoFileAnywhere(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	assert.NoError(t, err, "a missing default file is not an error")
	assert.Equal(t, Default(), cfg)
}

func TestLoad_DefaultPathInWorkingDirectory(t *testing.T) {
	t.Setenv(EnvVar, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultPath), []byte(`title = "From CWD"`), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "From CWD", cfg.Title)
}

func TestLoad_EnvVarWins(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "pointed-at.toml")
	require.NoError(t, os.WriteFile(envPath, []byte(`title = "From Env"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultPath), []byte(`title = "From CWD"`), 0o644))
	t.Setenv(EnvVar, envPath)
	t.Chdir(dir)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Title)
}

func TestLoad_EnvVarPointsAtMissingFile(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "gone.toml"))

	cfg, err := Load()
	assert.Error(t, err, "an explicitly named file must not be missing silently")
	assert.Equal(t, Default(), cfg)
}
