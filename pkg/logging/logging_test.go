package logging

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevelByName(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	require.NoError(t, SetLevelByName("debug"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevelByName("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	err := SetLevelByName("loud")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("respects XDG_STATE_HOME", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", dir)

		got := getLogFilePath()
		assert.Equal(t, filepath.Join(dir, "props", "props.log"), got)
	})

	t.Run("falls back to home state dir", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		got := getLogFilePath()
		assert.True(t, strings.HasSuffix(got, filepath.Join("props", "props.log")))
	})
}

func TestSetupLogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "props.log")

	file, err := setupLogFile(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	assert.FileExists(t, path)
}
