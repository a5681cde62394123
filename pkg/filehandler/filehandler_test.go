package filehandler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/props/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyExisting(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	t.Run("must exist is satisfied", func(t *testing.T) {
		assert.NoError(t, Apply(dir, KindDirectory, Must, AutoOff, nil))
		assert.NoError(t, Apply(file, KindFile, Must, AutoOff, nil))
	})

	t.Run("must not exist fails", func(t *testing.T) {
		err := Apply(dir, KindDirectory, MustNot, AutoOff, nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
	})

	t.Run("kind mismatch fails", func(t *testing.T) {
		err := Apply(dir, KindFile, Must, AutoOff, nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))

		err = Apply(file, KindDirectory, Must, AutoOff, nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
	})
}

func TestApplyMissing(t *testing.T) {
	t.Run("may tolerates missing", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")
		assert.NoError(t, Apply(missing, KindDirectory, May, AutoOff, nil))
	})

	t.Run("must not tolerates missing", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")
		assert.NoError(t, Apply(missing, KindDirectory, MustNot, AutoOff, nil))
	})

	t.Run("must fails without auto create", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")
		err := Apply(missing, KindDirectory, Must, AutoOff, nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})

	t.Run("auto create builds the directory", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "sub", "dir")
		require.NoError(t, os.MkdirAll(filepath.Dir(missing), 0755))

		require.NoError(t, Apply(missing, KindDirectory, Must, AutoOn, nil))
		info, err := os.Stat(missing)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("confirmation creates on yes", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "confirmed")
		asked := ""
		confirm := func(path string) bool {
			asked = path
			return true
		}

		require.NoError(t, Apply(missing, KindDirectory, Must, AutoOff, confirm))
		assert.Equal(t, missing, asked)
		assert.DirExists(t, missing)
	})

	t.Run("confirmation declines on no", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "declined")
		err := Apply(missing, KindDirectory, Must, AutoOff, func(string) bool { return false })
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
		assert.NoDirExists(t, missing)
	})
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	require.NoError(t, Create(path, KindFile))
	assert.FileExists(t, path)
}

func TestApplyEmptyPath(t *testing.T) {
	err := Apply("", KindFile, Must, AutoOff, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
