package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/props/pkg/errors"
	"github.com/arthur-debert/props/pkg/filehandler"
	"github.com/arthur-debert/props/pkg/properties"
)

const (
	dataDirID   properties.Identity = "preset-test-data-dir"
	cacheDirID  properties.Identity = "preset-test-cache-dir"
	newFileID   properties.Identity = "preset-test-new-file"
	parentDirID properties.Identity = "preset-test-parent-dir"
	childDirID  properties.Identity = "preset-test-child-dir"
)

func init() {
	properties.MustBind(dataDirID, Directory(Path{
		Flag: Flag{
			Identity:    dataDirID,
			Identifiers: []string{"--data-dir"},
			Description: "A directory that must already exist.",
		},
		Existence: filehandler.Must,
	}))
	properties.MustBind(cacheDirID, Directory(Path{
		Flag: Flag{
			Identity:    cacheDirID,
			Identifiers: []string{"--cache-dir"},
			Description: "A directory created on demand.",
		},
		Existence:  filehandler.Must,
		AutoCreate: filehandler.AutoOn,
	}))
	properties.MustBind(newFileID, File(Path{
		Flag: Flag{
			Identity:    newFileID,
			Identifiers: []string{"--out-file"},
			Description: "A file that must not exist yet.",
		},
		Existence: filehandler.MustNot,
	}))
	properties.MustBind(parentDirID, Directory(Path{
		Flag: Flag{
			Identity:    parentDirID,
			Identifiers: []string{"--parent-dir"},
			Description: "The base directory relative children resolve against.",
		},
	}))
	properties.MustBind(childDirID, Directory(Path{
		Flag: Flag{
			Identity:    childDirID,
			Identifiers: []string{"--child-dir"},
			Description: "A directory resolved against the parent when relative.",
		},
		Default: "sub",
		Parent:  parentDirID,
	}))
}

func withConfirm(t *testing.T, confirm filehandler.ConfirmFunc) {
	t.Helper()
	previous := Confirm
	Confirm = confirm
	t.Cleanup(func() { Confirm = previous })
}

func TestDirectoryMustExistFails(t *testing.T) {
	withConfirm(t, func(string) bool { return false })

	s := properties.New("preset-test")
	s.EnableTestMode()
	s.RegisterWithDefault(dataDirID, filepath.Join(t.TempDir(), "missing"))

	err := s.Parse(nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestDirectoryAutoCreate(t *testing.T) {
	withConfirm(t, func(string) bool { return false })

	target := filepath.Join(t.TempDir(), "nested", "cache")
	s := properties.New("preset-test")
	s.EnableTestMode()
	s.RegisterWithDefault(cacheDirID, target)

	require.NoError(t, s.Parse(nil))
	assert.DirExists(t, target)
}

func TestDirectoryCreatedAfterConfirmation(t *testing.T) {
	var asked string
	withConfirm(t, func(path string) bool {
		asked = path
		return true
	})

	target := filepath.Join(t.TempDir(), "confirmed")
	s := properties.New("preset-test")
	s.EnableTestMode()
	s.RegisterWithDefault(dataDirID, target)

	require.NoError(t, s.Parse(nil))
	assert.Equal(t, target, asked)
	assert.DirExists(t, target)
}

func TestFileMustNotExist(t *testing.T) {
	withConfirm(t, func(string) bool { return false })

	target := filepath.Join(t.TempDir(), "result.txt")
	require.NoError(t, os.WriteFile(target, []byte("occupied"), 0o644))

	s := properties.New("preset-test")
	s.EnableTestMode()
	s.RegisterWithDefault(newFileID, target)

	err := s.Parse(nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
}

func TestRelativePathResolvedAgainstParent(t *testing.T) {
	withConfirm(t, func(string) bool { return false })

	base := t.TempDir()
	s := properties.New("preset-test")
	s.EnableTestMode()
	s.RegisterWithDefault(parentDirID, base)
	s.Register(childDirID)

	require.NoError(t, s.Parse(nil))

	value, err := properties.Value[string](s, childDirID)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "sub"), value)
}

func TestAbsolutePathIgnoresParent(t *testing.T) {
	withConfirm(t, func(string) bool { return false })

	base := t.TempDir()
	override := filepath.Join(t.TempDir(), "elsewhere")
	s := properties.New("preset-test")
	s.EnableTestMode()
	s.RegisterWithDefault(parentDirID, base)
	s.Register(childDirID)

	require.NoError(t, s.Parse([]string{"--child-dir", override}))

	value, err := properties.Value[string](s, childDirID)
	require.NoError(t, err)
	assert.Equal(t, override, value)
}
