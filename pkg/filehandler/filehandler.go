// Package filehandler applies existence contracts to file and directory
// property values: verify that a path exists (or does not), and create it
// when auto-creation is enabled or the user confirmed it interactively.
package filehandler

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/props/pkg/errors"
	"github.com/arthur-debert/props/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
)

// Kind distinguishes file from directory handling
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// String returns the kind name used in messages
func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// ExistenceHandling declares what the property expects of the path
type ExistenceHandling int

const (
	// May accepts the path whether it exists or not
	May ExistenceHandling = iota
	// Must requires the path to exist once the property is loaded
	Must
	// MustNot requires the path to not exist yet
	MustNot
)

// AutoMode controls automatic creation of missing must-exist paths
type AutoMode int

const (
	AutoOff AutoMode = iota
	AutoOn
)

// ConfirmFunc asks whether a missing path may be created. A nil func means
// non-interactive operation: missing paths are never created on demand.
type ConfirmFunc func(path string) bool

var log = logging.GetLogger("filehandler")

// Apply enforces the existence contract for path. It may create the path as
// a side effect, which is why file and directory properties run it in their
// load action step.
func Apply(path string, kind Kind, existence ExistenceHandling, auto AutoMode, confirm ConfirmFunc) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "empty path")
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if existence == MustNot {
			return errors.Newf(errors.ErrValidation, "%s %q already exists", kind, path)
		}
		if kind == KindDirectory && !info.IsDir() {
			return errors.Newf(errors.ErrValidation, "%q exists but is not a directory", path)
		}
		if kind == KindFile && info.IsDir() {
			return errors.Newf(errors.ErrValidation, "%q exists but is a directory", path)
		}
		return nil
	case os.IsNotExist(err):
		if existence != Must {
			return nil
		}
	default:
		return errors.Wrapf(err, errors.ErrFileAccess, "could not stat %q", path)
	}

	// Missing and required to exist.
	if auto != AutoOn {
		if confirm == nil || !confirm(path) {
			return errors.Newf(errors.ErrFileNotFound, "%s %q does not exist", kind, path)
		}
	}

	log.Debug().Str("path", path).Str("kind", kind.String()).Msg("Creating missing path")
	return Create(path, kind)
}

// Create creates the file or directory (and missing parent directories)
// through a synthfs pipeline.
func Create(path string, kind Kind) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "could not resolve path %q", path)
	}

	ops, err := creationOperations(abs, kind)
	if err != nil {
		return err
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range ops {
		if err := pipeline.Add(op); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to add operation to pipeline")
		}
	}

	result := synthfs.NewExecutor().Run(context.Background(), pipeline, filesystem.NewOSFileSystem("/"))
	if result.GetError() != nil {
		code := errors.ErrDirCreate
		if kind == KindFile {
			code = errors.ErrFileCreate
		}
		return errors.Wrapf(result.GetError(), code, "could not create %s %q", kind, abs)
	}

	log.Info().Str("path", abs).Str("kind", kind.String()).Msg("Path created")
	return nil
}

// creationOperations builds the operation list for an absolute path: parent
// directories first, then the path itself.
func creationOperations(abs string, kind Kind) ([]synthfs.Operation, error) {
	var ops []synthfs.Operation

	parent := filepath.Dir(abs)
	if kind == KindFile {
		if _, err := os.Stat(parent); os.IsNotExist(err) {
			op, err := createDirOperation(parent)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
		op, err := createFileOperation(abs)
		if err != nil {
			return nil, err
		}
		return append(ops, op), nil
	}

	op, err := createDirOperation(abs)
	if err != nil {
		return nil, err
	}
	return append(ops, op), nil
}

func createDirOperation(abs string) (synthfs.Operation, error) {
	relPath, err := filepath.Rel("/", abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", abs)
	}

	opID := core.OperationID(fmt.Sprintf("create-dir-%s", abs))
	createOp := operations.NewCreateDirectoryOperation(opID, relPath)
	createOp.SetItem(&directoryItem{
		path: relPath,
		mode: 0755,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func createFileOperation(abs string) (synthfs.Operation, error) {
	relPath, err := filepath.Rel("/", abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", abs)
	}

	opID := core.OperationID(fmt.Sprintf("create-file-%s", abs))
	createOp := operations.NewCreateFileOperation(opID, relPath)
	createOp.SetItem(&fileItem{
		path: relPath,
		mode: 0644,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

// directoryItem implements the item interface synthfs needs for directories
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }

// fileItem implements the item interface synthfs needs for files
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }
