package buffer

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dshills/scribe/internal/vfs"
)

// Errors matched by a LoadError of the corresponding kind.
var (
	// ErrNotFound indicates the source does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied indicates the source exists but cannot be read.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidEncoding indicates the source is not Unicode text.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrIO indicates any other failure reading the source.
	ErrIO = errors.New("i/o failure")
)

// LoadKind classifies a load failure.
type LoadKind uint8

const (
	LoadIO               LoadKind = iota // any other read failure
	LoadNotFound                         // source does not exist
	LoadPermissionDenied                 // source cannot be read
	LoadInvalidEncoding                  // source is not Unicode text
)

// String returns the string representation of the kind.
func (k LoadKind) String() string {
	switch k {
	case LoadNotFound:
		return "not found"
	case LoadPermissionDenied:
		return "permission denied"
	case LoadInvalidEncoding:
		return "invalid encoding"
	default:
		return "i/o failure"
	}
}

func (k LoadKind) sentinel() error {
	switch k {
	case LoadNotFound:
		return ErrNotFound
	case LoadPermissionDenied:
		return ErrPermissionDenied
	case LoadInvalidEncoding:
		return ErrInvalidEncoding
	default:
		return ErrIO
	}
}

// LoadError reports a failed load. Err is the storage collaborator's error,
// unchanged, so both errors.Is(err, ErrNotFound) and
// errors.Is(err, fs.ErrNotExist) hold for a missing file.
type LoadError struct {
	Op   string   // stat, read or decode
	Path string   // source location
	Kind LoadKind // failure class
	Err  error    // underlying error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *LoadError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Open loads the file at path from fsys into a new document. The content
// must be Unicode text (see vfs.DecodeText). On failure no document is
// returned and the error is a *LoadError. Failures are not retried.
func Open(fsys vfs.VFS, path string, opts ...Option) (*Document, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, loadFailed(opts, &LoadError{Op: "stat", Path: path, Kind: classify(err), Err: err})
	}
	if info.IsDir() {
		return nil, loadFailed(opts, &LoadError{Op: "stat", Path: path, Kind: LoadIO, Err: vfs.ErrIsDir})
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, loadFailed(opts, &LoadError{Op: "read", Path: path, Kind: classify(err), Err: err})
	}

	text, enc, err := vfs.DecodeText(data)
	if err != nil {
		return nil, loadFailed(opts, &LoadError{Op: "decode", Path: path, Kind: LoadInvalidEncoding, Err: err})
	}

	d := FromSource(text, path, opts...)
	d.logger.Debug("loaded %s (%s, %d bytes)", path, enc, info.Size())
	return d, nil
}

func classify(err error) LoadKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return LoadNotFound
	case errors.Is(err, fs.ErrPermission):
		return LoadPermissionDenied
	default:
		return LoadIO
	}
}

func loadFailed(opts []Option, err *LoadError) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.logger.WithComponent("buffer").Debug("load failed: %v", err)
	return err
}
