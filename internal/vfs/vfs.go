// Package vfs provides the read side of a virtual file system, used to load
// document content from storage.
//
// The VFS interface allows swapping the underlying file system
// implementation, so documents can be loaded from the OS or from an
// in-memory file system in tests.
package vfs

import "errors"

// ErrIsDir is returned when a directory is read as a file.
var ErrIsDir = errors.New("is a directory")

// VFS is the storage collaborator a document is loaded from.
// Errors follow io/fs conventions: missing files match fs.ErrNotExist and
// unreadable files match fs.ErrPermission under errors.Is.
type VFS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information.
	Stat(path string) (FileInfo, error)

	// Exists returns true if the path exists.
	Exists(path string) bool
}

// FileInfo describes a file or directory.
type FileInfo struct {
	size  int64
	isDir bool
}

// NewFileInfo creates a FileInfo from the given parameters.
func NewFileInfo(size int64, isDir bool) FileInfo {
	return FileInfo{size: size, isDir: isDir}
}

// Size returns the file size in bytes.
func (fi FileInfo) Size() int64 { return fi.size }

// IsDir returns true if this is a directory.
func (fi FileInfo) IsDir() bool { return fi.isDir }
