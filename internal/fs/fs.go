package fs

import (
	"errors"
	"os"
	"syscall"
)

const (
	// Strict permissions (gosec-compliant defaults)
	DirStrict  = 0o750 // rwxr-x---
	FileStrict = 0o600 // rw-------

	// Default permissions for user-visible fixtures
	DirDefault  = 0o755 // rwxr-xr-x
	FileDefault = 0o644 // rw-r--r--
)

// Exists reports whether path names an existing directory entry. Symlinks are
// not followed, so a dangling link still exists. Missing paths and paths
// that cannot be inspected for lack of permission report false; any other
// failure is returned.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission),
		errors.Is(err, syscall.ENOTDIR):
		return false, nil
	default:
		return false, err
	}
}

// Rename moves oldpath to newpath in a single filesystem operation. Unlike
// os.Rename it refuses to replace an existing newpath and reports
// os.ErrExist instead. There is no copy+delete fallback, so moves across
// devices fail with the underlying error.
func Rename(oldpath, newpath string) error {
	return renameNoReplace(oldpath, newpath)
}

// renameChecked is the portable no-replace rename: it checks the
// destination before delegating to os.Rename. The check and the rename are
// two steps, so a destination created in between is still replaced.
func renameChecked(oldpath, newpath string) error {
	if _, err := os.Lstat(newpath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrExist}
	}
	return os.Rename(oldpath, newpath)
}
