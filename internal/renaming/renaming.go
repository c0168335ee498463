// Package renaming decides whether a file is hidden and moves it between its
// hidden and visible names. A file is hidden when its name starts with the
// marker rune; the marker is always passed in by the caller.
package renaming

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hide-utils/hide/internal/errors"
	"github.com/hide-utils/hide/internal/fs"
	"github.com/hide-utils/hide/internal/logger"
)

// DefaultMarker is the conventional Unix dotfile prefix.
const DefaultMarker = '.'

// FileName returns the final element of path. Trailing separators are
// ignored. Paths without a usable final element (empty, root, "." or "..")
// fail with NO_FILE_NAME, and names that are not valid UTF-8 fail with
// NOT_UNICODE.
func FileName(path string) (string, error) {
	_, name, err := split(path)
	return name, err
}

// split separates path into its parent, spelled exactly as given, and its
// file name.
func split(path string) (string, string, error) {
	trimmed := path
	for len(trimmed) > 0 && os.IsPathSeparator(trimmed[len(trimmed)-1]) {
		trimmed = trimmed[:len(trimmed)-1]
	}

	dir, name := filepath.Split(trimmed)
	switch name {
	case "", ".", "..":
		return "", "", errors.ErrNoFileName(path)
	}

	if !utf8.ValidString(name) {
		return "", "", errors.ErrNotUnicode(path)
	}

	return dir, name, nil
}

// IsHidden reports whether the file name of path starts with marker. Only
// the name is inspected; the file does not need to exist.
func IsHidden(path string, marker rune) (bool, error) {
	_, name, err := split(path)
	if err != nil {
		return false, err
	}

	first, _ := utf8.DecodeRuneInString(name)
	return first == marker, nil
}

// HiddenPath returns path with marker prepended to its file name.
func HiddenPath(path string, marker rune) (string, error) {
	dir, name, err := split(path)
	if err != nil {
		return "", err
	}

	return dir + string(marker) + name, nil
}

// UnhiddenPath returns path with one leading marker removed from its file
// name. Callers must have classified path as hidden first; a name without
// the marker fails with the internal NOT_HIDDEN error.
func UnhiddenPath(path string, marker rune) (string, error) {
	dir, name, err := split(path)
	if err != nil {
		return "", err
	}

	prefix := string(marker)
	if !strings.HasPrefix(name, prefix) {
		return "", errors.ErrNotHidden(path, marker)
	}

	visible := strings.TrimPrefix(name, prefix)
	switch visible {
	case "", ".", "..":
		return "", errors.ErrEmptyFileName(path, marker)
	}

	return dir + visible, nil
}

// Flip returns the opposite-state counterpart of path without touching the
// filesystem.
func Flip(path string, marker rune) (string, error) {
	hidden, err := IsHidden(path, marker)
	if err != nil {
		return "", err
	}

	if hidden {
		return UnhiddenPath(path, marker)
	}
	return HiddenPath(path, marker)
}

// Hide renames path to its hidden name and returns the new path. An already
// hidden path is returned unchanged without touching the filesystem.
func Hide(path string, marker rune) (string, error) {
	hidden, err := IsHidden(path, marker)
	if err != nil {
		return "", err
	}
	if hidden {
		logger.Debug("file already hidden", "path", path)
		return path, nil
	}

	dest, err := HiddenPath(path, marker)
	if err != nil {
		return "", err
	}

	if err := move(path, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Unhide renames path to its visible name and returns the new path. An
// already visible path is returned unchanged without touching the
// filesystem.
func Unhide(path string, marker rune) (string, error) {
	hidden, err := IsHidden(path, marker)
	if err != nil {
		return "", err
	}
	if !hidden {
		logger.Debug("file already visible", "path", path)
		return path, nil
	}

	dest, err := UnhiddenPath(path, marker)
	if err != nil {
		return "", err
	}

	if err := move(path, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// AutoTransition hides a visible path or un-hides a hidden one and returns
// the new path. Applying it twice restores the original name.
func AutoTransition(path string, marker rune) (string, error) {
	dest, err := Flip(path, marker)
	if err != nil {
		return "", err
	}

	if err := move(path, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func move(from, to string) error {
	logger.DebugOperation("rename", "from", from, "to", to)

	if err := fs.Rename(from, to); err != nil {
		logger.WithOperation("rename").WithError(err).Debug("rename failed", "from", from, "to", to)
		return errors.ErrIO("rename", err).
			WithContext("from", from).
			WithContext("to", to)
	}
	return nil
}
