// Package search looks for the file a user probably meant when the path
// they gave does not exist.
package search

import (
	"github.com/hide-utils/hide/internal/errors"
	"github.com/hide-utils/hide/internal/fs"
	"github.com/hide-utils/hide/internal/renaming"
)

// FindIntendedFile checks whether the counterpart of path, its hidden name
// if path is visible or its visible name if path is hidden, exists. It
// reports the counterpart and true when it does.
func FindIntendedFile(path string, marker rune) (string, bool, error) {
	other, err := renaming.Flip(path, marker)
	if err != nil {
		return "", false, err
	}

	exists, err := fs.Exists(other)
	if err != nil {
		return "", false, errors.ErrIO("existence check", err).WithContext("path", other)
	}
	if !exists {
		return "", false, nil
	}

	return other, true, nil
}
