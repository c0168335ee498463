package withhide

import (
	"fmt"

	"github.com/hide-utils/hide/internal/errors"
)

// OnFailureMode decides what happens to the file when the wrapped command
// fails.
type OnFailureMode string

const (
	// KeepHidden leaves the file hidden so the failure can be inspected
	// without the file in the way.
	KeepHidden OnFailureMode = "keep-hidden"
	// UnHide restores the file regardless of the command's outcome.
	UnHide OnFailureMode = "un-hide"
)

// DefaultOnFailure is used when no mode is configured.
const DefaultOnFailure = UnHide

func OnFailureModes() []OnFailureMode {
	return []OnFailureMode{KeepHidden, UnHide}
}

func ParseOnFailureMode(s string) (OnFailureMode, error) {
	switch OnFailureMode(s) {
	case KeepHidden:
		return KeepHidden, nil
	case UnHide:
		return UnHide, nil
	default:
		return "", errors.ErrInvalidCommand(fmt.Sprintf("unknown on-failure mode '%s' (valid: %s, %s)", s, KeepHidden, UnHide)).
			WithContext("mode", s)
	}
}

func (m OnFailureMode) String() string {
	return string(m)
}
