package commands

import "fmt"

// ExitError asks the caller to exit with Code without printing anything
// further. Commands return it when the outcome has already been reported.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
