package convert

import "fmt"

// FrameworkError reports an export whose declared framework identity does not
// match the descriptor the caller asked for. It is checked eagerly, before
// any traversal starts.
type FrameworkError struct {
	Want string
	Got  string
}

// Error implements the error interface.
func (e *FrameworkError) Error() string {
	return fmt.Sprintf("framework mismatch: converter expects %s, export declares %s", e.Want, e.Got)
}
