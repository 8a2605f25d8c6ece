package graph

import "fmt"

// IntegrityError reports a relationship whose destination identifier does not
// resolve to any element in the index. It is fatal: a build that hits one
// aborts with no partial output.
type IntegrityError struct {
	SourceID     string
	DestID       string
	RelationType string
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	if e.RelationType != "" {
		return fmt.Sprintf("relationship %s -> %s (%s): destination not found in graph", e.SourceID, e.DestID, e.RelationType)
	}
	return fmt.Sprintf("relationship %s -> %s: destination not found in graph", e.SourceID, e.DestID)
}
