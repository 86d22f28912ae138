package catalog

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a catalog.
type ValidationError struct {
	Source   string   // File path, or "embedded" for the built-in catalog
	Problems []string // One entry per failed check
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("invalid catalog %s: %s", e.Source, e.Problems[0])
	}
	return fmt.Sprintf("invalid catalog %s: %d problems: %s", e.Source, len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) add(format string, args ...interface{}) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}
