package state

import "fmt"

// IndexError reports a checklist toggle outside the label range.
// It points at a mismatch between the catalog and the caller, not at user input.
type IndexError struct {
	Index int // Requested index
	Len   int // Number of labels in the checklist
}

// Error implements the error interface
func (e *IndexError) Error() string {
	return fmt.Sprintf("checklist index %d out of range [0, %d)", e.Index, e.Len)
}
