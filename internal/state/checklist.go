package state

import "sort"

// ChecklistState is a fixed list of task labels plus the completed indices.
type ChecklistState struct {
	labels    []string
	completed ToggleSet[int]
}

// NewChecklist creates a checklist with nothing completed.
// The labels are copied; later changes to the slice do not leak in.
func NewChecklist(labels []string) ChecklistState {
	cp := make([]string, len(labels))
	copy(cp, labels)
	return ChecklistState{labels: cp}
}

// Labels returns a copy of the task labels.
func (c ChecklistState) Labels() []string {
	cp := make([]string, len(c.labels))
	copy(cp, c.labels)
	return cp
}

// Len returns the number of labels.
func (c ChecklistState) Len() int {
	return len(c.labels)
}

// Toggle flips completion of the task at index.
func (c ChecklistState) Toggle(index int) (ChecklistState, error) {
	if index < 0 || index >= len(c.labels) {
		return c, &IndexError{Index: index, Len: len(c.labels)}
	}
	c.completed = c.completed.Toggle(index)
	return c, nil
}

// IsCompleted reports whether the task at index is done.
// Out-of-range indices are never completed.
func (c ChecklistState) IsCompleted(index int) bool {
	return c.completed.Has(index)
}

// Completed returns the completed indices in ascending order.
func (c ChecklistState) Completed() []int {
	keys := c.completed.Keys()
	sort.Ints(keys)
	return keys
}

// Progress returns the completed fraction in [0, 1].
func (c ChecklistState) Progress() float64 {
	if len(c.labels) == 0 {
		return 0
	}
	return float64(c.completed.Len()) / float64(len(c.labels))
}

// Equal compares labels and completion.
func (c ChecklistState) Equal(other ChecklistState) bool {
	if len(c.labels) != len(other.labels) {
		return false
	}
	for i := range c.labels {
		if c.labels[i] != other.labels[i] {
			return false
		}
	}
	return c.completed.Equal(other.completed)
}
