package state

import (
	"fmt"
	"math"
	"strings"
)

// Priority ranks a todo item. It only drives the colored dot.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// String returns the lowercase name used in catalogs
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// ParsePriority maps "low", "medium" or "high" (any case) to a Priority.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return PriorityMedium, fmt.Errorf("unknown priority %q (expected low, medium or high)", s)
	}
}

// TodoItem is one entry of a todo list.
type TodoItem struct {
	ID       int
	Text     string
	Priority Priority
}

// TodoList is an ordered list of todo items. Insertion order is display order.
//
// Ids come from a counter owned by the list, so two adds can never collide.
// The counter only moves forward: a removed id is never handed out again.
type TodoList struct {
	items  []TodoItem
	nextID int
}

// NewTodoList builds a list from seed items, keeping their order.
// Seeds must have unique positive ids below math.MaxInt and non-blank text.
// The counter starts past the largest seed id.
func NewTodoList(seed ...TodoItem) (TodoList, error) {
	l := TodoList{items: make([]TodoItem, 0, len(seed)), nextID: 1}
	seen := make(map[int]bool, len(seed))
	for _, item := range seed {
		if item.ID < 1 || item.ID == math.MaxInt {
			return TodoList{}, fmt.Errorf("todo id %d out of range", item.ID)
		}
		if seen[item.ID] {
			return TodoList{}, fmt.Errorf("duplicate todo id %d", item.ID)
		}
		seen[item.ID] = true
		if strings.TrimSpace(item.Text) == "" {
			return TodoList{}, fmt.Errorf("todo %d has empty text", item.ID)
		}
		l.items = append(l.items, item)
		if item.ID >= l.nextID {
			l.nextID = item.ID + 1
		}
	}
	return l, nil
}

// Add appends rawText, trimmed, as a medium priority item.
// Blank text leaves the list unchanged.
func (l TodoList) Add(rawText string) TodoList {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return l
	}
	if l.nextID == 0 {
		l.nextID = 1
	}
	items := make([]TodoItem, len(l.items), len(l.items)+1)
	copy(items, l.items)
	items = append(items, TodoItem{ID: l.nextID, Text: text, Priority: PriorityMedium})
	return TodoList{items: items, nextID: l.nextID + 1}
}

// Remove drops the item with the given id. Unknown ids leave the list unchanged.
func (l TodoList) Remove(id int) TodoList {
	idx := -1
	for i, item := range l.items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return l
	}
	items := make([]TodoItem, 0, len(l.items)-1)
	items = append(items, l.items[:idx]...)
	items = append(items, l.items[idx+1:]...)
	return TodoList{items: items, nextID: l.nextID}
}

// Items returns a copy of the items in display order.
func (l TodoList) Items() []TodoItem {
	cp := make([]TodoItem, len(l.items))
	copy(cp, l.items)
	return cp
}

// Len returns the number of items.
func (l TodoList) Len() int {
	return len(l.items)
}

// Get returns the item with the given id.
func (l TodoList) Get(id int) (TodoItem, bool) {
	for _, item := range l.items {
		if item.ID == id {
			return item, true
		}
	}
	return TodoItem{}, false
}

// Equal compares items in order. The id counter is part of the state too.
func (l TodoList) Equal(other TodoList) bool {
	if l.nextID != other.nextID || len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if l.items[i] != other.items[i] {
			return false
		}
	}
	return true
}
