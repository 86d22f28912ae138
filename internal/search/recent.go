package search

import "strings"

// DefaultRecentLimit is how many recent searches are kept when no limit is
// configured.
const DefaultRecentLimit = 5

// Recent is the most-recent-first list of submitted search terms.
// Like the state types it is a value: Add returns a new list.
type Recent struct {
	items []string
	limit int
}

// NewRecent creates a list capped at limit, seeded oldest-last.
func NewRecent(limit int, seed ...string) Recent {
	if limit < 1 {
		limit = DefaultRecentLimit
	}
	r := Recent{limit: limit}
	for i := len(seed) - 1; i >= 0; i-- {
		r = r.Add(seed[i])
	}
	return r
}

// Add moves term to the front, dropping a previous case-insensitive
// duplicate and anything past the limit. Blank terms are ignored.
func (r Recent) Add(term string) Recent {
	term = strings.TrimSpace(term)
	if term == "" {
		return r
	}

	items := make([]string, 0, len(r.items)+1)
	items = append(items, term)
	for _, it := range r.items {
		if !strings.EqualFold(it, term) {
			items = append(items, it)
		}
	}
	if len(items) > r.limit {
		items = items[:r.limit]
	}
	return Recent{items: items, limit: r.limit}
}

// Items returns the terms, most recent first.
func (r Recent) Items() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of terms.
func (r Recent) Len() int {
	return len(r.items)
}

// Limit returns the cap.
func (r Recent) Limit() int {
	return r.limit
}
