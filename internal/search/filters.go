package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Field identifies one select of the filter panel.
type Field int

const (
	FieldDifficulty Field = iota
	FieldDuration
	FieldRating
)

// Fields lists the filter selects in panel order.
var Fields = []Field{FieldDifficulty, FieldDuration, FieldRating}

// String returns the select label.
func (f Field) String() string {
	switch f {
	case FieldDifficulty:
		return "Difficulty"
	case FieldDuration:
		return "Duration"
	case FieldRating:
		return "Rating"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Option is one choice of a filter select.
type Option struct {
	Value string
	Label string
}

var (
	DifficultyOptions = []Option{
		{"all", "All Levels"},
		{"beginner", "Beginner"},
		{"intermediate", "Intermediate"},
		{"advanced", "Advanced"},
	}
	DurationOptions = []Option{
		{"any", "Any Duration"},
		{"0-2", "0-2 Hours"},
		{"2-5", "2-5 Hours"},
		{"5+", "5+ Hours"},
	}
	RatingOptions = []Option{
		{"any", "Any Rating"},
		{"4", "4+ Stars"},
		{"3", "3+ Stars"},
		{"2", "2+ Stars"},
	}
)

// Options returns the choices of a select. The first one disables the filter.
func Options(f Field) []Option {
	switch f {
	case FieldDifficulty:
		return DifficultyOptions
	case FieldDuration:
		return DurationOptions
	case FieldRating:
		return RatingOptions
	}
	return nil
}

// ParseOption resolves s against the value or label of a select's options,
// ignoring case.
func ParseOption(f Field, s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, o := range Options(f) {
		if strings.EqualFold(s, o.Value) || strings.EqualFold(s, o.Label) {
			return o.Value, nil
		}
	}
	values := make([]string, 0, len(Options(f)))
	for _, o := range Options(f) {
		values = append(values, o.Value)
	}
	return "", fmt.Errorf("unknown %s %q (expected one of %s)",
		strings.ToLower(f.String()), s, strings.Join(values, ", "))
}

// Filters narrows search results by course properties.
type Filters struct {
	Difficulty string `json:"difficulty"`
	Duration   string `json:"duration"`
	Rating     string `json:"rating"`
}

// DefaultFilters returns filters that let every entry through.
func DefaultFilters() Filters {
	return Filters{
		Difficulty: DifficultyOptions[0].Value,
		Duration:   DurationOptions[0].Value,
		Rating:     RatingOptions[0].Value,
	}
}

// IsDefault reports whether no filter is active.
func (f Filters) IsDefault() bool {
	return f == DefaultFilters()
}

// Get returns the selected value of a field.
func (f Filters) Get(field Field) string {
	switch field {
	case FieldDifficulty:
		return f.Difficulty
	case FieldDuration:
		return f.Duration
	case FieldRating:
		return f.Rating
	}
	return ""
}

// With returns a copy with field set to value.
func (f Filters) With(field Field, value string) Filters {
	switch field {
	case FieldDifficulty:
		f.Difficulty = value
	case FieldDuration:
		f.Duration = value
	case FieldRating:
		f.Rating = value
	}
	return f
}

// Cycle moves field by delta options, wrapping around.
func (f Filters) Cycle(field Field, delta int) Filters {
	opts := Options(field)
	if len(opts) == 0 {
		return f
	}
	cur := 0
	for i, o := range opts {
		if o.Value == f.Get(field) {
			cur = i
			break
		}
	}
	next := ((cur+delta)%len(opts) + len(opts)) % len(opts)
	return f.With(field, opts[next].Value)
}

// Label returns the display label of the selected option of field.
func (f Filters) Label(field Field) string {
	v := f.Get(field)
	for _, o := range Options(field) {
		if o.Value == v {
			return o.Label
		}
	}
	return v
}

// Validate checks every field holds a known option value.
func (f Filters) Validate() error {
	for _, field := range Fields {
		if _, err := ParseOption(field, f.Get(field)); err != nil {
			return err
		}
	}
	return nil
}

// Match reports whether an entry with the given level, content hours and
// rating passes every active filter.
func (f Filters) Match(level string, hours, rating float64) bool {
	if f.Difficulty != "" && f.Difficulty != "all" && !strings.EqualFold(level, f.Difficulty) {
		return false
	}

	switch f.Duration {
	case "0-2":
		if hours > 2 {
			return false
		}
	case "2-5":
		if hours <= 2 || hours > 5 {
			return false
		}
	case "5+":
		if hours <= 5 {
			return false
		}
	}

	if floor, err := strconv.ParseFloat(f.Rating, 64); err == nil && rating < floor {
		return false
	}
	return true
}

// Panel holds the filter panel: the draft being edited and the filters
// last applied. Only applied filters affect results.
type Panel struct {
	Draft   Filters
	Applied Filters
}

// NewPanel returns a panel with both draft and applied at defaults.
func NewPanel() Panel {
	return Panel{Draft: DefaultFilters(), Applied: DefaultFilters()}
}

// Apply commits the draft.
func (p Panel) Apply() Panel {
	p.Applied = p.Draft
	return p
}

// Reset restores defaults for both draft and applied filters.
func (p Panel) Reset() Panel {
	return NewPanel()
}

// Dirty reports whether the draft differs from what is applied.
func (p Panel) Dirty() bool {
	return p.Draft != p.Applied
}
