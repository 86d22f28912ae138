package search

import (
	"slices"
	"testing"
)

func TestRecent(t *testing.T) {
	r := NewRecent(3, "a", "b", "c")
	if got := r.Items(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("NewRecent() items = %v", got)
	}

	steps := []struct {
		term string
		want []string
	}{
		{"b", []string{"b", "a", "c"}},
		{"d", []string{"d", "b", "a"}},
		{"   ", []string{"d", "b", "a"}},
		{" B ", []string{"B", "d", "a"}},
	}

	for _, s := range steps {
		r = r.Add(s.term)
		if got := r.Items(); !slices.Equal(got, s.want) {
			t.Errorf("Add(%q) = %v, want %v", s.term, got, s.want)
		}
	}
}

func TestRecent_AddDoesNotMutate(t *testing.T) {
	r := NewRecent(2, "x")
	_ = r.Add("y")

	if r.Len() != 1 {
		t.Errorf("original Len() = %d, want 1", r.Len())
	}
}

func TestNewRecent_DefaultLimit(t *testing.T) {
	if got := NewRecent(0).Limit(); got != DefaultRecentLimit {
		t.Errorf("Limit() = %d, want %d", got, DefaultRecentLimit)
	}
}
