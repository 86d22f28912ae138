package state

import (
	"sort"
	"testing"
)

func TestToggleSet_ZeroValue(t *testing.T) {
	var s ToggleSet[string]

	if s.Len() != 0 {
		t.Errorf("zero ToggleSet.Len() = %d, want 0", s.Len())
	}
	if s.Has("a") {
		t.Error("zero ToggleSet should not contain any key")
	}

	next := s.Toggle("a")
	if !next.Has("a") {
		t.Error("Toggle() on zero value should switch the key on")
	}
	if s.Has("a") {
		t.Error("Toggle() must not mutate the receiver")
	}
}

func TestToggleSet_Toggle(t *testing.T) {
	s := NewToggleSet(1, 2)

	off := s.Toggle(2)
	if off.Has(2) {
		t.Error("Toggle(2) should remove 2")
	}
	if !off.Has(1) {
		t.Error("Toggle(2) should keep 1")
	}
	if !s.Has(2) {
		t.Error("original set changed after Toggle()")
	}

	keys := off.Toggle(5).Keys()
	sort.Ints(keys)
	if len(keys) != 2 || keys[0] != 1 || keys[1] != 5 {
		t.Errorf("Keys() = %v, want [1 5]", keys)
	}
}

func TestToggleSet_Involution(t *testing.T) {
	sets := []ToggleSet[int]{
		{},
		NewToggleSet[int](),
		NewToggleSet(0),
		NewToggleSet(0, 3, 4),
	}

	for _, s := range sets {
		for _, k := range []int{0, 1, 3, 9} {
			if got := s.Toggle(k).Toggle(k); !got.Equal(s) {
				t.Errorf("Toggle(%d) twice on %v = %v, want identity", k, s.Keys(), got.Keys())
			}
		}
	}
}

func TestToggleSet_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b ToggleSet[int]
		want bool
	}{
		{"both empty", ToggleSet[int]{}, NewToggleSet[int](), true},
		{"same keys", NewToggleSet(1, 2), NewToggleSet(2, 1), true},
		{"different keys", NewToggleSet(1), NewToggleSet(2), false},
		{"different sizes", NewToggleSet(1), NewToggleSet(1, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSwitch(t *testing.T) {
	s := NewSwitch(false)
	if s.On() {
		t.Fatal("NewSwitch(false).On() = true")
	}

	want := []bool{true, false, true, false}
	for i, w := range want {
		s = s.Toggle()
		if s.On() != w {
			t.Errorf("after %d toggles On() = %v, want %v", i+1, s.On(), w)
		}
	}

	if !NewSwitch(true).Equal(NewSwitch(false).Toggle()) {
		t.Error("switches in the same position should be equal")
	}
}
