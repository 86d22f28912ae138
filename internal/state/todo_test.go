package state

import (
	"math"
	"reflect"
	"testing"
)

func seedTodos(t *testing.T) TodoList {
	t.Helper()
	l, err := NewTodoList(
		TodoItem{ID: 1, Text: "Review HTML basics", Priority: PriorityHigh},
		TodoItem{ID: 2, Text: "Complete CSS exercises", Priority: PriorityMedium},
		TodoItem{ID: 3, Text: "Practice JavaScript", Priority: PriorityLow},
	)
	if err != nil {
		t.Fatalf("NewTodoList() error = %v", err)
	}
	return l
}

func TestTodoList_Scenario(t *testing.T) {
	l := seedTodos(t)

	l = l.Remove(2)
	want := []TodoItem{
		{ID: 1, Text: "Review HTML basics", Priority: PriorityHigh},
		{ID: 3, Text: "Practice JavaScript", Priority: PriorityLow},
	}
	if got := l.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("after Remove(2) Items() = %v, want %v", got, want)
	}

	l = l.Add("Ship project")
	want = append(want, TodoItem{ID: 4, Text: "Ship project", Priority: PriorityMedium})
	if got := l.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("after Add() Items() = %v, want %v", got, want)
	}
}

func TestTodoList_AddBlank(t *testing.T) {
	l := seedTodos(t)

	for _, raw := range []string{"", "   ", "\t\n"} {
		if got := l.Add(raw); !got.Equal(l) {
			t.Errorf("Add(%q) changed the list", raw)
		}
	}
}

func TestTodoList_AddTrims(t *testing.T) {
	l := seedTodos(t)

	got := l.Add(" buy milk ")
	if got.Len() != l.Len()+1 {
		t.Fatalf("Add() Len() = %d, want %d", got.Len(), l.Len()+1)
	}

	last := got.Items()[got.Len()-1]
	if last.Text != "buy milk" {
		t.Errorf("Add() text = %q, want %q", last.Text, "buy milk")
	}
	if last.Priority != PriorityMedium {
		t.Errorf("Add() priority = %v, want medium", last.Priority)
	}
	for _, item := range l.Items() {
		if item.ID == last.ID {
			t.Errorf("Add() reused id %d", last.ID)
		}
	}
	if l.Len() != 3 {
		t.Error("Add() mutated the receiver")
	}
}

func TestTodoList_RemoveUnknown(t *testing.T) {
	l := seedTodos(t)

	for _, id := range []int{0, 4, -7, 99} {
		if got := l.Remove(id); !got.Equal(l) {
			t.Errorf("Remove(%d) changed the list", id)
		}
	}

	removed := l.Remove(1)
	if again := removed.Remove(1); !again.Equal(removed) {
		t.Error("removing an already removed id should be a no-op")
	}
}

func TestTodoList_IdsNeverReused(t *testing.T) {
	l, err := NewTodoList()
	if err != nil {
		t.Fatalf("NewTodoList() error = %v", err)
	}

	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		l = l.Add("task")
		items := l.Items()
		id := items[len(items)-1].ID
		if seen[id] {
			t.Fatalf("id %d handed out twice", id)
		}
		seen[id] = true
		if i%3 == 0 {
			l = l.Remove(id)
		}
	}
}

func TestTodoList_ZeroValueAdd(t *testing.T) {
	var l TodoList
	l = l.Add("first").Add("second")

	items := l.Items()
	if len(items) != 2 || items[0].ID == items[1].ID {
		t.Errorf("zero value Add() items = %v", items)
	}
}

func TestTodoList_LargeSeedIDKeepsCounting(t *testing.T) {
	l, err := NewTodoList(
		TodoItem{ID: 1, Text: "a"},
		TodoItem{ID: math.MaxInt - 1, Text: "b"},
	)
	if err != nil {
		t.Fatalf("NewTodoList() error = %v", err)
	}

	l = l.Add("c")
	items := l.Items()
	if got := items[len(items)-1].ID; got != math.MaxInt {
		t.Errorf("new id = %d, want %d", got, math.MaxInt)
	}
	seen := make(map[int]bool)
	for _, item := range items {
		if seen[item.ID] {
			t.Errorf("id %d handed out twice", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestNewTodoList_Invalid(t *testing.T) {
	tests := []struct {
		name string
		seed []TodoItem
	}{
		{"duplicate id", []TodoItem{{ID: 1, Text: "a"}, {ID: 1, Text: "b"}}},
		{"blank text", []TodoItem{{ID: 1, Text: "  "}}},
		{"zero id", []TodoItem{{ID: 0, Text: "a"}}},
		{"negative id", []TodoItem{{ID: -4, Text: "a"}}},
		{"max id", []TodoItem{{ID: 1, Text: "a"}, {ID: math.MaxInt, Text: "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTodoList(tt.seed...); err == nil {
				t.Error("NewTodoList() error = nil, want error")
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"Medium", PriorityMedium, false},
		{" HIGH ", PriorityHigh, false},
		{"urgent", PriorityMedium, true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePriority(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
