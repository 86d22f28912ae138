package state

import (
	"errors"
	"reflect"
	"testing"
)

func TestChecklist_Scenario(t *testing.T) {
	c := NewChecklist([]string{"A", "B", "C"})

	steps := []struct {
		index int
		want  []int
	}{
		{1, []int{1}},
		{0, []int{0, 1}},
		{1, []int{0}},
	}

	for _, step := range steps {
		var err error
		c, err = c.Toggle(step.index)
		if err != nil {
			t.Fatalf("Toggle(%d) error = %v", step.index, err)
		}
		if got := c.Completed(); !reflect.DeepEqual(got, step.want) {
			t.Errorf("after Toggle(%d) Completed() = %v, want %v", step.index, got, step.want)
		}
	}
}

func TestChecklist_DoubleToggleIsIdentity(t *testing.T) {
	base := NewChecklist([]string{"Set up", "HTML", "CSS", "JS", "Submit"})
	base, _ = base.Toggle(3)

	for i := 0; i < base.Len(); i++ {
		once, err := base.Toggle(i)
		if err != nil {
			t.Fatalf("Toggle(%d) error = %v", i, err)
		}
		if once.IsCompleted(i) == base.IsCompleted(i) {
			t.Errorf("Toggle(%d) did not flip membership", i)
		}
		twice, _ := once.Toggle(i)
		if !twice.Equal(base) {
			t.Errorf("Toggle(%d) twice is not identity: %v vs %v", i, twice.Completed(), base.Completed())
		}
	}
}

func TestChecklist_OutOfRange(t *testing.T) {
	c := NewChecklist([]string{"A", "B", "C"})

	for _, idx := range []int{-1, 3, 42} {
		got, err := c.Toggle(idx)
		if err == nil {
			t.Errorf("Toggle(%d) error = nil, want IndexError", idx)
			continue
		}

		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Errorf("Toggle(%d) error = %T, want *IndexError", idx, err)
			continue
		}
		if idxErr.Index != idx || idxErr.Len != 3 {
			t.Errorf("IndexError = %+v, want Index=%d Len=3", idxErr, idx)
		}
		if !got.Equal(c) {
			t.Errorf("Toggle(%d) changed state on error", idx)
		}
	}
}

func TestChecklist_LabelsAreCopied(t *testing.T) {
	labels := []string{"A", "B"}
	c := NewChecklist(labels)
	labels[0] = "changed"

	if c.Labels()[0] != "A" {
		t.Error("NewChecklist() should copy labels")
	}
}

func TestChecklist_Progress(t *testing.T) {
	c := NewChecklist([]string{"A", "B", "C", "D"})
	if c.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", c.Progress())
	}
	c, _ = c.Toggle(0)
	c, _ = c.Toggle(2)
	if c.Progress() != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", c.Progress())
	}
	if NewChecklist(nil).Progress() != 0 {
		t.Error("empty checklist Progress() should be 0")
	}
}
