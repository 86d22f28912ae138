package state

import "testing"

func TestNewMediaItem(t *testing.T) {
	ref, st := NewMediaItem("HTML Fundamentals", "15:30", "qz0aGYrrlhU", false)

	if ref.Title != "HTML Fundamentals" || ref.DurationLabel != "15:30" || ref.SourceID != "qz0aGYrrlhU" {
		t.Errorf("NewMediaItem() ref = %+v", ref)
	}
	if ref.Locked {
		t.Error("ref should not be locked")
	}
	if st.Visible() {
		t.Error("playback should start hidden")
	}
}

func TestRequestToggle_Unlocked(t *testing.T) {
	ref, st := NewMediaItem("CSS Basics", "20:45", "1PnVor36_40", false)

	want := []bool{true, false, true, false, true}
	for i, w := range want {
		st = RequestToggle(ref, st)
		if st.Visible() != w {
			t.Errorf("call %d: Visible() = %v, want %v", i+1, st.Visible(), w)
		}
	}
}

func TestRequestToggle_Locked(t *testing.T) {
	ref, st := NewMediaItem("JavaScript Introduction", "18:20", "W6NZfCO5SIk", true)
	start := st

	for i := 0; i < 5; i++ {
		st = RequestToggle(ref, st)
		if st.Visible() {
			t.Fatalf("call %d: locked reference became visible", i+1)
		}
	}
	if !st.Equal(start) {
		t.Error("locked toggle should return the state unchanged")
	}
}
