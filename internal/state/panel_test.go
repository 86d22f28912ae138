package state

import "testing"

func TestNewPanel(t *testing.T) {
	closed := NewPanel("Required Videos", "video", false)
	if closed.IsOpen() {
		t.Error("NewPanel(defaultOpen=false) should start closed")
	}

	open := NewPanel("Class Notes", "book", true)
	if !open.IsOpen() {
		t.Error("NewPanel(defaultOpen=true) should start open")
	}
	if open.Title != "Class Notes" || open.Icon != "book" {
		t.Errorf("NewPanel() = %+v, title/icon not kept", open)
	}
}

func TestPanelState_ToggleInvolution(t *testing.T) {
	for _, defaultOpen := range []bool{false, true} {
		p := NewPanel("Checklist", "list", defaultOpen)

		once := p.Toggle()
		if once.IsOpen() == p.IsOpen() {
			t.Errorf("Toggle() did not flip IsOpen (defaultOpen=%v)", defaultOpen)
		}
		if twice := once.Toggle(); !twice.Equal(p) {
			t.Errorf("Toggle(Toggle(p)) != p (defaultOpen=%v)", defaultOpen)
		}
		if p.IsOpen() != defaultOpen {
			t.Error("Toggle() mutated the receiver")
		}
	}
}
