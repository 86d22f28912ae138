package player

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/eduportal/internal/state"
)

func ref(id string, locked bool) state.MediaReference {
	r, _ := state.NewMediaItem("Lesson "+id, "10:00", id, locked)
	return r
}

func TestRegistry_MountUnmount(t *testing.T) {
	r := NewRegistry()

	if err := r.Mount(ref("a", false)); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if err := r.Mount(ref("b", false)); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	// Mounting twice is a no-op
	if err := r.Mount(ref("a", false)); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	f, ok := r.Frame("a")
	if !ok || f.URL != "https://www.youtube.com/embed/a" {
		t.Errorf("Frame(a) = %+v, %v", f, ok)
	}

	r.Unmount("a")
	r.Unmount("missing")
	if r.IsMounted("a") || !r.IsMounted("b") {
		t.Errorf("after Unmount(a): a=%v b=%v", r.IsMounted("a"), r.IsMounted("b"))
	}
	if got := r.Mounted(); len(got) != 1 || got[0].SourceID != "b" {
		t.Errorf("Mounted() = %+v", got)
	}
}

func TestRegistry_MountLocked(t *testing.T) {
	r := NewRegistry()

	err := r.Mount(ref("x", true))
	var locked *LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("Mount(locked) error = %v, want *LockedError", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, locked media must not mount", r.Len())
	}
}

func TestRegistry_UnmountAll(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		if err := r.Mount(ref(id, false)); err != nil {
			t.Fatal(err)
		}
	}

	r.UnmountAll()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after UnmountAll, want 0", r.Len())
	}
}

func TestRegistry_CopyLink(t *testing.T) {
	r := NewRegistry()
	var copied string
	r.Clipboard = func(s string) error {
		copied = s
		return nil
	}
	if err := r.Mount(ref("a", false)); err != nil {
		t.Fatal(err)
	}

	msg, ok := r.CopyLink("a")().(CopiedMsg)
	if !ok {
		t.Fatal("CopyLink() should produce a CopiedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("CopiedMsg.Err = %v", msg.Err)
	}
	if copied != "https://www.youtube.com/embed/a" {
		t.Errorf("clipboard got %q", copied)
	}

	msg = r.CopyLink("missing")().(CopiedMsg)
	if msg.Err == nil {
		t.Error("copying an unmounted source should fail")
	}
}

func TestRegistry_CopyLinkClipboardError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("no clipboard")
	r.Clipboard = func(string) error { return boom }
	if err := r.Mount(ref("a", false)); err != nil {
		t.Fatal(err)
	}

	msg := r.CopyLink("a")().(CopiedMsg)
	if !errors.Is(msg.Err, boom) {
		t.Errorf("CopiedMsg.Err = %v, want wrapped clipboard error", msg.Err)
	}
}

func TestFrame_View(t *testing.T) {
	r := NewRegistry()
	if err := r.Mount(ref("qz0aGYrrlhU", false)); err != nil {
		t.Fatal(err)
	}
	f, _ := r.Frame("qz0aGYrrlhU")

	out := f.View(80, lipgloss.NewStyle().Border(lipgloss.RoundedBorder()))
	for _, want := range []string{"Lesson qz0aGYrrlhU", "10:00", "embed/qz0aGYrrlhU"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Errorf("truncate() = %q, want abc…", got)
	}
	if got := truncate("abc", 4); got != "abc" {
		t.Errorf("truncate() = %q, want abc", got)
	}
}
