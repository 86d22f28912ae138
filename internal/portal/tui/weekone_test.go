package tui

import (
	"errors"
	"testing"

	"github.com/muurk/eduportal/internal/player"
	"github.com/muurk/eduportal/internal/state"
)

func newTestWeek(t *testing.T) WeekOneModel {
	t.Helper()
	m, err := NewWeekOneModel(testCatalog(t).Week, player.NewRegistry())
	if err != nil {
		t.Fatalf("NewWeekOneModel() error = %v", err)
	}
	return m
}

func pressWeek(t *testing.T, m WeekOneModel, keys ...string) WeekOneModel {
	t.Helper()
	for _, k := range keys {
		var msg = keyRunes(k)
		switch k {
		case "enter":
			msg = keyEnter
		case "esc":
			msg = keyEsc
		case "up":
			msg = keyUp
		case "down":
			msg = keyDown
		}
		m, _ = m.update(msg)
	}
	return m
}

// cursorTo moves the cursor onto the first row matching kind and index
func cursorTo(t *testing.T, m WeekOneModel, kind rowKind, index int) WeekOneModel {
	t.Helper()
	for i, r := range m.rows() {
		if r.kind == kind && (kind == rowPanel && r.panel == index || kind != rowPanel && r.index == index) {
			m.Cursor = i
			return m
		}
	}
	t.Fatalf("no row of kind %v with index %d", kind, index)
	return m
}

func TestNewWeekOneModel(t *testing.T) {
	m := newTestWeek(t)

	if len(m.Panels) != 5 {
		t.Fatalf("len(Panels) = %d, want 5", len(m.Panels))
	}
	if !m.Panels[PanelNotes].IsOpen() {
		t.Error("Class Notes should start open")
	}
	if len(m.Media) != 3 || len(m.Playback) != 3 {
		t.Fatalf("Media/Playback = %d/%d, want 3", len(m.Media), len(m.Playback))
	}
	for i, p := range m.Playback {
		if p.Visible() {
			t.Errorf("Playback[%d] visible at mount", i)
		}
	}
	if m.Typing() {
		t.Error("Typing() = true at mount")
	}
	// Closed panels contribute only their header
	if got := len(m.rows()); got != 5 {
		t.Errorf("len(rows()) = %d, want 5", got)
	}
}

func TestWeekOneModel_TogglePanel(t *testing.T) {
	m := newTestWeek(t)
	initial := m.Panels[PanelNotes]

	m = pressWeek(t, m, "enter")
	if m.Panels[PanelNotes].IsOpen() {
		t.Error("enter on Class Notes should close it")
	}
	m = pressWeek(t, m, "enter")
	if !m.Panels[PanelNotes].Equal(initial) {
		t.Error("toggling twice should restore the panel")
	}

	m = pressWeek(t, m, "down", "enter")
	if !m.Panels[PanelVideos].IsOpen() {
		t.Fatal("enter on Required Videos should open it")
	}
	if got := len(m.rows()); got != 5+len(m.Media) {
		t.Errorf("len(rows()) = %d, want %d", got, 5+len(m.Media))
	}
}

func TestWeekOneModel_Videos(t *testing.T) {
	m := newTestWeek(t)
	players := m.Players()
	m = m.togglePanel(PanelVideos)

	// The third video is locked
	m = cursorTo(t, m, rowVideo, 2)
	m = pressWeek(t, m, "enter")
	if m.Playback[2].Visible() || players.Len() != 0 {
		t.Fatal("locked video must not play")
	}

	m = cursorTo(t, m, rowVideo, 0)
	m = pressWeek(t, m, "enter")
	if !m.Playback[0].Visible() || !players.IsMounted(m.Media[0].SourceID) {
		t.Fatal("first video should play and mount a player")
	}

	m = pressWeek(t, m, "enter")
	if m.Playback[0].Visible() || players.Len() != 0 {
		t.Error("second toggle should hide the video and unmount its player")
	}

	// Collapsing the panel tears the players down
	m = pressWeek(t, m, "enter")
	m = m.togglePanel(PanelVideos)
	if m.Playback[0].Visible() || players.Len() != 0 {
		t.Error("closing Required Videos should unmount its players")
	}
}

func TestWeekOneModel_Unmount(t *testing.T) {
	m := newTestWeek(t)
	m = m.togglePanel(PanelVideos)
	m = m.toggleVideo(0)
	m = m.toggleVideo(1)
	if m.Players().Len() != 2 {
		t.Fatalf("Players().Len() = %d, want 2", m.Players().Len())
	}

	m.Unmount()
	if m.Players().Len() != 0 {
		t.Errorf("Players().Len() = %d after Unmount, want 0", m.Players().Len())
	}
}

func TestWeekOneModel_CopyLink(t *testing.T) {
	m := newTestWeek(t)
	var copied string
	m.Players().Clipboard = func(s string) error {
		copied = s
		return nil
	}
	m = m.togglePanel(PanelVideos)
	m = cursorTo(t, m, rowVideo, 0)

	// Hidden video: nothing to copy
	_, cmd := m.update(keyRunes("y"))
	msg := cmd().(player.CopiedMsg)
	if msg.Err == nil || copied != "" {
		t.Errorf("copy of a hidden video = %+v, copied %q", msg, copied)
	}

	m = pressWeek(t, m, "enter")
	_, cmd = m.update(keyRunes("y"))
	msg = cmd().(player.CopiedMsg)
	want := "https://www.youtube.com/embed/" + m.Media[0].SourceID
	if msg.Err != nil || copied != want {
		t.Errorf("CopyLink = %+v, copied %q, want %q", msg, copied, want)
	}
}

func TestWeekOneModel_Checklist(t *testing.T) {
	m := newTestWeek(t)
	m = m.togglePanel(PanelChecklist)

	for _, i := range []int{1, 0, 1} {
		m = cursorTo(t, m, rowCheck, i)
		m = pressWeek(t, m, "enter")
	}

	got := m.Checklist.Completed()
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Completed() = %v, want [0]", got)
	}
}

func TestWeekOneModel_ChecklistIndexError(t *testing.T) {
	m := newTestWeek(t)
	before := m.Checklist

	next, cmd := m.toggleCheck(99)
	if !next.Checklist.Equal(before) {
		t.Error("out-of-range toggle changed the checklist")
	}
	if cmd == nil {
		t.Fatal("out-of-range toggle returned no status")
	}
	msg, ok := cmd().(statusMsg)
	if !ok || !msg.isErr {
		t.Fatalf("status = %+v, want an error status", msg)
	}

	_, err := before.Toggle(99)
	var idx *state.IndexError
	if !errors.As(err, &idx) || msg.text != err.Error() {
		t.Errorf("status %q does not report %v", msg.text, err)
	}
}

func TestWeekOneModel_Todos(t *testing.T) {
	m := newTestWeek(t)

	m = pressWeek(t, m, "a")
	if !m.Typing() || !m.Panels[PanelTodos].IsOpen() {
		t.Fatalf("a should open Todo List and focus the input")
	}

	// Blank input changes nothing
	m = pressWeek(t, m, " ", " ", "enter")
	if m.Todos.Len() != 3 {
		t.Fatalf("Todos.Len() = %d after blank add, want 3", m.Todos.Len())
	}

	// Delete the seed with id 2
	m = pressWeek(t, m, "esc")
	if m.Typing() {
		t.Fatal("esc should leave the input")
	}
	m = cursorTo(t, m, rowTodo, 1)
	m = pressWeek(t, m, "x")

	m = pressWeek(t, m, "a")
	for _, r := range " Ship project " {
		m = pressWeek(t, m, string(r))
	}
	m = pressWeek(t, m, "enter")

	items := m.Todos.Items()
	wantIDs := []int{1, 3, 4}
	if len(items) != len(wantIDs) {
		t.Fatalf("Items() = %+v, want ids %v", items, wantIDs)
	}
	for i, id := range wantIDs {
		if items[i].ID != id {
			t.Errorf("Items()[%d].ID = %d, want %d", i, items[i].ID, id)
		}
	}
	last := items[2]
	if last.Text != "Ship project" || last.Priority != state.PriorityMedium {
		t.Errorf("added item = %+v, want medium %q", last, "Ship project")
	}
	if m.input.Value() != "" {
		t.Errorf("input = %q after submit, want empty", m.input.Value())
	}
}

func TestWeekOneModel_DeleteOnlyOnTodoRows(t *testing.T) {
	m := newTestWeek(t)
	m = m.togglePanel(PanelTodos)
	m = cursorTo(t, m, rowPanel, PanelTodos)

	m = pressWeek(t, m, "x")
	if m.Todos.Len() != 3 {
		t.Errorf("x on a panel header removed a todo")
	}
}
