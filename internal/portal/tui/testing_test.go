package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/eduportal/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	return c
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlF = tea.KeyMsg{Type: tea.KeyCtrlF}
)

// press feeds keys to the app in order. Commands are dropped: the ones the
// views return are cursor blinks and status updates, checked separately.
func press(t *testing.T, m AppModel, keys ...tea.KeyMsg) AppModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(AppModel)
	}
	return m
}

func typeText(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	for _, r := range s {
		m = press(t, m, keyRunes(string(r)))
	}
	return m
}
