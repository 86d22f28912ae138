package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// globalKeyMap defines key bindings available on every route while no
// input has focus
type globalKeyMap struct {
	Links    key.Binding
	Search   key.Binding
	Menu     key.Binding
	Dark     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k globalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Links, k.Search, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k globalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Links, k.Menu, k.Dark},
		{k.Search, k.Clear},
		{k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

// newGlobalKeyMap binds one number key per navbar link, up to 9.
func newGlobalKeyMap(links int) globalKeyMap {
	links = max(0, min(links, 9))
	numbers := make([]string, links)
	for i := range numbers {
		numbers[i] = strconv.Itoa(i + 1)
	}
	linkHelp := "1-" + strconv.Itoa(links)
	if links == 1 {
		linkHelp = "1"
	}
	km := globalKeyMap{
		Links: key.NewBinding(
			key.WithKeys(numbers...),
			key.WithHelp(linkHelp, "go to page"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Dark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "dark mode"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear results"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	km.Links.SetEnabled(links > 0)
	return km
}

// menuKeyMap defines key bindings while the link menu is expanded
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Follow key.Binding
	Close  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Follow, k.Close}
}

// FullHelp returns keybindings for the expanded help view
func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Follow, k.Close}}
}

func newMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Follow: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc", "close menu"),
		),
	}
}

// searchKeyMap defines key bindings while the search input has focus
type searchKeyMap struct {
	Submit   key.Binding
	Category key.Binding
	Recent   key.Binding
	Filters  key.Binding
	Blur     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Category, k.Recent, k.Filters, k.Blur}
}

// FullHelp returns keybindings for the expanded help view
func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Category}, {k.Recent, k.Filters, k.Blur}}
}

func newSearchKeyMap() searchKeyMap {
	return searchKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Category: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "category"),
		),
		Recent: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "recent"),
		),
		Filters: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "filters"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done"),
		),
	}
}

// filterKeyMap defines key bindings inside the filter panel
type filterKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Reset key.Binding
	Apply key.Binding
	Close key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k filterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Reset, k.Apply, k.Close}
}

// FullHelp returns keybindings for the expanded help view
func (k filterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Reset, k.Apply, k.Close}}
}

func newFilterKeyMap() filterKeyMap {
	return filterKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "select"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "change"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "ctrl+f"),
			key.WithHelp("esc", "close"),
		),
	}
}

// homeKeyMap defines key bindings for the home page
type homeKeyMap struct {
	PrevTab key.Binding
	NextTab key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab}
}

// FullHelp returns keybindings for the expanded help view
func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PrevTab, k.NextTab}}
}

func newHomeKeyMap() homeKeyMap {
	return homeKeyMap{
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "course tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
		),
	}
}

// tutorialsKeyMap defines key bindings for the tutorials page
type tutorialsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	View     key.Binding
	Sort     key.Binding
	Category key.Binding
	Bookmark key.Binding
	More     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k tutorialsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.View, k.Sort, k.Category, k.Bookmark, k.More}
}

// FullHelp returns keybindings for the expanded help view
func (k tutorialsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Bookmark}, {k.View, k.Sort, k.Category, k.More}}
}

func newTutorialsKeyMap() tutorialsKeyMap {
	return tutorialsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "left", "h"),
			key.WithHelp("↑/↓", "select"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "right", "l"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "grid/list"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b", " "),
			key.WithHelp("b", "bookmark"),
		),
		More: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "load more"),
		),
	}
}

// weekKeyMap defines key bindings for the week content page
type weekKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Add    key.Binding
	Delete key.Binding
	Copy   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k weekKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Add, k.Delete, k.Copy}
}

// FullHelp returns keybindings for the expanded help view
func (k weekKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Toggle}, {k.Add, k.Delete, k.Copy}}
}

func newWeekKeyMap() weekKeyMap {
	return weekKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open/play/check"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "i"),
			key.WithHelp("a", "add task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete task"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy video link"),
		),
	}
}

// typingKeyMap defines key bindings while a text input has focus
type typingKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k typingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k typingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Cancel}}
}

func newTypingKeyMap() typingKeyMap {
	return typingKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// combinedKeyMap shows the active view's keys followed by the global ones.
type combinedKeyMap struct {
	view   help.KeyMap
	global help.KeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k combinedKeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	if k.view != nil {
		out = append(out, k.view.ShortHelp()...)
	}
	return append(out, k.global.ShortHelp()...)
}

// FullHelp returns keybindings for the expanded help view
func (k combinedKeyMap) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	if k.view != nil {
		out = append(out, k.view.FullHelp()...)
	}
	return append(out, k.global.FullHelp()...)
}
