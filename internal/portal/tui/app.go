package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/eduportal/internal/catalog"
	"github.com/muurk/eduportal/internal/logging"
	"github.com/muurk/eduportal/internal/player"
)

// Route is a navbar path
type Route string

const (
	RouteHome      Route = "/"
	RouteTutorials Route = "/tutorials"
	RouteWeekOne   Route = "/week-one"
)

// IsRegistered reports whether a view exists for the route. Other navbar
// links render the placeholder.
func (r Route) IsRegistered() bool {
	switch r {
	case RouteHome, RouteTutorials, RouteWeekOne:
		return true
	default:
		return false
	}
}

// focusMode says which part of the frame receives keys
type focusMode int

const (
	focusView focusMode = iota
	focusSearch
	focusFilters
	focusMenu
)

// statusMsg sets the status line
type statusMsg struct {
	text  string
	isErr bool
}

func setStatus(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// renderContext carries what every view needs to draw itself
type renderContext struct {
	styles Styles
	width  int
	md     *markdownCache
}

// Options configures a new AppModel
type Options struct {
	Catalog           *catalog.Catalog
	StartPath         string
	DarkMode          bool
	TutorialView      string // "grid" or "list"
	TutorialSort      string // catalog.SortPopular, SortNewest or SortRating
	RecentSearchLimit int

	// Initial terminal size, replaced by the first WindowSizeMsg
	Width  int
	Height int

	// Clipboard replaces the system clipboard for copied video links
	Clipboard func(string) error
}

// AppModel is the top-level coordinator: it owns the navbar and search bar
// and mounts exactly one route view at a time.
type AppModel struct {
	// Current route state
	Route         Route
	PreviousRoute Route

	// Route models; only the one for Route is mounted
	Home      HomeModel
	Tutorials TutorialsModel
	Week      WeekOneModel
	mountID   string

	// Frame
	navbar navbarModel
	search searchBarModel
	focus  focusMode

	// Status line
	Status      string
	StatusError bool

	// UI state
	Width    int
	Height   int
	viewport viewport.Model
	styles   Styles
	md       *markdownCache

	// Help
	Help help.Model
	keys globalKeyMap

	catalog *catalog.Catalog
	opts    Options
}

// NewAppModel creates the application mounted at opts.StartPath
func NewAppModel(opts Options) AppModel {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	start := Route(opts.StartPath)
	if start == "" {
		start = RouteHome
	}

	m := AppModel{
		Width:   opts.Width,
		Height:  opts.Height,
		styles:  NewStyles(opts.DarkMode),
		md:      newMarkdownCache(),
		Help:    help.New(),
		keys:    newGlobalKeyMap(len(opts.Catalog.NavLinks)),
		catalog: opts.Catalog,
		opts:    opts,
	}
	m.navbar = newNavbarModel(opts.DarkMode)
	m.search = newSearchBarModel(opts.Catalog, opts.RecentSearchLimit)
	m.viewport = viewport.New(m.bodyWidth(), 1)

	m = m.mount(start)
	return m.refresh(true)
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages and routes them to the focused component
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = m.bodyWidth()
		return m.refresh(false), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m, cmd = m.handleKey(msg)

	case statusMsg:
		m.Status = msg.text
		m.StatusError = msg.isErr

	case player.CopiedMsg:
		if msg.Err != nil {
			m.Status = "Could not copy link: " + msg.Err.Error()
			m.StatusError = true
		} else {
			m.Status = "Copied " + msg.URL
			m.StatusError = false
		}

	default:
		// Cursor blink and other input housekeeping
		switch m.focus {
		case focusSearch:
			m.search, cmd = m.search.updateInput(msg)
		case focusView:
			if m.Route == RouteWeekOne {
				m.Week, cmd = m.Week.updateInput(msg)
			}
		}
	}

	if m.quitting(msg) {
		return m, tea.Quit
	}
	return m.refresh(false), cmd
}

// quitting reports whether msg is the quit key outside of text entry
func (m AppModel) quitting(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.typing() {
		return false
	}
	return m.focus == focusView && key.Matches(k, m.keys.Quit)
}

// typing reports whether a text input owns the keyboard
func (m AppModel) typing() bool {
	return m.focus == focusSearch || (m.Route == RouteWeekOne && m.Week.Typing())
}

func (m AppModel) handleKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusFilters:
		return m.handleFilterKey(msg)
	case focusMenu:
		return m.handleMenuKey(msg)
	}

	if m.Route == RouteWeekOne && m.Week.Typing() {
		var cmd tea.Cmd
		m.Week, cmd = m.Week.update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		cmd := m.search.focus()
		return m, cmd

	case key.Matches(msg, m.keys.Menu):
		m.navbar = m.navbar.toggleMenu(m.catalog.NavLinks, m.Route)
		if m.navbar.MenuOpen() {
			m.focus = focusMenu
		}
		return m, nil

	case key.Matches(msg, m.keys.Dark):
		m.navbar = m.navbar.toggleDark()
		m.styles = NewStyles(m.navbar.Dark())
		return m, nil

	case key.Matches(msg, m.keys.Links):
		i := int(msg.Runes[0] - '1')
		if i >= 0 && i < len(m.catalog.NavLinks) {
			return m.navigateTo(Route(m.catalog.NavLinks[i].Path)), nil
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keys.Clear) && m.search.hasOutcome():
		m.search = m.search.clearOutcome()
		return m, nil
	}

	return m.updateRoute(msg)
}

// updateRoute hands a key to the mounted view
func (m AppModel) updateRoute(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Route {
	case RouteHome:
		m.Home, cmd = m.Home.update(msg)
	case RouteTutorials:
		m.Tutorials, cmd = m.Tutorials.update(msg)
	case RouteWeekOne:
		m.Week, cmd = m.Week.update(msg)
	}
	return m, cmd
}

func (m AppModel) handleSearchKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	sk := m.search.keys
	switch {
	case key.Matches(msg, sk.Submit):
		var err error
		m.search, err = m.search.submit(m.catalog)
		m.focus = focusView
		m.viewport.GotoTop()
		if err != nil {
			logging.Error("Search failed", zap.Error(err))
			return m, setStatus("Search failed: "+err.Error(), true)
		}
		return m, setStatus(m.search.summary(), false)

	case key.Matches(msg, sk.Category):
		delta := 1
		if msg.String() == "shift+tab" {
			delta = -1
		}
		m.search = m.search.cycleCategory(delta)
		return m, nil

	case key.Matches(msg, sk.Recent):
		delta := 1
		if msg.String() == "up" {
			delta = -1
		}
		m.search = m.search.cycleRecent(delta)
		return m, nil

	case key.Matches(msg, sk.Filters):
		m.search = m.search.toggleFilters()
		if m.search.filtersOpen {
			m.focus = focusFilters
		}
		return m, nil

	case key.Matches(msg, sk.Blur):
		m.search = m.search.blur()
		m.focus = focusView
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.updateInput(msg)
	return m, cmd
}

func (m AppModel) handleFilterKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	fk := m.search.filterKeys
	switch {
	case key.Matches(msg, fk.Up):
		m.search = m.search.moveField(-1)
	case key.Matches(msg, fk.Down):
		m.search = m.search.moveField(1)
	case key.Matches(msg, fk.Left):
		m.search = m.search.cycleOption(-1)
	case key.Matches(msg, fk.Right):
		m.search = m.search.cycleOption(1)
	case key.Matches(msg, fk.Reset):
		m.search = m.search.resetFilters()
	case key.Matches(msg, fk.Apply):
		var err error
		m.search, err = m.search.applyFilters(m.catalog)
		m.focus = focusView
		if err != nil {
			return m, setStatus("Search failed: "+err.Error(), true)
		}
		return m, setStatus("Filters applied", false)
	case key.Matches(msg, fk.Close):
		m.search = m.search.toggleFilters()
		m.focus = focusView
	}
	return m, nil
}

func (m AppModel) handleMenuKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	mk := m.navbar.keys
	switch {
	case key.Matches(msg, mk.Up):
		m.navbar = m.navbar.moveCursor(-1, len(m.catalog.NavLinks))
	case key.Matches(msg, mk.Down):
		m.navbar = m.navbar.moveCursor(1, len(m.catalog.NavLinks))
	case key.Matches(msg, mk.Follow):
		link := m.catalog.NavLinks[m.navbar.cursor]
		m.navbar = m.navbar.closeMenu()
		m.focus = focusView
		return m.navigateTo(Route(link.Path)), nil
	case key.Matches(msg, mk.Close):
		m.navbar = m.navbar.closeMenu()
		m.focus = focusView
	}
	return m, nil
}

// navigateTo unmounts the current view and mounts a fresh one for to.
// Navigating to the current route changes nothing.
func (m AppModel) navigateTo(to Route) AppModel {
	m.navbar = m.navbar.closeMenu()
	if m.focus == focusMenu {
		m.focus = focusView
	}
	if to == m.Route {
		return m
	}

	logging.LogRoute(string(m.Route), string(to))
	m = m.unmount()
	m.PreviousRoute = m.Route
	m = m.mount(to)
	m.viewport.GotoTop()
	return m
}

// mount creates fresh state for route
func (m AppModel) mount(route Route) AppModel {
	m.Route = route
	m.mountID = logging.NewMountID()
	logging.LogMount(string(route), m.mountID)

	switch route {
	case RouteHome:
		m.Home = NewHomeModel(m.catalog)
	case RouteTutorials:
		m.Tutorials = NewTutorialsModel(m.catalog, m.opts.TutorialView, m.opts.TutorialSort)
	case RouteWeekOne:
		reg := player.NewRegistry()
		if m.opts.Clipboard != nil {
			reg.Clipboard = m.opts.Clipboard
		}
		week, err := NewWeekOneModel(m.catalog.Week, reg)
		if err != nil {
			// Catalog validation rejects bad seeds, so this is a programming error
			logging.Error("Week view failed to mount", zap.Error(err))
			m.Status = err.Error()
			m.StatusError = true
		}
		m.Week = week
	default:
		logging.Debug("No view registered, showing placeholder", zap.String("route", string(route)))
	}
	return m
}

// unmount discards the current view's state and tears down its players
func (m AppModel) unmount() AppModel {
	switch m.Route {
	case RouteHome:
		m.Home = HomeModel{}
	case RouteTutorials:
		m.Tutorials = TutorialsModel{}
	case RouteWeekOne:
		m.Week.Unmount()
		m.Week = WeekOneModel{}
	}
	logging.LogUnmount(string(m.Route), m.mountID)
	m.mountID = ""
	return m
}

// bodyWidth is the usable width inside the container
func (m AppModel) bodyWidth() int {
	w := m.Width - 4
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m AppModel) context() renderContext {
	return renderContext{styles: m.styles, width: m.bodyWidth(), md: m.md}
}

// refresh re-renders the body into the viewport and, unless the user is
// paging, scrolls so the cursor line stays visible.
func (m AppModel) refresh(resetScroll bool) AppModel {
	ctx := m.context()
	header := m.renderHeader(ctx)
	footer := m.renderFooter(ctx)

	height := m.Height - chromeHeight - lipgloss.Height(header) - lipgloss.Height(footer)
	if height < 3 {
		height = 3
	}
	m.viewport.Width = ctx.width
	m.viewport.Height = height

	body, cursor := m.renderBody(ctx)
	m.viewport.SetContent(body)

	if resetScroll {
		m.viewport.GotoTop()
	}
	if cursor >= 0 {
		if cursor < m.viewport.YOffset {
			m.viewport.SetYOffset(cursor)
		} else if cursor >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(cursor - m.viewport.Height + 1)
		}
	}
	return m
}

func (m AppModel) renderHeader(ctx renderContext) string {
	nav := m.navbar.view(ctx, m.catalog, m.Route, m.focus == focusMenu)
	bar := m.search.view(ctx, m.focus)
	return lipgloss.JoinVertical(lipgloss.Left, nav, bar)
}

// renderBody returns the route content and the line of its cursor, or -1
func (m AppModel) renderBody(ctx renderContext) (string, int) {
	var b strings.Builder
	offset := 0

	if m.search.hasOutcome() {
		results := m.search.resultsView(ctx)
		b.WriteString(results)
		b.WriteString("\n\n")
		offset = lipgloss.Height(results) + 1
	}

	var content string
	cursor := -1
	switch m.Route {
	case RouteHome:
		content, cursor = m.Home.view(ctx)
	case RouteTutorials:
		content, cursor = m.Tutorials.view(ctx)
	case RouteWeekOne:
		content, cursor = m.Week.view(ctx)
	default:
		content = m.placeholderView(ctx)
	}
	b.WriteString(content)

	if cursor >= 0 {
		cursor += offset
	}
	return b.String(), cursor
}

// placeholderView is shown for navbar links with no registered view
func (m AppModel) placeholderView(ctx renderContext) string {
	s := ctx.styles
	title := string(m.Route)
	if link, ok := m.catalog.Link(string(m.Route)); ok {
		title = link.Label
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(title),
		"",
		s.Muted.Render(fmt.Sprintf("Nothing is published under %s yet.", m.Route)),
		s.Muted.Render("Use the navbar to go back to Home, Tutorials or Week One."),
	)
}

func (m AppModel) renderFooter(ctx renderContext) string {
	status := ""
	if m.Status != "" {
		style := ctx.styles.Status
		if m.StatusError {
			style = ctx.styles.StatusError
		}
		status = style.Render(m.Status) + "\n"
	}
	h := m.Help
	h.Width = ctx.width
	return status + ctx.styles.BuildFooterContent(h.View(m.activeKeys()), ctx.width)
}

// activeKeys returns the help keymap for the focused component
func (m AppModel) activeKeys() help.KeyMap {
	switch m.focus {
	case focusSearch:
		return m.search.keys
	case focusFilters:
		return m.search.filterKeys
	case focusMenu:
		return m.navbar.keys
	}

	var view help.KeyMap
	switch m.Route {
	case RouteHome:
		view = m.Home.keys
	case RouteTutorials:
		view = m.Tutorials.keys
	case RouteWeekOne:
		if m.Week.Typing() {
			return m.Week.typingKeys
		}
		view = m.Week.keys
	}
	return combinedKeyMap{view: view, global: m.keys}
}

// View renders the frame around the current route
func (m AppModel) View() string {
	ctx := m.context()
	return ctx.styles.RenderApplicationContainer(
		m.renderHeader(ctx),
		m.viewport.View(),
		m.renderFooter(ctx),
		m.Width,
		m.Height,
	)
}
