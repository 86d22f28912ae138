package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/eduportal/internal/catalog"
	"github.com/muurk/eduportal/internal/logging"
	"github.com/muurk/eduportal/internal/state"
)

// Tutorial layouts
const (
	ViewGrid = "grid"
	ViewList = "list"
)

// tutorialPageSize is how many more cards "Load More" reveals
const tutorialPageSize = 3

// TutorialsModel is the tutorials page: layout, sort and category
// controls, bookmarks and paged cards.
type TutorialsModel struct {
	Layout    string
	Sort      string
	Category  int
	Cursor    int
	Shown     int
	Bookmarks state.ToggleSet[int]

	catalog *catalog.Catalog
	keys    tutorialsKeyMap
}

// NewTutorialsModel mounts the page with the preferred layout and sort
func NewTutorialsModel(c *catalog.Catalog, layout, sort string) TutorialsModel {
	if layout != ViewList {
		layout = ViewGrid
	}
	if !slices.Contains(catalog.SortOrders, sort) {
		sort = catalog.SortPopular
	}
	return TutorialsModel{
		Layout:    layout,
		Sort:      sort,
		Shown:     tutorialPageSize,
		Bookmarks: state.NewToggleSet[int](),
		catalog:   c,
		keys:      newTutorialsKeyMap(),
	}
}

// ActiveCategory returns the selected category filter
func (m TutorialsModel) ActiveCategory() string {
	cats := m.catalog.TutorialCategories
	if len(cats) == 0 {
		return catalog.AllCategories
	}
	return cats[m.Category]
}

// Matching returns every tutorial in the category, sorted
func (m TutorialsModel) Matching() []catalog.Tutorial {
	ts := m.catalog.FilterTutorials(m.ActiveCategory())
	catalog.SortTutorials(ts, m.Sort)
	return ts
}

// Visible returns the cards revealed so far
func (m TutorialsModel) Visible() []catalog.Tutorial {
	ts := m.Matching()
	if len(ts) > m.Shown {
		ts = ts[:m.Shown]
	}
	return ts
}

// HasMore reports whether "Load More" would reveal anything
func (m TutorialsModel) HasMore() bool {
	return len(m.Matching()) > m.Shown
}

func (m TutorialsModel) update(msg tea.KeyMsg) (TutorialsModel, tea.Cmd) {
	visible := m.Visible()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.Cursor < len(visible)-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.keys.View):
		if m.Layout == ViewGrid {
			m.Layout = ViewList
		} else {
			m.Layout = ViewGrid
		}
		logging.LogTransition("tutorials", "layout", m.Layout)

	case key.Matches(msg, m.keys.Sort):
		i := slices.Index(catalog.SortOrders, m.Sort)
		m.Sort = catalog.SortOrders[(i+1)%len(catalog.SortOrders)]
		m.Cursor = 0
		logging.LogTransition("tutorials", "sort", m.Sort)

	case key.Matches(msg, m.keys.Category):
		if n := len(m.catalog.TutorialCategories); n > 0 {
			m.Category = (m.Category + 1) % n
		}
		m.Cursor = 0
		m.Shown = tutorialPageSize
		logging.LogTransition("tutorials", "category", m.ActiveCategory())

	case key.Matches(msg, m.keys.Bookmark):
		if m.Cursor < len(visible) {
			id := visible[m.Cursor].ID
			m.Bookmarks = m.Bookmarks.Toggle(id)
			logging.LogTransition("tutorials", "bookmark", fmt.Sprintf("%d=%t", id, m.Bookmarks.Has(id)))
		}

	case key.Matches(msg, m.keys.More):
		if m.HasMore() {
			m.Shown += tutorialPageSize
			m.Cursor = len(visible)
			logging.LogTransition("tutorials", "load_more", fmt.Sprintf("%d", m.Shown))
		}
	}
	return m, nil
}

func (m TutorialsModel) view(ctx renderContext) (string, int) {
	s := ctx.styles

	var cats []string
	for i, c := range m.catalog.TutorialCategories {
		if i == m.Category {
			cats = append(cats, s.ChipActive.Render(titleCase(c)))
		} else {
			cats = append(cats, s.Chip.Render(titleCase(c)))
		}
	}
	layout := "▦ Grid"
	if m.Layout == ViewList {
		layout = "☰ List"
	}
	controls := []string{
		s.Title.Render("Tutorials"),
		s.Muted.Render("Sort: ") + s.Tag.Render(catalog.SortLabel(m.Sort)) + "   " +
			s.Muted.Render("View: ") + s.Tag.Render(layout),
		wrapRow(ctx.width, cats, " "),
	}
	head := strings.Join(controls, "\n")
	headHeight := lipgloss.Height(head) + 1

	visible := m.Visible()
	if len(visible) == 0 {
		return head + "\n\n" + s.Muted.Render("No tutorials in this category."), -1
	}

	var body string
	cursorLine := headHeight
	if m.Layout == ViewList {
		var rows []string
		line := 0
		for i, t := range visible {
			row := m.listRow(ctx, t, i == m.Cursor)
			if i == m.Cursor {
				cursorLine = headHeight + line
			}
			line += lipgloss.Height(row)
			rows = append(rows, row)
		}
		body = strings.Join(rows, "\n")
	} else {
		cards := make([]string, 0, len(visible))
		for i, t := range visible {
			cards = append(cards, m.card(ctx, t, i == m.Cursor))
		}
		body = grid(ctx.width, cards)
		cols := ctx.width / (cardWidth(ctx.width) + 1)
		if cols < 1 {
			cols = 1
		}
		if len(cards) > 0 {
			cursorLine = headHeight + (m.Cursor/cols)*lipgloss.Height(cards[0])
		}
	}

	footer := s.Muted.Render(fmt.Sprintf("Showing %d of %d", len(visible), len(m.Matching())))
	if m.HasMore() {
		footer += "  " + s.Chip.Render("n Load More")
	}
	return head + "\n\n" + body + "\n\n" + footer, cursorLine
}

func (m TutorialsModel) bookmark(ctx renderContext, id int) string {
	if m.Bookmarks.Has(id) {
		return ctx.styles.Rating.Render("★ saved")
	}
	return ctx.styles.Muted.Render("☆")
}

func (m TutorialsModel) card(ctx renderContext, t catalog.Tutorial, selected bool) string {
	s := ctx.styles
	box := s.Card
	if selected {
		box = s.CardSelected
	}
	inner := cardWidth(ctx.width) - box.GetHorizontalFrameSize()
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Tag.Render(t.Category)+"  "+m.bookmark(ctx, t.ID),
		s.PanelHeader.Render(t.Title),
		s.Text.Render(t.Description),
		s.Muted.Render("◷ "+t.Duration)+"  "+s.stars(t.Rating)+"  "+s.Muted.Render(fmt.Sprintf("☺ %d", t.Students)),
		s.Muted.Render(t.Instructor+" · "+t.Level),
	)
	return box.Width(inner + box.GetHorizontalPadding()).Render(body)
}

func (m TutorialsModel) listRow(ctx renderContext, t catalog.Tutorial, selected bool) string {
	s := ctx.styles
	prefix := "  "
	if selected {
		prefix = s.Cursor.Render("▸ ")
	}
	return prefix + lipgloss.JoinVertical(lipgloss.Left,
		s.PanelHeader.Render(t.Title)+"  "+s.Tag.Render(t.Category)+"  "+m.bookmark(ctx, t.ID),
		s.Muted.Render(fmt.Sprintf("%s · %s · %s · ☺ %d", t.Instructor, t.Level, t.Duration, t.Students))+"  "+s.stars(t.Rating),
	)
}
