package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/eduportal/internal/catalog"
	"github.com/muurk/eduportal/internal/logging"
)

// HomeModel is the landing page: hero, stats, featured courses with a tab
// filter and the call to action.
type HomeModel struct {
	Tab int

	catalog *catalog.Catalog
	keys    homeKeyMap
}

// NewHomeModel mounts the home page on the first tab
func NewHomeModel(c *catalog.Catalog) HomeModel {
	return HomeModel{catalog: c, keys: newHomeKeyMap()}
}

// ActiveTab returns the selected course category tab
func (m HomeModel) ActiveTab() string {
	tabs := m.catalog.Home.Tabs
	if len(tabs) == 0 {
		return catalog.AllCategories
	}
	return tabs[m.Tab]
}

// Courses returns the courses under the active tab
func (m HomeModel) Courses() []catalog.Course {
	return m.catalog.CoursesInTab(m.ActiveTab())
}

func (m HomeModel) update(msg tea.KeyMsg) (HomeModel, tea.Cmd) {
	n := len(m.catalog.Home.Tabs)
	if n == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.PrevTab):
		m.Tab = (m.Tab - 1 + n) % n
	case key.Matches(msg, m.keys.NextTab):
		m.Tab = (m.Tab + 1) % n
	default:
		return m, nil
	}
	logging.LogTransition("home", "tab", m.ActiveTab())
	return m, nil
}

func (m HomeModel) view(ctx renderContext) (string, int) {
	s := ctx.styles
	h := m.catalog.Home
	var sections []string

	hero := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(h.HeroTitle),
		s.Subtitle.Render(h.HeroSubtitle),
		"",
		s.ChipActive.Render(h.HeroAction),
	)
	sections = append(sections, lipgloss.PlaceHorizontal(ctx.width, lipgloss.Center, hero))

	if len(h.Stats) > 0 {
		sections = append(sections, m.statsView(ctx))
	}

	var tabs []string
	for i, t := range h.Tabs {
		label := titleCase(t)
		if i == m.Tab {
			tabs = append(tabs, s.ChipActive.Render(label))
		} else {
			tabs = append(tabs, s.Chip.Render(label))
		}
	}
	sections = append(sections, s.Title.Render("Featured Courses")+"  "+strings.Join(tabs, " "))
	tabLine := lipgloss.Height(strings.Join(sections, "\n\n")) - 1

	courses := m.Courses()
	if len(courses) == 0 {
		sections = append(sections, s.Muted.Render("No courses in this category yet."))
	} else {
		cards := make([]string, 0, len(courses))
		for _, c := range courses {
			cards = append(cards, m.courseCard(ctx, c))
		}
		sections = append(sections, grid(ctx.width, cards))
	}

	cta := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render(h.CTATitle),
		s.Muted.Render(h.CTASubtitle),
		s.ChipActive.Render(h.CTAAction),
	)
	sections = append(sections, lipgloss.PlaceHorizontal(ctx.width, lipgloss.Center, cta))

	return strings.Join(sections, "\n\n"), tabLine
}

func (m HomeModel) statsView(ctx renderContext) string {
	s := ctx.styles
	stats := m.catalog.Home.Stats
	w := ctx.width/len(stats) - 1
	if w < 12 {
		w = 12
	}
	var cards []string
	for _, st := range stats {
		cards = append(cards, lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				s.Tag.Render(st.Icon),
				s.Title.Render(st.Value),
				s.Muted.Render(st.Title),
			)))
	}
	return wrapRow(ctx.width, cards, " ")
}

func (m HomeModel) courseCard(ctx renderContext, c catalog.Course) string {
	s := ctx.styles
	w := cardWidth(ctx.width)
	inner := w - s.Card.GetHorizontalFrameSize()
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Tag.Render(c.Level)+"  "+s.Muted.Render("◷ "+c.Duration),
		s.PanelHeader.Render(c.Title),
		s.Text.Render(c.Description),
		s.Muted.Render(c.Instructor)+"  "+s.stars(c.Rating),
	)
	return s.Card.Width(inner + s.Card.GetHorizontalPadding()).Render(body)
}

// cardWidth returns the outer width of a grid card
func cardWidth(width int) int {
	cols := width / GridMinCardWidth
	if cols < 1 {
		cols = 1
	}
	if cols > 3 {
		cols = 3
	}
	return width/cols - 1
}

// grid lays cards out in rows of as many as fit the width
func grid(width int, cards []string) string {
	return wrapRow(width, cards, " ")
}

// wrapRow joins blocks horizontally, starting a new row when the next one
// would overflow width
func wrapRow(width int, blocks []string, sep string) string {
	var rows []string
	var row []string
	used := 0
	for _, b := range blocks {
		bw := lipgloss.Width(b)
		if len(row) > 0 && used+len(sep)+bw > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		if len(row) > 0 {
			row = append(row, sep)
			used += len(sep)
		}
		row = append(row, b)
		used += bw
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// titleCase upper-cases the first letter of an id such as "design"
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
