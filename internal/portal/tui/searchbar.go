package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/eduportal/internal/catalog"
	"github.com/muurk/eduportal/internal/logging"
	"github.com/muurk/eduportal/internal/search"
)

// searchBarModel is the search input with its category chips, recent
// searches, filter panel and the last outcome.
type searchBarModel struct {
	input       textinput.Model
	categories  []catalog.SearchCategory
	category    int
	recent      search.Recent
	recentIdx   int // -1 while the term was typed, not picked
	panel       search.Panel
	filtersOpen bool
	field       int
	outcome     *search.Outcome

	keys       searchKeyMap
	filterKeys filterKeyMap
}

func newSearchBarModel(c *catalog.Catalog, recentLimit int) searchBarModel {
	ti := textinput.New()
	ti.Placeholder = "Search for courses, tutorials, or instructors..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 100

	categories := c.Search.Categories
	if len(categories) == 0 {
		for _, id := range search.Categories {
			categories = append(categories, catalog.SearchCategory{ID: id, Name: titleCase(id)})
		}
	}

	return searchBarModel{
		input:      ti,
		categories: categories,
		recent:     search.NewRecent(recentLimit, c.Search.RecentSearches...),
		recentIdx:  -1,
		panel:      search.NewPanel(),
		keys:       newSearchKeyMap(),
		filterKeys: newFilterKeyMap(),
	}
}

func (sb *searchBarModel) focus() tea.Cmd {
	return sb.input.Focus()
}

func (sb searchBarModel) blur() searchBarModel {
	sb.input.Blur()
	sb.recentIdx = -1
	return sb
}

func (sb searchBarModel) updateInput(msg tea.Msg) (searchBarModel, tea.Cmd) {
	var cmd tea.Cmd
	before := sb.input.Value()
	sb.input, cmd = sb.input.Update(msg)
	if sb.input.Value() != before {
		sb.recentIdx = -1
	}
	return sb, cmd
}

// Category returns the id of the selected category chip
func (sb searchBarModel) Category() string {
	if len(sb.categories) == 0 {
		return search.CategoryAll
	}
	return sb.categories[sb.category].ID
}

func (sb searchBarModel) cycleCategory(delta int) searchBarModel {
	n := len(sb.categories)
	if n == 0 {
		return sb
	}
	sb.category = (sb.category + delta + n) % n
	logging.LogTransition("search", "category", sb.Category())
	return sb
}

// cycleRecent walks the recent searches and fills the input with the pick
func (sb searchBarModel) cycleRecent(delta int) searchBarModel {
	items := sb.recent.Items()
	if len(items) == 0 {
		return sb
	}
	switch {
	case sb.recentIdx < 0 && delta > 0:
		sb.recentIdx = 0
	case sb.recentIdx < 0:
		sb.recentIdx = len(items) - 1
	default:
		sb.recentIdx = (sb.recentIdx + delta + len(items)) % len(items)
	}
	sb.input.SetValue(items[sb.recentIdx])
	sb.input.CursorEnd()
	return sb
}

// submit runs the query over the catalog with the applied filters. The term
// goes to the front of the recent searches.
func (sb searchBarModel) submit(c *catalog.Catalog) (searchBarModel, error) {
	term := strings.TrimSpace(sb.input.Value())
	sb.input.Blur()
	sb.recentIdx = -1

	out, err := search.Run(c, search.Query{
		Term:     term,
		Category: sb.Category(),
		Filters:  sb.panel.Applied,
	})
	if err != nil {
		return sb, err
	}
	sb.outcome = &out
	sb.recent = sb.recent.Add(term)
	logging.LogTransition("search", "submit", term)
	return sb, nil
}

func (sb searchBarModel) hasOutcome() bool {
	return sb.outcome != nil
}

func (sb searchBarModel) clearOutcome() searchBarModel {
	sb.outcome = nil
	return sb
}

// summary is the status line after a search
func (sb searchBarModel) summary() string {
	if sb.outcome == nil {
		return ""
	}
	n := len(sb.outcome.Results)
	switch {
	case n == 0 && sb.outcome.Suggestion != "":
		return fmt.Sprintf("No results. Did you mean %q?", sb.outcome.Suggestion)
	case n == 0:
		return "No results"
	case n == 1:
		return "1 result"
	default:
		return fmt.Sprintf("%d results", n)
	}
}

func (sb searchBarModel) toggleFilters() searchBarModel {
	sb.filtersOpen = !sb.filtersOpen
	logging.LogTransition("search", "filters", fmt.Sprintf("%t", sb.filtersOpen))
	return sb
}

func (sb searchBarModel) moveField(delta int) searchBarModel {
	n := len(search.Fields)
	sb.field = (sb.field + delta + n) % n
	return sb
}

func (sb searchBarModel) cycleOption(delta int) searchBarModel {
	sb.panel.Draft = sb.panel.Draft.Cycle(search.Fields[sb.field], delta)
	return sb
}

func (sb searchBarModel) resetFilters() searchBarModel {
	sb.panel = sb.panel.Reset()
	logging.LogTransition("search", "filters_reset", "")
	return sb
}

// applyFilters commits the draft, closes the panel and reruns the last
// search so its results follow the new filters.
func (sb searchBarModel) applyFilters(c *catalog.Catalog) (searchBarModel, error) {
	sb.panel = sb.panel.Apply()
	sb.filtersOpen = false
	logging.LogTransition("search", "filters_apply", fmt.Sprintf("%+v", sb.panel.Applied))
	if sb.outcome == nil {
		return sb, nil
	}

	out, err := search.Run(c, search.Query{
		Term:     sb.outcome.Query.Term,
		Category: sb.outcome.Query.Category,
		Filters:  sb.panel.Applied,
	})
	if err != nil {
		return sb, err
	}
	sb.outcome = &out
	return sb, nil
}

func (sb searchBarModel) view(ctx renderContext, focus focusMode) string {
	s := ctx.styles

	box := s.Input
	if focus == focusSearch {
		box = s.InputFocused
	}
	input := sb.input
	input.Width = ctx.width - box.GetHorizontalFrameSize() - lipgloss.Width(input.Prompt) - 1
	filterLabel := "⚙ Filters"
	if !sb.panel.Applied.IsDefault() {
		filterLabel += " •"
	}
	filterBtn := s.Chip.Render(filterLabel)
	if sb.filtersOpen {
		filterBtn = s.ChipActive.Render(filterLabel)
	}
	input.Width -= lipgloss.Width(filterBtn) + 1
	if input.Width < 10 {
		input.Width = 10
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, box.Render(input.View()), " ", filterBtn)

	var chips []string
	for i, cat := range sb.categories {
		if i == sb.category {
			chips = append(chips, s.ChipActive.Render(cat.Name))
		} else {
			chips = append(chips, s.Chip.Render(cat.Name))
		}
	}
	lines := []string{row, strings.Join(chips, " ")}

	if focus == focusSearch && sb.recent.Len() > 0 {
		var recent []string
		for i, term := range sb.recent.Items() {
			if i == sb.recentIdx {
				recent = append(recent, s.Cursor.Render("↺ "+term))
			} else {
				recent = append(recent, s.Muted.Render("↺ "+term))
			}
		}
		lines = append(lines, s.Muted.Render("Recent: ")+strings.Join(recent, "  "))
	}

	if sb.filtersOpen {
		lines = append(lines, sb.filtersView(ctx, focus == focusFilters))
	}
	return strings.Join(lines, "\n")
}

func (sb searchBarModel) filtersView(ctx renderContext, focused bool) string {
	s := ctx.styles
	var rows []string
	for i, f := range search.Fields {
		prefix := "  "
		if focused && i == sb.field {
			prefix = s.Cursor.Render("▸ ")
		}
		label := fmt.Sprintf("%-11s", f.String())
		value := "‹ " + sb.panel.Draft.Label(f) + " ›"
		rows = append(rows, prefix+s.PanelHeader.Render(label)+" "+s.Tag.Render(value))
	}
	actions := s.Chip.Render("r Reset") + " " + s.ChipActive.Render("enter Apply Filters")
	if sb.panel.Dirty() {
		actions += " " + s.Muted.Render("(not applied)")
	}
	rows = append(rows, actions)
	return s.Card.Width(ctx.width - s.Card.GetHorizontalBorderSize()).Render(strings.Join(rows, "\n"))
}

// resultsView renders the last outcome above the route content
func (sb searchBarModel) resultsView(ctx renderContext) string {
	s := ctx.styles
	out := sb.outcome
	title := fmt.Sprintf("Search results for %q in %s", out.Query.Term, out.Query.Category)
	if out.Query.Term == "" {
		title = "Everything in " + out.Query.Category
	}
	lines := []string{s.Title.Render(title) + "  " + s.Muted.Render("(esc to clear)")}

	if len(out.Results) == 0 {
		msg := "No matches."
		if out.Suggestion != "" {
			msg += fmt.Sprintf(" Did you mean %s?", s.Match.Render(out.Suggestion))
		}
		lines = append(lines, s.Muted.Render(msg))
		return strings.Join(lines, "\n")
	}

	for _, r := range out.Results {
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			s.Tag.Render(fmt.Sprintf("[%s]", r.Kind)),
			highlight(s, r.Title, r.Matched),
			s.Muted.Render(r.Detail),
		))
	}
	return strings.Join(lines, "\n")
}

// highlight marks the matched characters of s
func highlight(st Styles, s string, matched []int) string {
	if len(matched) == 0 {
		return st.Text.Render(s)
	}
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}
	var b strings.Builder
	for i, r := range []rune(s) {
		if set[i] {
			b.WriteString(st.Match.Render(string(r)))
		} else {
			b.WriteString(st.Text.Render(string(r)))
		}
	}
	return b.String()
}
