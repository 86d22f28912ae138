package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/eduportal/internal/catalog"
	"github.com/muurk/eduportal/internal/logging"
	"github.com/muurk/eduportal/internal/player"
	"github.com/muurk/eduportal/internal/state"
)

// Week One panels, in display order
const (
	PanelNotes = iota
	PanelVideos
	PanelQuestions
	PanelChecklist
	PanelTodos
)

// rowKind is the kind of a focusable row
type rowKind int

const (
	rowPanel rowKind = iota
	rowVideo
	rowCheck
	rowTodoInput
	rowTodo
)

// row is one focusable line of the page
type row struct {
	kind  rowKind
	panel int
	index int // video, checklist or todo position
}

// WeekOneModel is the week content page. Every piece of state is created at
// mount and discarded with the model.
type WeekOneModel struct {
	Week      catalog.Week
	Panels    []state.PanelState
	Media     []state.MediaReference
	Playback  []state.PlaybackState
	Checklist state.ChecklistState
	Todos     state.TodoList
	Cursor    int

	input   textinput.Model
	typing  bool
	players *player.Registry

	keys       weekKeyMap
	typingKeys typingKeyMap
}

// NewWeekOneModel mounts the page: Class Notes open, every other panel
// closed, no video playing, an empty checklist and the seeded todos.
func NewWeekOneModel(w catalog.Week, players *player.Registry) (WeekOneModel, error) {
	todos, err := w.TodoList()
	if err != nil {
		return WeekOneModel{}, fmt.Errorf("failed to seed todo list: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "Add a new task..."
	ti.Prompt = "+ "
	ti.CharLimit = 200

	refs := w.References()
	playback := make([]state.PlaybackState, len(refs))
	for i, v := range w.Videos {
		_, playback[i] = state.NewMediaItem(v.Title, v.Duration, v.SourceID, v.Locked)
	}

	return WeekOneModel{
		Week: w,
		Panels: []state.PanelState{
			state.NewPanel("Class Notes", "✎", true),
			state.NewPanel("Required Videos", "▶", false),
			state.NewPanel("Questions Asked in Class", "?", false),
			state.NewPanel("Checklist", "✓", false),
			state.NewPanel("Todo List", "☰", false),
		},
		Media:      refs,
		Playback:   playback,
		Checklist:  w.NewChecklist(),
		Todos:      todos,
		input:      ti,
		players:    players,
		keys:       newWeekKeyMap(),
		typingKeys: newTypingKeyMap(),
	}, nil
}

// Typing reports whether the todo input owns the keyboard
func (m WeekOneModel) Typing() bool {
	return m.typing
}

// Players returns the registry of mounted players
func (m WeekOneModel) Players() *player.Registry {
	return m.players
}

// Unmount tears down every mounted player
func (m WeekOneModel) Unmount() {
	if m.players != nil {
		m.players.UnmountAll()
	}
}

// rows lists the focusable rows. Children of closed panels are not laid out.
func (m WeekOneModel) rows() []row {
	var rows []row
	for p, panel := range m.Panels {
		rows = append(rows, row{kind: rowPanel, panel: p})
		if !panel.IsOpen() {
			continue
		}
		switch p {
		case PanelVideos:
			for i := range m.Media {
				rows = append(rows, row{kind: rowVideo, panel: p, index: i})
			}
		case PanelChecklist:
			for i := 0; i < m.Checklist.Len(); i++ {
				rows = append(rows, row{kind: rowCheck, panel: p, index: i})
			}
		case PanelTodos:
			rows = append(rows, row{kind: rowTodoInput, panel: p})
			for i := 0; i < m.Todos.Len(); i++ {
				rows = append(rows, row{kind: rowTodo, panel: p, index: i})
			}
		}
	}
	return rows
}

// current returns the row under the cursor
func (m WeekOneModel) current() (row, bool) {
	rows := m.rows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.Cursor], true
}

func (m WeekOneModel) clampCursor() WeekOneModel {
	n := len(m.rows())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	return m
}

func (m WeekOneModel) update(msg tea.KeyMsg) (WeekOneModel, tea.Cmd) {
	if m.typing {
		return m.updateTyping(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.Cursor < len(m.rows())-1 {
			m.Cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		r, ok := m.current()
		if !ok {
			return m, nil
		}
		return m.activate(r)

	case key.Matches(msg, m.keys.Add):
		return m.startTyping()

	case key.Matches(msg, m.keys.Delete):
		r, ok := m.current()
		if !ok || r.kind != rowTodo {
			return m, nil
		}
		item := m.Todos.Items()[r.index]
		m.Todos = m.Todos.Remove(item.ID)
		logging.LogTransition("todo", "remove", fmt.Sprintf("%d", item.ID))
		return m.clampCursor(), nil

	case key.Matches(msg, m.keys.Copy):
		r, ok := m.current()
		if !ok || r.kind != rowVideo {
			return m, nil
		}
		return m, m.players.CopyLink(m.Media[r.index].SourceID)
	}
	return m, nil
}

// activate runs the transition owned by the row
func (m WeekOneModel) activate(r row) (WeekOneModel, tea.Cmd) {
	switch r.kind {
	case rowPanel:
		return m.togglePanel(r.panel), nil
	case rowVideo:
		return m.toggleVideo(r.index), nil
	case rowCheck:
		return m.toggleCheck(r.index)
	case rowTodoInput:
		return m.startTyping()
	}
	return m, nil
}

func (m WeekOneModel) togglePanel(p int) WeekOneModel {
	panels := make([]state.PanelState, len(m.Panels))
	copy(panels, m.Panels)
	panels[p] = panels[p].Toggle()
	m.Panels = panels
	logging.LogTransition("panel", panels[p].Title, fmt.Sprintf("open=%t", panels[p].IsOpen()))

	// Closing the videos panel unmounts its media items
	if p == PanelVideos && !panels[p].IsOpen() {
		m = m.hideAllVideos()
	}
	return m.clampCursor()
}

func (m WeekOneModel) hideAllVideos() WeekOneModel {
	playback := make([]state.PlaybackState, len(m.Playback))
	for i, ref := range m.Media {
		_, playback[i] = state.NewMediaItem(ref.Title, ref.DurationLabel, ref.SourceID, ref.Locked)
		m.players.Unmount(ref.SourceID)
	}
	m.Playback = playback
	return m
}

// toggleVideo shows or hides the player. Locked videos ignore the request.
func (m WeekOneModel) toggleVideo(i int) WeekOneModel {
	ref := m.Media[i]
	before := m.Playback[i]
	after := state.RequestToggle(ref, before)
	if after.Equal(before) {
		logging.Debug("Locked video ignored toggle", zap.String("source_id", ref.SourceID))
		return m
	}

	playback := make([]state.PlaybackState, len(m.Playback))
	copy(playback, m.Playback)
	playback[i] = after
	m.Playback = playback

	if after.Visible() {
		if err := m.players.Mount(ref); err != nil {
			logging.Error("Player mount failed", zap.Error(err))
		}
	} else {
		m.players.Unmount(ref.SourceID)
	}
	logging.LogTransition("media", ref.SourceID, fmt.Sprintf("visible=%t", after.Visible()))
	return m
}

func (m WeekOneModel) toggleCheck(i int) (WeekOneModel, tea.Cmd) {
	next, err := m.Checklist.Toggle(i)
	// Check rows come from Checklist.Len(), so an IndexError here means the
	// row builder and the checklist disagree. It is reported, not recovered.
	if err != nil {
		logging.Error("Checklist toggle rejected", zap.Error(err))
		return m, setStatus(err.Error(), true)
	}
	m.Checklist = next
	logging.LogTransition("checklist", fmt.Sprintf("%d", i), fmt.Sprintf("done=%t", next.IsCompleted(i)))
	return m, nil
}

// startTyping opens the todo panel if needed and focuses its input
func (m WeekOneModel) startTyping() (WeekOneModel, tea.Cmd) {
	if !m.Panels[PanelTodos].IsOpen() {
		m = m.togglePanel(PanelTodos)
	}
	for i, r := range m.rows() {
		if r.kind == rowTodoInput {
			m.Cursor = i
		}
	}
	m.typing = true
	cmd := m.input.Focus()
	return m, cmd
}

func (m WeekOneModel) updateTyping(msg tea.KeyMsg) (WeekOneModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.typingKeys.Submit):
		before := m.Todos.Len()
		m.Todos = m.Todos.Add(m.input.Value())
		if m.Todos.Len() > before {
			items := m.Todos.Items()
			logging.LogTransition("todo", "add", fmt.Sprintf("%d", items[len(items)-1].ID))
		} else {
			logging.Debug("Blank todo ignored")
		}
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.typingKeys.Cancel):
		m.typing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateInput forwards non-key messages such as cursor blinks
func (m WeekOneModel) updateInput(msg tea.Msg) (WeekOneModel, tea.Cmd) {
	if !m.typing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// lineWriter joins blocks and remembers where the cursor row starts
type lineWriter struct {
	blocks []string
	lines  int
	cursor int
}

func (w *lineWriter) add(block string, isCursor bool) {
	if isCursor {
		w.cursor = w.lines
	}
	w.blocks = append(w.blocks, block)
	w.lines += lipgloss.Height(block)
}

func (m WeekOneModel) view(ctx renderContext) (string, int) {
	s := ctx.styles
	w := &lineWriter{cursor: -1}

	w.add(s.Title.Render(m.Week.Title), false)
	w.add(s.Muted.Render(fmt.Sprintf("◷ %d hours of content", m.Week.ContentHours))+"  "+s.stars(m.Week.Rating), false)
	w.add("", false)

	rows := m.rows()
	for i, r := range rows {
		focused := i == m.Cursor
		switch r.kind {
		case rowPanel:
			w.add(m.panelHeader(ctx, r.panel, focused), focused)
			if m.Panels[r.panel].IsOpen() {
				if body := m.panelBody(ctx, r.panel); body != "" {
					w.add(body, false)
				}
			}
		case rowVideo:
			w.add(m.videoRow(ctx, r.index, focused), focused)
		case rowCheck:
			w.add(m.checkRow(ctx, r.index, focused), focused)
			if r.index == m.Checklist.Len()-1 {
				w.add(m.progressView(ctx), false)
			}
		case rowTodoInput:
			w.add(m.inputRow(ctx, focused), focused)
		case rowTodo:
			w.add(m.todoRow(ctx, r.index, focused), focused)
		}
	}

	return strings.Join(w.blocks, "\n"), w.cursor
}

func cursorPrefix(s Styles, focused bool) string {
	if focused {
		return s.Cursor.Render("▸ ")
	}
	return "  "
}

func (m WeekOneModel) panelHeader(ctx renderContext, p int, focused bool) string {
	s := ctx.styles
	panel := m.Panels[p]
	arrow := "▸"
	style := s.PanelHeader
	if panel.IsOpen() {
		arrow = "▾"
		style = s.PanelOpen
	}
	title := fmt.Sprintf(" %s %s %s ", arrow, panel.Icon, panel.Title)
	return cursorPrefix(s, focused) + style.Render(title)
}

// panelBody renders the non-focusable content of an open panel
func (m WeekOneModel) panelBody(ctx renderContext, p int) string {
	s := ctx.styles
	width := ctx.width - 4
	switch p {
	case PanelNotes:
		var md strings.Builder
		md.WriteString("### Learning Objectives\n\n")
		for _, o := range m.Week.Objectives {
			md.WriteString("- " + o + "\n")
		}
		notes := ctx.md.render(width, md.String(), s.Dark)
		download := s.Tag.Render("⬇ " + m.Week.NotesFile + " (PDF)")
		return indent(notes+"\n"+download, 4)

	case PanelQuestions:
		var md strings.Builder
		for _, q := range m.Week.Questions {
			md.WriteString("**Q: " + q.Question + "**\n\n")
			md.WriteString("A: " + q.Answer + "\n\n")
		}
		return indent(ctx.md.render(width, md.String(), s.Dark), 4)

	case PanelVideos:
		if len(m.Media) == 0 {
			return indent(s.Muted.Render("No videos this week."), 4)
		}
	}
	return ""
}

func (m WeekOneModel) videoRow(ctx renderContext, i int, focused bool) string {
	s := ctx.styles
	ref := m.Media[i]
	prefix := "    " + cursorPrefix(s, focused)

	if ref.Locked {
		return prefix + s.Locked.Render(fmt.Sprintf("🔒 %s  %s  locked", ref.Title, ref.DurationLabel))
	}

	icon := "▶"
	if m.Playback[i].Visible() {
		icon = "■"
	}
	line := prefix + s.Text.Render(fmt.Sprintf("%s %s", icon, ref.Title)) + "  " + s.Muted.Render(ref.DurationLabel)
	if !m.Playback[i].Visible() {
		return line
	}
	if f, ok := m.players.Frame(ref.SourceID); ok {
		line += "\n" + indent(f.View(ctx.width-8, s.Player), 6)
	}
	return line
}

func (m WeekOneModel) checkRow(ctx renderContext, i int, focused bool) string {
	s := ctx.styles
	label := m.Checklist.Labels()[i]
	prefix := "    " + cursorPrefix(s, focused)
	if m.Checklist.IsCompleted(i) {
		return prefix + s.Secondary().Render("[✓] ") + s.Done.Render(label)
	}
	return prefix + s.Text.Render("[ ] "+label)
}

func (m WeekOneModel) progressView(ctx renderContext) string {
	s := ctx.styles
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(ctx.width/2))
	done := len(m.Checklist.Completed())
	return "      " + bar.ViewAs(m.Checklist.Progress()) + "  " +
		s.Muted.Render(fmt.Sprintf("%d of %d completed", done, m.Checklist.Len()))
}

func (m WeekOneModel) inputRow(ctx renderContext, focused bool) string {
	s := ctx.styles
	box := s.Input
	if m.typing {
		box = s.InputFocused
	}
	input := m.input
	input.Width = ctx.width - 12 - box.GetHorizontalFrameSize()
	if input.Width < 10 {
		input.Width = 10
	}
	return indent(cursorPrefix(s, focused)+box.Render(input.View()), 4)
}

func (m WeekOneModel) todoRow(ctx renderContext, i int, focused bool) string {
	s := ctx.styles
	item := m.Todos.Items()[i]
	prefix := "    " + cursorPrefix(s, focused)
	line := prefix + s.priorityDot(item.Priority) + " " + s.Text.Render(item.Text)
	if focused {
		line += "  " + s.Muted.Render("x delete")
	}
	return line
}

// priorityDot renders the colored dot of a todo priority
func (s Styles) priorityDot(p state.Priority) string {
	color := s.Palette.Secondary
	switch p {
	case state.PriorityHigh:
		color = s.Palette.Error
	case state.PriorityMedium:
		color = s.Palette.Warning
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}

// Secondary is plain text in the secondary color
func (s Styles) Secondary() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Palette.Secondary)
}

func indent(block string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
