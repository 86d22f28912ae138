package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/eduportal/internal/catalog"
	"github.com/muurk/eduportal/internal/search"
)

// Format selects how listings are printed.
type Format string

const (
	FormatDetailed Format = "detailed"
	FormatCompact  Format = "compact"
	FormatJSON     Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatDetailed, FormatCompact, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (expected detailed, compact or json)", s)
}

func formatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

// RenderCourse renders one course card.
func RenderCourse(c catalog.Course, f Format) string {
	if f == FormatCompact {
		return fmt.Sprintf("%-3d %-40s %-13s %s", c.ID, c.Title, c.Level, formatRating(c.Rating))
	}
	return strings.Join([]string{
		EntryTagStyle.Render(fmt.Sprintf("[%s · %s]", c.Level, c.Duration)) + " " + EntryTitleStyle.Render(c.Title),
		"  " + c.Description,
		"  " + EntryMetaStyle.Render(c.Instructor) + "  " + Stars(c.Rating),
	}, "\n")
}

// RenderTutorial renders one tutorial card.
func RenderTutorial(t catalog.Tutorial, f Format) string {
	if f == FormatCompact {
		return fmt.Sprintf("%-3d %-40s %-11s %s %6d", t.ID, t.Title, t.Category, formatRating(t.Rating), t.Students)
	}
	return strings.Join([]string{
		EntryTagStyle.Render("["+t.Category+"]") + " " + EntryTitleStyle.Render(t.Title),
		"  " + t.Description,
		"  " + EntryMetaStyle.Render(fmt.Sprintf("%s · %d students · %s · %s",
			t.Duration, t.Students, t.Instructor, t.Published.Format("2006-01-02"))) + "  " + Stars(t.Rating),
	}, "\n")
}

// RenderWeek renders the week content: objectives, lessons, questions,
// checklist and seed todos.
func RenderWeek(w catalog.Week, width int) string {
	var b strings.Builder

	b.WriteString(EntryTitleStyle.Render(w.Title) + "\n")
	b.WriteString(EntryMetaStyle.Render(fmt.Sprintf("%d hours of content", w.ContentHours)) + "  " + Stars(w.Rating) + "\n")

	section := func(title string) {
		b.WriteString("\n" + HeaderTitleStyle.UnsetPaddingLeft().Render(title) + "\n")
		b.WriteString(RenderHorizontalDivider(min(width-2, 40), "─") + "\n")
	}

	section("Class Notes")
	for _, o := range w.Objectives {
		b.WriteString("  • " + o + "\n")
	}
	if w.NotesFile != "" {
		b.WriteString("  " + EntryMetaStyle.Render("⇩ "+w.NotesFile) + "\n")
	}

	section("Lessons")
	for i, v := range w.Videos {
		marker := "▶"
		if v.Locked {
			marker = LockedMarker
		}
		b.WriteString(fmt.Sprintf("  %d. %s %s  %s\n", i+1, marker, v.Title, EntryMetaStyle.Render(v.Duration)))
	}

	section("Questions")
	for _, q := range w.Questions {
		b.WriteString("  Q: " + q.Question + "\n")
		b.WriteString(EntryMetaStyle.Render("  A: "+q.Answer) + "\n")
	}

	section("Checklist")
	for _, label := range w.Checklist {
		b.WriteString(fmt.Sprintf("  %s %s\n", PendingMarker, label))
	}

	section("Todo")
	for _, t := range w.Todos {
		b.WriteString(fmt.Sprintf("  %s %s\n", priorityDot(t.Priority), t.Text))
	}

	return strings.TrimRight(b.String(), "\n")
}

func priorityDot(p string) string {
	color := MutedColor
	switch p {
	case "high":
		color = ErrorColor
	case "medium":
		color = WarningColor
	case "low":
		color = SuccessColor
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}

// RenderSearchResult renders one hit with the matched title characters
// highlighted.
func RenderSearchResult(r search.Result, f Format) string {
	title := Highlight(r.Title, r.Matched)
	if f == FormatCompact {
		return fmt.Sprintf("%-10s %s", r.Kind, title)
	}

	lines := []string{EntryTagStyle.Render("["+string(r.Kind)+"]") + " " + title}
	if r.Detail != "" {
		lines = append(lines, "  "+r.Detail)
	}
	if r.Kind != search.KindInstructor {
		lines = append(lines, "  "+EntryMetaStyle.Render(strings.Join(nonEmpty(r.Level, r.Duration, r.Instructor), " · "))+"  "+Stars(r.Rating))
	}
	return strings.Join(lines, "\n")
}

// Highlight styles the runes of s at the given indexes with MatchStyle.
func Highlight(s string, matched []int) string {
	if len(matched) == 0 {
		return EntryTitleStyle.Render(s)
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range []rune(s) {
		if hit[i] {
			b.WriteString(MatchStyle.Render(string(r)))
		} else {
			b.WriteString(EntryTitleStyle.Render(string(r)))
		}
	}
	return b.String()
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
