package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/eduportal/internal/catalog"
	"github.com/muurk/eduportal/internal/search"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"detailed", FormatDetailed, false},
		{"COMPACT", FormatCompact, false},
		{"json", FormatJSON, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestRenderers(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}

	course := RenderCourse(c.Courses[0], FormatDetailed)
	for _, want := range []string{c.Courses[0].Title, c.Courses[0].Instructor, "4.9"} {
		if !strings.Contains(course, want) {
			t.Errorf("RenderCourse() missing %q:\n%s", want, course)
		}
	}

	tut := RenderTutorial(c.Tutorials[0], FormatCompact)
	if strings.Contains(tut, "\n") {
		t.Errorf("compact tutorial should be one line: %q", tut)
	}

	week := RenderWeek(c.Week, 80)
	for _, want := range []string{"Week 1", "HTML Fundamentals", LockedMarker, "Submit weekly assignment", "Practice JavaScript"} {
		if !strings.Contains(week, want) {
			t.Errorf("RenderWeek() missing %q", want)
		}
	}
}

func TestRenderSearchResult(t *testing.T) {
	r := search.Result{Kind: search.KindInstructor, Title: "Sarah Johnson", Detail: "0 courses, 2 tutorials"}
	out := RenderSearchResult(r, FormatDetailed)
	if !strings.Contains(out, "instructor") || !strings.Contains(out, "2 tutorials") {
		t.Errorf("RenderSearchResult() = %q", out)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintHeader("Courses", "eduportal catalog courses", Param{Key: "Tab", Value: "all"})
	p.PrintError("Catalog invalid", errors.New("boom"), "check the file")

	out := buf.String()
	for _, want := range []string{"COURSES", "Tab:", "FAILED", "boom", "check the file"} {
		if !strings.Contains(out, want) {
			t.Errorf("printer output missing %q", want)
		}
	}

	buf.Reset()
	if err := p.PrintJSON(map[string]int{"n": 1}); err != nil {
		t.Fatalf("PrintJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"n": 1`) {
		t.Errorf("PrintJSON() = %q", buf.String())
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		p := NewPrinter(&buf).SetWidth(80)
		if got := p.Confirm(strings.NewReader(tt.in), "Overwrite", []string{"existing file"}, "Continue?"); got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHighlight(t *testing.T) {
	out := Highlight("React", []int{0, 1})
	if got := lipgloss.Width(out); got != 5 {
		t.Errorf("Highlight() width = %d, want 5", got)
	}
}
