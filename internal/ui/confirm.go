package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm shows a warning box on the printer and asks a yes/no question,
// reading the answer from in. Anything but "y" or "yes" declines.
func (p *Printer) Confirm(in io.Reader, title string, warnings []string, question string) bool {
	r := NewWarningResult(title).SetWidth(p.width)
	for i, w := range warnings {
		r.AddDetail(fmt.Sprintf("%d", i+1), w)
	}
	p.Println(r.Render())

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	p.Print(promptStyle.Render(question + " [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	p.Newline()
	if err != nil && input == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}
	p.Println(lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
	return false
}
