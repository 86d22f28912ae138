package player

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// frameHeight is the number of content rows of a player frame, enough for a
// 16:9 placeholder at typical card widths.
const frameHeight = 5

// View renders the frame inside box at the given outer width. The terminal
// cannot play video, so the frame shows the lesson and the embed link that
// a browser would load.
func (f Frame) View(width int, box lipgloss.Style) string {
	inner := width - box.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	screen := lipgloss.Place(inner, frameHeight, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			"▶  "+f.Title,
			f.Duration,
		))

	body := strings.Join([]string{
		screen,
		truncate(f.URL, inner),
	}, "\n")

	return box.Width(inner + box.GetHorizontalPadding()).Render(body)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 1 {
		return "…"
	}
	for len(r) > 0 && lipgloss.Width(string(r)) > width-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
