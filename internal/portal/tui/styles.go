package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/eduportal/internal/urls"
	"github.com/muurk/eduportal/internal/version"
)

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
	GridMinCardWidth = 34  // Narrowest card before the grid drops a column
)

// Palette is one color theme.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Text      lipgloss.Color
	Subtle    lipgloss.Color
	Surface   lipgloss.Color
	Border    lipgloss.Color
}

var (
	// LightPalette mirrors the portal's default blue on white look
	LightPalette = Palette{
		Primary:   lipgloss.Color("#2563EB"), // Blue
		Secondary: lipgloss.Color("#16A34A"), // Green
		Accent:    lipgloss.Color("#9333EA"), // Purple
		Warning:   lipgloss.Color("#CA8A04"), // Yellow
		Error:     lipgloss.Color("#DC2626"), // Red
		Text:      lipgloss.Color("#111827"), // Near black
		Subtle:    lipgloss.Color("#6B7280"), // Gray
		Surface:   lipgloss.Color("#F3F4F6"), // Light gray
		Border:    lipgloss.Color("#2563EB"),
	}

	// DarkPalette is used while dark mode is on
	DarkPalette = Palette{
		Primary:   lipgloss.Color("#7D56F4"), // Purple
		Secondary: lipgloss.Color("#43BF6D"), // Green
		Accent:    lipgloss.Color("#FF8B94"), // Pink
		Warning:   lipgloss.Color("#FFA500"), // Orange
		Error:     lipgloss.Color("#FF5555"), // Red
		Text:      lipgloss.Color("#FFFFFF"), // White
		Subtle:    lipgloss.Color("#626262"), // Gray
		Surface:   lipgloss.Color("#1A1A1A"), // Dark gray
		Border:    lipgloss.Color("#7D56F4"),
	}
)

// Styles holds every style the views use, derived from one palette.
type Styles struct {
	Dark    bool
	Palette Palette

	Brand        lipgloss.Style
	NavLink      lipgloss.Style
	NavActive    lipgloss.Style
	Badge        lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Muted        lipgloss.Style
	Text         lipgloss.Style
	Tag          lipgloss.Style
	Rating       lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Chip         lipgloss.Style
	ChipActive   lipgloss.Style
	PanelHeader  lipgloss.Style
	PanelOpen    lipgloss.Style
	Cursor       lipgloss.Style
	Done         lipgloss.Style
	Locked       lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Player       lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Help         lipgloss.Style
	Match        lipgloss.Style
}

// NewStyles builds the styles for the light or dark theme.
func NewStyles(dark bool) Styles {
	p := LightPalette
	if dark {
		p = DarkPalette
	}

	return Styles{
		Dark:    dark,
		Palette: p,

		Brand: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		NavLink: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Error).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Italic(true),
		Muted: lipgloss.NewStyle().
			Foreground(p.Subtle),
		Text: lipgloss.NewStyle().
			Foreground(p.Text),
		Tag: lipgloss.NewStyle().
			Foreground(p.Primary),
		Rating: lipgloss.NewStyle().
			Foreground(p.Warning),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Subtle).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		Chip: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Padding(0, 1),
		ChipActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Primary).
			Padding(0, 1),
		PanelHeader: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
		PanelOpen: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		Done: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Strikethrough(true),
		Locked: lipgloss.NewStyle().
			Foreground(p.Subtle),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Subtle).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		Player: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(p.Secondary),
		StatusError: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(p.Subtle),
		Match: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Underline(true),
	}
}

// renderMarkdown renders markdown content using glamour.
func renderMarkdown(width int, content string, dark bool) string {
	if content == "" {
		return ""
	}

	// A fixed style avoids slow terminal background detection
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	out, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSpace(out)
}

// markdownCache keeps rendered markdown per width and theme; glamour
// renderers are too slow to build on every frame.
type markdownCache struct {
	entries map[markdownKey]string
}

type markdownKey struct {
	source string
	width  int
	dark   bool
}

func newMarkdownCache() *markdownCache {
	return &markdownCache{entries: make(map[markdownKey]string)}
}

func (c *markdownCache) render(width int, content string, dark bool) string {
	k := markdownKey{source: content, width: width, dark: dark}
	if out, ok := c.entries[k]; ok {
		return out
	}
	out := renderMarkdown(width, content, dark)
	c.entries[k] = out
	return out
}

// stars renders a rating as "★ 4.8".
func (s Styles) stars(rating float64) string {
	return s.Rating.Render("★ " + formatRating(rating))
}

// BuildFooterContent creates footer content with help text and the
// version/repository line
func (s Styles) BuildFooterContent(helpText string, width int) string {
	left := s.Help.Render(helpText)
	right := s.Muted.Render("v" + version.Version + "  " + strings.TrimPrefix(urls.Repository, "https://"))
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderApplicationContainer wraps every route in the same frame: navbar
// and search bar on top, the scrolling body, then status and help at the
// bottom. Content width is terminalWidth-4.
func (s Styles) RenderApplicationContainer(header, body, footer string, terminalWidth, terminalHeight int) string {
	sectionWidth := terminalWidth - 4

	styledHeader := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(s.Palette.Border).
		Width(sectionWidth).
		Render(header)

	styledFooter := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(s.Palette.Border).
		Width(sectionWidth).
		Render(footer)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		lipgloss.NewStyle().Width(sectionWidth).Render(body),
		styledFooter,
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.Palette.Border).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}

// chromeHeight is the number of rows the container adds around the body:
// the outer border plus the header and footer rules.
const chromeHeight = 4

func formatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}
