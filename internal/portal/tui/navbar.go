package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/eduportal/internal/catalog"
	"github.com/muurk/eduportal/internal/logging"
	"github.com/muurk/eduportal/internal/state"
)

// navbarModel is the top bar: brand, links, dark mode, notifications and
// the collapsible link menu.
type navbarModel struct {
	menu   state.Switch
	dark   state.Switch
	cursor int
	keys   menuKeyMap
}

func newNavbarModel(dark bool) navbarModel {
	return navbarModel{
		dark: state.NewSwitch(dark),
		keys: newMenuKeyMap(),
	}
}

// MenuOpen reports whether the vertical link list is expanded
func (n navbarModel) MenuOpen() bool {
	return n.menu.On()
}

// Dark reports whether the dark theme is on
func (n navbarModel) Dark() bool {
	return n.dark.On()
}

func (n navbarModel) toggleDark() navbarModel {
	n.dark = n.dark.Toggle()
	logging.LogTransition("navbar", "dark_mode", fmt.Sprintf("%t", n.dark.On()))
	return n
}

// toggleMenu opens the menu with the cursor on the active link, or closes it
func (n navbarModel) toggleMenu(links []catalog.NavLink, active Route) navbarModel {
	n.menu = n.menu.Toggle()
	if n.menu.On() {
		n.cursor = 0
		for i, l := range links {
			if Route(l.Path) == active {
				n.cursor = i
			}
		}
	}
	logging.LogTransition("navbar", "menu", fmt.Sprintf("%t", n.menu.On()))
	return n
}

func (n navbarModel) closeMenu() navbarModel {
	if n.menu.On() {
		n.menu = n.menu.Toggle()
	}
	return n
}

func (n navbarModel) moveCursor(delta, count int) navbarModel {
	if count == 0 {
		return n
	}
	n.cursor = (n.cursor + delta + count) % count
	return n
}

func (n navbarModel) view(ctx renderContext, c *catalog.Catalog, active Route, focused bool) string {
	s := ctx.styles

	brand := s.Brand.Render("▣ " + c.Brand)

	var right []string
	theme := "☀ light"
	if n.Dark() {
		theme = "☾ dark"
	}
	right = append(right, s.Muted.Render(theme))
	if c.Notifications > 0 {
		right = append(right, s.Badge.Render(fmt.Sprintf("🔔 %d", c.Notifications)))
	}
	right = append(right, s.Muted.Render("◉ Profile"))
	tools := strings.Join(right, " ")

	var links []string
	for i, l := range c.NavLinks {
		label := fmt.Sprintf("%d %s %s", i+1, l.Icon, l.Label)
		if Route(l.Path) == active {
			links = append(links, s.NavActive.Render(label))
		} else {
			links = append(links, s.NavLink.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, links...)

	top := brand
	gap := ctx.width - lipgloss.Width(brand) - lipgloss.Width(tools)
	if gap > 0 {
		top = brand + strings.Repeat(" ", gap) + tools
	} else {
		top = brand + " " + tools
	}

	lines := []string{top}
	if n.MenuOpen() {
		lines = append(lines, n.menuView(ctx, c.NavLinks, active, focused))
	} else if lipgloss.Width(row) <= ctx.width {
		lines = append(lines, row)
	} else {
		// Too narrow for the link row; the menu lists them instead
		lines = append(lines, s.Muted.Render("m: menu  "+currentLabel(c, active)))
	}
	return strings.Join(lines, "\n")
}

func (n navbarModel) menuView(ctx renderContext, links []catalog.NavLink, active Route, focused bool) string {
	s := ctx.styles
	var b strings.Builder
	for i, l := range links {
		prefix := "  "
		if focused && i == n.cursor {
			prefix = s.Cursor.Render("▸ ")
		}
		label := fmt.Sprintf("%s %s", l.Icon, l.Label)
		if Route(l.Path) == active {
			label = s.NavActive.Render(label)
		} else {
			label = s.NavLink.Render(label)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(prefix + label)
	}
	return b.String()
}

func currentLabel(c *catalog.Catalog, active Route) string {
	if l, ok := c.Link(string(active)); ok {
		return l.Label
	}
	return string(active)
}
