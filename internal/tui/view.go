package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// editBufferCursor is appended to the active edit buffer when rendered.
const editBufferCursor = "▌"

// view renders the whole screen from App state. It is a pure read of the
// state machine; nothing here mutates App.
func (a *App) view() string {
	var body string
	var hints [][2]string
	var subtitle string

	switch a.screen {
	case screenMain:
		subtitle = "Classical artwork wallpaper generator"
		body = a.viewMain()
		hints = [][2]string{{"↑↓", "navigate"}, {"Enter", "select"}, {"q", "quit"}}
	case screenTaste:
		subtitle = "Taste Profiles"
		body = a.viewTaste()
		hints = a.tasteHints()
	case screenDisplay:
		subtitle = "Display Profiles"
		body = a.viewDisplay()
		hints = a.displayHints()
	case screenBuild:
		subtitle = "Build Wallpaper Gallery"
		body = a.viewBuild()
		hints = a.buildHints()
	}

	return strings.Join([]string{
		a.header(subtitle),
		body,
		a.footer(hints),
	}, "\n")
}

func (a *App) header(subtitle string) string {
	mark := lipgloss.NewStyle().Bold(true).Render("art") +
		styleSelected().Render("gg")
	line := mark + styleMuted().Render("  ·  "+subtitle)
	rule := styleMuted().Render(strings.Repeat("─", max(a.width, 20)))
	return lipgloss.PlaceHorizontal(max(a.width, 20), lipgloss.Center, line) + "\n" + rule
}

func (a *App) footer(hints [][2]string) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts, styleAccent().Render(" "+h[0]+" ")+h[1])
	}
	rule := styleMuted().Render(strings.Repeat("─", max(a.width, 20)))
	return rule + "\n" + lipgloss.PlaceHorizontal(max(a.width, 20), lipgloss.Center, strings.Join(parts, "   "))
}

func (a *App) viewMain() string {
	var rows []string
	for i, item := range mainItems {
		label := item.label()
		switch {
		case i == a.mainSelected:
			rows = append(rows, styleSelected().Render("> "+label))
		case item.disabled():
			rows = append(rows, styleMuted().Render("  "+label))
		default:
			rows = append(rows, "  "+label)
		}
	}
	menu := paneStyle(false).Width(20).Render(
		styleMuted().Render("Menu") + "\n" + strings.Join(rows, "\n"))

	selected := mainItems[a.mainSelected]
	detailWidth := max(a.width-28, 30)
	detail := paneStyle(false).Width(detailWidth).Render(
		styleMuted().Render(selected.label()) + "\n" +
			lipgloss.NewStyle().Width(detailWidth-2).Render(selected.description()))

	return lipgloss.JoinHorizontal(lipgloss.Top, menu, detail)
}

// listRows renders a cursor-driven list body. cursor < 0 hides the cursor.
func listRows(names []string, cursor, width int) string {
	if len(names) == 0 {
		return styleMuted().Render("(none)")
	}
	var rows []string
	for i, name := range names {
		name = truncate(name, width)
		if i == cursor {
			rows = append(rows, styleSelected().Render("> "+name))
		} else {
			rows = append(rows, "  "+name)
		}
	}
	return strings.Join(rows, "\n")
}

// fieldRow renders one " Label           value" form row, highlighted when
// it is under the field cursor.
func fieldRow(label, value string, selected, muted bool) string {
	row := fmt.Sprintf(" %-16s%s", label, value)
	switch {
	case selected:
		return styleSelected().Render(">" + row)
	case muted:
		return styleMuted().Render(" " + row)
	default:
		return " " + row
	}
}

func truncate(s string, width int) string {
	if width <= 1 {
		return xansi.Cut(s, 0, 1)
	}
	if xansi.StringWidth(s) > width {
		return xansi.Cut(s, 0, width-1) + "…"
	}
	return s
}

func optYear(v *int64) string {
	if v == nil {
		return "(not set)"
	}
	return fmt.Sprintf("%d", *v)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
