// Package termview renders a sidebar View for the terminal.
package termview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/open-notebook/open-notebook-web/internal/sidebar"
)

const (
	collapsedWidth = 5
	expandedWidth  = 30
)

var (
	borderColor = lipgloss.AdaptiveColor{Light: "#d4d4d8", Dark: "#3f3f46"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "#71717a", Dark: "#a1a1aa"}
	accentColor = lipgloss.AdaptiveColor{Light: "#e4e4e7", Dark: "#27272a"}

	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(borderColor)

	brandStyle   = lipgloss.NewStyle().Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(mutedColor).Bold(true)
	itemStyle    = lipgloss.NewStyle().PaddingLeft(1)
	activeStyle  = itemStyle.Background(accentColor).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	kbdStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerBorder = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(borderColor)
)

// Render draws the sidebar as a column of text.
func Render(view sidebar.View) string {
	width := expandedWidth
	if view.Collapsed {
		width = collapsedWidth
	}

	rows := []string{header(view)}
	rows = append(rows, navigation(view, width)...)
	rows = append(rows, footer(view, width))

	return containerStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func header(view sidebar.View) string {
	if view.Header.ShowBrandLabel {
		return brandStyle.Render("[] "+view.Header.BrandName) + "  " + view.Header.ToggleIcon.Glyph()
	}

	return brandStyle.Render("[]")
}

func navigation(view sidebar.View, width int) []string {
	var rows []string

	for _, section := range view.Sections {
		if section.SeparatorBefore {
			rows = append(rows, hintStyle.Render(strings.Repeat("─", width-1)))
		}

		if section.ShowTitle {
			rows = append(rows, titleStyle.Render(strings.ToUpper(section.Title)))
		}

		for _, item := range section.Items {
			label := item.Icon.Glyph()
			if item.ShowLabel {
				label += " " + item.Name
			}

			style := itemStyle
			if item.Active {
				style = activeStyle
			}

			rows = append(rows, style.Render(label))
		}
	}

	return rows
}

func footer(view sidebar.View, width int) string {
	var rows []string

	if view.Footer.ShowQuickActions {
		rows = append(rows,
			lipgloss.JoinHorizontal(lipgloss.Center,
				hintStyle.Render("Quick actions "), kbdStyle.Render(view.Footer.ShortcutLabel)),
			hintStyle.Render(view.Footer.QuickActionsHint),
		)
	}

	theme := view.Footer.Theme
	if theme.IconOnly {
		rows = append(rows, itemStyle.Render(theme.Current.Icon().Glyph()))
	} else {
		rows = append(rows, itemStyle.Render("Theme: "+theme.Current.Label()))
	}

	signOut := sidebar.IconLogOut.Glyph()
	if view.Footer.SignOut.ShowLabel {
		signOut += " " + view.Footer.SignOut.Label
	}

	rows = append(rows, itemStyle.Render(signOut))

	return footerBorder.Width(width - 1).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
