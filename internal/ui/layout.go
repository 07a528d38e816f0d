package ui

import (
	"fmt"
	"strings"

	"prodtable/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderHeader() string {
	left := "  " + HeaderStyle.Render(m.title)
	right := BreadcrumbStyle.Render(fmt.Sprintf("%d products", m.view.Total)) + "  "

	padding := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

// renderToolbar renders the search box and the sidebar toggle buttons.
func (m Model) renderToolbar() string {
	search := m.search.View()
	if m.search.Value() != "" && m.focus != model.FocusSearch {
		search += " " + HelpKeyStyle.Render("✖") + " " + HelpDescStyle.Render("x")
	}

	settings := ToolbarButtonStyle.Render("⚙ columns")
	if m.state.SettingsOpen {
		settings = ToolbarActiveStyle.Render("⚙ columns")
	}
	filters := ToolbarButtonStyle.Render("🔧 filters")
	if m.state.FiltersOpen {
		filters = ToolbarActiveStyle.Render("🔧 filters")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, settings, filters)

	padding := max(1, m.width-lipgloss.Width(search)-lipgloss.Width(buttons)-2)
	return lipgloss.NewStyle().Padding(0, 1).Render(search + strings.Repeat(" ", padding) + buttons)
}

// renderPagination renders one numbered button per page. The button for
// the current page is drawn active and does nothing when pressed.
func (m Model) renderPagination() string {
	buttons := make([]string, 0, m.view.PageCount)
	for i := 0; i < m.view.PageCount; i++ {
		label := fmt.Sprintf("%d", i+1)
		if i == m.view.PageIndex {
			buttons = append(buttons, ActivePageStyle.Render(label))
		} else {
			buttons = append(buttons, PageButtonStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(lipgloss.JoinHorizontal(lipgloss.Left, buttons...))
}

func (m Model) renderStatus() string {
	parts := []string{fmt.Sprintf("%d products", len(m.view.Rows))}
	if len(m.view.Rows) != m.view.Total {
		parts = append(parts, fmt.Sprintf("filtered: %d/%d", len(m.view.Rows), m.view.Total))
	}
	parts = append(parts, fmt.Sprintf("page %d/%d", m.view.PageIndex+1, m.view.PageCount))
	if len(m.columns) > 0 {
		parts = append(parts, fmt.Sprintf("col %s", strings.ToUpper(m.columns[m.activeColumn].Header)))
	}
	if meta := m.state.Meta(m.columns); meta != "" {
		parts = append(parts, meta)
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(parts, "  ·  "))
}
