package ui

import (
	"strings"

	"prodtable/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// sidebarWidth is the outer width of each sidebar, border included.
const sidebarWidth = 30

// filterInputWidth fits a filter input inside the sidebar border.
const filterInputWidth = 20

func panelStyle(focused bool) lipgloss.Style {
	if focused {
		return ActivePanelStyle
	}
	return PanelStyle
}

// renderSettings renders the Show/Hide Columns sidebar.
func (m Model) renderSettings(height int) string {
	focused := m.focus == model.FocusSettings
	lines := []string{LabelStyle.Render("Show/Hide Columns"), ""}
	cursorLine := len(lines) + m.settingsCursor
	for i, c := range m.columns {
		box := ToggleOffStyle.Render("[ ]")
		if m.state.IsVisible(c.Key) {
			box = ToggleOnStyle.Render("[x]")
		}
		label := PanelItemStyle.Render(c.Header)
		prefix := "  "
		if focused && i == m.settingsCursor {
			prefix = PanelCursorStyle.Render("> ")
			label = PanelCursorStyle.Render(c.Header)
		}
		lines = append(lines, prefix+box+" "+label)
	}
	lines = append(lines, "",
		HelpKeyStyle.Render("a")+" "+HelpDescStyle.Render("show all columns"),
		HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("apply"),
	)
	return renderPanel(lines, cursorLine, focused, height)
}

// renderFilters renders the per-column Filters sidebar.
func (m Model) renderFilters(height int) string {
	focused := m.focus == model.FocusFilters
	lines := []string{LabelStyle.Render("Filters"), ""}
	// Each column takes a label line and an input line.
	cursorLine := len(lines) + 2*m.filterCursor + 1
	for i, c := range m.columns {
		label := PanelItemStyle.Render(c.Header)
		if focused && i == m.filterCursor {
			label = PanelCursorStyle.Render(c.Header)
		}
		lines = append(lines, label, "  "+m.filterInputs[i].View())
	}
	lines = append(lines, "",
		HelpKeyStyle.Render("ctrl+x")+" "+HelpDescStyle.Render("clear filters"),
	)
	return renderPanel(lines, cursorLine, focused, height)
}

// renderPanel draws lines in a bordered box of the given height. When the
// lines do not fit, the window scrolls so cursorLine stays visible.
func renderPanel(lines []string, cursorLine int, focused bool, height int) string {
	style := panelStyle(focused)
	inner := sidebarWidth - style.GetHorizontalFrameSize()
	innerHeight := max(1, height-style.GetVerticalFrameSize())
	lines = scrollWindow(lines, cursorLine, innerHeight)
	return style.
		Width(inner + style.GetHorizontalPadding()).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

// scrollWindow returns at most height lines, starting at the top unless
// that would leave cursor below the window.
func scrollWindow(lines []string, cursor, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := 0
	if cursor >= height {
		start = min(cursor-height+1, len(lines)-height)
	}
	return lines[start : start+height]
}
