package ui

import (
	"strings"

	"prodtable/internal/model"
	"prodtable/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// minCellWidth is the narrowest a column is drawn, padding included.
const minCellWidth = 6

// renderTable renders the header row and the current page of products.
func (m Model) renderTable(width, height int) string {
	cols := m.view.Columns
	if len(cols) == 0 {
		return EmptyStateStyle.Width(width).Render("No visible columns. Press C to show all columns.")
	}

	widths := make([]int, 0, len(cols))
	headers := make([]string, 0, len(cols))
	totalFixed := 0
	for _, c := range cols {
		label := c.Header
		if desc, ok := m.state.SortDirection(c.Key); ok {
			arrow := "↑"
			if desc {
				arrow = "↓"
			}
			label += " " + SortIndicatorStyle.Render(arrow)
		}
		cellWidth := max(c.Width+2, lipgloss.Width(label)+2, minCellWidth)
		totalFixed += cellWidth
		widths = append(widths, cellWidth)
		if m.isActiveColumn(c.Key) {
			label = renderActiveHeaderLabel(label)
		}
		headers = append(headers, label)
	}
	if extra := width - totalFixed; extra > 0 {
		widths[len(widths)-1] += extra
	}

	header := renderTableRow(headers, widths, TableHeaderStyle)
	divider := renderTableDivider(widths)

	if len(m.view.Page) == 0 {
		empty := EmptyStateStyle.Width(width).Render("No matching products.")
		return lipgloss.JoinVertical(lipgloss.Left, header, divider, empty)
	}

	rows := make([]string, 0, len(m.view.Page))
	for i, row := range m.view.Page {
		if i >= max(0, height-2) {
			break
		}
		style := NormalRowStyle
		switch {
		case !m.state.Fade:
			style = FadedRowStyle
		case i == m.cursor && m.focus == model.FocusTable:
			style = SelectedRowStyle
		}

		cells := make([]string, 0, len(cols))
		for j, c := range cols {
			cell := util.TruncateString(c.Cell(row), widths[j]-2)
			if cell == util.InvalidDate && m.state.Fade && i != m.cursor {
				cell = InvalidCellStyle.Render(cell)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		divider,
		strings.Join(rows, "\n"),
	)
}

func (m Model) isActiveColumn(key string) bool {
	return len(m.columns) > 0 && m.columns[m.activeColumn].Key == key
}

// renderTableRow renders one row of cells, each padded to its column width.
func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Padding(0, 1).Width(widths[i]).MaxWidth(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func renderTableDivider(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	return DividerStyle.Render(strings.Repeat("─", total))
}

func renderActiveHeaderLabel(label string) string {
	return lipgloss.NewStyle().Underline(true).Render(label)
}
