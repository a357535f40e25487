package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mistakeknot/pathplan/internal/roadmap"
	sharedtui "github.com/mistakeknot/pathplan/pkg/tui"
)

// renderKanban draws the five fixed status columns side by side. Undated
// tasks are included; the board ignores time entirely.
func renderKanban(board roadmap.KanbanBoard, width int) string {
	colWidth := max(width/len(board.Columns)-1, 14)
	cols := make([]string, 0, len(board.Columns))
	for _, col := range board.Columns {
		cols = append(cols, kanbanColumn(col, colWidth))
	}
	header := sharedtui.LabelStyle.Render(fmt.Sprintf("%d tasks", board.Total))
	return header + "\n" + joinColumns(cols...)
}

func kanbanColumn(col roadmap.KanbanColumn, width int) string {
	inner := max(width-2, 10)
	var b strings.Builder
	heading := fmt.Sprintf("%s (%d)", col.Status.Title(), col.Count())
	b.WriteString(statusStyle(col.Status).Bold(true).Render(padRight(heading, inner)))
	for _, t := range col.Tasks {
		b.WriteString("\n")
		b.WriteString(padRight(t.Name, inner))
		b.WriteString("\n")
		meta := t.Initiative
		if t.Assignee != "" {
			meta += " · " + t.Assignee
		}
		b.WriteString(sharedtui.LabelStyle.Render(padRight(meta, inner)))
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(sharedtui.ColorMuted).
		Width(width)
	return style.Render(b.String())
}
