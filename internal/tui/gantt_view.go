package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mistakeknot/pathplan/internal/roadmap"
	sharedtui "github.com/mistakeknot/pathplan/pkg/tui"
)

const ganttLabelWidth = 24

// renderGantt draws the timeline chart: a date-range line, a month header
// scaled to the shared span, and one bar row per schedulable task.
func renderGantt(tasks []roadmap.Task, width int) string {
	layout, ok := roadmap.BuildGanttLayout(tasks)
	if !ok {
		return sharedtui.LabelStyle.Render("No dated features to chart.")
	}
	chartWidth := max(width-ganttLabelWidth-1, 10)

	var b strings.Builder
	b.WriteString(sharedtui.LabelStyle.Render(fmt.Sprintf("%s - %s  (%d days)",
		layout.MinDate.Format("Jan 02"),
		layout.MaxDate.Format("Jan 02, 2006"),
		layout.TotalDays)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", ganttLabelWidth+1))
	b.WriteString(monthHeader(layout.Months, chartWidth))
	for _, bar := range layout.Bars {
		b.WriteString("\n")
		b.WriteString(ganttRow(bar, chartWidth))
	}
	return b.String()
}

// monthHeader lays the month labels out proportionally to their share of
// the span.
func monthHeader(months []roadmap.MonthSegment, chartWidth int) string {
	var b strings.Builder
	used := 0
	for i, m := range months {
		cells := int(m.Width * float64(chartWidth))
		if i == len(months)-1 {
			cells = chartWidth - used
		}
		if cells < 1 {
			cells = 1
		}
		used += cells
		b.WriteString(sharedtui.LabelStyle.Render(padRight(m.Label, cells)))
	}
	return b.String()
}

// ganttRow draws one task: its name, then the bar positioned by its
// fractional offset, then the inclusive duration label.
func ganttRow(bar roadmap.GanttBar, chartWidth int) string {
	name := padRight(bar.Task.Name, ganttLabelWidth)
	lead := int(bar.Offset * float64(chartWidth))
	cells := int(bar.Width * float64(chartWidth))
	if cells < 1 {
		cells = 1
	}
	if lead+cells > chartWidth {
		lead = chartWidth - cells
		if lead < 0 {
			lead = 0
			cells = chartWidth
		}
	}
	barStyle := lipgloss.NewStyle().Foreground(barColor(bar.Task.Status, bar.Task.Priority))
	return sharedtui.SubtitleStyle.Render(name) + " " +
		strings.Repeat(" ", lead) +
		barStyle.Render(strings.Repeat("█", cells)) +
		" " + sharedtui.LabelStyle.Render(fmt.Sprintf("%dd", bar.DurationDays))
}
