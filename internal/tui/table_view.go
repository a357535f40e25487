package tui

import (
	"fmt"
	"strings"

	"github.com/mistakeknot/pathplan/internal/roadmap"
	sharedtui "github.com/mistakeknot/pathplan/pkg/tui"
)

// column widths for the task table, scaled from the available width.
type tableLayout struct {
	initiative int
	feature    int
	quarter    int
	status     int
	priority   int
	assignee   int
	progress   int
}

func computeTableLayout(width int) tableLayout {
	// Fixed trailing columns, the rest split between the two name columns.
	l := tableLayout{quarter: 8, status: 12, priority: 8, assignee: 14, progress: 5}
	fixed := l.quarter + l.status + l.priority + l.assignee + l.progress + 6*2
	remain := max(width-fixed, 24)
	l.initiative = remain / 3
	l.feature = remain - l.initiative
	return l
}

// renderTaskTable renders the flat task list as an aligned table in
// flatten order.
func renderTaskTable(tasks []roadmap.Task, width int) string {
	if len(tasks) == 0 {
		return sharedtui.LabelStyle.Render("No features in this roadmap.")
	}
	l := computeTableLayout(width)
	var b strings.Builder
	header := strings.Join([]string{
		padRight("INITIATIVE", l.initiative),
		padRight("FEATURE", l.feature),
		padRight("QUARTER", l.quarter),
		padRight("STATUS", l.status),
		padRight("PRIORITY", l.priority),
		padRight("ASSIGNEE", l.assignee),
		padRight("PROG", l.progress),
	}, "  ")
	b.WriteString(sharedtui.LabelStyle.Render(header))
	for _, t := range tasks {
		b.WriteString("\n")
		row := []string{
			padRight(t.Initiative, l.initiative),
			padRight(t.Name, l.feature),
			padRight(t.Quarter, l.quarter),
			statusStyle(t.Status).Render(padRight(t.Status.Title(), l.status)),
			priorityStyle(t.Priority).Render(padRight(t.Priority.String(), l.priority)),
			padRight(t.Assignee, l.assignee),
			padRight(fmt.Sprintf("%d%%", t.Progress), l.progress),
		}
		b.WriteString(strings.Join(row, "  "))
	}
	return b.String()
}
