package tui

import (
	"fmt"
	"strings"

	"github.com/mistakeknot/pathplan/internal/roadmap"
	sharedtui "github.com/mistakeknot/pathplan/pkg/tui"
)

// renderTimeline draws the linear chronology: dated tasks in ascending
// start order, grouped under month headings.
func renderTimeline(tasks []roadmap.Task, width int) string {
	if len(tasks) == 0 {
		return sharedtui.LabelStyle.Render("No dated features on the timeline.")
	}
	var b strings.Builder
	lastMonth := ""
	for _, t := range tasks {
		month := t.Start.Format("January 2006")
		if month != lastMonth {
			if lastMonth != "" {
				b.WriteString("\n")
			}
			b.WriteString(sharedtui.TitleStyle.Render(month))
			lastMonth = month
		}
		b.WriteString("\n  ")
		b.WriteString(sharedtui.LabelStyle.Render(t.Start.Format("Jan 02")))
		b.WriteString("  ")
		b.WriteString(t.Name)
		b.WriteString("  ")
		b.WriteString(statusStyle(t.Status).Render(t.Status.String()))
		detail := t.Initiative
		if t.HasEnd {
			detail += fmt.Sprintf(" · ends %s", t.End.Format("Jan 02"))
		}
		b.WriteString("\n          ")
		b.WriteString(sharedtui.LabelStyle.Render(truncateLine(detail, max(width-10, 10))))
	}
	return strings.TrimRight(b.String(), "\n")
}
