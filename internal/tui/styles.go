package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mistakeknot/pathplan/internal/roadmap"
	sharedtui "github.com/mistakeknot/pathplan/pkg/tui"
)

// Status accent colors.
var statusColors = map[roadmap.Status]lipgloss.Color{
	roadmap.StatusToDo:       lipgloss.Color("#757575"),
	roadmap.StatusInProgress: lipgloss.Color("#2196F3"),
	roadmap.StatusReview:     lipgloss.Color("#9C27B0"),
	roadmap.StatusDone:       lipgloss.Color("#4CAF50"),
	roadmap.StatusOnHold:     lipgloss.Color("#FF5722"),
}

func statusColor(s roadmap.Status) lipgloss.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return lipgloss.Color("#9E9E9E")
}

func statusStyle(s roadmap.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(statusColor(s))
}

// barColor picks the Gantt bar color: done is always green, and active
// work is hotter the higher its priority.
func barColor(s roadmap.Status, p roadmap.Priority) lipgloss.Color {
	if s == roadmap.StatusDone {
		return statusColor(roadmap.StatusDone)
	}
	if s == roadmap.StatusInProgress {
		switch p {
		case roadmap.PriorityHighest, roadmap.PriorityHigh:
			return lipgloss.Color("#FF1744")
		case roadmap.PriorityMedium:
			return lipgloss.Color("#FF9800")
		default:
			return lipgloss.Color("#2196F3")
		}
	}
	return statusColor(s)
}

func priorityStyle(p roadmap.Priority) lipgloss.Style {
	switch p {
	case roadmap.PriorityHighest, roadmap.PriorityHigh:
		return lipgloss.NewStyle().Foreground(sharedtui.ColorError)
	case roadmap.PriorityMedium:
		return lipgloss.NewStyle().Foreground(sharedtui.ColorWarning)
	default:
		return lipgloss.NewStyle().Foreground(sharedtui.ColorMuted)
	}
}

func renderHeader(title, focus string) string {
	label := "PATHPLAN | " + title + " | [" + focus + "]"
	return sharedtui.TitleStyle.Render(label)
}

func renderFooter(keys, status string) string {
	if strings.TrimSpace(status) == "" {
		status = "ready"
	}
	label := "KEYS: " + keys + " | " + status
	return sharedtui.HelpDescStyle.Render(label)
}

func renderPanelTitle(title string, width int) string {
	line := strings.Repeat("─", max(0, width))
	return sharedtui.TitleStyle.Render(title) + "\n" + sharedtui.LabelStyle.Render(line)
}
