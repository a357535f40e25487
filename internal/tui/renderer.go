package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mistakeknot/pathplan/internal/response"
	"github.com/mistakeknot/pathplan/internal/roadmap"
	sharedtui "github.com/mistakeknot/pathplan/pkg/tui"
)

// RoadmapTab identifies the active roadmap sub-view.
type RoadmapTab int

const (
	TabOverview RoadmapTab = iota
	TabTable
	TabGantt
	TabKanban
	TabTimeline
)

var roadmapTabs = []RoadmapTab{TabOverview, TabTable, TabGantt, TabKanban, TabTimeline}

func (t RoadmapTab) String() string {
	switch t {
	case TabTable:
		return "Table"
	case TabGantt:
		return "Gantt"
	case TabKanban:
		return "Kanban"
	case TabTimeline:
		return "Timeline"
	default:
		return "Overview"
	}
}

// artifactRenderer turns a dispatched response into terminal blocks. One
// renderer is built per paint with the current display state; Dispatch
// fills blocks in document order and String joins them.
type artifactRenderer struct {
	width        int
	tab          RoadmapTab
	refsExpanded bool
	blocks       []string
}

func newArtifactRenderer(width int, tab RoadmapTab, refsExpanded bool) *artifactRenderer {
	if width < 20 {
		width = 20
	}
	return &artifactRenderer{width: width, tab: tab, refsExpanded: refsExpanded}
}

func (a *artifactRenderer) String() string {
	return strings.Join(a.blocks, "\n\n")
}

func (a *artifactRenderer) push(block string) {
	if strings.TrimSpace(block) == "" {
		return
	}
	a.blocks = append(a.blocks, block)
}

func (a *artifactRenderer) Prose(markdown string) {
	a.push(renderMarkdown(markdown, a.width))
}

func (a *artifactRenderer) Roadmap(overview string, initiatives []roadmap.Initiative, refs []roadmap.Reference) {
	tasks := roadmap.Flatten(initiatives)
	a.push(a.tabBar())
	switch a.tab {
	case TabTable:
		a.push(renderTaskTable(tasks, a.width))
	case TabGantt:
		a.push(renderGantt(tasks, a.width))
	case TabKanban:
		a.push(renderKanban(roadmap.GroupByStatus(tasks), a.width))
	case TabTimeline:
		a.push(renderTimeline(roadmap.Chronology(tasks), a.width))
	default:
		a.push(a.roadmapOverview(overview, initiatives, tasks))
	}
	a.push(a.references("References", refs, response.DefaultReferenceLimit))
}

func (a *artifactRenderer) tabBar() string {
	var cells []string
	for _, t := range roadmapTabs {
		style := sharedtui.TabStyle
		if t == a.tab {
			style = sharedtui.ActiveTabStyle
		}
		cells = append(cells, style.Render(t.String()))
	}
	return strings.Join(cells, "")
}

func (a *artifactRenderer) roadmapOverview(overview string, initiatives []roadmap.Initiative, tasks []roadmap.Task) string {
	var b strings.Builder
	if overview != "" {
		b.WriteString(renderMarkdown(overview, a.width))
		b.WriteString("\n\n")
	}
	b.WriteString(sharedtui.LabelStyle.Render(
		fmt.Sprintf("%d initiatives, %d features", len(initiatives), len(tasks))))
	for _, ini := range initiatives {
		b.WriteString("\n\n")
		b.WriteString(sharedtui.TitleStyle.Render(ini.Name))
		if ini.Goal != "" {
			b.WriteString("\n")
			b.WriteString(sharedtui.SubtitleStyle.Render(wrapText(ini.Goal, a.width)))
		}
		for _, f := range ini.Features {
			task := roadmap.Task{
				Status:   roadmap.ParseStatus(f.Status),
				Priority: roadmap.ParsePriority(f.Priority),
			}
			line := fmt.Sprintf("  • %s  %s  %s",
				f.Name,
				statusStyle(task.Status).Render(task.Status.String()),
				priorityStyle(task.Priority).Render(task.Priority.String()))
			if f.Quarter != "" {
				line += "  " + sharedtui.LabelStyle.Render(f.Quarter)
			}
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	return b.String()
}

func (a *artifactRenderer) FeatureBrief(overview, problemStatement string, userStories []string, refs []roadmap.Reference) {
	var b strings.Builder
	b.WriteString(sharedtui.TitleStyle.Render("Feature Brief"))
	if overview != "" {
		b.WriteString("\n\n")
		b.WriteString(renderMarkdown(overview, a.width))
	}
	if problemStatement != "" {
		b.WriteString("\n\n")
		b.WriteString(sharedtui.SubtitleStyle.Render("Problem"))
		b.WriteString("\n")
		b.WriteString(wrapText(problemStatement, a.width))
	}
	if len(userStories) > 0 {
		b.WriteString("\n\n")
		b.WriteString(sharedtui.SubtitleStyle.Render("User Stories"))
		for _, s := range userStories {
			b.WriteString("\n  • ")
			b.WriteString(s)
		}
	}
	a.push(b.String())
	a.push(a.references("References", refs, response.DefaultReferenceLimit))
}

func (a *artifactRenderer) BugList(overview string, bugs []response.Bug) {
	var b strings.Builder
	b.WriteString(sharedtui.TitleStyle.Render(fmt.Sprintf("Bug List (%d)", len(bugs))))
	if overview != "" {
		b.WriteString("\n\n")
		b.WriteString(renderMarkdown(overview, a.width))
	}
	for i, bug := range bugs {
		b.WriteString("\n\n")
		b.WriteString(sharedtui.StatusErrorStyle.Render(fmt.Sprintf("#%d ", i+1)))
		b.WriteString(wrapText(bug.Description, a.width-4))
		if bug.Impact != "" {
			b.WriteString("\n   ")
			b.WriteString(sharedtui.LabelStyle.Render("impact: " + bug.Impact))
		}
		if bug.Frequency != "" {
			b.WriteString("\n   ")
			b.WriteString(sharedtui.LabelStyle.Render("frequency: " + bug.Frequency))
		}
	}
	a.push(b.String())
}

func (a *artifactRenderer) StrategicSummary(overview string) {
	var b strings.Builder
	b.WriteString(sharedtui.TitleStyle.Render("Strategic Summary"))
	if overview != "" {
		b.WriteString("\n\n")
		b.WriteString(renderMarkdown(overview, a.width))
	}
	a.push(b.String())
}

func (a *artifactRenderer) QA(answer string, evidence []roadmap.Reference, recommendation string) {
	var b strings.Builder
	b.WriteString(renderMarkdown(answer, a.width))
	if recommendation != "" {
		b.WriteString("\n\n")
		b.WriteString(sharedtui.SubtitleStyle.Render("Recommendation"))
		b.WriteString("\n")
		b.WriteString(wrapText(recommendation, a.width))
	}
	a.push(b.String())
	a.push(a.references("Evidence", evidence, response.EvidenceReferenceLimit))
}

func (a *artifactRenderer) MalformedRoadmap(raw json.RawMessage) {
	var b strings.Builder
	b.WriteString(sharedtui.StatusErrorStyle.Render("Roadmap payload is missing its initiatives."))
	b.WriteString("\n\n")
	b.WriteString(sharedtui.LabelStyle.Render("Raw payload:"))
	b.WriteString("\n")
	b.WriteString(truncatePayload(string(raw), 2000))
	a.push(b.String())
}

func (a *artifactRenderer) Unknown(typeTag string) {
	a.push(sharedtui.LabelStyle.Render(
		fmt.Sprintf("Received a response of type %q that this view cannot display yet.", typeTag)))
}

// references renders an evidentiary list with its truncation window. The
// expansion state is shared across the artifact for this paint.
func (a *artifactRenderer) references(heading string, refs []roadmap.Reference, limit int) string {
	if len(refs) == 0 {
		return ""
	}
	list := response.NewReferenceList(refs, limit)
	if a.refsExpanded {
		list.Expand()
	}
	var b strings.Builder
	b.WriteString(sharedtui.SubtitleStyle.Render(fmt.Sprintf("%s (%d)", heading, list.Len())))
	for _, r := range list.Visible() {
		b.WriteString("\n  ")
		b.WriteString(sharedtui.LabelStyle.Render("[" + r.Source + "] "))
		b.WriteString(wrapText(r.Quote, a.width-6))
	}
	if list.Truncated() {
		b.WriteString("\n  ")
		if a.refsExpanded {
			b.WriteString(sharedtui.HelpDescStyle.Render("e: show fewer"))
		} else {
			b.WriteString(sharedtui.HelpDescStyle.Render(
				fmt.Sprintf("e: show %d more", list.Hidden())))
		}
	}
	return b.String()
}

func truncatePayload(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
