package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mistakeknot/pathplan/internal/client"
	"github.com/mistakeknot/pathplan/internal/config"
	"github.com/mistakeknot/pathplan/internal/response"
	"github.com/mistakeknot/pathplan/internal/session"
)

func testModel(t *testing.T) Model {
	t.Helper()
	m := New(config.Default())
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return mm.(Model)
}

func completedModel(t *testing.T) Model {
	t.Helper()
	m := testModel(t)
	mm, _ := m.Update(analysisDoneMsg{result: &client.AnalysisResult{
		PRDAnalysis:      &client.PRDAnalysis{BulletPoints: []string{"fast onboarding"}},
		FeedbackAnalysis: &client.FeedbackAnalysis{Total: 10, Positive: 6, Negative: 3, Neutral: 1},
	}})
	return mm.(Model)
}

func TestAnalysisSuccessEntersMainView(t *testing.T) {
	m := completedModel(t)
	if m.sess.Stage() != session.StageMain {
		t.Fatal("stage should be main after a complete analysis")
	}
	view := m.View()
	if !strings.Contains(view, "PATHPLAN") {
		t.Error("main view missing header")
	}
	if !strings.Contains(view, "PRD Analysis") {
		t.Error("right panel should default to the PRD section")
	}
}

func TestAnalysisFailureStaysOnUpload(t *testing.T) {
	m := testModel(t)
	mm, _ := m.Update(analysisDoneMsg{err: errors.New("backend error (500)")})
	m = mm.(Model)
	if m.sess.Stage() != session.StageUpload {
		t.Fatal("a failed analysis must not advance the stage")
	}
	if !strings.Contains(m.View(), "backend error (500)") {
		t.Error("upload screen should surface the error")
	}
}

func TestGenerateFailureAppendsErrorMessage(t *testing.T) {
	m := completedModel(t)
	if err := m.sess.SubmitPrompt("Generate a Q3 roadmap"); err != nil {
		t.Fatal(err)
	}
	mm, _ := m.Update(generateResultMsg{err: errors.New("backend error (502)")})
	m = mm.(Model)
	history := m.sess.History()
	last := history[len(history)-1]
	if last.Role != session.RoleAI || !strings.HasPrefix(last.Text, "Error: ") {
		t.Errorf("last message = %+v, want prose error", last)
	}
	if m.sess.Awaiting() {
		t.Error("failure must clear the in-flight flag")
	}
}

func TestGenerateArtifactResetsDetailState(t *testing.T) {
	m := completedModel(t)
	m.tab = TabKanban
	m.refsExpanded = true
	if err := m.sess.SubmitPrompt("roadmap please"); err != nil {
		t.Fatal(err)
	}
	m.sess.CollapseConversation()
	artifact := &response.AIResponse{Type: response.TypeStrategicSummary, Summary: "hold"}
	mm, _ := m.Update(generateResultMsg{artifact: artifact})
	m = mm.(Model)
	if m.tab != TabOverview || m.refsExpanded {
		t.Error("new artifact should reset tab and reference expansion")
	}
	if m.sess.Selected() != artifact {
		t.Error("latest artifact should win the collapsed detail view")
	}
}

func TestTabKeysCycleRoadmapViews(t *testing.T) {
	m := completedModel(t)
	m.focus = focusViews
	m.sess.CollapseConversation()
	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	m = mm.(Model)
	if m.tab != TabTable {
		t.Errorf("tab = %v, want Table", m.tab)
	}
	mm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	m = mm.(Model)
	if m.tab != TabOverview {
		t.Errorf("tab = %v, want Overview", m.tab)
	}
	mm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	m = mm.(Model)
	if m.tab != TabTimeline {
		t.Errorf("tab = %v, want Timeline wrap-around", m.tab)
	}
}

func TestRightPanelSectionSwitch(t *testing.T) {
	m := completedModel(t)
	m.focus = focusViews
	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = mm.(Model)
	if !strings.Contains(m.View(), "Feedback [2]") {
		t.Error("right panel should show the feedback section")
	}
}

func TestTranscriptLabels(t *testing.T) {
	user := session.Message{Role: session.RoleUser, Text: "hello"}
	if got := transcriptLabel(user); got != "You: hello" {
		t.Errorf("user label = %q", got)
	}
	art := session.Message{Role: session.RoleAI,
		Artifact: &response.AIResponse{Type: response.TypeRoadmap}}
	if got := transcriptLabel(art); got != "AI: Product Roadmap" {
		t.Errorf("artifact label = %q", got)
	}
}

func TestExportSummaryWithoutContent(t *testing.T) {
	m := completedModel(t)
	mm, cmd := m.exportSummary()
	m = mm.(Model)
	if cmd != nil {
		t.Error("no command expected when the backend sent no summary")
	}
	if !strings.Contains(m.status, "no summary") {
		t.Errorf("status = %q", m.status)
	}
}

func TestExportWithNothingSelected(t *testing.T) {
	m := completedModel(t)
	mm, cmd := m.exportSelected()
	m = mm.(Model)
	if cmd != nil {
		t.Error("no export command expected without a selection")
	}
	if m.status != "nothing selected to download" {
		t.Errorf("status = %q", m.status)
	}
}
