package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mistakeknot/pathplan/internal/client"
)

func pressEnter(m uploadModel, c *client.Client) (uploadModel, tea.Cmd) {
	return m.update(tea.KeyMsg{Type: tea.KeyEnter}, c)
}

func TestUploadRequiresBothDocuments(t *testing.T) {
	m := newUploadModel()
	m, cmd := pressEnter(m, client.New("http://127.0.0.1:1"))
	if cmd != nil {
		t.Error("no command expected with empty fields")
	}
	if m.errText != "both documents are required" {
		t.Errorf("errText = %q", m.errText)
	}
}

func TestUploadReportsUnreadableFile(t *testing.T) {
	m := newUploadModel()
	m.prdInput.SetValue("/nonexistent/prd.md")
	m.feedbackInput.SetValue("/nonexistent/feedback.csv")
	m, _ = pressEnter(m, client.New("http://127.0.0.1:1"))
	if m.analyzing {
		t.Error("analysis should not start on a read failure")
	}
	if m.errText == "" {
		t.Error("expected a read error message")
	}
}

func TestUploadRejectsDocx(t *testing.T) {
	dir := t.TempDir()
	docx := filepath.Join(dir, "prd.docx")
	if err := os.WriteFile(docx, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	fb := filepath.Join(dir, "feedback.csv")
	if err := os.WriteFile(fb, []byte("great app"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newUploadModel()
	m.prdInput.SetValue(docx)
	m.feedbackInput.SetValue(fb)
	m, _ = pressEnter(m, client.New("http://127.0.0.1:1"))
	if m.analyzing {
		t.Error("analysis should not start for DOCX")
	}
	if !strings.Contains(m.errText, "DOCX") {
		t.Errorf("errText = %q", m.errText)
	}
}

func TestUploadStartsAnalysisWithValidFiles(t *testing.T) {
	dir := t.TempDir()
	prd := filepath.Join(dir, "prd.md")
	fb := filepath.Join(dir, "feedback.csv")
	os.WriteFile(prd, []byte("# PRD"), 0o644)
	os.WriteFile(fb, []byte("slow,bad"), 0o644)

	m := newUploadModel()
	m.prdInput.SetValue(prd)
	m.feedbackInput.SetValue(fb)
	m, cmd := pressEnter(m, client.New("http://127.0.0.1:1"))
	if !m.analyzing {
		t.Fatal("analysis did not start")
	}
	if m.errText != "" {
		t.Errorf("unexpected error %q", m.errText)
	}
	if cmd == nil {
		t.Fatal("expected the analyze command batch")
	}
}

func TestUploadTabSwitchesField(t *testing.T) {
	m := newUploadModel()
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyTab}, nil)
	if m.focused != uploadFieldFeedback {
		t.Errorf("focused = %d, want feedback", m.focused)
	}
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyTab}, nil)
	if m.focused != uploadFieldPRD {
		t.Errorf("focused = %d, want prd", m.focused)
	}
}
