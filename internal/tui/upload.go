package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mistakeknot/pathplan/internal/client"
	"github.com/mistakeknot/pathplan/internal/upload"
	sharedtui "github.com/mistakeknot/pathplan/pkg/tui"
)

// analysisDoneMsg carries the initial-analysis outcome back to the root
// model.
type analysisDoneMsg struct {
	result *client.AnalysisResult
	err    error
}

const (
	uploadFieldPRD = iota
	uploadFieldFeedback
)

// uploadModel is the first screen: two file path inputs and the analyze
// action. It stays up until the backend returns a complete analysis.
type uploadModel struct {
	prdInput      textinput.Model
	feedbackInput textinput.Model
	focused       int
	spin          spinner.Model
	analyzing     bool
	errText       string
	width         int
}

func newUploadModel() uploadModel {
	prd := textinput.New()
	prd.Placeholder = "path/to/prd.pdf"
	prd.Prompt = "PRD document  > "
	prd.Focus()

	fb := textinput.New()
	fb.Placeholder = "path/to/feedback.csv"
	fb.Prompt = "User feedback > "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(sharedtui.ColorPrimary)

	return uploadModel{prdInput: prd, feedbackInput: fb, spin: sp}
}

func (m uploadModel) update(msg tea.Msg, c *client.Client) (uploadModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case analysisDoneMsg:
		m.analyzing = false
		if msg.err != nil {
			m.errText = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		if m.analyzing {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focused = (m.focused + 1) % 2
			if m.focused == uploadFieldPRD {
				m.feedbackInput.Blur()
				return m, m.prdInput.Focus()
			}
			m.prdInput.Blur()
			return m, m.feedbackInput.Focus()
		case "enter":
			return m.startAnalysis(c)
		}
	}
	var cmd tea.Cmd
	if m.focused == uploadFieldPRD {
		m.prdInput, cmd = m.prdInput.Update(msg)
	} else {
		m.feedbackInput, cmd = m.feedbackInput.Update(msg)
	}
	return m, cmd
}

func (m uploadModel) startAnalysis(c *client.Client) (uploadModel, tea.Cmd) {
	prdPath := strings.TrimSpace(m.prdInput.Value())
	fbPath := strings.TrimSpace(m.feedbackInput.Value())
	if prdPath == "" || fbPath == "" {
		m.errText = "both documents are required"
		return m, nil
	}
	prd, err := upload.ReadDocument(prdPath)
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}
	fb, err := upload.ReadDocument(fbPath)
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.analyzing = true
	m.errText = ""
	req := client.AnalysisRequest{
		PRDContent:      prd.Content,
		FeedbackContent: fb.Content,
		IsPRDPDF:        prd.IsPDF,
	}
	return m, tea.Batch(m.spin.Tick, analyzeCmd(c, req))
}

func analyzeCmd(c *client.Client, req client.AnalysisRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := c.InitialAnalysis(context.Background(), req)
		return analysisDoneMsg{result: result, err: err}
	}
}

func (m uploadModel) view(width, height int) string {
	var b strings.Builder
	b.WriteString(sharedtui.TitleStyle.Render("PathPlan"))
	b.WriteString("\n")
	b.WriteString(sharedtui.SubtitleStyle.Render("Upload a PRD and user feedback to begin."))
	b.WriteString("\n\n")
	b.WriteString(m.prdInput.View())
	b.WriteString("\n")
	b.WriteString(m.feedbackInput.View())
	b.WriteString("\n\n")
	switch {
	case m.analyzing:
		b.WriteString(m.spin.View())
		b.WriteString(" Analyzing documents...")
	case m.errText != "":
		b.WriteString(sharedtui.StatusErrorStyle.Render(wrapText(m.errText, max(width-8, 20))))
	default:
		b.WriteString(sharedtui.HelpDescStyle.Render("tab switch field  enter analyze  ctrl+c quit"))
	}
	box := sharedtui.PanelStyle.Width(min(max(width-4, 40), 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
