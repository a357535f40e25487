// Package tui implements the PathPlan terminal UI: the upload screen and
// the three-column main view with the chat transcript, the artifact
// detail view, and the document analysis panel.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mistakeknot/pathplan/internal/client"
	"github.com/mistakeknot/pathplan/internal/config"
	"github.com/mistakeknot/pathplan/internal/export"
	"github.com/mistakeknot/pathplan/internal/response"
	"github.com/mistakeknot/pathplan/internal/session"
	sharedtui "github.com/mistakeknot/pathplan/pkg/tui"
)

// generateResultMsg carries a generation outcome back to the model.
type generateResultMsg struct {
	artifact *response.AIResponse
	err      error
}

// exportDoneMsg reports the download action's outcome.
type exportDoneMsg struct {
	path string
	err  error
}

type focusArea int

const (
	focusComposer focusArea = iota
	focusViews
)

// Right-panel sections.
const (
	sectionPRD = iota
	sectionFeedback
)

// Model is the root Bubble Tea model.
type Model struct {
	cfg    config.Config
	client *client.Client
	sess   *session.Session
	keys   sharedtui.Keys

	upload   uploadModel
	search   searchOverlay
	composer *sharedtui.Composer

	analysis *client.AnalysisResult

	width  int
	height int
	focus  focusArea

	tab          RoadmapTab
	refsExpanded bool
	chatCursor   int
	detailOffset int
	rightSection int
	status       string
}

// New builds the root model from the loaded configuration.
func New(cfg config.Config) Model {
	c := client.New(cfg.BackendURL, client.WithTimeout(cfg.Timeout()))
	return Model{
		cfg:      cfg,
		client:   c,
		sess:     session.New(),
		keys:     sharedtui.NewKeys(),
		upload:   newUploadModel(),
		search:   newSearchOverlay(),
		composer: sharedtui.NewComposer(3),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.composer.SetWidth(m.centerWidth())
		return m, nil

	case analysisDoneMsg:
		if msg.err == nil && msg.result != nil {
			m.analysis = msg.result
			m.sess.CompleteAnalysis()
			m.status = "analysis complete"
			return m, m.composer.Focus()
		}
		var cmd tea.Cmd
		m.upload, cmd = m.upload.update(msg, m.client)
		return m, cmd

	case generateResultMsg:
		if msg.err != nil {
			m.sess.ResolveError(msg.err.Error())
			m.status = "generation failed"
		} else {
			m.sess.ResolveArtifact(msg.artifact)
			m.status = "response received"
			m.tab = TabOverview
			m.refsExpanded = false
			m.detailOffset = 0
		}
		m.chatCursor = m.sess.Len() - 1
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "saved " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.sess.Stage() == session.StageUpload {
			var cmd tea.Cmd
			m.upload, cmd = m.upload.update(msg, m.client)
			return m, cmd
		}
		return m.updateMainKeys(msg)
	}

	if m.sess.Stage() == session.StageUpload {
		var cmd tea.Cmd
		m.upload, cmd = m.upload.update(msg, m.client)
		return m, cmd
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m Model) updateMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.open {
		picked, index, cmd := m.search.update(msg)
		if picked {
			if err := m.sess.ViewDetails(index); err != nil {
				m.status = err.Error()
			} else {
				m.detailOffset = 0
			}
		}
		return m, cmd
	}

	if key.Matches(msg, m.keys.Search) {
		return m, m.search.show(m.sess.History())
	}
	switch msg.String() {
	case "ctrl+d":
		return m.exportSelected()
	case "ctrl+x":
		m.sess.ClearHistory()
		m.chatCursor = 0
		m.status = "conversation cleared"
		return m, nil
	case "tab":
		if m.focus == focusComposer {
			m.focus = focusViews
			m.composer.Blur()
			return m, nil
		}
		m.focus = focusComposer
		return m, m.composer.Focus()
	}

	if m.focus == focusComposer {
		return m.updateComposerKeys(msg)
	}
	return m.updateViewKeys(msg)
}

func (m Model) updateComposerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitPrompt()
	case "ctrl+j":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m Model) updateViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.sess.ExpandConversation()
		m.detailOffset = 0
	case "up", "k":
		if m.sess.ConversationExpanded() {
			if m.chatCursor > 0 {
				m.chatCursor--
			}
		} else if m.detailOffset > 0 {
			m.detailOffset--
		}
	case "down", "j":
		if m.sess.ConversationExpanded() {
			if m.chatCursor < m.sess.Len()-1 {
				m.chatCursor++
			}
		} else {
			m.detailOffset++
		}
	case "v", "enter":
		if m.sess.ConversationExpanded() {
			if err := m.sess.ViewDetails(m.chatCursor); err != nil {
				m.status = err.Error()
			} else {
				m.detailOffset = 0
			}
		}
	case "]":
		m.tab = roadmapTabs[(int(m.tab)+1)%len(roadmapTabs)]
		m.detailOffset = 0
	case "[":
		m.tab = roadmapTabs[(int(m.tab)+len(roadmapTabs)-1)%len(roadmapTabs)]
		m.detailOffset = 0
	case "e":
		m.refsExpanded = !m.refsExpanded
	case "l":
		m.sess.ToggleLeftPanel()
	case "r":
		m.sess.ToggleRightPanel()
	case "1":
		m.rightSection = sectionPRD
	case "2":
		m.rightSection = sectionFeedback
	case "s":
		return m.exportSummary()
	}
	return m, nil
}

// exportSummary saves the downloadable markdown summary of the active
// right-panel section.
func (m Model) exportSummary() (tea.Model, tea.Cmd) {
	if m.analysis == nil {
		m.status = "no analysis to save"
		return m, nil
	}
	name, content := "pathplan_prd_summary.md", m.analysis.PRDDownloadableSummary
	if m.rightSection == sectionFeedback {
		name, content = "pathplan_feedback_summary.md", m.analysis.FeedbackDownloadableSummary
	}
	if strings.TrimSpace(content) == "" {
		m.status = "backend sent no summary for this section"
		return m, nil
	}
	dir := m.cfg.ExportDir
	if dir == "" {
		dir = "."
	}
	return m, func() tea.Msg {
		path, err := export.WriteSummary(dir, name, content)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	prompt := m.composer.Value()
	if err := m.sess.SubmitPrompt(prompt); err != nil {
		switch err {
		case session.ErrEmptyPrompt:
			m.status = "type a prompt first"
		case session.ErrRequestInFlight:
			m.status = "still waiting on the previous request"
		default:
			m.status = err.Error()
		}
		return m, nil
	}
	m.composer.Reset()
	m.chatCursor = m.sess.Len() - 1
	m.status = "generating..."
	return m, generateCmd(m.client, prompt, m.sess.History())
}

func generateCmd(c *client.Client, prompt string, history []session.Message) tea.Cmd {
	return func() tea.Msg {
		// The just-submitted prompt is the last history entry; the wire
		// format wants it separately from the prior conversation.
		prior := history
		if n := len(prior); n > 0 && prior[n-1].Role == session.RoleUser {
			prior = prior[:n-1]
		}
		artifact, err := c.GenerateRoadmap(context.Background(), prompt, prior)
		return generateResultMsg{artifact: artifact, err: err}
	}
}

func (m Model) exportSelected() (tea.Model, tea.Cmd) {
	artifact := m.sess.Selected()
	if artifact == nil {
		m.status = "nothing selected to download"
		return m, nil
	}
	dir := m.cfg.ExportDir
	if dir == "" {
		dir = "."
	}
	sessionID := m.sess.ID()
	return m, func() tea.Msg {
		path, err := export.Write(dir, artifact, sessionID, time.Now())
		return exportDoneMsg{path: path, err: err}
	}
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.sess.Stage() == session.StageUpload {
		return m.upload.view(m.width, m.height)
	}
	return m.mainView()
}

const leftPanelWidth = 28
const rightPanelWidth = 34

func (m Model) centerWidth() int {
	w := m.width
	if m.sess != nil && m.sess.LeftVisible() {
		w -= leftPanelWidth
	}
	if m.sess != nil && m.sess.RightVisible() {
		w -= rightPanelWidth
	}
	return max(w, 30)
}

func (m Model) mainView() string {
	header := renderHeader("Roadmap Workspace", m.focusLabel())
	footer := renderFooter(m.footerKeys(), m.status)
	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-m.composer.Height()-1, 4)

	var columns []string
	if m.sess.LeftVisible() {
		columns = append(columns, m.transcriptPanel(bodyHeight))
	}
	columns = append(columns, m.centerPanel(bodyHeight))
	if m.sess.RightVisible() {
		columns = append(columns, m.analysisPanel(bodyHeight))
	}
	body := joinColumns(columns...)

	parts := []string{header, body, m.composer.View(), footer}
	out := strings.Join(parts, "\n")
	if m.search.open {
		overlay := m.search.view(m.width)
		out = strings.Join([]string{header, overlay, body, m.composer.View(), footer}, "\n")
	}
	return out
}

func (m Model) focusLabel() string {
	if m.search.open {
		return "search"
	}
	if m.focus == focusComposer {
		return "composer"
	}
	if m.sess.ConversationExpanded() {
		return "conversation"
	}
	return "details"
}

func (m Model) footerKeys() string {
	if m.focus == focusComposer {
		return "enter send  ctrl+j newline  tab views  ctrl+f search  ctrl+c quit"
	}
	if m.sess.ConversationExpanded() {
		return "up/down move  v details  l/r panels  1/2 sections  s summary  ctrl+d save  ctrl+x clear  tab composer"
	}
	return "[/] tabs  e references  esc conversation  s summary  ctrl+d save  tab composer"
}

// transcriptPanel lists the conversation with one row per message.
func (m Model) transcriptPanel(height int) string {
	inner := leftPanelWidth - 4
	var b strings.Builder
	b.WriteString(renderPanelTitle("Conversation", inner))
	for i, msg := range m.sess.History() {
		label := transcriptLabel(msg)
		line := truncateLine(label, inner-2)
		b.WriteString("\n")
		if i == m.chatCursor && m.focus == focusViews && m.sess.ConversationExpanded() {
			b.WriteString(sharedtui.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(sharedtui.UnselectedStyle.Render("  " + line))
		}
	}
	if m.sess.Awaiting() {
		b.WriteString("\n")
		b.WriteString(sharedtui.LabelStyle.Render("  …thinking"))
	}
	return sharedtui.PanelStyle.Width(leftPanelWidth - 2).Render(
		ensureExactHeight(b.String(), height-2))
}

func transcriptLabel(msg session.Message) string {
	switch {
	case msg.Role == session.RoleUser:
		return "You: " + msg.Text
	case msg.IsArtifact():
		return "AI: " + msg.Artifact.Title()
	default:
		return "AI: " + msg.Text
	}
}

// centerPanel shows either the full conversation or the selected
// artifact's detail view.
func (m Model) centerPanel(height int) string {
	width := m.centerWidth() - 4
	var content string
	if m.sess.ConversationExpanded() {
		content = m.conversationView(width)
	} else {
		content = m.detailView(width)
	}
	content = viewSlice(content, m.detailOffset, height-2)
	return sharedtui.PanelStyle.Width(m.centerWidth() - 2).Render(
		ensureExactHeight(content, height-2))
}

func (m Model) conversationView(width int) string {
	history := m.sess.History()
	if len(history) == 0 {
		return sharedtui.LabelStyle.Render("Ask for a roadmap, a feature brief, a bug list, or a strategic question.")
	}
	var blocks []string
	for _, msg := range history {
		blocks = append(blocks, chatBubble(msg, width))
	}
	return strings.Join(blocks, "\n\n")
}

func chatBubble(msg session.Message, width int) string {
	switch {
	case msg.Role == session.RoleUser:
		return sharedtui.HelpKeyStyle.Render("You") + "\n" + wrapText(msg.Text, width)
	case msg.IsArtifact():
		title := msg.Artifact.Title()
		return sharedtui.TitleStyle.Render("AI") + "\n" +
			sharedtui.BadgeStyle.Render(title+" Generated") + "  " +
			sharedtui.HelpDescStyle.Render("v to view")
	default:
		body := msg.Text
		if strings.HasPrefix(body, "Error: ") {
			return sharedtui.TitleStyle.Render("AI") + "\n" +
				sharedtui.StatusErrorStyle.Render(wrapText(body, width))
		}
		return sharedtui.TitleStyle.Render("AI") + "\n" + renderMarkdown(body, width)
	}
}

func (m Model) detailView(width int) string {
	artifact := m.sess.Selected()
	r := newArtifactRenderer(width, m.tab, m.refsExpanded)
	if err := response.Dispatch(artifact, r); err != nil {
		return sharedtui.StatusErrorStyle.Render(err.Error())
	}
	return r.String()
}

// analysisPanel renders the PRD or feedback analysis from the initial
// upload, switched with 1 and 2.
func (m Model) analysisPanel(height int) string {
	inner := rightPanelWidth - 4
	var b strings.Builder
	if m.rightSection == sectionPRD {
		b.WriteString(renderPanelTitle("PRD Analysis [1]", inner))
		b.WriteString(m.prdSection(inner))
	} else {
		b.WriteString(renderPanelTitle("Feedback [2]", inner))
		b.WriteString(m.feedbackSection(inner))
	}
	return sharedtui.PanelStyle.Width(rightPanelWidth - 2).Render(
		ensureExactHeight(b.String(), height-2))
}

func (m Model) prdSection(width int) string {
	if m.analysis == nil || m.analysis.PRDAnalysis == nil {
		return "\n" + sharedtui.LabelStyle.Render("No analysis yet.")
	}
	p := m.analysis.PRDAnalysis
	var b strings.Builder
	writeBulletSection(&b, "Highlights", p.BulletPoints, width)
	writeBulletSection(&b, "Key Features", p.KeyFeatures, width)
	writeBulletSection(&b, "Success Metrics", p.SuccessMetrics, width)
	writeBulletSection(&b, "Technical", p.TechnicalRequirements, width)
	return b.String()
}

func (m Model) feedbackSection(width int) string {
	if m.analysis == nil || m.analysis.FeedbackAnalysis == nil {
		return "\n" + sharedtui.LabelStyle.Render("No analysis yet.")
	}
	f := m.analysis.FeedbackAnalysis
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(sharedtui.SubtitleStyle.Render(fmt.Sprintf("%d items", f.Total)))
	b.WriteString("\n")
	b.WriteString(sharedtui.StatusOKStyle.Render(fmt.Sprintf("+%d", f.Positive)))
	b.WriteString(sharedtui.LabelStyle.Render(fmt.Sprintf(" / %d neutral / ", f.Neutral)))
	b.WriteString(sharedtui.StatusErrorStyle.Render(fmt.Sprintf("-%d", f.Negative)))
	writeBulletSection(&b, "Positive", f.Summaries.Positive, width)
	writeBulletSection(&b, "Negative", f.Summaries.Negative, width)
	if len(f.CategoryCounts) > 0 {
		b.WriteString("\n\n")
		b.WriteString(sharedtui.SubtitleStyle.Render("Categories"))
		cats := make([]string, 0, len(f.CategoryCounts))
		for cat := range f.CategoryCounts {
			cats = append(cats, cat)
		}
		sort.Strings(cats)
		for _, cat := range cats {
			b.WriteString("\n  ")
			b.WriteString(sharedtui.LabelStyle.Render(fmt.Sprintf("%s: %d", cat, f.CategoryCounts[cat])))
		}
	}
	return b.String()
}

func writeBulletSection(b *strings.Builder, heading string, items []string, width int) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n\n")
	b.WriteString(sharedtui.SubtitleStyle.Render(heading))
	for _, item := range items {
		b.WriteString("\n")
		b.WriteString(truncateLine("• "+item, width))
	}
}
