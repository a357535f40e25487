package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Composer is the multi-line prompt input at the bottom of the chat
// column. It wraps bubbles/textarea with PathPlan theming.
type Composer struct {
	textarea textarea.Model
	hint     string
	width    int
	focused  bool
}

// NewComposer creates a composer with the given content height in lines.
func NewComposer(contentHeight int) *Composer {
	if contentHeight < 1 {
		contentHeight = 3
	}
	ta := textarea.New()
	ta.Placeholder = "Ask a strategic question..."
	ta.CharLimit = 2000
	ta.SetHeight(contentHeight)
	ta.ShowLineNumbers = false

	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(ColorFg)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(ColorBgLight)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(ColorMuted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(ColorFg)
	ta.BlurredStyle = ta.FocusedStyle
	ta.Cursor.Style = lipgloss.NewStyle().Foreground(ColorBg).Background(ColorPrimary)

	return &Composer{
		textarea: ta,
		hint:     "enter send  ctrl+j newline",
	}
}

// SetHint sets the keyboard hint line under the input.
func (c *Composer) SetHint(hint string) { c.hint = hint }

// SetWidth resizes the input area.
func (c *Composer) SetWidth(width int) {
	c.width = width
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	c.textarea.SetWidth(inner)
}

// Focus gives the composer keyboard focus.
func (c *Composer) Focus() tea.Cmd {
	c.focused = true
	return c.textarea.Focus()
}

// Blur removes keyboard focus.
func (c *Composer) Blur() {
	c.focused = false
	c.textarea.Blur()
}

// Focused reports whether the composer has focus.
func (c *Composer) Focused() bool { return c.focused }

// Value returns the current input text.
func (c *Composer) Value() string { return c.textarea.Value() }

// Reset clears the input.
func (c *Composer) Reset() { c.textarea.Reset() }

// Update forwards messages to the textarea.
func (c *Composer) Update(msg tea.Msg) (*Composer, tea.Cmd) {
	var cmd tea.Cmd
	c.textarea, cmd = c.textarea.Update(msg)
	return c, cmd
}

// View renders the bordered input with its hint line.
func (c *Composer) View() string {
	border := PanelStyle
	if c.focused {
		border = PanelFocusedStyle
	}
	if c.width > 0 {
		border = border.Width(c.width - 2)
	}
	var b strings.Builder
	b.WriteString(border.Render(c.textarea.View()))
	if c.hint != "" {
		b.WriteString("\n")
		b.WriteString(HelpDescStyle.Render(c.hint))
	}
	return b.String()
}

// Height returns the rendered height in lines.
func (c *Composer) Height() int {
	h := c.textarea.Height() + 2
	if c.hint != "" {
		h++
	}
	return h
}
