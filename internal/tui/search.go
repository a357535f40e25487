package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/mistakeknot/pathplan/internal/session"
	sharedtui "github.com/mistakeknot/pathplan/pkg/tui"
)

// searchHit points at one transcript entry matched by the overlay query.
type searchHit struct {
	index   int
	preview string
}

// searchOverlay fuzzy-matches over the chat transcript. Selecting an AI
// artifact hit opens it in the detail view.
type searchOverlay struct {
	input    textinput.Model
	open     bool
	hits     []searchHit
	cursor   int
	universe []string
	indexes  []int
}

func newSearchOverlay() searchOverlay {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "search conversation"
	return searchOverlay{input: in}
}

// show opens the overlay over the given transcript.
func (o *searchOverlay) show(history []session.Message) tea.Cmd {
	o.open = true
	o.cursor = 0
	o.universe = o.universe[:0]
	o.indexes = o.indexes[:0]
	for i, msg := range history {
		text := msg.Text
		if msg.IsArtifact() {
			text = msg.Artifact.Title() + " " + msg.Artifact.Overview()
		}
		o.universe = append(o.universe, text)
		o.indexes = append(o.indexes, i)
	}
	o.input.Reset()
	o.refresh()
	return o.input.Focus()
}

func (o *searchOverlay) hide() {
	o.open = false
	o.input.Blur()
}

func (o *searchOverlay) refresh() {
	o.hits = o.hits[:0]
	query := strings.TrimSpace(o.input.Value())
	if query == "" {
		for i, text := range o.universe {
			o.hits = append(o.hits, searchHit{index: o.indexes[i], preview: text})
		}
	} else {
		for _, m := range fuzzy.Find(query, o.universe) {
			o.hits = append(o.hits, searchHit{
				index:   o.indexes[m.Index],
				preview: o.universe[m.Index],
			})
		}
	}
	if o.cursor >= len(o.hits) {
		o.cursor = max(len(o.hits)-1, 0)
	}
}

// update handles a key while the overlay is open. When the user accepts a
// hit, the matched transcript index is returned with picked=true.
func (o *searchOverlay) update(msg tea.KeyMsg) (picked bool, index int, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		o.hide()
		return false, 0, nil
	case "up":
		if o.cursor > 0 {
			o.cursor--
		}
		return false, 0, nil
	case "down":
		if o.cursor < len(o.hits)-1 {
			o.cursor++
		}
		return false, 0, nil
	case "enter":
		if len(o.hits) == 0 {
			return false, 0, nil
		}
		hit := o.hits[o.cursor]
		o.hide()
		return true, hit.index, nil
	}
	o.input, cmd = o.input.Update(msg)
	o.refresh()
	return false, 0, cmd
}

const searchMaxRows = 8

func (o *searchOverlay) view(width int) string {
	inner := min(max(width-8, 30), 70)
	var b strings.Builder
	b.WriteString(o.input.View())
	b.WriteString("\n")
	b.WriteString(sharedtui.LabelStyle.Render(fmt.Sprintf("%d matches", len(o.hits))))
	for i, hit := range o.hits {
		if i >= searchMaxRows {
			b.WriteString("\n")
			b.WriteString(sharedtui.LabelStyle.Render("…"))
			break
		}
		line := truncateLine(strings.ReplaceAll(hit.preview, "\n", " "), inner-4)
		b.WriteString("\n")
		if i == o.cursor {
			b.WriteString(sharedtui.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(sharedtui.UnselectedStyle.Render("  " + line))
		}
	}
	return sharedtui.PanelFocusedStyle.Width(inner).Render(b.String())
}
