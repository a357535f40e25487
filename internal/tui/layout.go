package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// visibleWidth measures a line's printable width, ignoring ANSI codes.
func visibleWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// padRight pads or truncates a plain line to exactly width cells.
func padRight(s string, width int) string {
	w := visibleWidth(s)
	if w >= width {
		return truncateLine(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// truncateLine cuts a line to width cells, keeping ANSI sequences intact
// by cutting on rune boundaries only when no escape is open.
func truncateLine(s string, width int) string {
	if visibleWidth(s) <= width {
		return s
	}
	var b strings.Builder
	w := 0
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
		}
		if inEscape {
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if w >= width {
			break
		}
		b.WriteRune(r)
		w++
	}
	return b.String()
}

// wrapText word-wraps plain text to the given width.
func wrapText(s string, width int) string {
	if width < 1 {
		width = 1
	}
	return wordwrap.String(s, width)
}

// ensureExactHeight pads or trims a block to exactly height lines.
func ensureExactHeight(block string, height int) string {
	lines := strings.Split(block, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// joinColumns places blocks side by side, top-aligned.
func joinColumns(blocks ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// clampViewOffset keeps a scroll offset within the renderable range.
func clampViewOffset(offset, contentLines, viewHeight int) int {
	maxOffset := contentLines - viewHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// viewSlice returns the viewHeight lines of content visible at offset.
func viewSlice(content string, offset, viewHeight int) string {
	lines := strings.Split(content, "\n")
	offset = clampViewOffset(offset, len(lines), viewHeight)
	end := min(offset+viewHeight, len(lines))
	return strings.Join(lines[offset:end], "\n")
}
