package response

import "github.com/mistakeknot/pathplan/internal/roadmap"

// Reference display limits. Most views show three references collapsed;
// Q&A evidence shows five.
const (
	DefaultReferenceLimit  = 3
	EvidenceReferenceLimit = 5
)

// ReferenceList is a truncation window over an evidentiary reference
// list: collapsed it exposes the first limit entries, expanded all of
// them. The toggle is local to the list, idempotent per direction, and
// reversible.
type ReferenceList struct {
	refs     []roadmap.Reference
	limit    int
	expanded bool
}

// NewReferenceList builds a window with the given display limit; a
// non-positive limit falls back to DefaultReferenceLimit.
func NewReferenceList(refs []roadmap.Reference, limit int) *ReferenceList {
	if limit <= 0 {
		limit = DefaultReferenceLimit
	}
	return &ReferenceList{refs: refs, limit: limit}
}

// Len returns the total reference count.
func (l *ReferenceList) Len() int { return len(l.refs) }

// Visible returns the references to display in the current state.
func (l *ReferenceList) Visible() []roadmap.Reference {
	if l.expanded || len(l.refs) <= l.limit {
		return l.refs
	}
	return l.refs[:l.limit]
}

// Hidden returns how many references the collapsed view is holding back.
func (l *ReferenceList) Hidden() int {
	return len(l.refs) - len(l.Visible())
}

// Truncated reports whether the list is longer than its display limit.
func (l *ReferenceList) Truncated() bool { return len(l.refs) > l.limit }

// Expanded reports the current window state.
func (l *ReferenceList) Expanded() bool { return l.expanded }

// Toggle flips between the collapsed and expanded view.
func (l *ReferenceList) Toggle() { l.expanded = !l.expanded }

// Expand and Collapse set the window state directly; both are idempotent.
func (l *ReferenceList) Expand()   { l.expanded = true }
func (l *ReferenceList) Collapse() { l.expanded = false }
