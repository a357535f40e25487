package response

import (
	"fmt"
	"testing"

	"github.com/mistakeknot/pathplan/internal/roadmap"
)

func makeRefs(n int) []roadmap.Reference {
	refs := make([]roadmap.Reference, n)
	for i := range refs {
		refs[i] = roadmap.Reference{Source: fmt.Sprintf("doc-%d", i), Quote: "q"}
	}
	return refs
}

func TestReferenceListTruncation(t *testing.T) {
	l := NewReferenceList(makeRefs(7), 3)
	if got := len(l.Visible()); got != 3 {
		t.Fatalf("collapsed shows %d", got)
	}
	if l.Hidden() != 4 || !l.Truncated() {
		t.Fatalf("hidden %d truncated %v", l.Hidden(), l.Truncated())
	}
}

func TestReferenceListToggleReversible(t *testing.T) {
	l := NewReferenceList(makeRefs(7), 3)
	l.Toggle()
	if len(l.Visible()) != 7 || !l.Expanded() {
		t.Fatalf("expanded shows %d", len(l.Visible()))
	}
	l.Toggle()
	if len(l.Visible()) != 3 || l.Expanded() {
		t.Fatalf("collapse after toggle shows %d", len(l.Visible()))
	}
}

func TestReferenceListExpandIdempotent(t *testing.T) {
	l := NewReferenceList(makeRefs(5), 3)
	l.Expand()
	l.Expand()
	if !l.Expanded() {
		t.Fatalf("expand must stick")
	}
	l.Collapse()
	l.Collapse()
	if l.Expanded() {
		t.Fatalf("collapse must stick")
	}
}

func TestReferenceListShortList(t *testing.T) {
	l := NewReferenceList(makeRefs(2), 3)
	if len(l.Visible()) != 2 || l.Truncated() || l.Hidden() != 0 {
		t.Fatalf("short list should be fully visible")
	}
}

func TestReferenceListDefaultLimit(t *testing.T) {
	l := NewReferenceList(makeRefs(10), 0)
	if len(l.Visible()) != DefaultReferenceLimit {
		t.Fatalf("got %d", len(l.Visible()))
	}
}
