package roadmap

import "testing"

func TestChronologyOrdersByStart(t *testing.T) {
	tasks := Flatten([]Initiative{{Name: "X", Features: []Feature{
		{Name: "later", StartDate: "2025-06-01"},
		{Name: "earlier", StartDate: "2025-02-01", EndDate: "2025-03-01"},
		{Name: "undated"},
	}}})
	ordered := Chronology(tasks)
	if len(ordered) != 2 {
		t.Fatalf("got %d tasks, want 2", len(ordered))
	}
	if ordered[0].Name != "earlier" || ordered[1].Name != "later" {
		t.Fatalf("order %v", ordered)
	}
}

func TestChronologyAllowsMissingEndDate(t *testing.T) {
	// Unlike the Gantt chart, only the start date is required here.
	tasks := Flatten([]Initiative{{Name: "X", Features: []Feature{
		{Name: "open-ended", StartDate: "2025-01-15"},
	}}})
	if got := Chronology(tasks); len(got) != 1 {
		t.Fatalf("got %d", len(got))
	}
}

func TestChronologyStableTies(t *testing.T) {
	tasks := Flatten([]Initiative{
		{Name: "A", Features: []Feature{{Name: "one", StartDate: "2025-01-01"}}},
		{Name: "B", Features: []Feature{{Name: "two", StartDate: "2025-01-01"}}},
	})
	ordered := Chronology(tasks)
	if ordered[0].Name != "one" || ordered[1].Name != "two" {
		t.Fatalf("ties must keep flatten order: %v", ordered)
	}
}
