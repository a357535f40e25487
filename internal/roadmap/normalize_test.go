package roadmap

import "testing"

func sampleInitiatives() []Initiative {
	return []Initiative{
		{
			Name: "Platform",
			Goal: "Stabilize the core",
			Features: []Feature{
				{Name: "Auth revamp", Priority: "Highest", Status: "In Progress", StartDate: "2025-01-06", EndDate: "2025-02-14", Assignee: "Dana", Progress: 40},
				{Name: "Audit log", Status: "Done", StartDate: "2025-02-01", EndDate: "2025-03-15"},
			},
		},
		{
			Name: "Growth",
			Goal: "Expand reach",
			Features: []Feature{
				{Name: "Referral flow", Priority: "Low", Quarter: "Q2 2025"},
			},
		},
	}
}

func TestFlattenLengthAndOrder(t *testing.T) {
	tasks := Flatten(sampleInitiatives())
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	wantNames := []string{"Auth revamp", "Audit log", "Referral flow"}
	for i, name := range wantNames {
		if tasks[i].Name != name {
			t.Errorf("task %d: %s, want %s", i, tasks[i].Name, name)
		}
	}
	for i, t2 := range tasks {
		if t2.ID != i+1 {
			t.Errorf("task %d: id %d, want %d", i, t2.ID, i+1)
		}
	}
}

func TestFlattenDefaults(t *testing.T) {
	tasks := Flatten([]Initiative{{Name: "X", Features: []Feature{{Name: "bare"}}}})
	task := tasks[0]
	if task.Status != StatusToDo {
		t.Errorf("status %v, want to do", task.Status)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("priority %v, want Medium", task.Priority)
	}
	if task.Assignee != "Unassigned" {
		t.Errorf("assignee %q", task.Assignee)
	}
	if task.Progress != 0 {
		t.Errorf("progress %d", task.Progress)
	}
	if task.References == nil || len(task.References) != 0 {
		t.Errorf("references %v, want empty", task.References)
	}
	if task.Schedulable() {
		t.Errorf("bare task must not be schedulable")
	}
}

func TestFlattenNormalizesCaseAndUnknowns(t *testing.T) {
	tasks := Flatten([]Initiative{{Name: "X", Features: []Feature{
		{Name: "a", Status: "Done", Priority: "HIGH"},
		{Name: "b", Status: "blocked", Priority: "urgent"},
	}}})
	if tasks[0].Status != StatusDone || tasks[0].Priority != PriorityHigh {
		t.Fatalf("case-insensitive parse failed: %v %v", tasks[0].Status, tasks[0].Priority)
	}
	if tasks[1].Status != StatusToDo || tasks[1].Priority != PriorityMedium {
		t.Fatalf("unknown values must normalize: %v %v", tasks[1].Status, tasks[1].Priority)
	}
}

func TestFlattenClampsProgress(t *testing.T) {
	tasks := Flatten([]Initiative{{Name: "X", Features: []Feature{
		{Name: "a", Progress: -5},
		{Name: "b", Progress: 150},
	}}})
	if tasks[0].Progress != 0 || tasks[1].Progress != 100 {
		t.Fatalf("progress not clamped: %d %d", tasks[0].Progress, tasks[1].Progress)
	}
}

func TestFlattenBadDatesExcludedFromSchedule(t *testing.T) {
	tasks := Flatten([]Initiative{{Name: "X", Features: []Feature{
		{Name: "a", StartDate: "2025-01-01", EndDate: "not a date"},
		{Name: "b", StartDate: "2025-01-01", EndDate: "2025-01-31"},
	}}})
	scheduled := Schedulable(tasks)
	if len(scheduled) != 1 || scheduled[0].Name != "b" {
		t.Fatalf("got %v", scheduled)
	}
}

func TestFlattenAcceptsCompositeKeyCollision(t *testing.T) {
	// Two features with the same initiative, name, and start date produce
	// colliding composite keys; normalization must still yield two tasks
	// with distinct synthetic IDs.
	tasks := Flatten([]Initiative{{Name: "X", Features: []Feature{
		{Name: "dup", StartDate: "2025-01-01", EndDate: "2025-01-10"},
		{Name: "dup", StartDate: "2025-01-01", EndDate: "2025-02-10"},
	}}})
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks", len(tasks))
	}
	if tasks[0].Key() != tasks[1].Key() {
		t.Fatalf("expected colliding keys, got %q and %q", tasks[0].Key(), tasks[1].Key())
	}
	if tasks[0].ID == tasks[1].ID {
		t.Fatalf("synthetic IDs must differ")
	}
}
