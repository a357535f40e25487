package roadmap

import "time"

// Flatten projects the initiative/feature hierarchy into a flat, ordered
// task list. Order is stable: initiatives in input order, features in
// declaration order within each. Missing fields are defaulted here so the
// views never see an out-of-set status or priority.
func Flatten(initiatives []Initiative) []Task {
	var tasks []Task
	id := 0
	for _, ini := range initiatives {
		for _, f := range ini.Features {
			id++
			task := Task{
				ID:          id,
				Initiative:  ini.Name,
				Name:        f.Name,
				Description: f.Justification,
				Quarter:     f.Quarter,
				Status:      ParseStatus(f.Status),
				Priority:    ParsePriority(f.Priority),
				Assignee:    f.Assignee,
				Progress:    clampProgress(f.Progress),
				References:  f.References,
			}
			if task.Assignee == "" {
				task.Assignee = "Unassigned"
			}
			if task.References == nil {
				task.References = []Reference{}
			}
			task.Start, task.HasStart = parseDate(f.StartDate)
			task.End, task.HasEnd = parseDate(f.EndDate)
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// Schedulable filters tasks down to the subset with both dates, keeping
// flatten order.
func Schedulable(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Schedulable() {
			out = append(out, t)
		}
	}
	return out
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
