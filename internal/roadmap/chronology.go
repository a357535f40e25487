package roadmap

import "sort"

// Chronology orders tasks for the linear timeline view: ascending start
// date with flatten-order ties, the same rule the Gantt chart uses.
// Unlike the Gantt chart only the start date is required; open-ended
// tasks still appear.
func Chronology(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.HasStart {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
