package roadmap

import (
	"sort"
	"time"
)

// GanttBar positions one task on the shared timeline. OffsetDays and
// DurationDays are inclusive day counts; Offset and Width are the same
// quantities as fractions of the total span, always within [0,1].
type GanttBar struct {
	Task         Task
	OffsetDays   int
	DurationDays int
	Offset       float64
	Width        float64
}

// MonthSegment is one cell of the month header row. Days is the number of
// days of the month falling inside the chart span, clipped at both ends;
// Width is Days over the total span.
type MonthSegment struct {
	Start time.Time
	Label string
	Days  int
	Width float64
}

// GanttLayout is the computed geometry for a Gantt chart: shared bounds,
// per-task bars sorted by ascending start date (stable on flatten order),
// and the month header segmentation.
type GanttLayout struct {
	MinDate   time.Time
	MaxDate   time.Time
	TotalDays int
	Bars      []GanttBar
	Months    []MonthSegment
}

// BuildGanttLayout computes the timeline geometry for the schedulable
// subset of tasks. A set with no schedulable task has no renderable
// timeline; that is reported through ok=false, not an error.
func BuildGanttLayout(tasks []Task) (*GanttLayout, bool) {
	scheduled := Schedulable(tasks)
	if len(scheduled) == 0 {
		return nil, false
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].Start.Before(scheduled[j].Start)
	})

	minDate := scheduled[0].Start
	maxDate := scheduled[0].End
	for _, t := range scheduled[1:] {
		if t.Start.Before(minDate) {
			minDate = t.Start
		}
		if t.End.After(maxDate) {
			maxDate = t.End
		}
	}
	totalDays := daysInclusive(minDate, maxDate)

	layout := &GanttLayout{
		MinDate:   minDate,
		MaxDate:   maxDate,
		TotalDays: totalDays,
		Bars:      make([]GanttBar, 0, len(scheduled)),
	}
	for _, t := range scheduled {
		offset := daysInclusive(minDate, t.Start) - 1
		duration := daysInclusive(t.Start, t.End)
		layout.Bars = append(layout.Bars, GanttBar{
			Task:         t,
			OffsetDays:   offset,
			DurationDays: duration,
			Offset:       float64(offset) / float64(totalDays),
			Width:        float64(duration) / float64(totalDays),
		})
	}
	layout.Months = monthSegments(minDate, maxDate, totalDays)
	return layout, true
}

func monthSegments(minDate, maxDate time.Time, totalDays int) []MonthSegment {
	var segments []MonthSegment
	cur := time.Date(minDate.Year(), minDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(maxDate) {
		monthEnd := cur.AddDate(0, 1, -1)
		from := cur
		if from.Before(minDate) {
			from = minDate
		}
		to := monthEnd
		if to.After(maxDate) {
			to = maxDate
		}
		days := daysInclusive(from, to)
		segments = append(segments, MonthSegment{
			Start: cur,
			Label: cur.Format("Jan 2006"),
			Days:  days,
			Width: float64(days) / float64(totalDays),
		})
		cur = cur.AddDate(0, 1, 0)
	}
	return segments
}

// daysInclusive counts calendar days from a through b, both ends included.
// Inputs are midnight UTC dates so the division is exact.
func daysInclusive(a, b time.Time) int {
	return int(b.Sub(a)/(24*time.Hour)) + 1
}
