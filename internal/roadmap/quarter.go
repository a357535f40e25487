package roadmap

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the calendar-date wire format (ISO, no time component).
const DateLayout = "2006-01-02"

var quarterPattern = regexp.MustCompile(`(?i)Q([1-4])\s*(\d{4})`)

// QuarterRange maps a fiscal-quarter label such as "Q3 2025" to the first
// and last calendar day of that quarter. Labels are matched
// case-insensitively with arbitrary whitespace between the quarter token
// and the year. A label that does not match yields ok=false, which is a
// valid "no range" answer rather than an error.
func QuarterRange(label string) (start, end time.Time, ok bool) {
	m := quarterPattern.FindStringSubmatch(label)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}
	q, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	startMonth := time.Month(3*(q-1) + 1)
	start = time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 3, -1)
	return start, end, true
}

// QuarterLabel is the inverse of QuarterRange: it renders the "Q<n> <year>"
// label for the quarter containing t. The zero time has no label.
func QuarterLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	q := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", q, t.Year())
}
