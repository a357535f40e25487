// Package roadmap holds the product-roadmap domain model: the
// initiative/feature hierarchy produced by the backend and the flat task
// projection the views render from.
package roadmap

import (
	"fmt"
	"strings"
	"time"
)

// Reference is an evidentiary pointer into a source document. Created by
// the backend, read-only afterwards.
type Reference struct {
	Source string `json:"source"`
	Quote  string `json:"quote"`
}

// Feature is the schedulable unit of a roadmap, as it arrives on the wire.
// Most fields are optional; Flatten applies the defaults.
type Feature struct {
	Name          string      `json:"name"`
	Priority      string      `json:"priority"`
	Quarter       string      `json:"quarter"`
	StartDate     string      `json:"startDate"`
	EndDate       string      `json:"endDate"`
	Assignee      string      `json:"assignee"`
	Progress      int         `json:"progress"`
	Status        string      `json:"status"`
	Justification string      `json:"justification"`
	References    []Reference `json:"references"`
}

// Initiative groups features under a shared goal.
type Initiative struct {
	Name     string    `json:"name"`
	Goal     string    `json:"goal"`
	Features []Feature `json:"features"`
}

// Priority is the ordinal feature priority. Unrecognized wire values
// normalize to PriorityMedium at the flatten boundary, never later.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityHighest
)

func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "highest":
		return PriorityHighest
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

func (p Priority) String() string {
	switch p {
	case PriorityHighest:
		return "Highest"
	case PriorityHigh:
		return "High"
	case PriorityLow:
		return "Low"
	default:
		return "Medium"
	}
}

// Status is the workflow state of a task. The set is closed: ParseStatus
// maps anything unrecognized to StatusToDo.
type Status int

const (
	StatusToDo Status = iota
	StatusInProgress
	StatusReview
	StatusDone
	StatusOnHold
)

// StatusOrder is the fixed bucket order used by the Kanban board.
var StatusOrder = []Status{StatusToDo, StatusInProgress, StatusReview, StatusDone, StatusOnHold}

func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in progress":
		return StatusInProgress
	case "review":
		return StatusReview
	case "done":
		return StatusDone
	case "on hold":
		return StatusOnHold
	default:
		return StatusToDo
	}
}

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusReview:
		return "review"
	case StatusDone:
		return "done"
	case StatusOnHold:
		return "on hold"
	default:
		return "to do"
	}
}

// Title returns the board-column heading for the status.
func (s Status) Title() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "Review"
	case StatusDone:
		return "Done"
	case StatusOnHold:
		return "On Hold"
	default:
		return "To Do"
	}
}

// Task is the flattened, view-ready projection of one feature under one
// initiative. ID is a synthetic identifier assigned during flattening;
// Key is the legacy initiative+name+start composite and may collide.
type Task struct {
	ID          int
	Initiative  string
	Name        string
	Description string
	Quarter     string
	Start       time.Time
	End         time.Time
	HasStart    bool
	HasEnd      bool
	Status      Status
	Priority    Priority
	Assignee    string
	Progress    int
	References  []Reference
}

// Key returns the legacy initiative+name+date composite key. Two
// identically named features with the same start date collide; callers
// that need uniqueness use ID.
func (t Task) Key() string {
	return fmt.Sprintf("%s-%s-%s", t.Initiative, t.Name, t.startDateLabel())
}

func (t Task) startDateLabel() string {
	if !t.HasStart {
		return ""
	}
	return t.Start.Format(DateLayout)
}

// Schedulable reports whether the task carries both dates and can appear
// on the Gantt chart.
func (t Task) Schedulable() bool { return t.HasStart && t.HasEnd }
