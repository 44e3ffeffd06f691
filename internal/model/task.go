package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidActivity = errors.New("model: invalid activity type")
	ErrInvalidPriority = errors.New("model: invalid priority level")
)

type ActivityType string

const (
	ActivityStudy    ActivityType = "Study"
	ActivityWork     ActivityType = "Work"
	ActivityFixed    ActivityType = "Fixed"
	ActivityBreak    ActivityType = "Break"
	ActivityPersonal ActivityType = "Personal"
	ActivityChore    ActivityType = "Chore"
)

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityStudy, ActivityWork, ActivityFixed, ActivityBreak, ActivityPersonal, ActivityChore:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
	PriorityNone   Priority = "N/A"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	default:
		return false
	}
}

// Task is one scheduled block in a day. AIGenerated marks entries the
// generator invented; anything the user authored or confirmed carries false.
type Task struct {
	ID              string       `json:"id"`
	TimeStart       string       `json:"time_start"`
	TimeEnd         string       `json:"time_end"`
	DurationMinutes int          `json:"duration_minutes"`
	Activity        ActivityType `json:"activity_type"`
	Name            string       `json:"subject_or_task"`
	Priority        Priority     `json:"priority_level"`
	Notes           string       `json:"notes"`
	Completed       bool         `json:"is_completed"`
	AIGenerated     bool         `json:"is_ai_generated"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: task name is required")
	}
	if !t.Activity.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidActivity, t.Activity)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.DurationMinutes <= 0 {
		return errors.New("model: task duration must be positive")
	}
	return nil
}

const fallbackDurationMinutes = 60

// DurationBetween derives end-start in minutes from two HH:MM wall-clock
// times. A non-positive or unparseable span is coerced to 60 minutes rather
// than rejected.
func DurationBetween(start, end string) int {
	startMins, okStart := parseClock(start)
	endMins, okEnd := parseClock(end)
	if !okStart || !okEnd {
		return fallbackDurationMinutes
	}
	d := endMins - startMins
	if d <= 0 {
		return fallbackDurationMinutes
	}
	return d
}

func parseClock(v string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(v), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
