package model

import (
	"fmt"
	"strings"
)

const DaysPerWeek = 7

// Day is one calendar day of the plan: weekday label, ISO date, and the
// day's tasks ordered ascending by start time.
type Day struct {
	Day   string `json:"day"`
	Date  string `json:"date"`
	Tasks []Task `json:"tasks"`
}

func (d Day) Clone() Day {
	out := d
	out.Tasks = make([]Task, len(d.Tasks))
	copy(out.Tasks, d.Tasks)
	return out
}

// Summary carries the generator's free-text review of the week.
type Summary struct {
	TotalStudyHours   string `json:"total_study_hours"`
	DeadlinesMet      string `json:"deadlines_met"`
	HighPriorityFocus string `json:"high_priority_focus"`
	LifeBalanceScore  string `json:"life_balance_score"`
}

// Schedule is the root aggregate: exactly seven days plus the summary
// review. It is the unit of undo, persistence, and archival.
type Schedule struct {
	Week    []Day   `json:"optimized_weekly_schedule"`
	Summary Summary `json:"summary_review"`
}

// Clone returns a fully independent deep copy. Undo snapshots and every pure
// mutation rely on this being complete.
func (s Schedule) Clone() Schedule {
	out := s
	out.Week = make([]Day, len(s.Week))
	for i, d := range s.Week {
		out.Week[i] = d.Clone()
	}
	return out
}

func (s Schedule) Validate() error {
	if len(s.Week) != DaysPerWeek {
		return fmt.Errorf("model: schedule must have %d days, got %d", DaysPerWeek, len(s.Week))
	}
	for i, day := range s.Week {
		if strings.TrimSpace(day.Day) == "" {
			return fmt.Errorf("model: day %d is missing a weekday label", i)
		}
		if strings.TrimSpace(day.Date) == "" {
			return fmt.Errorf("model: day %d is missing a date", i)
		}
		for j, task := range day.Tasks {
			if err := task.Validate(); err != nil {
				return fmt.Errorf("model: day %d task %d: %w", i, j, err)
			}
		}
	}
	return nil
}

// TaskCount is the total number of tasks across the week.
func (s Schedule) TaskCount() int {
	n := 0
	for _, d := range s.Week {
		n += len(d.Tasks)
	}
	return n
}

// FindTask resolves a day index and task id to the task's position within
// that day, or -1 when either does not resolve.
func (s Schedule) FindTask(dayIndex int, taskID string) int {
	if dayIndex < 0 || dayIndex >= len(s.Week) {
		return -1
	}
	for i, t := range s.Week[dayIndex].Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

// UserTasks returns every task the user authored or confirmed, in week
// order. These are the tasks locked verbatim on regeneration.
func (s Schedule) UserTasks() []Task {
	var out []Task
	for _, d := range s.Week {
		for _, t := range d.Tasks {
			if !t.AIGenerated {
				out = append(out, t)
			}
		}
	}
	return out
}
