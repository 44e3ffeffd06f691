package model

import (
	"errors"
	"fmt"
	"strings"
)

// FixedEvent is a hard commitment the generator must plan around.
type FixedEvent struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
}

type Subject struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Priority    Priority `json:"priority"`
	HoursNeeded float64  `json:"hours_needed"`
}

type Assignment struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Deadline       string  `json:"deadline"`
	EstimatedHours float64 `json:"estimated_hours"`
	SubjectID      string  `json:"subject_id"`
}

type PersonalTask struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Deadline       string   `json:"deadline"`
	EstimatedHours float64  `json:"estimated_hours"`
	Priority       Priority `json:"priority"`
}

// UserInputData is the planning request round-tripped to the generator
// unchanged and persisted so the form can re-populate after a reset.
type UserInputData struct {
	WeekStartDate string         `json:"week_start_date"`
	SleepStart    string         `json:"sleep_start"`
	SleepEnd      string         `json:"sleep_end"`
	FixedEvents   []FixedEvent   `json:"fixed_events"`
	Subjects      []Subject      `json:"subjects"`
	Assignments   []Assignment   `json:"assignments"`
	PersonalTasks []PersonalTask `json:"personal_tasks"`
}

func (in UserInputData) Validate() error {
	if strings.TrimSpace(in.WeekStartDate) == "" {
		return errors.New("model: week start date is required")
	}
	if _, ok := parseClock(in.SleepStart); !ok {
		return fmt.Errorf("model: invalid sleep start %q", in.SleepStart)
	}
	if _, ok := parseClock(in.SleepEnd); !ok {
		return fmt.Errorf("model: invalid sleep end %q", in.SleepEnd)
	}
	for _, s := range in.Subjects {
		if strings.TrimSpace(s.Name) == "" {
			return errors.New("model: subject name is required")
		}
		if !s.Priority.IsValid() {
			return fmt.Errorf("%w: subject %q has %q", ErrInvalidPriority, s.Name, s.Priority)
		}
	}
	for _, a := range in.Assignments {
		if strings.TrimSpace(a.Name) == "" {
			return errors.New("model: assignment name is required")
		}
	}
	for _, p := range in.PersonalTasks {
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("model: personal task name is required")
		}
		if !p.Priority.IsValid() {
			return fmt.Errorf("%w: personal task %q has %q", ErrInvalidPriority, p.Name, p.Priority)
		}
	}
	return nil
}

// SubjectName resolves a subject reference for prompt building.
func (in UserInputData) SubjectName(subjectID string) string {
	for _, s := range in.Subjects {
		if s.ID == subjectID {
			return s.Name
		}
	}
	return "Unknown Subject"
}

func (in UserInputData) Clone() UserInputData {
	out := in
	out.FixedEvents = append([]FixedEvent(nil), in.FixedEvents...)
	out.Subjects = append([]Subject(nil), in.Subjects...)
	out.Assignments = append([]Assignment(nil), in.Assignments...)
	out.PersonalTasks = append([]PersonalTask(nil), in.PersonalTasks...)
	return out
}
