package model

import (
	"errors"
	"strings"
	"testing"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		ID:              "task-abc123de",
		TimeStart:       "09:00",
		TimeEnd:         "10:30",
		DurationMinutes: 90,
		Activity:        ActivityStudy,
		Name:            "Linear Algebra",
		Priority:        PriorityHigh,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateInvalidEnums(t *testing.T) {
	task := Task{
		ID:              "task-abc123de",
		TimeStart:       "09:00",
		TimeEnd:         "10:00",
		DurationMinutes: 60,
		Activity:        ActivityType("Gym"),
		Name:            "Weights",
		Priority:        PriorityLow,
	}
	if err := task.Validate(); err == nil || !errors.Is(err, ErrInvalidActivity) {
		t.Fatalf("expected ErrInvalidActivity, got: %v", err)
	}

	task.Activity = ActivityPersonal
	task.Priority = Priority("Urgent")
	if err := task.Validate(); err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}
}

func TestTaskValidateRequiredFields(t *testing.T) {
	task := Task{
		TimeStart:       "09:00",
		TimeEnd:         "10:00",
		DurationMinutes: 60,
		Activity:        ActivityWork,
		Name:            "Standup",
		Priority:        PriorityNone,
	}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for missing id, got nil")
	}

	task.ID = "task-abc123de"
	task.Name = "   "
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for blank name, got nil")
	}
}

func TestDurationBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"regular span", "09:00", "10:30", 90},
		{"one minute", "23:58", "23:59", 1},
		{"end before start coerced", "10:00", "09:00", 60},
		{"zero span coerced", "14:00", "14:00", 60},
		{"unparseable start coerced", "morning", "10:00", 60},
		{"unparseable end coerced", "10:00", "25:99", 60},
		{"empty coerced", "", "", 60},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DurationBetween(tc.start, tc.end); got != tc.want {
				t.Fatalf("DurationBetween(%q, %q) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestNewTaskIDShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTaskID()
		if !strings.HasPrefix(id, "task-") {
			t.Fatalf("unexpected id prefix: %q", id)
		}
		if len(id) != len("task-")+8 {
			t.Fatalf("unexpected id length: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
