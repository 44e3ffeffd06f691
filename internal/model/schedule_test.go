package model

import "testing"

func sampleWeek() []Day {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	dates := []string{"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06", "2026-03-07", "2026-03-08"}
	week := make([]Day, DaysPerWeek)
	for i := range week {
		week[i] = Day{Day: days[i], Date: dates[i]}
	}
	week[0].Tasks = []Task{
		{
			ID:              "task-aaaaaaaa",
			TimeStart:       "09:00",
			TimeEnd:         "10:00",
			DurationMinutes: 60,
			Activity:        ActivityStudy,
			Name:            "Calculus",
			Priority:        PriorityHigh,
		},
	}
	return week
}

func TestScheduleValidate(t *testing.T) {
	s := Schedule{Week: sampleWeek()}
	if err := s.Validate(); err != nil {
		t.Fatalf("expected valid schedule, got: %v", err)
	}

	short := Schedule{Week: s.Week[:5]}
	if err := short.Validate(); err == nil {
		t.Fatal("expected error for 5-day schedule, got nil")
	}

	bad := s.Clone()
	bad.Week[0].Tasks[0].Activity = ActivityType("Nap")
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for invalid task, got nil")
	}
}

func TestScheduleCloneIsIndependent(t *testing.T) {
	s := Schedule{Week: sampleWeek(), Summary: Summary{TotalStudyHours: "12"}}
	c := s.Clone()
	c.Week[0].Tasks[0].Completed = true
	c.Week[0].Tasks = append(c.Week[0].Tasks, Task{ID: "task-bbbbbbbb"})
	c.Summary.TotalStudyHours = "0"

	if s.Week[0].Tasks[0].Completed {
		t.Fatal("clone mutation leaked into original task")
	}
	if len(s.Week[0].Tasks) != 1 {
		t.Fatalf("clone append leaked into original day: %d tasks", len(s.Week[0].Tasks))
	}
	if s.Summary.TotalStudyHours != "12" {
		t.Fatalf("clone mutation leaked into summary: %q", s.Summary.TotalStudyHours)
	}
}

func TestScheduleFindTask(t *testing.T) {
	s := Schedule{Week: sampleWeek()}
	if got := s.FindTask(0, "task-aaaaaaaa"); got != 0 {
		t.Fatalf("expected index 0, got %d", got)
	}
	if got := s.FindTask(0, "task-missing"); got != -1 {
		t.Fatalf("expected -1 for unknown id, got %d", got)
	}
	if got := s.FindTask(9, "task-aaaaaaaa"); got != -1 {
		t.Fatalf("expected -1 for out-of-range day, got %d", got)
	}
	if got := s.FindTask(-1, "task-aaaaaaaa"); got != -1 {
		t.Fatalf("expected -1 for negative day, got %d", got)
	}
}

func TestScheduleUserTasks(t *testing.T) {
	s := Schedule{Week: sampleWeek()}
	s.Week[1].Tasks = []Task{
		{ID: "task-cccccccc", Name: "Break", Activity: ActivityBreak, AIGenerated: true},
		{ID: "task-dddddddd", Name: "Groceries", Activity: ActivityChore},
	}
	got := s.UserTasks()
	if len(got) != 2 {
		t.Fatalf("expected 2 user tasks, got %d", len(got))
	}
	if got[0].ID != "task-aaaaaaaa" || got[1].ID != "task-dddddddd" {
		t.Fatalf("unexpected user tasks: %v, %v", got[0].ID, got[1].ID)
	}
}
