package session

import (
	"testing"

	"github.com/novarame/weekplan/internal/model"
	"github.com/novarame/weekplan/internal/schedule"
)

func generatedWeek(firstTaskName string) model.Schedule {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	dates := []string{"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06", "2026-03-07", "2026-03-08"}
	week := make([]model.Day, model.DaysPerWeek)
	for i := range week {
		week[i] = model.Day{Day: days[i], Date: dates[i]}
	}
	week[0].Tasks = []model.Task{{
		TimeStart:       "09:00",
		TimeEnd:         "10:00",
		DurationMinutes: 60,
		Activity:        model.ActivityStudy,
		Name:            firstTaskName,
		Priority:        model.PriorityHigh,
	}}
	return model.Schedule{Week: week}
}

func activeSession(t *testing.T) *Session {
	t.Helper()
	s := New()
	seq := s.NextRequestSeq()
	if !s.ApplyGenerated(seq, generatedWeek("Calculus")) {
		t.Fatal("initial generation was not applied")
	}
	return s
}

func firstTaskID(t *testing.T, s *Session) string {
	t.Helper()
	cur, ok := s.Current()
	if !ok {
		t.Fatal("no active schedule")
	}
	return cur.Week[0].Tasks[0].ID
}

func TestLifecycleStates(t *testing.T) {
	s := New()
	if s.State() != StateNoActiveSchedule {
		t.Fatalf("expected no active schedule, got %q", s.State())
	}
	seq := s.NextRequestSeq()
	if !s.ApplyGenerated(seq, generatedWeek("Calculus")) {
		t.Fatal("expected generation applied")
	}
	if s.State() != StateActiveSchedule {
		t.Fatalf("expected active schedule, got %q", s.State())
	}
}

func TestStartNewWeekArchives(t *testing.T) {
	s := activeSession(t)
	retired, _ := s.Current()

	if !s.StartNewWeek() {
		t.Fatal("expected StartNewWeek to fire")
	}
	if s.State() != StateNoActiveSchedule {
		t.Fatalf("expected no active schedule, got %q", s.State())
	}
	if len(s.Archive()) != 1 {
		t.Fatalf("expected 1 archived schedule, got %d", len(s.Archive()))
	}
	if s.Archive()[0].Week[0].Tasks[0].Name != retired.Week[0].Tasks[0].Name {
		t.Fatal("archived schedule does not match the retired one")
	}
	if s.HistoryLen() != 0 {
		t.Fatalf("expected history cleared, got %d", s.HistoryLen())
	}
	if s.StartNewWeek() {
		t.Fatal("StartNewWeek with no active schedule must be a no-op")
	}
}

func TestResetDiscardsWithoutArchiving(t *testing.T) {
	s := activeSession(t)
	s.Reset()
	if s.State() != StateNoActiveSchedule {
		t.Fatalf("expected no active schedule, got %q", s.State())
	}
	if len(s.Archive()) != 0 {
		t.Fatalf("reset must not archive, got %d entries", len(s.Archive()))
	}
}

func TestStaleGenerationResultIsDiscarded(t *testing.T) {
	s := New()
	seqA := s.NextRequestSeq()
	seqB := s.NextRequestSeq()

	// The later request resolves first and wins.
	if !s.ApplyGenerated(seqB, generatedWeek("Newer")) {
		t.Fatal("expected newer result applied")
	}
	if s.ApplyGenerated(seqA, generatedWeek("Older")) {
		t.Fatal("expected stale result discarded")
	}
	cur, _ := s.Current()
	if cur.Week[0].Tasks[0].Name != "Newer" {
		t.Fatalf("stale result overwrote state: %q", cur.Week[0].Tasks[0].Name)
	}
}

func TestApplyGeneratedMergesPriorState(t *testing.T) {
	s := activeSession(t)
	id := firstTaskID(t, s)
	if s.Toggle(0, id) != schedule.ResultApplied {
		t.Fatal("toggle failed")
	}

	// Regeneration emits the same Monday 09:00 Calculus block.
	seq := s.NextRequestSeq()
	if !s.ApplyGenerated(seq, generatedWeek("calculus")) {
		t.Fatal("expected regeneration applied")
	}
	cur, _ := s.Current()
	got := cur.Week[0].Tasks[0]
	if got.ID != id {
		t.Fatalf("expected identity preserved across regeneration, got %q", got.ID)
	}
	if !got.Completed {
		t.Fatal("expected completion preserved across regeneration")
	}
	if s.HistoryLen() != 0 {
		t.Fatalf("expected history cleared on generation, got %d", s.HistoryLen())
	}
}

func TestToggleTwiceRecordsTwoSnapshots(t *testing.T) {
	s := activeSession(t)
	id := firstTaskID(t, s)

	if s.Toggle(0, id) != schedule.ResultApplied {
		t.Fatal("first toggle failed")
	}
	if s.Toggle(0, id) != schedule.ResultApplied {
		t.Fatal("second toggle failed")
	}
	if s.HistoryLen() != 2 {
		t.Fatalf("expected exactly 2 snapshots, got %d", s.HistoryLen())
	}
	cur, _ := s.Current()
	if cur.Week[0].Tasks[0].Completed {
		t.Fatal("expected completion back to original value")
	}
}

func TestMutationNotFoundLeavesHistoryUntouched(t *testing.T) {
	s := activeSession(t)
	if s.Toggle(0, "task-missing") != schedule.ResultNotFound {
		t.Fatal("expected not_found")
	}
	if s.Delete(3, "task-missing") != schedule.ResultNotFound {
		t.Fatal("expected not_found")
	}
	if s.HistoryLen() != 0 {
		t.Fatalf("no-op mutations must not record snapshots, got %d", s.HistoryLen())
	}
}

func TestUndoRestoresPreMutationState(t *testing.T) {
	s := activeSession(t)
	id := firstTaskID(t, s)

	if s.Delete(0, id) != schedule.ResultApplied {
		t.Fatal("delete failed")
	}
	cur, _ := s.Current()
	if len(cur.Week[0].Tasks) != 0 {
		t.Fatal("expected task deleted")
	}
	if !s.Undo() {
		t.Fatal("expected undo to restore a snapshot")
	}
	cur, _ = s.Current()
	if len(cur.Week[0].Tasks) != 1 || cur.Week[0].Tasks[0].ID != id {
		t.Fatal("undo did not restore the deleted task")
	}
	if s.Undo() {
		t.Fatal("expected undo on empty history to be a no-op")
	}
}

func TestAddMutationsOnEmptySessionAreNotFound(t *testing.T) {
	s := New()
	if s.Add(0, model.Task{Name: "X"}) != schedule.ResultNotFound {
		t.Fatal("expected not_found with no active schedule")
	}
	if s.Undo() {
		t.Fatal("expected undo no-op with no active schedule")
	}
	if s.SoftRefresh() {
		t.Fatal("expected soft refresh no-op with no active schedule")
	}
}

func TestLockedTasksAreUserTasks(t *testing.T) {
	s := activeSession(t)
	id := firstTaskID(t, s)

	// Generator-born task stays AI-origin until the user touches it.
	cur, _ := s.Current()
	if len(s.LockedTasks()) != len(cur.UserTasks()) {
		t.Fatal("locked tasks must mirror user tasks")
	}

	name := "Calculus review"
	if s.Update(0, id, schedule.TaskPatch{Name: &name}) != schedule.ResultApplied {
		t.Fatal("update failed")
	}
	locked := s.LockedTasks()
	found := false
	for _, task := range locked {
		if task.ID == id {
			found = true
		}
	}
	if !found {
		t.Fatal("edited task must be locked on regeneration")
	}
}

func TestSetLastInputIsCopied(t *testing.T) {
	s := New()
	in := model.UserInputData{
		WeekStartDate: "2026-03-02",
		SleepStart:    "23:00",
		SleepEnd:      "07:00",
		Subjects:      []model.Subject{{ID: "sub-1", Name: "Calculus", Priority: model.PriorityHigh, HoursNeeded: 6}},
	}
	s.SetLastInput(in)
	in.Subjects[0].Name = "mutated"

	got, ok := s.LastInput()
	if !ok {
		t.Fatal("expected last input present")
	}
	if got.Subjects[0].Name != "Calculus" {
		t.Fatalf("last input shares state with the caller: %q", got.Subjects[0].Name)
	}
}
