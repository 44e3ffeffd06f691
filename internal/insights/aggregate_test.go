package insights

import (
	"testing"

	"github.com/novarame/weekplan/internal/model"
)

func week(tasksByDay map[int][]model.Task) model.Schedule {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	week := make([]model.Day, model.DaysPerWeek)
	for i := range week {
		week[i] = model.Day{Day: days[i], Date: "2026-03-02", Tasks: tasksByDay[i]}
	}
	return model.Schedule{Week: week}
}

func task(name string, activity model.ActivityType, priority model.Priority, minutes int) model.Task {
	return model.Task{
		ID:              model.NewTaskID(),
		TimeStart:       "09:00",
		TimeEnd:         "10:00",
		DurationMinutes: minutes,
		Activity:        activity,
		Name:            name,
		Priority:        priority,
	}
}

func TestTimeDistributionGroupsByTrimmedName(t *testing.T) {
	s := week(map[int][]model.Task{
		0: {task("Math", model.ActivityStudy, model.PriorityHigh, 60)},
		2: {task("  Math ", model.ActivityStudy, model.PriorityHigh, 90)},
	})
	got := TimeDistribution(s)
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	if got[0].Name != "Math" || got[0].Hours != 2.5 {
		t.Fatalf("expected Math 2.5h, got %q %vh", got[0].Name, got[0].Hours)
	}
	if got[0].Activity != model.ActivityStudy {
		t.Fatalf("expected Study activity carried along, got %q", got[0].Activity)
	}
}

func TestTimeDistributionExcludesBreaksAndSortsDesc(t *testing.T) {
	s := week(map[int][]model.Task{
		0: {
			task("Stretch", model.ActivityBreak, model.PriorityNone, 600),
			task("Essay", model.ActivityStudy, model.PriorityHigh, 120),
			task("Laundry", model.ActivityChore, model.PriorityLow, 30),
			task("Shift", model.ActivityWork, model.PriorityMedium, 240),
		},
	})
	got := TimeDistribution(s)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries (break excluded), got %d", len(got))
	}
	wantOrder := []string{"Shift", "Essay", "Laundry"}
	for i, want := range wantOrder {
		if got[i].Name != want {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Name, want)
		}
	}
	if got[0].Hours != 4 || got[1].Hours != 2 || got[2].Hours != 0.5 {
		t.Fatalf("unexpected hours: %v, %v, %v", got[0].Hours, got[1].Hours, got[2].Hours)
	}
}

func TestTimeDistributionRoundsAfterSumming(t *testing.T) {
	// 25 + 25 + 25 minutes = 75 -> 1.3h, not 0.4*3 = 1.2h.
	s := week(map[int][]model.Task{
		0: {task("Reading", model.ActivityPersonal, model.PriorityLow, 25)},
		1: {task("Reading", model.ActivityPersonal, model.PriorityLow, 25)},
		2: {task("Reading", model.ActivityPersonal, model.PriorityLow, 25)},
	})
	got := TimeDistribution(s)
	if len(got) != 1 || got[0].Hours != 1.3 {
		t.Fatalf("expected 1.3h, got %+v", got)
	}
}

func TestPriorityBreakdownSkipsNoneAndZeroBuckets(t *testing.T) {
	s := week(map[int][]model.Task{
		0: {
			task("Essay", model.ActivityStudy, model.PriorityHigh, 60),
			task("Lab", model.ActivityStudy, model.PriorityHigh, 60),
			task("Laundry", model.ActivityChore, model.PriorityLow, 30),
			task("Lecture", model.ActivityFixed, model.PriorityNone, 60),
			task("Stretch", model.ActivityBreak, model.PriorityHigh, 15),
		},
	})
	got := PriorityBreakdown(s)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d: %+v", len(got), got)
	}
	if got[0].Priority != model.PriorityHigh || got[0].Count != 2 {
		t.Fatalf("unexpected first bucket: %+v", got[0])
	}
	if got[1].Priority != model.PriorityLow || got[1].Count != 1 {
		t.Fatalf("unexpected second bucket: %+v", got[1])
	}
}

func TestCompletionRatio(t *testing.T) {
	done := task("Essay", model.ActivityStudy, model.PriorityHigh, 60)
	done.Completed = true
	s := week(map[int][]model.Task{
		0: {done, task("Lab", model.ActivityStudy, model.PriorityMedium, 60)},
	})
	d, total := CompletionRatio(s)
	if d != 1 || total != 2 {
		t.Fatalf("expected 1/2, got %d/%d", d, total)
	}
}
