package schedule

import (
	"sort"

	"github.com/novarame/weekplan/internal/model"
)

// Result distinguishes "nothing changed because already correct" from
// "nothing changed because the target vanished". Stale day indices or task
// ids yield ResultNotFound, never an error.
type Result string

const (
	ResultApplied  Result = "applied"
	ResultNotFound Result = "not_found"
)

// TaskPatch is a partial task update; nil fields are left untouched.
type TaskPatch struct {
	Name      *string
	TimeStart *string
	TimeEnd   *string
	Activity  *model.ActivityType
	Priority  *model.Priority
	Notes     *string
	Completed *bool
}

// ToggleCompletion flips the completion flag of one task. No resort.
func ToggleCompletion(s model.Schedule, dayIndex int, taskID string) (model.Schedule, Result) {
	ti := s.FindTask(dayIndex, taskID)
	if ti < 0 {
		return s, ResultNotFound
	}
	out := s.Clone()
	out.Week[dayIndex].Tasks[ti].Completed = !out.Week[dayIndex].Tasks[ti].Completed
	return out, ResultApplied
}

// AddTask appends a task to the target day, forces user origin, derives the
// duration from the supplied time range, and re-sorts the day by start time.
func AddTask(s model.Schedule, dayIndex int, task model.Task) (model.Schedule, Result) {
	if dayIndex < 0 || dayIndex >= len(s.Week) {
		return s, ResultNotFound
	}
	out := s.Clone()
	task.AIGenerated = false
	if task.ID == "" {
		task.ID = model.NewTaskID()
	}
	task.DurationMinutes = model.DurationBetween(task.TimeStart, task.TimeEnd)
	out.Week[dayIndex].Tasks = append(out.Week[dayIndex].Tasks, task)
	sortDay(&out.Week[dayIndex])
	return out, ResultApplied
}

// UpdateTask applies the patch to the matching task, forcing user origin.
// The duration is re-derived whenever either end of the time range changes,
// and the day is re-sorted when the start time changed.
func UpdateTask(s model.Schedule, dayIndex int, taskID string, patch TaskPatch) (model.Schedule, Result) {
	ti := s.FindTask(dayIndex, taskID)
	if ti < 0 {
		return s, ResultNotFound
	}
	out := s.Clone()
	task := &out.Week[dayIndex].Tasks[ti]

	if patch.Name != nil {
		task.Name = *patch.Name
	}
	// A supplied time field counts as a time change even when the value is
	// identical; the duration rederivation and resort are idempotent.
	startChanged := patch.TimeStart != nil
	timeChanged := patch.TimeStart != nil || patch.TimeEnd != nil
	if patch.TimeStart != nil {
		task.TimeStart = *patch.TimeStart
	}
	if patch.TimeEnd != nil {
		task.TimeEnd = *patch.TimeEnd
	}
	if patch.Activity != nil {
		task.Activity = *patch.Activity
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Notes != nil {
		task.Notes = *patch.Notes
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	task.AIGenerated = false
	if timeChanged {
		task.DurationMinutes = model.DurationBetween(task.TimeStart, task.TimeEnd)
	}
	if startChanged {
		sortDay(&out.Week[dayIndex])
	}
	return out, ResultApplied
}

// DeleteTask removes the task from the day's list.
func DeleteTask(s model.Schedule, dayIndex int, taskID string) (model.Schedule, Result) {
	ti := s.FindTask(dayIndex, taskID)
	if ti < 0 {
		return s, ResultNotFound
	}
	out := s.Clone()
	tasks := out.Week[dayIndex].Tasks
	out.Week[dayIndex].Tasks = append(tasks[:ti], tasks[ti+1:]...)
	return out, ResultApplied
}

// Resort re-sorts every day by start time. Backs the calendar's soft
// refresh.
func Resort(s model.Schedule) model.Schedule {
	out := s.Clone()
	for i := range out.Week {
		sortDay(&out.Week[i])
	}
	return out
}

// sortDay orders tasks non-decreasingly by start time string. Stable: ties
// keep insertion order.
func sortDay(d *model.Day) {
	sort.SliceStable(d.Tasks, func(i, j int) bool {
		return d.Tasks[i].TimeStart < d.Tasks[j].TimeStart
	})
}
