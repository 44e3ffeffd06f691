// Package schedule owns the planner's core state transforms: reconciling a
// freshly generated week with prior task state, pure mutations over the
// schedule aggregate, and the bounded undo history.
package schedule

import (
	"strings"

	"github.com/novarame/weekplan/internal/model"
)

// MergeKey identifies a task across regenerations: day label, start time,
// and the trimmed lowercased name. Heuristic, not unique; collisions are
// resolved first-match-wins.
func MergeKey(day, timeStart, name string) string {
	return day + "|" + timeStart + "|" + strings.ToLower(strings.TrimSpace(name))
}

// PriorTaskIndex builds the merge lookup from an existing schedule. On key
// collision the earlier task wins.
func PriorTaskIndex(s model.Schedule) map[string]model.Task {
	index := make(map[string]model.Task)
	for _, day := range s.Week {
		for _, task := range day.Tasks {
			key := MergeKey(day.Day, task.TimeStart, task.Name)
			if _, exists := index[key]; !exists {
				index[key] = task
			}
		}
	}
	return index
}

// Reconcile stamps every task in a freshly generated schedule with a stable
// identifier, carrying over the prior task's id, completion flag, and origin
// flag where the merge key matches. Tasks are never added, dropped, or
// reordered; the result is a 1:1 transform of the generated list.
func Reconcile(generated model.Schedule, prior map[string]model.Task) model.Schedule {
	out := generated.Clone()
	for di := range out.Week {
		day := &out.Week[di]
		for ti := range day.Tasks {
			task := &day.Tasks[ti]
			key := MergeKey(day.Day, task.TimeStart, task.Name)
			if existing, ok := prior[key]; ok {
				task.ID = existing.ID
				task.Completed = existing.Completed
				task.AIGenerated = existing.AIGenerated
				continue
			}
			task.ID = model.NewTaskID()
			task.Completed = false
		}
	}
	return out
}
