// Package insights derives the dashboard's read-only projections from the
// current schedule. Everything is recomputed from scratch on each change;
// schedules are small enough that incremental maintenance would be noise.
package insights

import (
	"math"
	"sort"
	"strings"

	"github.com/novarame/weekplan/internal/model"
)

// TimeSlice is one bar of the time-distribution chart: total hours for a
// task name, with the name's activity carried along for styling.
type TimeSlice struct {
	Name     string
	Activity model.ActivityType
	Hours    float64
}

// PriorityBucket is one non-zero count of tasks at a priority level.
type PriorityBucket struct {
	Priority model.Priority
	Count    int
}

// countedActivity filters what the dashboard aggregates: breaks are noise.
func countedActivity(a model.ActivityType) bool {
	switch a {
	case model.ActivityStudy, model.ActivityPersonal, model.ActivityChore, model.ActivityWork, model.ActivityFixed:
		return true
	default:
		return false
	}
}

// TimeDistribution sums task duration in hours grouped by trimmed task name
// across the week, sorted descending by hours. Hours are rounded to one
// decimal after summing.
func TimeDistribution(s model.Schedule) []TimeSlice {
	type entry struct {
		minutes  int
		activity model.ActivityType
		order    int
	}
	byName := make(map[string]*entry)
	order := 0
	for _, day := range s.Week {
		for _, task := range day.Tasks {
			if !countedActivity(task.Activity) {
				continue
			}
			name := strings.TrimSpace(task.Name)
			e, ok := byName[name]
			if !ok {
				e = &entry{activity: task.Activity, order: order}
				order++
				byName[name] = e
			}
			e.minutes += task.DurationMinutes
		}
	}

	out := make([]TimeSlice, 0, len(byName))
	for name, e := range byName {
		out = append(out, TimeSlice{
			Name:     name,
			Activity: e.activity,
			Hours:    math.Round(float64(e.minutes)/60*10) / 10,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Hours != out[j].Hours {
			return out[i].Hours > out[j].Hours
		}
		return byName[out[i].Name].order < byName[out[j].Name].order
	})
	return out
}

// PriorityBreakdown counts tasks by priority level within the same activity
// filter, excluding N/A. Only non-zero buckets are emitted, High first.
func PriorityBreakdown(s model.Schedule) []PriorityBucket {
	counts := make(map[model.Priority]int)
	for _, day := range s.Week {
		for _, task := range day.Tasks {
			if !countedActivity(task.Activity) {
				continue
			}
			if task.Priority == model.PriorityNone {
				continue
			}
			counts[task.Priority]++
		}
	}

	out := make([]PriorityBucket, 0, 3)
	for _, p := range []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow} {
		if counts[p] > 0 {
			out = append(out, PriorityBucket{Priority: p, Count: counts[p]})
		}
	}
	return out
}

// CompletionRatio reports done vs total tasks for the status line.
func CompletionRatio(s model.Schedule) (done, total int) {
	for _, day := range s.Week {
		for _, task := range day.Tasks {
			total++
			if task.Completed {
				done++
			}
		}
	}
	return done, total
}
