// Package generate talks to the external schedule generator. The planner
// owns no scheduling logic of its own: prioritization, session lengths,
// breaks, and balancing all happen on the other side of this interface.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/novarame/weekplan/internal/model"
)

var (
	ErrNoContent   = errors.New("generate: no content in response")
	ErrBadSchedule = errors.New("generate: response does not match schedule schema")
)

// Generator produces a 7-day schedule for the given input. Tasks in locked
// must appear verbatim, unmoved, in the output.
type Generator interface {
	Generate(ctx context.Context, in model.UserInputData, locked []model.Task) (model.Schedule, error)
}

// validateGenerated checks the decoded payload against the fixed schema:
// seven days, labelled and dated, every task named with known activity and
// priority values. Task ids are absent at this point; the merge step stamps
// them.
func validateGenerated(s model.Schedule) error {
	if len(s.Week) != model.DaysPerWeek {
		return fmt.Errorf("%w: got %d days", ErrBadSchedule, len(s.Week))
	}
	for i, day := range s.Week {
		if strings.TrimSpace(day.Day) == "" || strings.TrimSpace(day.Date) == "" {
			return fmt.Errorf("%w: day %d missing label or date", ErrBadSchedule, i)
		}
		for j, task := range day.Tasks {
			if strings.TrimSpace(task.Name) == "" {
				return fmt.Errorf("%w: day %d task %d missing name", ErrBadSchedule, i, j)
			}
			if !task.Activity.IsValid() {
				return fmt.Errorf("%w: day %d task %d activity %q", ErrBadSchedule, i, j, task.Activity)
			}
			if !task.Priority.IsValid() {
				return fmt.Errorf("%w: day %d task %d priority %q", ErrBadSchedule, i, j, task.Priority)
			}
		}
	}
	return nil
}
