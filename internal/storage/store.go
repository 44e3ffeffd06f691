// Package storage is the planner's persistence adapter: a two-key
// pass-through store for the current schedule and the last submitted input.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Well-known record keys.
const (
	KeySchedule = "weekplan_schedule"
	KeyInput    = "weekplan_input"
)

// Store is the injected storage capability. The core reads each key once at
// startup and is otherwise write-only.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
