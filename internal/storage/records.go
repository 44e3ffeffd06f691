package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/novarame/weekplan/internal/model"
)

// SaveSchedule mirrors the current schedule to the store.
func SaveSchedule(ctx context.Context, store Store, s model.Schedule) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	return store.Save(ctx, KeySchedule, payload)
}

// LoadSchedule reads the persisted schedule. A missing record yields
// ok=false with no error. An unreadable record is discarded so the next
// startup sees empty state; the decode error is returned alongside ok=false
// so the caller can mention it without treating it as fatal.
func LoadSchedule(ctx context.Context, store Store) (model.Schedule, bool, error) {
	raw, err := store.Load(ctx, KeySchedule)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Schedule{}, false, nil
		}
		return model.Schedule{}, false, err
	}
	var s model.Schedule
	if err := json.Unmarshal(raw, &s); err != nil {
		_ = store.Delete(ctx, KeySchedule)
		return model.Schedule{}, false, fmt.Errorf("discarded unreadable schedule record: %w", err)
	}
	// Decodable JSON is not enough: a record missing days or task fields
	// would blow up the calendar, so it gets the same discard treatment.
	if err := s.Validate(); err != nil {
		_ = store.Delete(ctx, KeySchedule)
		return model.Schedule{}, false, fmt.Errorf("discarded invalid schedule record: %w", err)
	}
	return s, true, nil
}

// DeleteSchedule clears the active-schedule record; required when leaving
// the active state via start-new-week.
func DeleteSchedule(ctx context.Context, store Store) error {
	return store.Delete(ctx, KeySchedule)
}

// SaveInput mirrors the last submitted planning input.
func SaveInput(ctx context.Context, store Store, in model.UserInputData) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal input: %w", err)
	}
	return store.Save(ctx, KeyInput, payload)
}

// LoadInput reads the persisted planning input with the same recovery
// behavior as LoadSchedule.
func LoadInput(ctx context.Context, store Store) (model.UserInputData, bool, error) {
	raw, err := store.Load(ctx, KeyInput)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.UserInputData{}, false, nil
		}
		return model.UserInputData{}, false, err
	}
	var in model.UserInputData
	if err := json.Unmarshal(raw, &in); err != nil {
		_ = store.Delete(ctx, KeyInput)
		return model.UserInputData{}, false, fmt.Errorf("discarded unreadable input record: %w", err)
	}
	return in, true, nil
}
