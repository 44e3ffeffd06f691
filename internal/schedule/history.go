package schedule

import "github.com/novarame/weekplan/internal/model"

// DefaultHistoryLimit bounds the undo stack to the last 20 snapshots.
const DefaultHistoryLimit = 20

// History is a ring-buffer undo stack of whole-schedule snapshots. Each
// snapshot is a fully independent deep copy taken before a mutation applies.
type History struct {
	snapshots []model.Schedule
	limit     int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record pushes a deep copy of s, evicting the oldest snapshot when the
// stack is full.
func (h *History) Record(s model.Schedule) {
	h.snapshots = append(h.snapshots, s.Clone())
	if len(h.snapshots) > h.limit {
		h.snapshots = h.snapshots[len(h.snapshots)-h.limit:]
	}
}

// Undo pops and returns the most recent snapshot. When the stack is empty it
// returns current unchanged and reports false.
func (h *History) Undo(current model.Schedule) (model.Schedule, bool) {
	if len(h.snapshots) == 0 {
		return current, false
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return last, true
}

func (h *History) Len() int { return len(h.snapshots) }

// Clear empties the stack. Called when a new schedule is generated or a new
// week starts; undo across those boundaries is undefined.
func (h *History) Clear() { h.snapshots = nil }
