// Package session holds the planner's in-session state: the active schedule,
// its undo history, the archive of retired weeks, and the bookkeeping that
// keeps overlapping generation requests last-write-wins.
package session

import (
	"github.com/novarame/weekplan/internal/model"
	"github.com/novarame/weekplan/internal/schedule"
)

type State string

const (
	StateNoActiveSchedule State = "no_active_schedule"
	StateActiveSchedule   State = "active_schedule"
)

// Session is an explicit context object passed to every operation. All
// mutations replace the whole schedule value in a single assignment.
type Session struct {
	current   *model.Schedule
	history   *schedule.History
	archive   []model.Schedule
	lastInput *model.UserInputData

	issuedSeq  uint64
	appliedSeq uint64
}

func New() *Session {
	return NewWithHistoryLimit(schedule.DefaultHistoryLimit)
}

func NewWithHistoryLimit(limit int) *Session {
	return &Session{history: schedule.NewHistory(limit)}
}

func (s *Session) State() State {
	if s.current == nil {
		return StateNoActiveSchedule
	}
	return StateActiveSchedule
}

// Current returns a reference copy of the active schedule. Callers must not
// mutate it; all writes go through the session's operations.
func (s *Session) Current() (model.Schedule, bool) {
	if s.current == nil {
		return model.Schedule{}, false
	}
	return *s.current, true
}

func (s *Session) LastInput() (model.UserInputData, bool) {
	if s.lastInput == nil {
		return model.UserInputData{}, false
	}
	return *s.lastInput, true
}

func (s *Session) SetLastInput(in model.UserInputData) {
	copied := in.Clone()
	s.lastInput = &copied
}

func (s *Session) Archive() []model.Schedule { return s.archive }

func (s *Session) HistoryLen() int { return s.history.Len() }

// RestoreSchedule seeds the active schedule from a persisted record without
// touching history or the request sequence. Startup only.
func (s *Session) RestoreSchedule(restored model.Schedule) {
	copied := restored.Clone()
	s.current = &copied
}

// NextRequestSeq tags an outgoing generation request. Sequence numbers are
// monotonically increasing for the life of the session.
func (s *Session) NextRequestSeq() uint64 {
	s.issuedSeq++
	return s.issuedSeq
}

// ApplyGenerated installs a completed generation result: the new schedule is
// reconciled against the current one so user identity, completion, and
// origin survive, and history is cleared. A result whose sequence number is
// not the highest applied so far is discarded and false is returned; a
// discarded or failed request never partially applies.
func (s *Session) ApplyGenerated(seq uint64, generated model.Schedule) bool {
	if seq <= s.appliedSeq {
		return false
	}
	var prior map[string]model.Task
	if s.current != nil {
		prior = schedule.PriorTaskIndex(*s.current)
	}
	merged := schedule.Reconcile(generated, prior)
	s.current = &merged
	s.appliedSeq = seq
	s.history.Clear()
	return true
}

// LockedTasks lists the user-authored tasks of the active schedule, the set
// a regeneration must preserve verbatim.
func (s *Session) LockedTasks() []model.Task {
	if s.current == nil {
		return nil
	}
	return s.current.UserTasks()
}

// apply records the pre-mutation snapshot and swaps in the new value, but
// only when the mutation actually landed. A not_found outcome leaves both
// state and history untouched.
func (s *Session) apply(next model.Schedule, res schedule.Result) schedule.Result {
	if res != schedule.ResultApplied {
		return res
	}
	s.history.Record(*s.current)
	s.current = &next
	return res
}

func (s *Session) Toggle(dayIndex int, taskID string) schedule.Result {
	if s.current == nil {
		return schedule.ResultNotFound
	}
	next, res := schedule.ToggleCompletion(*s.current, dayIndex, taskID)
	return s.apply(next, res)
}

func (s *Session) Add(dayIndex int, task model.Task) schedule.Result {
	if s.current == nil {
		return schedule.ResultNotFound
	}
	next, res := schedule.AddTask(*s.current, dayIndex, task)
	return s.apply(next, res)
}

func (s *Session) Update(dayIndex int, taskID string, patch schedule.TaskPatch) schedule.Result {
	if s.current == nil {
		return schedule.ResultNotFound
	}
	next, res := schedule.UpdateTask(*s.current, dayIndex, taskID, patch)
	return s.apply(next, res)
}

func (s *Session) Delete(dayIndex int, taskID string) schedule.Result {
	if s.current == nil {
		return schedule.ResultNotFound
	}
	next, res := schedule.DeleteTask(*s.current, dayIndex, taskID)
	return s.apply(next, res)
}

// SoftRefresh re-sorts every day by start time, snapshotting first.
func (s *Session) SoftRefresh() bool {
	if s.current == nil {
		return false
	}
	next := schedule.Resort(*s.current)
	s.apply(next, schedule.ResultApplied)
	return true
}

// Undo restores the most recent snapshot. No-op when history is empty.
func (s *Session) Undo() bool {
	if s.current == nil {
		return false
	}
	restored, ok := s.history.Undo(*s.current)
	if !ok {
		return false
	}
	s.current = &restored
	return true
}

// StartNewWeek retires the active schedule to the archive and returns the
// session to NoActiveSchedule. History is cleared, making the transition
// irreversible within the session. Callers confirm with the user first.
func (s *Session) StartNewWeek() bool {
	if s.current == nil {
		return false
	}
	s.archive = append(s.archive, s.current.Clone())
	s.current = nil
	s.history.Clear()
	return true
}

// Reset discards the active schedule without archiving. Callers confirm
// with the user first.
func (s *Session) Reset() {
	s.current = nil
	s.history.Clear()
}
