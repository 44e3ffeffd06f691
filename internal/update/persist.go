package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/novarame/weekplan/internal/storage"
)

// Storage mirrors the session; it is never the source of truth while the
// program runs. Write failures surface in the status bar and nothing else.

func (m Model) persistScheduleCmd() tea.Cmd {
	if m.Store == nil {
		return nil
	}
	store := m.Store
	week, ok := m.Session.Current()
	if !ok {
		return func() tea.Msg {
			err := storage.DeleteSchedule(context.Background(), store)
			return PersistDoneMsg{Key: storage.KeySchedule, Err: err}
		}
	}
	return func() tea.Msg {
		err := storage.SaveSchedule(context.Background(), store, week)
		return PersistDoneMsg{Key: storage.KeySchedule, Err: err}
	}
}

func (m Model) persistInputCmd() tea.Cmd {
	if m.Store == nil {
		return nil
	}
	store := m.Store
	in, ok := m.Session.LastInput()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		err := storage.SaveInput(context.Background(), store, in)
		return PersistDoneMsg{Key: storage.KeyInput, Err: err}
	}
}

func (m Model) onPersistDone(msg PersistDoneMsg) Model {
	if msg.Err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save failed (%s): %v", msg.Key, msg.Err), IsError: true}
	}
	return m
}
