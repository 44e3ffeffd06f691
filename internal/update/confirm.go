package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

// The two destructive transitions (archive, discard) never run directly;
// they park in Confirm and wait for an explicit y.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		action := m.Confirm.Action
		m.Confirm = ConfirmState{}
		return m.runConfirmedAction(action)
	case "n", "N", "esc":
		m.Confirm = ConfirmState{}
		m.Status = StatusBar{Text: "cancelled", IsError: false}
		return m, nil
	}
	return m, nil
}

func (m Model) runConfirmedAction(action ConfirmAction) (Model, tea.Cmd) {
	switch action {
	case ConfirmNewWeek:
		if !m.Session.StartNewWeek() {
			m.Status = StatusBar{Text: "no active schedule to archive", IsError: true}
			return m, nil
		}
		m.CurrentView = ViewSetup
		m.Calendar = CalendarState{}
		m.Status = StatusBar{Text: "week archived; plan the next one", IsError: false}
		return m, m.persistScheduleCmd()
	case ConfirmReset:
		m.Session.Reset()
		m.CurrentView = ViewSetup
		m.Calendar = CalendarState{}
		m.Status = StatusBar{Text: "schedule discarded", IsError: false}
		return m, m.persistScheduleCmd()
	}
	return m, nil
}
