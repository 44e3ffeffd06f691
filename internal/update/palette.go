package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/novarame/weekplan/internal/commands"
	"github.com/novarame/weekplan/internal/model"
	"github.com/novarame/weekplan/internal/schedule"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := m.Palette.Input
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var teaCmd tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Generate: func() (commands.Result, error) {
			var next Model
			next, teaCmd = m.startGeneration(false)
			m = next
			return commands.Result{Message: m.Status.Text}, nil
		},
		Regen: func() (commands.Result, error) {
			if _, ok := m.Session.Current(); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no active schedule to regenerate"}
			}
			var next Model
			next, teaCmd = m.startGeneration(true)
			m = next
			return commands.Result{Message: m.Status.Text}, nil
		},
		Undo: func() (commands.Result, error) {
			if !m.Session.Undo() {
				return commands.Result{Message: "nothing to undo"}, nil
			}
			teaCmd = m.persistScheduleCmd()
			return commands.Result{Message: "undid last change"}, nil
		},
		Refresh: func() (commands.Result, error) {
			if !m.Session.SoftRefresh() {
				return commands.Result{Message: "no active schedule"}, nil
			}
			teaCmd = m.persistScheduleCmd()
			return commands.Result{Message: "schedule re-sorted"}, nil
		},
		NewWeek: func() (commands.Result, error) {
			if _, ok := m.Session.Current(); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no active schedule to archive"}
			}
			m.Confirm = ConfirmState{
				Action: ConfirmNewWeek,
				Title:  "Start a new week?",
				Body:   "The current schedule moves to the archive.\nUndo history is cleared.",
			}
			return commands.Result{Message: "confirm to archive this week"}, nil
		},
		Reset: func() (commands.Result, error) {
			m.Confirm = ConfirmState{
				Action: ConfirmReset,
				Title:  "Discard this schedule?",
				Body:   "The current schedule is thrown away without archiving.",
			}
			return commands.Result{Message: "confirm to discard the schedule"}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			switch s.Panel {
			case "setup":
				m.CurrentView = ViewSetup
			case "calendar":
				m.CurrentView = ViewCalendar
			case "dashboard":
				m.CurrentView = ViewDashboard
			case "archive":
				m.CurrentView = ViewArchive
			}
			return commands.Result{Message: fmt.Sprintf("showing %s", s.Panel)}, nil
		},
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if _, ok := m.Session.Current(); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no active schedule; generate one first"}
			}
			task := model.Task{
				TimeStart: a.TimeStart,
				TimeEnd:   a.TimeEnd,
				Name:      a.Name,
				Activity:  model.ActivityPersonal,
				Priority:  model.PriorityNone,
			}
			if m.Session.Add(a.DayIndex, task) != schedule.ResultApplied {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("day %d is out of range", a.DayIndex+1)}
			}
			m.CurrentView = ViewCalendar
			m.Calendar.DayIndex = a.DayIndex
			teaCmd = m.persistScheduleCmd()
			return commands.Result{Message: fmt.Sprintf("added: %s", a.Name)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, teaCmd
}
