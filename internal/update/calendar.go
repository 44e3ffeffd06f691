package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/novarame/weekplan/internal/schedule"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Calendar.Editing {
		return m.handleEditKey(msg)
	}

	week, ok := m.Session.Current()
	if !ok || len(week.Week) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "h", "left":
		if m.Calendar.DayIndex > 0 {
			m.Calendar.DayIndex--
			m.Calendar.TaskCursor = 0
		}
	case "l", "right":
		if m.Calendar.DayIndex < len(week.Week)-1 {
			m.Calendar.DayIndex++
			m.Calendar.TaskCursor = 0
		}
	case "k", "up":
		if m.Calendar.TaskCursor > 0 {
			m.Calendar.TaskCursor--
		}
	case "j", "down":
		if m.Calendar.TaskCursor < len(week.Week[m.Calendar.DayIndex].Tasks)-1 {
			m.Calendar.TaskCursor++
		}
	case "x", " ":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if m.Session.Toggle(m.Calendar.DayIndex, task.ID) == schedule.ResultApplied {
			m.Status = StatusBar{Text: fmt.Sprintf("toggled: %s", task.Name), IsError: false}
			return m, m.persistScheduleCmd()
		}
		m.Status = StatusBar{Text: "task not found", IsError: true}
	case "d":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if m.Session.Delete(m.Calendar.DayIndex, task.ID) == schedule.ResultApplied {
			m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", task.Name), IsError: false}
			return m, m.persistScheduleCmd()
		}
		m.Status = StatusBar{Text: "task not found", IsError: true}
	case "e":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.Calendar.Editing = true
		m.editInput.SetValue(fmt.Sprintf("%s-%s %s", task.TimeStart, task.TimeEnd, task.Name))
		m.editInput.Focus()
		m.Status = StatusBar{Text: "editing task (enter to save, esc to cancel)", IsError: false}
	case "u":
		if m.Session.Undo() {
			m.Status = StatusBar{Text: "undid last change", IsError: false}
			return m, m.persistScheduleCmd()
		}
		m.Status = StatusBar{Text: "nothing to undo", IsError: false}
	case "r":
		if m.Session.SoftRefresh() {
			m.Status = StatusBar{Text: "schedule re-sorted", IsError: false}
			return m, m.persistScheduleCmd()
		}
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Calendar.Editing = false
		m.editInput.Blur()
		m.Status = StatusBar{Text: "edit cancelled", IsError: false}
		return m, nil
	case "enter":
		line := m.editInput.Value()
		m.Calendar.Editing = false
		m.editInput.Blur()
		return m.applyEditLine(line)
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// applyEditLine parses "HH:MM-HH:MM Name" and patches the selected task.
func (m Model) applyEditLine(line string) (Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) < 2 {
		m.Status = StatusBar{Text: "edit line must look like 09:00-10:00 Task name", IsError: true}
		return m, nil
	}
	start, end, ok := splitTimeRange(parts[0])
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("time range must look like 09:00-10:00, got %q", parts[0]), IsError: true}
		return m, nil
	}
	name := strings.Join(parts[1:], " ")
	patch := schedule.TaskPatch{Name: &name, TimeStart: &start, TimeEnd: &end}
	if m.Session.Update(m.Calendar.DayIndex, task.ID, patch) != schedule.ResultApplied {
		m.Status = StatusBar{Text: "task not found", IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: fmt.Sprintf("updated: %s", name), IsError: false}
	return m, m.persistScheduleCmd()
}
