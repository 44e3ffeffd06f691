package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/novarame/weekplan/internal/model"
)

const (
	fieldWeekStart = iota
	fieldSleepStart
	fieldSleepEnd
	fieldQuickAdd
	fieldCount
)

func (m Model) handleSetupKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusSetupField((m.Setup.FieldFocus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.focusSetupField((m.Setup.FieldFocus + fieldCount - 1) % fieldCount)
		return m, nil
	case "enter":
		if m.Setup.FieldFocus == fieldQuickAdd {
			m.applyQuickAdd(m.quickAddInput.Value())
			m.quickAddInput.SetValue("")
			return m, nil
		}
		m.focusSetupField((m.Setup.FieldFocus + 1) % fieldCount)
		return m, nil
	case "ctrl+g":
		return m.startGeneration(false)
	}

	var cmd tea.Cmd
	switch m.Setup.FieldFocus {
	case fieldWeekStart:
		m.weekStartInput, cmd = m.weekStartInput.Update(msg)
	case fieldSleepStart:
		m.sleepStart, cmd = m.sleepStart.Update(msg)
	case fieldSleepEnd:
		m.sleepEnd, cmd = m.sleepEnd.Update(msg)
	case fieldQuickAdd:
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusSetupField(idx int) {
	m.Setup.FieldFocus = idx
	m.weekStartInput.Blur()
	m.sleepStart.Blur()
	m.sleepEnd.Blur()
	m.quickAddInput.Blur()
	switch idx {
	case fieldWeekStart:
		m.weekStartInput.Focus()
	case fieldSleepStart:
		m.sleepStart.Focus()
	case fieldSleepEnd:
		m.sleepEnd.Focus()
	case fieldQuickAdd:
		m.quickAddInput.Focus()
	}
}

// applyQuickAdd parses one entry line into the matching collection. Bad
// lines land in the status bar, never in the form state.
func (m *Model) applyQuickAdd(line string) {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return
	}
	var err error
	switch strings.ToLower(parts[0]) {
	case "fixed":
		err = m.quickAddFixed(parts[1:])
	case "subject":
		err = m.quickAddSubject(parts[1:])
	case "assignment":
		err = m.quickAddAssignment(parts[1:])
	case "personal":
		err = m.quickAddPersonal(parts[1:])
	case "drop":
		err = m.quickDrop(parts[1:])
	default:
		err = fmt.Errorf("unknown entry kind %q", parts[0])
	}
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.Status = StatusBar{Text: "setup updated", IsError: false}
}

func (m *Model) quickAddFixed(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("fixed needs: <Day> <start>-<end> <title>")
	}
	start, end, ok := splitTimeRange(args[1])
	if !ok {
		return fmt.Errorf("time range must look like 09:00-10:30, got %q", args[1])
	}
	m.Setup.FixedEvents = append(m.Setup.FixedEvents, model.FixedEvent{
		ID:        model.NewID("fx"),
		Day:       titleCaseDay(args[0]),
		StartTime: start,
		EndTime:   end,
		Title:     strings.Join(args[2:], " "),
	})
	return nil
}

func (m *Model) quickAddSubject(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("subject needs: <priority> <hours> <name>")
	}
	prio, err := parsePriority(args[0])
	if err != nil {
		return err
	}
	hours, err := strconv.ParseFloat(args[1], 64)
	if err != nil || hours <= 0 {
		return fmt.Errorf("hours must be a positive number, got %q", args[1])
	}
	m.Setup.Subjects = append(m.Setup.Subjects, model.Subject{
		ID:          model.NewID("sub"),
		Name:        strings.Join(args[2:], " "),
		Priority:    prio,
		HoursNeeded: hours,
	})
	return nil
}

func (m *Model) quickAddAssignment(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("assignment needs: <deadline> <hours> <name>")
	}
	hours, err := strconv.ParseFloat(args[1], 64)
	if err != nil || hours <= 0 {
		return fmt.Errorf("hours must be a positive number, got %q", args[1])
	}
	a := model.Assignment{
		ID:             model.NewID("asg"),
		Name:           strings.Join(args[2:], " "),
		Deadline:       args[0],
		EstimatedHours: hours,
	}
	// Attach to the most recently added subject when one exists.
	if n := len(m.Setup.Subjects); n > 0 {
		a.SubjectID = m.Setup.Subjects[n-1].ID
	}
	m.Setup.Assignments = append(m.Setup.Assignments, a)
	return nil
}

func (m *Model) quickAddPersonal(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("personal needs: <priority> <hours> <name>")
	}
	prio, err := parsePriority(args[0])
	if err != nil {
		return err
	}
	hours, err := strconv.ParseFloat(args[1], 64)
	if err != nil || hours <= 0 {
		return fmt.Errorf("hours must be a positive number, got %q", args[1])
	}
	m.Setup.PersonalTasks = append(m.Setup.PersonalTasks, model.PersonalTask{
		ID:             model.NewID("per"),
		Name:           strings.Join(args[2:], " "),
		EstimatedHours: hours,
		Priority:       prio,
	})
	return nil
}

func (m *Model) quickDrop(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("drop needs: <fixed|subject|assignment|personal> <n>")
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil || idx < 1 {
		return fmt.Errorf("entry number must be 1 or higher, got %q", args[1])
	}
	i := idx - 1
	switch strings.ToLower(args[0]) {
	case "fixed":
		if i >= len(m.Setup.FixedEvents) {
			return fmt.Errorf("no fixed commitment %d", idx)
		}
		m.Setup.FixedEvents = append(m.Setup.FixedEvents[:i], m.Setup.FixedEvents[i+1:]...)
	case "subject":
		if i >= len(m.Setup.Subjects) {
			return fmt.Errorf("no subject %d", idx)
		}
		m.Setup.Subjects = append(m.Setup.Subjects[:i], m.Setup.Subjects[i+1:]...)
	case "assignment":
		if i >= len(m.Setup.Assignments) {
			return fmt.Errorf("no assignment %d", idx)
		}
		m.Setup.Assignments = append(m.Setup.Assignments[:i], m.Setup.Assignments[i+1:]...)
	case "personal":
		if i >= len(m.Setup.PersonalTasks) {
			return fmt.Errorf("no personal task %d", idx)
		}
		m.Setup.PersonalTasks = append(m.Setup.PersonalTasks[:i], m.Setup.PersonalTasks[i+1:]...)
	default:
		return fmt.Errorf("unknown entry kind %q", args[0])
	}
	return nil
}

// collectInput assembles the planning request from the form.
func (m Model) collectInput() (model.UserInputData, error) {
	in := model.UserInputData{
		WeekStartDate: strings.TrimSpace(m.weekStartInput.Value()),
		SleepStart:    strings.TrimSpace(m.sleepStart.Value()),
		SleepEnd:      strings.TrimSpace(m.sleepEnd.Value()),
		FixedEvents:   append([]model.FixedEvent(nil), m.Setup.FixedEvents...),
		Subjects:      append([]model.Subject(nil), m.Setup.Subjects...),
		Assignments:   append([]model.Assignment(nil), m.Setup.Assignments...),
		PersonalTasks: append([]model.PersonalTask(nil), m.Setup.PersonalTasks...),
	}
	if in.SleepStart == "" {
		in.SleepStart = "23:00"
	}
	if in.SleepEnd == "" {
		in.SleepEnd = "07:00"
	}
	if err := in.Validate(); err != nil {
		return model.UserInputData{}, err
	}
	return in, nil
}

func (m *Model) populateSetupFromInput(in model.UserInputData) {
	m.weekStartInput.SetValue(in.WeekStartDate)
	m.sleepStart.SetValue(in.SleepStart)
	m.sleepEnd.SetValue(in.SleepEnd)
	m.Setup.FixedEvents = append([]model.FixedEvent(nil), in.FixedEvents...)
	m.Setup.Subjects = append([]model.Subject(nil), in.Subjects...)
	m.Setup.Assignments = append([]model.Assignment(nil), in.Assignments...)
	m.Setup.PersonalTasks = append([]model.PersonalTask(nil), in.PersonalTasks...)
}

func splitTimeRange(raw string) (start, end string, ok bool) {
	span := strings.SplitN(raw, "-", 2)
	if len(span) != 2 || span[0] == "" || span[1] == "" {
		return "", "", false
	}
	return span[0], span[1], true
}

func parsePriority(raw string) (model.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return model.PriorityHigh, nil
	case "medium":
		return model.PriorityMedium, nil
	case "low":
		return model.PriorityLow, nil
	default:
		return "", fmt.Errorf("priority must be High, Medium, or Low, got %q", raw)
	}
}

func titleCaseDay(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return raw
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
