package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/novarame/weekplan/internal/generate"
	"github.com/novarame/weekplan/internal/model"
)

// startGeneration collects the form, tags a request sequence, and fires the
// generator off the update loop. With regen set, the current schedule's
// user-authored tasks ride along as the locked set.
func (m Model) startGeneration(regen bool) (Model, tea.Cmd) {
	if m.Generator == nil {
		m.Status = StatusBar{Text: "generator not configured (set WEEKPLAN_GEMINI_API_KEY)", IsError: true}
		return m, nil
	}
	if m.Loading {
		m.Status = StatusBar{Text: "generation already in progress", IsError: false}
		return m, nil
	}

	in, err := m.collectInput()
	if err != nil {
		if prev, ok := m.Session.LastInput(); regen && ok {
			in = prev
		} else {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			m.CurrentView = ViewSetup
			return m, nil
		}
	}

	var locked []model.Task
	if regen {
		locked = m.Session.LockedTasks()
	}

	seq := m.Session.NextRequestSeq()
	m.Session.SetLastInput(in)
	m.Loading = true
	m.loadingSeq = seq
	m.Status = StatusBar{Text: "generating schedule...", IsError: false}
	return m, tea.Batch(m.genSpinner.Tick, generateCmd(m.Generator, in, locked, seq), m.persistInputCmd())
}

func generateCmd(gen generate.Generator, in model.UserInputData, locked []model.Task, seq uint64) tea.Cmd {
	return func() tea.Msg {
		week, err := gen.Generate(context.Background(), in, locked)
		return GenerateResultMsg{Seq: seq, Schedule: week, Err: err}
	}
}

func (m Model) onGenerateResult(msg GenerateResultMsg) (Model, tea.Cmd) {
	if msg.Seq == m.loadingSeq {
		m.Loading = false
	}
	if msg.Err != nil {
		m.LastError = msg.Err
		m.Status = StatusBar{Text: fmt.Sprintf("generation failed: %v", msg.Err), IsError: true}
		return m, nil
	}
	if !m.Session.ApplyGenerated(msg.Seq, msg.Schedule) {
		m.Status = StatusBar{Text: "stale generation result discarded", IsError: false}
		return m, nil
	}
	m.CurrentView = ViewCalendar
	m.Calendar = CalendarState{}
	m.Status = StatusBar{Text: "schedule ready", IsError: false}
	return m, m.persistScheduleCmd()
}
