package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/novarame/weekplan/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

// Update delegates to update and re-derives the bubble component data from
// whatever model is actually returned. The sync must run on the outgoing
// value: a deferred call on the receiver would mutate a copy the caller
// never sees.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureCalendarState()

		if m.Confirm.Action != ConfirmNone {
			return m.handleConfirmKey(typed)
		}
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}
		if m.Calendar.Editing && m.CurrentView == ViewCalendar {
			return m.handleCalendarKey(typed)
		}

		keyStr := typed.String()

		// Setup owns most printable keys while a field is focused; only
		// the escape hatches stay global.
		if m.CurrentView == ViewSetup {
			switch keyStr {
			case "ctrl+c", "/":
			case "esc":
				if _, ok := m.Session.Current(); ok {
					m.CurrentView = ViewCalendar
				}
				return m, nil
			default:
				return m.handleSetupKey(typed)
			}
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Setup:
			m.CurrentView = ViewSetup
			m.focusSetupField(fieldWeekStart)
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			return m, nil
		case m.Keys.Archive:
			m.CurrentView = ViewArchive
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		if m.CurrentView == ViewCalendar {
			return m.handleCalendarKey(typed)
		}
		if m.CurrentView == ViewArchive {
			var cmd tea.Cmd
			m.archiveList, cmd = m.archiveList.Update(typed)
			return m, cmd
		}
	case spinner.TickMsg:
		if m.Loading {
			var cmd tea.Cmd
			m.genSpinner, cmd = m.genSpinner.Update(typed)
			return m, cmd
		}
	case GenerateResultMsg:
		return m.onGenerateResult(typed)
	case PersistDoneMsg:
		return m.onPersistDone(typed), nil
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewSetup:
		leftPane = m.renderSetupView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderTaskDetailPane() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewDashboard:
		leftPane = m.renderDashboardView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewArchive:
		leftPane = m.renderArchiveView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	}

	modal := ""
	if m.Confirm.Action != ConfirmNone {
		modal = views.RenderConfirm(views.ConfirmData{Title: m.Confirm.Title, Body: m.Confirm.Body})
	}

	header := fmt.Sprintf("weekplan | view: %s | state: %s", m.CurrentView, m.Session.State())
	if m.Loading {
		header += " | " + m.genSpinner.View() + " generating"
	}

	return views.RenderApp(views.AppData{
		Header:     header,
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer:     fmt.Sprintf("keys: %s setup | %s cal | %s dash | %s archive | / cmd | %s help | %s quit", m.Keys.Setup, m.Keys.Calendar, m.Keys.Dashboard, m.Keys.Archive, m.Keys.Help, m.Keys.Quit),
		Modal:      modal,
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewSetup, ViewCalendar, ViewDashboard, ViewArchive:
		return true
	default:
		return false
	}
}
