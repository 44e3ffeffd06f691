package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/novarame/weekplan/internal/generate"
	"github.com/novarame/weekplan/internal/model"
	"github.com/novarame/weekplan/internal/session"
	"github.com/novarame/weekplan/internal/storage"
)

type View string

const (
	ViewSetup     View = "Setup"
	ViewCalendar  View = "Calendar"
	ViewDashboard View = "Dashboard"
	ViewArchive   View = "Archive"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Setup     string
	Calendar  string
	Dashboard string
	Archive   string
	Help      string
	Quit      string
}

// ConfirmAction names the destructive transition awaiting confirmation.
type ConfirmAction string

const (
	ConfirmNone    ConfirmAction = ""
	ConfirmNewWeek ConfirmAction = "newweek"
	ConfirmReset   ConfirmAction = "reset"
)

type CalendarState struct {
	DayIndex   int
	TaskCursor int
	Editing    bool
}

// SetupState mirrors the input form: the three scalar fields plus the
// quick-add collections.
type SetupState struct {
	FieldFocus    int
	FixedEvents   []model.FixedEvent
	Subjects      []model.Subject
	Assignments   []model.Assignment
	PersonalTasks []model.PersonalTask
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type ConfirmState struct {
	Action ConfirmAction
	Title  string
	Body   string
}

type Model struct {
	CurrentView View
	Session     *session.Session
	Generator   generate.Generator
	Store       storage.Store

	Calendar CalendarState
	Setup    SetupState
	Palette  CommandPaletteState
	Confirm  ConfirmState

	Loading     bool
	loadingSeq  uint64
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	Quitting    bool
	LastError   error

	// Bubble components
	weekTable      table.Model
	archiveList    list.Model
	weekStartInput textinput.Model
	sleepStart     textinput.Model
	sleepEnd       textinput.Model
	quickAddInput  textinput.Model
	commandInput   textinput.Model
	editInput      textinput.Model
	genSpinner     spinner.Model
	helpModel      help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// GenerateResultMsg carries one completed generation request. Seq is the
// request's sequence tag; results whose tag is not the newest applied win
// are discarded rather than overwriting fresher state.
type GenerateResultMsg struct {
	Seq      uint64
	Schedule model.Schedule
	Err      error
}

// PersistDoneMsg reports one storage mirror write.
type PersistDoneMsg struct {
	Key string
	Err error
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewSetup,
		Session:     session.New(),
		Keys: GlobalKeyMap{
			Setup:     "1",
			Calendar:  "2",
			Dashboard: "3",
			Archive:   "4",
			Help:      "?",
			Quit:      "q",
		},
	}
	m.initBubbleComponents()
	return m
}

// NewModelWithRuntime wires the generator and store, and restores persisted
// state. Unreadable records were already discarded by the storage layer; a
// non-nil restore error is shown once in the status line.
func NewModelWithRuntime(cfg RuntimeConfig, gen generate.Generator, store storage.Store, restored *model.Schedule, lastInput *model.UserInputData, restoreErr error) Model {
	m := NewModel()
	if cfg.HistoryLimit > 0 {
		m.Session = session.NewWithHistoryLimit(cfg.HistoryLimit)
	}
	m.Generator = gen
	m.Store = store
	if lastInput != nil {
		m.Session.SetLastInput(*lastInput)
		m.populateSetupFromInput(*lastInput)
	}
	if restored != nil {
		m.Session.RestoreSchedule(*restored)
		m.CurrentView = ViewCalendar
	}
	if restoreErr != nil {
		m.Status = StatusBar{Text: restoreErr.Error(), IsError: true}
	}
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "Day", Width: 10},
		{Title: "Date", Width: 12},
		{Title: "Tasks", Width: 6},
		{Title: "Done", Width: 6},
	}
	m.weekTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(9))

	m.archiveList = list.New([]list.Item{}, list.NewDefaultDelegate(), 50, 12)
	m.archiveList.Title = "Archived Weeks"
	m.archiveList.SetShowHelp(false)
	m.archiveList.SetFilteringEnabled(false)

	m.weekStartInput = textinput.New()
	m.weekStartInput.Prompt = ""
	m.weekStartInput.Placeholder = "YYYY-MM-DD"
	m.weekStartInput.CharLimit = 10
	m.weekStartInput.Width = 12
	m.weekStartInput.Focus()

	m.sleepStart = textinput.New()
	m.sleepStart.Prompt = ""
	m.sleepStart.Placeholder = "23:00"
	m.sleepStart.CharLimit = 5
	m.sleepStart.Width = 7

	m.sleepEnd = textinput.New()
	m.sleepEnd.Prompt = ""
	m.sleepEnd.Placeholder = "07:00"
	m.sleepEnd.CharLimit = 5
	m.sleepEnd.Width = 7

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.editInput = textinput.New()
	m.editInput.Prompt = "edit> "
	m.editInput.CharLimit = 256
	m.editInput.Width = 48

	m.genSpinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.helpModel = help.New()
}

type archiveItem struct {
	title       string
	description string
}

func (i archiveItem) FilterValue() string { return i.title }
func (i archiveItem) Title() string       { return i.title }
func (i archiveItem) Description() string { return i.description }
