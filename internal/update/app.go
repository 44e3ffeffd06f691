package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/novarame/weekplan/internal/insights"
	"github.com/novarame/weekplan/internal/model"
	"github.com/novarame/weekplan/internal/views"
)

func (m *Model) ensureCalendarState() {
	week, ok := m.Session.Current()
	if !ok || len(week.Week) == 0 {
		m.Calendar = CalendarState{}
		return
	}
	if m.Calendar.DayIndex < 0 {
		m.Calendar.DayIndex = 0
	}
	if m.Calendar.DayIndex >= len(week.Week) {
		m.Calendar.DayIndex = len(week.Week) - 1
	}
	tasks := week.Week[m.Calendar.DayIndex].Tasks
	if m.Calendar.TaskCursor < 0 {
		m.Calendar.TaskCursor = 0
	}
	if m.Calendar.TaskCursor >= len(tasks) && len(tasks) > 0 {
		m.Calendar.TaskCursor = len(tasks) - 1
	}
}

func (m Model) selectedTask() (model.Task, bool) {
	week, ok := m.Session.Current()
	if !ok {
		return model.Task{}, false
	}
	if m.Calendar.DayIndex < 0 || m.Calendar.DayIndex >= len(week.Week) {
		return model.Task{}, false
	}
	tasks := week.Week[m.Calendar.DayIndex].Tasks
	if m.Calendar.TaskCursor < 0 || m.Calendar.TaskCursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Calendar.TaskCursor], true
}

func (m *Model) syncBubbleData() {
	rows := []table.Row{}
	if week, ok := m.Session.Current(); ok {
		for _, day := range week.Week {
			done := 0
			for _, t := range day.Tasks {
				if t.Completed {
					done++
				}
			}
			rows = append(rows, table.Row{
				day.Day,
				day.Date,
				fmt.Sprintf("%d", len(day.Tasks)),
				fmt.Sprintf("%d", done),
			})
		}
	}
	m.weekTable.SetRows(rows)
	if len(rows) > 0 && m.Calendar.DayIndex < len(rows) {
		m.weekTable.SetCursor(m.Calendar.DayIndex)
	}

	archived := m.Session.Archive()
	items := make([]list.Item, 0, len(archived))
	for i, week := range archived {
		label := fmt.Sprintf("Week %d", i+1)
		if len(week.Week) > 0 && week.Week[0].Date != "" {
			label = fmt.Sprintf("Week of %s", week.Week[0].Date)
		}
		done, total := insights.CompletionRatio(week)
		items = append(items, archiveItem{
			title:       label,
			description: fmt.Sprintf("%d tasks, %d done", total, done),
		})
	}
	m.archiveList.SetItems(items)
}

func (m Model) renderSetupView() string {
	fields := []views.SetupFieldData{
		{Label: "Week start", View: m.weekStartInput.View(), Focused: m.Setup.FieldFocus == fieldWeekStart},
		{Label: "Sleep from", View: m.sleepStart.View(), Focused: m.Setup.FieldFocus == fieldSleepStart},
		{Label: "Sleep until", View: m.sleepEnd.View(), Focused: m.Setup.FieldFocus == fieldSleepEnd},
	}
	fixed := make([]string, 0, len(m.Setup.FixedEvents))
	for _, ev := range m.Setup.FixedEvents {
		fixed = append(fixed, fmt.Sprintf("%s %s-%s %s", ev.Day, ev.StartTime, ev.EndTime, ev.Title))
	}
	subjects := make([]string, 0, len(m.Setup.Subjects))
	for _, s := range m.Setup.Subjects {
		subjects = append(subjects, fmt.Sprintf("%s (%s, %gh/wk)", s.Name, s.Priority, s.HoursNeeded))
	}
	assignments := make([]string, 0, len(m.Setup.Assignments))
	for _, a := range m.Setup.Assignments {
		assignments = append(assignments, fmt.Sprintf("%s due %s (%gh)", a.Name, a.Deadline, a.EstimatedHours))
	}
	personal := make([]string, 0, len(m.Setup.PersonalTasks))
	for _, p := range m.Setup.PersonalTasks {
		personal = append(personal, fmt.Sprintf("%s (%s, %gh)", p.Name, p.Priority, p.EstimatedHours))
	}
	return views.RenderSetupPanel(views.SetupPanelData{
		Fields:       fields,
		FixedEvents:  fixed,
		Subjects:     subjects,
		Assignments:  assignments,
		Personal:     personal,
		QuickAddView: m.quickAddInput.View(),
		QuickAddHint: "fixed <Day> <start>-<end> <title> | subject <prio> <hours> <name> | assignment <due> <hours> <name> | personal <prio> <hours> <name> | drop <kind> <n>",
		Generating:   m.Loading,
		SpinnerView:  m.genSpinner.View(),
	})
}

func (m Model) renderCalendarView() string {
	week, ok := m.Session.Current()
	if !ok || len(week.Week) == 0 {
		return "No active schedule.\nFill in the Setup form and run /generate."
	}
	day := week.Week[m.Calendar.DayIndex]
	tasks := make([]views.CalendarTaskData, 0, len(day.Tasks))
	for i, t := range day.Tasks {
		tasks = append(tasks, views.CalendarTaskData{
			ID:          t.ID,
			TimeStart:   t.TimeStart,
			TimeEnd:     t.TimeEnd,
			Name:        t.Name,
			Activity:    string(t.Activity),
			Priority:    string(t.Priority),
			Notes:       t.Notes,
			Completed:   t.Completed,
			AIGenerated: t.AIGenerated,
			Selected:    i == m.Calendar.TaskCursor,
		})
	}
	out := views.RenderCalendarPanel(views.CalendarPanelData{
		WeekTableView: m.weekTable.View(),
		DayLabel:      day.Day,
		DayDate:       day.Date,
		Tasks:         tasks,
	})
	if m.Calendar.Editing {
		out += "\n" + m.editInput.View()
	}
	return out
}

func (m Model) renderTaskDetailPane() string {
	t, ok := m.selectedTask()
	if !ok {
		return ""
	}
	return views.RenderTaskDetail(views.TaskDetailData{
		Name:        t.Name,
		TimeStart:   t.TimeStart,
		TimeEnd:     t.TimeEnd,
		Duration:    t.DurationMinutes,
		Activity:    string(t.Activity),
		Priority:    string(t.Priority),
		Notes:       t.Notes,
		AIGenerated: t.AIGenerated,
	})
}

func (m Model) renderDashboardView() string {
	week, ok := m.Session.Current()
	if !ok {
		return "No active schedule to summarize."
	}
	slices := insights.TimeDistribution(week)
	bars := make([]views.DistributionBarData, 0, len(slices))
	for _, s := range slices {
		bars = append(bars, views.DistributionBarData{Name: s.Name, Activity: string(s.Activity), Hours: s.Hours})
	}
	buckets := make([]views.PriorityBucketData, 0, 3)
	for _, b := range insights.PriorityBreakdown(week) {
		buckets = append(buckets, views.PriorityBucketData{Priority: string(b.Priority), Count: b.Count})
	}
	done, total := insights.CompletionRatio(week)
	return views.RenderDashboardPanel(views.DashboardPanelData{
		Bars:        bars,
		Buckets:     buckets,
		SummaryView: views.RenderMarkdown(summaryMarkdown(week)),
		Done:        done,
		Total:       total,
	})
}

func summaryMarkdown(week model.Schedule) string {
	s := week.Summary
	if s.TotalStudyHours == "" && s.HighPriorityFocus == "" && s.LifeBalanceScore == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Week Review\n\n")
	if s.TotalStudyHours != "" {
		fmt.Fprintf(&b, "- Study hours planned: **%s**\n", s.TotalStudyHours)
	}
	if s.DeadlinesMet != "" {
		fmt.Fprintf(&b, "- Deadlines: %s\n", s.DeadlinesMet)
	}
	if s.HighPriorityFocus != "" {
		fmt.Fprintf(&b, "- Focus: %s\n", s.HighPriorityFocus)
	}
	if s.LifeBalanceScore != "" {
		fmt.Fprintf(&b, "- Balance: %s\n", s.LifeBalanceScore)
	}
	return b.String()
}

func (m Model) renderArchiveView() string {
	return views.RenderArchivePanel(views.ArchivePanelData{
		ListView: m.archiveList.View(),
		Count:    len(m.Session.Archive()),
	})
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return "command:\n" + m.commandInput.View() + "\n"
}
