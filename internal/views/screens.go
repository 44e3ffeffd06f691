package views

import (
	"fmt"
	"strings"
)

type CalendarTaskData struct {
	ID          string
	TimeStart   string
	TimeEnd     string
	Name        string
	Activity    string
	Priority    string
	Notes       string
	Completed   bool
	AIGenerated bool
	Selected    bool
}

type CalendarPanelData struct {
	WeekTableView string
	DayLabel      string
	DayDate       string
	Tasks         []CalendarTaskData
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(data.WeekTableView)
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", data.DayLabel, data.DayDate)
	if len(data.Tasks) == 0 {
		b.WriteString("(no tasks)\n")
		return b.String()
	}
	for _, t := range data.Tasks {
		line := fmt.Sprintf("%s-%s  %-8s %s", t.TimeStart, t.TimeEnd, t.Activity, t.Name)
		if t.Priority != "" && t.Priority != "N/A" {
			line += fmt.Sprintf(" [%s]", t.Priority)
		}
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
			line = doneStyle.Render(line)
		}
		if t.AIGenerated {
			line += aiStyle.Render(" *")
		}
		cursor := "  "
		if t.Selected {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, line)
	}
	return b.String()
}

type TaskDetailData struct {
	Name        string
	TimeStart   string
	TimeEnd     string
	Duration    int
	Activity    string
	Priority    string
	Notes       string
	AIGenerated bool
}

func RenderTaskDetail(data TaskDetailData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "task: %s\n", data.Name)
	fmt.Fprintf(&b, "time: %s-%s (%d min)\n", data.TimeStart, data.TimeEnd, data.Duration)
	fmt.Fprintf(&b, "type: %s | priority: %s\n", data.Activity, data.Priority)
	origin := "user"
	if data.AIGenerated {
		origin = "suggested"
	}
	fmt.Fprintf(&b, "origin: %s\n", origin)
	if data.Notes != "" {
		fmt.Fprintf(&b, "notes: %s\n", data.Notes)
	}
	return b.String()
}

type DistributionBarData struct {
	Name     string
	Activity string
	Hours    float64
}

type PriorityBucketData struct {
	Priority string
	Count    int
}

type DashboardPanelData struct {
	Bars        []DistributionBarData
	Buckets     []PriorityBucketData
	SummaryView string
	Done        int
	Total       int
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("Weekly Time Distribution\n")
	if len(data.Bars) == 0 {
		b.WriteString("(no data)\n")
	}
	maxHours := 0.0
	for _, bar := range data.Bars {
		if bar.Hours > maxHours {
			maxHours = bar.Hours
		}
	}
	for _, bar := range data.Bars {
		width := 0
		if maxHours > 0 {
			width = int(bar.Hours / maxHours * 24)
		}
		if width < 1 {
			width = 1
		}
		fmt.Fprintf(&b, "%-18s %s %.1f h (%s)\n", truncate(bar.Name, 18), strings.Repeat("█", width), bar.Hours, bar.Activity)
	}

	b.WriteString("\nPriority Breakdown\n")
	if len(data.Buckets) == 0 {
		b.WriteString("(no priority data)\n")
	}
	for _, bucket := range data.Buckets {
		fmt.Fprintf(&b, "%-8s %s %d\n", bucket.Priority, strings.Repeat("●", bucket.Count), bucket.Count)
	}

	fmt.Fprintf(&b, "\ncompleted: %d/%d\n", data.Done, data.Total)
	if data.SummaryView != "" {
		b.WriteString("\n")
		b.WriteString(data.SummaryView)
		b.WriteString("\n")
	}
	return b.String()
}

type ArchivePanelData struct {
	ListView string
	Count    int
}

func RenderArchivePanel(data ArchivePanelData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Archived Weeks: %d\n", data.Count)
	if data.Count == 0 {
		b.WriteString("(nothing archived yet; finish a week with /newweek)\n")
		return b.String()
	}
	b.WriteString(data.ListView)
	b.WriteString("\n")
	return b.String()
}

type SetupFieldData struct {
	Label   string
	View    string
	Focused bool
}

type SetupPanelData struct {
	Fields       []SetupFieldData
	FixedEvents  []string
	Subjects     []string
	Assignments  []string
	Personal     []string
	QuickAddView string
	QuickAddHint string
	Generating   bool
	SpinnerView  string
}

func RenderSetupPanel(data SetupPanelData) string {
	var b strings.Builder
	b.WriteString("Plan Your Week\n\n")
	for _, f := range data.Fields {
		cursor := "  "
		if f.Focused {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%-16s %s\n", cursor, f.Label, f.View)
	}
	writeEntryList(&b, "Fixed commitments", data.FixedEvents)
	writeEntryList(&b, "Subjects", data.Subjects)
	writeEntryList(&b, "Assignments", data.Assignments)
	writeEntryList(&b, "Personal tasks", data.Personal)
	b.WriteString("\n")
	b.WriteString(data.QuickAddView)
	b.WriteString("\n")
	if data.QuickAddHint != "" {
		fmt.Fprintf(&b, "%s\n", data.QuickAddHint)
	}
	if data.Generating {
		fmt.Fprintf(&b, "\n%s generating schedule...\n", data.SpinnerView)
	}
	return b.String()
}

func writeEntryList(b *strings.Builder, title string, entries []string) {
	fmt.Fprintf(b, "\n%s:\n", title)
	if len(entries) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(b, "  - %s\n", e)
	}
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

type ConfirmData struct {
	Title string
	Body  string
}

func RenderConfirm(data ConfirmData) string {
	return fmt.Sprintf("%s\n\n%s\n\n[y] confirm   [n/esc] cancel", data.Title, data.Body)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
