package generate

import (
	"fmt"
	"strings"

	"github.com/novarame/weekplan/internal/model"
)

// BuildPrompt renders the planning request as the generator's natural
// language prompt. The input sections echo the user's data verbatim; the
// optimization rules and origin-flagging instruction are fixed.
func BuildPrompt(in model.UserInputData, locked []model.Task) string {
	var fixed strings.Builder
	for _, e := range in.FixedEvents {
		fmt.Fprintf(&fixed, "- %s %s-%s: %s\n", e.Day, e.StartTime, e.EndTime, e.Title)
	}
	var subjects strings.Builder
	var hours strings.Builder
	for _, s := range in.Subjects {
		fmt.Fprintf(&subjects, "- %s: %s\n", s.Name, s.Priority)
		fmt.Fprintf(&hours, "- %s: %g hours\n", s.Name, s.HoursNeeded)
	}
	var assignments strings.Builder
	for _, a := range in.Assignments {
		details := a.Description
		if details == "" {
			details = "None"
		}
		fmt.Fprintf(&assignments, "- Academic Task: %s (%s), Details: %s, Deadline: %s, Est. Hours: %g\n",
			a.Name, in.SubjectName(a.SubjectID), details, a.Deadline, a.EstimatedHours)
	}
	var personal strings.Builder
	for _, p := range in.PersonalTasks {
		fmt.Fprintf(&personal, "- Personal Task: %s, Priority: %s, Deadline: %s, Est. Hours: %g\n",
			p.Name, p.Priority, p.Deadline, p.EstimatedHours)
	}

	lockedBlock := ""
	if len(locked) > 0 {
		var b strings.Builder
		b.WriteString("\n**LOCKED TASKS (MUST PRESERVE):**\n")
		b.WriteString("The following tasks are already scheduled by the user and MUST appear in the schedule at their exact times. Do not move, remove, or modify them. Fill gaps around them.\n")
		for _, t := range locked {
			fmt.Fprintf(&b, "- [%s] %s-%s: %s (Priority: %s)\n", t.Activity, t.TimeStart, t.TimeEnd, t.Name, t.Priority)
		}
		lockedBlock = b.String()
	}

	return fmt.Sprintf(`You are an Expert Life & Academic Planner.
Generate a fully optimized, 7-day Weekly Schedule starting from %[1]s.

**User Context:**
- **Week Start:** %[1]s
- **Sleep Schedule:** %[2]s to %[3]s (Strictly OFF LIMITS)

**Inputs:**
1. **Fixed Commitments:**
%[4]s

2. **Academic Focus:**
%[5]s
(Target Hours:
%[6]s)

3. **Academic Assignments:**
%[7]s

4. **Personal Tasks & Chores:**
%[8]s
%[9]s
**Optimization Rules:**
1. **Prioritization:** Deadlines first. Then High Priority items (Academic or Personal).
2. **Breaks:** Insert a 15-minute 'Break' for every 90-120 mins of deep work.
3. **Session Length:** Academic blocks: 60-120 mins. Personal tasks: 30-60 mins.
4. **Balance:** Ensure personal tasks are scheduled during lighter academic days if possible.
5. **Activity Types:** Use 'Study' for academic, 'Personal' or 'Chore' for life tasks.
6. **Origin Flagging:** Set 'is_ai_generated' to FALSE for tasks that come directly from User Inputs (Fixed Events, Assignments, Personal Tasks, or Locked Tasks). Set 'is_ai_generated' to TRUE for suggestions you create (Breaks, Meals, Filler Study Blocks).

Output strictly valid JSON matching the schema.`,
		in.WeekStartDate, in.SleepStart, in.SleepEnd,
		sectionOrNone(fixed.String()),
		sectionOrNone(subjects.String()),
		sectionOrNone(hours.String()),
		sectionOrNone(assignments.String()),
		sectionOrNone(personal.String()),
		lockedBlock,
	)
}

func sectionOrNone(s string) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return "None"
	}
	return s
}
