package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/necomav/dayplan/internal/contract"
	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/scheduler"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	anchorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	gapStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

const clockLayout = "15:04"

func formatDaySchedule(day time.Time, w scheduler.DayWindow, tasks []*domain.Task, gaps []scheduler.Gap) string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(day.Format("Mon 2006-01-02")))
	fmt.Fprintf(&b, "window %s–%s\n", w.DayStart.Format(clockLayout), w.DayEnd.Format(clockLayout))

	type row struct {
		start time.Time
		text  string
	}
	var rows []row
	for _, t := range tasks {
		if !t.Scheduled() {
			continue
		}
		line := fmt.Sprintf("%s–%s  %s", t.PlannedStart.Format(clockLayout), t.PlannedEnd.Format(clockLayout), t.Title)
		switch {
		case t.Done:
			line = doneStyle.Render(line)
		case t.Type != domain.TaskTypeUser:
			line = anchorStyle.Render(line)
		}
		rows = append(rows, row{start: *t.PlannedStart, text: line})
	}
	for _, g := range gaps {
		line := gapStyle.Render(fmt.Sprintf("%s–%s  (free, %dm)", g.Start.Format(clockLayout), g.End.Format(clockLayout), int(g.Duration()/time.Minute)))
		rows = append(rows, row{start: g.Start, text: line})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].start.Before(rows[j].start) })
	for _, r := range rows {
		fmt.Fprintln(&b, "  "+r.text)
	}
	return b.String()
}

func formatPlanSummary(resp *contract.AutoplanResponse) string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render("Autoplan summary"))
	for _, d := range resp.Days {
		fmt.Fprintf(&b, "  %s  anchors: %d  scheduled: %d\n",
			d.Date.Format("Mon 2006-01-02"), d.AnchorsPresent, d.ScheduledCount)
	}
	return b.String()
}

func formatConflicts(conflicts []*domain.Task) string {
	var b strings.Builder
	fmt.Fprintln(&b, warnStyle.Render("Requested time conflicts with:"))
	for _, c := range conflicts {
		fmt.Fprintf(&b, "  %s–%s  %s (%s)\n",
			c.PlannedStart.Format(clockLayout), c.PlannedEnd.Format(clockLayout), c.Title, c.Type)
	}
	return b.String()
}

func formatBacklog(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return "backlog is empty\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render("Backlog"))
	for _, t := range tasks {
		due := ""
		if t.DueAt != nil {
			due = "  due " + t.DueAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "  [p%d] %s  (%dm)%s  %s\n", t.Priority, t.Title, t.EstimateMin, due, t.ID[:8])
	}
	return b.String()
}
