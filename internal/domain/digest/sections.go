package digest

import (
	"strings"
	"time"

	"firm-digest/internal/domain/task"
)

type page struct {
	Subject       string
	RecipientName string
	Date          string
	Blocks        []block
	DashboardURL  string
}

type block struct {
	Heading  string
	Total    int
	Sections []section
}

type section struct {
	Title       string
	Rows        []row
	Placeholder string
}

type row struct {
	Title    string
	Client   string
	Assignee string
	Due      string
}

type sectionKind int

const (
	sectionOverdue sectionKind = iota
	sectionToday
	sectionTomorrow
	sectionAwaitingClient
	sectionRemaining
	sectionReview
)

var (
	individualSections = []sectionKind{sectionOverdue, sectionToday, sectionTomorrow, sectionAwaitingClient, sectionRemaining, sectionReview}
	personalSections   = []sectionKind{sectionOverdue, sectionToday, sectionTomorrow, sectionAwaitingClient, sectionRemaining}
	firmSections       = []sectionKind{sectionOverdue, sectionToday, sectionTomorrow, sectionAwaitingClient, sectionRemaining, sectionReview}
)

func newBlock(heading string, s task.Summary, loc *time.Location, kinds []sectionKind) block {
	b := block{Heading: heading, Total: s.TotalCount}
	for _, k := range kinds {
		sec := newSection(k, s, loc)
		// Only overdue and review confirm an empty state; other empty sections are omitted.
		if len(sec.Rows) == 0 && sec.Placeholder == "" {
			continue
		}
		b.Sections = append(b.Sections, sec)
	}
	return b
}

func newSection(k sectionKind, s task.Summary, loc *time.Location) section {
	switch k {
	case sectionOverdue:
		return section{Title: "Overdue", Rows: rows(s.Overdue, loc), Placeholder: noOverdue}
	case sectionToday:
		return section{Title: "Due today", Rows: rows(s.Today, loc)}
	case sectionTomorrow:
		return section{Title: "Due tomorrow", Rows: rows(s.Tomorrow, loc)}
	case sectionAwaitingClient:
		return section{Title: "Waiting on client data", Rows: rows(s.AwaitingClient, loc)}
	case sectionRemaining:
		return section{Title: "Coming up", Rows: rows(s.Remaining, loc)}
	case sectionReview:
		return section{Title: "Ready for review", Rows: rows(s.Review, loc), Placeholder: noReview}
	default:
		return section{}
	}
}

func rows(tasks []task.Task, loc *time.Location) []row {
	if len(tasks) == 0 {
		return nil
	}
	out := make([]row, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, row{
			Title:    orPlaceholder(&t.Title, untitled),
			Client:   orPlaceholder(t.ClientName, noClient),
			Assignee: orPlaceholder(t.AssigneeName, unassigned),
			Due:      formatDue(t, loc),
		})
	}
	return out
}

func formatDue(t task.Task, loc *time.Location) string {
	if !t.HasDueDate() {
		return noDueDate
	}
	return t.DueDate.In(loc).Format(dueDateLayout)
}

func orPlaceholder(s *string, placeholder string) string {
	if s == nil {
		return placeholder
	}
	if v := strings.TrimSpace(*s); v != "" {
		return v
	}
	return placeholder
}
