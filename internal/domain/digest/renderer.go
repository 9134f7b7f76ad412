package digest

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"firm-digest/internal/domain/task"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var digestTemplate = template.Must(template.ParseFS(templateFS, "templates/digest.html.tmpl"))

const (
	dueDateLayout = "Jan 2, 2006"
	subjectLayout = "Mon, Jan 2, 2006"

	noClient   = "No client"
	unassigned = "Unassigned"
	noDueDate  = "No due date"
	untitled   = "Untitled task"

	noOverdue = "No overdue tasks. Nice work."
	noReview  = "No tasks waiting for review."

	personalHeading = "Your tasks"
	firmHeading     = "Full firm overview"
)

// Document is a rendered digest ready for the mailer.
type Document struct {
	Subject string
	HTML    string
}

type Options struct {
	// AppBaseURL adds a dashboard link when set.
	AppBaseURL string
}

// Renderer turns task summaries into HTML digests. It performs no I/O and
// produces identical bytes for identical input.
type Renderer struct {
	tmpl         *template.Template
	dashboardURL string
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		tmpl:         digestTemplate,
		dashboardURL: strings.TrimSpace(opts.AppBaseURL),
	}
}

// RenderIndividual renders the single-block digest a staff member receives.
// Dates are formatted in now's location.
func (r *Renderer) RenderIndividual(recipientName string, now time.Time, s task.Summary) (Document, error) {
	blocks := []block{
		newBlock("", s, now.Location(), individualSections),
	}
	return r.render(recipientName, now, blocks)
}

// RenderAggregate renders the manager digest: the manager's own tasks followed
// by the whole firm, which also lists tasks waiting for review.
func (r *Renderer) RenderAggregate(recipientName string, now time.Time, personal, firm task.Summary) (Document, error) {
	blocks := []block{
		newBlock(personalHeading, personal, now.Location(), personalSections),
		newBlock(firmHeading, firm, now.Location(), firmSections),
	}
	return r.render(recipientName, now, blocks)
}

func Subject(now time.Time) string {
	return "Your task digest for " + now.Format(subjectLayout)
}

func (r *Renderer) render(recipientName string, now time.Time, blocks []block) (Document, error) {
	name := strings.TrimSpace(recipientName)
	if name == "" {
		name = "there"
	}
	p := page{
		Subject:       Subject(now),
		RecipientName: name,
		Date:          now.Format(subjectLayout),
		Blocks:        blocks,
		DashboardURL:  r.dashboardURL,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, p); err != nil {
		return Document{}, err
	}
	return Document{Subject: p.Subject, HTML: buf.String()}, nil
}
