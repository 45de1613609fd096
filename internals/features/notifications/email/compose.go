package email

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ReviewNotice carries everything the review email renders.
type ReviewNotice struct {
	RecipientEmail string
	RecipientName  string
	FormTitle      string
	EventTitle     string
	EventDate      *time.Time
	Status         string
	ReviewedBy     string
	ReviewedAt     time.Time
	Notes          string
}

// StatusLabel turns APPROVED into Approved. A Caser is stateful, so one is built per call.
func StatusLabel(status string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(status)))
}

type reviewView struct {
	Name        string
	FormTitle   string
	EventTitle  string
	EventDate   string
	StatusLabel string
	Approved    bool
	ReviewedBy  string
	ReviewedAt  string
	Notes       string
}

const reviewText = `Hello {{.Name}},

Your submission for "{{.FormTitle}}" has been {{.StatusLabel}}.
{{- if .EventTitle}}
Event: {{.EventTitle}}{{if .EventDate}} ({{.EventDate}}){{end}}
{{- end}}
Reviewed by: {{.ReviewedBy}}
Reviewed on: {{.ReviewedAt}}
{{- if .Notes}}

Notes from the reviewer:
{{.Notes}}
{{- end}}
{{if .Approved}}
Thank you for participating. We will contact you with further details.
{{- else}}
If you have questions about this decision, please reach out to the youth office.
{{- end}}

SK Youth Office
`

const reviewHTML = `<p>Hello {{.Name}},</p>
<p>Your submission for <strong>{{.FormTitle}}</strong> has been <strong>{{.StatusLabel}}</strong>.</p>
{{- if .EventTitle}}
<p>Event: {{.EventTitle}}{{if .EventDate}} ({{.EventDate}}){{end}}</p>
{{- end}}
<p>Reviewed by: {{.ReviewedBy}}<br>Reviewed on: {{.ReviewedAt}}</p>
{{- if .Notes}}
<p>Notes from the reviewer:<br>{{.Notes}}</p>
{{- end}}
{{- if .Approved}}
<p>Thank you for participating. We will contact you with further details.</p>
{{- else}}
<p>If you have questions about this decision, please reach out to the youth office.</p>
{{- end}}
<p>SK Youth Office</p>
`

var (
	reviewTextTmpl = texttemplate.Must(texttemplate.New("review.txt").Parse(reviewText))
	reviewHTMLTmpl = htmltemplate.Must(htmltemplate.New("review.html").Parse(reviewHTML))
)

// ComposeReview renders the status email for a reviewed submission.
func ComposeReview(n ReviewNotice) (Message, error) {
	name := strings.TrimSpace(n.RecipientName)
	if name == "" {
		name = "there"
	}
	reviewer := strings.TrimSpace(n.ReviewedBy)
	if reviewer == "" {
		reviewer = "the youth office"
	}
	formTitle := strings.TrimSpace(n.FormTitle)
	if formTitle == "" {
		formTitle = "your form"
	}

	view := reviewView{
		Name:        name,
		FormTitle:   formTitle,
		EventTitle:  strings.TrimSpace(n.EventTitle),
		StatusLabel: StatusLabel(n.Status),
		Approved:    strings.EqualFold(n.Status, "APPROVED"),
		ReviewedBy:  reviewer,
		ReviewedAt:  n.ReviewedAt.Format("January 2, 2006"),
		Notes:       strings.TrimSpace(n.Notes),
	}
	if n.EventDate != nil {
		view.EventDate = n.EventDate.Format("January 2, 2006")
	}

	var text, html strings.Builder
	if err := reviewTextTmpl.Execute(&text, view); err != nil {
		return Message{}, err
	}
	if err := reviewHTMLTmpl.Execute(&html, view); err != nil {
		return Message{}, err
	}

	return Message{
		To:      strings.TrimSpace(n.RecipientEmail),
		ToName:  strings.TrimSpace(n.RecipientName),
		Subject: "Submission " + view.StatusLabel + ": " + formTitle,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
