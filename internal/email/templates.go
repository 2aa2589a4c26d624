package email

import (
	"bytes"
	"fmt"
	"text/template"
)

// NewJobData fills the new-job notification template.
type NewJobData struct {
	Title       string
	Company     string
	Location    string
	Description string
	ApplyLink   string
	SiteName    string
	SiteURL     string
}

var newJobTemplate = template.Must(template.New("new_job").Parse(`Hello,

A new job has been posted on our job portal:

Title: {{.Title}}
Company: {{.Company}}
Location: {{.Location}}
Description: {{.Description}}
{{- if .ApplyLink}}
Apply Link: {{.ApplyLink}}
{{- end}}

Check it out and apply if interested!

Best regards,
{{.SiteName}}{{if .SiteURL}},
{{.SiteURL}}{{end}}
`))

// NewJobSubject builds the notification subject line.
func NewJobSubject(title, company string) string {
	return fmt.Sprintf("New Job Posted: %s at %s", title, company)
}

// RenderNewJob renders the plain-text notification body.
func RenderNewJob(data NewJobData) (string, error) {
	var buf bytes.Buffer
	if err := newJobTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render new job template: %w", err)
	}
	return buf.String(), nil
}
