package overview

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/overview.html
var templates embed.FS

// View renders the overview list.
type View interface {
	Render(data ViewData) (string, error)
}

// ViewData is what the overview page renders.
type ViewData struct {
	Previews []Preview
}

// TemplateView renders the embedded HTML template.
type TemplateView struct {
	tmpl *template.Template
}

// NewTemplateView parses the embedded overview template.
func NewTemplateView() (*TemplateView, error) {
	tmpl, err := template.ParseFS(templates, "templates/overview.html")
	if err != nil {
		return nil, err
	}
	return &TemplateView{tmpl: tmpl}, nil
}

// Render executes the template with data.
func (v *TemplateView) Render(data ViewData) (string, error) {
	var buf bytes.Buffer
	if err := v.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
