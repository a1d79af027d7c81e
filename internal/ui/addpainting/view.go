package addpainting

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/add_painting.html
var templates embed.FS

// ViewData is what the add-painting dialog renders.
type ViewData struct {
	Title       string
	PictureData string
}

// View renders the add-painting dialog.
type View interface {
	Render(data ViewData) (string, error)
}

// TemplateView renders the embedded HTML template.
type TemplateView struct {
	tmpl *template.Template
}

// NewTemplateView parses the embedded dialog template.
func NewTemplateView() (*TemplateView, error) {
	tmpl, err := template.ParseFS(templates, "templates/add_painting.html")
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
