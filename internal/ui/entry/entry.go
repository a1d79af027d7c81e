// Package entry is the start screen. It navigates to the overview.
package entry

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"

	"go.uber.org/zap"

	"github.com/x4fyr/paiman/internal/services"
	"github.com/x4fyr/paiman/internal/ui/overview"
)

//go:embed templates/entry.html
var templates embed.FS

// ViewData is what the entry page renders.
type ViewData struct {
	Paintings int
}

// View renders the entry page.
type View interface {
	Render(data ViewData) (string, error)
}

// TemplateView renders the embedded HTML template.
type TemplateView struct {
	tmpl *template.Template
}

// NewTemplateView parses the embedded entry template.
func NewTemplateView() (*TemplateView, error) {
	tmpl, err := template.ParseFS(templates, "templates/entry.html")
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

// Controller keeps a navigation reference to the overview; it does not own it.
type Controller struct {
	webView  services.WebViewService
	overview *overview.Controller
	view     View
	log      *zap.Logger
}

// New wires the entry controller. Every dependency except log is required.
func New(webView services.WebViewService, overviewController *overview.Controller, view View, log *zap.Logger) (*Controller, error) {
	switch {
	case webView == nil:
		return nil, errors.New("entry: nil web view service")
	case overviewController == nil:
		return nil, errors.New("entry: nil overview controller")
	case view == nil:
		return nil, errors.New("entry: nil view")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		webView:  webView,
		overview: overviewController,
		view:     view,
		log:      log.Named("entry"),
	}, nil
}

// Name identifies the controller in web view logs.
func (c *Controller) Name() string { return "entry" }

// Overview is the controller Continue navigates to.
func (c *Controller) Overview() *overview.Controller { return c.overview }

// LoadView renders the entry page with the collection size.
func (c *Controller) LoadView(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	html, err := c.view.Render(ViewData{Paintings: len(c.overview.Model().Previews())})
	if err != nil {
		return err
	}
	return c.webView.LoadHTML(html, c)
}

// Continue opens the overview.
func (c *Controller) Continue(ctx context.Context) error {
	c.log.Debug("callback: continue")
	return c.overview.LoadView(ctx)
}
