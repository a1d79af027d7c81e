// Package overview is the painting list screen.
package overview

import (
	"context"
	"errors"
	"html/template"

	"go.uber.org/zap"

	"github.com/x4fyr/paiman/internal/painting"
	"github.com/x4fyr/paiman/internal/services"
	"github.com/x4fyr/paiman/internal/ui/addpainting"
)

// MsgPaintingNotFound is shown when OpenPainting gets an unknown ID.
const MsgPaintingNotFound = "Painting not found"

// AddPaintingFactory hands out a fresh add-painting dialog attached to parent.
type AddPaintingFactory interface {
	CreateAddPaintingController(parent addpainting.Parent) (*addpainting.Controller, error)
}

// Controller drives the overview screen and is the parent of add-painting dialogs.
type Controller struct {
	webView services.WebViewService
	view    View
	factory AddPaintingFactory
	model   *Model
	log     *zap.Logger
}

var _ addpainting.Parent = (*Controller)(nil)

// New wires the overview controller. Every dependency is required.
func New(webView services.WebViewService, view View, factory AddPaintingFactory, model *Model, log *zap.Logger) (*Controller, error) {
	switch {
	case webView == nil:
		return nil, errors.New("overview: nil web view service")
	case view == nil:
		return nil, errors.New("overview: nil view")
	case factory == nil:
		return nil, errors.New("overview: nil add painting factory")
	case model == nil:
		return nil, errors.New("overview: nil model")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		webView: webView,
		view:    view,
		factory: factory,
		model:   model,
		log:     log.Named("overview"),
	}, nil
}

// Name identifies the controller in web view logs.
func (c *Controller) Name() string { return "overview" }

// Model returns the overview model.
func (c *Controller) Model() *Model { return c.model }

// LoadView renders the overview; it is Reload.
func (c *Controller) LoadView(ctx context.Context) error {
	return c.Reload(ctx)
}

// Reload renders the current catalog.
func (c *Controller) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	html, err := c.view.Render(ViewData{Previews: c.model.Previews()})
	if err != nil {
		return err
	}
	return c.webView.LoadHTML(html, c)
}

// OpenAddPainting opens a new add-painting dialog.
func (c *Controller) OpenAddPainting(ctx context.Context) (*addpainting.Controller, error) {
	c.log.Debug("callback: openAddPainting")

	dialog, err := c.factory.CreateAddPaintingController(c)
	if err != nil {
		return nil, err
	}
	if err := dialog.LoadView(ctx); err != nil {
		return nil, err
	}
	return dialog, nil
}

// Refresh asks the page to refresh its previews.
func (c *Controller) Refresh() error {
	c.log.Debug("callback: refresh")
	return c.webView.ExecuteJS("refreshPreviews()")
}

// OpenPainting shows the painting with id.
func (c *Controller) OpenPainting(ctx context.Context, id string) error {
	c.log.Debug("callback: openPainting", zap.String("id", id))

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.model.Painting(id); err != nil {
		if errors.Is(err, painting.ErrNotFound) {
			return c.webView.ShowError(MsgPaintingNotFound)
		}
		return err
	}
	return c.webView.ExecuteJS("showPainting('" + template.JSEscapeString(id) + "')")
}

// SavePainting stages the dialog's draft on the model, saves it and shows the result.
func (c *Controller) SavePainting(ctx context.Context, title string, picture *services.Picture) (string, error) {
	c.log.Debug("callback: addPainting", zap.String("title", title))

	c.model.Stage(Draft{Title: title, Picture: picture})
	id, err := c.model.SaveNewPainting()
	switch {
	case errors.Is(err, painting.ErrTitleMissing):
		return "", c.webView.ShowError(addpainting.MsgTitleMissing)
	case errors.Is(err, painting.ErrPictureMissing):
		return "", c.webView.ShowError(addpainting.MsgImageMissing)
	case err != nil:
		return "", err
	}

	c.log.Info("painting saved", zap.String("id", id))
	if err := c.Reload(ctx); err != nil {
		return id, err
	}
	return id, c.OpenPainting(ctx, id)
}

// DeletePaintings removes the given paintings and reloads once.
// Unknown IDs are skipped.
func (c *Controller) DeletePaintings(ctx context.Context, ids ...string) error {
	removed := 0
	for _, id := range ids {
		err := c.model.Delete(id)
		if errors.Is(err, painting.ErrNotFound) {
			c.log.Warn("delete: unknown painting", zap.String("id", id))
			continue
		}
		if err != nil {
			return err
		}
		removed++
	}
	c.log.Info("paintings deleted", zap.Int("count", removed))
	return c.Reload(ctx)
}
