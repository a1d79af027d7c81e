// Package addpainting is the "add painting" dialog.
//
// A Controller is created per add action and discarded afterwards. It keeps
// the draft (title and picked picture) and hands the finished draft to its
// Parent.
package addpainting

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/x4fyr/paiman/internal/services"
)

// Messages shown on the web view when the draft is incomplete.
const (
	MsgTitleMissing   = "Title missing or invalid"
	MsgImageMissing   = "Image missing"
	MsgPictureFailure = "Couldn't get image"
)

// ErrNoParent is returned by Apply and Cancel on a controller nobody attached.
var ErrNoParent = errors.New("addpainting: no parent attached")

// Parent receives the finished draft and gets control back on cancel.
type Parent interface {
	SavePainting(ctx context.Context, title string, picture *services.Picture) (string, error)
	Reload(ctx context.Context) error
}

// Controller drives one add-painting dialog.
type Controller struct {
	view     View
	webView  services.WebViewService
	selector services.PictureSelectorService
	log      *zap.Logger

	mu      sync.Mutex
	parent  Parent
	title   string
	picture *services.Picture
}

// New wires a dialog controller. Every dependency is required.
func New(view View, webView services.WebViewService, selector services.PictureSelectorService, log *zap.Logger) (*Controller, error) {
	switch {
	case view == nil:
		return nil, errors.New("addpainting: nil view")
	case webView == nil:
		return nil, errors.New("addpainting: nil web view service")
	case selector == nil:
		return nil, errors.New("addpainting: nil picture selector service")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		view:     view,
		webView:  webView,
		selector: selector,
		log:      log.Named("addpainting"),
	}, nil
}

// Name identifies the controller in web view logs.
func (c *Controller) Name() string { return "addpainting" }

// Attach sets the controller the draft is handed to.
func (c *Controller) Attach(p Parent) {
	c.mu.Lock()
	c.parent = p
	c.mu.Unlock()
}

// Parent returns the attached parent, or nil.
func (c *Controller) Parent() Parent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.parent
}

// Picture returns the staged picture, if any.
func (c *Controller) Picture() *services.Picture {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.picture
}

// LoadView renders the dialog with the current draft.
func (c *Controller) LoadView(ctx context.Context) error {
	c.mu.Lock()
	data := ViewData{Title: c.title, PictureData: c.picture.JPEGData()}
	c.mu.Unlock()

	html, err := c.view.Render(data)
	if err != nil {
		return err
	}
	return c.webView.LoadHTML(html, c)
}

// SelectImage asks the selector for a picture and stages it on the draft.
func (c *Controller) SelectImage(ctx context.Context) error {
	c.log.Debug("callback: selectImage")

	pic, err := c.selector.PickPicture(ctx)
	if err != nil {
		c.log.Warn("picture selection failed", zap.Error(err))
		return c.webView.ShowError(MsgPictureFailure)
	}
	if pic == nil {
		return c.webView.ShowError(MsgPictureFailure)
	}

	c.mu.Lock()
	c.picture = pic
	c.mu.Unlock()

	c.log.Info("selected image", zap.String("name", pic.Name))
	return c.webView.ExecuteJS("addDialogSetPicture('" + pic.JPEGData() + "')")
}

// Apply validates the draft and hands it to the parent.
// Validation problems are shown on the web view and are not errors.
func (c *Controller) Apply(ctx context.Context, title string) error {
	c.log.Debug("callback: apply", zap.String("title", title))

	c.mu.Lock()
	parent := c.parent
	pic := c.picture
	if strings.TrimSpace(title) != "" {
		c.title = title
	}
	c.mu.Unlock()

	switch {
	case strings.TrimSpace(title) == "":
		return c.webView.ShowError(MsgTitleMissing)
	case pic == nil:
		return c.webView.ShowError(MsgImageMissing)
	case parent == nil:
		return ErrNoParent
	}

	id, err := parent.SavePainting(ctx, title, pic)
	if err != nil {
		return err
	}
	c.log.Info("painting added", zap.String("id", id))
	return nil
}

// Cancel drops the draft and returns to the parent.
func (c *Controller) Cancel(ctx context.Context) error {
	parent := c.Parent()
	if parent == nil {
		return ErrNoParent
	}
	return parent.Reload(ctx)
}
