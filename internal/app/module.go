// Package app is paiman's composition root.
//
// Leaf services (web view, views, model, picture selector) are composed by
// wire in wire_gen.go. ControllerModule then builds the controllers on top of
// them with explicit scopes:
//
//	overview.Controller     singleton  webView, overviewView, addPaintingFactory, overviewModel
//	entry.Controller        singleton  webView, entryView, overview.Controller
//	addpainting.Controller  transient  addPaintingView, webView, pictureSelector
package app

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/x4fyr/paiman/di"
	"github.com/x4fyr/paiman/internal/services"
	"github.com/x4fyr/paiman/internal/ui/addpainting"
	"github.com/x4fyr/paiman/internal/ui/entry"
	"github.com/x4fyr/paiman/internal/ui/overview"
)

// ControllerModule provides the UI controllers.
//
// The singleton providers construct on their first call and return the same
// instance afterwards, ignoring later arguments. Construction errors propagate
// unchanged (and, for singletons, stick).
type ControllerModule struct {
	log *zap.Logger

	overview di.Cell[overview.Controller]
	entry    di.Cell[entry.Controller]
	dialogs  atomic.Int64
}

// NewControllerModule returns a module with no controllers built yet.
func NewControllerModule(log *zap.Logger) *ControllerModule {
	if log == nil {
		log = zap.NewNop()
	}
	return &ControllerModule{log: log.Named("controllers")}
}

// ProvideOverviewController returns the process-wide overview controller.
func (m *ControllerModule) ProvideOverviewController(
	webView services.WebViewService,
	overviewView overview.View,
	addPaintingFactory overview.AddPaintingFactory,
	overviewModel *overview.Model,
) (*overview.Controller, error) {
	return m.overview.Get("overview.Controller", func() (*overview.Controller, error) {
		m.log.Debug("constructing overview controller")
		return overview.New(webView, overviewView, addPaintingFactory, overviewModel, m.log)
	})
}

// ProvideEntryController returns the process-wide entry controller.
// overviewController becomes its navigation target.
func (m *ControllerModule) ProvideEntryController(
	webView services.WebViewService,
	entryView entry.View,
	overviewController *overview.Controller,
) (*entry.Controller, error) {
	return m.entry.Get("entry.Controller", func() (*entry.Controller, error) {
		m.log.Debug("constructing entry controller")
		return entry.New(webView, overviewController, entryView, m.log)
	})
}

// ProvideAddPaintingController returns a new dialog controller on every call.
func (m *ControllerModule) ProvideAddPaintingController(
	view addpainting.View,
	webView services.WebViewService,
	pictureSelector services.PictureSelectorService,
) (*addpainting.Controller, error) {
	c, err := addpainting.New(view, webView, pictureSelector, m.log)
	if err != nil {
		return nil, err
	}
	n := m.dialogs.Add(1)
	m.log.Debug("constructed add painting controller", zap.Int64("n", n))
	return c, nil
}

// Built reports which singletons exist so far.
func (m *ControllerModule) Built() (overviewBuilt, entryBuilt bool) {
	return m.overview.Built(), m.entry.Built()
}

// DialogsBuilt counts add-painting controllers constructed so far.
func (m *ControllerModule) DialogsBuilt() int64 { return m.dialogs.Load() }
