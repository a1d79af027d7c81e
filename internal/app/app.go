package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/x4fyr/paiman/di"
	"github.com/x4fyr/paiman/internal/config"
	"github.com/x4fyr/paiman/internal/ui/addpainting"
	"github.com/x4fyr/paiman/internal/ui/entry"
	"github.com/x4fyr/paiman/internal/ui/overview"
)

// Registry keys of the controllers.
const (
	KeyOverviewController    = "controller.overview"
	KeyEntryController       = "controller.entry"
	KeyAddPaintingController = "controller.addpainting"
)

// dependsOn lists each controller's inputs, in constructor order.
var dependsOn = map[string][]string{
	KeyOverviewController:    {"webView", "overviewView", "addPaintingFactory", "overviewModel"},
	KeyEntryController:       {"webView", "entryView", KeyOverviewController},
	KeyAddPaintingController: {"addPaintingView", "webView", "pictureSelector"},
}

// NewRegistry registers the module's providers under their keys so the rest
// of the app can resolve controllers by name.
func NewRegistry(l *Leaves) (*di.Registry, error) {
	reg := di.NewRegistry()

	err := di.Register(reg, KeyOverviewController, di.Singleton, func() (*overview.Controller, error) {
		return l.Module.ProvideOverviewController(l.WebView, l.OverviewView, l.AddPaintingFactory, l.OverviewModel)
	})
	if err != nil {
		return nil, err
	}

	err = di.Register(reg, KeyEntryController, di.Singleton, func() (*entry.Controller, error) {
		ov, err := di.ResolveAs[overview.Controller](reg, KeyOverviewController)
		if err != nil {
			return nil, err
		}
		return l.Module.ProvideEntryController(l.WebView, l.EntryView, ov)
	})
	if err != nil {
		return nil, err
	}

	err = di.Register(reg, KeyAddPaintingController, di.Transient, func() (*addpainting.Controller, error) {
		return l.Module.ProvideAddPaintingController(l.AddPaintingView, l.WebView, l.PictureSelector)
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// App is the assembled application.
type App struct {
	Config   config.Config
	Logger   *zap.Logger
	Leaves   *Leaves
	Registry *di.Registry

	Overview *overview.Controller
	Entry    *entry.Controller
}

// New assembles the whole graph: leaves, then overview, then entry.
func New(cfg config.Config, log *zap.Logger) (*App, error) {
	leaves, err := InitializeLeaves(cfg, log)
	if err != nil {
		return nil, err
	}
	return Assemble(cfg, log, leaves)
}

// Assemble builds the controllers on top of already-built leaves.
func Assemble(cfg config.Config, log *zap.Logger, leaves *Leaves) (*App, error) {
	reg, err := NewRegistry(leaves)
	if err != nil {
		return nil, err
	}
	ov, err := di.ResolveAs[overview.Controller](reg, KeyOverviewController)
	if err != nil {
		return nil, err
	}
	en, err := di.ResolveAs[entry.Controller](reg, KeyEntryController)
	if err != nil {
		return nil, err
	}

	log.Info("object graph assembled", zap.Strings("controllers", reg.Keys()))
	return &App{
		Config:   cfg,
		Logger:   log,
		Leaves:   leaves,
		Registry: reg,
		Overview: ov,
		Entry:    en,
	}, nil
}

// Start shows the entry screen.
func (a *App) Start(ctx context.Context) error {
	return a.Entry.LoadView(ctx)
}

// Node is one controller in the assembled graph.
type Node struct {
	Key       string
	Scope     di.Scope
	Type      string
	DependsOn []string
}

// Graph lists the registered controllers with their inputs, sorted by key.
func (a *App) Graph() []Node {
	bs := a.Registry.Bindings()
	out := make([]Node, len(bs))
	for i, b := range bs {
		out[i] = Node{Key: b.Key, Scope: b.Scope, Type: b.Type, DependsOn: dependsOn[b.Key]}
	}
	return out
}
