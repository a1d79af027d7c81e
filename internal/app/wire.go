//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/x4fyr/paiman/internal/config"
	"github.com/x4fyr/paiman/internal/painting"
	"github.com/x4fyr/paiman/internal/services"
	"github.com/x4fyr/paiman/internal/services/picker"
	"github.com/x4fyr/paiman/internal/services/webview"
	"github.com/x4fyr/paiman/internal/ui/addpainting"
	"github.com/x4fyr/paiman/internal/ui/entry"
	"github.com/x4fyr/paiman/internal/ui/overview"
)

// LeafSet builds the leaf services the controller module consumes.
var LeafSet = wire.NewSet(
	ProvideWebView,
	wire.Bind(new(services.WebViewService), new(*webview.Headless)),
	ProvidePictureSelector,
	wire.Bind(new(services.PictureSelectorService), new(*picker.Directory)),
	overview.NewTemplateView,
	wire.Bind(new(overview.View), new(*overview.TemplateView)),
	entry.NewTemplateView,
	wire.Bind(new(entry.View), new(*entry.TemplateView)),
	addpainting.NewTemplateView,
	wire.Bind(new(addpainting.View), new(*addpainting.TemplateView)),
	painting.NewCatalog,
	overview.NewModel,
	NewControllerModule,
	NewDialogFactory,
	wire.Bind(new(overview.AddPaintingFactory), new(*DialogFactory)),
	wire.Struct(new(Leaves), "*"),
)

// InitializeLeaves creates the fully wired leaves.
func InitializeLeaves(cfg config.Config, log *zap.Logger) (*Leaves, error) {
	wire.Build(LeafSet)
	return nil, nil
}
