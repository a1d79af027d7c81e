package app

import (
	"go.uber.org/zap"

	"github.com/x4fyr/paiman/internal/config"
	"github.com/x4fyr/paiman/internal/services"
	"github.com/x4fyr/paiman/internal/services/picker"
	"github.com/x4fyr/paiman/internal/services/webview"
	"github.com/x4fyr/paiman/internal/ui/addpainting"
	"github.com/x4fyr/paiman/internal/ui/entry"
	"github.com/x4fyr/paiman/internal/ui/overview"
)

// Leaves holds everything the controllers are built from.
type Leaves struct {
	WebView            *webview.Headless
	OverviewView       overview.View
	EntryView          entry.View
	AddPaintingView    addpainting.View
	OverviewModel      *overview.Model
	PictureSelector    services.PictureSelectorService
	AddPaintingFactory overview.AddPaintingFactory
	Module             *ControllerModule
}

// ProvideWebView creates the headless web view.
func ProvideWebView(log *zap.Logger) *webview.Headless {
	return webview.NewHeadless(log)
}

// ProvidePictureSelector creates the directory picker from config.
func ProvidePictureSelector(cfg config.Config, log *zap.Logger) *picker.Directory {
	return picker.NewDirectory(cfg.PictureDir, log)
}
