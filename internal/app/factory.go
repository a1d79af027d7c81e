package app

import (
	"go.uber.org/zap"

	"github.com/x4fyr/paiman/di"
	"github.com/x4fyr/paiman/internal/services"
	"github.com/x4fyr/paiman/internal/ui/addpainting"
	"github.com/x4fyr/paiman/internal/ui/overview"
)

// DialogFactory is the overview's AddPaintingFactory. Each call goes through
// the module's transient provider, so every add action gets its own dialog.
type DialogFactory struct {
	provider di.Provider[addpainting.Controller]
	log      *zap.Logger
}

var _ overview.AddPaintingFactory = (*DialogFactory)(nil)

// NewDialogFactory binds the module's transient provider to the dialog leaves.
func NewDialogFactory(
	module *ControllerModule,
	view addpainting.View,
	webView services.WebViewService,
	pictureSelector services.PictureSelectorService,
	log *zap.Logger,
) *DialogFactory {
	return &DialogFactory{
		provider: di.NewTransient(KeyAddPaintingController, func() (*addpainting.Controller, error) {
			return module.ProvideAddPaintingController(view, webView, pictureSelector)
		}),
		log: log.Named("dialogs"),
	}
}

// CreateAddPaintingController returns a new dialog attached to parent.
func (f *DialogFactory) CreateAddPaintingController(parent addpainting.Parent) (*addpainting.Controller, error) {
	c, err := f.provider.Get()
	if err != nil {
		return nil, err
	}
	c.Attach(parent)
	return c, nil
}
