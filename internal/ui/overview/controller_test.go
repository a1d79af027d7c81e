package overview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/x4fyr/paiman/internal/painting"
	"github.com/x4fyr/paiman/internal/services"
	"github.com/x4fyr/paiman/internal/services/webview"
	"github.com/x4fyr/paiman/internal/ui/addpainting"
)

type stubSelector struct{ pic *services.Picture }

func (s stubSelector) PickPicture(context.Context) (*services.Picture, error) { return s.pic, nil }

type dialogFactory struct {
	wv      services.WebViewService
	sel     services.PictureSelectorService
	created int
	err     error
}

func (f *dialogFactory) CreateAddPaintingController(parent addpainting.Parent) (*addpainting.Controller, error) {
	if f.err != nil {
		return nil, f.err
	}
	view, err := addpainting.NewTemplateView()
	if err != nil {
		return nil, err
	}
	c, err := addpainting.New(view, f.wv, f.sel, nil)
	if err != nil {
		return nil, err
	}
	c.Attach(parent)
	f.created++
	return c, nil
}

type fixture struct {
	ctrl    *Controller
	wv      *webview.Headless
	factory *dialogFactory
	catalog *painting.Catalog
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	wv := webview.NewHeadless(zaptest.NewLogger(t))
	factory := &dialogFactory{wv: wv, sel: stubSelector{pic: &services.Picture{Name: "a.jpg", Data: []byte{1, 2, 3}}}}
	view, err := NewTemplateView()
	require.NoError(t, err)
	catalog := painting.NewCatalog()

	ctrl, err := New(wv, view, factory, NewModel(catalog), zaptest.NewLogger(t))
	require.NoError(t, err)
	return fixture{ctrl: ctrl, wv: wv, factory: factory, catalog: catalog}
}

func TestNew_RequiresDependencies(t *testing.T) {
	t.Parallel()

	wv := webview.NewHeadless(zaptest.NewLogger(t))
	view, err := NewTemplateView()
	require.NoError(t, err)
	factory := &dialogFactory{}
	model := NewModel(painting.NewCatalog())

	tests := []struct {
		name    string
		build   func() (*Controller, error)
		wantErr string
	}{
		{"web view", func() (*Controller, error) { return New(nil, view, factory, model, nil) }, "overview: nil web view service"},
		{"view", func() (*Controller, error) { return New(wv, nil, factory, model, nil) }, "overview: nil view"},
		{"factory", func() (*Controller, error) { return New(wv, view, nil, model, nil) }, "overview: nil add painting factory"},
		{"model", func() (*Controller, error) { return New(wv, view, factory, nil, nil) }, "overview: nil model"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := tt.build()
			assert.Nil(t, c)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestLoadView_RendersCatalog(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.ctrl.LoadView(ctx))
	assert.Contains(t, f.wv.HTML(), "No paintings yet.")
	assert.Same(t, f.ctrl, f.wv.Controller())

	_, err := f.catalog.Compose("Sunset", []byte{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, f.ctrl.Reload(ctx))
	assert.Contains(t, f.wv.HTML(), "Paintings (1)")
	assert.Contains(t, f.wv.HTML(), "Sunset")
	assert.Contains(t, f.wv.HTML(), "base64,AQID")

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, f.ctrl.Reload(canceled), context.Canceled)
}

func TestOpenAddPainting_NewDialogEachTime(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	d1, err := f.ctrl.OpenAddPainting(ctx)
	require.NoError(t, err)
	d2, err := f.ctrl.OpenAddPainting(ctx)
	require.NoError(t, err)

	assert.NotSame(t, d1, d2)
	assert.Same(t, d2, f.wv.Controller())
	assert.Equal(t, 2, f.factory.created)
	assert.Same(t, f.ctrl, d1.Parent())

	boom := errors.New("boom")
	f.factory.err = boom
	_, err = f.ctrl.OpenAddPainting(ctx)
	assert.Same(t, boom, err)
}

// TestAddPaintingFlow covers dialog -> SavePainting -> reload -> showPainting.
func TestAddPaintingFlow(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	dialog, err := f.ctrl.OpenAddPainting(ctx)
	require.NoError(t, err)
	require.NoError(t, dialog.SelectImage(ctx))
	require.NoError(t, dialog.Apply(ctx, "Sunset"))

	list := f.catalog.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Sunset", list[0].Title)
	assert.Equal(t, Draft{}, f.ctrl.Model().Draft())

	assert.Same(t, f.ctrl, f.wv.Controller())
	assert.Contains(t, f.wv.HTML(), "Sunset")
	scripts := f.wv.Scripts()
	assert.Equal(t, "showPainting('"+list[0].ID+"')", scripts[len(scripts)-1])
}

func TestSavePainting_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	id, err := f.ctrl.SavePainting(ctx, " ", &services.Picture{Data: []byte{1}})
	require.NoError(t, err)
	assert.Empty(t, id)

	id, err = f.ctrl.SavePainting(ctx, "Sunset", nil)
	require.NoError(t, err)
	assert.Empty(t, id)

	assert.Equal(t, []string{addpainting.MsgTitleMissing, addpainting.MsgImageMissing}, f.wv.Errors())
	assert.Equal(t, "Sunset", f.ctrl.Model().Draft().Title)
	assert.Empty(t, f.catalog.List())
}

func TestOpenPainting(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.ctrl.LoadView(ctx))

	require.NoError(t, f.ctrl.OpenPainting(ctx, "missing"))
	assert.Equal(t, []string{MsgPaintingNotFound}, f.wv.Errors())

	p, err := f.catalog.Compose("Harbor", []byte{9})
	require.NoError(t, err)
	require.NoError(t, f.ctrl.OpenPainting(ctx, p.ID))
	require.NoError(t, f.ctrl.Refresh())
	assert.Equal(t, []string{"showPainting('" + p.ID + "')", "refreshPreviews()"}, f.wv.Scripts())
}

func TestDeletePaintings(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	a, err := f.catalog.Compose("A", []byte{1})
	require.NoError(t, err)
	b, err := f.catalog.Compose("B", []byte{2})
	require.NoError(t, err)

	require.NoError(t, f.ctrl.DeletePaintings(ctx, a.ID, "ghost"))
	list := f.catalog.List()
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, 1, f.wv.Loads())
}
