package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/x4fyr/paiman/internal/config"
	"github.com/x4fyr/paiman/internal/services"
	"github.com/x4fyr/paiman/internal/ui/entry"
	"github.com/x4fyr/paiman/internal/ui/overview"
)

type stubSelector struct{}

func (stubSelector) PickPicture(context.Context) (*services.Picture, error) {
	return &services.Picture{Name: "a.jpg", Data: []byte{1, 2, 3}}, nil
}

type failingView struct{ err error }

func (v failingView) Render(overview.ViewData) (string, error) { return "", v.err }

func newLeaves(t *testing.T) *Leaves {
	t.Helper()
	cfg := config.Default()
	cfg.PictureDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.PictureDir, "a.jpg"), []byte{1, 2, 3}, 0o600))

	l, err := InitializeLeaves(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return l
}

//
// -----------------------------------------------------------------------------
// ProvideOverviewController
// -----------------------------------------------------------------------------

// TestProvideOverviewController_Singleton verifies every call returns the same instance.
func TestProvideOverviewController_Singleton(t *testing.T) {
	t.Parallel()

	l := newLeaves(t)
	m := NewControllerModule(zaptest.NewLogger(t))

	a, err := m.ProvideOverviewController(l.WebView, l.OverviewView, l.AddPaintingFactory, l.OverviewModel)
	require.NoError(t, err)
	require.NotNil(t, a)

	// Later arguments are ignored once built.
	b, err := m.ProvideOverviewController(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Same(t, a, b)

	built, _ := m.Built()
	assert.True(t, built)
}

func TestProvideOverviewController_Concurrent(t *testing.T) {
	t.Parallel()

	l := newLeaves(t)
	m := NewControllerModule(nil)

	const n = 32
	got := make([]*overview.Controller, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			c, err := m.ProvideOverviewController(l.WebView, l.OverviewView, l.AddPaintingFactory, l.OverviewModel)
			assert.NoError(t, err)
			got[i] = c
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, got[0], got[i])
	}
}

// TestProvideOverviewController_ErrorPropagates verifies dependency failures reach the caller unchanged.
func TestProvideOverviewController_ErrorPropagates(t *testing.T) {
	t.Parallel()

	m := NewControllerModule(nil)
	c, err := m.ProvideOverviewController(nil, nil, nil, nil)
	assert.Nil(t, c)
	assert.EqualError(t, err, "overview: nil web view service")
}

//
// -----------------------------------------------------------------------------
// ProvideEntryController
// -----------------------------------------------------------------------------

// TestProvideEntryController_SingletonWithOverviewBackReference verifies identity and the back-reference.
func TestProvideEntryController_SingletonWithOverviewBackReference(t *testing.T) {
	t.Parallel()

	l := newLeaves(t)
	m := NewControllerModule(nil)

	ov, err := m.ProvideOverviewController(l.WebView, l.OverviewView, l.AddPaintingFactory, l.OverviewModel)
	require.NoError(t, err)

	a, err := m.ProvideEntryController(l.WebView, l.EntryView, ov)
	require.NoError(t, err)
	b, err := m.ProvideEntryController(l.WebView, l.EntryView, ov)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Same(t, ov, a.Overview())

	ov2, err := m.ProvideOverviewController(l.WebView, l.OverviewView, l.AddPaintingFactory, l.OverviewModel)
	require.NoError(t, err)
	assert.Same(t, ov2, b.Overview())

	_, entryBuilt := m.Built()
	assert.True(t, entryBuilt)
}

func TestProvideEntryController_NilOverview(t *testing.T) {
	t.Parallel()

	l := newLeaves(t)
	m := NewControllerModule(nil)

	var ov *overview.Controller
	_, err := m.ProvideEntryController(l.WebView, l.EntryView, ov)
	assert.EqualError(t, err, "entry: nil overview controller")
}

//
// -----------------------------------------------------------------------------
// ProvideAddPaintingController
// -----------------------------------------------------------------------------

// TestProvideAddPaintingController_Transient verifies successive calls return distinct instances.
func TestProvideAddPaintingController_Transient(t *testing.T) {
	t.Parallel()

	l := newLeaves(t)
	m := NewControllerModule(nil)

	a, err := m.ProvideAddPaintingController(l.AddPaintingView, l.WebView, l.PictureSelector)
	require.NoError(t, err)
	b, err := m.ProvideAddPaintingController(l.AddPaintingView, l.WebView, l.PictureSelector)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, int64(2), m.DialogsBuilt())

	_, err = m.ProvideAddPaintingController(nil, l.WebView, l.PictureSelector)
	assert.EqualError(t, err, "addpainting: nil view")
	assert.Equal(t, int64(2), m.DialogsBuilt())
}

//
// -----------------------------------------------------------------------------
// DialogFactory
// -----------------------------------------------------------------------------

func TestDialogFactory_FreshAttachedDialogs(t *testing.T) {
	t.Parallel()

	l := newLeaves(t)
	f := NewDialogFactory(l.Module, l.AddPaintingView, l.WebView, stubSelector{}, zaptest.NewLogger(t))

	ov, err := l.Module.ProvideOverviewController(l.WebView, l.OverviewView, f, l.OverviewModel)
	require.NoError(t, err)

	a, err := f.CreateAddPaintingController(ov)
	require.NoError(t, err)
	b, err := f.CreateAddPaintingController(ov)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Same(t, ov, a.Parent())
	assert.Same(t, ov, b.Parent())

	bad := NewDialogFactory(l.Module, nil, l.WebView, stubSelector{}, zaptest.NewLogger(t))
	_, err = bad.CreateAddPaintingController(ov)
	assert.EqualError(t, err, "addpainting: nil view")
}

//
// -----------------------------------------------------------------------------
// Registry / Assemble
// -----------------------------------------------------------------------------

func TestAssemble_GraphAndScopes(t *testing.T) {
	t.Parallel()

	l := newLeaves(t)
	a, err := Assemble(config.Default(), zaptest.NewLogger(t), l)
	require.NoError(t, err)

	ov, err := l.Module.ProvideOverviewController(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Same(t, ov, a.Overview)
	assert.Same(t, a.Overview, a.Entry.Overview())

	en, err := l.Module.ProvideEntryController(nil, nil, nil)
	require.NoError(t, err)
	assert.Same(t, a.Entry, en)

	d1, err := a.Registry.Resolve(KeyAddPaintingController)
	require.NoError(t, err)
	d2, err := a.Registry.Resolve(KeyAddPaintingController)
	require.NoError(t, err)
	assert.NotSame(t, d1, d2)

	graph := a.Graph()
	require.Len(t, graph, 3)
	assert.Equal(t, KeyAddPaintingController, graph[0].Key)
	assert.Equal(t, "transient", graph[0].Scope.String())
	assert.Equal(t, KeyEntryController, graph[1].Key)
	assert.Equal(t, "*entry.Controller", graph[1].Type)
	assert.Contains(t, graph[1].DependsOn, KeyOverviewController)
	assert.Equal(t, KeyOverviewController, graph[2].Key)
	assert.Equal(t, "singleton", graph[2].Scope.String())
}

// TestAssemble_OverviewFailureStopsEntry verifies a failed overview construction
// surfaces unchanged and the entry controller is never built.
func TestAssemble_OverviewFailureStopsEntry(t *testing.T) {
	t.Parallel()

	l := newLeaves(t)
	l.AddPaintingFactory = nil

	_, err := Assemble(config.Default(), zaptest.NewLogger(t), l)
	assert.EqualError(t, err, "overview: nil add painting factory")

	_, entryBuilt := l.Module.Built()
	assert.False(t, entryBuilt)
}

func TestApp_EndToEnd(t *testing.T) {
	t.Parallel()

	l := newLeaves(t)
	a, err := Assemble(config.Default(), zaptest.NewLogger(t), l)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, a.Start(ctx))
	assert.IsType(t, &entry.Controller{}, l.WebView.Controller())
	assert.Contains(t, l.WebView.HTML(), "0 paintings")

	require.NoError(t, a.Entry.Continue(ctx))
	assert.Same(t, a.Overview, l.WebView.Controller())

	dialog, err := a.Overview.OpenAddPainting(ctx)
	require.NoError(t, err)
	require.NoError(t, dialog.SelectImage(ctx))
	require.NoError(t, dialog.Apply(ctx, "Sunset"))

	previews := l.OverviewModel.Previews()
	require.Len(t, previews, 1)
	assert.Equal(t, "Sunset", previews[0].Title)
	assert.Equal(t, int64(1), l.Module.DialogsBuilt())
}

func TestFailingOverviewView(t *testing.T) {
	t.Parallel()

	boom := errors.New("render failed")
	l := newLeaves(t)
	l.OverviewView = failingView{err: boom}

	a, err := Assemble(config.Default(), zaptest.NewLogger(t), l)
	require.NoError(t, err)
	assert.Same(t, boom, a.Entry.Continue(context.Background()))
}
