// Package webview provides a headless WebViewService.
//
// Headless keeps the last rendered page and every script and error it was
// asked to show, and logs each call. It stands in for the native web view in
// the CLI and in tests.
package webview

import (
	"errors"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/x4fyr/paiman/internal/services"
)

// ErrNoPage is returned by ExecuteJS before any page was loaded.
var ErrNoPage = errors.New("webview: no page loaded")

// Headless is a WebViewService without a screen.
type Headless struct {
	log *zap.Logger

	mu         sync.Mutex
	html       string
	controller services.Controller
	scripts    []string
	errs       []string
	loads      int
}

// NewHeadless returns an empty headless web view logging to log.
func NewHeadless(log *zap.Logger) *Headless {
	if log == nil {
		log = zap.NewNop()
	}
	return &Headless{log: log.Named("webview")}
}

var _ services.WebViewService = (*Headless)(nil)

// LoadHTML stores the page and the callback controller.
func (h *Headless) LoadHTML(html string, controller services.Controller) error {
	h.mu.Lock()
	h.html = html
	h.controller = controller
	h.loads++
	h.mu.Unlock()

	h.log.Debug("page loaded",
		zap.Int("bytes", len(html)),
		zap.String("callback", services.JavascriptModuleName),
		zap.String("controller", controllerName(controller)))
	return nil
}

// ExecuteJS records script; it fails with ErrNoPage before the first LoadHTML.
func (h *Headless) ExecuteJS(script string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.loads == 0 {
		return ErrNoPage
	}
	h.scripts = append(h.scripts, script)
	h.log.Debug("script executed", zap.String("script", truncate(script, 64)))
	return nil
}

// ShowError records msg.
func (h *Headless) ShowError(msg string) error {
	h.mu.Lock()
	h.errs = append(h.errs, msg)
	h.mu.Unlock()

	h.log.Warn("error shown", zap.String("message", msg))
	return nil
}

// HTML returns the current page.
func (h *Headless) HTML() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.html
}

// Controller returns the current callback target.
func (h *Headless) Controller() services.Controller {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.controller
}

// Scripts returns a copy of all executed scripts.
func (h *Headless) Scripts() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.scripts...)
}

// Errors returns a copy of all shown error messages.
func (h *Headless) Errors() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.errs...)
}

// Loads counts LoadHTML calls.
func (h *Headless) Loads() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loads
}

func controllerName(c services.Controller) string {
	if c == nil {
		return "<nil>"
	}
	if s, ok := c.(interface{ Name() string }); ok {
		return s.Name()
	}
	return "anonymous"
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}
