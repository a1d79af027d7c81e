// Package services declares the platform services UI controllers talk to.
//
// Implementations live in subpackages: webview (headless renderer) and
// picker (directory-backed picture selector).
package services

import (
	"context"
	"encoding/base64"
)

// JavascriptModuleName is the name the UI uses to call back into the active controller.
const JavascriptModuleName = "controller"

// Controller is a screen controller that can put its view on the web view.
type Controller interface {
	LoadView(ctx context.Context) error
}

// WebViewService renders HTML and runs scripts in the app's web view.
type WebViewService interface {
	// LoadHTML replaces the current page and makes controller the callback target.
	LoadHTML(html string, controller Controller) error
	ExecuteJS(script string) error
	ShowError(msg string) error
}

// Picture is an image picked by the user.
type Picture struct {
	Name string
	Data []byte
}

// JPEGData returns the base64 payload used in data:image/jpeg URLs.
func (p *Picture) JPEGData() string {
	if p == nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(p.Data)
}

// PictureSelectorService lets the user pick a picture.
// A nil picture with a nil error means the user picked nothing.
type PictureSelectorService interface {
	PickPicture(ctx context.Context) (*Picture, error)
}
