package sproute

import (
	"io"
)

// IntfOutlet is the interface for a navigation's render target.
type IntfOutlet interface {
	io.Writer
	io.StringWriter
	Body() []byte
	SetBody([]byte)
	Clear()
	Title() string
	SetTitle(string)
}

// Outlet is where a handler renders its view. It is the app-side stand-in
// for the DOM element an SPA router would render templates into: handlers
// write markup, the host environment reads it back out.
type Outlet struct {
	body  []byte
	title string
}

// Body returns the rendered view.
func (o *Outlet) Body() []byte {
	return o.body
}

// SetBody replaces the rendered view with the new contents.
func (o *Outlet) SetBody(body []byte) {
	o.body = body
}

// Clear empties the outlet. Called before each handler runs so a view never
// leaks into the next navigation.
func (o *Outlet) Clear() {
	o.body = o.body[:0]
	o.title = ""
}

// Title returns the document title set by the handler, if any.
func (o *Outlet) Title() string {
	return o.title
}

// SetTitle sets the document title for this view.
func (o *Outlet) SetTitle(title string) {
	o.title = title
}

// String returns the rendered view as a string.
func (o *Outlet) String() string {
	return b2s(o.body)
}

// Write implements the io.Writer interface.
func (o *Outlet) Write(body []byte) (int, error) {
	o.body = append(o.body, body...)
	return len(body), nil
}

// WriteString implements the io.StringWriter interface.
func (o *Outlet) WriteString(body string) (int, error) {
	o.body = append(o.body, body...)
	return len(body), nil
}
