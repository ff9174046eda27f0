package sproute

import (
	"errors"
)

// Context is the interface handlers receive for a navigation and its view.
type Context interface {
	App() *App
	Error(...any) error
	HTML(string) error
	Hash() []string
	Next() error
	Outlet() *Outlet
	Param(string) string
	Params() map[string]string
	Path() string
	Pattern() string
	Query() string
	Redirect(string) error
	Render(name string, data any) error
	RenderMarkdown(name string) error
}

// context carries the state of one navigation decision.
type context struct {
	location
	outlet       *Outlet
	app          *App
	params       map[string]string
	hash         []string
	pattern      string
	matched      bool
	handlerCount uint8
}

// App returns the owning application.
func (ctx *context) App() *App {
	return ctx.app
}

// Error provides a convenient way to wrap multiple errors.
func (ctx *context) Error(messages ...any) error {
	var combined []error

	for _, msg := range messages {
		switch err := msg.(type) {
		case error:
			combined = append(combined, err)
		case string:
			combined = append(combined, errors.New(err))
		}
	}

	return errors.Join(combined...)
}

// HTML writes the given markup to the outlet.
func (ctx *context) HTML(body string) error {
	_, err := ctx.outlet.WriteString(body)
	return err
}

// Hash returns the segment list supplied to expression-route handlers.
// It is nil for literal-pattern routes.
func (ctx *context) Hash() []string {
	return ctx.hash
}

// Next executes the next handler in the middleware chain.
func (ctx *context) Next() error {
	ctx.handlerCount++
	return ctx.app.handlers[ctx.handlerCount](ctx)
}

// Outlet returns the render target for this navigation.
func (ctx *context) Outlet() *Outlet {
	return ctx.outlet
}

// Param returns the value bound to the given :name segment, or "".
func (ctx *context) Param(name string) string {
	return ctx.params[name]
}

// Params returns the full parameter mapping for the matched route.
func (ctx *context) Params() map[string]string {
	return ctx.params
}

// Path returns the path being resolved.
func (ctx *context) Path() string {
	return ctx.location.path
}

// Pattern returns the pattern text of the matched route, or "" when no
// route matched (e.g. in a not-found handler).
func (ctx *context) Pattern() string {
	return ctx.pattern
}

// Query returns the query string of the current location, without the "?".
func (ctx *context) Query() string {
	return ctx.location.query
}

// Redirect replaces the current history entry and resolves the given path.
func (ctx *context) Redirect(path string) error {
	ctx.app.history.Replace(path)
	ctx.app.Resolve(path)
	return nil
}

// Render fetches the named template and renders it into the outlet with the
// Mustache engine, using data for interpolation.
func (ctx *context) Render(name string, data any) error {
	return ctx.app.views.RenderTo(ctx.outlet, name, data)
}

// RenderMarkdown fetches the named template and renders it into the outlet
// as Markdown.
func (ctx *context) RenderMarkdown(name string) error {
	return ctx.app.views.RenderMarkdownTo(ctx.outlet, name)
}
