package sproute

import (
	"encoding/json"

	"github.com/gomarkdown/markdown"
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"
)

// HTML writes the given markup to the navigation's outlet.
func HTML(ctx Context, body string) error {
	return ctx.HTML(body)
}

// Markdown renders the given Markdown source into the outlet.
// For named templates use ctx.RenderMarkdown, which goes through the
// template source and cache.
func Markdown(ctx Context, src string) error {
	_, err := ctx.Outlet().Write(markdown.ToHTML([]byte(src), nil, nil))
	return err
}

// Mustache renders the given inline template into the outlet.
func Mustache(ctx Context, tmpl string, data any) error {
	return ctx.App().Views().renderString(ctx.Outlet(), tmpl, data)
}

// JSON writes the value to the outlet as JSON. Occasionally useful for
// debug views; SPA outlets are normally HTML.
func JSON(ctx Context, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return serr.Wrap(err, "failed to marshal view data")
	}

	_, err = ctx.Outlet().Write(body)
	return err
}

// notFoundHandler renders the default not-found view.
// Replace it with App.SetNotFound.
func notFoundHandler(ctx Context) error {
	b := element.NewBuilder()

	b.DivClass("sproute-not-found").R(
		b.H2().T("Page not found"),
		b.P().R(
			b.T("No route matches "),
			b.Code().T(ctx.Path()),
		),
	)

	ctx.Outlet().SetTitle("Not Found")
	return ctx.HTML(b.String())
}
