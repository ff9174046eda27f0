/*
Package sproute is a single-page-application style router and
template-rendering helper.

An App owns an ordered list of routes. Each registration pairs a pattern
with a handler; patterns are either segment strings, where a :name segment
binds the corresponding path segment and a "*" segment accepts the rest of
the path, or regular expressions matched against the whole path. Routes are
tried strictly in registration order and the first match wins, so register
specific routes before general ones.

A trivial example:

	app := sproute.NewApp(sproute.AppOptions{
		DefaultPath:  "/home",
		FallbackPath: "/home",
		Views:        sproute.NewViewEngine(sproute.DirSource{Root: "templates"}),
	})

	app.Route("/home", func(ctx sproute.Context) error {
		return ctx.HTML("<h1>Welcome!</h1>")
	})

	app.Route("/users/:id", func(ctx sproute.Context) error {
		return ctx.Render("user.mustache", ctx.Params())
	})

	app.Start("/")                  // initial load
	app.Navigate("/users/42")       // link click
	app.Back()                      // history pop

Handlers render into the app's Outlet, the stand-in for the DOM element a
browser router would render into; the host environment reads the result
back with app.View(). Navigation sources (clicks, history pops, the
initial load) are external: feed them in through Navigate, HandleClick,
Back/Forward, or a Trigger consumed by app.Run.

Unmatched paths are a normal outcome, not an error: the app resolves the
configured fallback path, or renders the not-found view when no fallback
is set.
*/
package sproute
