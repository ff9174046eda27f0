package sproute_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/sproute"
)

func TestRouteAndResolve(t *testing.T) {
	app := sproute.NewApp()

	app.Route("/home", func(ctx sproute.Context) error {
		return ctx.HTML("<h1>home</h1>")
	})

	ok := app.Resolve("/home")
	assert.True(t, ok)
	assert.Equal(t, app.View().String(), "<h1>home</h1>")

	// Literal matching is case-insensitive
	ok = app.Resolve("/HOME")
	assert.True(t, ok)
	assert.Equal(t, app.View().String(), "<h1>home</h1>")
}

func TestDefaultPath(t *testing.T) {
	app := sproute.NewApp(sproute.AppOptions{DefaultPath: "/home"})

	app.Route("/home", func(ctx sproute.Context) error {
		return ctx.HTML("home")
	})

	// Empty and bare "/" both land on the default path
	assert.True(t, app.Resolve(""))
	assert.Equal(t, app.View().String(), "home")

	assert.True(t, app.Resolve("/"))
	assert.Equal(t, app.View().String(), "home")
}

func TestParams(t *testing.T) {
	app := sproute.NewApp()

	app.Route("/users/:id/posts/:post", func(ctx sproute.Context) error {
		assert.Equal(t, ctx.Param("id"), "42")
		assert.Equal(t, ctx.Param("post"), "7")
		assert.Equal(t, len(ctx.Params()), 2)
		return ctx.HTML("post " + ctx.Param("post"))
	})

	assert.True(t, app.Resolve("/users/42/posts/7"))
	assert.Equal(t, app.View().String(), "post 7")
}

func TestWildcardRoute(t *testing.T) {
	app := sproute.NewApp()

	var seen []string
	app.Route("/files/*", func(ctx sproute.Context) error {
		seen = append(seen, ctx.Path())
		return nil
	})

	assert.True(t, app.Resolve("/files/a"))
	assert.True(t, app.Resolve("/files/a/b/c"))
	assert.Equal(t, len(seen), 2)
}

func TestExprRoute(t *testing.T) {
	app := sproute.NewApp()

	app.RouteExpr(regexp.MustCompile(`^post-(\d+)$`), func(ctx sproute.Context) error {
		assert.Equal(t, len(ctx.Hash()), 1)
		return ctx.HTML("<article>" + ctx.Hash()[0] + "</article>")
	})

	assert.True(t, app.Resolve("/post-7"))
	assert.Equal(t, app.View().String(), "<article>post-7</article>")
	assert.False(t, app.Resolve("/post-abc"))
}

func TestOutletClearedBetweenNavigations(t *testing.T) {
	app := sproute.NewApp()

	app.Route("/long", func(ctx sproute.Context) error {
		return ctx.HTML("a long view body")
	})
	app.Route("/short", func(ctx sproute.Context) error {
		ctx.Outlet().SetTitle("Short")
		return ctx.HTML("tiny")
	})

	app.Resolve("/long")
	app.Resolve("/short")
	assert.Equal(t, app.View().String(), "tiny")
	assert.Equal(t, app.View().Title(), "Short")

	// Titles do not carry over either
	app.Resolve("/long")
	assert.Equal(t, app.View().Title(), "")
}

func TestFallbackPath(t *testing.T) {
	app := sproute.NewApp(sproute.AppOptions{FallbackPath: "/home"})

	var gotQuery string
	app.Route("/home", func(ctx sproute.Context) error {
		gotQuery = ctx.Query()
		return ctx.HTML("home")
	})

	app.Start("/nope?x=1")

	// The unmatched path itself reports false, but the fallback rendered
	// and replaced the history entry, query intact.
	assert.Equal(t, app.View().String(), "home")
	assert.Equal(t, gotQuery, "x=1")
	assert.Equal(t, app.History().Current(), "/home?x=1")
	assert.Equal(t, app.History().Len(), 1)
}

func TestFallbackItselfUnmatched(t *testing.T) {
	// A fallback with no route of its own must not loop
	app := sproute.NewApp(sproute.AppOptions{FallbackPath: "/gone"})

	assert.False(t, app.Resolve("/nope"))
	assert.True(t, strings.Contains(app.View().String(), "Page not found"))
}

func TestNotFoundDefault(t *testing.T) {
	app := sproute.NewApp()

	assert.False(t, app.Resolve("/missing"))
	body := app.View().String()
	assert.True(t, strings.Contains(body, "sproute-not-found"))
	assert.True(t, strings.Contains(body, "/missing"))
	assert.Equal(t, app.View().Title(), "Not Found")
}

func TestSetNotFound(t *testing.T) {
	app := sproute.NewApp()

	app.SetNotFound(func(ctx sproute.Context) error {
		return ctx.HTML("custom 404 for " + ctx.Path())
	})

	assert.False(t, app.Resolve("/missing"))
	assert.Equal(t, app.View().String(), "custom 404 for /missing")
}

func TestUseMiddleware(t *testing.T) {
	app := sproute.NewApp()

	var order []string

	app.Use(func(ctx sproute.Context) error {
		order = append(order, "first")
		return ctx.Next()
	})
	app.Use(func(ctx sproute.Context) error {
		order = append(order, "second")
		return ctx.Next()
	})

	app.Route("/x", func(ctx sproute.Context) error {
		order = append(order, "handler")
		return nil
	})

	assert.True(t, app.Resolve("/x"))
	assert.Equal(t, strings.Join(order, ","), "first,second,handler")
}

func TestMiddlewareCanStopChain(t *testing.T) {
	app := sproute.NewApp()

	app.Use(func(ctx sproute.Context) error {
		return ctx.HTML("blocked") // no Next(), chain stops
	})

	handled := false
	app.Route("/x", func(ctx sproute.Context) error {
		handled = true
		return nil
	})

	// Dispatch never ran, so no route matched
	assert.False(t, app.Resolve("/x"))
	assert.False(t, handled)
	assert.Equal(t, app.View().String(), "blocked")
}

func TestOnError(t *testing.T) {
	app := sproute.NewApp()

	boom := errors.New("boom")
	var captured error

	app.OnError(func(ctx sproute.Context, err error) {
		captured = err
	})

	app.Route("/explode", func(ctx sproute.Context) error {
		return boom
	})

	// The route matched even though its handler failed
	assert.True(t, app.Resolve("/explode"))
	assert.Equal(t, captured, boom)
}

func TestNavigateAndHistory(t *testing.T) {
	app := sproute.NewApp()

	app.Route("/a", func(ctx sproute.Context) error { return ctx.HTML("a") })
	app.Route("/b", func(ctx sproute.Context) error { return ctx.HTML("b") })

	app.Start("/a")
	app.Navigate("/b")
	assert.Equal(t, app.View().String(), "b")

	assert.True(t, app.Back())
	assert.Equal(t, app.View().String(), "a")
	assert.Equal(t, app.History().Current(), "/a")

	assert.True(t, app.Forward())
	assert.Equal(t, app.View().String(), "b")

	// Nothing further forward
	assert.False(t, app.Forward())
}

func TestHandleClick(t *testing.T) {
	app := sproute.NewApp(sproute.AppOptions{Host: "example.com"})

	app.Route("/users/:id", func(ctx sproute.Context) error {
		return ctx.HTML("user " + ctx.Param("id"))
	})

	// Foreign host: declined, left to the host environment
	assert.False(t, app.HandleClick("https://other.org/users/1"))

	// Also declined when the href carries no path at all
	assert.False(t, app.HandleClick("https://other.org"))

	// Our host, absolute href
	assert.True(t, app.HandleClick("https://example.com/users/1"))
	assert.Equal(t, app.View().String(), "user 1")

	// Relative href is always ours
	assert.True(t, app.HandleClick("/users/2?tab=posts"))
	assert.Equal(t, app.View().String(), "user 2")
	assert.Equal(t, app.History().Current(), "/users/2?tab=posts")
}

func TestHandleClickTrailingSlash(t *testing.T) {
	app := sproute.NewApp()

	app.Route("/about", func(ctx sproute.Context) error { return ctx.HTML("about") })

	assert.True(t, app.HandleClick("/about/"))
	assert.Equal(t, app.View().String(), "about")
}

func TestRedirect(t *testing.T) {
	app := sproute.NewApp()

	app.Route("/old", func(ctx sproute.Context) error {
		return ctx.Redirect("/new")
	})
	app.Route("/new", func(ctx sproute.Context) error {
		return ctx.HTML("moved here")
	})

	app.Start("/old")
	assert.Equal(t, app.View().String(), "moved here")
	assert.Equal(t, app.History().Current(), "/new")
	assert.Equal(t, app.History().Len(), 1)
}

func TestRunTrigger(t *testing.T) {
	app := sproute.NewApp()

	var visited []string
	app.Route("/pages/:name", func(ctx sproute.Context) error {
		visited = append(visited, ctx.Param("name"))
		return nil
	})

	trigger := sproute.NewChanTrigger(4)
	trigger.Fire("/pages/one")
	trigger.Fire("/pages/two")
	trigger.Close()

	app.Run(trigger)

	assert.Equal(t, strings.Join(visited, ","), "one,two")
	assert.Equal(t, app.History().Len(), 2)
}

func TestListRoutes(t *testing.T) {
	app := sproute.NewApp()

	app.Route("/a", func(ctx sproute.Context) error { return nil })
	app.RouteExpr(regexp.MustCompile(`^b$`), func(ctx sproute.Context) error { return nil })

	routes := app.ListRoutes()
	assert.Equal(t, len(routes), 2)
	assert.Equal(t, routes[0].Pattern, "/a")
	assert.Equal(t, routes[0].Kind, "literal")
	assert.Equal(t, routes[1].Kind, "expr")
}

func TestFirstMatchWinsAcrossApp(t *testing.T) {
	app := sproute.NewApp()

	app.Route("/users/admin", func(ctx sproute.Context) error { return ctx.HTML("admin") })
	app.Route("/users/:id", func(ctx sproute.Context) error { return ctx.HTML("user") })

	app.Resolve("/users/admin")
	assert.Equal(t, app.View().String(), "admin")

	app.Resolve("/users/99")
	assert.Equal(t, app.View().String(), "user")
}
