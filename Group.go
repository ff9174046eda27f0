package sproute

import (
	"path"
)

// Group represents a route group with a common prefix and middleware.
// This allows organizing routes under a common URL prefix (e.g., /admin)
// and applying middleware that only affects routes within this group.
// Groups can be nested to create hierarchical route structures.
type Group struct {
	// prefix is the path prefix for all routes in this group
	prefix string
	// app is a reference to the owning application for route registration
	app *App
	// handlers contains middleware applied to all routes in this group
	handlers []Handler
}

// Group creates a route group on the app with the given prefix and
// optional middleware.
func (a *App) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   prefix,
		app:      a,
		handlers: handlers,
	}
}

// Group creates a sub-group with an additional prefix and optional
// middleware. The new group inherits all middleware from the parent group.
func (g *Group) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   path.Join(g.prefix, prefix),
		app:      g.app,
		handlers: append(g.handlers, handlers...),
	}
}

// Use adds middleware to the group. It affects routes registered after
// this call; middleware runs in the order added.
func (g *Group) Use(handlers ...Handler) {
	g.handlers = append(g.handlers, handlers...)
}

// Route registers a literal-pattern route under the group prefix, wrapped
// with the group's middleware. Wildcards and :name segments work as they
// do on App.Route.
func (g *Group) Route(routePath string, handler Handler) {
	// The leading "/" ensures proper path formatting
	fullPath := path.Join("/", g.prefix, routePath)

	// Build the middleware chain with the route handler as the final link.
	// Handlers wrap in reverse order so they execute in the order added.
	finalHandler := handler

	for i := len(g.handlers) - 1; i >= 0; i-- {
		middleware := g.handlers[i]
		nextHandler := finalHandler

		finalHandler = func(ctx Context) error {
			// Track whether the middleware called Next() so middleware can
			// stop the chain (e.g. a guard declining a navigation) or fall
			// through implicitly.
			nextCalled := false

			wrapper := &contextWrapper{
				Context: ctx,
				next: func() error {
					nextCalled = true
					return nextHandler(ctx)
				},
			}

			err := middleware(wrapper)

			// Middleware that neither errored nor called Next() continues
			// the chain automatically.
			if err == nil && !nextCalled {
				err = nextHandler(ctx)
			}

			return err
		}
	}

	g.app.Route(fullPath, finalHandler)
}

// contextWrapper wraps a Context to intercept Next() calls, so group
// middleware can track and control its own chain independently of the
// app-level chain.
type contextWrapper struct {
	Context
	next func() error
}

// Next overrides the Context's Next method with the group chain's.
func (w *contextWrapper) Next() error {
	return w.next()
}
