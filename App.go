package sproute

import (
	"log"
	"regexp"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/rohanthewiz/sproute/consts"
	"github.com/rohanthewiz/sproute/core/rtr"
)

// Handler handles one navigation.
type Handler func(ctx Context) error

// AppOptions configures an App.
type AppOptions struct {
	// DefaultPath substitutes for an empty or bare "/" path before matching.
	// Defaults to "/".
	DefaultPath string

	// FallbackPath is resolved (after a history replace) when no route
	// matches. Empty disables the fallback; the not-found view renders
	// instead.
	FallbackPath string

	// Host names our own host. Clicks on hrefs pointing at other hosts are
	// declined by HandleClick and left to the host environment.
	// Empty means every host is ours.
	Host string

	// KeepTrailingSlashes disables trailing-slash trimming when parsing hrefs.
	KeepTrailingSlashes bool

	// SaveMatchedPattern records each matched route's pattern text under
	// rtr.MatchedPatternKey in the parameter mapping.
	SaveMatchedPattern bool

	Verbose bool

	// Views supplies and renders templates. When nil, a ViewEngine with no
	// template source is used; ctx.Render then returns an error.
	Views *ViewEngine
}

// App wires the sequential router to navigation sources, history, and the
// view engine. Routes are expected to be registered during setup, before
// navigation events arrive; registration is append-only and unsynchronized.
type App struct {
	router       *rtr.SeqRouter[Handler]
	handlers     []Handler
	history      *History
	views        *ViewEngine
	view         Outlet
	notFound     Handler
	errorHandler func(Context, error)
	opts         AppOptions
}

// NewApp creates a new application.
func NewApp(options ...AppOptions) *App {
	opts := AppOptions{}

	if len(options) > 0 {
		opts = options[0]
	}

	if opts.DefaultPath == "" {
		opts.DefaultPath = consts.DefaultPath
	}

	views := opts.Views
	if views == nil {
		views = NewViewEngine(nil)
	}

	a := &App{
		router: &rtr.SeqRouter[Handler]{
			DefaultPath:        opts.DefaultPath,
			SaveMatchedPattern: opts.SaveMatchedPattern,
		},
		history: NewHistory(),
		views:   views,
		opts:    opts,
		errorHandler: func(ctx Context, err error) {
			log.Println(ctx.Path(), err)
		},
	}

	a.notFound = notFoundHandler
	a.handlers = []Handler{a.dispatch} // route dispatch is always last

	return a
}

// Route registers a literal-pattern route. Registration never fails; a
// malformed pattern simply never matches.
func (a *App) Route(pattern string, handler Handler) {
	a.router.Add(pattern, handler)
}

// RouteExpr registers an expression route. The expression is tested against
// each candidate path with its leading "/" stripped; on a match the handler
// receives the split path via ctx.Hash().
func (a *App) RouteExpr(expr *regexp.Regexp, handler Handler) {
	a.router.AddExpr(expr, handler)
}

// SetNotFound replaces the default not-found view handler.
func (a *App) SetNotFound(handler Handler) {
	a.notFound = handler
}

// OnError replaces the default error logger for handler errors.
func (a *App) OnError(f func(Context, error)) {
	a.errorHandler = f
}

// Use adds handlers to the middleware chain. Middleware runs in the order
// added and must call ctx.Next() to continue the chain.
func (a *App) Use(handlers ...Handler) {
	last := a.handlers[len(a.handlers)-1]
	// Re-slice to exclude last, append the incoming handlers, add back the last
	a.handlers = append(a.handlers[:len(a.handlers)-1], handlers...)
	a.handlers = append(a.handlers, last)
}

// Resolve runs one navigation decision for the given path (optionally
// carrying a "?query"). It reports whether a registered route handled the
// navigation; a fallback redirect or not-found view yields false.
// Resolve never fails: an unmatched path is a normal outcome.
func (a *App) Resolve(pathEtc string) bool {
	return a.resolve(splitPathQuery(pathEtc))
}

// Start resolves the initial location, recording it as the first history
// entry. This is the initial page load analog.
func (a *App) Start(pathEtc string) bool {
	a.history.Push(pathEtc)
	return a.resolve(splitPathQuery(pathEtc))
}

// Navigate pushes a new history entry and resolves it.
// This is the link-click / pushState analog.
func (a *App) Navigate(pathEtc string) bool {
	a.history.Push(pathEtc)
	return a.resolve(splitPathQuery(pathEtc))
}

// Back moves one entry back in history and resolves it (the popstate
// analog). It reports whether there was an entry to move to.
func (a *App) Back() bool {
	entry, ok := a.history.Back()
	if !ok {
		return false
	}

	a.resolve(splitPathQuery(entry))
	return true
}

// Forward moves one entry forward in history and resolves it.
func (a *App) Forward() bool {
	entry, ok := a.history.Forward()
	if !ok {
		return false
	}

	a.resolve(splitPathQuery(entry))
	return true
}

// HandleClick is the anchor-intercept analog: it parses an href and, when
// the target host is ours, navigates to it. It reports whether the click
// was consumed; a foreign host returns false so the host environment can
// follow the link normally.
func (a *App) HandleClick(href string) bool {
	_, host, path, query := parseURL(href, URLOptions{KeepTrailingSlashes: a.opts.KeepTrailingSlashes})

	if a.opts.Host != "" && host != consts.Localhost && !strings.EqualFold(host, a.opts.Host) {
		return false
	}

	pathEtc := path
	if query != "" {
		pathEtc += string(consts.RuneQuestion) + query
	}

	a.Navigate(pathEtc)
	return true
}

// Run consumes candidate paths from the trigger, resolving each navigation
// to completion before the next begins. It returns when the trigger closes.
func (a *App) Run(trigger Trigger) {
	for pathEtc := range trigger.Paths() {
		a.Navigate(pathEtc)
	}
}

// View returns the outlet holding the most recently rendered view.
func (a *App) View() *Outlet {
	return &a.view
}

// History returns the app's navigation history.
func (a *App) History() *History {
	return a.history
}

// Views returns the app's view engine.
func (a *App) Views() *ViewEngine {
	return a.views
}

// ListRoutes returns the registered routes in registration order.
func (a *App) ListRoutes() []rtr.RouteList {
	return a.router.List()
}

// resolve builds the navigation context and runs the handler chain.
func (a *App) resolve(loc location) bool {
	if loc.path == "" || loc.path == consts.StrSlash {
		loc.path = a.opts.DefaultPath
	}

	a.view.Clear()

	ctx := &context{
		location: loc,
		outlet:   &a.view,
		app:      a,
	}

	err := a.handlers[0](ctx)
	if err != nil {
		a.errorHandler(ctx, err)
	}

	return ctx.matched
}

// dispatch is the last handler in the chain: it looks up the route for the
// current location and invokes it.
func (a *App) dispatch(c Context) error {
	ctx := c.(*context)

	m, ok := a.router.Lookup(ctx.location.path)
	if !ok {
		return a.noMatch(ctx)
	}

	ctx.matched = true
	ctx.pattern = m.Pattern
	ctx.hash = m.Hash
	ctx.params = rtr.MapOf(m.Params)

	return m.Data(ctx)
}

// noMatch applies the fallback policy for an unmatched path: resolve the
// configured fallback (replacing the history entry, query preserved), or
// render the not-found view when no fallback is configured or the fallback
// itself failed to match.
func (a *App) noMatch(ctx *context) error {
	if a.opts.FallbackPath != "" && ctx.location.path != a.opts.FallbackPath {
		uri := bytebufferpool.Get()
		uri.SetString(a.opts.FallbackPath)

		if ctx.location.query != "" {
			uri.WriteByte(consts.RuneQuestion)
			uri.WriteString(ctx.location.query)
		}

		target := uri.String()
		bytebufferpool.Put(uri)

		if a.opts.Verbose {
			log.Printf("no route for %q, redirecting to %s", ctx.location.path, target)
		}

		a.history.Replace(target)
		a.resolve(location{path: a.opts.FallbackPath, query: ctx.location.query})
		return nil
	}

	return a.notFound(ctx)
}
