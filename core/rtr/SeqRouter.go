package rtr

import (
	"regexp"
	"strings"

	"github.com/savsgio/gotils/bytes"
)

// MatchedPatternKey is the parameter key under which the pattern text of the
// matched route is stored when SeqRouter.SaveMatchedPattern is set.
// The key is randomized once per process so it cannot collide with a user's
// own :name parameters.
var MatchedPatternKey = "__matchedPattern::" + string(bytes.Rand(make([]byte, 15))) + "__"

// patternKind discriminates the two pattern representations a route may carry.
// Dispatch in Lookup is explicit on this tag rather than on runtime type
// inspection of the registered value.
type patternKind uint8

const (
	patternLiteral patternKind = iota // segment string, may contain :name and *
	patternExpr                       // regular expression against the full path
)

// route is a single registration: a pattern and the data it carries.
// Routes are immutable once appended.
type route[T any] struct {
	kind     patternKind
	pattern  string   // original pattern text (or the expression source)
	segments []string // literal pattern split on "/", computed at Add time
	expr     *regexp.Regexp
	data     T
}

// Match is the outcome of a successful lookup.
// Literal-pattern routes populate Params; expression routes populate Hash
// with the candidate path (leading separator stripped) split on "/".
type Match[T any] struct {
	Data    T
	Pattern string
	Params  []Parameter
	Hash    []string
}

// SeqRouter evaluates routes strictly in registration order and selects the
// first one that matches. This is deliberately not a tree: ordering is part
// of the contract, so more specific routes can simply be registered before
// more general ones.
//
// Structure example for routes /users/:id, /users/*:
//
//	[0] /users/:id   matches /users/42        params: id=42
//	[1] /users/*     matches /users/42/edit   (wildcard truncates)
//
// The zero value is ready to use.
type SeqRouter[T any] struct {
	routes []route[T]

	// DefaultPath substitutes for an empty or bare "/" candidate path
	// before any matching is attempted.
	DefaultPath string

	// SaveMatchedPattern records the matched route's pattern text under
	// MatchedPatternKey in the returned parameters.
	SaveMatchedPattern bool
}

// Add appends a literal-pattern route. Pattern segments are split on "/":
// a segment starting with ":" binds the corresponding path segment under
// that name, a segment equal to "*" truncates matching and accepts the
// route, and any other segment must match the path segment literally
// (case-insensitively).
//
// No pattern validation is performed; a malformed pattern simply fails to
// match. Add never fails.
func (sr *SeqRouter[T]) Add(pattern string, data T) {
	sr.routes = append(sr.routes, route[T]{
		kind:     patternLiteral,
		pattern:  pattern,
		segments: strings.Split(pattern, "/"),
		data:     data,
	})
}

// AddExpr appends an expression route. The expression is tested against the
// candidate path with its leading "/" stripped.
func (sr *SeqRouter[T]) AddExpr(expr *regexp.Regexp, data T) {
	sr.routes = append(sr.routes, route[T]{
		kind:    patternExpr,
		pattern: expr.String(),
		expr:    expr,
		data:    data,
	})
}

// Len returns the number of registered routes.
func (sr *SeqRouter[T]) Len() int {
	return len(sr.routes)
}

// Lookup finds the first route matching the given path.
// It never fails: an unmatched path is a normal outcome reported as ok=false.
//
// Algorithm overview:
//  1. An empty or root path is replaced with DefaultPath.
//  2. The candidate is split on "/" (the leading empty segment is kept, so
//     "/users/42" yields ["", "users", "42"], mirroring what pattern
//     splitting produces).
//  3. Routes are tried in registration order; the first match wins and
//     later routes are never evaluated.
//
// For a literal route the pattern segments are walked with an accumulated
// matched flag:
//
//	pattern: /users/:id     path: /users/42
//	         ""     ok            ""
//	         users  ok            users   (case-insensitive)
//	         :id    bind id=42    42
//
// A "*" segment stops the walk immediately and accepts the route outright,
// before the matched flag is consulted. Segments after the wildcard are
// never looked at, and a length mismatch noted on an earlier iteration does
// not disqualify a route ending in "*" (see the wildcard note below).
// When segment counts differ and no wildcard intervenes, the route is
// disqualified; the walk still runs to completion so a later wildcard can
// be found.
func (sr *SeqRouter[T]) Lookup(path string) (Match[T], bool) {
	if path == "" || path == "/" {
		path = sr.DefaultPath
	}

	pathSegs := strings.Split(path, "/")

	for _, rt := range sr.routes {
		if rt.kind == patternExpr {
			trimmed := strings.TrimPrefix(path, "/")

			if rt.expr.MatchString(trimmed) {
				m := Match[T]{
					Data:    rt.data,
					Pattern: rt.pattern,
					Hash:    strings.Split(trimmed, "/"),
				}

				if sr.SaveMatchedPattern {
					m.Params = append(m.Params, Parameter{Key: MatchedPatternKey, Value: rt.pattern})
				}

				return m, true
			}

			continue
		}

		var params []Parameter
		matched := true
		accepted := false

		for i, seg := range rt.segments {
			if seg == "*" {
				// The wildcard truncates evaluation and accepts the route
				// without consulting the matched flag. Do not "fix" this:
				// it is what lets /users/* catch /users/42/edit despite the
				// length mismatch already noted above.
				accepted = true
				break
			}

			if len(rt.segments) != len(pathSegs) {
				// Disqualifies the route but does not stop the walk. Note
				// the else-if chain: while counts differ, no literal
				// comparison or parameter binding happens either.
				matched = false
			} else if !strings.HasPrefix(seg, ":") {
				if !strings.EqualFold(seg, pathSegs[i]) {
					matched = false
				}
			} else {
				// Parameters bind unconditionally, with no value
				// validation. They are discarded along with the route if it
				// ultimately fails.
				params = append(params, Parameter{Key: seg[1:], Value: pathSegs[i]})
			}
		}

		if accepted || matched {
			if sr.SaveMatchedPattern {
				params = append(params, Parameter{Key: MatchedPatternKey, Value: rt.pattern})
			}

			return Match[T]{Data: rt.data, Pattern: rt.pattern, Params: params}, true
		}
	}

	var none Match[T]
	return none, false
}

// Map binds all route data to new values provided by the callback.
// Useful for wrapping every registered handler, e.g. with middleware.
func (sr *SeqRouter[T]) Map(transform func(T) T) {
	for i := range sr.routes {
		sr.routes[i].data = transform(sr.routes[i].data)
	}
}
