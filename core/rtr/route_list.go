package rtr

import "fmt"

// RouteList represents a registered route for debugging and inspection purposes.
//
// Fields:
//   - Kind: "literal" or "expr"
//   - Pattern: the pattern text (e.g., "/users/:id" or "^post-(\\d+)$")
//   - HandlerRef: string representation of the carried data (for debugging)
//
// This is primarily used for:
//   - Route table visualization
//   - Debugging route shadowing (an earlier route hiding a later one)
//   - Testing route registration
type RouteList struct {
	Kind       string
	Pattern    string
	HandlerRef string
}

// List returns the registered routes in registration order.
func (sr *SeqRouter[T]) List() (routes []RouteList) {
	for _, rt := range sr.routes {
		kind := "literal"
		if rt.kind == patternExpr {
			kind = "expr"
		}

		routes = append(routes, RouteList{
			Kind:       kind,
			Pattern:    rt.pattern,
			HandlerRef: fmt.Sprintf("%v", rt.data),
		})
	}

	return
}
