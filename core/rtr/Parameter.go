package rtr

// Parameter represents a value bound to a :name segment of a matched route.
//
// Example:
//   Route: /users/:id/posts/:postId
//   Path:  /users/123/posts/456
//   Result: []Parameter{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
//
// Design notes:
// - Simple struct avoids allocation overhead compared to map[string]string
// - Ordered slice preserves parameter sequence from the route definition
type Parameter struct {
	Key   string
	Value string
}

// MapOf collapses parameters into a string map, the shape handlers receive.
// Later duplicates overwrite earlier ones, matching pattern segment order.
func MapOf(params []Parameter) map[string]string {
	m := make(map[string]string, len(params))

	for _, p := range params {
		m[p.Key] = p.Value
	}

	return m
}
