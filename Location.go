package sproute

// IntfLocation is an interface to the current location.
type IntfLocation interface {
	Host() string
	Path() string
	Query() string
	Scheme() string
}

// location represents the location a navigation is resolving.
// It is the app-side stand-in for what a browser would expose as
// window.location: the last href handed to us, broken into parts.
type location struct {
	scheme string
	host   string
	path   string
	query  string
}

// Host returns the location host.
func (loc *location) Host() string {
	return loc.host
}

// Scheme returns either `http`, `https` or an empty string.
func (loc *location) Scheme() string {
	return loc.scheme
}
