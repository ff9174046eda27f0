package sproute

import (
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name   string
		href   string
		opts   URLOptions
		scheme string
		host   string
		path   string
		query  string
	}{
		{
			name: "absolute with query", href: "https://example.com/a/b?x=1",
			scheme: "https", host: "example.com", path: "/a/b", query: "x=1",
		},
		{
			name: "relative", href: "/a/b",
			host: "localhost", path: "/a/b",
		},
		{
			name: "relative with query", href: "/a?x=1&y=2",
			host: "localhost", path: "/a", query: "x=1&y=2",
		},
		{
			name: "trailing slash trimmed", href: "/a/b/",
			host: "localhost", path: "/a/b",
		},
		{
			name: "trailing slash kept", href: "/a/b/",
			opts: URLOptions{KeepTrailingSlashes: true},
			host: "localhost", path: "/a/b/",
		},
		{
			name: "bare root survives trimming", href: "/",
			host: "localhost", path: "/",
		},
		{
			name: "empty href", href: "",
			host: "localhost", path: "/",
		},
		{
			name: "host only", href: "http://example.com/",
			scheme: "http", host: "example.com", path: "/",
		},
		{
			name: "host only without slash", href: "https://example.com",
			scheme: "https", host: "example.com", path: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme, host, path, query := parseURL(tt.href, tt.opts)
			assert.Equal(t, scheme, tt.scheme)
			assert.Equal(t, host, tt.host)
			assert.Equal(t, path, tt.path)
			assert.Equal(t, query, tt.query)
		})
	}
}

func TestSplitPathQuery(t *testing.T) {
	loc := splitPathQuery("/a/b?x=1")
	assert.Equal(t, loc.path, "/a/b")
	assert.Equal(t, loc.query, "x=1")

	loc = splitPathQuery("/a/b")
	assert.Equal(t, loc.path, "/a/b")
	assert.Equal(t, loc.query, "")

	// Paths are passed through untouched, trailing slash included
	loc = splitPathQuery("/a/b/")
	assert.Equal(t, loc.path, "/a/b/")
}
