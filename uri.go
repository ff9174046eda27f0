package sproute

import (
	"strings"

	"github.com/rohanthewiz/sproute/consts"
)

// URLOptions adjusts href parsing.
type URLOptions struct {
	KeepTrailingSlashes bool
}

// parseURL parses an href and returns the scheme, host, path and query.
// The href may be absolute ("scheme://host/path?query") or host-relative
// ("/path?query"). Though we could have used the standard URL package we
// wanted to maintain fine control.
func parseURL(url string, urlOpts URLOptions) (scheme string, host string, path string, query string) {
	schemeEndPos := strings.Index(url, consts.SchemeDelimiter)
	if schemeEndPos != -1 {
		scheme = url[:schemeEndPos]
		url = url[schemeEndPos+len(consts.SchemeDelimiter):]
	}

	pathStartPos := strings.IndexByte(url, consts.RuneFwdSlash)
	if pathStartPos != -1 {
		host = url[:pathStartPos]
		url = url[pathStartPos:]
	} else if schemeEndPos != -1 {
		// Host-only absolute href, e.g. "https://example.com": the whole
		// remainder is the host, not a path
		host = url
		url = consts.StrEmpty
	}

	queryPos := strings.IndexByte(url, consts.RuneQuestion)
	if queryPos != -1 && queryPos < len(url)+1 /* we will go one past the question sign below */ {
		path = url[:queryPos]
		query = url[queryPos+1:] // check above ensures we don't go past the end of the string
	} else {
		path = url
	}

	// FIXUPS

	if lnPath := len(path); lnPath == 0 {
		path = consts.StrSlash
	} else { // Trailing slash removal
		if !urlOpts.KeepTrailingSlashes && lnPath > 1 && strings.HasSuffix(path, consts.StrSlash) {
			path = path[:lnPath-1]
		}
	}

	// If the host is empty, the href was relative: it is our own host
	if host == "" {
		host = consts.Localhost
	}

	return
}

// splitPathQuery breaks "path?query" into a location. Unlike parseURL it
// leaves the path untouched: history entries and Resolve arguments carry
// paths exactly as the host supplied them.
func splitPathQuery(pathEtc string) location {
	if queryPos := strings.IndexByte(pathEtc, consts.RuneQuestion); queryPos != -1 {
		return location{path: pathEtc[:queryPos], query: pathEtc[queryPos+1:]}
	}

	return location{path: pathEtc}
}
