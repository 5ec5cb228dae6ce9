// Package classify decides whether an HTTP response points at a directory
// worth recursing into.
//
// Grounded on feroxbuster's response_is_directory
// (original_source/src/scanner.rs).
package classify

import (
	"net/url"
	"strings"

	"github.com/markvantol/dirhunt/internal/scanner"
)

// IsDirectory reports whether resp should be treated as a directory for
// recursion purposes. It is a pure function: the same response always
// yields the same verdict.
//
//   - 3xx: the Location header, resolved against resp.URL, must equal
//     resp.URL + "/" exactly. A missing or unparseable Location returns
//     false.
//   - 2xx: true iff the URL path ends in "/".
//   - anything else: false.
func IsDirectory(resp *scanner.Response) bool {
	switch {
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		if resp.RedirectLocation == "" {
			return false
		}
		base, err := url.Parse(resp.URL)
		if err != nil {
			return false
		}
		loc, err := url.Parse(resp.RedirectLocation)
		if err != nil {
			return false
		}
		abs := base.ResolveReference(loc)
		return abs.String() == resp.URL+"/"

	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return strings.HasSuffix(resp.URL, "/")

	default:
		return false
	}
}
