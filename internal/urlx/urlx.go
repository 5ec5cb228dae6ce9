// Package urlx builds and inspects the candidate URLs a scan probes.
//
// It mirrors feroxbuster's create_urls/format_url/get_current_depth/
// get_url_path_length helpers (original_source/src/scanner.rs), adapted to
// Go's net/url.
package urlx

import (
	"log/slog"
	"net/url"
	"strings"
)

// Expand produces the ordered list of absolute URLs to request for one
// wordlist entry: the bare target+word URL first, then one URL per
// extension with ".ext" appended to the path component (before the query).
// addSlash appends a trailing "/" to the path of the extension-less URL
// only; extension URLs never get one. queries are appended as the query
// component of every URL. The
// result is empty only if every candidate failed to parse.
func Expand(target, word string, extensions []string, addSlash bool, queries map[string]string) []string {
	urls := make([]string, 0, 1+len(extensions))

	if u, err := format(target, word, addSlash, queries, ""); err == nil {
		urls = append(urls, u)
	} else {
		slog.Debug("could not format base url", "target", target, "word", word, "error", err)
	}

	for _, ext := range extensions {
		if u, err := format(target, word, addSlash, queries, ext); err == nil {
			urls = append(urls, u)
		} else {
			slog.Debug("could not format extension url", "target", target, "word", word, "ext", ext, "error", err)
		}
	}

	return urls
}

// format joins target and word into a single URL, optionally adding a
// trailing slash, an extension suffix, and query parameters.
func format(target, word string, addSlash bool, queries map[string]string, ext string) (string, error) {
	base, err := url.Parse(target)
	if err != nil {
		return "", err
	}

	path := strings.TrimRight(base.Path, "/") + "/" + strings.TrimLeft(word, "/")

	if ext != "" {
		path += "." + strings.TrimPrefix(ext, ".")
	} else if addSlash && !strings.HasSuffix(path, "/") {
		path += "/"
	}

	base.Path = path

	if len(queries) > 0 {
		q := base.Query()
		for k, v := range queries {
			q.Set(k, v)
		}
		base.RawQuery = q.Encode()
	}

	result := base.String()
	if _, err := url.Parse(result); err != nil {
		return "", err
	}
	return result, nil
}

// CurrentDepth counts the non-empty path segments of urlStr.
func CurrentDepth(urlStr string) int {
	u, err := url.Parse(urlStr)
	if err != nil {
		return 0
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	depth := 0
	for _, s := range segments {
		if s != "" {
			depth++
		}
	}
	return depth
}

// PathLength returns the character length of urlStr's path, excluding a
// trailing slash if present, so "/a/" and "/a" both measure 2.
func PathLength(urlStr string) int64 {
	u, err := url.Parse(urlStr)
	if err != nil {
		return 0
	}
	p := strings.TrimSuffix(u.Path, "/")
	return int64(len(p))
}
