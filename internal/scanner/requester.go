package scanner

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/markvantol/dirhunt/internal/config"
)

// Requester wraps an HTTP client shared read-only across every Scan in a
// recursion tree.
type Requester struct {
	client    *http.Client
	headers   map[string]string
	userAgent string
}

// NewRequester builds a Requester honoring cfg's redirect policy, timeout,
// headers and proxy.
func NewRequester(cfg *config.ScanConfig) (*Requester, error) {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		DialContext: (&net.Dialer{
			Timeout: cfg.Timeout,
		}).DialContext,
		MaxIdleConnsPerHost: cfg.Threads,
		MaxIdleConns:        cfg.Threads,
	}

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", cfg.Proxy, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	if !cfg.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	ua := cfg.UserAgent
	if ua == "" {
		ua = "dirhunt/1.0"
	}

	return &Requester{
		client:    client,
		headers:   cfg.Headers,
		userAgent: ua,
	}, nil
}

// Do issues a GET against targetURL and returns the parsed Response.
// Network errors (DNS, TLS, connect, body read) are returned to the caller,
// who is responsible for logging and skipping per spec.md §7.
func (r *Requester) Do(ctx context.Context, targetURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", r.userAgent)
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body for %s: %w", targetURL, err)
	}

	contentLength := resp.ContentLength
	if contentLength < 0 {
		contentLength = n
	}

	finalURL := targetURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	result := &Response{
		StatusCode:    resp.StatusCode,
		URL:           finalURL,
		ContentLength: contentLength,
	}
	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		result.RedirectLocation = resp.Header.Get("Location")
	}

	return result, nil
}
