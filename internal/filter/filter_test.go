package filter

import (
	"testing"

	"github.com/markvantol/dirhunt/internal/config"
	"github.com/markvantol/dirhunt/internal/scanner"
	"github.com/markvantol/dirhunt/internal/wildcard"
)

func TestStatusFilterInclude(t *testing.T) {
	cfg := &config.ScanConfig{IncludeStatus: []int{200, 301}}
	f := &StatusFilter{cfg: cfg}

	if f.ShouldFilter(&scanner.Response{StatusCode: 200}) {
		t.Error("200 should pass include filter")
	}
	if !f.ShouldFilter(&scanner.Response{StatusCode: 404}) {
		t.Error("404 should be filtered by include filter")
	}
}

func TestStatusFilterExclude(t *testing.T) {
	cfg := &config.ScanConfig{ExcludeStatus: []int{404, 500}}
	f := &StatusFilter{cfg: cfg}

	if f.ShouldFilter(&scanner.Response{StatusCode: 200}) {
		t.Error("200 should pass exclude filter")
	}
	if !f.ShouldFilter(&scanner.Response{StatusCode: 404}) {
		t.Error("404 should be filtered by exclude filter")
	}
}

func TestSizeFilter(t *testing.T) {
	cfg := &config.ScanConfig{ExcludeSize: []int64{0, 1234}}
	f := &SizeFilter{cfg: cfg}

	if !f.ShouldFilter(&scanner.Response{ContentLength: 1234}) {
		t.Error("size 1234 should be filtered")
	}
	if f.ShouldFilter(&scanner.Response{ContentLength: 5678}) {
		t.Error("size 5678 should pass")
	}
}

func TestChainShortCircuits(t *testing.T) {
	cfg := &config.ScanConfig{ExcludeStatus: []int{404}, ExcludeSize: []int64{0}, AutoFilter: true}
	chain := Build(cfg, &wildcard.Filter{})

	filtered, reason := chain.Apply(&scanner.Response{StatusCode: 404, ContentLength: 0})
	if !filtered {
		t.Fatal("expected chain to filter")
	}
	if reason != "status" {
		t.Errorf("expected reason 'status', got %q", reason)
	}
}

func TestStaticWildcardFilter(t *testing.T) {
	cfg := &config.ScanConfig{AutoFilter: true}
	wf := &wildcard.Filter{StaticSize: 2048}
	chain := Build(cfg, wf)

	filtered, reason := chain.Apply(&scanner.Response{StatusCode: 200, ContentLength: 2048, URL: "http://h/a"})
	if !filtered || reason != "wildcard-static" {
		t.Fatalf("expected static wildcard filter to match, got filtered=%v reason=%q", filtered, reason)
	}
}

func TestDynamicWildcardFilter(t *testing.T) {
	cfg := &config.ScanConfig{AutoFilter: true}
	wf := &wildcard.Filter{DynamicOffset: 100}
	chain := Build(cfg, wf)

	// /abc -> path length 4 ("/abc"); content length must equal 4+100.
	filtered, reason := chain.Apply(&scanner.Response{StatusCode: 200, ContentLength: 104, URL: "http://h/abc"})
	if !filtered || reason != "wildcard-dynamic" {
		t.Fatalf("expected dynamic wildcard filter to match, got filtered=%v reason=%q", filtered, reason)
	}

	// Trailing slash must not change the path length used for the match.
	filtered, reason = chain.Apply(&scanner.Response{StatusCode: 200, ContentLength: 104, URL: "http://h/abc/"})
	if !filtered || reason != "wildcard-dynamic" {
		t.Fatalf("expected dynamic wildcard filter to match trailing-slash url, got filtered=%v reason=%q", filtered, reason)
	}
}

func TestAutoFilterDisabledSkipsWildcardRules(t *testing.T) {
	cfg := &config.ScanConfig{AutoFilter: false}
	wf := &wildcard.Filter{StaticSize: 2048}
	chain := Build(cfg, wf)

	filtered, _ := chain.Apply(&scanner.Response{StatusCode: 200, ContentLength: 2048, URL: "http://h/a"})
	if filtered {
		t.Fatal("auto-filter disabled should not apply wildcard rules")
	}
}

func TestFilterBeforeRecursionPrecedence(t *testing.T) {
	// A response matching the static wildcard filter is not reported, but
	// classify.IsDirectory is computed independently and unaffected by the
	// filter chain's verdict (spec.md §4.3 ordering note).
	cfg := &config.ScanConfig{AutoFilter: true}
	wf := &wildcard.Filter{StaticSize: 10}
	chain := Build(cfg, wf)

	resp := &scanner.Response{StatusCode: 200, ContentLength: 10, URL: "http://h/dir/"}
	filtered, _ := chain.Apply(resp)
	if !filtered {
		t.Fatal("expected response to be filtered by static wildcard")
	}
	// The caller (scanner worker) still has the unfiltered resp available
	// to classify for recursion regardless of this verdict.
}
