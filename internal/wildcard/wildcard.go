// Package wildcard calibrates and represents the per-Scan wildcard filter:
// a heuristic for recognizing a server's catch-all response so it can be
// dropped from the report stream without hiding genuine directories.
//
// The calibration strategy is grounded on maxvaer/dirfuzz's random-probe
// technique (internal/filter/smart.go's generateProbes), reshaped to the
// two-field {static_size, dynamic_offset} contract spec.md §3 specifies for
// WildcardFilter. The probing itself is an external collaborator per
// spec.md §1 — only its result contract is part of the core; this is one
// concrete, teacher-grounded implementation of that contract.
package wildcard

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/markvantol/dirhunt/internal/scanner"
	"github.com/markvantol/dirhunt/internal/urlx"
)

// Filter is the calibrated wildcard heuristic for one Scan. Both fields
// zero means "no filter" — every response is reported regardless of size.
type Filter struct {
	StaticSize    int64
	DynamicOffset int64
}

// randomProbe returns a path segment extremely unlikely to exist on any
// real server, of the requested length class.
func randomProbe(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return "dirhunt_wc_" + hex.EncodeToString(buf)
}

// Calibrate probes target with two differently-sized nonexistent paths and
// derives a Filter from how their response sizes relate to their path
// lengths. Returns an error (FilterCalibrationMiss per spec.md §7) if no
// stable relationship could be established; callers should fall back to the
// zero Filter.
func Calibrate(ctx context.Context, req *scanner.Requester, target string) (*Filter, error) {
	shortWord := randomProbe(4)
	longWord := randomProbe(12)

	shortURL := urlx.Expand(target, shortWord, nil, false, nil)
	longURL := urlx.Expand(target, longWord, nil, false, nil)
	if len(shortURL) == 0 || len(longURL) == 0 {
		return nil, fmt.Errorf("wildcard calibration: could not build probe urls for %s", target)
	}

	shortResp, err := req.Do(ctx, shortURL[0])
	if err != nil {
		return nil, fmt.Errorf("wildcard calibration: short probe failed: %w", err)
	}
	longResp, err := req.Do(ctx, longURL[0])
	if err != nil {
		return nil, fmt.Errorf("wildcard calibration: long probe failed: %w", err)
	}

	if shortResp.StatusCode != longResp.StatusCode {
		// Server distinguishes our probes (e.g. rate limiting); no stable
		// wildcard behavior to calibrate against.
		return nil, fmt.Errorf("wildcard calibration: inconsistent status codes (%d vs %d)", shortResp.StatusCode, longResp.StatusCode)
	}

	shortLen := urlx.PathLength(shortResp.URL)
	longLen := urlx.PathLength(longResp.URL)

	if shortResp.ContentLength == longResp.ContentLength {
		// Same body regardless of requested path length: a static
		// catch-all page.
		return &Filter{StaticSize: shortResp.ContentLength}, nil
	}

	// Does the body grow by exactly the difference in path length? That
	// indicates the requested path is echoed back verbatim in the body.
	sizeDelta := longResp.ContentLength - shortResp.ContentLength
	lenDelta := longLen - shortLen
	if lenDelta != 0 && sizeDelta == lenDelta {
		offset := shortResp.ContentLength - shortLen
		if offset < 0 {
			offset = 0
		}
		return &Filter{DynamicOffset: offset}, nil
	}

	return nil, fmt.Errorf("wildcard calibration: no stable size relationship found for %s", target)
}
