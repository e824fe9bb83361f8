// Package marketdata implements the market data resolution pipeline: bulk
// fetching from the upstream exchange endpoint, normalization of its unstable
// record shapes, symbol matching against the tracked instrument set, and
// source fallback between the persisted snapshot store and a live fetch.
package marketdata

import "strings"

// SymbolMatcher maps raw upstream instrument identifiers onto the fixed set
// of tracked instrument codes. Upstream identifiers may carry an
// exchange-specific suffix after a dot ("JKH.N0000"); only the literal prefix
// before the first dot is matched, case-insensitively and exactly — "COMBX"
// never matches a tracked "COMB".
type SymbolMatcher struct {
	tracked map[string]struct{}
	order   []string
}

// NewSymbolMatcher creates a matcher over the given tracked symbols.
func NewSymbolMatcher(symbols []string) *SymbolMatcher {
	m := &SymbolMatcher{tracked: make(map[string]struct{}, len(symbols))}
	for _, s := range symbols {
		code := strings.ToUpper(strings.TrimSpace(s))
		if code == "" {
			continue
		}
		if _, dup := m.tracked[code]; !dup {
			m.tracked[code] = struct{}{}
			m.order = append(m.order, code)
		}
	}
	return m
}

// Match resolves a raw upstream identifier to a tracked instrument code.
// Returns the code and true on a match, or the normalized prefix and false
// when the instrument is not tracked.
func (m *SymbolMatcher) Match(raw string) (string, bool) {
	prefix, _, _ := strings.Cut(raw, ".")
	code := strings.ToUpper(strings.TrimSpace(prefix))
	if code == "" {
		return "", false
	}
	_, ok := m.tracked[code]
	return code, ok
}

// Symbols returns the tracked codes in registration order.
func (m *SymbolMatcher) Symbols() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
