// Package dateresolve turns informal date/time references into concrete
// timestamps using an ordered chain of parsing strategies. Resolution is
// deterministic: the reference instant is always passed in explicitly,
// never read from the system clock.
package dateresolve

import (
	"fmt"
	"strings"
	"time"
)

// Strategy tags which parsing strategy produced a resolution.
type Strategy string

const (
	StrategyExplicit    Strategy = "explicit"
	StrategyTraditional Strategy = "traditional"
	StrategyNatural     Strategy = "natural"
	StrategyNone        Strategy = "none"
)

// Resolution is a successfully resolved timestamp and the strategy that
// produced it.
type Resolution struct {
	Time     time.Time
	Strategy Strategy
}

// Resolver resolves date references against an IANA timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "UTC" or "Europe/Berlin".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Resolve runs the strategy chain over text: explicit machine formats
// first, then traditional written dates, then natural language. The first
// strategy to succeed wins; later ones are never attempted. Malformed
// input never fails hard — it simply reports no match.
//
// Ambiguous references (bare weekday, day-of-month without a year)
// resolve to the nearest occurrence not earlier than now.
func (r *Resolver) Resolve(text string, now time.Time) (Resolution, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Resolution{Strategy: StrategyNone}, false
	}
	now = now.In(r.location)

	if t, ok := r.resolveExplicit(text); ok {
		return Resolution{Time: t, Strategy: StrategyExplicit}, true
	}
	if t, ok := r.resolveTraditional(text, now); ok {
		return Resolution{Time: t, Strategy: StrategyTraditional}, true
	}
	if t, ok := r.resolveNatural(text, now); ok {
		return Resolution{Time: t, Strategy: StrategyNatural}, true
	}
	return Resolution{Strategy: StrategyNone}, false
}

// ResolveExplicit runs only the strict machine-format strategy. Callers
// scanning a wider text than the chain's target use it to give explicit
// dates precedence wherever they sit.
func (r *Resolver) ResolveExplicit(text string) (Resolution, bool) {
	if t, ok := r.resolveExplicit(strings.TrimSpace(text)); ok {
		return Resolution{Time: t, Strategy: StrategyExplicit}, true
	}
	return Resolution{Strategy: StrategyNone}, false
}
