// Copyright 2026 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/lynx/blob/master/LICENSE.txt.

// Package lynx provides a pattern-matching router over segmented strings: slash
// separated paths or dot separated domain names. Patterns combine literal segments,
// single-segment wildcards (*), multi-segment wildcards (**), negative segment sets
// (!{a,b}) and brace groups ({a,b}) expanded at insertion time. Lookups are boolean,
// handlers are opaque values, and matching stays fast under ten-thousand-route
// workloads thanks to an exact map for fully literal patterns and a size-bucketed
// index for wildcard routes.
package lynx

import (
	"log/slog"
	"strings"
	"sync"
)

const (
	slashDelim byte = '/'
	dotDelim   byte = '.'
)

// MergeFunc combines the handler already stored at a pattern with an incoming one.
// It is consulted only when handler merging is enabled via [WithMergeHandlers].
type MergeFunc[H comparable] func(existing, incoming H) H

// Matcher associates patterns with handlers and resolves an input string to the
// handler of the best-matching pattern. The handler type must be comparable:
// equality is what allows duplicate-insert detection and identical-handler
// route compaction.
//
// A Matcher is single-owner: Add, AddAll, Remove and Clear must not run
// concurrently with each other or with Match. Match alone is safe for
// concurrent use by multiple goroutines.
type Matcher[H comparable] struct {
	exact     map[string]H
	wildcards *wildcardIndex[H]
	simple    *simpleIndex[H]
	fallback  *H
	logger    *slog.Logger
	mergeFn   MergeFunc[H]
	segs      sync.Pool
	sep       byte

	simpleMatcher bool
	mergeHandlers bool
}

// NewPathMatcher returns a [Matcher] over the '/' separator.
func NewPathMatcher[H comparable](opts ...MatcherOption[H]) *Matcher[H] {
	return newMatcher[H](slashDelim, opts)
}

// NewDomainMatcher returns a [Matcher] over the '.' separator.
func NewDomainMatcher[H comparable](opts ...MatcherOption[H]) *Matcher[H] {
	return newMatcher[H](dotDelim, opts)
}

func newMatcher[H comparable](sep byte, opts []MatcherOption[H]) *Matcher[H] {
	m := &Matcher[H]{
		exact:     make(map[string]H),
		wildcards: newWildcardIndex[H](sep),
		simple:    new(simpleIndex[H]),
		sep:       sep,
	}
	m.segs.New = func() any {
		s := make([]string, 0, 16)
		return &s
	}
	for _, opt := range opts {
		opt.applyMatcher(m)
	}
	return m
}

// Add registers handler under pattern. The pattern is brace-expanded into one or
// more concrete patterns; fully literal ones land in the exact map, the rest in
// the configured wildcard layer. The patterns "*" and "**" install handler as the
// global fallback, replacing any previous one. An empty pattern is a no-op.
// Add returns [ErrMalformedPattern] when a brace group is unmatched; concrete
// patterns expanded before the failure are not inserted.
func (m *Matcher[H]) Add(pattern string, handler H) error {
	pattern = strings.TrimSuffix(pattern, ".")

	if pattern == "*" || pattern == "**" {
		m.fallback = &handler
		return nil
	}
	if pattern == "" {
		return nil
	}

	expanded, err := expandPattern(nil, pattern, m.sep)
	if err != nil {
		return err
	}

	for _, p := range expanded {
		if containsWildcard(p) {
			if m.simpleMatcher {
				m.simple.add(p, handler)
			} else {
				m.wildcards.add(p, handler)
			}
			continue
		}

		if prev, ok := m.exact[p]; ok && prev != handler && m.mergeHandlers {
			if m.mergeFn != nil {
				m.exact[p] = m.mergeFn(prev, handler)
				continue
			}
			if m.logger != nil {
				m.logger.Warn("lynx: merge enabled without a merge function, overwriting handler", slog.String("pattern", p))
			}
		}
		m.exact[p] = handler
	}
	return nil
}

// AddAll registers handler under every pattern in patterns. It stops at the first
// malformed pattern; patterns registered before the failure remain.
func (m *Matcher[H]) AddAll(patterns []string, handler H) error {
	for _, p := range patterns {
		if err := m.Add(p, handler); err != nil {
			return err
		}
	}
	return nil
}

// Remove erases every concrete pattern produced by brace-expanding pattern, from
// the exact map and from the active wildcard layer. Removing an unregistered
// pattern is a no-op. Wildcard routes are removed by their stored pattern text:
// a route compacted by the identical-handler merge is stored under the pattern
// of its first insert, so removing that pattern drops the whole merged route and
// removing a pattern merged into it later has no effect. The fallback handler is
// not affected; use [Matcher.Clear] to drop it.
func (m *Matcher[H]) Remove(pattern string) error {
	expanded, err := expandPattern(nil, pattern, m.sep)
	if err != nil {
		return err
	}

	for _, p := range expanded {
		delete(m.exact, p)
		if m.simpleMatcher {
			m.simple.removePattern(p)
		} else {
			m.wildcards.removePattern(p)
		}
	}
	return nil
}

// Clear removes every registered pattern and drops the fallback handler.
func (m *Matcher[H]) Clear() {
	clear(m.exact)
	m.wildcards.clear()
	m.simple.clear()
	m.fallback = nil
}

// Match resolves input to a handler. The exact map is consulted first, then the
// configured wildcard layer, then the fallback. The returned handler is a copy;
// ok reports whether any layer matched. Match is safe for concurrent use as long
// as no mutation is in flight.
func (m *Matcher[H]) Match(input string) (handler H, ok bool) {
	if h, ok := m.exact[input]; ok {
		return h, true
	}

	if m.simpleMatcher {
		if h, ok := m.simple.match(input); ok {
			return h, true
		}
	} else if len(m.wildcards.routes) > 0 {
		buf := m.segs.Get().(*[]string)
		segs := appendSegments((*buf)[:0], input, m.sep)
		h, matched := m.wildcards.match(segs)
		clear(segs)
		*buf = segs[:0]
		m.segs.Put(buf)
		if matched {
			return h, true
		}
	}

	if m.fallback != nil {
		return *m.fallback, true
	}
	return handler, false
}

// Len returns the number of stored routes across the exact map and the active
// wildcard layer. Routes compacted by the identical-handler merge count once.
// The fallback handler is not counted.
func (m *Matcher[H]) Len() int {
	n := len(m.exact)
	if m.simpleMatcher {
		return n + len(m.simple.routes)
	}
	return n + len(m.wildcards.routes)
}
