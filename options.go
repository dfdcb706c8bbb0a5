// Copyright 2026 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/lynx/blob/master/LICENSE.txt.

package lynx

import "log/slog"

// MatcherOption configures a [Matcher] at construction time.
type MatcherOption[H comparable] interface {
	applyMatcher(*Matcher[H])
}

type optionFunc[H comparable] func(*Matcher[H])

func (o optionFunc[H]) applyMatcher(m *Matcher[H]) {
	o(m)
}

// WithSimpleMatcher selects the separator-agnostic glob layer for wildcard
// patterns: '*' matches any substring, including the separator, and patterns
// are tried in insertion order. By default the segment-aware wildcard index
// is used.
func WithSimpleMatcher[H comparable](enable bool) MatcherOption[H] {
	return optionFunc[H](func(m *Matcher[H]) {
		m.simpleMatcher = enable
	})
}

// WithMergeHandlers controls what happens when a fully literal pattern is
// registered twice with different handlers. Disabled (the default), the later
// insert overwrites. Enabled, collisions are resolved by the function set with
// [WithMergeFunc]; without one, the insert overwrites and a diagnostic is
// logged when a logger is configured.
func WithMergeHandlers[H comparable](enable bool) MatcherOption[H] {
	return optionFunc[H](func(m *Matcher[H]) {
		m.mergeHandlers = enable
	})
}

// WithMergeFunc sets the function combining the stored and incoming handlers on
// an exact-pattern collision. It is consulted only when merging is enabled via
// [WithMergeHandlers].
func WithMergeFunc[H comparable](fn MergeFunc[H]) MatcherOption[H] {
	return optionFunc[H](func(m *Matcher[H]) {
		m.mergeFn = fn
	})
}

// WithLogger sets the logger used for diagnostics. The matcher logs only on
// exact-pattern collisions with merging enabled but no merge function set.
// By default nothing is logged.
func WithLogger[H comparable](logger *slog.Logger) MatcherOption[H] {
	return optionFunc[H](func(m *Matcher[H]) {
		m.logger = logger
	})
}
