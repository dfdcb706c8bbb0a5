// Copyright 2026 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/lynx/blob/master/LICENSE.txt.

package lynx

import "iter"

// All returns an iterator over the registered (pattern, handler) pairs: exact
// patterns first in unspecified order, then wildcard routes in their stored
// order. Wildcard patterns appear with their concrete post-expansion text; a
// route compacted by the identical-handler merge is yielded once, under the
// pattern of the first insert. The fallback handler is not yielded. The
// iterator reads live state and must not run concurrently with mutations.
func (m *Matcher[H]) All() iter.Seq2[string, H] {
	return func(yield func(string, H) bool) {
		for p, h := range m.exact {
			if !yield(p, h) {
				return
			}
		}
		if m.simpleMatcher {
			for i := range m.simple.routes {
				r := &m.simple.routes[i]
				if !yield(r.pattern, r.handler) {
					return
				}
			}
			return
		}
		for _, r := range m.wildcards.routes {
			if !yield(r.pattern, r.handler) {
				return
			}
		}
	}
}

// Patterns returns an iterator over the registered concrete patterns, in the
// same order as [Matcher.All].
func (m *Matcher[H]) Patterns() iter.Seq[string] {
	return func(yield func(string) bool) {
		for p := range m.All() {
			if !yield(p) {
				return
			}
		}
	}
}
