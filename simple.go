// Copyright 2026 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/lynx/blob/master/LICENSE.txt.

package lynx

import (
	"slices"
	"strings"
)

// simpleRoute is a pattern compiled for the separator-agnostic glob matcher:
// the fragments between '*' runs, with prefix and suffix anchoring precomputed.
type simpleRoute[H comparable] struct {
	handler   H
	pattern   string
	fragments []string
	nonEmpty  int
	hasPrefix bool
	hasSuffix bool
}

// simpleIndex is the alternative wildcard layer: '*' matches any substring,
// including the separator. Routes are scanned in insertion order.
type simpleIndex[H comparable] struct {
	routes []simpleRoute[H]
}

func (x *simpleIndex[H]) add(pattern string, handler H) {
	fragments := strings.Split(pattern, "*")
	r := simpleRoute[H]{
		handler:   handler,
		pattern:   pattern,
		fragments: fragments,
		hasPrefix: fragments[0] != "",
		hasSuffix: fragments[len(fragments)-1] != "",
	}
	for _, f := range fragments {
		if f != "" {
			r.nonEmpty++
		}
	}
	x.routes = append(x.routes, r)
}

func (x *simpleIndex[H]) removePattern(pattern string) {
	x.routes = slices.DeleteFunc(x.routes, func(r simpleRoute[H]) bool {
		return r.pattern == pattern
	})
}

func (x *simpleIndex[H]) clear() {
	x.routes = nil
}

// match returns the handler of the first route accepting input. Prefix and
// suffix fragments anchor the scan; interior fragments are located left to
// right with the cursor advancing past each hit.
func (x *simpleIndex[H]) match(input string) (h H, ok bool) {
	for i := range x.routes {
		r := &x.routes[i]
		if r.hasPrefix && !strings.HasPrefix(input, r.fragments[0]) {
			continue
		}
		if r.hasSuffix && !strings.HasSuffix(input, r.fragments[len(r.fragments)-1]) {
			continue
		}

		if r.nonEmpty <= 2 {
			return r.handler, true
		}

		pos := 0
		if r.hasPrefix {
			pos = len(r.fragments[0])
		}
		matched := true
		for _, frag := range r.fragments[1 : len(r.fragments)-1] {
			if frag == "" {
				continue
			}
			j := strings.Index(input[pos:], frag)
			if j < 0 {
				matched = false
				break
			}
			pos += j + len(frag)
		}
		if matched {
			return r.handler, true
		}
	}
	return h, false
}
