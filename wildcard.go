// Copyright 2026 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/lynx/blob/master/LICENSE.txt.

package lynx

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/tigerwill90/lynx/internal/slicesutil"
)

type partKind uint8

const (
	partLiteral partKind = iota
	partStar
	partDoubleStar
	partNegSet
	partPosSet
)

// part is one compiled element of a concrete pattern's segment sequence.
// Set payloads are kept as small string slices rather than maps: negative and
// positive sets rarely exceed a handful of values, and a linear scan beats a
// map lookup at that size (see internal/slicesutil).
type part struct {
	literal string
	set     []string
	kind    partKind
}

func (p part) equal(o part) bool {
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case partLiteral:
		return p.literal == o.literal
	case partNegSet, partPosSet:
		return slicesutil.EqualUnsorted(p.set, o.set)
	default:
		return true
	}
}

func (p part) contains(seg string) bool {
	return slices.Contains(p.set, seg)
}

// compileSegment classifies one segment of a concrete pattern. Positive sets are
// never produced here; they arise only from the identical-handler merge step.
func compileSegment(seg string) part {
	switch {
	case seg == "**":
		return part{kind: partDoubleStar}
	case seg == "*":
		return part{kind: partStar}
	case len(seg) > 3 && strings.HasPrefix(seg, "!{") && seg[len(seg)-1] == '}':
		values := strings.Split(seg[2:len(seg)-1], ",")
		set := make([]string, 0, len(values))
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				set = append(set, v)
			}
		}
		return part{kind: partNegSet, set: set}
	default:
		return part{kind: partLiteral, literal: seg}
	}
}

// route is a stored (compiled parts, handler, original pattern) triple.
type route[H comparable] struct {
	handler       H
	pattern       string
	parts         []part
	hasDoubleStar bool
}

// sizeGroup buckets routes of one part count for lookup. Routes whose first part
// is a literal are sub-indexed by that literal's text.
type sizeGroup[H comparable] struct {
	literalFirst  map[string][]*route[H]
	nonLiteral    []*route[H]
	size          int
	hasDoubleStar bool
}

// wildcardIndex holds all non-literal routes of a [Matcher], compiled to part
// sequences and kept sorted by descending part count (ties keep insertion order).
// The size-group index is derived state: mutations drop it and the next lookup
// rebuilds it under mu, publishing the result through an atomic pointer so that
// concurrent read-only lookups observe the rebuild atomically.
type wildcardIndex[H comparable] struct {
	groups atomic.Pointer[[]sizeGroup[H]]
	routes []*route[H]
	mu     sync.Mutex
	sep    byte
}

func newWildcardIndex[H comparable](sep byte) *wildcardIndex[H] {
	return &wildcardIndex[H]{sep: sep}
}

func (x *wildcardIndex[H]) invalidate() {
	x.groups.Store(nil)
}

// add compiles pattern and inserts it. When an existing route carries the same
// handler and differs from the new part sequence at exactly one mergeable index,
// the two are coalesced into a single route with a positive-set part instead of
// appending.
func (x *wildcardIndex[H]) add(pattern string, handler H) {
	raw := appendSegments(make([]string, 0, strings.Count(pattern, string(x.sep))+2), pattern, x.sep)
	parts := make([]part, 0, len(raw))
	for _, seg := range raw {
		parts = append(parts, compileSegment(seg))
	}

	if x.mergeInto(parts, handler) {
		x.invalidate()
		return
	}

	hasDoubleStar := false
	for _, p := range parts {
		if p.kind == partDoubleStar {
			hasDoubleStar = true
			break
		}
	}

	x.routes = append(x.routes, &route[H]{
		parts:         parts,
		handler:       handler,
		pattern:       pattern,
		hasDoubleStar: hasDoubleStar,
	})
	slices.SortStableFunc(x.routes, func(a, b *route[H]) int {
		return cmp.Compare(len(b.parts), len(a.parts))
	})
	x.invalidate()
}

// mergeInto searches for an existing route with the same handler and part count
// that differs from parts at a single index, where either both parts are literals
// or the existing part is already a positive set. On success the existing route
// is broadened in place and true is returned.
func (x *wildcardIndex[H]) mergeInto(parts []part, handler H) bool {
	for _, existing := range x.routes {
		if existing.handler != handler || len(existing.parts) != len(parts) {
			continue
		}

		diff := -1
		canMerge := true
		for i := range parts {
			ep, np := existing.parts[i], parts[i]
			if ep.equal(np) {
				continue
			}
			setLiteral := ep.kind == partPosSet && np.kind == partLiteral
			bothLiteral := ep.kind == partLiteral && np.kind == partLiteral
			if (!setLiteral && !bothLiteral) || diff >= 0 {
				canMerge = false
				break
			}
			diff = i
		}
		if !canMerge || diff < 0 {
			continue
		}

		ep := &existing.parts[diff]
		np := parts[diff]
		if ep.kind == partPosSet {
			if !ep.contains(np.literal) {
				ep.set = append(ep.set, np.literal)
			}
		} else {
			*ep = part{kind: partPosSet, set: []string{ep.literal, np.literal}}
		}
		return true
	}
	return false
}

// removePattern drops every route whose original pattern text equals pattern.
func (x *wildcardIndex[H]) removePattern(pattern string) {
	n := len(x.routes)
	x.routes = slices.DeleteFunc(x.routes, func(r *route[H]) bool {
		return r.pattern == pattern
	})
	if len(x.routes) != n {
		x.invalidate()
	}
}

func (x *wildcardIndex[H]) clear() {
	x.routes = nil
	x.invalidate()
}

// index returns the size-group buckets, rebuilding them when a mutation dropped
// the previous snapshot. The double-checked rebuild keeps concurrent lookups on
// an otherwise idle matcher safe.
func (x *wildcardIndex[H]) index() []sizeGroup[H] {
	if g := x.groups.Load(); g != nil {
		return *g
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if g := x.groups.Load(); g != nil {
		return *g
	}

	groups := make([]sizeGroup[H], 0, 8)
	bySize := make(map[int]int, 8)
	for _, rte := range x.routes {
		sz := len(rte.parts)
		gi, ok := bySize[sz]
		if !ok {
			groups = append(groups, sizeGroup[H]{size: sz, literalFirst: make(map[string][]*route[H])})
			gi = len(groups) - 1
			bySize[sz] = gi
		}
		if rte.hasDoubleStar {
			groups[gi].hasDoubleStar = true
		}
		if first := rte.parts[0]; first.kind == partLiteral {
			groups[gi].literalFirst[first.literal] = append(groups[gi].literalFirst[first.literal], rte)
		} else {
			groups[gi].nonLiteral = append(groups[gi].nonLiteral, rte)
		}
	}
	slices.SortFunc(groups, func(a, b sizeGroup[H]) int {
		return cmp.Compare(b.size, a.size)
	})

	x.groups.Store(&groups)
	return groups
}

// match walks the size-ordered buckets and returns the handler of the first
// route whose segment matcher accepts segs. Buckets larger than the input are
// skipped unless they hold a double-star route.
func (x *wildcardIndex[H]) match(segs []string) (h H, ok bool) {
	groups := x.index()

	first := segs[0]
	for i := range groups {
		g := &groups[i]
		if g.size > len(segs) && !g.hasDoubleStar {
			continue
		}

		for _, rte := range g.literalFirst[first] {
			if len(rte.parts) > len(segs) && !rte.hasDoubleStar {
				continue
			}
			if matchParts(rte.parts, segs) {
				return rte.handler, true
			}
		}
		for _, rte := range g.nonLiteral {
			if len(rte.parts) > len(segs) && !rte.hasDoubleStar {
				continue
			}
			if matchParts(rte.parts, segs) {
				return rte.handler, true
			}
		}
	}
	return h, false
}

// matchParts runs the backtracking segment matcher. A single pending double-star
// anchor is kept: on mismatch the matcher rewinds to the part after the anchor
// and lets the double-star absorb one more segment. Empty segments fail star and
// set parts but may match an empty literal.
func matchParts(parts []part, segs []string) bool {
	if len(parts) == 1 {
		only := parts[0]
		switch only.kind {
		case partDoubleStar:
			return true
		case partStar:
			return len(segs) == 1 && segs[0] != ""
		case partLiteral:
			return len(segs) == 1 && segs[0] == only.literal
		case partNegSet:
			return len(segs) == 1 && segs[0] != "" && !only.contains(segs[0])
		case partPosSet:
			return len(segs) == 1 && only.contains(segs[0])
		}
		return false
	}

	pi, si := 0, 0
	starPi, starSi := -1, -1

	for si < len(segs) {
		if pi < len(parts) {
			matched := false
			switch p := &parts[pi]; p.kind {
			case partDoubleStar:
				starPi, starSi = pi, si
				pi++
				continue
			case partStar:
				matched = segs[si] != ""
			case partNegSet:
				matched = segs[si] != "" && !p.contains(segs[si])
			case partPosSet:
				matched = segs[si] != "" && p.contains(segs[si])
			case partLiteral:
				matched = segs[si] == p.literal
			}
			if matched {
				pi++
				si++
				continue
			}
		}
		if starPi < 0 {
			break
		}
		pi = starPi + 1
		starSi++
		si = starSi
	}

	for pi < len(parts) && parts[pi].kind == partDoubleStar {
		pi++
	}
	return pi == len(parts) && si == len(segs)
}
