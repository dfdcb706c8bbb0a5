// Copyright 2026 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/lynx/blob/master/LICENSE.txt.

package lynx

import (
	"fmt"
	"strings"
)

// expandPattern expands the leftmost {a,b,...} group of pattern and recurses on each
// alternative, appending the resulting concrete patterns to dst in left-to-right order.
// The emission order is observable: later inserts with an equal handler may merge into
// routes emitted earlier. The "!{" sequence introduces a negative segment set and is
// never treated as a group opener. Once no group remains, a single trailing separator
// is stripped before the pattern is emitted.
func expandPattern(dst []string, pattern string, sep byte) ([]string, error) {
	searchFrom := 0
	for {
		group := strings.IndexByte(pattern[searchFrom:], '{')
		if group < 0 {
			break
		}
		group += searchFrom

		if group > 0 && pattern[group-1] == '!' {
			searchFrom = group + 1
			continue
		}

		end := strings.IndexByte(pattern[group:], '}')
		if end < 0 {
			return dst, fmt.Errorf("%w: unmatched '{' in %q", ErrMalformedPattern, pattern)
		}
		end += group

		prefix, suffix := pattern[:group], pattern[end+1:]

		var err error
		for _, value := range strings.Split(pattern[group+1:end], ",") {
			value = strings.TrimSpace(value)
			next := suffix
			// An empty alternative swallows a '.' literal that follows the group, so
			// that {,www}.example.com expands to example.com rather than .example.com.
			if value == "" && strings.HasPrefix(suffix, ".") {
				next = suffix[1:]
			}
			dst, err = expandPattern(dst, prefix+value+next, sep)
			if err != nil {
				return dst, err
			}
		}
		return dst, nil
	}

	if len(pattern) > 0 && pattern[len(pattern)-1] == sep {
		pattern = pattern[:len(pattern)-1]
	}
	return append(dst, pattern), nil
}

// appendSegments splits s on sep and appends each segment to dst. When s does not
// begin with the separator, a synthetic empty leading segment is prepended so that
// "abc" and "/abc" split identically. Empty segments produced by adjacent separators
// are preserved.
func appendSegments(dst []string, s string, sep byte) []string {
	if s == "" {
		return append(dst, "")
	}
	if s[0] != sep {
		dst = append(dst, "")
	}
	for {
		i := strings.IndexByte(s, sep)
		if i < 0 {
			return append(dst, s)
		}
		dst = append(dst, s[:i])
		s = s[i+1:]
	}
}

// containsWildcard reports whether a concrete pattern must be handled by a wildcard
// layer rather than the exact map.
func containsWildcard(p string) bool {
	return strings.IndexByte(p, '*') >= 0 || strings.Contains(p, "!{")
}
