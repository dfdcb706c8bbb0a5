// Copyright 2026 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/lynx/blob/master/LICENSE.txt.

package lynx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPattern(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		sep     byte
		want    []string
	}{
		{
			name:    "no group",
			pattern: "/a/b",
			sep:     '/',
			want:    []string{"/a/b"},
		},
		{
			name:    "strip single trailing separator",
			pattern: "/a/b/",
			sep:     '/',
			want:    []string{"/a/b"},
		},
		{
			name:    "strip only one trailing separator",
			pattern: "/a/b//",
			sep:     '/',
			want:    []string{"/a/b/"},
		},
		{
			name:    "simple group",
			pattern: "/{a,b}",
			sep:     '/',
			want:    []string{"/a", "/b"},
		},
		{
			name:    "empty alternative leaves trailing separator to strip",
			pattern: "/opt/{,c}",
			sep:     '/',
			want:    []string{"/opt", "/opt/c"},
		},
		{
			name:    "empty alternative eats following dot",
			pattern: "{,www}.example.com",
			sep:     '.',
			want:    []string{"example.com", "www.example.com"},
		},
		{
			name:    "dot eating fires for path separator too",
			pattern: "/opt{,x}.png",
			sep:     '/',
			want:    []string{"/optpng", "/optx.png"},
		},
		{
			name:    "sequential groups expand depth first",
			pattern: "/{a,b}/{c,d}",
			sep:     '/',
			want:    []string{"/a/c", "/a/d", "/b/c", "/b/d"},
		},
		{
			name:    "alternatives are trimmed",
			pattern: "/{ a , b }",
			sep:     '/',
			want:    []string{"/a", "/b"},
		},
		{
			name:    "negative set is not a group",
			pattern: "/!{a,b}",
			sep:     '/',
			want:    []string{"/!{a,b}"},
		},
		{
			name:    "group after negative set",
			pattern: "/!{a,b}/{c,d}",
			sep:     '/',
			want:    []string{"/!{a,b}/c", "/!{a,b}/d"},
		},
		{
			name:    "wildcard alternative",
			pattern: "/test/{*,}",
			sep:     '/',
			want:    []string{"/test/*", "/test"},
		},
		{
			name:    "group with single alternative",
			pattern: "/api/{v1}/users",
			sep:     '/',
			want:    []string{"/api/v1/users"},
		},
		{
			name:    "empty group",
			pattern: "/a{}b",
			sep:     '/',
			want:    []string{"/ab"},
		},
		{
			name:    "domain group strips trailing dot",
			pattern: "{a,b}.example.com.",
			sep:     '.',
			want:    []string{"a.example.com", "b.example.com"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := expandPattern(nil, tc.pattern, tc.sep)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpandPatternMalformed(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
	}{
		{name: "unmatched open brace", pattern: "/{a,b"},
		{name: "unmatched brace in alternative", pattern: "/{a{,b}"},
		{name: "unmatched brace after group", pattern: "/{a,b}/{c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := expandPattern(nil, tc.pattern, '/')
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPattern)
			assert.ErrorContains(t, err, "unmatched '{'")
		})
	}
}

func TestAppendSegments(t *testing.T) {
	cases := []struct {
		name  string
		input string
		sep   byte
		want  []string
	}{
		{name: "empty input", input: "", sep: '/', want: []string{""}},
		{name: "root", input: "/", sep: '/', want: []string{"", ""}},
		{name: "leading separator", input: "/abc", sep: '/', want: []string{"", "abc"}},
		{name: "no leading separator gets synthetic segment", input: "abc", sep: '/', want: []string{"", "abc"}},
		{name: "nested", input: "/a/b/c", sep: '/', want: []string{"", "a", "b", "c"}},
		{name: "trailing separator yields empty segment", input: "/a/b/", sep: '/', want: []string{"", "a", "b", ""}},
		{name: "adjacent separators preserved", input: "a//b", sep: '/', want: []string{"", "a", "", "b"}},
		{name: "domain", input: "api.example.com", sep: '.', want: []string{"", "api", "example", "com"}},
		{name: "leading domain separator", input: ".example.com", sep: '.', want: []string{"", "example", "com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, appendSegments(nil, tc.input, tc.sep))
		})
	}
}

func TestContainsWildcard(t *testing.T) {
	assert.True(t, containsWildcard("/a/*"))
	assert.True(t, containsWildcard("/a/**"))
	assert.True(t, containsWildcard("/!{a,b}"))
	assert.False(t, containsWildcard("/a/b"))
	assert.False(t, containsWildcard("/a!b"))
	assert.False(t, containsWildcard("/a{b}"))
}
