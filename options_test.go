// Copyright 2026 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/lynx/blob/master/LICENSE.txt.

package lynx

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSimpleMatcher(t *testing.T) {
	m := NewPathMatcher[int](WithSimpleMatcher[int](true))
	require.NoError(t, m.Add("/a/*", 1))

	// Wildcard patterns land in the simple index, not the segment-aware one.
	assert.Len(t, m.simple.routes, 1)
	assert.Empty(t, m.wildcards.routes)

	m = NewPathMatcher[int](WithSimpleMatcher[int](false))
	require.NoError(t, m.Add("/a/*", 1))
	assert.Empty(t, m.simple.routes)
	assert.Len(t, m.wildcards.routes, 1)
}

func TestWithMergeHandlers(t *testing.T) {
	m := NewPathMatcher[int](WithMergeHandlers[int](true))
	assert.True(t, m.mergeHandlers)
	assert.Nil(t, m.mergeFn)

	m = NewPathMatcher[int]()
	assert.False(t, m.mergeHandlers)
}

func TestWithMergeFuncRequiresMergeHandlers(t *testing.T) {
	// Without WithMergeHandlers the merge function is never consulted.
	m := NewPathMatcher[int](WithMergeFunc[int](func(existing, incoming int) int {
		return existing + incoming
	}))
	require.NoError(t, m.Add("/p", 1))
	require.NoError(t, m.Add("/p", 2))

	h, ok := m.Match("/p")
	require.True(t, ok)
	assert.Equal(t, 2, h)
}

func TestWithLogger(t *testing.T) {
	logger := slog.Default()
	m := NewPathMatcher[int](WithLogger[int](logger))
	assert.Same(t, logger, m.logger)

	m = NewPathMatcher[int]()
	assert.Nil(t, m.logger)
}
