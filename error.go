// Copyright 2026 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/lynx/blob/master/LICENSE.txt.

package lynx

import "errors"

var (
	// ErrMalformedPattern is returned by [Matcher.Add], [Matcher.AddAll] and [Matcher.Remove]
	// when a pattern contains a '{' brace group with no matching '}'. The returned error
	// carries the offending pattern in its message.
	ErrMalformedPattern = errors.New("malformed pattern")
)
