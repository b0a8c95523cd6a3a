/*
 * Copyright (c) 2016 Dan Kortschak <dan.kortschak@adelaide.edu.au>
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package dbg

import "errors"

var (
	// ErrNilDereference is reported when a nil pointer reaches the
	// renderer.  Indirections are always dereferenced during rendering,
	// so a nil can never be rendered meaningfully.
	ErrNilDereference = errors.New("dbg: null dereference on render")

	// ErrArgCountMismatch is reported when the number of display names
	// recovered from the raw argument text differs from the number of
	// values passed alongside it.
	ErrArgCountMismatch = errors.New("dbg: name/value count mismatch")

	// ErrNoRenderer is reported when a value's type matches no shape
	// category and provides no DebugRender method.
	ErrNoRenderer = errors.New("dbg: no renderer for type")

	// ErrUnbalancedIndent is reported when rendering completes with a
	// nesting depth different from the one it started with.  This
	// indicates a defect in a rendering rule, not in caller data.
	ErrUnbalancedIndent = errors.New("dbg: unbalanced indentation")
)
