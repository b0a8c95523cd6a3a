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

// ConfigState houses the rendering options used by a Session and by the
// Fdump and Sdump helpers.
type ConfigState struct {
	// Indent is the string appended once per nesting level when rendering
	// multi-line composite values.  It is two spaces by default.
	Indent string

	// SortKeys specifies map and set keys should be sorted before being
	// rendered.  This gives the ordered flavor of the two container
	// families and a deterministic, diffable output.  Only native key
	// types (bool, ints, uints, floats, uintptr and string) sort by
	// value; other types sort according to their reflect.Value.String()
	// output which guarantees display stability.
	SortKeys bool

	// ReflectStructs renders struct values that do not implement
	// Debuggable by reflecting over their exported fields instead of
	// reporting ErrNoRenderer.
	ReflectStructs bool
}

// Config is the active configuration of the top-level functions and the
// default Session.
var Config = ConfigState{Indent: "  ", SortKeys: true}

// NewDefaultConfig returns a ConfigState with the default values.
func NewDefaultConfig() *ConfigState {
	return &ConfigState{Indent: "  ", SortKeys: true}
}
