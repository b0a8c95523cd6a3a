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

import (
	"reflect"
	"strings"
)

// typeNameSubs maps package-qualified spellings of container types onto
// their conventional display names.
var typeNameSubs = map[string]string{
	"list.List":   "list",
	"queue.Queue": "queue",
	"dbg.FIFO":    "queue",
	"dbg.LIFO":    "stack",
	"dbg.Heap":    "heap",
}

// typeName returns a human-readable display name for t.  Named types show
// their bare name with any type-parameter suffix truncated at the first
// '[', so Pair[int, string] displays as Pair.  Unnamed types fall back to
// the full reflect spelling, which is always present even if less tidy.
func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		// Container types held by pointer display as the container,
		// not as an indirection to it.
		if sub, ok := typeNameSubs[t.Elem().String()]; ok {
			return sub
		}
		return "*" + typeName(t.Elem())
	}
	s := t.String()
	if i := strings.IndexByte(s, '['); i > 0 {
		s = s[:i]
	}
	if sub, ok := typeNameSubs[s]; ok {
		return sub
	}
	name := t.Name()
	if name == "" {
		return t.String()
	}
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	return name
}

// typeNameOf is the interface-value form of typeName used on multiplexer
// name lines.  An untyped nil has no type to show.
func typeNameOf(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return typeName(reflect.TypeOf(v))
}
