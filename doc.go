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

/*
Package dbg implements a debug-inspection printer for Go values: given a
set of named expressions it writes each expression's source name, its type
and a recursively pretty-printed rendering of its value, annotated with the
call-site location and a timestamp.  It is a lighter alternative to a full
debugger or to structured logging during interactive debugging.

Quick Start

Write the raw argument text once, the way the values are spelled at the
call site, and pass the values alongside it:

	n := []int{1, 2, 3}
	dbg.Dbg("n, len(n)", n, len(n))

which writes a block of the form

	[main.go:12 (main) 24.08.26 15:04:05]
	n: []int = {1, 2, 3}
	len(n): int = 3

to standard error.  A blank line separates consecutive blocks.  Use New to
direct a Session at any io.Writer chosen once at initialization, and
Disable/Enable to toggle output around noisy regions.

Rendering Rules

Every type belongs to exactly one shape category, and each category has
one deterministic rendering rule:

	* scalars render in their natural textual form, undecorated
	* strings render double-quoted
	* any empty sequence, set, mapping or adapter renders as {}
	* sequences of scalar elements render inline: {1, 2, 3}
	* sequences of any other element shape render as a multi-line block
	  with a <ElemType> header and one [i] = ... line per element
	* mappings always render as a multi-line block headed
	  <KeyType -> ValueType> with one [key] = value line per entry
	* pointers are dereferenced and render their pointee inside braces;
	  a nil pointer is reported as an ErrNilDereference failure
	* queue, stack and heap adapters render by draining a private
	  snapshot, never the caller's adapter

User-defined struct types opt in by implementing Debuggable, naming their
own fields through the Printer callback.  Structs without it are reported
as ErrNoRenderer unless ConfigState.ReflectStructs is set.

The rendering options are controlled by the exported package global
dbg.Config.  See ConfigState for options documentation.
*/
package dbg
