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

import "unicode"

// argNames splits a raw argument-list string into the display names the
// caller wrote at the invocation site.  An argument that is itself a call
// expression must be wrapped in an extra pair of parentheses so its
// internal commas do not split it: "a, b + c, (Sum(a, b))" yields
// ["a", "b + c", "Sum(a, b)"].  Parenthesis nesting inside the wrapped
// group is tracked.
type argNames struct {
	args string
	idx  int
}

// pop returns the next display name, or an empty string once the input is
// exhausted.  The empty string is a sentinel, not an error; a raw string
// that cannot be parsed degrades to empty names.
func (a *argNames) pop() string {
	for a.idx < len(a.args) && unicode.IsSpace(rune(a.args[a.idx])) {
		a.idx++
	}
	if a.idx == len(a.args) {
		return ""
	}

	var name string
	if a.args[a.idx] == '(' {
		lvl, end := 1, a.idx+1
		for ; end < len(a.args); end++ {
			switch a.args[end] {
			case '(':
				lvl++
			case ')':
				lvl--
			}
			if lvl == 0 {
				break
			}
		}
		name = a.args[a.idx+1 : end]
		for ; end < len(a.args) && a.args[end] != ','; end++ {
		}
		a.idx = end + 1
	} else {
		end := a.idx + 1
		for ; end < len(a.args) && a.args[end] != ','; end++ {
		}
		name = a.args[a.idx:end]
		a.idx = end + 1
	}

	return name
}

// splitArgNames returns all display names in raw, in order.
func splitArgNames(raw string) []string {
	a := argNames{args: raw}
	var names []string
	for a.idx < len(a.args) {
		rest := a.args[a.idx:]
		if allSpace(rest) {
			break
		}
		names = append(names, a.pop())
	}
	return names
}

func allSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
