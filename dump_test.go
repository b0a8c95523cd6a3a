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

package dbg_test

import (
	"bytes"
	"container/list"
	"errors"
	"strings"
	"testing"

	"github.com/eapache/queue"
	"github.com/google/go-cmp/cmp"

	"github.com/kortschak/dbg"
)

// point is a user-defined aggregate opting in through Debuggable.
type point struct {
	x, y int
}

func (p point) DebugRender(pr *dbg.Printer) error {
	return pr.Fields("x, y", p.x, p.y)
}

// plain is an aggregate without a DebugRender method.
type plain struct {
	A int
	B string
}

// node builds pointer cycles.
type node struct {
	Next *node
}

func intLess(a, b interface{}) bool { return a.(int) < b.(int) }

func newIntList(vs ...interface{}) *list.List {
	l := list.New()
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

func newRawQueue(vs ...interface{}) *queue.Queue {
	q := queue.New()
	for _, v := range vs {
		q.Add(v)
	}
	return q
}

var reflectConfig = &dbg.ConfigState{Indent: "  ", SortKeys: true, ReflectStructs: true}

var dumpTests = []struct {
	name string
	cs   *dbg.ConfigState
	in   interface{}
	want string
}{
	{name: "int", in: 42, want: "42"},
	{name: "negative int8", in: int8(-7), want: "-7"},
	{name: "uint", in: uint(10), want: "10"},
	{name: "bool", in: true, want: "true"},
	{name: "float", in: 3.25, want: "3.25"},
	{name: "complex", in: complex(1, 2), want: "(1+2i)"},

	{name: "string", in: "hi", want: `"hi"`},
	{name: "string embedded quotes unescaped", in: `say "hi"`, want: `"say "hi""`},
	{name: "empty string", in: "", want: `""`},

	{name: "empty slice", in: []int{}, want: "{}"},
	{name: "nil slice", in: []int(nil), want: "{}"},
	{name: "scalar slice", in: []int{1, 2, 3}, want: "{1, 2, 3}"},
	{name: "one-element scalar slice stays inline", in: []int{7}, want: "{7}"},
	{name: "scalar array", in: [3]int{1, 2, 3}, want: "{1, 2, 3}"},
	{name: "empty array", in: [0]int{}, want: "{}"},

	{
		name: "string elements use the block form",
		in:   []string{"a", "b"},
		want: "{\n  <string>\n  [0] = \"a\"\n  [1] = \"b\"\n}",
	},
	{
		name: "nested scalar slices",
		in:   [][]int{{1, 2}, {3}},
		want: "{\n  <[]int>\n  [0] = {1, 2}\n  [1] = {3}\n}",
	},
	{
		name: "aggregate elements",
		in:   []point{{1, 2}},
		want: "{\n  <point>\n  [0] = {\n    x: int = 1\n    y: int = 2\n  }\n}",
	},

	{name: "empty map", in: map[int]string{}, want: "{}"},
	{name: "nil map", in: map[int]string(nil), want: "{}"},
	{
		name: "scalar map still uses the block form",
		in:   map[int]string{1: "a"},
		want: "{\n  <int -> string>\n  [1] = \"a\"\n}",
	},
	{
		name: "map keys sorted",
		in:   map[int]string{2: "b", 1: "a"},
		want: "{\n  <int -> string>\n  [1] = \"a\"\n  [2] = \"b\"\n}",
	},
	{
		name: "string keys rendered as keys",
		in:   map[string][]int{"a": {1}},
		want: "{\n  <string -> []int>\n  [\"a\"] = {1}\n}",
	},

	{name: "empty set", in: map[int]struct{}{}, want: "{}"},
	{name: "scalar set inline sorted", in: map[int]struct{}{3: {}, 1: {}, 2: {}}, want: "{1, 2, 3}"},
	{
		name: "textual set uses the block form",
		in:   map[string]struct{}{"b": {}, "a": {}},
		want: "{\n  <string>\n  [0] = \"a\"\n  [1] = \"b\"\n}",
	},

	{name: "pointer to scalar", in: ptrTo(42), want: "{42}"},
	{
		name: "pointer to aggregate",
		in:   &point{x: 1, y: 2},
		want: "{\n  <point>\n  {\n    x: int = 1\n    y: int = 2\n  }\n}",
	},

	{
		name: "aggregate by method",
		in:   point{x: 1, y: 2},
		want: "{\n  x: int = 1\n  y: int = 2\n}",
	},
	{
		name: "reflective aggregate",
		cs:   reflectConfig,
		in:   plain{A: 1, B: "x"},
		want: "{\n  A: int = 1\n  B: string = \"x\"\n}",
	},
	{
		name: "pointer cycle annotated",
		cs:   reflectConfig,
		in:   cyclicNode(),
		want: "{\n  <node>\n  {\n    Next: *node = <cycle>\n  }\n}",
	},

	{name: "empty deque", in: list.New(), want: "{}"},
	{name: "scalar deque", in: newIntList(1, 2, 3), want: "{1, 2, 3}"},

	{name: "fifo drains front first", in: dbg.NewFIFO(1, 2, 3), want: "{1, 2, 3}"},
	{name: "lifo drains top first", in: dbg.NewLIFO(1, 2, 3), want: "{3, 2, 1}"},
	{name: "heap drains in priority order", in: dbg.NewHeap(intLess, 3, 1, 2), want: "{1, 2, 3}"},
	{name: "empty adapter", in: dbg.NewFIFO(), want: "{}"},
	{name: "raw ring buffer queue", in: newRawQueue(1, 2), want: "{1, 2}"},
	{
		name: "adapter of aggregates",
		in:   dbg.NewFIFO(point{1, 2}),
		want: "{\n  <point>\n  [0] = {\n    x: int = 1\n    y: int = 2\n  }\n}",
	},
}

func ptrTo(v int) *int { return &v }

func cyclicNode() *node {
	n := &node{}
	n.Next = n
	return n
}

func TestDump(t *testing.T) {
	for _, test := range dumpTests {
		cs := test.cs
		if cs == nil {
			cs = dbg.NewDefaultConfig()
		}
		got, err := cs.Sdump(test.in)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: unexpected rendering (-want +got):\n%s", test.name, diff)
		}
	}
}

var dumpErrorTests = []struct {
	name    string
	cs      *dbg.ConfigState
	in      interface{}
	wantErr error
}{
	{name: "nil pointer", in: (*int)(nil), wantErr: dbg.ErrNilDereference},
	{name: "nil pointer element", in: []*int{nil}, wantErr: dbg.ErrNilDereference},
	{name: "nil deque", in: (*list.List)(nil), wantErr: dbg.ErrNilDereference},
	{name: "untyped nil", in: nil, wantErr: dbg.ErrNoRenderer},
	{name: "aggregate without renderer", in: plain{A: 1}, wantErr: dbg.ErrNoRenderer},
	{name: "channel", in: make(chan int), wantErr: dbg.ErrNoRenderer},
	{name: "function", in: func() {}, wantErr: dbg.ErrNoRenderer},
}

func TestDumpErrors(t *testing.T) {
	for _, test := range dumpErrorTests {
		cs := test.cs
		if cs == nil {
			cs = dbg.NewDefaultConfig()
		}
		_, err := cs.Sdump(test.in)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: got error %v want %v", test.name, err, test.wantErr)
		}
	}
}

// Draining during rendering must consume a private snapshot, never the
// caller's adapter.
func TestDumpLeavesAdaptersIntact(t *testing.T) {
	f := dbg.NewFIFO(1, 2, 3)
	if _, err := dbg.Sdump(f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Len() != 3 {
		t.Errorf("fifo drained by rendering: len=%d want 3", f.Len())
	}

	q := newRawQueue(1, 2)
	if _, err := dbg.Sdump(q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Length() != 2 {
		t.Errorf("queue drained by rendering: len=%d want 2", q.Length())
	}
}

// Rendering the same value twice must produce identical output: the
// nesting depth round-trips to its pre-call value on every exit path.
func TestDumpIndentationRoundTrip(t *testing.T) {
	in := map[string][]point{"p": {{1, 2}, {3, 4}}}
	first, err := dbg.Sdump(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := dbg.Sdump(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("renderings differ:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
	if !strings.HasSuffix(first, "\n}") {
		t.Errorf("rendering does not close at the outermost level:\n%s", first)
	}
}

// Unordered rendering must not be asserted on beyond membership.
func TestDumpUnorderedSetMembership(t *testing.T) {
	cs := &dbg.ConfigState{Indent: "  "}
	got, err := cs.Sdump(map[int]struct{}{1: {}, 2: {}, 3: {}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len("{1, 2, 3}") {
		t.Errorf("unexpected length for unordered set rendering: %q", got)
	}
	for _, want := range []string{"1", "2", "3"} {
		if !strings.Contains(got, want) {
			t.Errorf("unordered set rendering missing %s: %q", want, got)
		}
	}
}

func TestFdump(t *testing.T) {
	var buf bytes.Buffer
	if err := dbg.Fdump(&buf, []int{1, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "{1, 2}"; got != want {
		t.Errorf("unexpected rendering: got %q want %q", got, want)
	}
}
