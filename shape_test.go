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
	"container/list"
	"reflect"
	"testing"

	"github.com/eapache/queue"
)

var classifyTests = []struct {
	in   interface{}
	want shape
}{
	{in: true, want: shapeScalar},
	{in: 5, want: shapeScalar},
	{in: uint16(5), want: shapeScalar},
	{in: 1.5, want: shapeScalar},
	{in: complex(1, 2), want: shapeScalar},
	{in: uintptr(1), want: shapeScalar},
	{in: "x", want: shapeTextual},
	{in: [2]int{}, want: shapeFixedSeq},
	{in: []string{}, want: shapeDynSeq},
	{in: list.New(), want: shapeDeque},
	{in: NewFIFO(), want: shapeAdapter},
	{in: NewLIFO(), want: shapeAdapter},
	{in: NewHeap(func(a, b interface{}) bool { return false }), want: shapeAdapter},
	{in: queue.New(), want: shapeAdapter},
	{in: map[string]struct{}{}, want: shapeSet},
	{in: map[string]int{}, want: shapeMap},
	{in: new(int), want: shapeIndirect},
	{in: struct{ A int }{}, want: shapeAggregate},
	{in: make(chan int), want: shapeUnsupported},
	{in: func() {}, want: shapeUnsupported},
}

func TestClassify(t *testing.T) {
	for _, test := range classifyTests {
		if got := classify(reflect.ValueOf(test.in)); got != test.want {
			t.Errorf("unexpected shape for %T: got %d want %d", test.in, got, test.want)
		}
	}
}

func TestClassifyInvalid(t *testing.T) {
	if got := classify(reflect.Value{}); got != shapeInvalid {
		t.Errorf("unexpected shape for invalid value: got %d", got)
	}
}
