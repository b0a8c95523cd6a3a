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
	"container/heap"

	"github.com/eapache/queue"
)

// Drainable is the adapter-sequence contract.  Adapters expose their
// elements only destructively, so the renderer takes a Snapshot first and
// drains that; the adapter held by the caller is never consumed.
type Drainable interface {
	// Len returns the number of elements currently held.
	Len() int

	// Pop removes and returns the next element.  The second return is
	// false when the adapter is empty.
	Pop() (interface{}, bool)

	// Snapshot returns an independent copy whose draining does not
	// affect the original.
	Snapshot() Drainable
}

// FIFO is a first-in first-out adapter.  The zero value is not usable;
// construct with NewFIFO.  Copies share the underlying ring buffer.
type FIFO struct {
	q *queue.Queue
}

// NewFIFO returns a FIFO holding vs in push order.
func NewFIFO(vs ...interface{}) FIFO {
	f := FIFO{q: queue.New()}
	for _, v := range vs {
		f.q.Add(v)
	}
	return f
}

// Push appends v at the back.
func (f FIFO) Push(v interface{}) { f.q.Add(v) }

// Pop removes and returns the front element.
func (f FIFO) Pop() (interface{}, bool) {
	if f.q.Length() == 0 {
		return nil, false
	}
	return f.q.Remove(), true
}

// Len returns the number of queued elements.
func (f FIFO) Len() int { return f.q.Length() }

// Snapshot returns an independent copy of the queue.
func (f FIFO) Snapshot() Drainable {
	c := FIFO{q: queue.New()}
	for i := 0; i < f.q.Length(); i++ {
		c.q.Add(f.q.Get(i))
	}
	return c
}

// LIFO is a last-in first-out adapter.  The zero value is not usable;
// construct with NewLIFO.  Copies share the underlying storage.
type LIFO struct {
	s *[]interface{}
}

// NewLIFO returns a LIFO holding vs in push order, so the last element of
// vs is popped first.
func NewLIFO(vs ...interface{}) LIFO {
	s := append([]interface{}(nil), vs...)
	return LIFO{s: &s}
}

// Push places v on top of the stack.
func (l LIFO) Push(v interface{}) { *l.s = append(*l.s, v) }

// Pop removes and returns the top element.
func (l LIFO) Pop() (interface{}, bool) {
	s := *l.s
	if len(s) == 0 {
		return nil, false
	}
	v := s[len(s)-1]
	*l.s = s[:len(s)-1]
	return v, true
}

// Len returns the number of stacked elements.
func (l LIFO) Len() int { return len(*l.s) }

// Snapshot returns an independent copy of the stack.
func (l LIFO) Snapshot() Drainable {
	s := append([]interface{}(nil), *l.s...)
	return LIFO{s: &s}
}

// Heap is a priority adapter.  Pop returns the least element according to
// the less function given at construction.  The zero value is not usable;
// construct with NewHeap.  Copies share the underlying storage.
type Heap struct {
	c *heapCore
}

// NewHeap returns a Heap ordered by less and holding vs.
func NewHeap(less func(a, b interface{}) bool, vs ...interface{}) Heap {
	c := &heapCore{less: less, items: append([]interface{}(nil), vs...)}
	heap.Init(c)
	return Heap{c: c}
}

// Push inserts v.
func (h Heap) Push(v interface{}) { heap.Push(h.c, v) }

// Pop removes and returns the least element.
func (h Heap) Pop() (interface{}, bool) {
	if h.c.Len() == 0 {
		return nil, false
	}
	return heap.Pop(h.c), true
}

// Len returns the number of held elements.
func (h Heap) Len() int { return h.c.Len() }

// Snapshot returns an independent copy of the heap.
func (h Heap) Snapshot() Drainable {
	c := &heapCore{less: h.c.less, items: append([]interface{}(nil), h.c.items...)}
	return Heap{c: c}
}

// heapCore implements heap.Interface for Heap.
type heapCore struct {
	less  func(a, b interface{}) bool
	items []interface{}
}

func (c *heapCore) Len() int           { return len(c.items) }
func (c *heapCore) Less(i, j int) bool { return c.less(c.items[i], c.items[j]) }
func (c *heapCore) Swap(i, j int)      { c.items[i], c.items[j] = c.items[j], c.items[i] }

func (c *heapCore) Push(x interface{}) { c.items = append(c.items, x) }

func (c *heapCore) Pop() interface{} {
	old := c.items
	n := len(old)
	v := old[n-1]
	c.items = old[:n-1]
	return v
}
