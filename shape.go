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

	"github.com/eapache/queue"
)

// shape is the structural classification of a value.  Each type maps to
// exactly one shape, and each shape has exactly one rendering rule.
type shape int

const (
	shapeInvalid shape = iota
	shapeScalar
	shapeTextual
	shapeFixedSeq
	shapeDynSeq
	shapeDeque
	shapeAdapter
	shapeSet
	shapeMap
	shapeIndirect
	shapeAggregate
	shapeUnsupported
)

var (
	drainableType   = reflect.TypeOf((*Drainable)(nil)).Elem()
	debuggableType  = reflect.TypeOf((*Debuggable)(nil)).Elem()
	listPtrType     = reflect.TypeOf((*list.List)(nil))
	rawQueueType    = reflect.TypeOf((*queue.Queue)(nil))
	emptyStructType = reflect.TypeOf(struct{}{})
)

// classify returns the shape category of v.  Interface values must be
// unpacked before classification.  The checks for the adapter and deque
// types come before the generic pointer rule since both are carried
// around by pointer.
func classify(v reflect.Value) shape {
	if !v.IsValid() {
		return shapeInvalid
	}
	t := v.Type()
	switch {
	case implementsBy(t, drainableType), t == rawQueueType:
		return shapeAdapter
	case t == listPtrType:
		// list.List is only useful behind its pointer; a by-value
		// copy has broken internal links and is not classified.
		return shapeDeque
	}
	switch t.Kind() {
	case reflect.Ptr:
		return shapeIndirect
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return shapeScalar
	case reflect.String:
		return shapeTextual
	case reflect.Array:
		return shapeFixedSeq
	case reflect.Slice:
		return shapeDynSeq
	case reflect.Map:
		if t.Elem() == emptyStructType {
			return shapeSet
		}
		return shapeMap
	case reflect.Struct:
		return shapeAggregate
	default:
		// Chan, Func, UnsafePointer and Interface (nil interfaces
		// survive unpacking) have no rendering rule.
		return shapeUnsupported
	}
}

// implementsBy reports whether t or a pointer to t satisfies iface.
func implementsBy(t, iface reflect.Type) bool {
	if t.Implements(iface) {
		return true
	}
	return t.Kind() != reflect.Ptr && reflect.PtrTo(t).Implements(iface)
}
