/*
 * Copyright (c) 2013 Dave Collins <dave@davec.name>
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
	"bytes"
	"container/list"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/eapache/queue"
)

// Debuggable is the extension point for user-defined aggregate types.
// DebugRender is invoked inside the braces of the aggregate block and
// reports its fields by calling back into the Printer:
//
//	func (p Point) DebugRender(pr *dbg.Printer) error {
//		return pr.Fields("x, y, (Norm(x, y))", p.x, p.y, p.Norm(p.x, p.y))
//	}
//
// An argument that is itself a call expression must be wrapped in an
// extra pair of parentheses, as above, so its commas do not split it.
type Debuggable interface {
	DebugRender(p *Printer) error
}

// Printer is the rendering callback handed to DebugRender implementations.
type Printer struct {
	d *dumpState
}

// Fields emits one "name: Type = value" line per value, with display
// names recovered from the raw argument text.
func (p *Printer) Fields(raw string, values ...interface{}) error {
	return p.d.multiplexRaw(raw, values)
}

// Named is the pre-split form of Fields.
func (p *Printer) Named(names []string, values ...interface{}) error {
	return p.d.multiplex(names, values)
}

// dumpState contains information about the state of a dump operation.
type dumpState struct {
	w        io.Writer
	depth    int
	pointers map[uintptr]int
	cs       *ConfigState
	err      error
}

// write appends s to the sink, latching the first I/O error.
func (d *dumpState) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, s)
}

// indent performs indentation according to the depth level and cs.Indent
// option.
func (d *dumpState) indent() {
	d.write(strings.Repeat(d.cs.Indent, d.depth))
}

// unpackValue returns values inside of non-nil interfaces when possible.
// This is useful for data types like structs, arrays, slices, and maps
// which can contain varying types packed inside an interface.
func unpackValue(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem()
	}
	return v
}

// dump is the main workhorse for rendering a value.  It classifies the
// passed reflect value into its shape category and applies that shape's
// rendering rule, recursing into nested structure.
func (d *dumpState) dump(v reflect.Value) error {
	v = unpackValue(v)
	switch classify(v) {
	case shapeInvalid:
		return fmt.Errorf("%w: untyped nil", ErrNoRenderer)

	case shapeScalar:
		d.write(formatScalar(v))
		return nil

	case shapeTextual:
		d.write(`"` + v.String() + `"`)
		return nil

	case shapeFixedSeq, shapeDynSeq:
		elems := make([]reflect.Value, v.Len())
		for i := range elems {
			elems[i] = v.Index(i)
		}
		return d.dumpElems(elems)

	case shapeDeque:
		l, err := asDeque(v)
		if err != nil {
			return err
		}
		var elems []reflect.Value
		for e := l.Front(); e != nil; e = e.Next() {
			elems = append(elems, reflect.ValueOf(e.Value))
		}
		return d.dumpElems(elems)

	case shapeAdapter:
		elems, err := drainSnapshot(v)
		if err != nil {
			return err
		}
		return d.dumpElems(elems)

	case shapeSet:
		keys := v.MapKeys()
		if d.cs.SortKeys {
			sortValues(keys)
		}
		return d.dumpElems(keys)

	case shapeMap:
		return d.dumpMap(v)

	case shapeIndirect:
		return d.dumpPtr(v)

	case shapeAggregate:
		return d.dumpStruct(v)

	default:
		return fmt.Errorf("%w: %s", ErrNoRenderer, v.Type().String())
	}
}

// dumpElems renders the elements of any sequence-like shape: sequences,
// deques, drained adapter snapshots and sets.  The layout is decided by
// the first element's shape, never by the container's length: scalar
// elements render inline as {e0, e1, ...} while any other element shape
// renders as a multi-line block with a <ElemType> header and one indexed
// line per element.
func (d *dumpState) dumpElems(elems []reflect.Value) error {
	if len(elems) == 0 {
		d.write("{}")
		return nil
	}
	first := unpackValue(elems[0])
	if !first.IsValid() {
		return fmt.Errorf("%w: untyped nil element", ErrNoRenderer)
	}

	if classify(first) == shapeScalar {
		d.write("{")
		for i, e := range elems {
			if i > 0 {
				d.write(", ")
			}
			if err := d.dump(e); err != nil {
				return err
			}
		}
		d.write("}")
		return nil
	}

	d.write("{\n")
	d.depth++
	err := d.elemEntries(elems, first)
	d.depth--
	if err != nil {
		return err
	}
	d.indent()
	d.write("}")
	return nil
}

func (d *dumpState) elemEntries(elems []reflect.Value, first reflect.Value) error {
	d.indent()
	d.write("<" + typeName(first.Type()) + ">\n")
	for i, e := range elems {
		d.indent()
		d.write("[" + strconv.Itoa(i) + "] = ")
		if err := d.dump(e); err != nil {
			return err
		}
		d.write("\n")
	}
	return nil
}

// dumpMap renders a mapping.  Mappings always use the multi-line block
// form, whatever the key and value shapes, since the header must show
// both types: <KeyType -> ValueType>.  Keys and values are recursively
// rendered independently of each other.
func (d *dumpState) dumpMap(v reflect.Value) error {
	if v.Len() == 0 {
		d.write("{}")
		return nil
	}
	keys := v.MapKeys()
	if d.cs.SortKeys {
		sortValues(keys)
	}
	k0 := unpackValue(keys[0])
	v0 := unpackValue(v.MapIndex(keys[0]))
	if !k0.IsValid() || !v0.IsValid() {
		return fmt.Errorf("%w: untyped nil entry", ErrNoRenderer)
	}

	d.write("{\n")
	d.depth++
	err := d.mapEntries(v, keys, k0, v0)
	d.depth--
	if err != nil {
		return err
	}
	d.indent()
	d.write("}")
	return nil
}

func (d *dumpState) mapEntries(v reflect.Value, keys []reflect.Value, k0, v0 reflect.Value) error {
	d.indent()
	d.write("<" + typeName(k0.Type()) + " -> " + typeName(v0.Type()) + ">\n")
	for _, k := range keys {
		d.indent()
		d.write("[")
		if err := d.dump(k); err != nil {
			return err
		}
		d.write("] = ")
		if err := d.dump(v.MapIndex(k)); err != nil {
			return err
		}
		d.write("\n")
	}
	return nil
}

// dumpPtr renders an indirection by dereferencing and recursing.  A nil
// pointer is a reported failure, never silent output.  Pointers already
// seen above the current depth render as <cycle> rather than recursing
// without bound.
func (d *dumpState) dumpPtr(v reflect.Value) error {
	// Remove pointers at or below the current depth from map used to
	// detect circular refs.
	for k, depth := range d.pointers {
		if depth >= d.depth {
			delete(d.pointers, k)
		}
	}

	if v.IsNil() {
		return fmt.Errorf("%w: %s", ErrNilDereference, v.Type().String())
	}
	addr := v.Pointer()
	if pd, ok := d.pointers[addr]; ok && pd < d.depth {
		d.write("<cycle>")
		return nil
	}
	d.pointers[addr] = d.depth

	elem := unpackValue(v.Elem())
	if !elem.IsValid() {
		return fmt.Errorf("%w: %s holds nil", ErrNilDereference, v.Type().String())
	}

	if classify(elem) == shapeScalar {
		d.write("{" + formatScalar(elem) + "}")
		return nil
	}

	d.write("{\n")
	d.depth++
	err := d.ptrEntry(elem)
	d.depth--
	if err != nil {
		return err
	}
	d.write("\n")
	d.indent()
	d.write("}")
	return nil
}

func (d *dumpState) ptrEntry(elem reflect.Value) error {
	d.indent()
	d.write("<" + typeName(elem.Type()) + ">\n")
	d.indent()
	return d.dump(elem)
}

// dumpStruct renders a user-defined aggregate.  The sole extension point
// is the Debuggable interface; without it the type has no renderer unless
// ReflectStructs turns on reflective rendering of exported fields.
func (d *dumpState) dumpStruct(v reflect.Value) error {
	if dbgr, ok := asDebuggable(v); ok {
		d.write("{\n")
		d.depth++
		err := dbgr.DebugRender(&Printer{d: d})
		d.depth--
		if err != nil {
			return err
		}
		d.indent()
		d.write("}")
		return nil
	}

	if !d.cs.ReflectStructs {
		return fmt.Errorf("%w: %s", ErrNoRenderer, v.Type().String())
	}

	d.write("{\n")
	d.depth++
	err := d.structEntries(v)
	d.depth--
	if err != nil {
		return err
	}
	d.indent()
	d.write("}")
	return nil
}

func (d *dumpState) structEntries(v reflect.Value) error {
	vt := v.Type()
	for i := 0; i < v.NumField(); i++ {
		vtf := vt.Field(i)
		if vtf.PkgPath != "" {
			// Unexported fields cannot be rendered without their
			// owner's cooperation; Debuggable is the way to opt in.
			continue
		}
		fv := unpackValue(v.Field(i))
		label := "nil"
		if fv.IsValid() {
			label = typeName(fv.Type())
		}
		d.indent()
		d.write(vtf.Name + ": " + label + " = ")
		if err := d.dump(fv); err != nil {
			return err
		}
		d.write("\n")
	}
	return nil
}

// asDebuggable extracts a Debuggable from v, trying the value itself and
// then a pointer to it so that pointer-receiver implementations are found
// for addressable and copied values alike.
func asDebuggable(v reflect.Value) (Debuggable, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	if v.Type().Implements(debuggableType) {
		return v.Interface().(Debuggable), true
	}
	if reflect.PtrTo(v.Type()).Implements(debuggableType) {
		if v.CanAddr() {
			return v.Addr().Interface().(Debuggable), true
		}
		nv := reflect.New(v.Type())
		nv.Elem().Set(v)
		return nv.Interface().(Debuggable), true
	}
	return nil, false
}

// asDeque extracts the *list.List behind v.
func asDeque(v reflect.Value) (*list.List, error) {
	if v.IsNil() {
		return nil, fmt.Errorf("%w: %s", ErrNilDereference, v.Type().String())
	}
	if !v.CanInterface() {
		return nil, fmt.Errorf("%w: unexported %s", ErrNoRenderer, v.Type().String())
	}
	return v.Interface().(*list.List), nil
}

// drainSnapshot returns the elements of an adapter sequence by draining a
// private snapshot.  The adapter held by the caller is left untouched.
func drainSnapshot(v reflect.Value) ([]reflect.Value, error) {
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, fmt.Errorf("%w: %s", ErrNilDereference, v.Type().String())
	}
	if !v.CanInterface() {
		return nil, fmt.Errorf("%w: unexported %s", ErrNoRenderer, v.Type().String())
	}

	if q, ok := v.Interface().(*queue.Queue); ok {
		elems := make([]reflect.Value, q.Length())
		for i := range elems {
			elems[i] = reflect.ValueOf(q.Get(i))
		}
		return elems, nil
	}

	dr, ok := v.Interface().(Drainable)
	if !ok {
		if v.CanAddr() {
			v = v.Addr()
		} else {
			nv := reflect.New(v.Type())
			nv.Elem().Set(v)
			v = nv
		}
		dr = v.Interface().(Drainable)
	}
	snap := dr.Snapshot()
	elems := make([]reflect.Value, 0, snap.Len())
	for {
		e, ok := snap.Pop()
		if !ok {
			break
		}
		elems = append(elems, reflect.ValueOf(e))
	}
	return elems, nil
}

// multiplexRaw splits raw into display names and emits one line per
// name/value pair.  Raw text that holds no names at all degrades to empty
// names; any other count disagreement is a reported failure rather than a
// silent misalignment.
func (d *dumpState) multiplexRaw(raw string, values []interface{}) error {
	names := splitArgNames(raw)
	if len(names) != len(values) {
		if !allSpace(raw) {
			return fmt.Errorf("%w: %d names for %d values", ErrArgCountMismatch, len(names), len(values))
		}
		names = make([]string, len(values))
	}
	return d.multiplex(names, values)
}

// multiplex walks the parallel name and value lists emitting an indented
// "name: Type = value" line for each pair.
func (d *dumpState) multiplex(names []string, values []interface{}) error {
	if len(names) != len(values) {
		return fmt.Errorf("%w: %d names for %d values", ErrArgCountMismatch, len(names), len(values))
	}
	for i, v := range values {
		d.indent()
		d.write(names[i] + ": " + typeNameOf(v) + " = ")
		if err := d.dump(reflect.ValueOf(v)); err != nil {
			return err
		}
		d.write("\n")
	}
	return d.err
}

// fdump is a helper function to consolidate the logic from the various
// public methods which take varying writers and config states.
func fdump(cs *ConfigState, w io.Writer, v interface{}) error {
	d := &dumpState{w: w, cs: cs, pointers: make(map[uintptr]int)}
	if err := d.dump(reflect.ValueOf(v)); err != nil {
		return err
	}
	if d.depth != 0 {
		return ErrUnbalancedIndent
	}
	return d.err
}

// Fdump renders v to w exactly as a value appears after the "= " of a
// name line: no display name, no type label, no trailing newline.
func Fdump(w io.Writer, v interface{}) error {
	return fdump(&Config, w, v)
}

// Sdump returns the rendering of v as a string.  It formats exactly the
// same as Fdump.
func Sdump(v interface{}) (string, error) {
	var buf bytes.Buffer
	err := fdump(&Config, &buf, v)
	return buf.String(), err
}

// Fdump renders v to w using the options of c.
func (c *ConfigState) Fdump(w io.Writer, v interface{}) error {
	return fdump(c, w, v)
}

// Sdump returns the rendering of v as a string using the options of c.
func (c *ConfigState) Sdump(v interface{}) (string, error) {
	var buf bytes.Buffer
	err := fdump(c, &buf, v)
	return buf.String(), err
}
