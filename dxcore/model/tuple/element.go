/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tuple

import (
	"fmt"
	"math"
	"reflect"

	"dirpx.dev/dxtuple/dxcore/errors"
	"dirpx.dev/dxtuple/dxcore/model"
)

// Kind distinguishes the two variants an Element can hold.
type Kind int

const (
	// KindLeaf marks an element holding an opaque, non-tuple value.
	KindLeaf Kind = iota

	// KindTuple marks an element holding a nested tuple.
	KindTuple
)

// String returns "leaf" or "tuple".
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindTuple:
		return "tuple"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Tupler is implemented by every tuple type in this package: Tuple itself
// and the fixed-arity Empty, Single, Double and Triple. Any constructor
// argument implementing Tupler is stored as a nested tuple; any other value
// is stored as a leaf.
type Tupler interface {
	// Tuple returns the generic backing tuple.
	Tuple() Tuple
}

// Element is one direct child of a Tuple: either a leaf value or a nested
// tuple. Elements are obtained from Tuple.ElementAt and Tuple.Elements and
// are immutable.
type Element struct {
	kind  Kind
	value any

	// tuple and origin are set for KindTuple only. origin is the concrete
	// tuple type the element was built from, with pointers dereferenced.
	tuple  Tuple
	origin reflect.Type
}

// newElement classifies v, unwrapping an Element taken from another tuple.
// It reports an *errors.ArgumentError for nil values and for tuple values
// that do not validate.
func newElement(op string, i int, v any) (Element, error) {
	if e, ok := v.(Element); ok {
		v = e.value
	}
	if isNil(v) {
		return Element{}, &errors.ArgumentError{Op: op, Index: i, Reason: "must not be nil"}
	}

	tv, ok := v.(Tupler)
	if !ok {
		return Element{kind: KindLeaf, value: v}, nil
	}

	switch tv.(type) {
	case Tuple, *Tuple:
		// Built by New, or the zero value; both are valid.
	default:
		if vv, ok := tv.(model.Validatable); ok {
			if err := vv.Validate(); err != nil {
				return Element{}, &errors.ArgumentError{Op: op, Index: i, Reason: "must be a valid tuple"}
			}
		}
	}

	origin := reflect.TypeOf(v)
	if origin.Kind() == reflect.Pointer {
		origin = origin.Elem()
	}
	return Element{kind: KindTuple, value: v, tuple: tv.Tuple(), origin: origin}, nil
}

// Kind reports whether the element is a leaf or a nested tuple.
func (e Element) Kind() Kind {
	return e.kind
}

// IsTuple reports whether the element is a nested tuple.
func (e Element) IsTuple() bool {
	return e.kind == KindTuple
}

// Value returns the element exactly as it was passed to the constructor.
// For a nested tuple this is the original tuple value (for example a
// Single[int]), not the generic backing Tuple.
func (e Element) Value() any {
	return e.value
}

// AsTuple returns the backing tuple of a nested tuple element. The boolean
// is false for leaf elements.
func (e Element) AsTuple() (Tuple, bool) {
	if e.kind != KindTuple {
		return Tuple{}, false
	}
	return e.tuple, true
}

// Equal reports whether two elements are structurally equal.
//
// Nested tuples are equal when they were built from the same concrete tuple
// type and their backing tuples are Equal. Leaves are equal when they have
// identical dynamic types and compare equal with == (or reflect.DeepEqual
// when the values are not comparable). A NaN float leaf equals any other NaN
// of the same type, and complex leaves compare each part that way.
func (e Element) Equal(other Element) bool {
	if e.kind != other.kind {
		return false
	}
	if e.kind == KindTuple {
		return e.origin == other.origin && e.tuple.Equal(other.tuple)
	}
	return leafEqual(e.value, other.value)
}

// String renders a leaf with fmt.Sprint and a nested tuple with its own
// display form.
func (e Element) String() string {
	if e.kind == KindTuple {
		return e.tuple.String()
	}
	return fmt.Sprint(e.value)
}

func leafEqual(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		return floatEqual(va.Float(), vb.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := va.Complex(), vb.Complex()
		return floatEqual(real(ca), real(cb)) && floatEqual(imag(ca), imag(cb))
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func floatEqual(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
