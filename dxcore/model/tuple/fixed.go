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
	"hash/maphash"

	"dirpx.dev/dxtuple/dxcore/errors"
	"dirpx.dev/dxtuple/dxcore/model"
)

// From builds the tuple type matching the number of elements given:
//
//	From()        // Empty
//	From(a)       // Single[any]
//	From(a, b)    // Double[any, any]
//	From(a, b, c) // Triple[any, any, any]
//
// Four or more elements produce a plain Tuple. Use NewSingle, NewDouble and
// NewTriple directly to get statically typed accessors. From returns an
// *errors.ArgumentError if any element is nil.
func From(elems ...any) (Tupler, error) {
	var (
		t   Tupler
		err error
	)
	switch len(elems) {
	case 0:
		t = NewEmpty()
	case 1:
		t, err = NewSingle(elems[0])
	case 2:
		t, err = NewDouble(elems[0], elems[1])
	case 3:
		t, err = NewTriple(elems[0], elems[1], elems[2])
	default:
		t, err = New(elems...)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Must returns v, panicking if err is non-nil. It wraps any fallible
// constructor in this package:
//
//	d := tuple.Must(tuple.NewDouble(5, "Billy"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Empty is the tuple with no elements. Its zero value is ready to use and
// every Empty is equal to every other.
type Empty struct{}

// NewEmpty returns the empty tuple.
func NewEmpty() Empty {
	return Empty{}
}

// Tuple returns the zero Tuple, which is the empty tuple.
func (Empty) Tuple() Tuple { return Tuple{} }

// String returns "()".
func (Empty) String() string { return "()" }

// Redacted returns "()". There are no leaves to mask.
func (Empty) Redacted() string { return "()" }

// TypeName returns "Empty".
func (Empty) TypeName() string { return "Empty" }

// IsZero always reports true.
func (Empty) IsZero() bool { return true }

// Validate always returns nil; every Empty is valid.
func (Empty) Validate() error { return nil }

// Equal always reports true.
func (Empty) Equal(Empty) bool { return true }

// WriteHash writes the hash of the empty tuple to h.
func (Empty) WriteHash(h *maphash.Hash) { Tuple{}.WriteHash(h) }

// Single is a one-element tuple with a typed accessor for its element.
//
// The element is stored both as a typed field and in the generic backing
// tuple, so Element0 never type-asserts. A Single MUST be built with
// NewSingle; the zero value fails Validate.
type Single[A any] struct {
	t        Tuple
	element0 A
}

// NewSingle returns the tuple (a). It returns an *errors.ArgumentError if a
// is nil.
func NewSingle[A any](a A) (Single[A], error) {
	t, err := newTuple("NewSingle", []any{a})
	if err != nil {
		return Single[A]{}, err
	}
	return Single[A]{t: t, element0: a}, nil
}

// Element0 returns the element at index 0.
func (s Single[A]) Element0() A { return s.element0 }

// Tuple returns the generic backing tuple.
func (s Single[A]) Tuple() Tuple { return s.t }

// String returns the display form of the backing tuple.
func (s Single[A]) String() string { return s.t.String() }

// Redacted returns the backing tuple's display form with leaves masked.
func (s Single[A]) Redacted() string { return s.t.Redacted() }

// TypeName returns "Single".
func (s Single[A]) TypeName() string { return "Single" }

// IsZero reports whether s is the zero value, which was not built by
// NewSingle.
func (s Single[A]) IsZero() bool { return s.t.IsZero() }

// Equal reports whether the two tuples hold Equal elements.
func (s Single[A]) Equal(other Single[A]) bool { return s.t.Equal(other.t) }

// WriteHash writes the hash of the backing tuple to h.
func (s Single[A]) WriteHash(h *maphash.Hash) { s.t.WriteHash(h) }

// Validate reports an *errors.ValidationError if s was not built by
// NewSingle.
func (s Single[A]) Validate() error {
	return validateArity(s.t, s.TypeName(), "NewSingle", 1)
}

// Double is a two-element tuple with typed accessors for both elements.
// A Double MUST be built with NewDouble; the zero value fails Validate.
type Double[A, B any] struct {
	t        Tuple
	element0 A
	element1 B
}

// NewDouble returns the tuple (a, b). It returns an *errors.ArgumentError if
// either element is nil.
func NewDouble[A, B any](a A, b B) (Double[A, B], error) {
	t, err := newTuple("NewDouble", []any{a, b})
	if err != nil {
		return Double[A, B]{}, err
	}
	return Double[A, B]{t: t, element0: a, element1: b}, nil
}

// Element0 returns the element at index 0.
func (d Double[A, B]) Element0() A { return d.element0 }

// Element1 returns the element at index 1.
func (d Double[A, B]) Element1() B { return d.element1 }

// Tuple returns the generic backing tuple.
func (d Double[A, B]) Tuple() Tuple { return d.t }

// String returns the display form of the backing tuple.
func (d Double[A, B]) String() string { return d.t.String() }

// Redacted returns the backing tuple's display form with leaves masked.
func (d Double[A, B]) Redacted() string { return d.t.Redacted() }

// TypeName returns "Double".
func (d Double[A, B]) TypeName() string { return "Double" }

// IsZero reports whether d is the zero value, which was not built by
// NewDouble.
func (d Double[A, B]) IsZero() bool { return d.t.IsZero() }

// Equal reports whether the two tuples hold pairwise Equal elements.
func (d Double[A, B]) Equal(other Double[A, B]) bool { return d.t.Equal(other.t) }

// WriteHash writes the hash of the backing tuple to h.
func (d Double[A, B]) WriteHash(h *maphash.Hash) { d.t.WriteHash(h) }

// Validate reports an *errors.ValidationError if d was not built by
// NewDouble.
func (d Double[A, B]) Validate() error {
	return validateArity(d.t, d.TypeName(), "NewDouble", 2)
}

// Triple is a three-element tuple with typed accessors for all elements.
// A Triple MUST be built with NewTriple; the zero value fails Validate.
type Triple[A, B, C any] struct {
	t        Tuple
	element0 A
	element1 B
	element2 C
}

// NewTriple returns the tuple (a, b, c). It returns an *errors.ArgumentError
// if any element is nil.
func NewTriple[A, B, C any](a A, b B, c C) (Triple[A, B, C], error) {
	t, err := newTuple("NewTriple", []any{a, b, c})
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	return Triple[A, B, C]{t: t, element0: a, element1: b, element2: c}, nil
}

// Element0 returns the element at index 0.
func (tr Triple[A, B, C]) Element0() A { return tr.element0 }

// Element1 returns the element at index 1.
func (tr Triple[A, B, C]) Element1() B { return tr.element1 }

// Element2 returns the element at index 2.
func (tr Triple[A, B, C]) Element2() C { return tr.element2 }

// Tuple returns the generic backing tuple.
func (tr Triple[A, B, C]) Tuple() Tuple { return tr.t }

// String returns the display form of the backing tuple.
func (tr Triple[A, B, C]) String() string { return tr.t.String() }

// Redacted returns the backing tuple's display form with leaves masked.
func (tr Triple[A, B, C]) Redacted() string { return tr.t.Redacted() }

// TypeName returns "Triple".
func (tr Triple[A, B, C]) TypeName() string { return "Triple" }

// IsZero reports whether tr is the zero value, which was not built by
// NewTriple.
func (tr Triple[A, B, C]) IsZero() bool { return tr.t.IsZero() }

// Equal reports whether the two tuples hold pairwise Equal elements.
func (tr Triple[A, B, C]) Equal(other Triple[A, B, C]) bool { return tr.t.Equal(other.t) }

// WriteHash writes the hash of the backing tuple to h.
func (tr Triple[A, B, C]) WriteHash(h *maphash.Hash) { tr.t.WriteHash(h) }

// Validate reports an *errors.ValidationError if tr was not built by
// NewTriple.
func (tr Triple[A, B, C]) Validate() error {
	return validateArity(tr.t, tr.TypeName(), "NewTriple", 3)
}

func validateArity(t Tuple, typeName, ctor string, n int) error {
	if t.Length() != n {
		return &errors.ValidationError{
			Type:   typeName,
			Reason: "not constructed with " + ctor,
			Value:  t.Length(),
		}
	}
	if err := t.Validate(); err != nil {
		return &errors.ValidationError{Type: typeName, Reason: err.Error()}
	}
	return nil
}

// Compile-time verification that the fixed-arity tuples implement the
// model contracts.
var (
	_ model.Model                           = Empty{}
	_ model.Model                           = Single[int]{}
	_ model.Model                           = Double[int, int]{}
	_ model.Model                           = Triple[int, int, int]{}
	_ model.Comparable[Double[int, string]] = Double[int, string]{}
	_ model.Hashable                        = Triple[int, int, int]{}
	_ Tupler                                = Empty{}
	_ Tupler                                = Single[int]{}
	_ Tupler                                = Double[int, int]{}
	_ Tupler                                = Triple[int, int, int]{}
)
