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
	"strconv"
	"strings"

	"dirpx.dev/dxtuple/dxcore/errors"
	"dirpx.dev/dxtuple/dxcore/model"
)

// Tuple is an immutable, ordered, fixed-length sequence of elements. Each
// element is either a leaf value or another tuple, nested to any depth.
//
// Tuple exposes two cardinalities that MUST NOT be confused:
//
//   - Length is the number of direct elements. A nested tuple counts as one.
//   - Size is the number of leaf values after fully flattening the tree. A
//     nested tuple contributes its own Size, so an empty nested tuple
//     contributes nothing.
//
// For example, given t = (4, (), 8, (((), 6))):
//
//	t.Length()       // 4
//	t.Size()         // 3
//	t.ElementAt(1)   // ()
//	t.Get(1)         // 8
//	t.Flatten()      // (4, 8, 6)
//
// Direct-element operations (Length, ElementAt, Elements, Values, Equal,
// String) look at the unflattened tree. Leaf operations (Size, Get, Flatten,
// IsEmpty, All, Iter, Contains, ContainsAll) all walk the same depth-first,
// left-to-right order.
//
// The zero value is the empty tuple (). Tuples never hold nil elements; the
// constructors reject them. All fields are unexported and every accessor
// returns copies, so a Tuple is safe to share between goroutines.
type Tuple struct {
	elems []Element

	// size is the recursive leaf count, fixed at construction.
	size int
}

// New constructs a tuple holding elems as its direct elements, in order.
//
// Arguments implementing Tupler (Tuple, Empty, Single, Double, Triple) become
// nested tuples; every other value becomes a leaf. Calling New with no
// arguments, or with a nil slice, returns the empty tuple.
//
// New returns an *errors.ArgumentError if any element is nil (the untyped
// nil or a typed nil pointer, map, slice, func or chan). No tuple is
// created in that case.
//
// Example:
//
//	t, err := tuple.New(5, tuple.MustNew(tuple.NewEmpty(), 1337), "Billy")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(t) // (5, ((), 1337), Billy)
func New(elems ...any) (Tuple, error) {
	return newTuple("New", elems)
}

// MustNew is like New but panics if any element is nil.
func MustNew(elems ...any) Tuple {
	t, err := New(elems...)
	if err != nil {
		panic(err)
	}
	return t
}

func newTuple(op string, elems []any) (Tuple, error) {
	if len(elems) == 0 {
		return Tuple{}, nil
	}

	t := Tuple{elems: make([]Element, len(elems))}
	for i, v := range elems {
		e, err := newElement(op, i, v)
		if err != nil {
			return Tuple{}, err
		}
		t.elems[i] = e
		if e.kind == KindTuple {
			t.size += e.tuple.size
		} else {
			t.size++
		}
	}
	return t, nil
}

// Tuple returns t itself, so that Tuple satisfies Tupler.
func (t Tuple) Tuple() Tuple {
	return t
}

// Length returns the number of direct elements. Nested tuples are not
// looked into.
func (t Tuple) Length() int {
	return len(t.elems)
}

// Size returns the number of leaf values after full flattening.
func (t Tuple) Size() int {
	return t.size
}

// IsEmpty reports whether the tuple holds no leaf values, that is whether
// Size is zero. A tuple containing only empty tuples is empty.
func (t Tuple) IsEmpty() bool {
	return t.size == 0
}

// ElementAt returns the direct element at index i, which MAY be a nested
// tuple. It returns an *errors.IndexError when i is outside [0, Length()).
//
//	(4, (), 8, (((), 6))).ElementAt(1) // ()
func (t Tuple) ElementAt(i int) (Element, error) {
	if i < 0 || i >= len(t.elems) {
		return Element{}, &errors.IndexError{Op: "ElementAt", Index: i, Bound: len(t.elems)}
	}
	return t.elems[i], nil
}

// Elements returns a copy of the direct elements.
func (t Tuple) Elements() []Element {
	out := make([]Element, len(t.elems))
	copy(out, t.elems)
	return out
}

// Values returns the direct elements exactly as they were passed to the
// constructor, such that New(t.Values()...) is Equal to t.
//
//	((), 1).Values() // []any{tuple.Empty{}, 1}
func (t Tuple) Values() []any {
	out := make([]any, len(t.elems))
	for i, e := range t.elems {
		out[i] = e.value
	}
	return out
}

// Get returns the i-th leaf value in depth-first, left-to-right order. It is
// equivalent to t.Flatten().ElementAt(i) but does not build the flattened
// tuple. It returns an *errors.IndexError when i is outside [0, Size()).
//
//	(4, (), 8, (((), 6))).Get(1) // 8
func (t Tuple) Get(i int) (any, error) {
	if i < 0 || i >= t.size {
		return nil, &errors.IndexError{Op: "Get", Index: i, Bound: t.size}
	}
	v, _ := t.leafAt(i)
	return v, nil
}

// leafAt skips whole subtrees using their precomputed sizes.
func (t Tuple) leafAt(i int) (any, bool) {
	for _, e := range t.elems {
		if e.kind == KindTuple {
			if i < e.tuple.size {
				return e.tuple.leafAt(i)
			}
			i -= e.tuple.size
			continue
		}
		if i == 0 {
			return e.value, true
		}
		i--
	}
	return nil, false
}

// Flatten returns a new tuple holding only the leaf values of t, in
// depth-first, left-to-right order, with all nesting removed. Empty nested
// tuples vanish. Flatten is idempotent.
//
//	(4, (), 8, (((), 6))).Flatten() // (4, 8, 6)
func (t Tuple) Flatten() Tuple {
	flat := Tuple{elems: make([]Element, 0, t.size), size: t.size}
	for v := range t.All() {
		flat.elems = append(flat.elems, Element{kind: KindLeaf, value: v})
	}
	return flat
}

// Contains reports whether some leaf value equals v, searching nested
// tuples recursively and stopping at the first match. Nested tuples are
// never compared with v as a whole, so passing a tuple always reports false.
func (t Tuple) Contains(v any) bool {
	for leaf := range t.All() {
		if leafEqual(leaf, v) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every value in vs is found among the leaf
// values. Each value is searched independently. ContainsAll with no values
// reports true.
func (t Tuple) ContainsAll(vs ...any) bool {
	if len(vs) == 0 {
		return true
	}
	flat := t.Flatten()
	for _, v := range vs {
		found := false
		for _, e := range flat.elems {
			if leafEqual(e.value, v) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Equal reports whether t and other have the same length and pairwise
// Equal direct elements. Equality is shape-sensitive: ((), 5) and (5, ())
// are not equal although they flatten identically.
func (t Tuple) Equal(other Tuple) bool {
	if len(t.elems) != len(other.elems) || t.size != other.size {
		return false
	}
	for i := range t.elems {
		if !t.elems[i].Equal(other.elems[i]) {
			return false
		}
	}
	return true
}

// String returns the display form "(e0, e1, ..., en)". Leaves are rendered
// with fmt.Sprint and nested tuples with their own display form. The empty
// tuple renders as "()".
//
//	tuple.MustNew(5, tuple.MustNew(tuple.NewEmpty(), 10)).String() // "(5, ((), 10))"
func (t Tuple) String() string {
	var b strings.Builder
	t.write(&b, Element.String)
	return b.String()
}

// Redacted returns the display form with every leaf replaced by "*", keeping
// only the shape of the tuple. It is safe for production logs.
//
//	tuple.MustNew(5, tuple.MustNew(tuple.NewEmpty(), "secret")).Redacted() // "(*, ((), *))"
func (t Tuple) Redacted() string {
	var b strings.Builder
	t.write(&b, func(e Element) string {
		if e.kind == KindTuple {
			return e.tuple.Redacted()
		}
		return "*"
	})
	return b.String()
}

func (t Tuple) write(b *strings.Builder, render func(Element) string) {
	b.WriteByte('(')
	for i, e := range t.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(render(e))
	}
	b.WriteByte(')')
}

// TypeName returns "Tuple".
func (t Tuple) TypeName() string {
	return "Tuple"
}

// IsZero reports whether t is the zero value, which is the tuple with no
// direct elements. Note that a tuple such as ((), ()) is empty (IsEmpty)
// but not zero.
func (t Tuple) IsZero() bool {
	return len(t.elems) == 0
}

// Validate checks that no leaf anywhere in the tree is nil and that the
// cached size agrees with the tree. Tuples built by New always validate.
func (t Tuple) Validate() error {
	return t.validate("")
}

func (t Tuple) validate(path string) error {
	size := 0
	for i, e := range t.elems {
		field := path + "element[" + strconv.Itoa(i) + "]"
		if e.kind == KindTuple {
			if err := e.tuple.validate(field + "."); err != nil {
				return err
			}
			size += e.tuple.size
			continue
		}
		if isNil(e.value) {
			return &errors.ValidationError{Type: t.TypeName(), Field: field, Reason: "must not be nil"}
		}
		size++
	}
	if size != t.size {
		return &errors.ValidationError{Type: t.TypeName(), Reason: "size does not match elements", Value: t.size}
	}
	return nil
}

// Compile-time verification that Tuple implements the model contracts.
var (
	_ model.Model             = (*Tuple)(nil)
	_ model.Comparable[Tuple] = Tuple{}
	_ model.Hashable          = Tuple{}
	_ Tupler                  = Tuple{}
)
