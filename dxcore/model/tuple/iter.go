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
	"iter"

	"dirpx.dev/dxtuple/dxcore/errors"
)

// All returns an iterator over the leaf values of t in depth-first,
// left-to-right order, the same order Flatten and Get use. Nested tuples
// are descended into and never yielded themselves; empty nested tuples
// yield nothing.
//
// The sequence is lazy and may be ranged over any number of times.
//
//	for v := range t.All() {
//	    fmt.Println(v)
//	}
func (t Tuple) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		t.walk(yield)
	}
}

func (t Tuple) walk(yield func(any) bool) bool {
	for _, e := range t.elems {
		if e.kind == KindTuple {
			if !e.tuple.walk(yield) {
				return false
			}
			continue
		}
		if !yield(e.value) {
			return false
		}
	}
	return true
}

// Iter returns a new single-pass cursor over the leaf values of t, in the
// same order as All. Use it where a pull-style traversal with an explicit
// end-of-sequence error is wanted; call Iter again to start over.
func (t Tuple) Iter() *Iterator {
	return &Iterator{stack: []frame{{elems: t.elems}}}
}

// Iterator is a lazy, single-pass cursor over the leaf values of a tuple.
// It is not safe for concurrent use.
//
//	it := t.Iter()
//	for it.HasNext() {
//	    v, _ := it.Next()
//	    fmt.Println(v)
//	}
//	_, err := it.Next() // *errors.EndOfSequenceError
type Iterator struct {
	stack []frame

	next    any
	hasNext bool
	primed  bool
}

type frame struct {
	elems []Element
	pos   int
}

// HasNext reports whether a further call to Next will produce a value.
func (it *Iterator) HasNext() bool {
	it.prime()
	return it.hasNext
}

// Next returns the next leaf value. Once every leaf has been produced it
// returns an *errors.EndOfSequenceError, on this and every later call.
func (it *Iterator) Next() (any, error) {
	it.prime()
	if !it.hasNext {
		return nil, &errors.EndOfSequenceError{Op: "Iterator.Next"}
	}
	it.primed = false
	v := it.next
	it.next = nil
	return v, nil
}

func (it *Iterator) prime() {
	if it.primed {
		return
	}
	it.next, it.hasNext = it.advance()
	it.primed = true
}

// advance pops exhausted frames and pushes nested tuples until it reaches a
// leaf or runs out of frames.
func (it *Iterator) advance() (any, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.pos >= len(top.elems) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		e := top.elems[top.pos]
		top.pos++
		if e.kind == KindTuple {
			it.stack = append(it.stack, frame{elems: e.tuple.elems})
			continue
		}
		return e.value, true
	}
	return nil, false
}
