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

// Package tuple provides an immutable, arbitrary-arity tuple value type
// holding heterogeneous, non-nil elements, including other tuples nested to
// any depth.
//
// # Types
//
//   - Tuple is the generic, variable-length tuple. Each direct element is
//     an Element: either a leaf value or a nested tuple.
//   - Empty, Single, Double and Triple are fixed-arity tuples with
//     statically typed accessors (Element0, Element1, Element2). They are
//     backed by a Tuple, returned by their Tuple method.
//   - Tupler is the interface all of the above implement. Constructor
//     arguments implementing it are nested; everything else is a leaf.
//
// # Length and Size
//
// A tuple is a tree. Length counts direct elements; Size counts leaves
// after flattening. Given (4, (), 8, (((), 6))), Length is 4 and Size is 3.
// ElementAt, Elements and Values index by direct element; Get, All, Iter,
// Flatten, Contains and ContainsAll work on leaves in depth-first,
// left-to-right order.
//
// # Equality
//
// Equal and WriteHash are structural over the unflattened tree, so
// ((), 5) and (5, ()) differ. Nested tuples are only equal when they were
// built from the same concrete tuple type.
//
// # Display form
//
// String renders "(e0, e1, ..., en)" recursively and Parse reads it back.
// Redacted renders the same shape with leaves masked for production logs,
// and Draw renders the tree over several lines.
//
// # Example
//
//	t := tuple.MustNew(5, tuple.MustNew(tuple.Must(tuple.NewDouble(tuple.NewEmpty(), 1337)), "Billy"))
//	fmt.Println(t)           // (5, (((), 1337), Billy))
//	fmt.Println(t.Length())  // 2
//	fmt.Println(t.Size())    // 3
//	fmt.Println(t.Get(1))    // 1337 <nil>
//	fmt.Println(t.Flatten()) // (5, 1337, Billy)
package tuple
