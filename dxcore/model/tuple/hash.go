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
	"math"
	"reflect"
)

// WriteHash writes an order-sensitive, recursive hash of the unflattened
// tuple to h. If t.Equal(u) then t and u write identical bytes.
//
// Comparable leaves are hashed with maphash.WriteComparable, except that
// float and complex leaves write a fixed marker for NaN parts so that the
// NaN-tolerant Equal holds for hashes too. Leaves that are not comparable
// (slices, maps, structs holding them) contribute only their
// dynamic type, which keeps the hash consistent with the reflect.DeepEqual
// fallback used by Equal.
func (t Tuple) WriteHash(h *maphash.Hash) {
	h.WriteByte('(')
	for _, e := range t.elems {
		if e.kind == KindTuple {
			h.WriteString(e.origin.String())
			e.tuple.WriteHash(h)
			continue
		}
		h.WriteByte(',')
		rv := reflect.ValueOf(e.value)
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			h.WriteString(rv.Type().String())
			writeFloat(h, rv.Float())
		case reflect.Complex64, reflect.Complex128:
			c := rv.Complex()
			h.WriteString(rv.Type().String())
			writeFloat(h, real(c))
			writeFloat(h, imag(c))
		default:
			if rv.Comparable() {
				maphash.WriteComparable(h, e.value)
			} else {
				h.WriteString(rv.Type().String())
			}
		}
	}
	h.WriteByte(')')
}

func writeFloat(h *maphash.Hash, f float64) {
	if math.IsNaN(f) {
		h.WriteString("NaN")
		return
	}
	maphash.WriteComparable(h, f)
}

// Hash returns the 64-bit hash of t under seed. Equal tuples hash equally
// under the same seed.
func (t Tuple) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	t.WriteHash(&h)
	return h.Sum64()
}

// Hasher is a stateless hash function and equivalence relation over Tuple
// values, in the shape expected by generic hash-table implementations:
//
//	Hash(*maphash.Hash, T)
//	Equal(x, y T) bool
type Hasher struct{}

// Hash writes t to h.
func (Hasher) Hash(h *maphash.Hash, t Tuple) { t.WriteHash(h) }

// Equal reports whether x and y are Equal.
func (Hasher) Equal(x, y Tuple) bool { return x.Equal(y) }
