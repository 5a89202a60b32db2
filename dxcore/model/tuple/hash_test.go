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

package tuple_test

import (
	"hash/maphash"
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"dirpx.dev/dxtuple/dxcore/model/tuple"
)

func TestHash_EqualTuples(t *testing.T) {
	seed := maphash.MakeSeed()
	tests := []struct {
		name string
		a, b tuple.Tuple
	}{
		{"zero", tuple.Tuple{}, tuple.MustNew()},
		{"flat", tuple.MustNew(5, "x"), tuple.MustNew(5, "x")},
		{"nested", billy(), billy()},
		{"non-comparable leaf", tuple.MustNew([]int{1}), tuple.MustNew([]int{1})},
		{"NaN leaf", tuple.MustNew(math.NaN(), 1), tuple.MustNew(math.NaN(), 1)},
		{"NaN complex leaf", tuple.MustNew(complex(2, math.NaN())), tuple.MustNew(complex(2, math.NaN()))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qt.Assert(t, qt.IsTrue(tt.a.Equal(tt.b)))
			qt.Assert(t, qt.Equals(tt.a.Hash(seed), tt.b.Hash(seed)))
		})
	}
}

func TestHash_ShapeSensitive(t *testing.T) {
	seed := maphash.MakeSeed()
	a := tuple.MustNew(tuple.MustNew(), 5)
	b := tuple.MustNew(5, tuple.MustNew())

	qt.Assert(t, qt.Not(qt.Equals(a.Hash(seed), b.Hash(seed))))
	qt.Assert(t, qt.Not(qt.Equals(tuple.MustNew(1, 2).Hash(seed), tuple.MustNew(2, 1).Hash(seed))))
	qt.Assert(t, qt.Not(qt.Equals(tuple.MustNew(tuple.MustNew(1)).Hash(seed), tuple.MustNew(1).Hash(seed))))
}

func TestHash_FixedArityMatchesBacking(t *testing.T) {
	seed := maphash.MakeSeed()
	d := tuple.Must(tuple.NewDouble(1, "a"))

	var h1, h2 maphash.Hash
	h1.SetSeed(seed)
	h2.SetSeed(seed)
	d.WriteHash(&h1)
	d.Tuple().WriteHash(&h2)
	qt.Assert(t, qt.Equals(h1.Sum64(), h2.Sum64()))
}

func TestHasher(t *testing.T) {
	var hasher tuple.Hasher
	seed := maphash.MakeSeed()

	hashOf := func(tp tuple.Tuple) uint64 {
		var h maphash.Hash
		h.SetSeed(seed)
		hasher.Hash(&h, tp)
		return h.Sum64()
	}

	qt.Assert(t, qt.IsTrue(hasher.Equal(billy(), billy())))
	qt.Assert(t, qt.IsFalse(hasher.Equal(billy(), billy().Flatten())))
	qt.Assert(t, qt.Equals(hashOf(billy()), billy().Hash(seed)))
}
