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
	"fmt"

	"dirpx.dev/dxtuple/dxcore/model/tuple"
)

func ExampleNew() {
	t, err := tuple.New(5, tuple.MustNew(tuple.Must(tuple.NewDouble(tuple.NewEmpty(), 1337)), "Billy"))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(t)
	fmt.Println(t.Length(), t.Size())
	fmt.Println(t.Flatten())
	fmt.Println(t.Redacted())
	// Output:
	// (5, (((), 1337), Billy))
	// 2 3
	// (5, 1337, Billy)
	// (*, (((), *), *))
}

func ExampleNew_nil() {
	_, err := tuple.New(5, nil)
	fmt.Println(err)
	// Output:
	// dxtuple: invalid argument to New: element 1 must not be nil
}

func ExampleTuple_Get() {
	t := tuple.MustNew(4, tuple.MustNew(), 8, tuple.MustNew(tuple.MustNew(tuple.MustNew(), 6)))

	e, _ := t.ElementAt(1)
	v, _ := t.Get(1)
	fmt.Println(e, v)

	_, err := t.Get(3)
	fmt.Println(err)
	// Output:
	// () 8
	// dxtuple: Get index 3 out of range [0, 3)
}

func ExampleTuple_Iter() {
	it := tuple.MustNew("a", tuple.MustNew("b", tuple.MustNew()), "c").Iter()
	for it.HasNext() {
		v, _ := it.Next()
		fmt.Println(v)
	}

	_, err := it.Next()
	fmt.Println(err)
	// Output:
	// a
	// b
	// c
	// dxtuple: Iterator.Next advanced past the end of the tuple
}

func ExampleNewDouble() {
	d := tuple.Must(tuple.NewDouble("Billy", 1337))

	name, score := d.Element0(), d.Element1()
	fmt.Println(name, score, d)
	// Output:
	// Billy 1337 (Billy, 1337)
}

func ExampleParse() {
	t, err := tuple.Parse("(5, ((), 10))")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t.Size(), t.Contains(10), t.ContainsAll(5, 10))
	// Output:
	// 2 true true
}
