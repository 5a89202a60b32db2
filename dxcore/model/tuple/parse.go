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
	"strings"

	"github.com/alecthomas/participle"

	"dirpx.dev/dxtuple/dxcore/errors"
)

// Grammar of the display form:
//
//	tuple   = "(" [ element { "," element } ] ")"
//	element = tuple | number | string | ident
type tupleNode struct {
	Elements []*elementNode `"(" ( @@ ( "," @@ )* )? ")"`
}

type elementNode struct {
	Tuple  *tupleNode  `  @@`
	Number *numberNode `| @@`
	String *string     `| @String`
	Ident  *string     `| @Ident`
}

type numberNode struct {
	Negative bool     `@"-"?`
	Float    *float64 `( @Float`
	Int      *int64   `| @Int )`
}

var displayParser = participle.MustBuild(&tupleNode{})

// Parse reads a tuple from its display form, the format produced by
// Tuple.String:
//
//	(5, ((), 1337), Billy)
//
// Leaves are typed by their lexical form: integers become int, floats
// become float64, identifiers such as Billy become string, and double-quoted
// literals become the unquoted string. Nested tuples are always plain
// Tuple values, so a tuple holding Single or Double elements does not
// round-trip to an Equal value.
//
// Typing is lexical only, so some leaves parse back to a different type:
// the bool true renders as true and comes back as the string "true", and
// the float64 3.0 renders as 3 and comes back as the int 3. Leaves whose
// display form is none of the above (for example a string containing
// spaces rendered without quotes) cannot be parsed back at all.
//
// Parse returns an error wrapping *errors.ParseError when s is not a valid
// display form.
func Parse(s string) (Tuple, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "(") {
		return Tuple{}, &errors.ParseError{Type: "Tuple", Value: s}
	}

	var root tupleNode
	if err := displayParser.ParseString(trimmed, &root); err != nil {
		return Tuple{}, fmt.Errorf("%w: %v", &errors.ParseError{Type: "Tuple", Value: s}, err)
	}
	return root.build()
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Tuple {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (n *tupleNode) build() (Tuple, error) {
	elems := make([]any, 0, len(n.Elements))
	for _, e := range n.Elements {
		switch {
		case e.Tuple != nil:
			sub, err := e.Tuple.build()
			if err != nil {
				return Tuple{}, err
			}
			elems = append(elems, sub)
		case e.Number != nil:
			elems = append(elems, e.Number.value())
		case e.String != nil:
			elems = append(elems, *e.String)
		case e.Ident != nil:
			elems = append(elems, *e.Ident)
		}
	}
	return newTuple("Parse", elems)
}

func (n *numberNode) value() any {
	if n.Float != nil {
		if n.Negative {
			return -*n.Float
		}
		return *n.Float
	}
	v := int(*n.Int)
	if n.Negative {
		v = -v
	}
	return v
}
