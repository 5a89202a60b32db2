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
	stderrors "errors"
	"testing"

	"dirpx.dev/dxtuple/dxcore/errors"
	"dirpx.dev/dxtuple/dxcore/model/tuple"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  tuple.Tuple
	}{
		{"empty", "()", tuple.Tuple{}},
		{"surrounding space", "  ( )\n", tuple.Tuple{}},
		{"flat", "(5, 10)", tuple.MustNew(5, 10)},
		{"nested", "(5, ((), 10))", tuple.MustNew(5, tuple.MustNew(tuple.MustNew(), 10))},
		{"leaf kinds", `(-3, 2.5, "hello world", Billy)`, tuple.MustNew(-3, 2.5, "hello world", "Billy")},
		{"one letter string", `("a")`, tuple.MustNew("a")},
		{"empty string", `("")`, tuple.MustNew("")},
		{"two letter string", `("ab")`, tuple.MustNew("ab")},
		{"quoted and bare", `("Billy", Billy)`, tuple.MustNew("Billy", "Billy")},
		{"lexical typing", "(true, 3)", tuple.MustNew("true", 3)},
		{"deep", "((((1))))", tuple.MustNew(tuple.MustNew(tuple.MustNew(tuple.MustNew(1))))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tuple.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	tests := []tuple.Tuple{
		{},
		tuple.MustNew(5, tuple.MustNew(5, 10)),
		tuple.MustNew(5, tuple.MustNew(tuple.MustNew(tuple.MustNew(), 1337), "Billy")),
		tuple.MustNew(tuple.MustNew(), tuple.MustNew(), 1.5),
	}

	for _, tp := range tests {
		t.Run(tp.String(), func(t *testing.T) {
			got, err := tuple.Parse(tp.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tp, err)
			}
			if !got.Equal(tp) {
				t.Errorf("Parse(%q) = %v, want Equal tuple", tp, got)
			}
			if got.String() != tp.String() {
				t.Errorf("Parse(%q).String() = %q", tp, got)
			}
		})
	}
}

func TestParse_Error(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"blank", ""},
		{"bare leaf", "5"},
		{"unterminated", "(5,"},
		{"empty element", "(5,,6)"},
		{"trailing comma", "(5, 6,)"},
		{"unbalanced", "((5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tuple.Parse(tt.input)
			var parseErr *errors.ParseError
			if !stderrors.As(err, &parseErr) {
				t.Fatalf("Parse(%q) = %v, %v, want *errors.ParseError", tt.input, got, err)
			}
			if parseErr.Type != "Tuple" || parseErr.Value != tt.input {
				t.Errorf("ParseError = %+v", parseErr)
			}
			if !got.IsZero() {
				t.Errorf("Parse(%q) returned %v alongside error", tt.input, got)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse() did not panic")
		}
	}()
	tuple.MustParse("(")
}
