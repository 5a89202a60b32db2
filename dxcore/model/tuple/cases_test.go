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
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxtuple/dxcore/model/tuple"
)

type fixtureCase struct {
	Name     string `yaml:"name"`
	Elements []any  `yaml:"elements"`
	String   string `yaml:"string"`
	Length   int    `yaml:"length"`
	Size     int    `yaml:"size"`
	Flat     string `yaml:"flat"`
}

func loadCases(t *testing.T) []fixtureCase {
	t.Helper()

	data, err := os.ReadFile("testdata/cases.yaml")
	if err != nil {
		t.Fatalf("reading fixtures: %v", err)
	}
	var cases []fixtureCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decoding fixtures: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no fixtures in testdata/cases.yaml")
	}
	return cases
}

// fromYAML turns decoded YAML sequences into nested tuples.
func fromYAML(t *testing.T, elems []any) tuple.Tuple {
	t.Helper()

	vs := make([]any, len(elems))
	for i, e := range elems {
		if seq, ok := e.([]any); ok {
			vs[i] = fromYAML(t, seq)
			continue
		}
		vs[i] = e
	}
	tp, err := tuple.New(vs...)
	if err != nil {
		t.Fatalf("New(%v) error = %v", vs, err)
	}
	return tp
}

func TestFixtures(t *testing.T) {
	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			tp := fromYAML(t, tc.Elements)

			if got := tp.String(); got != tc.String {
				t.Errorf("String() = %q, want %q", got, tc.String)
			}
			if got := tp.Length(); got != tc.Length {
				t.Errorf("Length() = %d, want %d", got, tc.Length)
			}
			if got := tp.Size(); got != tc.Size {
				t.Errorf("Size() = %d, want %d", got, tc.Size)
			}
			if got := tp.Flatten().String(); got != tc.Flat {
				t.Errorf("Flatten() = %q, want %q", got, tc.Flat)
			}

			parsed, err := tuple.Parse(tc.String)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tc.String, err)
			}
			if !parsed.Equal(tp) {
				t.Errorf("Parse(%q) = %v, want Equal to %v", tc.String, parsed, tp)
			}
		})
	}
}
