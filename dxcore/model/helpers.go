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

package model

import (
	"fmt"

	"dirpx.dev/rxmerr"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, rather than stopping at the first failure.
//
// When a model fails validation, the error is wrapped with its position in
// the slice (zero-indexed) and its type name obtained from TypeName. All
// failures are aggregated into a single error using rxmerr.Collector. If all
// models pass validation, or the slice is empty, ValidateAll returns nil.
//
// Example:
//
//	tuples := []tuple.Tuple{t1, t2, t3}
//	if err := model.ValidateAll(tuples); err != nil {
//	    return err
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models for which
// IsZero reports false.
//
// The returned slice never shares backing storage with the input. If the
// input is nil or every model is zero, an empty non-nil slice is returned.
// FilterZero does not validate models.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails.
//
// It is meant for tests and package initialization where an invalid value
// is a programming error. Callers MUST NOT use it on values derived from
// untrusted input.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns m.String() when unsafe is true and m.Redacted()
// otherwise.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}
