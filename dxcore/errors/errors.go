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

// Package errors provides reusable error types for the dxtuple value types.
//
// Every failure a tuple operation can report is one of a small, closed set of
// kinds. Each kind is a simple value carrier with a stable message format so
// that callers can either match on the concrete type (via errors.As) or
// surface the message directly in diagnostics.
//
// # Error Types
//
//   - ArgumentError
//     Returned when a constructor receives an element it cannot store,
//     most notably a nil element. The tuple is never created.
//
//   - IndexError
//     Returned when a positional accessor (ElementAt, Get) is called with an
//     index outside the valid range for that accessor.
//
//   - EndOfSequenceError
//     Returned when an iterator is advanced past its last leaf value.
//
//   - ParseError
//     Returned when the textual display form of a tuple cannot be parsed.
//
//   - ValidationError
//     Returned by Validate() methods when a value violates its invariants,
//     for example a fixed-arity tuple that was not built by its constructor.
//
// # Usage
//
//	t, err := tuple.New(5, nil)
//	var argErr *errors.ArgumentError
//	if stderrors.As(err, &argErr) {
//	    fmt.Println(argErr.Index) // 1
//	}
package errors

import "strconv"

// ArgumentError is returned when a tuple constructor is given an element
// that cannot be stored.
//
// Op names the constructor that rejected the input (for example, "New" or
// "NewDouble"), Index is the zero-based position of the offending element
// and Reason is a short description of the problem.
//
// # Example
//
//	if elem == nil {
//	    return Tuple{}, &errors.ArgumentError{
//	        Op:     "New",
//	        Index:  i,
//	        Reason: "must not be nil",
//	    }
//	}
type ArgumentError struct {
	// Op is the name of the operation that rejected the argument.
	Op string

	// Index is the position of the rejected element in the argument list.
	Index int

	// Reason is a short, human-readable explanation of the rejection.
	Reason string
}

// Error implements the error interface for ArgumentError.
//
// The error message format is:
//
//	"dxtuple: invalid argument to {Op}: element {Index} {Reason}"
//
// For example:
//
//	"dxtuple: invalid argument to New: element 1 must not be nil"
func (e *ArgumentError) Error() string {
	return "dxtuple: invalid argument to " + e.Op + ": element " + strconv.Itoa(e.Index) + " " + e.Reason
}

// IndexError is returned when an index lies outside the half-open range
// [0, Bound) accepted by the accessor named in Op.
//
// For direct element access Bound is the tuple length; for flattened access
// it is the tuple size.
type IndexError struct {
	// Op is the name of the accessor that was called.
	Op string

	// Index is the index that was requested.
	Index int

	// Bound is the exclusive upper bound of valid indexes.
	Bound int
}

// Error implements the error interface for IndexError.
//
// The error message format is:
//
//	"dxtuple: {Op} index {Index} out of range [0, {Bound})"
func (e *IndexError) Error() string {
	return "dxtuple: " + e.Op + " index " + strconv.Itoa(e.Index) + " out of range [0, " + strconv.Itoa(e.Bound) + ")"
}

// EndOfSequenceError is returned when a traversal is advanced after its last
// leaf value has already been produced.
type EndOfSequenceError struct {
	// Op is the name of the traversal operation, for example "Iterator.Next".
	Op string
}

// Error implements the error interface for EndOfSequenceError.
//
// The error message format is:
//
//	"dxtuple: {Op} advanced past the end of the tuple"
func (e *EndOfSequenceError) Error() string {
	return "dxtuple: " + e.Op + " advanced past the end of the tuple"
}

// ParseError is returned when parsing a string into a typed value fails.
//
// Type identifies the logical type being parsed (for example, "Tuple"), and
// Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Tuple").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxtuple: invalid {Type} value: {Value}"
//
// For example:
//
//	"dxtuple: invalid Tuple value: (5,"
func (e *ParseError) Error() string {
	return "dxtuple: invalid " + e.Type + " value: " + e.Value
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Tuple", "Double"), Field optionally identifies which part failed
// validation, Reason provides a human-readable explanation of the failure,
// and Value optionally contains the problematic value.
//
// # Example
//
//	func (d Double[A, B]) Validate() error {
//	    if d.t.Length() != 2 {
//	        return &errors.ValidationError{
//	            Type:   "Double",
//	            Reason: "not constructed with NewDouble",
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxtuple: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxtuple: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"dxtuple: invalid Tuple.element[1]: must not be nil"
//	"dxtuple: invalid Single: not constructed with NewSingle"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxtuple: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxtuple: invalid " + e.Type + ": " + e.Reason
}
