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

// Package model defines the core contracts that all dxtuple value types
// MUST implement to ensure consistency and proper behavior across the
// library.
//
// Every value type (Tuple and its fixed-arity variants) implements the Model
// interface, which combines validation, safe logging, type identification
// and zero-value detection. Tuples are not serialized by this library, so
// the contract deliberately carries no marshaling methods.
//
// All model types are immutable value types and are therefore safe for
// concurrent reads without synchronization. No method defined by the
// contracts in this package may mutate its receiver.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, MustValidate
// and SafeString.
package model

import "hash/maphash"

// Model is the root interface combining all fundamental contracts required
// for dxtuple value types. Any type implementing Model gains support for
// validation, safe logging, type identification and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Loggable offers both safe
// (redacted) and full string representations; Identifiable supplies a
// canonical type name; and ZeroCheckable detects empty instances.
//
// Example implementation:
//
//	type Pair struct {
//	    Left, Right string
//	}
//
//	func (p Pair) Validate() error  { return nil }
//	func (p Pair) TypeName() string { return "Pair" }
//	func (p Pair) IsZero() bool     { return p == Pair{} }
//	func (p Pair) Redacted() string { return "(*, *)" }
//	func (p Pair) String() string   { return "(" + p.Left + ", " + p.Right + ")" }
//
//	var _ Model = (*Pair)(nil) // Compile-time check
type Model interface {
	Validatable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST be fast, deterministic and idempotent. It MUST NOT mutate
// the receiver and MUST NOT perform I/O. It returns nil if and only if every
// invariant holds; otherwise the returned error MUST describe what is
// invalid, preferably as an *errors.ValidationError.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	Validate() error
}

// Loggable defines the contract for types that can be rendered for humans.
//
// Redacted is the representation to use in production logs: it MUST NOT
// expose element payloads, only structure. String is the full
// representation and MAY contain arbitrary user data.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production.
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable defines the contract for types that know their own
// canonical name.
type Identifiable interface {
	// TypeName returns the canonical name of this model type. The name MUST
	// be constant for the type, in CamelCase, and without a package prefix
	// or type parameters.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether
// they hold no meaningful data.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}

// Comparable defines the contract for types with a structural equality
// relation.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	//
	// Equal MUST be reflexive, symmetric and transitive, and MUST NOT
	// mutate either operand.
	Equal(other T) bool
}

// Hashable defines the contract for types whose hash is consistent with
// their Equal method: if a.Equal(b) then a and b MUST write identical bytes
// to the hash.
type Hashable interface {
	// WriteHash writes a representation of the receiver to h.
	WriteHash(h *maphash.Hash)
}
