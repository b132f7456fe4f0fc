/*
   Copyright 2026 The Opsmith Authors

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

// Package errors provides reusable error types for the opsmith configuration
// model.
//
// The configuration model deals with three recurring failure classes: field
// values that violate a per-entity-class rule (length, character set, range),
// builders finalized without a mandatory field, and wire payloads that cannot
// be coerced into the statically typed form (malformed scalars, tokens outside
// a closed discriminant table). By centralizing these types, the package gives
// every builder, validator and codec in the module a consistent error story.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from validation / marshaling / unmarshaling code,
//   - easy to recognize via errors.As and type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// None of the constructors or Error methods panic; invalid input is always
// reported, never defaulted away.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "HashtagStyle",
// "SNMPVersion"), and Value contains the exact string that could not be
// interpreted. Callers MAY match on Type to translate errors into friendlier
// messages.
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The message format is stable:
//
//	"opsmith: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "opsmith: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails because it is
// outside the set of valid constants.
//
// A MarshalError almost always indicates a programming error (for example, an
// enum zero value that was never assigned); it exists as a guardrail so that
// invalid discriminants are never silently written to the wire.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that does not
	// correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The message format is stable:
//
//	"opsmith: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "opsmith: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling wire data into a typed value
// fails.
//
// Type identifies the logical type being populated, Data contains the original
// raw payload (typically a JSON fragment), and Reason provides a human-readable
// description of what went wrong. Data is excluded from the formatted message
// to keep logs compact; callers can log it separately when appropriate.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal. May be nil.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is stable:
//
//	"opsmith: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "opsmith: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when a field value violates its entity-class
// rule: wrong length, a forbidden character, a regex mismatch, or a malformed
// literal (such as a bad IPv4 address).
//
// Type identifies the logical name of the entity or value class being
// validated, Field optionally identifies which field failed, Reason explains
// the violated constraint, and Value optionally carries the offending value
// (possibly truncated by the caller).
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value. May be nil if not
	// applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The message format is stable:
//
//	"opsmith: invalid {Type}.{Field}: {Reason}" (when Field is set)
//	"opsmith: invalid {Type}: {Reason}"         (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "opsmith: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "opsmith: invalid " + e.Type + ": " + e.Reason
}

// RequiredFieldError is returned by a builder's Build method when a mandatory
// field was never set. It names the entity type and the missing field so the
// caller knows exactly which setter was skipped.
type RequiredFieldError struct {
	// Type is the logical name of the entity being built.
	Type string

	// Field is the name of the mandatory field that is not set.
	Field string
}

// Error implements the error interface for RequiredFieldError.
//
// The message format is stable:
//
//	"opsmith: required field {Type}.{Field} is not set"
func (e *RequiredFieldError) Error() string {
	return "opsmith: required field " + e.Type + "." + e.Field + " is not set"
}

// RangeError is returned when a numeric field falls outside its allowed range,
// for example a network port outside 1-65535 or a timestamp in the future.
type RangeError struct {
	// Field is the name of the numeric field.
	Field string

	// Value is the out-of-range value that was provided.
	Value int64

	// Min and Max bound the allowed range, inclusive.
	Min int64
	Max int64
}

// Error implements the error interface for RangeError.
//
// The message format is stable:
//
//	"opsmith: {Field} value {Value} out of range [{Min}, {Max}]"
func (e *RangeError) Error() string {
	return "opsmith: " + e.Field + " value " + strconv.FormatInt(e.Value, 10) +
		" out of range [" + strconv.FormatInt(e.Min, 10) + ", " + strconv.FormatInt(e.Max, 10) + "]"
}

// UnknownVariantError is returned when decoding a discriminated union whose
// discriminant (a backend ref token or a fixed display name) is not present in
// the closed mapping table. The full offending token is preserved so the
// caller can see exactly what the backend sent.
type UnknownVariantError struct {
	// Type is the logical name of the union type being decoded.
	Type string

	// Token is the unrecognized discriminant, verbatim from the wire.
	Token string
}

// Error implements the error interface for UnknownVariantError.
//
// The message format is stable:
//
//	"opsmith: unknown {Type} token: {Token}"
func (e *UnknownVariantError) Error() string {
	return "opsmith: unknown " + e.Type + " token: " + e.Token
}
