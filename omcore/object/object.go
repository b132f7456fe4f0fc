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

// Package object defines the contracts shared by all configuration entities
// and the ordered, keyed collections that hold them.
//
// Every configuration entity in this module comes in two shapes: the full
// entity carrying all fields the backend exposes, and a lightweight reference
// ("ref") carrying just enough to identify it — the name, the backend's ref
// token, and for hierarchical types the materialized path. Converting a full
// entity to its ref is total and lossy; going the other way is only possible
// by looking the name up in a collection of full entities.
//
// Both shapes implement Object, which gives them an identity key for
// collections, a type name for diagnostics, and validation. Full entities
// that the backend persists additionally implement Persistent, exposing the
// read-only bookkeeping fields (numeric id, ref token) and the operations
// needed to copy an entity under a new name.
//
// Collections are instances of Map, a generic insertion-ordered map keyed by
// each object's UniqueName. The identity key varies by type: most entities
// key by bare name, tree-shaped ones by materialized path, types with
// non-unique names by "name-id" or by ref token, and compound-key types by a
// joined natural key. The Map does not know or care which rule applies; it
// only sees the UniqueName result.
//
// The model is synchronous and in-memory. Entities are stored and shared by
// pointer; callers that mutate entities concurrently must provide their own
// serialization.
package object

// Validatable is implemented by values that can check their own internal
// consistency. Validate returns nil for a well-formed value and a typed
// error from omcore/errors describing the first violation otherwise.
type Validatable interface {
	Validate() error
}

// Identifiable is implemented by values that can name their own type for
// error messages and diagnostics.
type Identifiable interface {
	TypeName() string
}

// Keyed is implemented by values that have an identity key within a
// collection of their own kind.
//
// UniqueName must be deterministic for a given value. It is not required to
// be globally unique, only unique among objects that share a collection; the
// per-type identity rules are documented on each entity.
type Keyed interface {
	UniqueName() string
}

// Object is the contract shared by every configuration entity and every
// entity reference in this module.
type Object interface {
	Validatable
	Identifiable
	Keyed
}

// Referable is implemented by full entities that project to a reference
// type. Ref never fails and never mutates the receiver; the returned
// reference shares no mutable state with the entity.
type Referable[RP Object] interface {
	Object

	// Ref returns the reference projection of this entity.
	Ref() RP
}

// Persistent is implemented by full entities the backend persists and
// decorates with read-only bookkeeping fields.
//
// The read-only fields (numeric id, ref token, uncommitted marker) are
// decoded verbatim from API responses and re-encoded when present, but are
// never set by builders: a freshly built entity always has them cleared so
// the backend treats it as new.
type Persistent interface {
	Object

	// ID returns the backend's numeric id and whether it is known.
	ID() (uint64, bool)

	// RefToken returns the backend's opaque ref token, or the empty
	// string when not known.
	RefToken() string

	// ObjectName returns the entity's configured name. It may differ
	// from UniqueName for types whose identity key is derived.
	ObjectName() string

	// SetName validates name against the entity's name rule and, on
	// success, stores the trimmed result.
	SetName(name string) error

	// ClearReadonly zeroes the read-only bookkeeping fields so the
	// entity can be submitted to the backend as a new object.
	ClearReadonly()
}

// Builder constructs a configuration object. Implementations offer fluent
// setters and defer all failure to Build, which checks required fields,
// then name validity, then cross-field rules, and finally constructs the
// object with its read-only fields cleared.
type Builder[P Object] interface {
	Build() (P, error)
}
