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

package object

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
)

// Map is an insertion-ordered collection of configuration objects keyed by
// UniqueName.
//
// T is the entity struct and P its pointer type; objects are stored by
// pointer so a single entity can be shared between collections without
// copying. The zero value is an empty map ready for use.
//
// Adding an object whose key is already present replaces the stored object
// but keeps the key's original position, so re-adding never reorders and
// never grows the map. Lookup, insertion and replacement are O(1); removal
// is O(n) in the number of keys.
//
// On the wire a Map is a plain array of entities. Decoding an array that
// repeats a key keeps the last occurrence, consistent with Add.
type Map[T any, P interface {
	*T
	Object
}] struct {
	order []string
	items map[string]P
}

// NewMap returns an empty Map.
func NewMap[T any, P interface {
	*T
	Object
}]() *Map[T, P] {
	return &Map[T, P]{}
}

// Len returns the number of objects in the map.
func (m *Map[T, P]) Len() int {
	return len(m.items)
}

// Add inserts obj under its UniqueName. If the key is already present the
// stored object is replaced and keeps its original insertion position.
func (m *Map[T, P]) Add(obj P) {
	if m.items == nil {
		m.items = make(map[string]P)
	}
	key := obj.UniqueName()
	if _, exists := m.items[key]; !exists {
		m.order = append(m.order, key)
	}
	m.items[key] = obj
}

// Get returns the object stored under key and whether it was present.
// Lookups never fail; a missing key reports false.
func (m *Map[T, P]) Get(key string) (P, bool) {
	obj, ok := m.items[key]
	return obj, ok
}

// Remove deletes the object stored under key and returns it. The remaining
// objects keep their relative order.
func (m *Map[T, P]) Remove(key string) (P, bool) {
	obj, ok := m.items[key]
	if !ok {
		return obj, false
	}
	delete(m.items, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return obj, true
}

// Keys returns the identity keys in insertion order. The returned slice is
// a copy.
func (m *Map[T, P]) Keys() []string {
	keys := make([]string, len(m.order))
	copy(keys, m.order)
	return keys
}

// Values returns the stored objects in insertion order. The slice is a new
// allocation but the objects themselves are shared.
func (m *Map[T, P]) Values() []P {
	values := make([]P, 0, len(m.order))
	for _, key := range m.order {
		values = append(values, m.items[key])
	}
	return values
}

// Validate validates every object in insertion order and returns the
// aggregate of all failures, each wrapped with the offending key. An empty
// map is valid.
func (m *Map[T, P]) Validate() error {
	var errs error
	for _, key := range m.order {
		if err := m.items[key].Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%q: %w", key, err))
		}
	}
	return errs
}

// MarshalJSON encodes the map as a JSON array of entities in insertion
// order. An empty map encodes as [].
func (m *Map[T, P]) MarshalJSON() ([]byte, error) {
	values := m.Values()
	if len(values) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(values)
}

// UnmarshalJSON decodes a JSON array of entities, inserting each in order.
// A repeated identity key keeps the last occurrence at the key's first
// position. Decoding into a non-empty map merges into it.
func (m *Map[T, P]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var probe T
		return &errors.UnmarshalError{
			Type:   P(&probe).TypeName() + " collection",
			Data:   data,
			Reason: "not a JSON array",
		}
	}
	for _, fragment := range raw {
		item := new(T)
		if err := json.Unmarshal(fragment, item); err != nil {
			return err
		}
		m.Add(P(item))
	}
	return nil
}

// MarshalYAML encodes the map as a YAML sequence in insertion order.
func (m *Map[T, P]) MarshalYAML() (interface{}, error) {
	return m.Values(), nil
}

// UnmarshalYAML decodes a YAML sequence of entities with the same merge
// semantics as UnmarshalJSON.
func (m *Map[T, P]) UnmarshalYAML(node *yaml.Node) error {
	var raw []T
	if err := node.Decode(&raw); err != nil {
		var probe T
		return &errors.UnmarshalError{
			Type:   P(&probe).TypeName() + " collection",
			Data:   []byte(node.Value),
			Reason: "not a YAML sequence",
		}
	}
	for i := range raw {
		m.Add(P(&raw[i]))
	}
	return nil
}

// RefMapFrom converts a collection of full entities into the corresponding
// collection of references, preserving insertion order. Conversion never
// fails: every full entity projects to a reference.
func RefMapFrom[T any, R any, P interface {
	*T
	Referable[RP]
}, RP interface {
	*R
	Object
}](m *Map[T, P]) *Map[R, RP] {
	out := NewMap[R, RP]()
	for _, obj := range m.Values() {
		out.Add(obj.Ref())
	}
	return out
}
