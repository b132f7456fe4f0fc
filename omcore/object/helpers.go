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
)

// ValidateAll validates every object in the slice and returns the aggregate
// of all failures, each wrapped with the object's index and type name. The
// whole slice is always processed; validation never stops at the first
// failure. An empty slice is valid.
func ValidateAll[T Object](objs []T) error {
	var errs error
	for i, o := range objs {
		if err := o.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("object[%d] (%s): %w", i, o.TypeName(), err))
		}
	}
	return errs
}

// CloneWithName copies an existing entity under a new name. The clone's
// read-only bookkeeping fields are cleared and the new name is validated by
// the entity's own name rule, so the result can be submitted to the backend
// as a new object.
//
// The copy is shallow: reference collections and other pointer-typed fields
// are shared with the original, matching how decoded entities already share
// their referenced objects.
func CloneWithName[T any, P interface {
	*T
	Persistent
}](orig P, newName string) (P, error) {
	var zero P
	clone := new(T)
	*clone = *orig
	p := P(clone)
	p.ClearReadonly()
	if err := p.SetName(newName); err != nil {
		return zero, err
	}
	return p, nil
}

// ToJSON validates o and, on success, marshals it to JSON. Invalid objects
// are never serialized.
func ToJSON[T Object](o T) ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", o.TypeName(), err)
	}
	return json.Marshal(o)
}

// FromJSON unmarshals data into o and validates the result. On failure o
// may hold partially decoded state and must not be used.
func FromJSON[T Object](data []byte, o T) error {
	if err := json.Unmarshal(data, o); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", o.TypeName(), err)
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", o.TypeName(), err)
	}
	return nil
}

// ToYAML validates o and, on success, marshals it to YAML.
func ToYAML[T Object](o T) ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", o.TypeName(), err)
	}
	return yaml.Marshal(o)
}

// FromYAML unmarshals data into o and validates the result.
func FromYAML[T Object](data []byte, o T) error {
	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", o.TypeName(), err)
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", o.TypeName(), err)
	}
	return nil
}
