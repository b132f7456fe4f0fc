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

package wire

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
)

// Uint is an unsigned integer that decodes from either a JSON/YAML number or
// a string holding a decimal number. The backend emits ids and counters in
// both shapes depending on endpoint.
//
// Uint always re-encodes as a plain number. Negative values, fractions and
// non-decimal strings are decode errors.
type Uint uint64

// NewUint returns a pointer to a Uint with the given value. It is a
// convenience for populating optional *Uint struct fields.
func NewUint(v uint64) *Uint {
	u := Uint(v)
	return &u
}

// Uint64 returns the value as a plain uint64.
func (u Uint) Uint64() uint64 {
	return uint64(u)
}

// String returns the decimal representation of the value.
func (u Uint) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// MarshalJSON encodes the value as a JSON number.
func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalJSON decodes the value from a JSON number or a JSON string
// containing a decimal number. A JSON null is a no-op.
func (u *Uint) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}

	if len(raw) > 0 && raw[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Uint", Data: data, Reason: "malformed JSON string"}
		}
		raw = strings.TrimSpace(str)
	}

	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return &errors.UnmarshalError{Type: "Uint", Data: data, Reason: "not an unsigned decimal number: " + raw}
	}
	*u = Uint(parsed)
	return nil
}

// MarshalYAML encodes the value as a YAML integer.
func (u Uint) MarshalYAML() (interface{}, error) {
	return uint64(u), nil
}

// UnmarshalYAML decodes the value from a YAML scalar, numeric or quoted.
func (u *Uint) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &errors.UnmarshalError{Type: "Uint", Data: []byte(node.Value), Reason: "YAML value is not a scalar"}
	}
	parsed, err := strconv.ParseUint(strings.TrimSpace(node.Value), 10, 64)
	if err != nil {
		return &errors.UnmarshalError{Type: "Uint", Data: []byte(node.Value), Reason: "not an unsigned decimal number: " + node.Value}
	}
	*u = Uint(parsed)
	return nil
}
