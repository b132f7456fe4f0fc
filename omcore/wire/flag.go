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
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
)

// Flag is a boolean that tolerates every encoding the backend uses on the
// wire and always re-encodes in the backend's canonical form.
//
// Accepted decodings (JSON and YAML):
//
//	false: "0", 0, false, "no"
//	true:  "1", 1, true, "yes"
//
// The string forms are matched case-insensitively after trimming whitespace.
// Any other value is a decode error; absence of the field leaves a pointer
// field nil ("unset"), which is distinct from false.
//
// Flag marshals as the JSON/YAML string "1" or "0", matching what the
// backend's configuration endpoints expect on write.
type Flag bool

// NewFlag returns a pointer to a Flag with the given value. It is a
// convenience for populating optional *Flag struct fields.
func NewFlag(v bool) *Flag {
	f := Flag(v)
	return &f
}

// Bool returns the flag as a plain bool.
func (f Flag) Bool() bool {
	return bool(f)
}

// String returns "1" for true and "0" for false, mirroring the wire form.
func (f Flag) String() string {
	if f {
		return "1"
	}
	return "0"
}

// parseFlagLiteral maps a normalized textual boolean to its value. The token
// table is closed; unknown literals are rejected rather than defaulted.
func parseFlagLiteral(s string) (Flag, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "false", "no":
		return false, true
	case "1", "true", "yes":
		return true, true
	default:
		return false, false
	}
}

// MarshalJSON encodes the flag as the JSON string "1" or "0".
func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a flag from any of the accepted wire encodings.
//
// A JSON null is a no-op, matching the encoding/json convention; callers
// using *Flag fields never observe it because the pointer is set to nil
// before this method would run.
func (f *Flag) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}

	if len(raw) > 0 && raw[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Flag", Data: data, Reason: "malformed JSON string"}
		}
		parsed, ok := parseFlagLiteral(str)
		if !ok {
			return &errors.UnmarshalError{Type: "Flag", Data: data, Reason: "unsupported boolean literal " + raw}
		}
		*f = parsed
		return nil
	}

	switch raw {
	case "true", "1":
		*f = true
		return nil
	case "false", "0":
		*f = false
		return nil
	}
	return &errors.UnmarshalError{Type: "Flag", Data: data, Reason: "unsupported boolean literal " + raw}
}

// MarshalYAML encodes the flag as the YAML string "1" or "0".
func (f Flag) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// UnmarshalYAML decodes a flag from a YAML scalar using the same token table
// as UnmarshalJSON. YAML's native booleans arrive here as the literals
// "true" and "false" and are accepted.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &errors.UnmarshalError{Type: "Flag", Data: []byte(node.Value), Reason: "YAML value is not a scalar"}
	}
	parsed, ok := parseFlagLiteral(node.Value)
	if !ok {
		return &errors.UnmarshalError{Type: "Flag", Data: []byte(node.Value), Reason: "unsupported boolean literal " + node.Value}
	}
	*f = parsed
	return nil
}
