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

package config

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
)

// CheckType classifies how a service check is executed.
//
// On the wire a check type is a ref-encoded union: the backend serializes a
// small JSON object whose "ref" token discriminates the variant, and a fixed
// display name rides along. The token table is closed; a token outside it is
// a decode error that names the full token. Serialization always emits the
// canonical (name, ref) pair for the variant, byte-identical to what the
// backend sends:
//
//	{"name":"Active Plugin","ref":"/rest/config/checktype/1"}
//	{"name":"Passive","ref":"/rest/config/checktype/2"}
//	{"name":"SNMP Polling","ref":"/rest/config/checktype/3"}
//	{"name":"SNMP Trap","ref":"/rest/config/checktype/4"}
//
// The zero value means "not set" and cannot be marshaled.
type CheckType uint8

const (
	// CheckTypeUnset is the zero value. It is not a valid wire value.
	CheckTypeUnset CheckType = iota

	// CheckTypeActive is an active plugin check.
	CheckTypeActive

	// CheckTypePassive is a passive check.
	CheckTypePassive

	// CheckTypeSNMPPolling is an SNMP polling check.
	CheckTypeSNMPPolling

	// CheckTypeSNMPTrap is an SNMP trap check.
	CheckTypeSNMPTrap
)

// checkTypeWire is the JSON/YAML shape of a check type. Field order matters:
// the backend emits name before ref and round-trips are expected to be
// byte-identical.
type checkTypeWire struct {
	Name string `json:"name" yaml:"name"`
	Ref  string `json:"ref" yaml:"ref"`
}

var checkTypeTable = []struct {
	value CheckType
	name  string
	ref   string
}{
	{CheckTypeActive, "Active Plugin", "/rest/config/checktype/1"},
	{CheckTypePassive, "Passive", "/rest/config/checktype/2"},
	{CheckTypeSNMPPolling, "SNMP Polling", "/rest/config/checktype/3"},
	{CheckTypeSNMPTrap, "SNMP Trap", "/rest/config/checktype/4"},
}

// ParseCheckType parses a display name into a CheckType. Matching is
// case-insensitive after trimming whitespace.
func ParseCheckType(s string) (CheckType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, entry := range checkTypeTable {
		if strings.ToLower(entry.name) == normalized {
			return entry.value, nil
		}
	}
	return CheckTypeUnset, &errors.ParseError{Type: "CheckType", Value: s}
}

// CheckTypeFromToken maps a backend ref token to its CheckType. The table is
// closed; an unknown token is an error carrying the full token.
func CheckTypeFromToken(token string) (CheckType, error) {
	for _, entry := range checkTypeTable {
		if entry.ref == token {
			return entry.value, nil
		}
	}
	return CheckTypeUnset, &errors.UnknownVariantError{Type: "CheckType", Token: token}
}

// String returns the canonical display name, or "CheckType(n)" for values
// outside the table.
func (ct CheckType) String() string {
	for _, entry := range checkTypeTable {
		if entry.value == ct {
			return entry.name
		}
	}
	return "CheckType(" + strconv.Itoa(int(ct)) + ")"
}

// TypeName returns "CheckType".
func (ct CheckType) TypeName() string {
	return "CheckType"
}

// RefToken returns the canonical backend ref token, or the empty string for
// values outside the table.
func (ct CheckType) RefToken() string {
	for _, entry := range checkTypeTable {
		if entry.value == ct {
			return entry.ref
		}
	}
	return ""
}

// Validate reports whether this CheckType is one of the defined variants.
// The zero value is invalid: a check type is always explicit on the wire.
func (ct CheckType) Validate() error {
	for _, entry := range checkTypeTable {
		if entry.value == ct {
			return nil
		}
	}
	return &errors.MarshalError{Type: "CheckType", Value: int(ct)}
}

// MarshalJSON emits the canonical {"name":...,"ref":...} object for this
// variant. Marshaling an unset or unknown value fails.
func (ct CheckType) MarshalJSON() ([]byte, error) {
	if err := ct.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(checkTypeWire{Name: ct.String(), Ref: ct.RefToken()})
}

// UnmarshalJSON decodes a ref-encoded check type object. The "ref" field is
// the discriminant and must be present; the display name is ignored on
// decode, as the backend does not guarantee it.
func (ct *CheckType) UnmarshalJSON(data []byte) error {
	var w checkTypeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{Type: "CheckType", Data: data, Reason: "not a ref-encoded object"}
	}
	if w.Ref == "" {
		return &errors.UnmarshalError{Type: "CheckType", Data: data, Reason: `missing "ref" discriminant`}
	}
	parsed, err := CheckTypeFromToken(w.Ref)
	if err != nil {
		return err
	}
	*ct = parsed
	return nil
}

// MarshalYAML emits the same (name, ref) mapping as MarshalJSON.
func (ct CheckType) MarshalYAML() (interface{}, error) {
	if err := ct.Validate(); err != nil {
		return nil, err
	}
	return checkTypeWire{Name: ct.String(), Ref: ct.RefToken()}, nil
}

// UnmarshalYAML decodes the (name, ref) mapping with the same discriminant
// rule as UnmarshalJSON.
func (ct *CheckType) UnmarshalYAML(node *yaml.Node) error {
	var w checkTypeWire
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{Type: "CheckType", Data: []byte(node.Value), Reason: "not a ref-encoded mapping"}
	}
	if w.Ref == "" {
		return &errors.UnmarshalError{Type: "CheckType", Data: []byte(node.Value), Reason: `missing "ref" discriminant`}
	}
	parsed, err := CheckTypeFromToken(w.Ref)
	if err != nil {
		return err
	}
	*ct = parsed
	return nil
}
