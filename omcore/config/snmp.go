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

// SNMPVersion is the SNMP protocol version a host is polled with. The wire
// names are exactly as the backend spells them: "1", "2c" and "3".
type SNMPVersion uint8

const (
	// SNMPVersionUnset is the zero value. It is not a valid wire value.
	SNMPVersionUnset SNMPVersion = iota

	// SNMPVersion1 is SNMPv1.
	SNMPVersion1

	// SNMPVersion2c is SNMPv2c.
	SNMPVersion2c

	// SNMPVersion3 is SNMPv3. Hosts using it carry the v3 security level,
	// auth protocol and priv protocol in separate fields.
	SNMPVersion3
)

const (
	snmpVersion1Str  = "1"
	snmpVersion2cStr = "2c"
	snmpVersion3Str  = "3"
)

// ParseSNMPVersion parses a wire name into an SNMPVersion. The input is
// trimmed and lowercased first, so "2C" parses as SNMPVersion2c.
func ParseSNMPVersion(s string) (SNMPVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case snmpVersion1Str:
		return SNMPVersion1, nil
	case snmpVersion2cStr:
		return SNMPVersion2c, nil
	case snmpVersion3Str:
		return SNMPVersion3, nil
	default:
		return SNMPVersionUnset, &errors.ParseError{Type: "SNMPVersion", Value: s}
	}
}

// String returns the wire name.
func (v SNMPVersion) String() string {
	switch v {
	case SNMPVersion1:
		return snmpVersion1Str
	case SNMPVersion2c:
		return snmpVersion2cStr
	case SNMPVersion3:
		return snmpVersion3Str
	default:
		return "SNMPVersion(" + strconv.Itoa(int(v)) + ")"
	}
}

// TypeName returns "SNMPVersion".
func (v SNMPVersion) TypeName() string { return "SNMPVersion" }

// Validate reports whether this SNMPVersion is a defined constant. The zero
// value is invalid.
func (v SNMPVersion) Validate() error {
	switch v {
	case SNMPVersion1, SNMPVersion2c, SNMPVersion3:
		return nil
	default:
		return &errors.MarshalError{Type: "SNMPVersion", Value: int(v)}
	}
}

// MarshalJSON encodes the version as its wire name string.
func (v SNMPVersion) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes the version from its wire name string.
func (v *SNMPVersion) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "SNMPVersion", Data: data, Reason: "not a JSON string"}
	}
	parsed, err := ParseSNMPVersion(str)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes the version as its wire name string.
func (v SNMPVersion) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML decodes the version from a YAML scalar.
func (v *SNMPVersion) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseSNMPVersion(node.Value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// SNMPV3SecurityLevel is the SNMPv3 security level: whether authentication
// and privacy are required. Wire names are camel-cased exactly as the
// backend spells them.
type SNMPV3SecurityLevel uint8

const (
	// SNMPV3SecurityLevelUnset is the zero value. It is not a valid wire
	// value.
	SNMPV3SecurityLevelUnset SNMPV3SecurityLevel = iota

	// SNMPV3NoAuthNoPriv requires neither authentication nor privacy.
	SNMPV3NoAuthNoPriv

	// SNMPV3AuthNoPriv requires authentication but not privacy.
	SNMPV3AuthNoPriv

	// SNMPV3AuthPriv requires both authentication and privacy.
	SNMPV3AuthPriv
)

const (
	snmpV3NoAuthNoPrivStr = "noAuthNoPriv"
	snmpV3AuthNoPrivStr   = "authNoPriv"
	snmpV3AuthPrivStr     = "authPriv"
)

// ParseSNMPV3SecurityLevel parses a wire name into an SNMPV3SecurityLevel.
// Matching is case-insensitive after trimming; serialization always uses
// the canonical camel-cased name.
func ParseSNMPV3SecurityLevel(s string) (SNMPV3SecurityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case strings.ToLower(snmpV3NoAuthNoPrivStr):
		return SNMPV3NoAuthNoPriv, nil
	case strings.ToLower(snmpV3AuthNoPrivStr):
		return SNMPV3AuthNoPriv, nil
	case strings.ToLower(snmpV3AuthPrivStr):
		return SNMPV3AuthPriv, nil
	default:
		return SNMPV3SecurityLevelUnset, &errors.ParseError{Type: "SNMPV3SecurityLevel", Value: s}
	}
}

// String returns the canonical wire name.
func (l SNMPV3SecurityLevel) String() string {
	switch l {
	case SNMPV3NoAuthNoPriv:
		return snmpV3NoAuthNoPrivStr
	case SNMPV3AuthNoPriv:
		return snmpV3AuthNoPrivStr
	case SNMPV3AuthPriv:
		return snmpV3AuthPrivStr
	default:
		return "SNMPV3SecurityLevel(" + strconv.Itoa(int(l)) + ")"
	}
}

// TypeName returns "SNMPV3SecurityLevel".
func (l SNMPV3SecurityLevel) TypeName() string { return "SNMPV3SecurityLevel" }

// Validate reports whether this level is a defined constant. The zero value
// is invalid.
func (l SNMPV3SecurityLevel) Validate() error {
	switch l {
	case SNMPV3NoAuthNoPriv, SNMPV3AuthNoPriv, SNMPV3AuthPriv:
		return nil
	default:
		return &errors.MarshalError{Type: "SNMPV3SecurityLevel", Value: int(l)}
	}
}

// MarshalJSON encodes the level as its wire name string.
func (l SNMPV3SecurityLevel) MarshalJSON() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes the level from its wire name string.
func (l *SNMPV3SecurityLevel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "SNMPV3SecurityLevel", Data: data, Reason: "not a JSON string"}
	}
	parsed, err := ParseSNMPV3SecurityLevel(str)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalYAML encodes the level as its wire name string.
func (l SNMPV3SecurityLevel) MarshalYAML() (interface{}, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l.String(), nil
}

// UnmarshalYAML decodes the level from a YAML scalar.
func (l *SNMPV3SecurityLevel) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseSNMPV3SecurityLevel(node.Value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// SNMPV3AuthProtocol is the SNMPv3 authentication protocol. The backend
// serializes an unspecified protocol as the empty string, so the zero value
// is valid and round-trips as "".
type SNMPV3AuthProtocol uint8

const (
	// SNMPV3AuthUnspecified means no auth protocol is configured. It is
	// the zero value and encodes as "".
	SNMPV3AuthUnspecified SNMPV3AuthProtocol = iota

	// SNMPV3AuthMD5 selects MD5.
	SNMPV3AuthMD5

	// SNMPV3AuthSHA selects SHA.
	SNMPV3AuthSHA
)

// ParseSNMPV3AuthProtocol parses a wire name ("MD5", "SHA" or "") into an
// SNMPV3AuthProtocol.
func ParseSNMPV3AuthProtocol(s string) (SNMPV3AuthProtocol, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return SNMPV3AuthUnspecified, nil
	case "MD5":
		return SNMPV3AuthMD5, nil
	case "SHA":
		return SNMPV3AuthSHA, nil
	default:
		return SNMPV3AuthUnspecified, &errors.ParseError{Type: "SNMPV3AuthProtocol", Value: s}
	}
}

// String returns the wire name; the unspecified value is the empty string.
func (p SNMPV3AuthProtocol) String() string {
	switch p {
	case SNMPV3AuthUnspecified:
		return ""
	case SNMPV3AuthMD5:
		return "MD5"
	case SNMPV3AuthSHA:
		return "SHA"
	default:
		return "SNMPV3AuthProtocol(" + strconv.Itoa(int(p)) + ")"
	}
}

// TypeName returns "SNMPV3AuthProtocol".
func (p SNMPV3AuthProtocol) TypeName() string { return "SNMPV3AuthProtocol" }

// Validate reports whether this protocol is a defined constant. Unlike most
// enums here the zero value is valid: it mirrors the backend's "" encoding.
func (p SNMPV3AuthProtocol) Validate() error {
	switch p {
	case SNMPV3AuthUnspecified, SNMPV3AuthMD5, SNMPV3AuthSHA:
		return nil
	default:
		return &errors.MarshalError{Type: "SNMPV3AuthProtocol", Value: int(p)}
	}
}

// MarshalJSON encodes the protocol as its wire name string.
func (p SNMPV3AuthProtocol) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes the protocol from its wire name string.
func (p *SNMPV3AuthProtocol) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "SNMPV3AuthProtocol", Data: data, Reason: "not a JSON string"}
	}
	parsed, err := ParseSNMPV3AuthProtocol(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML encodes the protocol as its wire name string.
func (p SNMPV3AuthProtocol) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.String(), nil
}

// UnmarshalYAML decodes the protocol from a YAML scalar.
func (p *SNMPV3AuthProtocol) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseSNMPV3AuthProtocol(node.Value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// SNMPV3PrivProtocol is the SNMPv3 privacy protocol. Like the auth protocol,
// the unspecified zero value is valid and encodes as "".
type SNMPV3PrivProtocol uint8

const (
	// SNMPV3PrivUnspecified means no priv protocol is configured. It is
	// the zero value and encodes as "".
	SNMPV3PrivUnspecified SNMPV3PrivProtocol = iota

	// SNMPV3PrivDES selects DES.
	SNMPV3PrivDES

	// SNMPV3PrivAES selects AES.
	SNMPV3PrivAES
)

// ParseSNMPV3PrivProtocol parses a wire name ("DES", "AES" or "") into an
// SNMPV3PrivProtocol.
func ParseSNMPV3PrivProtocol(s string) (SNMPV3PrivProtocol, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return SNMPV3PrivUnspecified, nil
	case "DES":
		return SNMPV3PrivDES, nil
	case "AES":
		return SNMPV3PrivAES, nil
	default:
		return SNMPV3PrivUnspecified, &errors.ParseError{Type: "SNMPV3PrivProtocol", Value: s}
	}
}

// String returns the wire name; the unspecified value is the empty string.
func (p SNMPV3PrivProtocol) String() string {
	switch p {
	case SNMPV3PrivUnspecified:
		return ""
	case SNMPV3PrivDES:
		return "DES"
	case SNMPV3PrivAES:
		return "AES"
	default:
		return "SNMPV3PrivProtocol(" + strconv.Itoa(int(p)) + ")"
	}
}

// TypeName returns "SNMPV3PrivProtocol".
func (p SNMPV3PrivProtocol) TypeName() string { return "SNMPV3PrivProtocol" }

// Validate reports whether this protocol is a defined constant.
func (p SNMPV3PrivProtocol) Validate() error {
	switch p {
	case SNMPV3PrivUnspecified, SNMPV3PrivDES, SNMPV3PrivAES:
		return nil
	default:
		return &errors.MarshalError{Type: "SNMPV3PrivProtocol", Value: int(p)}
	}
}

// MarshalJSON encodes the protocol as its wire name string.
func (p SNMPV3PrivProtocol) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes the protocol from its wire name string.
func (p *SNMPV3PrivProtocol) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "SNMPV3PrivProtocol", Data: data, Reason: "not a JSON string"}
	}
	parsed, err := ParseSNMPV3PrivProtocol(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML encodes the protocol as its wire name string.
func (p SNMPV3PrivProtocol) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.String(), nil
}

// UnmarshalYAML decodes the protocol from a YAML scalar.
func (p *SNMPV3PrivProtocol) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseSNMPV3PrivProtocol(node.Value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
