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
	"github.com/opsmith-io/opsmith-go/omcore/errors"
	"github.com/opsmith-io/opsmith-go/omcore/object"
)

// TimeZone is one of the backend's selectable time zones. Zones are
// backend-defined and immutable; both the display name and the ref token are
// always present, and the token is the identity key because the backend has
// renamed zones across releases while keeping tokens stable.
type TimeZone struct {
	// Name is the zone's display name, e.g. "Europe/Oslo".
	Name string `json:"name" yaml:"name"`

	// Token is the backend's ref token for the zone.
	Token string `json:"ref" yaml:"ref"`
}

// UniqueName returns the ref token.
func (tz *TimeZone) UniqueName() string {
	return tz.Token
}

// TypeName returns "TimeZone".
func (tz *TimeZone) TypeName() string {
	return "TimeZone"
}

// Validate requires both the name and the token.
func (tz *TimeZone) Validate() error {
	if tz.Name == "" {
		return &errors.RequiredFieldError{Type: "TimeZone", Field: "name"}
	}
	if tz.Token == "" {
		return &errors.RequiredFieldError{Type: "TimeZone", Field: "ref"}
	}
	return nil
}

// TimeZoneBuilder assembles a TimeZone.
type TimeZoneBuilder struct {
	name  string
	token string
}

// NewTimeZoneBuilder returns an empty builder.
func NewTimeZoneBuilder() *TimeZoneBuilder {
	return &TimeZoneBuilder{}
}

// Name sets the zone's display name.
func (b *TimeZoneBuilder) Name(name string) *TimeZoneBuilder {
	b.name = name
	return b
}

// Token sets the backend's ref token.
func (b *TimeZoneBuilder) Token(token string) *TimeZoneBuilder {
	b.token = token
	return b
}

// Build validates the builder state and constructs the TimeZone.
func (b *TimeZoneBuilder) Build() (*TimeZone, error) {
	tz := &TimeZone{Name: b.name, Token: b.token}
	if err := tz.Validate(); err != nil {
		return nil, err
	}
	return tz, nil
}

// TimeZoneMap is an insertion-ordered collection of zones keyed by ref
// token.
type TimeZoneMap = object.Map[TimeZone, *TimeZone]

// NewTimeZoneMap returns an empty TimeZoneMap.
func NewTimeZoneMap() *TimeZoneMap {
	return object.NewMap[TimeZone, *TimeZone]()
}

var (
	_ object.Object             = (*TimeZone)(nil)
	_ object.Builder[*TimeZone] = (*TimeZoneBuilder)(nil)
)
