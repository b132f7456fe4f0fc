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
	"github.com/blang/semver/v4"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
)

// ServerInfo is the backend's /rest/info payload: the instance identity and
// its software version. The version string is plain "major.minor.patch", so
// it parses as a semantic version and supports feature gating by release.
type ServerInfo struct {
	// Version is the backend's release, e.g. "6.8.9".
	Version string `json:"opsview_version" yaml:"opsview_version"`

	// Edition is the licensed edition name.
	Edition string `json:"opsview_edition,omitempty" yaml:"opsview_edition,omitempty"`

	// UUID identifies the instance.
	UUID string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
}

// ParsedVersion parses the reported version. ParseTolerant accepts the
// short "6.8" form some builds report.
func (si *ServerInfo) ParsedVersion() (semver.Version, error) {
	v, err := semver.ParseTolerant(si.Version)
	if err != nil {
		return semver.Version{}, &errors.ParseError{Type: "ServerInfo version", Value: si.Version}
	}
	return v, nil
}

// AtLeast reports whether the backend is at or beyond the given release.
// An unparseable version reports false.
func (si *ServerInfo) AtLeast(version string) bool {
	have, err := si.ParsedVersion()
	if err != nil {
		return false
	}
	want, err := semver.ParseTolerant(version)
	if err != nil {
		return false
	}
	return have.GTE(want)
}

// Validate requires a parseable version.
func (si *ServerInfo) Validate() error {
	if si.Version == "" {
		return &errors.RequiredFieldError{Type: "ServerInfo", Field: "opsview_version"}
	}
	_, err := si.ParsedVersion()
	return err
}
