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

package config_test

import (
	"encoding/json"
	"testing"

	"github.com/opsmith-io/opsmith-go/omcore/config"
)

func TestServerInfoVersionOrdering(t *testing.T) {
	si := &config.ServerInfo{Version: "6.8.9"}

	if !si.AtLeast("6.8.9") {
		t.Error("AtLeast(6.8.9) = false for equal versions")
	}
	if !si.AtLeast("6.7.0") {
		t.Error("AtLeast(6.7.0) = false")
	}
	if si.AtLeast("6.9.0") {
		t.Error("AtLeast(6.9.0) = true")
	}
}

func TestServerInfoTolerantParse(t *testing.T) {
	si := &config.ServerInfo{Version: "6.8"}
	v, err := si.ParsedVersion()
	if err != nil {
		t.Fatalf("ParsedVersion failed: %v", err)
	}
	if v.Major != 6 || v.Minor != 8 || v.Patch != 0 {
		t.Errorf("ParsedVersion = %v, want 6.8.0", v)
	}
}

func TestServerInfoInvalidVersion(t *testing.T) {
	si := &config.ServerInfo{Version: "latest"}
	if err := si.Validate(); err == nil {
		t.Error("Validate accepted an unparseable version")
	}
	if si.AtLeast("1.0.0") {
		t.Error("AtLeast = true for an unparseable version")
	}
}

func TestServerInfoDecode(t *testing.T) {
	in := `{"opsview_version":"6.8.9","opsview_edition":"enterprise","uuid":"8a3f"}`
	var si config.ServerInfo
	if err := json.Unmarshal([]byte(in), &si); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if si.Version != "6.8.9" || si.Edition != "enterprise" {
		t.Errorf("decoded %+v", si)
	}
	if err := si.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}
