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
	"strings"
	"testing"

	"github.com/opsmith-io/opsmith-go/omcore/config"
	"github.com/opsmith-io/opsmith-go/omcore/object"
)

func TestHashtagBuilderDefaults(t *testing.T) {
	h, err := config.NewHashtagBuilder().Name("production").Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if h.Enabled == nil || !h.Enabled.Bool() {
		t.Error("Enabled did not default to true")
	}
	if h.ShowContextualMenus == nil || !h.ShowContextualMenus.Bool() {
		t.Error("ShowContextualMenus did not default to true")
	}
	if h.Style != config.HashtagStyleUnset {
		t.Errorf("Style = %v, want unset", h.Style)
	}
}

func TestHashtagNameRule(t *testing.T) {
	if _, err := config.NewHashtagBuilder().Name("prod env").Build(); err == nil {
		t.Error("Build accepted a name with a space")
	}
	if _, err := config.NewHashtagBuilder().Name("-leading").Build(); err == nil {
		t.Error("Build accepted a leading hyphen")
	}
	if _, err := config.NewHashtagBuilder().Name(strings.Repeat("a", 129)).Build(); err == nil {
		t.Error("Build accepted a 129-char name")
	}
	if _, err := config.NewHashtagBuilder().Name("prod_env-2").Build(); err != nil {
		t.Errorf("Build rejected a valid name: %v", err)
	}
}

func TestHashtagStyleWireNames(t *testing.T) {
	tests := []struct {
		value config.HashtagStyle
		wire  string
	}{
		{value: config.HashtagStyleUnset, wire: `"null"`},
		{value: config.HashtagStyleGroupByHost, wire: `"group_by_host"`},
		{value: config.HashtagStyleGroupByService, wire: `"group_by_service"`},
		{value: config.HashtagStyleHostSummary, wire: `"host_summary"`},
		{value: config.HashtagStyleErrorsAndHostCells, wire: `"errors_and_host_cells"`},
		{value: config.HashtagStylePerformance, wire: `"performance"`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.value)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", tt.value, err)
		}
		if string(data) != tt.wire {
			t.Errorf("Marshal(%v) = %s, want %s", tt.value, data, tt.wire)
		}

		var back config.HashtagStyle
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if back != tt.value {
			t.Errorf("round trip = %v, want %v", back, tt.value)
		}
	}
}

func TestHashtagStyleDecodesJSONNull(t *testing.T) {
	var hs config.HashtagStyle
	if err := json.Unmarshal([]byte(`null`), &hs); err != nil {
		t.Fatalf("Unmarshal(null) failed: %v", err)
	}
	if hs != config.HashtagStyleUnset {
		t.Errorf("style = %v, want unset", hs)
	}

	if err := json.Unmarshal([]byte(`"mosaic"`), &hs); err == nil {
		t.Error("Unmarshal accepted an unknown style")
	}
}

func TestHashtagJSONFlagEncoding(t *testing.T) {
	h, err := config.NewHashtagBuilder().
		Name("production").
		Public(true).
		ExcludeHandled(false).
		Style(config.HashtagStyleHostSummary).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"public":"1"`) {
		t.Errorf("public not encoded as string flag: %s", s)
	}
	if !strings.Contains(s, `"exclude_handled":"0"`) {
		t.Errorf("exclude_handled not encoded as string flag: %s", s)
	}
	if !strings.Contains(s, `"style":"host_summary"`) {
		t.Errorf("style not encoded: %s", s)
	}
}

func TestHashtagCloneWithName(t *testing.T) {
	var h config.Hashtag
	in := `{"name":"production","enabled":"1","id":"9","ref":"/rest/config/keyword/9","uncommitted":"1"}`
	if err := json.Unmarshal([]byte(in), &h); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	clone, err := object.CloneWithName[config.Hashtag](&h, "staging")
	if err != nil {
		t.Fatalf("CloneWithName failed: %v", err)
	}
	if clone.Name != "staging" {
		t.Errorf("Name = %q, want staging", clone.Name)
	}
	if _, ok := clone.ID(); ok {
		t.Error("clone kept the id")
	}
	if clone.RefToken() != "" || clone.Uncommitted != nil {
		t.Error("clone kept ref or uncommitted")
	}
	if clone.Enabled == nil || !clone.Enabled.Bool() {
		t.Error("clone lost the enabled flag")
	}
	if h.Name != "production" {
		t.Error("original was mutated")
	}
}
