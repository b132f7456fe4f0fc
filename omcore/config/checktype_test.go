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
	stderrors "errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/opsmith-io/opsmith-go/omcore/config"
	"github.com/opsmith-io/opsmith-go/omcore/errors"
)

func TestCheckTypeCanonicalEncoding(t *testing.T) {
	tests := []struct {
		name  string
		value config.CheckType
		want  string
	}{
		{name: "active", value: config.CheckTypeActive, want: `{"name":"Active Plugin","ref":"/rest/config/checktype/1"}`},
		{name: "passive", value: config.CheckTypePassive, want: `{"name":"Passive","ref":"/rest/config/checktype/2"}`},
		{name: "snmp polling", value: config.CheckTypeSNMPPolling, want: `{"name":"SNMP Polling","ref":"/rest/config/checktype/3"}`},
		{name: "snmp trap", value: config.CheckTypeSNMPTrap, want: `{"name":"SNMP Trap","ref":"/rest/config/checktype/4"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}

			var back config.CheckType
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if back != tt.value {
				t.Errorf("round trip = %v, want %v", back, tt.value)
			}

			again, err := json.Marshal(back)
			if err != nil {
				t.Fatalf("re-Marshal failed: %v", err)
			}
			if string(again) != tt.want {
				t.Errorf("re-encode = %s, want byte-identical %s", again, tt.want)
			}
		})
	}
}

func TestCheckTypeUnknownToken(t *testing.T) {
	data := []byte(`{"name":"Mystery","ref":"/rest/config/checktype/99"}`)

	var ct config.CheckType
	err := json.Unmarshal(data, &ct)
	if err == nil {
		t.Fatal("Unmarshal of unknown token succeeded")
	}
	var uv *errors.UnknownVariantError
	if !stderrors.As(err, &uv) {
		t.Fatalf("error type = %T, want *errors.UnknownVariantError", err)
	}
	if uv.Token != "/rest/config/checktype/99" {
		t.Errorf("Token = %q, want the full offending token", uv.Token)
	}
	if !strings.Contains(err.Error(), "/rest/config/checktype/99") {
		t.Errorf("error %q does not name the full token", err)
	}
}

func TestCheckTypeMissingRef(t *testing.T) {
	var ct config.CheckType
	if err := json.Unmarshal([]byte(`{"name":"Passive"}`), &ct); err == nil {
		t.Fatal("Unmarshal without a ref discriminant succeeded")
	}
}

func TestCheckTypeUnsetCannotMarshal(t *testing.T) {
	if _, err := json.Marshal(config.CheckTypeUnset); err == nil {
		t.Fatal("Marshal of the zero value succeeded")
	}
}

func TestParseCheckType(t *testing.T) {
	tests := []struct {
		input   string
		want    config.CheckType
		wantErr bool
	}{
		{input: "Active Plugin", want: config.CheckTypeActive},
		{input: "  passive  ", want: config.CheckTypePassive},
		{input: "snmp polling", want: config.CheckTypeSNMPPolling},
		{input: "SNMP TRAP", want: config.CheckTypeSNMPTrap},
		{input: "bogus", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := config.ParseCheckType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCheckType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseCheckType(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckTypeYAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(config.CheckTypeSNMPPolling)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}

	var back config.CheckType
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if back != config.CheckTypeSNMPPolling {
		t.Errorf("round trip = %v, want SNMP Polling", back)
	}
}
