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

package wire_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/opsmith-io/opsmith-go/omcore/wire"
)

func TestUintUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    wire.Uint
		wantErr bool
	}{
		{name: "number", input: `42`, want: 42},
		{name: "string number", input: `"42"`, want: 42},
		{name: "zero", input: `0`, want: 0},
		{name: "padded string", input: `" 7 "`, want: 7},
		{name: "large value", input: `"18446744073709551615"`, want: wire.Uint(^uint64(0))},
		{name: "negative number", input: `-1`, wantErr: true},
		{name: "negative string", input: `"-1"`, wantErr: true},
		{name: "fraction", input: `1.5`, wantErr: true},
		{name: "non-numeric string", input: `"abc"`, wantErr: true},
		{name: "array", input: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u wire.Uint
			err := json.Unmarshal([]byte(tt.input), &u)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
			}
			if u != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.input, u, tt.want)
			}
		})
	}
}

func TestUintMarshalJSON(t *testing.T) {
	got, err := json.Marshal(wire.Uint(123))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(got) != `123` {
		t.Errorf("Marshal = %s, want 123 (numbers re-encode as numbers, not strings)", got)
	}
}

func TestUintStringToNumberRoundTrip(t *testing.T) {
	type payload struct {
		ID *wire.Uint `json:"id,omitempty"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"id":"1742"}`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p.ID == nil || p.ID.Uint64() != 1742 {
		t.Fatalf("id = %v, want 1742", p.ID)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"id":1742}` {
		t.Errorf("Marshal = %s, want {\"id\":1742}", out)
	}
}

func TestUintYAMLRoundTrip(t *testing.T) {
	var u wire.Uint
	if err := yaml.Unmarshal([]byte(`"99"`), &u); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if u != 99 {
		t.Fatalf("yaml.Unmarshal = %d, want 99", u)
	}

	out, err := yaml.Marshal(u)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	var back wire.Uint
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal(round trip) failed: %v", err)
	}
	if back != u {
		t.Errorf("round trip = %d, want %d", back, u)
	}
}
