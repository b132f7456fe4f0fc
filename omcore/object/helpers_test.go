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

package object_test

import (
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/opsmith-io/opsmith-go/omcore/object"
)

func TestValidateAll(t *testing.T) {
	objs := []*widget{
		{Name: "one"},
		{Name: ""},
		{Name: "three"},
		{Name: ""},
	}

	err := object.ValidateAll(objs)
	if err == nil {
		t.Fatal("ValidateAll = nil, want aggregated errors")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("aggregated %d errors, want 2", got)
	}
	if !strings.Contains(err.Error(), "object[1] (Widget)") {
		t.Errorf("error %q does not name the failing index and type", err)
	}

	if err := object.ValidateAll([]*widget{{Name: "ok"}}); err != nil {
		t.Errorf("ValidateAll of valid slice = %v, want nil", err)
	}
	if err := object.ValidateAll([]*widget{}); err != nil {
		t.Errorf("ValidateAll of empty slice = %v, want nil", err)
	}
}

func TestCloneWithName(t *testing.T) {
	orig := &widget{
		Name:        "alpha",
		Size:        7,
		IDNum:       42,
		Token:       "/rest/config/widget/42",
		Uncommitted: true,
	}

	clone, err := object.CloneWithName(orig, "alpha-copy")
	if err != nil {
		t.Fatalf("CloneWithName failed: %v", err)
	}

	if clone.Name != "alpha-copy" {
		t.Errorf("clone name = %q, want %q", clone.Name, "alpha-copy")
	}
	if clone.Size != 7 {
		t.Errorf("clone size = %d, want the original's 7", clone.Size)
	}
	if _, known := clone.ID(); known {
		t.Error("clone still carries the original's id")
	}
	if clone.RefToken() != "" {
		t.Error("clone still carries the original's ref token")
	}
	if clone.Uncommitted {
		t.Error("clone still carries the uncommitted marker")
	}

	// The original is untouched.
	if orig.Name != "alpha" || orig.IDNum != 42 {
		t.Errorf("original mutated by CloneWithName: %+v", orig)
	}
}

func TestCloneWithNameRejectsInvalidName(t *testing.T) {
	orig := &widget{Name: "alpha"}
	if _, err := object.CloneWithName(orig, ""); err == nil {
		t.Fatal("CloneWithName accepted an invalid name")
	}
}

func TestToJSONRejectsInvalid(t *testing.T) {
	if _, err := object.ToJSON(&widget{}); err == nil {
		t.Fatal("ToJSON serialized an invalid object")
	}

	data, err := object.ToJSON(&widget{Name: "alpha"})
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), `"alpha"`) {
		t.Errorf("ToJSON = %s, missing the name", data)
	}
}

func TestFromJSONValidates(t *testing.T) {
	var w widget
	if err := object.FromJSON([]byte(`{"size":3}`), &w); err == nil {
		t.Fatal("FromJSON accepted an object failing validation")
	}

	var ok widget
	if err := object.FromJSON([]byte(`{"name":"alpha","size":3}`), &ok); err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if ok.Size != 3 {
		t.Errorf("size = %d, want 3", ok.Size)
	}
}

func TestYAMLHelpers(t *testing.T) {
	data, err := object.ToYAML(&widget{Name: "alpha", Size: 1})
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}

	var back widget
	if err := object.FromYAML(data, &back); err != nil {
		t.Fatalf("FromYAML failed: %v", err)
	}
	if back.Name != "alpha" || back.Size != 1 {
		t.Errorf("round trip = %+v", back)
	}

	if _, err := object.ToYAML(&widget{}); err == nil {
		t.Error("ToYAML serialized an invalid object")
	}
}
