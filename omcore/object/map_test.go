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
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
	"github.com/opsmith-io/opsmith-go/omcore/object"
)

// widget is a minimal entity used to exercise the generic collection
// machinery without pulling in a concrete configuration type.
type widget struct {
	Name        string `json:"name" yaml:"name"`
	Size        int    `json:"size,omitempty" yaml:"size,omitempty"`
	IDNum       uint64 `json:"id,omitempty" yaml:"id,omitempty"`
	Token       string `json:"ref,omitempty" yaml:"ref,omitempty"`
	Uncommitted bool   `json:"uncommitted,omitempty" yaml:"uncommitted,omitempty"`
}

func (w *widget) UniqueName() string { return w.Name }
func (w *widget) TypeName() string   { return "Widget" }

func (w *widget) Validate() error {
	if w.Name == "" {
		return &errors.RequiredFieldError{Type: "Widget", Field: "name"}
	}
	return nil
}

func (w *widget) Ref() *widgetRef {
	return &widgetRef{Name: w.Name, Token: w.Token}
}

func (w *widget) ID() (uint64, bool) { return w.IDNum, w.IDNum != 0 }
func (w *widget) RefToken() string   { return w.Token }
func (w *widget) ObjectName() string { return w.Name }

func (w *widget) SetName(name string) error {
	if name == "" {
		return &errors.ValidationError{Type: "Widget", Field: "name", Reason: "empty"}
	}
	w.Name = name
	return nil
}

func (w *widget) ClearReadonly() {
	w.IDNum = 0
	w.Token = ""
	w.Uncommitted = false
}

type widgetRef struct {
	Name  string `json:"name" yaml:"name"`
	Token string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

func (r *widgetRef) UniqueName() string { return r.Name }
func (r *widgetRef) TypeName() string   { return "WidgetRef" }
func (r *widgetRef) Validate() error    { return nil }

var (
	_ object.Referable[*widgetRef] = (*widget)(nil)
	_ object.Persistent            = (*widget)(nil)
	_ object.Object                = (*widgetRef)(nil)
)

type widgetMap = object.Map[widget, *widget]

func TestMapAddIsIdempotent(t *testing.T) {
	m := object.NewMap[widget, *widget]()
	m.Add(&widget{Name: "alpha", Size: 1})
	m.Add(&widget{Name: "alpha", Size: 1})

	if m.Len() != 1 {
		t.Fatalf("Len() = %d after adding the same key twice, want 1", m.Len())
	}
}

func TestMapReplaceKeepsPosition(t *testing.T) {
	m := object.NewMap[widget, *widget]()
	m.Add(&widget{Name: "alpha", Size: 1})
	m.Add(&widget{Name: "beta", Size: 2})
	m.Add(&widget{Name: "gamma", Size: 3})
	m.Add(&widget{Name: "beta", Size: 20})

	wantKeys := []string{"alpha", "beta", "gamma"}
	if got := m.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Keys() = %v, want %v (replace must keep original position)", got, wantKeys)
	}

	got, ok := m.Get("beta")
	if !ok {
		t.Fatal("Get(beta) missing after replace")
	}
	if got.Size != 20 {
		t.Errorf("Get(beta).Size = %d, want 20 (last write wins)", got.Size)
	}
}

func TestMapGetMissing(t *testing.T) {
	var m widgetMap
	got, ok := m.Get("nope")
	if ok || got != nil {
		t.Errorf("Get on empty map = (%v, %v), want (nil, false)", got, ok)
	}
}

func TestMapRemove(t *testing.T) {
	m := object.NewMap[widget, *widget]()
	m.Add(&widget{Name: "alpha"})
	m.Add(&widget{Name: "beta"})
	m.Add(&widget{Name: "gamma"})

	removed, ok := m.Remove("beta")
	if !ok || removed.Name != "beta" {
		t.Fatalf("Remove(beta) = (%v, %v), want the stored object", removed, ok)
	}
	if _, ok := m.Remove("beta"); ok {
		t.Error("second Remove(beta) reported success")
	}

	wantKeys := []string{"alpha", "gamma"}
	if got := m.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Keys() after remove = %v, want %v", got, wantKeys)
	}
}

func TestMapJSONRoundTrip(t *testing.T) {
	m := object.NewMap[widget, *widget]()
	m.Add(&widget{Name: "alpha", Size: 1})
	m.Add(&widget{Name: "beta", Size: 2})

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `[{"name":"alpha","size":1},{"name":"beta","size":2}]`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	back := object.NewMap[widget, *widget]()
	if err := json.Unmarshal(data, back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(back.Keys(), m.Keys()) {
		t.Errorf("round trip keys = %v, want %v", back.Keys(), m.Keys())
	}
}

func TestMapUnmarshalDuplicateKeepsLast(t *testing.T) {
	data := []byte(`[{"name":"alpha","size":1},{"name":"alpha","size":9}]`)

	m := object.NewMap[widget, *widget]()
	if err := json.Unmarshal(data, m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (duplicate keys merge)", m.Len())
	}
	got, _ := m.Get("alpha")
	if got.Size != 9 {
		t.Errorf("Size = %d, want 9 (last occurrence wins)", got.Size)
	}
}

func TestMapMarshalEmpty(t *testing.T) {
	var m widgetMap
	data, err := json.Marshal(&m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Marshal of empty map = %s, want []", data)
	}
}

func TestMapUnmarshalNotArray(t *testing.T) {
	m := object.NewMap[widget, *widget]()
	err := json.Unmarshal([]byte(`{"name":"alpha"}`), m)
	if err == nil {
		t.Fatal("Unmarshal of a JSON object succeeded, want error")
	}
}

func TestMapYAMLRoundTrip(t *testing.T) {
	m := object.NewMap[widget, *widget]()
	m.Add(&widget{Name: "alpha", Size: 1})
	m.Add(&widget{Name: "beta", Size: 2})

	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}

	back := object.NewMap[widget, *widget]()
	if err := yaml.Unmarshal(data, back); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(back.Keys(), m.Keys()) {
		t.Errorf("round trip keys = %v, want %v", back.Keys(), m.Keys())
	}
}

func TestMapValidateAggregates(t *testing.T) {
	m := object.NewMap[widget, *widget]()
	good := &widget{Name: "good"}
	m.Add(good)

	// Corrupt two stored entities after insertion; the keys remain.
	bad1 := &widget{Name: "bad1"}
	bad2 := &widget{Name: "bad2"}
	m.Add(bad1)
	m.Add(bad2)
	bad1.Name = ""
	bad2.Name = ""

	if err := m.Validate(); err == nil {
		t.Error("Validate() = nil, want aggregated errors")
	}

	fresh := object.NewMap[widget, *widget]()
	fresh.Add(good)
	if err := fresh.Validate(); err != nil {
		t.Errorf("Validate() of valid map = %v, want nil", err)
	}
}

func TestRefMapFromPreservesOrder(t *testing.T) {
	m := object.NewMap[widget, *widget]()
	m.Add(&widget{Name: "alpha", Token: "/rest/config/widget/1"})
	m.Add(&widget{Name: "beta", Token: "/rest/config/widget/2"})
	m.Add(&widget{Name: "gamma", Token: "/rest/config/widget/3"})

	refs := object.RefMapFrom[widget, widgetRef](m)
	wantKeys := []string{"alpha", "beta", "gamma"}
	if got := refs.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("ref keys = %v, want %v", got, wantKeys)
	}

	ref, ok := refs.Get("beta")
	if !ok {
		t.Fatal("Get(beta) missing in ref map")
	}
	if ref.Token != "/rest/config/widget/2" {
		t.Errorf("ref token = %q, want the original token", ref.Token)
	}
}
