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
	"reflect"
	"testing"

	"github.com/opsmith-io/opsmith-go/omcore/config"
	"github.com/opsmith-io/opsmith-go/omcore/errors"
)

func TestAccessRoundTrip(t *testing.T) {
	in := `{"name":"VIEWALL","ref":"/rest/config/access/1"}`

	var a config.Access
	if err := json.Unmarshal([]byte(in), &a); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if a.Point != config.AccessPointViewAll {
		t.Errorf("Point = %v, want VIEWALL", a.Point)
	}
	if a.Token != "/rest/config/access/1" {
		t.Errorf("Token = %q, want the wire ref", a.Token)
	}

	out, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != in {
		t.Errorf("re-encode = %s, want %s", out, in)
	}
}

func TestAccessWithoutToken(t *testing.T) {
	var a config.Access
	if err := json.Unmarshal([]byte(`{"name":"PASSWORDSAVE"}`), &a); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	out, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"name":"PASSWORDSAVE"}` {
		t.Errorf("Marshal = %s, want the ref omitted", out)
	}
}

func TestAccessUnknownName(t *testing.T) {
	var a config.Access
	err := json.Unmarshal([]byte(`{"name":"TELEPORT"}`), &a)
	if err == nil {
		t.Fatal("Unmarshal of unknown access point succeeded")
	}
	var uv *errors.UnknownVariantError
	if !stderrors.As(err, &uv) {
		t.Fatalf("error type = %T, want *errors.UnknownVariantError", err)
	}
	if uv.Token != "TELEPORT" {
		t.Errorf("Token = %q, want the offending name", uv.Token)
	}
}

func TestAccessDecodeIsCaseExact(t *testing.T) {
	var a config.Access
	if err := json.Unmarshal([]byte(`{"name":"viewall"}`), &a); err == nil {
		t.Fatal("Unmarshal accepted a lowercase wire name")
	}
}

func TestParseAccessPoint(t *testing.T) {
	got, err := config.ParseAccessPoint("  viewall ")
	if err != nil {
		t.Fatalf("ParseAccessPoint failed: %v", err)
	}
	if got != config.AccessPointViewAll {
		t.Errorf("ParseAccessPoint = %v, want VIEWALL", got)
	}

	if _, err := config.ParseAccessPoint("nosuch"); err == nil {
		t.Error("ParseAccessPoint accepted an unknown name")
	}
}

func TestAccessMapKeysAndOrder(t *testing.T) {
	m := config.NewAccessMap()
	m.Add(config.NewAccess(config.AccessPointViewAll))
	m.Add(config.NewAccess(config.AccessPointDashboard))
	m.Add(config.NewAccess(config.AccessPointViewAll))

	want := []string{"VIEWALL", "DASHBOARD"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestAccessMapJSONDecode(t *testing.T) {
	data := []byte(`[{"name":"VIEWSOME"},{"name":"RELOADACCESS","ref":"/rest/config/access/12"}]`)

	m := config.NewAccessMap()
	if err := json.Unmarshal(data, m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	grant, ok := m.Get("RELOADACCESS")
	if !ok || grant.Token != "/rest/config/access/12" {
		t.Errorf("Get(RELOADACCESS) = (%+v, %v), want the decoded grant", grant, ok)
	}
}

func TestAccessPointStringCoversTable(t *testing.T) {
	points := []config.AccessPoint{
		config.AccessPointActionAll,
		config.AccessPointConfigureBSMComponent,
		config.AccessPointNTViewAll,
		config.AccessPointRemotelyManagedClusters,
		config.AccessPointViewSome,
	}
	for _, p := range points {
		name := p.String()
		back, err := config.ParseAccessPoint(name)
		if err != nil {
			t.Errorf("ParseAccessPoint(%q) failed: %v", name, err)
			continue
		}
		if back != p {
			t.Errorf("ParseAccessPoint(%q) = %v, want %v", name, back, p)
		}
	}
}
