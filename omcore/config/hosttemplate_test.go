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
	"strings"
	"testing"
	"time"

	"github.com/opsmith-io/opsmith-go/omcore/config"
)

func TestHostTemplateHasIconMustBePast(t *testing.T) {
	past := uint64(time.Now().Add(-24*time.Hour).UnixMilli())
	future := uint64(time.Now().Add(24*time.Hour).UnixMilli())

	if _, err := config.NewHostTemplateBuilder().Name("Network - Base").HasIcon(past).Build(); err != nil {
		t.Errorf("Build rejected a past timestamp: %v", err)
	}
	if _, err := config.NewHostTemplateBuilder().Name("Network - Base").HasIcon(future).Build(); err == nil {
		t.Error("Build accepted a future timestamp")
	}
}

func TestHostTemplateNameRule(t *testing.T) {
	if _, err := config.NewHostTemplateBuilder().Name("OS - Unix Base").Build(); err != nil {
		t.Errorf("Build rejected a valid name: %v", err)
	}
	if _, err := config.NewHostTemplateBuilder().Name(".leading dot").Build(); err == nil {
		t.Error("Build accepted a leading dot")
	}
	if _, err := config.NewHostTemplateBuilder().Name(strings.Repeat("a", 129)).Build(); err == nil {
		t.Error("Build accepted a 129-char name")
	}
}

func TestHostTemplateDescriptionBound(t *testing.T) {
	long := strings.Repeat("d", 256)
	if _, err := config.NewHostTemplateBuilder().Name("OS - Unix Base").Description(long).Build(); err == nil {
		t.Error("Build accepted a 256-char description")
	}
}

func TestHostTemplateRef(t *testing.T) {
	ht, err := config.NewHostTemplateBuilder().Name("OS - Unix Base").Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	ref := ht.Ref()
	if ref.UniqueName() != "OS - Unix Base" {
		t.Errorf("ref UniqueName() = %q", ref.UniqueName())
	}
}
