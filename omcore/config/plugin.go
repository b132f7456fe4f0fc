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
	"github.com/opsmith-io/opsmith-go/omcore/validate"
	"github.com/opsmith-io/opsmith-go/omcore/wire"
)

// Plugin is an executable check script registered with the backend. The
// backend exposes plugins without numeric ids or ref tokens, so the bare
// name is the only identity a plugin ever has.
type Plugin struct {
	// Name is the plugin's file name, unique across the platform.
	Name string `json:"name" yaml:"name"`

	// EnvVars is the environment variable line passed to the script.
	EnvVars string `json:"envvars,omitempty" yaml:"envvars,omitempty"`

	// OriginID records where the plugin came from: 0 for built-in, 1 for
	// user uploaded.
	OriginID *wire.Uint `json:"origin_id,omitempty" yaml:"origin_id,omitempty"`

	// Read-only fields, decoded from API responses.

	Uncommitted *wire.Flag `json:"uncommitted,omitempty" yaml:"uncommitted,omitempty"`
}

// pluginOriginMax is the largest defined origin id.
const pluginOriginMax = 1

// UniqueName returns the plugin's name.
func (p *Plugin) UniqueName() string {
	return p.Name
}

// TypeName returns "Plugin".
func (p *Plugin) TypeName() string {
	return "Plugin"
}

// Validate checks the name, the environment line and the origin id.
func (p *Plugin) Validate() error {
	if p.Name == "" {
		return &errors.RequiredFieldError{Type: "Plugin", Field: "name"}
	}
	if _, err := validate.FreeText("Plugin", "envvars", p.EnvVars, 16000); err != nil {
		return err
	}
	if p.OriginID != nil && p.OriginID.Uint64() > pluginOriginMax {
		return &errors.RangeError{Field: "origin_id", Value: int64(p.OriginID.Uint64()), Min: 0, Max: pluginOriginMax}
	}
	return nil
}

// ID always reports unknown; the backend does not assign plugin ids.
func (p *Plugin) ID() (uint64, bool) {
	return 0, false
}

// RefToken always returns ""; the backend does not issue plugin ref tokens.
func (p *Plugin) RefToken() string {
	return ""
}

// ObjectName returns the configured name.
func (p *Plugin) ObjectName() string {
	return p.Name
}

// SetName stores a new name.
func (p *Plugin) SetName(name string) error {
	if name == "" {
		return &errors.RequiredFieldError{Type: "Plugin", Field: "name"}
	}
	p.Name = name
	return nil
}

// ClearReadonly zeroes the backend-owned fields.
func (p *Plugin) ClearReadonly() {
	p.Uncommitted = nil
}

// PluginBuilder assembles a Plugin.
type PluginBuilder struct {
	name     string
	nameSet  bool
	envVars  string
	originID *wire.Uint
}

// NewPluginBuilder returns an empty builder.
func NewPluginBuilder() *PluginBuilder {
	return &PluginBuilder{}
}

// Name sets the plugin's name.
func (b *PluginBuilder) Name(name string) *PluginBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// EnvVars sets the environment variable line. Validation happens in Build.
func (b *PluginBuilder) EnvVars(s string) *PluginBuilder {
	b.envVars = s
	return b
}

// BuiltIn marks the plugin as shipped with the platform.
func (b *PluginBuilder) BuiltIn() *PluginBuilder {
	b.originID = wire.NewUint(0)
	return b
}

// UserUploaded marks the plugin as uploaded by an operator.
func (b *PluginBuilder) UserUploaded() *PluginBuilder {
	b.originID = wire.NewUint(1)
	return b
}

// Build validates the builder state and constructs the Plugin.
func (b *PluginBuilder) Build() (*Plugin, error) {
	if !b.nameSet || b.name == "" {
		return nil, &errors.RequiredFieldError{Type: "Plugin", Field: "name"}
	}
	envVars, err := validate.FreeText("Plugin", "envvars", b.envVars, 16000)
	if err != nil {
		return nil, err
	}
	return &Plugin{
		Name:     b.name,
		EnvVars:  envVars,
		OriginID: b.originID,
	}, nil
}

// PluginMap is an insertion-ordered collection of plugins keyed by name.
type PluginMap = object.Map[Plugin, *Plugin]

// NewPluginMap returns an empty PluginMap.
func NewPluginMap() *PluginMap {
	return object.NewMap[Plugin, *Plugin]()
}

var (
	_ object.Persistent       = (*Plugin)(nil)
	_ object.Builder[*Plugin] = (*PluginBuilder)(nil)
)
