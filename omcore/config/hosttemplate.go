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

// HostTemplate bundles service checks and settings applied to hosts as a
// unit. Templates are identified by bare name.
type HostTemplate struct {
	// Name identifies the template.
	Name string `json:"name" yaml:"name"`

	// Description is free-form display text.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// HasIcon is the millisecond Unix timestamp of the icon upload, or
	// unset when the template has no custom icon.
	HasIcon *wire.Uint `json:"has_icon,omitempty" yaml:"has_icon,omitempty"`

	// Hosts are the hosts the template is applied to.
	Hosts *HostRefMap `json:"hosts,omitempty" yaml:"hosts,omitempty"`

	// Read-only fields, decoded from API responses.

	ObjectID    *wire.Uint `json:"id,omitempty" yaml:"id,omitempty"`
	Token       string     `json:"ref,omitempty" yaml:"ref,omitempty"`
	Uncommitted *wire.Flag `json:"uncommitted,omitempty" yaml:"uncommitted,omitempty"`
}

// UniqueName returns the template's name.
func (ht *HostTemplate) UniqueName() string {
	return ht.Name
}

// TypeName returns "HostTemplate".
func (ht *HostTemplate) TypeName() string {
	return "HostTemplate"
}

// Validate checks the name, description and icon timestamp.
func (ht *HostTemplate) Validate() error {
	if _, err := validate.HostTemplateName(ht.Name); err != nil {
		return err
	}
	if _, err := validate.Description("HostTemplate", ht.Description); err != nil {
		return err
	}
	if ht.HasIcon != nil {
		if err := validate.PastUnixTimestamp("has_icon", ht.HasIcon.Uint64()); err != nil {
			return err
		}
	}
	return nil
}

// Ref returns the reference projection.
func (ht *HostTemplate) Ref() *HostTemplateRef {
	return &HostTemplateRef{Name: ht.Name, Token: ht.Token}
}

// ID returns the backend's numeric id and whether it is known.
func (ht *HostTemplate) ID() (uint64, bool) {
	if ht.ObjectID == nil {
		return 0, false
	}
	return ht.ObjectID.Uint64(), true
}

// RefToken returns the backend's ref token, if known.
func (ht *HostTemplate) RefToken() string {
	return ht.Token
}

// ObjectName returns the configured name.
func (ht *HostTemplate) ObjectName() string {
	return ht.Name
}

// SetName validates and stores a new name.
func (ht *HostTemplate) SetName(name string) error {
	trimmed, err := validate.HostTemplateName(name)
	if err != nil {
		return err
	}
	ht.Name = trimmed
	return nil
}

// ClearReadonly zeroes the backend-owned fields.
func (ht *HostTemplate) ClearReadonly() {
	ht.ObjectID = nil
	ht.Token = ""
	ht.Uncommitted = nil
}

// HostTemplateRef is the lightweight reference to a HostTemplate.
type HostTemplateRef struct {
	Name  string `json:"name" yaml:"name"`
	Token string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// UniqueName returns the referenced template's name.
func (r *HostTemplateRef) UniqueName() string {
	return r.Name
}

// TypeName returns "HostTemplateRef".
func (r *HostTemplateRef) TypeName() string {
	return "HostTemplateRef"
}

// Validate requires a non-empty name.
func (r *HostTemplateRef) Validate() error {
	if r.Name == "" {
		return &errors.RequiredFieldError{Type: "HostTemplateRef", Field: "name"}
	}
	return nil
}

// HostTemplateBuilder assembles a HostTemplate.
type HostTemplateBuilder struct {
	name        string
	nameSet     bool
	description string
	hasIcon     *wire.Uint
	hosts       *HostRefMap
}

// NewHostTemplateBuilder returns an empty builder.
func NewHostTemplateBuilder() *HostTemplateBuilder {
	return &HostTemplateBuilder{}
}

// Name sets the template's name. Validation happens in Build.
func (b *HostTemplateBuilder) Name(name string) *HostTemplateBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// Description sets the display text. Validation happens in Build.
func (b *HostTemplateBuilder) Description(s string) *HostTemplateBuilder {
	b.description = s
	return b
}

// HasIcon sets the icon upload timestamp in millisecond Unix time. The
// timestamp must be in the past; Build enforces it.
func (b *HostTemplateBuilder) HasIcon(ts uint64) *HostTemplateBuilder {
	b.hasIcon = wire.NewUint(ts)
	return b
}

// Hosts sets the target hosts from a map of full hosts.
func (b *HostTemplateBuilder) Hosts(hosts *HostMap) *HostTemplateBuilder {
	b.hosts = HostRefs(hosts)
	return b
}

// Build validates the builder state and constructs the HostTemplate.
func (b *HostTemplateBuilder) Build() (*HostTemplate, error) {
	if !b.nameSet {
		return nil, &errors.RequiredFieldError{Type: "HostTemplate", Field: "name"}
	}
	name, err := validate.HostTemplateName(b.name)
	if err != nil {
		return nil, err
	}
	description, err := validate.Description("HostTemplate", b.description)
	if err != nil {
		return nil, err
	}
	if b.hasIcon != nil {
		if err := validate.PastUnixTimestamp("has_icon", b.hasIcon.Uint64()); err != nil {
			return nil, err
		}
	}
	return &HostTemplate{
		Name:        name,
		Description: description,
		HasIcon:     b.hasIcon,
		Hosts:       b.hosts,
	}, nil
}

// HostTemplateMap is an insertion-ordered collection of templates keyed by
// name.
type HostTemplateMap = object.Map[HostTemplate, *HostTemplate]

// HostTemplateRefMap is the reference counterpart of HostTemplateMap.
type HostTemplateRefMap = object.Map[HostTemplateRef, *HostTemplateRef]

// NewHostTemplateMap returns an empty HostTemplateMap.
func NewHostTemplateMap() *HostTemplateMap {
	return object.NewMap[HostTemplate, *HostTemplate]()
}

// NewHostTemplateRefMap returns an empty HostTemplateRefMap.
func NewHostTemplateRefMap() *HostTemplateRefMap {
	return object.NewMap[HostTemplateRef, *HostTemplateRef]()
}

// HostTemplateRefs converts a map of full templates to their references,
// preserving order.
func HostTemplateRefs(m *HostTemplateMap) *HostTemplateRefMap {
	return object.RefMapFrom[HostTemplate, HostTemplateRef](m)
}

var (
	_ object.Referable[*HostTemplateRef] = (*HostTemplate)(nil)
	_ object.Persistent                  = (*HostTemplate)(nil)
	_ object.Object                      = (*HostTemplateRef)(nil)
	_ object.Builder[*HostTemplate]      = (*HostTemplateBuilder)(nil)
)
