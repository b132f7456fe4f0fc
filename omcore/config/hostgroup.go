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
	"strings"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
	"github.com/opsmith-io/opsmith-go/omcore/object"
	"github.com/opsmith-io/opsmith-go/omcore/validate"
	"github.com/opsmith-io/opsmith-go/omcore/wire"
)

// HostGroup is a node in the backend's host group tree.
//
// Host group names are only unique among siblings, so the identity key is
// the materialized path: the slash-joined chain of names from the root. The
// backend computes it server-side and returns it as the read-only "matpath"
// field; for groups built locally the key is derived from the parent
// reference, so a freshly built group collates correctly before it has ever
// been submitted.
type HostGroup struct {
	// Name is the group's display name, unique among its siblings.
	Name string `json:"name" yaml:"name"`

	// Children are the group's direct subgroups.
	Children *HostGroupRefMap `json:"children,omitempty" yaml:"children,omitempty"`

	// Hosts are the hosts directly in this group.
	Hosts *HostRefMap `json:"hosts,omitempty" yaml:"hosts,omitempty"`

	// Parent references the containing group, nil for the root.
	Parent *HostGroupRef `json:"parent,omitempty" yaml:"parent,omitempty"`

	// Read-only fields, decoded from API responses.

	// ObjectID is the backend's numeric id.
	ObjectID *wire.Uint `json:"id,omitempty" yaml:"id,omitempty"`

	// IsLeaf reports whether the group has no subgroups.
	IsLeaf *wire.Flag `json:"is_leaf,omitempty" yaml:"is_leaf,omitempty"`

	// MatPath is the server-computed materialized path.
	MatPath string `json:"matpath,omitempty" yaml:"matpath,omitempty"`

	// Token is the backend's ref token.
	Token string `json:"ref,omitempty" yaml:"ref,omitempty"`

	// Uncommitted marks a pending, not yet applied change.
	Uncommitted *wire.Flag `json:"uncommitted,omitempty" yaml:"uncommitted,omitempty"`
}

// UniqueName returns the group's identity key: the materialized path when
// the backend provided one, otherwise a path derived from the parent chain
// ("/<parent path>/<name>"), otherwise the bare name.
func (hg *HostGroup) UniqueName() string {
	if hg.MatPath != "" {
		return hg.MatPath
	}
	if hg.Parent != nil {
		return joinGroupPath(hg.Parent.UniqueName(), hg.Name)
	}
	return hg.Name
}

// joinGroupPath appends a child name to a parent key, rooting the parent
// first when it is a bare name.
func joinGroupPath(parent, child string) string {
	if !strings.HasPrefix(parent, "/") {
		parent = "/" + parent
	}
	return parent + "/" + child
}

// TypeName returns "HostGroup".
func (hg *HostGroup) TypeName() string {
	return "HostGroup"
}

// Validate checks the group's name against the host group name rule.
func (hg *HostGroup) Validate() error {
	_, err := validate.HostGroupName(hg.Name)
	return err
}

// Ref returns the reference projection. The derived identity key travels
// with the reference so a ref taken from an unsubmitted group collates the
// same way the full group does.
func (hg *HostGroup) Ref() *HostGroupRef {
	ref := &HostGroupRef{Name: hg.Name, MatPath: hg.MatPath, Token: hg.Token}
	if ref.MatPath == "" {
		if key := hg.UniqueName(); key != hg.Name {
			ref.MatPath = key
		}
	}
	return ref
}

// ID returns the backend's numeric id and whether it is known.
func (hg *HostGroup) ID() (uint64, bool) {
	if hg.ObjectID == nil {
		return 0, false
	}
	return hg.ObjectID.Uint64(), true
}

// RefToken returns the backend's ref token, if known.
func (hg *HostGroup) RefToken() string {
	return hg.Token
}

// ObjectName returns the configured name.
func (hg *HostGroup) ObjectName() string {
	return hg.Name
}

// SetName validates and stores a new name.
func (hg *HostGroup) SetName(name string) error {
	trimmed, err := validate.HostGroupName(name)
	if err != nil {
		return err
	}
	hg.Name = trimmed
	return nil
}

// ClearReadonly zeroes the backend-owned fields, including the derived
// matpath and leaf flag.
func (hg *HostGroup) ClearReadonly() {
	hg.ObjectID = nil
	hg.IsLeaf = nil
	hg.MatPath = ""
	hg.Token = ""
	hg.Uncommitted = nil
}

// HostGroupRef is the lightweight reference to a HostGroup.
type HostGroupRef struct {
	// Name is the referenced group's display name.
	Name string `json:"name" yaml:"name"`

	// MatPath is the referenced group's materialized path, when known.
	MatPath string `json:"matpath,omitempty" yaml:"matpath,omitempty"`

	// Token is the backend's ref token, when known.
	Token string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// UniqueName returns the materialized path when known, else the bare name.
func (r *HostGroupRef) UniqueName() string {
	if r.MatPath != "" {
		return r.MatPath
	}
	return r.Name
}

// TypeName returns "HostGroupRef".
func (r *HostGroupRef) TypeName() string {
	return "HostGroupRef"
}

// Validate requires a non-empty name. References repeat whatever the
// backend sent, so the full name rule is not re-applied here.
func (r *HostGroupRef) Validate() error {
	if r.Name == "" {
		return &errors.RequiredFieldError{Type: "HostGroupRef", Field: "name"}
	}
	return nil
}

// HostGroupBuilder assembles a HostGroup. The zero value is ready for use.
type HostGroupBuilder struct {
	name     string
	nameSet  bool
	children *HostGroupRefMap
	hosts    *HostRefMap
	parent   *HostGroupRef
}

// NewHostGroupBuilder returns an empty builder.
func NewHostGroupBuilder() *HostGroupBuilder {
	return &HostGroupBuilder{}
}

// Name sets the group's name. Validation happens in Build.
func (b *HostGroupBuilder) Name(name string) *HostGroupBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// Children sets the subgroup references from a map of full groups.
func (b *HostGroupBuilder) Children(children *HostGroupMap) *HostGroupBuilder {
	b.children = HostGroupRefs(children)
	return b
}

// Hosts sets the member host references from a map of full hosts.
func (b *HostGroupBuilder) Hosts(hosts *HostMap) *HostGroupBuilder {
	b.hosts = HostRefs(hosts)
	return b
}

// Parent sets the containing group.
func (b *HostGroupBuilder) Parent(parent *HostGroup) *HostGroupBuilder {
	b.parent = parent.Ref()
	return b
}

// Build validates the builder state and constructs the HostGroup with its
// read-only fields cleared.
func (b *HostGroupBuilder) Build() (*HostGroup, error) {
	if !b.nameSet {
		return nil, &errors.RequiredFieldError{Type: "HostGroup", Field: "name"}
	}
	name, err := validate.HostGroupName(b.name)
	if err != nil {
		return nil, err
	}
	return &HostGroup{
		Name:     name,
		Children: b.children,
		Hosts:    b.hosts,
		Parent:   b.parent,
	}, nil
}

// HostGroupMap is an insertion-ordered collection of host groups keyed by
// materialized path.
type HostGroupMap = object.Map[HostGroup, *HostGroup]

// HostGroupRefMap is the reference counterpart of HostGroupMap.
type HostGroupRefMap = object.Map[HostGroupRef, *HostGroupRef]

// NewHostGroupMap returns an empty HostGroupMap.
func NewHostGroupMap() *HostGroupMap {
	return object.NewMap[HostGroup, *HostGroup]()
}

// NewHostGroupRefMap returns an empty HostGroupRefMap.
func NewHostGroupRefMap() *HostGroupRefMap {
	return object.NewMap[HostGroupRef, *HostGroupRef]()
}

// HostGroupRefs converts a map of full host groups to their references,
// preserving order.
func HostGroupRefs(m *HostGroupMap) *HostGroupRefMap {
	return object.RefMapFrom[HostGroup, HostGroupRef](m)
}

var (
	_ object.Referable[*HostGroupRef] = (*HostGroup)(nil)
	_ object.Persistent               = (*HostGroup)(nil)
	_ object.Object                   = (*HostGroupRef)(nil)
	_ object.Builder[*HostGroup]      = (*HostGroupBuilder)(nil)
)
