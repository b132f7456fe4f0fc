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
	"strconv"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
	"github.com/opsmith-io/opsmith-go/omcore/object"
	"github.com/opsmith-io/opsmith-go/omcore/validate"
	"github.com/opsmith-io/opsmith-go/omcore/wire"
)

// BSMService is a business service: a rollup of components whose state
// summarizes a business function.
//
// BSM service names are not unique on the backend, so the identity key
// prefers backend-assigned identifiers: "<name>-<id>" when the numeric id is
// known, then the ref token, then the bare name as a last resort. Two
// unsaved services with the same name therefore collide in a map, which
// mirrors the backend's behavior of not distinguishing them until they are
// persisted.
type BSMService struct {
	// Name is the service's display name. Not unique.
	Name string `json:"name" yaml:"name"`

	// MonitoringCluster names the cluster that evaluates the rollup.
	MonitoringCluster *MonitoringClusterRef `json:"monitoring_cluster,omitempty" yaml:"monitoring_cluster,omitempty"`

	// Read-only fields, decoded from API responses.

	ObjectID    *wire.Uint `json:"id,omitempty" yaml:"id,omitempty"`
	Token       string     `json:"ref,omitempty" yaml:"ref,omitempty"`
	Uncommitted *wire.Flag `json:"uncommitted,omitempty" yaml:"uncommitted,omitempty"`
}

// UniqueName returns "<name>-<id>" when the id is known, else the ref token,
// else the bare name.
func (s *BSMService) UniqueName() string {
	if s.ObjectID != nil {
		return s.Name + "-" + strconv.FormatUint(s.ObjectID.Uint64(), 10)
	}
	if s.Token != "" {
		return s.Token
	}
	return s.Name
}

// TypeName returns "BSMService".
func (s *BSMService) TypeName() string {
	return "BSMService"
}

// Validate checks the service's name.
func (s *BSMService) Validate() error {
	_, err := validate.BSMServiceName(s.Name)
	return err
}

// Ref returns the reference projection.
func (s *BSMService) Ref() *BSMServiceRef {
	return &BSMServiceRef{Name: s.Name, Token: s.Token}
}

// ID returns the backend's numeric id and whether it is known.
func (s *BSMService) ID() (uint64, bool) {
	if s.ObjectID == nil {
		return 0, false
	}
	return s.ObjectID.Uint64(), true
}

// RefToken returns the backend's ref token, if known.
func (s *BSMService) RefToken() string {
	return s.Token
}

// ObjectName returns the configured name.
func (s *BSMService) ObjectName() string {
	return s.Name
}

// SetName validates and stores a new name.
func (s *BSMService) SetName(name string) error {
	trimmed, err := validate.BSMServiceName(name)
	if err != nil {
		return err
	}
	s.Name = trimmed
	return nil
}

// ClearReadonly zeroes the backend-owned fields. Note this also changes the
// identity key, since the key prefers the backend identifiers.
func (s *BSMService) ClearReadonly() {
	s.ObjectID = nil
	s.Token = ""
	s.Uncommitted = nil
}

// BSMServiceRef is the lightweight reference to a BSMService. Like the full
// service it keys on the ref token when known, since names are not unique.
type BSMServiceRef struct {
	Name  string `json:"name" yaml:"name"`
	Token string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// UniqueName returns the ref token when known, else the name.
func (r *BSMServiceRef) UniqueName() string {
	if r.Token != "" {
		return r.Token
	}
	return r.Name
}

// TypeName returns "BSMServiceRef".
func (r *BSMServiceRef) TypeName() string {
	return "BSMServiceRef"
}

// Validate requires a non-empty name.
func (r *BSMServiceRef) Validate() error {
	if r.Name == "" {
		return &errors.RequiredFieldError{Type: "BSMServiceRef", Field: "name"}
	}
	return nil
}

// BSMServiceBuilder assembles a BSMService.
type BSMServiceBuilder struct {
	name              string
	nameSet           bool
	monitoringCluster *MonitoringClusterRef
}

// NewBSMServiceBuilder returns an empty builder.
func NewBSMServiceBuilder() *BSMServiceBuilder {
	return &BSMServiceBuilder{}
}

// Name sets the service's name. Validation happens in Build.
func (b *BSMServiceBuilder) Name(name string) *BSMServiceBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// MonitoringCluster sets the evaluating cluster.
func (b *BSMServiceBuilder) MonitoringCluster(mc *MonitoringCluster) *BSMServiceBuilder {
	b.monitoringCluster = mc.Ref()
	return b
}

// Build validates the builder state and constructs the BSMService.
func (b *BSMServiceBuilder) Build() (*BSMService, error) {
	if !b.nameSet {
		return nil, &errors.RequiredFieldError{Type: "BSMService", Field: "name"}
	}
	name, err := validate.BSMServiceName(b.name)
	if err != nil {
		return nil, err
	}
	return &BSMService{
		Name:              name,
		MonitoringCluster: b.monitoringCluster,
	}, nil
}

// BSMServiceMap is an insertion-ordered collection of business services.
type BSMServiceMap = object.Map[BSMService, *BSMService]

// BSMServiceRefMap is the reference counterpart of BSMServiceMap.
type BSMServiceRefMap = object.Map[BSMServiceRef, *BSMServiceRef]

// NewBSMServiceMap returns an empty BSMServiceMap.
func NewBSMServiceMap() *BSMServiceMap {
	return object.NewMap[BSMService, *BSMService]()
}

// NewBSMServiceRefMap returns an empty BSMServiceRefMap.
func NewBSMServiceRefMap() *BSMServiceRefMap {
	return object.NewMap[BSMServiceRef, *BSMServiceRef]()
}

// BSMServiceRefs converts a map of full services to their references,
// preserving order.
func BSMServiceRefs(m *BSMServiceMap) *BSMServiceRefMap {
	return object.RefMapFrom[BSMService, BSMServiceRef](m)
}

var (
	_ object.Referable[*BSMServiceRef] = (*BSMService)(nil)
	_ object.Persistent                = (*BSMService)(nil)
	_ object.Object                    = (*BSMServiceRef)(nil)
	_ object.Builder[*BSMService]      = (*BSMServiceBuilder)(nil)
)
