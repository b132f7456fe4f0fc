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

// MonitoringCluster is a group of collectors that runs checks for the hosts
// assigned to it. Clusters are identified by bare name.
type MonitoringCluster struct {
	// Name identifies the cluster.
	Name string `json:"name" yaml:"name"`

	// Activated enables the cluster.
	Activated *wire.Flag `json:"activated,omitempty" yaml:"activated,omitempty"`

	// ActiveHostChecksEnabled allows the cluster to actively check hosts.
	ActiveHostChecksEnabled *wire.Flag `json:"active_host_checks_enabled,omitempty" yaml:"active_host_checks_enabled,omitempty"`

	// ActiveServiceChecksEnabled allows the cluster to actively run service
	// checks.
	ActiveServiceChecksEnabled *wire.Flag `json:"active_service_checks_enabled,omitempty" yaml:"active_service_checks_enabled,omitempty"`

	// EventHandlersEnabled allows event handlers to fire on this cluster.
	EventHandlersEnabled *wire.Flag `json:"event_handlers_enabled,omitempty" yaml:"event_handlers_enabled,omitempty"`

	// Passive marks a cluster that only accepts submitted results.
	Passive *wire.Flag `json:"passive,omitempty" yaml:"passive,omitempty"`

	// NetworkTopologyEnabled turns on topology discovery.
	NetworkTopologyEnabled *wire.Flag `json:"network_topology_enabled,omitempty" yaml:"network_topology_enabled,omitempty"`

	// RemotelyManaged marks a cluster managed by the vendor's cloud.
	RemotelyManaged *wire.Flag `json:"remotely_managed,omitempty" yaml:"remotely_managed,omitempty"`

	// CloudOpsOwned marks the vendor-operated cluster in SaaS deployments.
	CloudOpsOwned *wire.Flag `json:"cloudops_owned,omitempty" yaml:"cloudops_owned,omitempty"`

	// Read-only fields, decoded from API responses.

	// Monitors lists the hosts this cluster currently monitors.
	Monitors *HostRefMap `json:"monitors,omitempty" yaml:"monitors,omitempty"`

	ObjectID    *wire.Uint `json:"id,omitempty" yaml:"id,omitempty"`
	Token       string     `json:"ref,omitempty" yaml:"ref,omitempty"`
	Uncommitted *wire.Flag `json:"uncommitted,omitempty" yaml:"uncommitted,omitempty"`
}

// UniqueName returns the cluster's name.
func (mc *MonitoringCluster) UniqueName() string {
	return mc.Name
}

// TypeName returns "MonitoringCluster".
func (mc *MonitoringCluster) TypeName() string {
	return "MonitoringCluster"
}

// Validate checks the cluster's name.
func (mc *MonitoringCluster) Validate() error {
	_, err := validate.MonitoringClusterName(mc.Name)
	return err
}

// Ref returns the reference projection.
func (mc *MonitoringCluster) Ref() *MonitoringClusterRef {
	return &MonitoringClusterRef{Name: mc.Name, Token: mc.Token}
}

// ID returns the backend's numeric id and whether it is known.
func (mc *MonitoringCluster) ID() (uint64, bool) {
	if mc.ObjectID == nil {
		return 0, false
	}
	return mc.ObjectID.Uint64(), true
}

// RefToken returns the backend's ref token, if known.
func (mc *MonitoringCluster) RefToken() string {
	return mc.Token
}

// ObjectName returns the configured name.
func (mc *MonitoringCluster) ObjectName() string {
	return mc.Name
}

// SetName validates and stores a new name.
func (mc *MonitoringCluster) SetName(name string) error {
	trimmed, err := validate.MonitoringClusterName(name)
	if err != nil {
		return err
	}
	mc.Name = trimmed
	return nil
}

// ClearReadonly zeroes the backend-owned fields, including the monitored
// host list.
func (mc *MonitoringCluster) ClearReadonly() {
	mc.Monitors = nil
	mc.ObjectID = nil
	mc.Token = ""
	mc.Uncommitted = nil
}

// MonitoringClusterRef is the lightweight reference to a MonitoringCluster.
type MonitoringClusterRef struct {
	Name  string `json:"name" yaml:"name"`
	Token string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// UniqueName returns the referenced cluster's name.
func (r *MonitoringClusterRef) UniqueName() string {
	return r.Name
}

// TypeName returns "MonitoringClusterRef".
func (r *MonitoringClusterRef) TypeName() string {
	return "MonitoringClusterRef"
}

// Validate requires a non-empty name.
func (r *MonitoringClusterRef) Validate() error {
	if r.Name == "" {
		return &errors.RequiredFieldError{Type: "MonitoringClusterRef", Field: "name"}
	}
	return nil
}

// MonitoringClusterBuilder assembles a MonitoringCluster.
type MonitoringClusterBuilder struct {
	name    string
	nameSet bool

	activated                  *wire.Flag
	activeHostChecksEnabled    *wire.Flag
	activeServiceChecksEnabled *wire.Flag
	eventHandlersEnabled       *wire.Flag
	passive                    *wire.Flag
	networkTopologyEnabled     *wire.Flag
	remotelyManaged            *wire.Flag
}

// NewMonitoringClusterBuilder returns an empty builder.
func NewMonitoringClusterBuilder() *MonitoringClusterBuilder {
	return &MonitoringClusterBuilder{}
}

// Name sets the cluster's name. Validation happens in Build.
func (b *MonitoringClusterBuilder) Name(name string) *MonitoringClusterBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// Activated enables the cluster.
func (b *MonitoringClusterBuilder) Activated(v bool) *MonitoringClusterBuilder {
	b.activated = wire.NewFlag(v)
	return b
}

// ActiveHostChecksEnabled allows active host checks.
func (b *MonitoringClusterBuilder) ActiveHostChecksEnabled(v bool) *MonitoringClusterBuilder {
	b.activeHostChecksEnabled = wire.NewFlag(v)
	return b
}

// ActiveServiceChecksEnabled allows active service checks.
func (b *MonitoringClusterBuilder) ActiveServiceChecksEnabled(v bool) *MonitoringClusterBuilder {
	b.activeServiceChecksEnabled = wire.NewFlag(v)
	return b
}

// EventHandlersEnabled allows event handlers to fire.
func (b *MonitoringClusterBuilder) EventHandlersEnabled(v bool) *MonitoringClusterBuilder {
	b.eventHandlersEnabled = wire.NewFlag(v)
	return b
}

// Passive marks a results-only cluster.
func (b *MonitoringClusterBuilder) Passive(v bool) *MonitoringClusterBuilder {
	b.passive = wire.NewFlag(v)
	return b
}

// NetworkTopologyEnabled turns on topology discovery.
func (b *MonitoringClusterBuilder) NetworkTopologyEnabled(v bool) *MonitoringClusterBuilder {
	b.networkTopologyEnabled = wire.NewFlag(v)
	return b
}

// RemotelyManaged marks a vendor-cloud-managed cluster.
func (b *MonitoringClusterBuilder) RemotelyManaged(v bool) *MonitoringClusterBuilder {
	b.remotelyManaged = wire.NewFlag(v)
	return b
}

// Build validates the builder state and constructs the MonitoringCluster.
func (b *MonitoringClusterBuilder) Build() (*MonitoringCluster, error) {
	if !b.nameSet {
		return nil, &errors.RequiredFieldError{Type: "MonitoringCluster", Field: "name"}
	}
	name, err := validate.MonitoringClusterName(b.name)
	if err != nil {
		return nil, err
	}
	return &MonitoringCluster{
		Name:                       name,
		Activated:                  b.activated,
		ActiveHostChecksEnabled:    b.activeHostChecksEnabled,
		ActiveServiceChecksEnabled: b.activeServiceChecksEnabled,
		EventHandlersEnabled:       b.eventHandlersEnabled,
		Passive:                    b.passive,
		NetworkTopologyEnabled:     b.networkTopologyEnabled,
		RemotelyManaged:            b.remotelyManaged,
	}, nil
}

// MonitoringClusterMap is an insertion-ordered collection of clusters keyed
// by name.
type MonitoringClusterMap = object.Map[MonitoringCluster, *MonitoringCluster]

// MonitoringClusterRefMap is the reference counterpart of
// MonitoringClusterMap.
type MonitoringClusterRefMap = object.Map[MonitoringClusterRef, *MonitoringClusterRef]

// NewMonitoringClusterMap returns an empty MonitoringClusterMap.
func NewMonitoringClusterMap() *MonitoringClusterMap {
	return object.NewMap[MonitoringCluster, *MonitoringCluster]()
}

// NewMonitoringClusterRefMap returns an empty MonitoringClusterRefMap.
func NewMonitoringClusterRefMap() *MonitoringClusterRefMap {
	return object.NewMap[MonitoringClusterRef, *MonitoringClusterRef]()
}

// MonitoringClusterRefs converts a map of full clusters to their references,
// preserving order.
func MonitoringClusterRefs(m *MonitoringClusterMap) *MonitoringClusterRefMap {
	return object.RefMapFrom[MonitoringCluster, MonitoringClusterRef](m)
}

var (
	_ object.Referable[*MonitoringClusterRef] = (*MonitoringCluster)(nil)
	_ object.Persistent                       = (*MonitoringCluster)(nil)
	_ object.Object                           = (*MonitoringClusterRef)(nil)
	_ object.Builder[*MonitoringCluster]      = (*MonitoringClusterBuilder)(nil)
)
