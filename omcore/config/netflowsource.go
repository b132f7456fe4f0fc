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
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
	"github.com/opsmith-io/opsmith-go/omcore/object"
	"github.com/opsmith-io/opsmith-go/omcore/validate"
	"github.com/opsmith-io/opsmith-go/omcore/wire"
)

// FlowType is the flow protocol a NetflowSource speaks.
type FlowType uint8

const (
	// FlowTypeUnset is the zero value. Flow type is required, so it is not
	// a valid wire value.
	FlowTypeUnset FlowType = iota

	FlowTypeNetflow
	FlowTypeSflow
)

var flowTypeNames = [...]string{
	FlowTypeNetflow: "netflow",
	FlowTypeSflow:   "sflow",
}

// ParseFlowType parses a wire name, case-insensitively after trimming.
func ParseFlowType(s string) (FlowType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for value, name := range flowTypeNames {
		if name != "" && name == normalized {
			return FlowType(value), nil
		}
	}
	return FlowTypeUnset, &errors.ParseError{Type: "FlowType", Value: s}
}

// String returns the wire name.
func (ft FlowType) String() string {
	if int(ft) < len(flowTypeNames) && flowTypeNames[ft] != "" {
		return flowTypeNames[ft]
	}
	return "FlowType(" + strconv.Itoa(int(ft)) + ")"
}

// TypeName returns "FlowType".
func (ft FlowType) TypeName() string {
	return "FlowType"
}

// Validate rejects the zero value and out-of-range values.
func (ft FlowType) Validate() error {
	if ft == FlowTypeUnset || int(ft) >= len(flowTypeNames) {
		return &errors.MarshalError{Type: "FlowType", Value: int(ft)}
	}
	return nil
}

// MarshalJSON emits the wire name.
func (ft FlowType) MarshalJSON() ([]byte, error) {
	if err := ft.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(ft.String())
}

// UnmarshalJSON decodes a wire name.
func (ft *FlowType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "FlowType", Data: data, Reason: "not a string"}
	}
	parsed, err := ParseFlowType(s)
	if err != nil {
		return err
	}
	*ft = parsed
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (ft FlowType) MarshalYAML() (interface{}, error) {
	if err := ft.Validate(); err != nil {
		return nil, err
	}
	return ft.String(), nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (ft *FlowType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "FlowType", Data: []byte(node.Value), Reason: "not a scalar"}
	}
	parsed, err := ParseFlowType(s)
	if err != nil {
		return err
	}
	*ft = parsed
	return nil
}

// NetflowSource is a device exporting flow records to a collector. Sources
// have no name of their own; the identity key is the "<ip>-<flowtype>"
// compound, since one device may export both protocols.
type NetflowSource struct {
	// FlowType is the flow protocol. Required.
	FlowType FlowType `json:"flowtype" yaml:"flowtype"`

	// IP is the source's IPv4 address. Required.
	IP string `json:"ip" yaml:"ip"`

	// Active enables collection from this source.
	Active *wire.Flag `json:"active,omitempty" yaml:"active,omitempty"`

	// CollectorID is the numeric id of the receiving collector.
	CollectorID *wire.Uint `json:"collector_id,omitempty" yaml:"collector_id,omitempty"`

	// HostID is the numeric id of the matching monitored host.
	HostID *wire.Uint `json:"host_id,omitempty" yaml:"host_id,omitempty"`

	// IPOverride keeps the configured address when the exporter reports a
	// different one.
	IPOverride *wire.Flag `json:"ip_override,omitempty" yaml:"ip_override,omitempty"`

	// Port is the UDP port the source exports to.
	Port *wire.Uint `json:"port,omitempty" yaml:"port,omitempty"`

	// Read-only fields, decoded from API responses.

	ObjectID    *wire.Uint `json:"id,omitempty" yaml:"id,omitempty"`
	Token       string     `json:"ref,omitempty" yaml:"ref,omitempty"`
	Uncommitted *wire.Flag `json:"uncommitted,omitempty" yaml:"uncommitted,omitempty"`
}

// UniqueName returns the "<ip>-<flowtype>" compound key.
func (ns *NetflowSource) UniqueName() string {
	return ns.IP + "-" + ns.FlowType.String()
}

// TypeName returns "NetflowSource".
func (ns *NetflowSource) TypeName() string {
	return "NetflowSource"
}

// Validate checks the flow type, the address and the port.
func (ns *NetflowSource) Validate() error {
	if err := ns.FlowType.Validate(); err != nil {
		return err
	}
	if _, err := validate.IPv4("NetflowSource", ns.IP); err != nil {
		return err
	}
	if ns.Port != nil {
		if err := validate.Port(ns.Port.Uint64()); err != nil {
			return err
		}
	}
	return nil
}

// ID returns the backend's numeric id and whether it is known.
func (ns *NetflowSource) ID() (uint64, bool) {
	if ns.ObjectID == nil {
		return 0, false
	}
	return ns.ObjectID.Uint64(), true
}

// RefToken returns the backend's ref token, if known.
func (ns *NetflowSource) RefToken() string {
	return ns.Token
}

// ObjectName returns the source's address, the closest thing it has to a
// name.
func (ns *NetflowSource) ObjectName() string {
	return ns.IP
}

// SetName validates and stores a new address.
func (ns *NetflowSource) SetName(name string) error {
	ip, err := validate.IPv4("NetflowSource", name)
	if err != nil {
		return err
	}
	ns.IP = ip
	return nil
}

// ClearReadonly zeroes the backend-owned fields.
func (ns *NetflowSource) ClearReadonly() {
	ns.ObjectID = nil
	ns.Token = ""
	ns.Uncommitted = nil
}

// Ref returns the reference projection.
func (ns *NetflowSource) Ref() *NetflowSourceRef {
	return &NetflowSourceRef{IP: ns.IP, FlowType: ns.FlowType, Token: ns.Token}
}

// NetflowSourceRef is the lightweight reference to a NetflowSource. It keys
// on the same "<ip>-<flowtype>" compound as the full source.
type NetflowSourceRef struct {
	IP       string   `json:"ip" yaml:"ip"`
	FlowType FlowType `json:"flowtype" yaml:"flowtype"`
	Token    string   `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// UniqueName returns the "<ip>-<flowtype>" compound key.
func (r *NetflowSourceRef) UniqueName() string {
	return r.IP + "-" + r.FlowType.String()
}

// TypeName returns "NetflowSourceRef".
func (r *NetflowSourceRef) TypeName() string {
	return "NetflowSourceRef"
}

// Validate requires an address and a flow type.
func (r *NetflowSourceRef) Validate() error {
	if r.IP == "" {
		return &errors.RequiredFieldError{Type: "NetflowSourceRef", Field: "ip"}
	}
	return r.FlowType.Validate()
}

// NetflowSourceBuilder assembles a NetflowSource. The address must be an
// IPv4 literal; exporters are matched by address, so hostnames are not
// accepted here.
type NetflowSourceBuilder struct {
	flowType    FlowType
	ip          string
	ipSet       bool
	active      *wire.Flag
	collectorID *wire.Uint
	hostID      *wire.Uint
	ipOverride  *wire.Flag
	port        *wire.Uint
}

// NewNetflowSourceBuilder returns an empty builder.
func NewNetflowSourceBuilder() *NetflowSourceBuilder {
	return &NetflowSourceBuilder{}
}

// FlowType sets the flow protocol.
func (b *NetflowSourceBuilder) FlowType(ft FlowType) *NetflowSourceBuilder {
	b.flowType = ft
	return b
}

// IP sets the source address. Validation happens in Build.
func (b *NetflowSourceBuilder) IP(ip string) *NetflowSourceBuilder {
	b.ip = ip
	b.ipSet = true
	return b
}

// Active enables collection from this source.
func (b *NetflowSourceBuilder) Active(v bool) *NetflowSourceBuilder {
	b.active = wire.NewFlag(v)
	return b
}

// CollectorID sets the receiving collector's id.
func (b *NetflowSourceBuilder) CollectorID(id uint64) *NetflowSourceBuilder {
	b.collectorID = wire.NewUint(id)
	return b
}

// HostID sets the matching monitored host's id.
func (b *NetflowSourceBuilder) HostID(id uint64) *NetflowSourceBuilder {
	b.hostID = wire.NewUint(id)
	return b
}

// IPOverride keeps the configured address over the exporter's reported one.
func (b *NetflowSourceBuilder) IPOverride(v bool) *NetflowSourceBuilder {
	b.ipOverride = wire.NewFlag(v)
	return b
}

// Port sets the UDP export port. Validation happens in Build.
func (b *NetflowSourceBuilder) Port(port uint64) *NetflowSourceBuilder {
	b.port = wire.NewUint(port)
	return b
}

// Build validates the builder state and constructs the NetflowSource.
func (b *NetflowSourceBuilder) Build() (*NetflowSource, error) {
	if err := b.flowType.Validate(); err != nil {
		return nil, &errors.RequiredFieldError{Type: "NetflowSource", Field: "flowtype"}
	}
	if !b.ipSet {
		return nil, &errors.RequiredFieldError{Type: "NetflowSource", Field: "ip"}
	}
	ip, err := validate.IPv4("NetflowSource", b.ip)
	if err != nil {
		return nil, err
	}
	if b.port != nil {
		if err := validate.Port(b.port.Uint64()); err != nil {
			return nil, err
		}
	}
	return &NetflowSource{
		FlowType:    b.flowType,
		IP:          ip,
		Active:      b.active,
		CollectorID: b.collectorID,
		HostID:      b.hostID,
		IPOverride:  b.ipOverride,
		Port:        b.port,
	}, nil
}

// NetflowSourceMap is an insertion-ordered collection of sources keyed by
// "<ip>-<flowtype>".
type NetflowSourceMap = object.Map[NetflowSource, *NetflowSource]

// NetflowSourceRefMap is the reference counterpart of NetflowSourceMap.
type NetflowSourceRefMap = object.Map[NetflowSourceRef, *NetflowSourceRef]

// NewNetflowSourceMap returns an empty NetflowSourceMap.
func NewNetflowSourceMap() *NetflowSourceMap {
	return object.NewMap[NetflowSource, *NetflowSource]()
}

// NewNetflowSourceRefMap returns an empty NetflowSourceRefMap.
func NewNetflowSourceRefMap() *NetflowSourceRefMap {
	return object.NewMap[NetflowSourceRef, *NetflowSourceRef]()
}

// NetflowSourceRefs converts a map of full sources to their references,
// preserving order.
func NetflowSourceRefs(m *NetflowSourceMap) *NetflowSourceRefMap {
	return object.RefMapFrom[NetflowSource, NetflowSourceRef](m)
}

var (
	_ object.Referable[*NetflowSourceRef] = (*NetflowSource)(nil)
	_ object.Persistent                   = (*NetflowSource)(nil)
	_ object.Object                       = (*NetflowSourceRef)(nil)
	_ object.Builder[*NetflowSource]      = (*NetflowSourceBuilder)(nil)
)
