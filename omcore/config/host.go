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

// Host is a monitored host. Hosts are identified by bare name, which the
// backend keeps unique across the platform.
type Host struct {
	// Name identifies the host.
	Name string `json:"name" yaml:"name"`

	// IP is the primary address: an IP literal or a resolvable hostname.
	IP string `json:"ip,omitempty" yaml:"ip,omitempty"`

	// Alias is free-form display text.
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`

	// OtherAddresses lists additional addresses, comma separated.
	OtherAddresses string `json:"other_addresses,omitempty" yaml:"other_addresses,omitempty"`

	// HostGroup places the host in the group tree.
	HostGroup *HostGroupRef `json:"hostgroup,omitempty" yaml:"hostgroup,omitempty"`

	// MonitoredBy names the cluster that runs this host's checks.
	MonitoredBy *MonitoringClusterRef `json:"monitored_by,omitempty" yaml:"monitored_by,omitempty"`

	// CheckCommand names the command that decides host up/down state.
	CheckCommand *CheckCommandRef `json:"check_command,omitempty" yaml:"check_command,omitempty"`

	// CheckAttempts is the retry count before a hard state.
	CheckAttempts *wire.Uint `json:"check_attempts,omitempty" yaml:"check_attempts,omitempty"`

	// CheckInterval is the seconds between scheduled checks.
	CheckInterval *wire.Uint `json:"check_interval,omitempty" yaml:"check_interval,omitempty"`

	// NotificationOptions is the comma-separated set of host states that
	// notify: d (down), u (unreachable), r (recovery), f (flapping).
	NotificationOptions string `json:"notification_options,omitempty" yaml:"notification_options,omitempty"`

	// Hashtags tag the host for grouped display. The wire name is
	// "keywords", the backend's older term.
	Hashtags *HashtagRefMap `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// EnableSNMP turns on SNMP polling for the host.
	EnableSNMP *wire.Flag `json:"enable_snmp,omitempty" yaml:"enable_snmp,omitempty"`

	// SNMPVersion selects the SNMP protocol version.
	SNMPVersion SNMPVersion `json:"snmp_version,omitempty" yaml:"snmp_version,omitempty"`

	// SNMPPort is the agent's UDP port.
	SNMPPort *wire.Uint `json:"snmp_port,omitempty" yaml:"snmp_port,omitempty"`

	// SNMPCommunity is the v1/v2c community string.
	SNMPCommunity string `json:"snmp_community,omitempty" yaml:"snmp_community,omitempty"`

	// Read-only fields, decoded from API responses.

	ObjectID    *wire.Uint `json:"id,omitempty" yaml:"id,omitempty"`
	Token       string     `json:"ref,omitempty" yaml:"ref,omitempty"`
	Uncommitted *wire.Flag `json:"uncommitted,omitempty" yaml:"uncommitted,omitempty"`
}

// UniqueName returns the host's name.
func (h *Host) UniqueName() string {
	return h.Name
}

// TypeName returns "Host".
func (h *Host) TypeName() string {
	return "Host"
}

// Validate checks the name and the optional address, notification and SNMP
// fields.
func (h *Host) Validate() error {
	if _, err := validate.HostName(h.Name); err != nil {
		return err
	}
	if h.IP != "" {
		if _, err := validate.IPOrHostname("Host", h.IP); err != nil {
			return err
		}
	}
	if err := validateHostNotificationOptions(h.NotificationOptions); err != nil {
		return err
	}
	if h.SNMPVersion != SNMPVersionUnset {
		if err := h.SNMPVersion.Validate(); err != nil {
			return err
		}
	}
	if h.SNMPPort != nil {
		if err := validate.Port(h.SNMPPort.Uint64()); err != nil {
			return err
		}
	}
	return nil
}

// validateHostNotificationOptions accepts "" or a comma-separated set drawn
// from d, u, r, f.
func validateHostNotificationOptions(s string) error {
	if s == "" {
		return nil
	}
	for _, opt := range strings.Split(s, ",") {
		switch strings.TrimSpace(opt) {
		case "d", "u", "r", "f":
		default:
			return &errors.ValidationError{
				Type:   "Host",
				Field:  "notification_options",
				Reason: "options must be drawn from d, u, r, f",
				Value:  s,
			}
		}
	}
	return nil
}

// Ref returns the reference projection.
func (h *Host) Ref() *HostRef {
	return &HostRef{Name: h.Name, Token: h.Token}
}

// ID returns the backend's numeric id and whether it is known.
func (h *Host) ID() (uint64, bool) {
	if h.ObjectID == nil {
		return 0, false
	}
	return h.ObjectID.Uint64(), true
}

// RefToken returns the backend's ref token, if known.
func (h *Host) RefToken() string {
	return h.Token
}

// ObjectName returns the configured name.
func (h *Host) ObjectName() string {
	return h.Name
}

// SetName validates and stores a new name.
func (h *Host) SetName(name string) error {
	trimmed, err := validate.HostName(name)
	if err != nil {
		return err
	}
	h.Name = trimmed
	return nil
}

// ClearReadonly zeroes the backend-owned fields.
func (h *Host) ClearReadonly() {
	h.ObjectID = nil
	h.Token = ""
	h.Uncommitted = nil
}

// CheckCommandRef names a host check command by reference. The full command
// entity is not modeled; hosts only ever carry the name-and-token pair.
type CheckCommandRef struct {
	Name  string `json:"name" yaml:"name"`
	Token string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// UniqueName returns the referenced command's name.
func (r *CheckCommandRef) UniqueName() string {
	return r.Name
}

// TypeName returns "CheckCommandRef".
func (r *CheckCommandRef) TypeName() string {
	return "CheckCommandRef"
}

// Validate requires a non-empty name.
func (r *CheckCommandRef) Validate() error {
	if r.Name == "" {
		return &errors.RequiredFieldError{Type: "CheckCommandRef", Field: "name"}
	}
	return nil
}

// HostRef is the lightweight reference to a Host.
type HostRef struct {
	Name  string `json:"name" yaml:"name"`
	Token string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// UniqueName returns the referenced host's name.
func (r *HostRef) UniqueName() string {
	return r.Name
}

// TypeName returns "HostRef".
func (r *HostRef) TypeName() string {
	return "HostRef"
}

// Validate requires a non-empty name.
func (r *HostRef) Validate() error {
	if r.Name == "" {
		return &errors.RequiredFieldError{Type: "HostRef", Field: "name"}
	}
	return nil
}

// HostBuilder assembles a Host. Name, IP, host group and monitoring cluster
// are required; everything else is optional.
type HostBuilder struct {
	name    string
	nameSet bool
	ip      string
	ipSet   bool

	alias               string
	otherAddresses      string
	hostGroup           *HostGroupRef
	monitoredBy         *MonitoringClusterRef
	checkCommand        *CheckCommandRef
	checkAttempts       *wire.Uint
	checkInterval       *wire.Uint
	notificationOptions string
	hashtags            *HashtagRefMap
	enableSNMP          *wire.Flag
	snmpVersion         SNMPVersion
	snmpPort            *wire.Uint
	snmpCommunity       string
}

// NewHostBuilder returns an empty builder.
func NewHostBuilder() *HostBuilder {
	return &HostBuilder{}
}

// Name sets the host's name. Validation happens in Build.
func (b *HostBuilder) Name(name string) *HostBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// IP sets the primary address. Validation happens in Build.
func (b *HostBuilder) IP(ip string) *HostBuilder {
	b.ip = ip
	b.ipSet = true
	return b
}

// Alias sets the display text.
func (b *HostBuilder) Alias(alias string) *HostBuilder {
	b.alias = alias
	return b
}

// OtherAddresses sets the additional addresses.
func (b *HostBuilder) OtherAddresses(addrs string) *HostBuilder {
	b.otherAddresses = addrs
	return b
}

// HostGroup places the host in a group.
func (b *HostBuilder) HostGroup(hg *HostGroup) *HostBuilder {
	b.hostGroup = hg.Ref()
	return b
}

// MonitoredBy sets the monitoring cluster.
func (b *HostBuilder) MonitoredBy(mc *MonitoringCluster) *HostBuilder {
	b.monitoredBy = mc.Ref()
	return b
}

// CheckCommand names the host check command.
func (b *HostBuilder) CheckCommand(name string) *HostBuilder {
	b.checkCommand = &CheckCommandRef{Name: name}
	return b
}

// CheckAttempts sets the retry count before a hard state.
func (b *HostBuilder) CheckAttempts(n uint64) *HostBuilder {
	b.checkAttempts = wire.NewUint(n)
	return b
}

// CheckInterval sets the seconds between scheduled checks.
func (b *HostBuilder) CheckInterval(seconds uint64) *HostBuilder {
	b.checkInterval = wire.NewUint(seconds)
	return b
}

// NotificationOptions sets the notifying host states. Validation happens in
// Build.
func (b *HostBuilder) NotificationOptions(opts string) *HostBuilder {
	b.notificationOptions = opts
	return b
}

// Hashtags tags the host from a map of full hashtags.
func (b *HostBuilder) Hashtags(tags *HashtagMap) *HostBuilder {
	b.hashtags = HashtagRefs(tags)
	return b
}

// EnableSNMP turns on SNMP polling.
func (b *HostBuilder) EnableSNMP(v bool) *HostBuilder {
	b.enableSNMP = wire.NewFlag(v)
	return b
}

// SNMPVersion selects the SNMP protocol version.
func (b *HostBuilder) SNMPVersion(v SNMPVersion) *HostBuilder {
	b.snmpVersion = v
	return b
}

// SNMPPort sets the agent's UDP port. Validation happens in Build.
func (b *HostBuilder) SNMPPort(port uint64) *HostBuilder {
	b.snmpPort = wire.NewUint(port)
	return b
}

// SNMPCommunity sets the v1/v2c community string.
func (b *HostBuilder) SNMPCommunity(s string) *HostBuilder {
	b.snmpCommunity = s
	return b
}

// Build validates the builder state and constructs the Host.
func (b *HostBuilder) Build() (*Host, error) {
	if !b.nameSet {
		return nil, &errors.RequiredFieldError{Type: "Host", Field: "name"}
	}
	name, err := validate.HostName(b.name)
	if err != nil {
		return nil, err
	}
	if !b.ipSet {
		return nil, &errors.RequiredFieldError{Type: "Host", Field: "ip"}
	}
	ip, err := validate.IPOrHostname("Host", b.ip)
	if err != nil {
		return nil, err
	}
	if b.hostGroup == nil {
		return nil, &errors.RequiredFieldError{Type: "Host", Field: "hostgroup"}
	}
	if b.monitoredBy == nil {
		return nil, &errors.RequiredFieldError{Type: "Host", Field: "monitored_by"}
	}
	if err := validateHostNotificationOptions(b.notificationOptions); err != nil {
		return nil, err
	}
	if b.snmpPort != nil {
		if err := validate.Port(b.snmpPort.Uint64()); err != nil {
			return nil, err
		}
	}
	return &Host{
		Name:                name,
		IP:                  ip,
		Alias:               b.alias,
		OtherAddresses:      b.otherAddresses,
		HostGroup:           b.hostGroup,
		MonitoredBy:         b.monitoredBy,
		CheckCommand:        b.checkCommand,
		CheckAttempts:       b.checkAttempts,
		CheckInterval:       b.checkInterval,
		NotificationOptions: b.notificationOptions,
		Hashtags:            b.hashtags,
		EnableSNMP:          b.enableSNMP,
		SNMPVersion:         b.snmpVersion,
		SNMPPort:            b.snmpPort,
		SNMPCommunity:       b.snmpCommunity,
	}, nil
}

// HostMap is an insertion-ordered collection of hosts keyed by name.
type HostMap = object.Map[Host, *Host]

// HostRefMap is the reference counterpart of HostMap.
type HostRefMap = object.Map[HostRef, *HostRef]

// NewHostMap returns an empty HostMap.
func NewHostMap() *HostMap {
	return object.NewMap[Host, *Host]()
}

// NewHostRefMap returns an empty HostRefMap.
func NewHostRefMap() *HostRefMap {
	return object.NewMap[HostRef, *HostRef]()
}

// HostRefs converts a map of full hosts to their references, preserving
// order.
func HostRefs(m *HostMap) *HostRefMap {
	return object.RefMapFrom[Host, HostRef](m)
}

var (
	_ object.Referable[*HostRef] = (*Host)(nil)
	_ object.Persistent          = (*Host)(nil)
	_ object.Object              = (*HostRef)(nil)
	_ object.Object              = (*CheckCommandRef)(nil)
	_ object.Builder[*Host]      = (*HostBuilder)(nil)
)
