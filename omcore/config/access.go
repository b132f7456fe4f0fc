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
)

// AccessPoint enumerates the backend's role access points. The set is closed:
// it covers the documented points plus the undocumented ones the backend is
// known to emit (BSM, NAVOPTIONS, NETAUDITVIEW, NTVIEWALL, REPORTADMIN and
// friends). A name outside the set is a decode error, so new backend
// capabilities surface loudly instead of being silently dropped.
type AccessPoint uint8

const (
	// AccessPointUnset is the zero value. It is not a valid wire value.
	AccessPointUnset AccessPoint = iota

	AccessPointActionAll
	AccessPointActionSome
	AccessPointAdminAccess
	AccessPointBSM
	AccessPointConfigureBSM
	AccessPointConfigureBSMComponent
	AccessPointConfigureContacts
	AccessPointConfigureHostGroups
	AccessPointConfigureHosts
	AccessPointConfigureKeywords
	AccessPointConfigureNetFlow
	AccessPointConfigureProfiles
	AccessPointConfigureRemoteCluster
	AccessPointConfigureRoles
	AccessPointConfigureSave
	AccessPointConfigureTenancies
	AccessPointConfigureView
	AccessPointDashboard
	AccessPointDashboardEdit
	AccessPointDashboardShare
	AccessPointDowntimeAll
	AccessPointDowntimeSome
	AccessPointNavOptions
	AccessPointNetAuditView
	AccessPointNetFlow
	AccessPointNotifySome
	AccessPointNTViewAll
	AccessPointPasswordSave
	AccessPointReloadAccess
	AccessPointReloadView
	AccessPointRemotelyManagedClusters
	AccessPointReportAdmin
	AccessPointReportUser
	AccessPointRRDGraphs
	AccessPointTestAll
	AccessPointTestChange
	AccessPointTestSome
	AccessPointViewAll
	AccessPointViewPortAccess
	AccessPointViewSome
)

// accessPointNames maps each AccessPoint to the exact wire name the backend
// uses. Index zero is deliberately empty.
var accessPointNames = [...]string{
	AccessPointActionAll:               "ACTIONALL",
	AccessPointActionSome:              "ACTIONSOME",
	AccessPointAdminAccess:             "ADMINACCESS",
	AccessPointBSM:                     "BSM",
	AccessPointConfigureBSM:            "CONFIGUREBSM",
	AccessPointConfigureBSMComponent:   "CONFIGUREBSMCOMPONENT",
	AccessPointConfigureContacts:       "CONFIGURECONTACTS",
	AccessPointConfigureHostGroups:     "CONFIGUREHOSTGROUPS",
	AccessPointConfigureHosts:          "CONFIGUREHOSTS",
	AccessPointConfigureKeywords:       "CONFIGUREKEYWORDS",
	AccessPointConfigureNetFlow:        "CONFIGURENETFLOW",
	AccessPointConfigureProfiles:       "CONFIGUREPROFILES",
	AccessPointConfigureRemoteCluster:  "CONFIGUREREMOTECLUSTER",
	AccessPointConfigureRoles:          "CONFIGUREROLES",
	AccessPointConfigureSave:           "CONFIGURESAVE",
	AccessPointConfigureTenancies:      "CONFIGURETENANCIES",
	AccessPointConfigureView:           "CONFIGUREVIEW",
	AccessPointDashboard:               "DASHBOARD",
	AccessPointDashboardEdit:           "DASHBOARDEDIT",
	AccessPointDashboardShare:          "DASHBOARDSHARE",
	AccessPointDowntimeAll:             "DOWNTIMEALL",
	AccessPointDowntimeSome:            "DOWNTIMESOME",
	AccessPointNavOptions:              "NAVOPTIONS",
	AccessPointNetAuditView:            "NETAUDITVIEW",
	AccessPointNetFlow:                 "NETFLOW",
	AccessPointNotifySome:              "NOTIFYSOME",
	AccessPointNTViewAll:               "NTVIEWALL",
	AccessPointPasswordSave:            "PASSWORDSAVE",
	AccessPointReloadAccess:            "RELOADACCESS",
	AccessPointReloadView:              "RELOADVIEW",
	AccessPointRemotelyManagedClusters: "REMOTELYMANAGEDCLUSTERS",
	AccessPointReportAdmin:             "REPORTADMIN",
	AccessPointReportUser:              "REPORTUSER",
	AccessPointRRDGraphs:               "RRDGRAPHS",
	AccessPointTestAll:                 "TESTALL",
	AccessPointTestChange:              "TESTCHANGE",
	AccessPointTestSome:                "TESTSOME",
	AccessPointViewAll:                 "VIEWALL",
	AccessPointViewPortAccess:          "VIEWPORTACCESS",
	AccessPointViewSome:                "VIEWSOME",
}

// ParseAccessPoint parses a wire name into an AccessPoint. Matching is
// case-insensitive after trimming whitespace, so "viewall" and "VIEWALL"
// parse alike; serialization always uses the canonical uppercase name.
func ParseAccessPoint(s string) (AccessPoint, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for value, name := range accessPointNames {
		if name != "" && name == normalized {
			return AccessPoint(value), nil
		}
	}
	return AccessPointUnset, &errors.ParseError{Type: "AccessPoint", Value: s}
}

// String returns the canonical wire name.
func (ap AccessPoint) String() string {
	if int(ap) < len(accessPointNames) && accessPointNames[ap] != "" {
		return accessPointNames[ap]
	}
	return "AccessPoint(" + strconv.Itoa(int(ap)) + ")"
}

// TypeName returns "AccessPoint".
func (ap AccessPoint) TypeName() string {
	return "AccessPoint"
}

// Validate reports whether this AccessPoint is a defined constant. The zero
// value is invalid.
func (ap AccessPoint) Validate() error {
	if ap == AccessPointUnset || int(ap) >= len(accessPointNames) {
		return &errors.MarshalError{Type: "AccessPoint", Value: int(ap)}
	}
	return nil
}

// Access is one granted access point as it appears inside a role: the
// display-name-encoded discriminant plus the backend's optional ref token.
//
// The token is read-only bookkeeping. It is preserved through decode and
// re-encode but carries no meaning for identity; two Access values naming
// the same point are the same grant.
type Access struct {
	// Point is the granted access point.
	Point AccessPoint

	// Token is the backend's ref token for the grant, when known.
	Token string
}

// accessWire is the JSON/YAML shape of an Access.
type accessWire struct {
	Name string `json:"name" yaml:"name"`
	Ref  string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// NewAccess returns an Access granting the given point.
func NewAccess(point AccessPoint) *Access {
	return &Access{Point: point}
}

// UniqueName returns the access point's wire name; grants are identified by
// point, not token.
func (a *Access) UniqueName() string {
	return a.Point.String()
}

// TypeName returns "Access".
func (a *Access) TypeName() string {
	return "Access"
}

// Validate reports whether the grant names a defined access point.
func (a *Access) Validate() error {
	return a.Point.Validate()
}

// MarshalJSON emits {"name":...} plus the ref token when present.
func (a Access) MarshalJSON() ([]byte, error) {
	if err := a.Point.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(accessWire{Name: a.Point.String(), Ref: a.Token})
}

// UnmarshalJSON decodes a display-name-encoded grant. The name is the
// discriminant and must match the closed set exactly; an unknown name is an
// UnknownVariantError carrying the offending name.
func (a *Access) UnmarshalJSON(data []byte) error {
	var w accessWire
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{Type: "Access", Data: data, Reason: "not a name-encoded object"}
	}
	point, err := accessPointFromWire(w.Name)
	if err != nil {
		return err
	}
	a.Point = point
	a.Token = w.Ref
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (a Access) MarshalYAML() (interface{}, error) {
	if err := a.Point.Validate(); err != nil {
		return nil, err
	}
	return accessWire{Name: a.Point.String(), Ref: a.Token}, nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (a *Access) UnmarshalYAML(node *yaml.Node) error {
	var w accessWire
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{Type: "Access", Data: []byte(node.Value), Reason: "not a name-encoded mapping"}
	}
	point, err := accessPointFromWire(w.Name)
	if err != nil {
		return err
	}
	a.Point = point
	a.Token = w.Ref
	return nil
}

// accessPointFromWire maps an exact wire name to its AccessPoint. Unlike
// ParseAccessPoint it does not normalize: the backend's casing is canonical
// and anything else is an unknown variant.
func accessPointFromWire(name string) (AccessPoint, error) {
	for value, known := range accessPointNames {
		if known != "" && known == name {
			return AccessPoint(value), nil
		}
	}
	return AccessPointUnset, &errors.UnknownVariantError{Type: "Access", Token: name}
}

// AccessMap is an insertion-ordered collection of grants keyed by access
// point name.
type AccessMap = object.Map[Access, *Access]

// NewAccessMap returns an empty AccessMap.
func NewAccessMap() *AccessMap {
	return object.NewMap[Access, *Access]()
}

var _ object.Object = (*Access)(nil)
