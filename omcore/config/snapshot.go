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
	"go.uber.org/multierr"
)

// Snapshot bundles one collection per entity type: a full local picture of
// an instance's configuration, suitable for dump/restore or diffing. Nil
// collections mean "not fetched", not "empty".
type Snapshot struct {
	BSMServices        *BSMServiceMap        `json:"bsm_services,omitempty" yaml:"bsm_services,omitempty"`
	Hashtags           *HashtagMap           `json:"hashtags,omitempty" yaml:"hashtags,omitempty"`
	HostGroups         *HostGroupMap         `json:"host_groups,omitempty" yaml:"host_groups,omitempty"`
	Hosts              *HostMap              `json:"hosts,omitempty" yaml:"hosts,omitempty"`
	HostTemplates      *HostTemplateMap      `json:"host_templates,omitempty" yaml:"host_templates,omitempty"`
	MonitoringClusters *MonitoringClusterMap `json:"monitoring_clusters,omitempty" yaml:"monitoring_clusters,omitempty"`
	NetflowSources     *NetflowSourceMap     `json:"netflow_sources,omitempty" yaml:"netflow_sources,omitempty"`
	Plugins            *PluginMap            `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	TimeZones          *TimeZoneMap          `json:"time_zones,omitempty" yaml:"time_zones,omitempty"`

	// Server describes the instance the snapshot was taken from.
	Server *ServerInfo `json:"server,omitempty" yaml:"server,omitempty"`
}

// NewSnapshot returns a Snapshot with every collection allocated, for
// callers assembling a configuration from scratch.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		BSMServices:        NewBSMServiceMap(),
		Hashtags:           NewHashtagMap(),
		HostGroups:         NewHostGroupMap(),
		Hosts:              NewHostMap(),
		HostTemplates:      NewHostTemplateMap(),
		MonitoringClusters: NewMonitoringClusterMap(),
		NetflowSources:     NewNetflowSourceMap(),
		Plugins:            NewPluginMap(),
		TimeZones:          NewTimeZoneMap(),
	}
}

// Validate validates every fetched collection and the server info,
// aggregating all failures rather than stopping at the first.
func (s *Snapshot) Validate() error {
	var err error
	if s.BSMServices != nil {
		err = multierr.Append(err, s.BSMServices.Validate())
	}
	if s.Hashtags != nil {
		err = multierr.Append(err, s.Hashtags.Validate())
	}
	if s.HostGroups != nil {
		err = multierr.Append(err, s.HostGroups.Validate())
	}
	if s.Hosts != nil {
		err = multierr.Append(err, s.Hosts.Validate())
	}
	if s.HostTemplates != nil {
		err = multierr.Append(err, s.HostTemplates.Validate())
	}
	if s.MonitoringClusters != nil {
		err = multierr.Append(err, s.MonitoringClusters.Validate())
	}
	if s.NetflowSources != nil {
		err = multierr.Append(err, s.NetflowSources.Validate())
	}
	if s.Plugins != nil {
		err = multierr.Append(err, s.Plugins.Validate())
	}
	if s.TimeZones != nil {
		err = multierr.Append(err, s.TimeZones.Validate())
	}
	if s.Server != nil {
		err = multierr.Append(err, s.Server.Validate())
	}
	return err
}
