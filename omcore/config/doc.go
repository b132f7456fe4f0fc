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

// Package config models the configuration entities of the monitoring
// backend's REST API as typed Go values.
//
// Each entity comes as a full struct plus, where the backend references it
// from other entities, a lightweight *Ref projection. Entities are built
// through fluent builders whose Build method performs all validation, decoded
// from API payloads with json.Unmarshal, and collected in insertion-ordered
// maps (see omcore/object) keyed by each type's identity rule:
//
//   - most entities key by bare name (Host, Hashtag, MonitoringCluster, ...)
//   - HostGroup keys by materialized path, since names repeat across subtrees
//   - BSMService keys by "name-id" when the id is known, falling back to the
//     ref token and finally the bare name
//   - TimeZone keys by ref token, the only stable key the backend provides
//   - NetflowSource keys by the compound "ip-flowtype" natural key
//
// Scalar fields the backend serializes loosely use the omcore/wire types, so
// booleans and numbers decode from any of the backend's encodings and
// re-encode canonically. Read-only bookkeeping fields (id, ref, uncommitted,
// and the derived matpath / is_leaf on host groups) are decoded verbatim and
// re-encoded when present, but builders never set them.
package config
