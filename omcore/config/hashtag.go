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

// HashtagStyle selects how the UI renders a hashtag's summary view.
type HashtagStyle uint8

const (
	// HashtagStyleUnset is the zero value; it serializes as the literal
	// string "null", which is what the backend stores for hashtags that
	// never had a style picked.
	HashtagStyleUnset HashtagStyle = iota

	HashtagStyleGroupByHost
	HashtagStyleGroupByService
	HashtagStyleHostSummary
	HashtagStyleErrorsAndHostCells
	HashtagStylePerformance
)

var hashtagStyleNames = [...]string{
	HashtagStyleUnset:              "null",
	HashtagStyleGroupByHost:        "group_by_host",
	HashtagStyleGroupByService:     "group_by_service",
	HashtagStyleHostSummary:        "host_summary",
	HashtagStyleErrorsAndHostCells: "errors_and_host_cells",
	HashtagStylePerformance:        "performance",
}

// ParseHashtagStyle parses a wire name, case-insensitively after trimming.
// Both "" and "null" parse to HashtagStyleUnset.
func ParseHashtagStyle(s string) (HashtagStyle, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return HashtagStyleUnset, nil
	}
	for value, name := range hashtagStyleNames {
		if name == normalized {
			return HashtagStyle(value), nil
		}
	}
	return HashtagStyleUnset, &errors.ParseError{Type: "HashtagStyle", Value: s}
}

// String returns the wire name.
func (hs HashtagStyle) String() string {
	if int(hs) < len(hashtagStyleNames) {
		return hashtagStyleNames[hs]
	}
	return "HashtagStyle(" + strconv.Itoa(int(hs)) + ")"
}

// TypeName returns "HashtagStyle".
func (hs HashtagStyle) TypeName() string {
	return "HashtagStyle"
}

// Validate reports whether the style is in range. Unset is valid.
func (hs HashtagStyle) Validate() error {
	if int(hs) >= len(hashtagStyleNames) {
		return &errors.MarshalError{Type: "HashtagStyle", Value: int(hs)}
	}
	return nil
}

// MarshalJSON emits the wire name; Unset emits the string "null".
func (hs HashtagStyle) MarshalJSON() ([]byte, error) {
	if err := hs.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(hs.String())
}

// UnmarshalJSON accepts a wire name or a JSON null.
func (hs *HashtagStyle) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*hs = HashtagStyleUnset
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "HashtagStyle", Data: data, Reason: "not a string"}
	}
	parsed, err := ParseHashtagStyle(s)
	if err != nil {
		return err
	}
	*hs = parsed
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (hs HashtagStyle) MarshalYAML() (interface{}, error) {
	if err := hs.Validate(); err != nil {
		return nil, err
	}
	return hs.String(), nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (hs *HashtagStyle) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*hs = HashtagStyleUnset
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "HashtagStyle", Data: []byte(node.Value), Reason: "not a scalar"}
	}
	parsed, err := ParseHashtagStyle(s)
	if err != nil {
		return err
	}
	*hs = parsed
	return nil
}

// Hashtag tags hosts and service checks for grouped display. The backend
// calls these "keywords" in older endpoints; the wire fields keep that era's
// flag-heavy shape, so most fields are tri-state wire flags.
type Hashtag struct {
	// Name identifies the hashtag. Unique across the platform.
	Name string `json:"name" yaml:"name"`

	// AllHosts applies the hashtag to every host when true.
	AllHosts *wire.Flag `json:"all_hosts,omitempty" yaml:"all_hosts,omitempty"`

	// AllServiceChecks applies the hashtag to every service check when true.
	AllServiceChecks *wire.Flag `json:"all_servicechecks,omitempty" yaml:"all_servicechecks,omitempty"`

	// CalculateHardStates bases the summary on hard states only.
	CalculateHardStates *wire.Flag `json:"calculate_hard_states,omitempty" yaml:"calculate_hard_states,omitempty"`

	// Description is free-form display text.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Enabled toggles the hashtag without deleting it.
	Enabled *wire.Flag `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// ExcludeHandled hides acknowledged and downtimed problems.
	ExcludeHandled *wire.Flag `json:"exclude_handled,omitempty" yaml:"exclude_handled,omitempty"`

	// Hosts are the explicitly tagged hosts.
	Hosts *HostRefMap `json:"hosts,omitempty" yaml:"hosts,omitempty"`

	// Public exposes the hashtag to unauthenticated status views.
	Public *wire.Flag `json:"public,omitempty" yaml:"public,omitempty"`

	// ShowContextualMenus enables the contextual menus in summary views.
	ShowContextualMenus *wire.Flag `json:"show_contextual_menus,omitempty" yaml:"show_contextual_menus,omitempty"`

	// Style selects the summary rendering.
	Style HashtagStyle `json:"style,omitempty" yaml:"style,omitempty"`

	// Read-only fields, decoded from API responses.

	ObjectID    *wire.Uint `json:"id,omitempty" yaml:"id,omitempty"`
	Token       string     `json:"ref,omitempty" yaml:"ref,omitempty"`
	Uncommitted *wire.Flag `json:"uncommitted,omitempty" yaml:"uncommitted,omitempty"`
}

// UniqueName returns the hashtag's name.
func (h *Hashtag) UniqueName() string {
	return h.Name
}

// TypeName returns "Hashtag".
func (h *Hashtag) TypeName() string {
	return "Hashtag"
}

// Validate checks the name, description and style.
func (h *Hashtag) Validate() error {
	if _, err := validate.HashtagName(h.Name); err != nil {
		return err
	}
	if _, err := validate.Description("Hashtag", h.Description); err != nil {
		return err
	}
	return h.Style.Validate()
}

// Ref returns the reference projection.
func (h *Hashtag) Ref() *HashtagRef {
	return &HashtagRef{Name: h.Name, Token: h.Token}
}

// ID returns the backend's numeric id and whether it is known.
func (h *Hashtag) ID() (uint64, bool) {
	if h.ObjectID == nil {
		return 0, false
	}
	return h.ObjectID.Uint64(), true
}

// RefToken returns the backend's ref token, if known.
func (h *Hashtag) RefToken() string {
	return h.Token
}

// ObjectName returns the configured name.
func (h *Hashtag) ObjectName() string {
	return h.Name
}

// SetName validates and stores a new name.
func (h *Hashtag) SetName(name string) error {
	trimmed, err := validate.HashtagName(name)
	if err != nil {
		return err
	}
	h.Name = trimmed
	return nil
}

// ClearReadonly zeroes the backend-owned fields.
func (h *Hashtag) ClearReadonly() {
	h.ObjectID = nil
	h.Token = ""
	h.Uncommitted = nil
}

// HashtagRef is the lightweight reference to a Hashtag.
type HashtagRef struct {
	Name  string `json:"name" yaml:"name"`
	Token string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// UniqueName returns the referenced hashtag's name.
func (r *HashtagRef) UniqueName() string {
	return r.Name
}

// TypeName returns "HashtagRef".
func (r *HashtagRef) TypeName() string {
	return "HashtagRef"
}

// Validate requires a non-empty name.
func (r *HashtagRef) Validate() error {
	if r.Name == "" {
		return &errors.RequiredFieldError{Type: "HashtagRef", Field: "name"}
	}
	return nil
}

// HashtagBuilder assembles a Hashtag. New hashtags default to enabled with
// contextual menus shown, matching what the UI creates.
type HashtagBuilder struct {
	name    string
	nameSet bool

	allHosts            *wire.Flag
	allServiceChecks    *wire.Flag
	calculateHardStates *wire.Flag
	description         string
	enabled             *wire.Flag
	excludeHandled      *wire.Flag
	hosts               *HostRefMap
	public              *wire.Flag
	showContextualMenus *wire.Flag
	style               HashtagStyle
}

// NewHashtagBuilder returns a builder with the UI's defaults applied.
func NewHashtagBuilder() *HashtagBuilder {
	return &HashtagBuilder{
		enabled:             wire.NewFlag(true),
		showContextualMenus: wire.NewFlag(true),
	}
}

// Name sets the hashtag's name. Validation happens in Build.
func (b *HashtagBuilder) Name(name string) *HashtagBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// AllHosts applies the hashtag to every host.
func (b *HashtagBuilder) AllHosts(v bool) *HashtagBuilder {
	b.allHosts = wire.NewFlag(v)
	return b
}

// AllServiceChecks applies the hashtag to every service check.
func (b *HashtagBuilder) AllServiceChecks(v bool) *HashtagBuilder {
	b.allServiceChecks = wire.NewFlag(v)
	return b
}

// CalculateHardStates bases the summary on hard states only.
func (b *HashtagBuilder) CalculateHardStates(v bool) *HashtagBuilder {
	b.calculateHardStates = wire.NewFlag(v)
	return b
}

// Description sets the display text. Validation happens in Build.
func (b *HashtagBuilder) Description(s string) *HashtagBuilder {
	b.description = s
	return b
}

// Enabled toggles the hashtag.
func (b *HashtagBuilder) Enabled(v bool) *HashtagBuilder {
	b.enabled = wire.NewFlag(v)
	return b
}

// ExcludeHandled hides acknowledged and downtimed problems.
func (b *HashtagBuilder) ExcludeHandled(v bool) *HashtagBuilder {
	b.excludeHandled = wire.NewFlag(v)
	return b
}

// Hosts sets the tagged hosts from a map of full hosts.
func (b *HashtagBuilder) Hosts(hosts *HostMap) *HashtagBuilder {
	b.hosts = HostRefs(hosts)
	return b
}

// Public exposes the hashtag to unauthenticated status views.
func (b *HashtagBuilder) Public(v bool) *HashtagBuilder {
	b.public = wire.NewFlag(v)
	return b
}

// ShowContextualMenus enables the contextual menus in summary views.
func (b *HashtagBuilder) ShowContextualMenus(v bool) *HashtagBuilder {
	b.showContextualMenus = wire.NewFlag(v)
	return b
}

// Style selects the summary rendering.
func (b *HashtagBuilder) Style(style HashtagStyle) *HashtagBuilder {
	b.style = style
	return b
}

// Build validates the builder state and constructs the Hashtag.
func (b *HashtagBuilder) Build() (*Hashtag, error) {
	if !b.nameSet {
		return nil, &errors.RequiredFieldError{Type: "Hashtag", Field: "name"}
	}
	name, err := validate.HashtagName(b.name)
	if err != nil {
		return nil, err
	}
	description, err := validate.Description("Hashtag", b.description)
	if err != nil {
		return nil, err
	}
	if err := b.style.Validate(); err != nil {
		return nil, err
	}
	return &Hashtag{
		Name:                name,
		AllHosts:            b.allHosts,
		AllServiceChecks:    b.allServiceChecks,
		CalculateHardStates: b.calculateHardStates,
		Description:         description,
		Enabled:             b.enabled,
		ExcludeHandled:      b.excludeHandled,
		Hosts:               b.hosts,
		Public:              b.public,
		ShowContextualMenus: b.showContextualMenus,
		Style:               b.style,
	}, nil
}

// HashtagMap is an insertion-ordered collection of hashtags keyed by name.
type HashtagMap = object.Map[Hashtag, *Hashtag]

// HashtagRefMap is the reference counterpart of HashtagMap.
type HashtagRefMap = object.Map[HashtagRef, *HashtagRef]

// NewHashtagMap returns an empty HashtagMap.
func NewHashtagMap() *HashtagMap {
	return object.NewMap[Hashtag, *Hashtag]()
}

// NewHashtagRefMap returns an empty HashtagRefMap.
func NewHashtagRefMap() *HashtagRefMap {
	return object.NewMap[HashtagRef, *HashtagRef]()
}

// HashtagRefs converts a map of full hashtags to their references,
// preserving order.
func HashtagRefs(m *HashtagMap) *HashtagRefMap {
	return object.RefMapFrom[Hashtag, HashtagRef](m)
}

var (
	_ object.Referable[*HashtagRef] = (*Hashtag)(nil)
	_ object.Persistent             = (*Hashtag)(nil)
	_ object.Object                 = (*HashtagRef)(nil)
	_ object.Builder[*Hashtag]      = (*HashtagBuilder)(nil)
)
