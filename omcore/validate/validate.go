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

// Package validate implements the per-entity-class field rules the monitoring
// backend enforces on configuration objects.
//
// Each entity class constrains its name to a length range and a character
// set, expressed here as exported regular expression pattern strings plus
// validator functions. Validators of the form <Class>Name trim leading and
// trailing whitespace before checking and return the trimmed value, so a
// builder can store exactly what the backend will accept. Free-text
// validators bound length and reject separator characters other than plain
// spaces but do not trim.
//
// Lengths are measured in bytes, matching how the backend's database schema
// bounds its columns.
//
// All failures are typed values from omcore/errors; validators never panic
// and never silently repair an invalid value beyond the documented trimming.
package validate

import (
	"net/netip"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
)

// Exported pattern strings for each validated class. They are compiled once
// at package init; the strings are exported so callers can surface the exact
// rule in their own diagnostics or documentation.
const (
	// BSMServiceNamePattern bounds business-service names (free text).
	BSMServiceNamePattern = InlineFreeTextPattern

	// HashtagNamePattern admits hashtag names: a letter or digit followed
	// by letters, digits, underscores and hyphens.
	HashtagNamePattern = `^[\p{L}\p{N}][\p{L}\p{N}_-]*$`

	// HostNamePattern admits host names: letters, digits, dots, hyphens
	// and underscores, with no embedded whitespace.
	HostNamePattern = `^[\p{L}\p{N}.\-_]+$`

	// HostGroupNamePattern admits host group names: a letter or digit
	// followed by letters, digits, spaces and ./+-_ punctuation.
	HostGroupNamePattern = `^[\p{L}\p{N}][\p{L}\p{N} ./+\-_]*$`

	// HostTemplateNamePattern admits host template names.
	HostTemplateNamePattern = `^[\p{L}\p{N}][\p{L}\p{N} .\-_]*$`

	// InlineFreeTextPattern admits single-line free text: anything except
	// separator characters other than the plain space.
	InlineFreeTextPattern = `^[\P{Z}\p{N}\p{S}\p{P} ]*$`

	// MonitoringClusterNamePattern admits monitoring cluster names.
	MonitoringClusterNamePattern = `^[\p{L}\p{N} .+\-_]+$`

	// VariableNamePattern admits variable names: uppercase ASCII letters,
	// digits and underscores only.
	VariableNamePattern = `^[A-Z0-9_]+$`

	// HostnamePattern admits DNS host name labels joined by dots.
	HostnamePattern = `^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*$`
)

var (
	hashtagNameRE           = regexp.MustCompile(HashtagNamePattern)
	hostNameRE              = regexp.MustCompile(HostNamePattern)
	hostGroupNameRE         = regexp.MustCompile(HostGroupNamePattern)
	hostTemplateNameRE      = regexp.MustCompile(HostTemplateNamePattern)
	inlineFreeTextRE        = regexp.MustCompile(InlineFreeTextPattern)
	monitoringClusterNameRE = regexp.MustCompile(MonitoringClusterNamePattern)
	variableNameRE          = regexp.MustCompile(VariableNamePattern)
	hostnameRE              = regexp.MustCompile(HostnamePattern)
)

// trimmedString trims s, bounds its byte length to [min, max] and matches it
// against re. The trimmed value is returned so the caller stores the
// canonical form.
func trimmedString(class, field, s string, min, max int, re *regexp.Regexp, pattern string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < min {
		return "", &errors.ValidationError{
			Type:   class,
			Field:  field,
			Reason: "length " + strconv.Itoa(len(trimmed)) + " is below the minimum of " + strconv.Itoa(min),
			Value:  trimmed,
		}
	}
	if len(trimmed) > max {
		return "", &errors.ValidationError{
			Type:   class,
			Field:  field,
			Reason: "length " + strconv.Itoa(len(trimmed)) + " exceeds the maximum of " + strconv.Itoa(max),
			Value:  trimmed,
		}
	}
	if !re.MatchString(trimmed) {
		return "", &errors.ValidationError{
			Type:   class,
			Field:  field,
			Reason: "does not match " + pattern,
			Value:  trimmed,
		}
	}
	return trimmed, nil
}

// untrimmedString is trimmedString without the trimming, for classes where
// leading and trailing whitespace is significant.
func untrimmedString(class, field, s string, min, max int, re *regexp.Regexp, pattern string) (string, error) {
	if len(s) < min {
		return "", &errors.ValidationError{
			Type:   class,
			Field:  field,
			Reason: "length " + strconv.Itoa(len(s)) + " is below the minimum of " + strconv.Itoa(min),
		}
	}
	if len(s) > max {
		return "", &errors.ValidationError{
			Type:   class,
			Field:  field,
			Reason: "length " + strconv.Itoa(len(s)) + " exceeds the maximum of " + strconv.Itoa(max),
		}
	}
	if !re.MatchString(s) {
		return "", &errors.ValidationError{
			Type:   class,
			Field:  field,
			Reason: "does not match " + pattern,
			Value:  s,
		}
	}
	return s, nil
}

// BSMServiceName validates and trims a business-service name: 1-255 bytes
// of single-line free text.
func BSMServiceName(name string) (string, error) {
	return trimmedString("BSMService", "name", name, 1, 255, inlineFreeTextRE, BSMServiceNamePattern)
}

// HashtagName validates and trims a hashtag name: 1-128 bytes matching
// HashtagNamePattern.
func HashtagName(name string) (string, error) {
	return trimmedString("Hashtag", "name", name, 1, 128, hashtagNameRE, HashtagNamePattern)
}

// HostName validates and trims a host name: 1-64 bytes matching
// HostNamePattern.
func HostName(name string) (string, error) {
	return trimmedString("Host", "name", name, 1, 64, hostNameRE, HostNamePattern)
}

// HostGroupName validates and trims a host group name: 1-128 bytes matching
// HostGroupNamePattern.
func HostGroupName(name string) (string, error) {
	return trimmedString("HostGroup", "name", name, 1, 128, hostGroupNameRE, HostGroupNamePattern)
}

// HostTemplateName validates and trims a host template name: 1-128 bytes
// matching HostTemplateNamePattern.
func HostTemplateName(name string) (string, error) {
	return trimmedString("HostTemplate", "name", name, 1, 128, hostTemplateNameRE, HostTemplateNamePattern)
}

// MonitoringClusterName validates and trims a monitoring cluster name:
// 1-64 bytes matching MonitoringClusterNamePattern.
func MonitoringClusterName(name string) (string, error) {
	return trimmedString("MonitoringCluster", "name", name, 1, 64, monitoringClusterNameRE, MonitoringClusterNamePattern)
}

// VariableName validates a variable name: 1-64 bytes of uppercase ASCII
// letters, digits and underscores. Variable names are not trimmed; any
// whitespace is a violation.
func VariableName(name string) (string, error) {
	return untrimmedString("Variable", "name", name, 1, 64, variableNameRE, VariableNamePattern)
}

// Description validates and trims a description: up to 255 bytes of
// single-line free text. The empty string is valid.
func Description(class, description string) (string, error) {
	return trimmedString(class, "description", description, 0, 255, inlineFreeTextRE, InlineFreeTextPattern)
}

// FreeText validates an untrimmed single-line free-text field of up to max
// bytes, for example plugin argument strings and environment variable lists.
func FreeText(class, field, s string, max int) (string, error) {
	return untrimmedString(class, field, s, 0, max, inlineFreeTextRE, InlineFreeTextPattern)
}

// Port validates a network port. Zero is rejected: the backend accepts it
// in configuration but a collector bound to port 0 can never receive flows,
// so it is treated as out of range here.
func Port(port uint64) error {
	if port < 1 || port > 65535 {
		return &errors.RangeError{Field: "port", Value: int64(port), Min: 1, Max: 65535}
	}
	return nil
}

// IPv4 validates and trims an IPv4 literal such as "192.0.2.10".
func IPv4(class, s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	addr, err := netip.ParseAddr(trimmed)
	if err != nil || !addr.Is4() {
		return "", &errors.ValidationError{
			Type:   class,
			Field:  "ip",
			Reason: "not an IPv4 literal",
			Value:  trimmed,
		}
	}
	return trimmed, nil
}

// IPOrHostname validates an address that may be an IPv4 literal, an IPv6
// literal or a DNS host name. Only trailing whitespace is trimmed, matching
// how the backend normalizes the field.
func IPOrHostname(class, s string) (string, error) {
	trimmed := strings.TrimRight(s, " \t\r\n")
	if addr, err := netip.ParseAddr(trimmed); err == nil && (addr.Is4() || addr.Is6()) {
		return trimmed, nil
	}
	if hostnameRE.MatchString(trimmed) {
		return trimmed, nil
	}
	return "", &errors.ValidationError{
		Type:   class,
		Field:  "address",
		Reason: "not an IP literal or host name",
		Value:  trimmed,
	}
}

// URI validates and trims an absolute URI: it must parse and carry an
// explicit scheme.
func URI(class, field, s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" {
		return "", &errors.ValidationError{
			Type:   class,
			Field:  field,
			Reason: "not an absolute URI",
			Value:  trimmed,
		}
	}
	return trimmed, nil
}

// PastUnixTimestamp validates that ts, a Unix timestamp in milliseconds,
// lies strictly in the past.
func PastUnixTimestamp(field string, ts uint64) error {
	now := time.Now().UnixMilli()
	if now < 0 || ts >= uint64(now) {
		return &errors.RangeError{Field: field, Value: int64(ts), Min: 0, Max: now}
	}
	return nil
}
