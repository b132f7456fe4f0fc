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

// Package wire provides scalar types that absorb the loose encodings used by
// the monitoring backend's REST API.
//
// The backend does not serialize scalars consistently: a boolean field may
// arrive as the JSON string "0", the number 1, the literal true, or the word
// "yes", and a numeric field may arrive as either a number or a string. The
// types in this package normalize those shapes on decode and emit the single
// canonical form the backend expects on encode: booleans as the strings "0"
// and "1", numbers as JSON numbers.
//
// Both types implement json.Marshaler/Unmarshaler and the yaml.v3 equivalents
// so values round-trip through JSON API payloads and YAML files alike. They
// are meant to be used as pointer-typed struct fields with `omitempty`, so
// that a field the backend never sent stays unset and is omitted on
// re-encode rather than serialized as null or a zero value.
package wire
