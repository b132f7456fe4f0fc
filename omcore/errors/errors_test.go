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

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/opsmith-io/opsmith-go/omcore/errors"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "parse error",
			err:  &errors.ParseError{Type: "HashtagStyle", Value: "BOLD"},
			want: "opsmith: invalid HashtagStyle value: BOLD",
		},
		{
			name: "marshal error",
			err:  &errors.MarshalError{Type: "SNMPVersion", Value: 99},
			want: "opsmith: cannot marshal invalid SNMPVersion value: 99",
		},
		{
			name: "unmarshal error",
			err:  &errors.UnmarshalError{Type: "Flag", Data: []byte(`"maybe"`), Reason: `unsupported boolean literal "maybe"`},
			want: `opsmith: cannot unmarshal Flag: unsupported boolean literal "maybe"`,
		},
		{
			name: "validation error with field",
			err:  &errors.ValidationError{Type: "Host", Field: "name", Reason: "contains whitespace", Value: "my host"},
			want: "opsmith: invalid Host.name: contains whitespace",
		},
		{
			name: "validation error without field",
			err:  &errors.ValidationError{Type: "NetflowSource", Reason: "address is not an IPv4 literal"},
			want: "opsmith: invalid NetflowSource: address is not an IPv4 literal",
		},
		{
			name: "required field error",
			err:  &errors.RequiredFieldError{Type: "HostGroup", Field: "name"},
			want: "opsmith: required field HostGroup.name is not set",
		},
		{
			name: "range error",
			err:  &errors.RangeError{Field: "port", Value: 70000, Min: 1, Max: 65535},
			want: "opsmith: port value 70000 out of range [1, 65535]",
		},
		{
			name: "unknown variant error",
			err:  &errors.UnknownVariantError{Type: "CheckType", Token: "/rest/config/checktype/99"},
			want: "opsmith: unknown CheckType token: /rest/config/checktype/99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorsAsMatching(t *testing.T) {
	var wrapped error = fmt.Errorf("decoding snapshot: %w",
		&errors.UnknownVariantError{Type: "Access", Token: "TELEPORT"})

	var uv *errors.UnknownVariantError
	if !stderrors.As(wrapped, &uv) {
		t.Fatal("errors.As failed to match wrapped *UnknownVariantError")
	}
	if uv.Token != "TELEPORT" {
		t.Errorf("Token = %q, want %q", uv.Token, "TELEPORT")
	}

	var pe *errors.ParseError
	if stderrors.As(wrapped, &pe) {
		t.Error("errors.As matched *ParseError against an UnknownVariantError")
	}
}
