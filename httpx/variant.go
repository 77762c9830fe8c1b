/*
   Copyright 2025 The DIRPX Authors

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

package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/httperr/apis"
)

// ErrVariantInvalid is returned by ParseVariant for unknown names.
var ErrVariantInvalid = errors.New("httpx: invalid response variant")

// Variant selects one of the three response shapes.
type Variant int

// Response variants.
const (
	Plain  Variant = iota // status only, empty body
	String                // text/plain body, see StringResponse
	JSON                  // application/json body, see JSONResponse
)

var variantNames = [...]string{Plain: "plain", String: "string", JSON: "json"}

// ParseVariant parses "plain", "string" or "json", case-insensitively.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if strings.EqualFold(s, name) {
			return Variant(v), nil
		}
	}
	return Plain, fmt.Errorf("%w: %q", ErrVariantInvalid, s)
}

// String returns the variant name accepted by ParseVariant.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(variantNames) {
		return nil, fmt.Errorf("%w: %d", ErrVariantInvalid, int(v))
	}
	return []byte(variantNames[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseVariant.
func (v *Variant) UnmarshalText(text []byte) error {
	p, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// Build renders e in the shape v selects. Unknown variants render Plain.
func (v Variant) Build(e apis.PartsProvider) *http.Response {
	switch v {
	case String:
		return StringResponse(e)
	case JSON:
		return JSONResponse(e)
	default:
		return Response(e)
	}
}
