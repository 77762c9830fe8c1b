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

package codec

import (
	"strings"

	"dirpx.dev/httperr/status"
)

const (
	// Separator delimits the fields of an encoded message.
	Separator = ":"

	// MaxFields is the maximum number of fields an encoded message is split
	// into. Colons beyond the second belong to the message.
	MaxFields = 3
)

const (
	// DefaultDomain is reported when the encoded message has no domain field.
	DefaultDomain = "Internal"

	// UnknownDomain is reported for a present but empty domain field and is
	// written by Encode when no domain is supplied.
	UnknownDomain = "unknown"

	// UnknownMessage is reported when the encoded message is empty.
	UnknownMessage = "<unknown>"
)

// Parts is the decoded form of an encoded message.
type Parts struct {
	Message string
	Domain  string
	Status  status.Status
}

// Encode returns the canonical encoded form of p.
func (p Parts) Encode() string {
	return Encode(p.Status, p.Domain, p.Message)
}

// Decode splits encoded into its message, domain and status. It never fails.
func Decode(encoded string) Parts {
	p := Parts{
		Message: UnknownMessage,
		Domain:  DefaultDomain,
		Status:  status.Default,
	}
	if encoded == "" {
		return p
	}

	fields := strings.SplitN(encoded, Separator, MaxFields)
	idx := len(fields) - 1
	p.Message = fields[idx]
	if idx == 0 {
		return p
	}

	idx--
	p.Domain = fields[idx]
	if p.Domain == "" {
		p.Domain = UnknownDomain
	}
	if idx == 0 {
		return p
	}

	p.Status = status.ParseOr(fields[idx-1], status.Default)
	return p
}

// Encode formats st, domain and message as "status:domain:message".
//
// A zero or out-of-range st is written as status.Default and an empty domain
// as UnknownDomain. The domain must not contain Separator; this is not
// checked.
func Encode(st status.Status, domain, message string) string {
	if domain == "" {
		domain = UnknownDomain
	}
	var b strings.Builder
	b.Grow(len(domain) + len(message) + 5)
	b.WriteString(st.OrDefault().Token())
	b.WriteString(Separator)
	b.WriteString(domain)
	b.WriteString(Separator)
	b.WriteString(message)
	return b.String()
}
