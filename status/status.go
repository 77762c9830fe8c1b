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

package status

import (
	"bytes"
	"encoding"
	"errors"
	"net/http"
	"strconv"
)

// Status is an HTTP status code in the legal token range 100..999.
//
// The zero value means "not provided". Encoders treat it as Default.
type Status int

// Min and Max bound the numeric range accepted by Parse and Valid.
const (
	Min Status = 100
	Max Status = 999
)

// tokenLen is the exact number of digits of a status token.
const tokenLen = 3

var (
	// ErrStatusInvalid is returned when a token cannot be parsed as an HTTP
	// status code.
	ErrStatusInvalid = errors.New("httperr: invalid status code")
)

var (
	_ encoding.TextMarshaler   = (*Status)(nil)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// Parse interprets token as a status code. The token must consist of exactly
// three ASCII digits, the first of which is non-zero. No trimming is done.
func Parse(token string) (Status, error) {
	if len(token) != tokenLen {
		return 0, ErrStatusInvalid
	}
	n := 0
	for i := 0; i < tokenLen; i++ {
		c := token[i]
		if c < '0' || c > '9' {
			return 0, ErrStatusInvalid
		}
		n = n*10 + int(c-'0')
	}
	s := Status(n)
	if !s.Valid() {
		return 0, ErrStatusInvalid
	}
	return s, nil
}

// ParseOr is Parse with a fallback: any invalid token yields def.
func ParseOr(token string, def Status) Status {
	s, err := Parse(token)
	if err != nil {
		return def
	}
	return s
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(token string) Status {
	s, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return s
}

// FromInt converts n into a Status, returning ErrStatusInvalid when n lies
// outside Min..Max.
func FromInt(n int) (Status, error) {
	s := Status(n)
	if !s.Valid() {
		return 0, ErrStatusInvalid
	}
	return s, nil
}

// OrDefault returns s, or Default when s is the zero value or out of range.
func (s Status) OrDefault() Status {
	if !s.Valid() {
		return Default
	}
	return s
}

// Valid reports whether s lies in Min..Max.
func (s Status) Valid() bool { return s >= Min && s <= Max }

// Code returns the numeric value.
func (s Status) Code() int { return int(s) }

// Class returns the leading digit, e.g. 4 for 404.
func (s Status) Class() int { return int(s) / 100 }

// IsClientError reports whether s is a 4xx status.
func (s Status) IsClientError() bool { return s.Class() == 4 }

// IsServerError reports whether s is a 5xx status.
func (s Status) IsServerError() bool { return s.Class() == 5 }

// Text returns the canonical reason phrase, or "" for unregistered codes.
// Phrases follow RFC 9110 where it renamed a status.
func (s Status) Text() string {
	if t, ok := reasons[s]; ok {
		return t
	}
	return http.StatusText(int(s))
}

// Token returns the bare numeric form, e.g. "404".
func (s Status) Token() string { return strconv.Itoa(int(s)) }

// String renders "<code> <reason>", e.g. "404 Not Found". Codes without a
// reason phrase render as "<code> <unknown status code>".
func (s Status) String() string {
	t := s.Text()
	if t == "" {
		t = UnknownText
	}
	return strconv.Itoa(int(s)) + " " + t
}

// MarshalText implements encoding.TextMarshaler using the bare numeric form.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrStatusInvalid
	}
	return []byte(s.Token()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
