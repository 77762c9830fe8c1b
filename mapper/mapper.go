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

package mapper

import (
	"fmt"
	"maps"
	"strings"

	"dirpx.dev/httperr/apis"
	"dirpx.dev/httperr/status"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (both directions).
//  2. Apply user-provided options.
//  3. Validate statuses and class patterns.
//  4. Freeze all maps into fresh copies.
//
// Errors returned from this function indicate invalid statuses or class
// patterns in the options.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults; copied so callers cannot mutate them.
	maps.Copy(b.grpcDefaults, defaultGRPC)
	maps.Copy(b.httpDefaults, defaultHTTP)

	// (2) Apply options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	for st := range b.grpcDefaults {
		if !st.Valid() {
			return nil, fmt.Errorf("mapper: invalid HTTP status %d in gRPC defaults: %w", int(st), status.ErrStatusInvalid)
		}
	}
	for st := range b.grpcOverride {
		if !st.Valid() {
			return nil, fmt.Errorf("mapper: invalid HTTP status %d in gRPC overrides: %w", int(st), status.ErrStatusInvalid)
		}
	}
	for c, st := range b.httpDefaults {
		if !st.Valid() {
			return nil, fmt.Errorf("mapper: invalid HTTP status %d for code %s: %w", int(st), c, status.ErrStatusInvalid)
		}
	}
	for c, st := range b.httpOverride {
		if !st.Valid() {
			return nil, fmt.Errorf("mapper: invalid HTTP status %d for code %s: %w", int(st), c, status.ErrStatusInvalid)
		}
	}

	classes := maps.Clone(defaultClasses)
	patterns := make(map[string]string, len(defaultClasses)+len(b.classRules))
	for prefix := range defaultClasses {
		patterns[prefix] = prefix + strings.Repeat("x", 3-len(prefix))
	}
	for _, r := range b.classRules {
		prefix, err := classPrefix(r.pattern)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid class pattern %q: %w", r.pattern, err)
		}
		classes[prefix] = r.val
		patterns[prefix] = r.pattern
	}

	// (4) Freeze.
	return &mapper{
		grpcDefault:  maps.Clone(b.grpcDefaults),
		grpcOverride: maps.Clone(b.grpcOverride),
		classes:      classes,
		patterns:     patterns,
		httpDefault:  maps.Clone(b.httpDefaults),
		httpOverride: maps.Clone(b.httpOverride),
		fallbackGRPC: b.fallbackGRPC,
		fallbackHTTP: b.fallbackHTTP,
	}, nil
}

// Default returns a Mapper built from the library defaults only.
func Default() apis.Mapper {
	m, err := New()
	if err != nil {
		// Library defaults are static; failing here is a programming error.
		panic(err)
	}
	return m
}

// mapper is an immutable implementation of apis.Mapper. It is safe for
// concurrent use once constructed.
type mapper struct {
	// grpcDefault holds the base gRPC code for a given HTTP status.
	grpcDefault map[status.Status]codes.Code
	// grpcOverride holds explicit gRPC codes for specific statuses.
	grpcOverride map[status.Status]codes.Code
	// classes maps digit prefixes ("4", "42") to gRPC codes.
	classes map[string]codes.Code
	// patterns keeps the pattern each class was registered with, for Explain.
	patterns map[string]string

	// httpDefault holds the base HTTP status for a given gRPC code.
	httpDefault map[codes.Code]status.Status
	// httpOverride holds explicit HTTP statuses for specific codes.
	httpOverride map[codes.Code]status.Status

	fallbackGRPC codes.Code
	fallbackHTTP status.Status
}

// GRPCCode resolves the gRPC code for an HTTP status.
//
// Resolution order (highest to lowest):
//  1. exact per-status override;
//  2. per-status default (library or user overridden);
//  3. most specific class rule ("42x" before "4xx");
//  4. fallback (codes.Unknown unless configured).
func (m *mapper) GRPCCode(st status.Status) codes.Code {
	c, _, _ := m.resolveGRPC(st)
	return c
}

// HTTPStatus resolves the HTTP status for a gRPC code: override, then
// default, then fallback (500).
func (m *mapper) HTTPStatus(c codes.Code) status.Status {
	st, _ := m.resolveHTTP(c)
	return st
}

// Status resolves both transports for a single HTTP status. The HTTP half is
// the status itself, normalized to the default when out of range.
func (m *mapper) Status(st status.Status) apis.Status {
	st = st.OrDefault()
	return apis.Status{HTTP: st, GRPC: m.GRPCCode(st)}
}

// Explain produces a textual trace of how the mapper resolved the gRPC code
// for a status and which HTTP status that code maps back to.
//
// Example output:
//
//	status="422 Unprocessable Entity"
//	grpc: source=class pattern="42x" -> RESOURCEEXHAUSTED(8)
//	http: source=default -> 429
//
// Notes:
//   - grpc source ∈ {override | default | class | fallback}
//   - http source ∈ {override | default | fallback}
func (m *mapper) Explain(st status.Status) string {
	st = st.OrDefault()
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "status=%q\n", st.String())

	c, src, pat := m.resolveGRPC(st)
	if src == "class" {
		_, _ = fmt.Fprintf(&b, "grpc: source=class pattern=%q -> %s\n", pat, codeString(c))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s\n", src, codeString(c))
	}

	back, hsrc := m.resolveHTTP(c)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d", hsrc, back.Code())
	return b.String()
}

// resolveGRPC returns the code together with the tier that produced it and,
// for class matches, the pattern.
func (m *mapper) resolveGRPC(st status.Status) (codes.Code, string, string) {
	if v, ok := m.grpcOverride[st]; ok {
		return v, "override", ""
	}
	if v, ok := m.grpcDefault[st]; ok {
		return v, "default", ""
	}
	if st.Valid() {
		tok := st.Token()
		// Longest prefix first: "42" before "4".
		for n := 2; n >= 1; n-- {
			if v, ok := m.classes[tok[:n]]; ok {
				return v, "class", m.patterns[tok[:n]]
			}
		}
	}
	return m.fallbackGRPC, "fallback", ""
}

func (m *mapper) resolveHTTP(c codes.Code) (status.Status, string) {
	if v, ok := m.httpOverride[c]; ok {
		return v, "override"
	}
	if v, ok := m.httpDefault[c]; ok {
		return v, "default"
	}
	return m.fallbackHTTP, "fallback"
}

// classPrefix validates a class pattern and returns its digit prefix.
// Valid patterns are "Nxx" and "NNx" with N a digit and the first digit
// in 1..9; 'X' is accepted for 'x'.
func classPrefix(pattern string) (string, error) {
	if len(pattern) != 3 {
		return "", fmt.Errorf("want 3 characters")
	}
	p := strings.ToLower(pattern)
	n := strings.IndexByte(p, 'x')
	if n < 1 {
		return "", fmt.Errorf("want leading digits followed by 'x'")
	}
	for i := 0; i < n; i++ {
		if p[i] < '0' || p[i] > '9' {
			return "", fmt.Errorf("non-digit %q", p[i])
		}
	}
	if p[0] == '0' {
		return "", fmt.Errorf("class must start with 1-9")
	}
	if strings.Trim(p[n:], "x") != "" {
		return "", fmt.Errorf("digits after placeholder")
	}
	return p[:n], nil
}

// codeString renders a gRPC code as "NAME(n)".
func codeString(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
