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
	"dirpx.dev/httperr/status"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithGRPCDefault sets or replaces the default gRPC code for an HTTP status.
func WithGRPCDefault(st status.Status, c codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[st] = c }
}

// WithGRPCOverride registers an exact gRPC code for an HTTP status.
// Overrides take precedence over everything else.
func WithGRPCOverride(st status.Status, c codes.Code) Option {
	return func(b *builder) { b.grpcOverride[st] = c }
}

// WithGRPCClass adds a rule for a family of statuses. The pattern is three
// characters of leading digits followed by 'x' placeholders, e.g. "4xx" or
// "42x". The most specific matching class wins. Class rules sit below
// exact defaults.
func WithGRPCClass(pattern string, c codes.Code) Option {
	return func(b *builder) { b.classRules = append(b.classRules, classRule{pattern, c}) }
}

// WithHTTPDefault sets or replaces the HTTP status a gRPC code maps back to.
func WithHTTPDefault(c codes.Code, st status.Status) Option {
	return func(b *builder) { b.httpDefaults[c] = st }
}

// WithHTTPOverride registers an exact HTTP status for a gRPC code.
func WithHTTPOverride(c codes.Code, st status.Status) Option {
	return func(b *builder) { b.httpOverride[c] = st }
}

// WithFallbackGRPC sets the code used when no rule matches a status.
// The library fallback is codes.Unknown.
func WithFallbackGRPC(c codes.Code) Option {
	return func(b *builder) { b.fallbackGRPC = c }
}
