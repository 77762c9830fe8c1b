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

type classRule struct {
	// pattern is the raw class pattern, e.g. "4xx". It is validated when
	// the mapper is built.
	pattern string
	val     codes.Code
}

type builder struct {
	// grpcDefaults holds per-status gRPC codes, seeded from defaultGRPC.
	grpcDefaults map[status.Status]codes.Code
	// grpcOverride holds exact per-status gRPC overrides.
	grpcOverride map[status.Status]codes.Code
	// classRules holds user class rules in registration order; later rules
	// for the same pattern win.
	classRules []classRule

	// httpDefaults holds per-code HTTP statuses, seeded from defaultHTTP.
	httpDefaults map[codes.Code]status.Status
	// httpOverride holds exact per-code HTTP overrides.
	httpOverride map[codes.Code]status.Status

	// global fallbacks used when nothing matches.
	fallbackGRPC codes.Code
	fallbackHTTP status.Status
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		grpcDefaults: make(map[status.Status]codes.Code, len(defaultGRPC)),
		grpcOverride: make(map[status.Status]codes.Code),
		httpDefaults: make(map[codes.Code]status.Status, len(defaultHTTP)),
		httpOverride: make(map[codes.Code]status.Status),

		fallbackGRPC: codes.Unknown,
		fallbackHTTP: status.Default,
	}
}
