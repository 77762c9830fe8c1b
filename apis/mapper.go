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

package apis

//go:generate mockgen -destination=mock/mock_mapper.go -package=apismock dirpx.dev/httperr/apis Mapper

import (
	"dirpx.dev/httperr/status"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe translation between HTTP statuses
// and gRPC status codes.
type Mapper interface {
	// GRPCCode returns the gRPC code used to report an error with the given
	// HTTP status.
	GRPCCode(st status.Status) codes.Code

	// HTTPStatus returns the HTTP status used to rebuild an error from a
	// gRPC code, e.g. on the client side.
	HTTPStatus(c codes.Code) status.Status

	// Status resolves both transports in a single call.
	Status(st status.Status) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(st status.Status) string
}

// Status represents a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP status.Status // Resolved HTTP status.
	GRPC codes.Code    // Resolved gRPC status code.
}
