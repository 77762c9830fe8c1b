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

import "net/http"

// UnknownText stands in for the reason phrase of unregistered codes.
const UnknownText = "<unknown status code>"

// reasons overrides net/http phrases that predate RFC 9110.
var reasons = map[Status]string{
	http.StatusRequestEntityTooLarge:        "Payload Too Large",
	http.StatusRequestURITooLong:            "URI Too Long",
	http.StatusRequestedRangeNotSatisfiable: "Range Not Satisfiable",
}

// Default is the status reported whenever none is given or the given token
// is not a valid status code.
const Default = InternalServerError

// Client errors commonly carried by encoded messages.
const (
	BadRequest          Status = http.StatusBadRequest
	Unauthorized        Status = http.StatusUnauthorized
	Forbidden           Status = http.StatusForbidden
	NotFound            Status = http.StatusNotFound
	MethodNotAllowed    Status = http.StatusMethodNotAllowed
	RequestTimeout      Status = http.StatusRequestTimeout
	Conflict            Status = http.StatusConflict
	Gone                Status = http.StatusGone
	PreconditionFailed  Status = http.StatusPreconditionFailed
	UnprocessableEntity Status = http.StatusUnprocessableEntity
	TooManyRequests     Status = http.StatusTooManyRequests

	// ClientClosedRequest is the non-standard nginx status for a request
	// the client abandoned.
	ClientClosedRequest Status = 499
)

// Server errors.
const (
	InternalServerError Status = http.StatusInternalServerError
	NotImplemented      Status = http.StatusNotImplemented
	BadGateway          Status = http.StatusBadGateway
	ServiceUnavailable  Status = http.StatusServiceUnavailable
	GatewayTimeout      Status = http.StatusGatewayTimeout
)

// OK is occasionally useful for mapping gRPC codes.OK back to HTTP.
const OK Status = http.StatusOK
