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

// defaultGRPC maps well-known HTTP statuses to canonical gRPC codes. These
// are only defaults: callers may override them when building a Mapper.
var defaultGRPC = map[status.Status]codes.Code{
	// 4xx: client, protocol and resource issues.
	status.BadRequest:          codes.InvalidArgument,
	status.Unauthorized:        codes.Unauthenticated,
	status.Forbidden:           codes.PermissionDenied,
	status.NotFound:            codes.NotFound,
	status.Gone:                codes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.
	status.MethodNotAllowed:    codes.Unimplemented,
	status.RequestTimeout:      codes.DeadlineExceeded,
	status.Conflict:            codes.Aborted,
	status.PreconditionFailed:  codes.FailedPrecondition,
	status.TooManyRequests:     codes.ResourceExhausted,
	status.ClientClosedRequest: codes.Canceled,

	// 5xx: server and dependency failures.
	status.InternalServerError: codes.Internal,
	status.NotImplemented:      codes.Unimplemented,
	status.BadGateway:          codes.Unavailable,
	status.ServiceUnavailable:  codes.Unavailable,
	status.GatewayTimeout:      codes.DeadlineExceeded,
}

// defaultClasses maps status classes to gRPC codes for statuses without an
// exact rule. Keys are digit prefixes: "4" stands for 4xx.
var defaultClasses = map[string]codes.Code{
	"4": codes.FailedPrecondition,
	"5": codes.Internal,
}

// defaultHTTP maps gRPC codes back to HTTP statuses, following the mapping
// used by grpc-gateway.
var defaultHTTP = map[codes.Code]status.Status{
	codes.OK:                 status.OK,
	codes.Canceled:           status.ClientClosedRequest,
	codes.Unknown:            status.InternalServerError,
	codes.InvalidArgument:    status.BadRequest,
	codes.DeadlineExceeded:   status.GatewayTimeout,
	codes.NotFound:           status.NotFound,
	codes.AlreadyExists:      status.Conflict,
	codes.PermissionDenied:   status.Forbidden,
	codes.Unauthenticated:    status.Unauthorized,
	codes.ResourceExhausted:  status.TooManyRequests,
	codes.FailedPrecondition: status.BadRequest,
	codes.Aborted:            status.Conflict,
	codes.OutOfRange:         status.BadRequest,
	codes.Unimplemented:      status.NotImplemented,
	codes.Internal:           status.InternalServerError,
	codes.Unavailable:        status.ServiceUnavailable,
	codes.DataLoss:           status.InternalServerError,
}
