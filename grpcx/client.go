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

package grpcx

import (
	"context"

	"dirpx.dev/httperr"
	"dirpx.dev/httperr/adapter"
	"dirpx.dev/httperr/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// FromError rebuilds an *httperr.Error from a gRPC error. The status and
// domain come from an ErrorInfo detail when present; otherwise the HTTP
// status is resolved from the gRPC code with m and the domain is
// "Internal". The original gRPC error becomes the cause.
//
// It reports false for nil errors and errors that are not gRPC statuses.
func FromError(m apis.Mapper, err error) (*httperr.Error, bool) {
	s, ok := gstatus.FromError(err)
	if !ok || s.Code() == codes.OK {
		return nil, false
	}
	info := ExtractErrorInfo(s)
	encoded := adapter.FromErrorInfo(info, s.Message(), m.HTTPStatus(s.Code()))
	return httperr.New(encoded, httperr.WithCause(err), httperr.WithCallerSkip(1)), true
}

// ExtractErrorInfo returns the first ErrorInfo detail of s, or nil.
func ExtractErrorInfo(s *gstatus.Status) *errdetails.ErrorInfo {
	for _, d := range s.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	return nil
}

// ExtractDebugInfo returns the first DebugInfo detail of s, or nil.
func ExtractDebugInfo(s *gstatus.Status) *errdetails.DebugInfo {
	for _, d := range s.Details() {
		if info, ok := d.(*errdetails.DebugInfo); ok {
			return info
		}
	}
	return nil
}

// UnaryClientInterceptor returns a client interceptor that replaces gRPC
// status errors with the *httperr.Error FromError rebuilds.
func UnaryClientInterceptor(m apis.Mapper) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if e, ok := FromError(m, err); ok {
			return e
		}
		return err
	}
}
