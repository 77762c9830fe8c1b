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
	"errors"

	"dirpx.dev/httperr"
	"dirpx.dev/httperr/adapter"
	"dirpx.dev/httperr/apis"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps an
// *httperr.Error anywhere in a handler's error chain into a gRPC status.
//
// Other errors are returned as-is unless WithForeignErrors is given.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	o := buildOptions(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, o.convert(m, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, opts ...Option) grpc.StreamServerInterceptor {
	o := buildOptions(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return o.convert(m, err)
		}
		return nil
	}
}

// ToStatus converts e into a gRPC status with an ErrorInfo detail and, if
// requested, a DebugInfo detail.
func ToStatus(m apis.Mapper, e *httperr.Error, opts ...Option) *gstatus.Status {
	return buildOptions(opts).status(m, e)
}

func (o options) convert(m apis.Mapper, err error) error {
	var e *httperr.Error
	if !errors.As(err, &e) {
		if !o.foreign {
			return err
		}
		if _, ok := gstatus.FromError(err); ok {
			return err
		}
		e = httperr.From(err)
	}
	return o.status(m, e).Err()
}

func (o options) status(m apis.Mapper, e *httperr.Error) *gstatus.Status {
	base := gstatus.New(m.GRPCCode(e.Status()), e.Message())

	// Attach details; fall back to the bare status if that fails.
	var with *gstatus.Status
	var err error
	if o.debugInfo {
		with, err = base.WithDetails(adapter.ToErrorInfo(e), adapter.ToDebugInfo(e))
	} else {
		with, err = base.WithDetails(adapter.ToErrorInfo(e))
	}
	if err != nil {
		return base
	}
	return with
}
