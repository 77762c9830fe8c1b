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
	"fmt"
	"log/slog"

	"dirpx.dev/httperr"
	"dirpx.dev/httperr/apis"
	"dirpx.dev/httperr/codec"
	"dirpx.dev/httperr/status"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
)

// ServerOptions returns the interceptor chain for a gRPC server:
//
//	logging -> httperr conversion -> panic recovery -> handler
//
// A recovered panic becomes "500:Internal:panic: <value>" and is converted
// like any handler error. Foreign errors are always converted; opts may add
// WithDebugInfo.
func ServerOptions(logger *slog.Logger, m apis.Mapper, opts ...Option) []grpc.ServerOption {
	if logger == nil {
		logger = slog.Default()
	}
	opts = append([]Option{WithForeignErrors()}, opts...)

	lg := InterceptorLogger(logger)
	logOpts := []logging.Option{logging.WithLogOnEvents(logging.FinishCall)}
	recOpts := []recovery.Option{recovery.WithRecoveryHandlerContext(recoverPanic)}

	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(lg, logOpts...),
			UnaryServerInterceptor(m, opts...),
			recovery.UnaryServerInterceptor(recOpts...),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(lg, logOpts...),
			StreamServerInterceptor(m, opts...),
			recovery.StreamServerInterceptor(recOpts...),
		),
	}
}

// InterceptorLogger adapts a slog.Logger to the go-grpc-middleware logging
// interface. The logging levels share slog's numeric values.
func InterceptorLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(_ context.Context, p any) error {
	return httperr.New(codec.Encode(status.InternalServerError, codec.DefaultDomain, fmt.Sprintf("panic: %v", p)))
}
