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

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"dirpx.dev/httperr"
	"dirpx.dev/httperr/apis"
	"dirpx.dev/httperr/grpcx"
	"dirpx.dev/httperr/httpx"
	"dirpx.dev/httperr/internal/config"
	"dirpx.dev/httperr/internal/logx"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the demo HTTP server and, if enabled, the gRPC server",
		Long: `serve starts an HTTP server with the endpoints

  GET /healthz           liveness probe
  GET /parse?value=N     parses N as an unsigned integer
  GET /fail?encoded=E    fails with the encoded message E

Errors are rendered with the configured response variant and logged. With
grpc.enabled the gRPC health service is served as well, behind the httperr
interceptor chain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			m, err := newMapper(cfg)
			if err != nil {
				return err
			}
			logger := logx.New(os.Stderr, cfg.Log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, m, logger)
		},
	}
}

// newMux wires the demo endpoints.
func newMux(w httpx.Writer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(rw http.ResponseWriter, _ *http.Request) {
		_, _ = rw.Write([]byte("ok\n"))
	})
	mux.Handle("GET /parse", httpx.Handler(w, func(rw http.ResponseWriter, r *http.Request) error {
		n, err := httperr.Result(strconv.ParseUint(r.URL.Query().Get("value"), 10, 64)).
			Context("400:Input:That was NOT a usize!")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(rw, "%d\n", n)
		return err
	}))
	mux.Handle("GET /fail", httpx.Handler(w, func(_ http.ResponseWriter, r *http.Request) error {
		return httperr.New(r.URL.Query().Get("encoded"))
	}))
	return mux
}

func serve(ctx context.Context, cfg *config.Config, m apis.Mapper, logger *slog.Logger) error {
	w := httpx.Writer{Variant: cfg.HTTP.ParsedVariant(), Logger: logger}
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           newMux(w),
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout.Duration,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errChan := make(chan error, 2)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTP.Addr, "variant", w.Variant.String())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http: %w", err)
		}
	}()

	var grpcSrv *grpc.Server
	if cfg.GRPC.Enabled {
		lis, err := net.Listen("tcp", cfg.GRPC.Addr)
		if err != nil {
			_ = httpSrv.Close()
			return fmt.Errorf("grpc: failed to listen: %w", err)
		}

		var opts []grpcx.Option
		if cfg.GRPC.DebugInfo {
			opts = append(opts, grpcx.WithDebugInfo())
		}
		grpcSrv = grpc.NewServer(grpcx.ServerOptions(logger, m, opts...)...)

		healthServer := health.NewServer()
		grpc_health_v1.RegisterHealthServer(grpcSrv, healthServer)
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		reflection.Register(grpcSrv)

		go func() {
			logger.Info("grpc server starting", "addr", cfg.GRPC.Addr)
			if err := grpcSrv.Serve(lis); err != nil {
				errChan <- fmt.Errorf("grpc: failed to serve: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errChan:
		shutdown(httpSrv, grpcSrv, cfg.HTTP.ShutdownTimeout.Duration, logger)
		return err
	}
	shutdown(httpSrv, grpcSrv, cfg.HTTP.ShutdownTimeout.Duration, logger)
	return nil
}

// shutdown stops both servers, forcing them closed once timeout passes.
func shutdown(httpSrv *http.Server, grpcSrv *grpc.Server, timeout time.Duration, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Warn("http graceful shutdown failed, closing", "error", err)
		_ = httpSrv.Close()
	}

	if grpcSrv == nil {
		return
	}
	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-ctx.Done():
		logger.Warn("grpc graceful shutdown timeout exceeded, forcing stop")
		grpcSrv.Stop()
	case <-stopped:
		logger.Info("servers stopped gracefully")
	}
}
