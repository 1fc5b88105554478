//nolint:revive // exported
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type Service struct {
	Handler http.Handler
	Path    string
}

func newCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{
			"Accept",
			"Accept-Encoding",
			"Accept-Post",
			"Connect-Accept-Encoding",
			"Connect-Content-Encoding",
			"Content-Encoding",
			"Grpc-Accept-Encoding",
			"Grpc-Encoding",
			"Grpc-Message",
			"Grpc-Status",
			"Grpc-Status-Details-Bin",
			"X-Request-Id",
		},
		MaxAge: int(time.Second),
	})
}

// NewHandler mounts every service on one mux behind CORS, serving HTTP/2
// without TLS.
func NewHandler(services []Service) http.Handler {
	mux := http.NewServeMux()
	for _, service := range services {
		slog.Info("Registering service", "path", service.Path)
		mux.Handle(service.Path, service.Handler)
	}
	return h2c.NewHandler(newCORS().Handler(mux), &http2.Server{
		IdleTimeout:          0,
		MaxConcurrentStreams: 100000,
		MaxHandlers:          0,
	})
}

// ListenServices serves until ctx is done, then drains in-flight calls for at
// most shutdownTimeout.
func ListenServices(ctx context.Context, addr string, services []Service) error {
	srv := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
		Handler:           NewHandler(services),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("Server shutting down")
	return srv.Shutdown(shutdownCtx)
}

const shutdownTimeout = 5 * time.Second
