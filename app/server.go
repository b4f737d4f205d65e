package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mytheresa/product-categories/app/catalog"
	"github.com/mytheresa/product-categories/app/categories"
	"github.com/mytheresa/product-categories/app/users"
)

const shutdownTimeout = 10 * time.Second

// Provider is everything the HTTP API reads from.
type Provider interface {
	catalog.RowProvider
	categories.CategoryProvider
	users.UserProvider
}

// NewRouter wires the catalog API onto a fresh mux.
func NewRouter(p Provider, log *zap.Logger) http.Handler {
	catalogHandler := catalog.NewCatalogHandler(p, log.With(zap.String("component", "catalog")))
	categoryHandler := categories.NewCategoryHandler(p, log.With(zap.String("component", "categories")))
	userHandler := users.NewUserHandler(p, log.With(zap.String("component", "users")))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /catalog/{id}", catalogHandler.HandleGetProduct)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /users", userHandler.HandleGetAll)

	return logRequests(log.With(zap.String("component", "http")), mux)
}

// Serve runs the API on ln until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Info("server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
