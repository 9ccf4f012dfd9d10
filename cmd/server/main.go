package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/hello-service/internal/http/health"
	"github.com/janisto/hello-service/internal/http/v1/routes"
	"github.com/janisto/hello-service/internal/platform/config"
	applog "github.com/janisto/hello-service/internal/platform/logging"
	appmiddleware "github.com/janisto/hello-service/internal/platform/middleware"
	"github.com/janisto/hello-service/internal/platform/respond"
	hellosvc "github.com/janisto/hello-service/internal/service/hello"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	apiTitle       = "Hello Service API"
	maxRequestBody = 1 << 20 // 1 MB
)

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "config load failed", err)
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogWarn(context.Background(), "ignoring LOG_LEVEL", zap.String("value", cfg.LogLevel), zap.Error(err))
	}

	handler, _ := newRouter(cfg, hellosvc.NewService())
	srv := newServer(cfg, handler)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		applog.LogFatal(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := serve(ctx, srv, ln, cfg.ShutdownTimeout); err != nil {
		applog.LogFatal(context.Background(), "server error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// newRouter assembles the middleware stack, the health probe and the documented API.
func newRouter(cfg config.Config, helloService hellosvc.Service) (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(cfg.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// SECURITY: RealIP trusts X-Real-IP and X-Forwarded-For. Only deploy behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxRequestBody),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler)

	humaCfg := huma.DefaultConfig(apiTitle, Version)
	humaCfg.DocsPath = cfg.DocsPath
	// Bodies are sent exactly as modelled, without a $schema link.
	humaCfg.CreateHooks = nil
	api := humachi.New(router, humaCfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)

	routes.Register(api, helloService)
	return router, api
}

// addCBORContent documents application/cbor wherever an operation accepts or returns JSON.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

func newServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// serve runs srv on ln until ctx is done, then drains in-flight requests for at most timeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
