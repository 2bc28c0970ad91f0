package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/render"
	"github.com/goliatone/go-formwizard/pkg/renderers/vanilla"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// FormPath is where the form is served.
const FormPath = "/form"

const (
	defaultSessionTTL = 30 * time.Minute
	sweepInterval     = time.Minute
)

// Server serves one catalog to any number of browser sessions.
type Server struct {
	catalog    *catalog.Catalog
	renderer   render.Renderer
	policy     validation.Policy
	theme      *theme.RendererConfig
	logger     *zap.Logger
	sessions   *sessionStore
	sessionTTL time.Duration
	openapi    []byte
	handler    http.Handler
}

// New builds a server for cat. The vanilla renderer is used unless another
// one is supplied.
func New(cat *catalog.Catalog, opts ...Option) (*Server, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, errors.New("server: catalog is empty")
	}
	s := &Server{
		catalog:    cat,
		policy:     validation.PolicyRequired,
		logger:     zap.NewNop(),
		sessions:   newSessionStore(),
		sessionTTL: defaultSessionTTL,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.renderer == nil {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		s.renderer = renderer
	}

	spec, err := OpenAPI(context.Background())
	if err != nil {
		return nil, err
	}
	s.openapi = spec

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+FormPath, s.handleForm)
	mux.HandleFunc("POST /api/next", s.handleNext)
	mux.HandleFunc("POST /api/popstate", s.handlePopState)
	mux.HandleFunc("POST /api/input", s.handleInput)
	mux.HandleFunc("GET /api/openapi.json", s.handleOpenAPI)
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(vanilla.AssetsFS())))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.handler = mux
	return s, nil
}

// Handler returns the routes.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on addr until ctx is cancelled, then shuts down within grace.
func (s *Server) Run(ctx context.Context, addr string, grace time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, grace)
}

// Serve accepts connections on ln until ctx is cancelled. Idle sessions are
// swept in the background for as long as the server runs.
func (s *Server) Serve(ctx context.Context, ln net.Listener, grace time.Duration) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Info("formwizard listening", zap.String("addr", ln.Addr().String()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		s.logger.Info("shutting down", zap.Duration("grace", grace))
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		s.sweepLoop(groupCtx)
		return nil
	})
	return group.Wait()
}

func (s *Server) sweepLoop(ctx context.Context) {
	if s.sessionTTL <= 0 {
		return
	}
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sessions.sweep(s.sessionTTL); removed > 0 {
				s.logger.Debug("expired sessions", zap.Int("count", removed))
			}
		}
	}
}
