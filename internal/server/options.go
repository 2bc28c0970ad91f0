package server

import (
	"time"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/render"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger. Sessions log through children of it.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPolicy selects the validation policy for new sessions.
func WithPolicy(policy validation.Policy) Option {
	return func(s *Server) {
		s.policy = policy
	}
}

// WithRenderer replaces the HTML renderer used by GET /form.
func WithRenderer(renderer render.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithTheme passes resolved theme tokens to the renderer.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(s *Server) {
		s.theme = cfg
	}
}

// WithSessionTTL sets how long an idle session is kept. Zero disables expiry.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) {
		if ttl >= 0 {
			s.sessionTTL = ttl
		}
	}
}
