package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwizard/pkg/validation"
)

// Endpoints are the routes the browser runtime talks to.
type Endpoints struct {
	Next     string `json:"next"`
	PopState string `json:"popstate"`
	Input    string `json:"input"`
}

// DefaultEndpoints matches the routes mounted by the HTTP server.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Next:     "/api/next",
		PopState: "/api/popstate",
		Input:    "/api/input",
	}
}

// RenderOptions carry per-request data that does not belong to the catalog.
type RenderOptions struct {
	// Values pre-populates inputs keyed by field label.
	Values map[string]string
	// Policy controls whether the runtime forwards keystrokes for real-time
	// correction.
	Policy validation.Policy
	// Endpoints overrides the API routes; zero values fall back to
	// DefaultEndpoints.
	Endpoints Endpoints
	// Theme carries resolved design tokens, when a theme is configured.
	Theme *theme.RendererConfig
}

// ResolvedEndpoints fills blank routes with their defaults.
func (o RenderOptions) ResolvedEndpoints() Endpoints {
	defaults := DefaultEndpoints()
	out := o.Endpoints
	if out.Next == "" {
		out.Next = defaults.Next
	}
	if out.PopState == "" {
		out.PopState = defaults.PopState
	}
	if out.Input == "" {
		out.Input = defaults.Input
	}
	return out
}
