// Package formwizard is the entry point for embedding the multi-page form
// wizard: it resolves catalogs, exposes the renderer registry and the
// embedded browser assets.
package formwizard

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/render"
	"github.com/goliatone/go-formwizard/pkg/renderers/vanilla"
)

// Catalog source formats understood by LoadCatalog.
const (
	FormatYAML    = "yaml"
	FormatOpenAPI = "openapi"
)

// RenderOptions aliases render.RenderOptions for callers of RenderHTML.
type RenderOptions = render.RenderOptions

// LoadCatalog resolves the page catalog. An empty path selects the built-in
// sign-up catalog; the openapi format reads pages from an OpenAPI document,
// anything else is parsed as a YAML or JSON catalog file.
func LoadCatalog(ctx context.Context, path, format string) (*catalog.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return catalog.Default(), nil
	}
	if !strings.EqualFold(strings.TrimSpace(format), FormatOpenAPI) {
		return catalog.LoadFile(path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formwizard: read %s: %w", path, err)
	}
	return catalog.FromOpenAPI(ctx, raw)
}

// NewRegistry returns a registry holding the built-in renderers.
func NewRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(render.NewJSONRenderer())

	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	return registry, nil
}

// Render renders cat with the renderer registered under name.
func Render(ctx context.Context, cat *catalog.Catalog, name string, opts RenderOptions) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	return registry.Render(ctx, name, cat, opts)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the stylesheet and browser runtime.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(formwizard.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
