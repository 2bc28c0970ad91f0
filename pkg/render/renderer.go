package render

import (
	"context"

	"github.com/goliatone/go-formwizard/pkg/catalog"
)

// Renderer produces one representation of a page catalog: the full wizard
// markup, or a machine-readable dump a loader can read back.
type Renderer interface {
	// Name is the key the renderer is registered under.
	Name() string
	// ContentType is sent with the rendered bytes over HTTP.
	ContentType() string
	Render(ctx context.Context, cat *catalog.Catalog, options RenderOptions) ([]byte, error)
}
