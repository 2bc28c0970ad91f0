package render

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/model"
)

// JSONRenderer emits the catalog in the same document shape catalog.LoadFS
// reads, so its output can be saved and loaded back.
type JSONRenderer struct{}

// NewJSONRenderer returns the catalog JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (JSONRenderer) Name() string { return "json" }

func (JSONRenderer) ContentType() string { return "application/json" }

func (JSONRenderer) Render(_ context.Context, cat *catalog.Catalog, _ RenderOptions) ([]byte, error) {
	if cat == nil {
		return nil, fmt.Errorf("render: catalog is nil")
	}
	payload := struct {
		Pages []model.Page `json:"pages"`
	}{Pages: cat.Pages()}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: encode catalog: %w", err)
	}
	return append(out, '\n'), nil
}
