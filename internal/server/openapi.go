package server

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPISource []byte

// OpenAPI loads and validates the description of the HTTP surface and
// returns it as JSON.
func OpenAPI(ctx context.Context) ([]byte, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISource)
	if err != nil {
		return nil, fmt.Errorf("server: load openapi: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("server: validate openapi: %w", err)
	}
	out, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("server: encode openapi: %w", err)
	}
	return out, nil
}
