// Package catalog holds the ordered, immutable list of pages that make up the
// form. Pages are addressed 1..N; the order defines the navigation sequence.
// Default returns the built-in two page catalog, while LoadFS and FromOpenAPI
// let callers describe the same shape in a YAML/JSON file or an OpenAPI
// document annotated with the x-formwizard extension.
package catalog
