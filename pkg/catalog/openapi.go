package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// ExtensionKey is the operation-level extension marking an operation as a
// form page. Its value is an object with page, title, description and an
// optional order list naming the request properties in display order.
const ExtensionKey = "x-formwizard"

// LabelExtensionKey overrides the derived label on a request property.
const LabelExtensionKey = "x-formwizard-label"

type openAPIPage struct {
	index int
	page  model.Page
}

// FromOpenAPI builds a catalog from an OpenAPI 3 document. Every operation
// carrying the x-formwizard extension becomes a page; its JSON request body
// properties become the page fields.
func FromOpenAPI(ctx context.Context, raw []byte) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("catalog: openapi document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: load openapi document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("catalog: openapi document does not contain any paths")
	}

	var collected []openAPIPage
	seen := make(map[int]string)
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			entry, ok, err := pageFromOperation(operation)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s %s: %w", method, path, err)
			}
			if !ok {
				continue
			}
			if owner, exists := seen[entry.index]; exists {
				return nil, fmt.Errorf("catalog: page %d declared by both %q and %q", entry.index, owner, entry.page.ID)
			}
			seen[entry.index] = entry.page.ID
			collected = append(collected, entry)
		}
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	pages := make([]model.Page, 0, len(collected))
	for pos, entry := range collected {
		if entry.index != pos+1 {
			return nil, fmt.Errorf("catalog: page indices must be contiguous from 1, missing page %d", pos+1)
		}
		pages = append(pages, sanitizePage(entry.page))
	}

	return New(pages...)
}

func pageFromOperation(operation *openapi3.Operation) (openAPIPage, bool, error) {
	if operation == nil {
		return openAPIPage{}, false, nil
	}
	ext, ok := operation.Extensions[ExtensionKey].(map[string]any)
	if !ok {
		return openAPIPage{}, false, nil
	}

	index, ok := intValue(ext["page"])
	if !ok || index < 1 {
		return openAPIPage{}, false, fmt.Errorf("%s.page must be a positive integer", ExtensionKey)
	}

	id := strings.TrimSpace(operation.OperationID)
	title := stringValue(ext["title"])
	if title == "" {
		title = operation.Summary
	}
	description := stringValue(ext["description"])
	if description == "" {
		description = operation.Description
	}

	fields, err := fieldsFromRequest(operation.RequestBody, stringList(ext["order"]))
	if err != nil {
		return openAPIPage{}, false, err
	}

	return openAPIPage{
		index: index,
		page: model.Page{
			PageDescriptor: model.PageDescriptor{ID: id, Title: title, Description: description},
			Fields:         fields,
		},
	}, true, nil
}

func fieldsFromRequest(body *openapi3.RequestBodyRef, order []string) ([]model.FieldSpec, error) {
	if body == nil || body.Value == nil {
		return nil, nil
	}
	media := body.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, nil
	}
	schema := media.Schema.Value

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := orderedProperties(schema.Properties, order)
	fields := make([]model.FieldSpec, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("property %q is unresolved", name)
		}
		fields = append(fields, fieldFromSchema(name, ref.Value, required[name]))
	}
	return fields, nil
}

func fieldFromSchema(name string, prop *openapi3.Schema, required bool) model.FieldSpec {
	label := stringValue(prop.Extensions[LabelExtensionKey])
	if label == "" {
		label = model.DefaultLabeler(name)
	}

	field := model.FieldSpec{
		Name:        name,
		Label:       label,
		Kind:        model.FieldKindText,
		Required:    required,
		Pattern:     prop.Pattern,
		Placeholder: prop.Title,
	}
	if prop.MaxLength != nil {
		field.MaxLength = int(*prop.MaxLength)
	}

	switch {
	case len(prop.Enum) > 0:
		field.Kind = model.FieldKindSelect
		for _, option := range prop.Enum {
			field.Options = append(field.Options, fmt.Sprint(option))
		}
	case prop.Format == "date":
		field.Kind = model.FieldKindDate
	case hasType(prop.Type, "integer"), hasType(prop.Type, "number"):
		field.Kind = model.FieldKindNumber
	}
	return field
}

func orderedProperties(props openapi3.Schemas, order []string) []string {
	names := make([]string, 0, len(props))
	placed := make(map[string]bool, len(props))
	for _, name := range order {
		if _, ok := props[name]; ok && !placed[name] {
			names = append(names, name)
			placed[name] = true
		}
	}
	var rest []string
	for name := range props {
		if !placed[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func hasType(types *openapi3.Types, want string) bool {
	if types == nil {
		return false
	}
	for _, value := range types.Slice() {
		if value == want {
			return true
		}
	}
	return false
}

func intValue(value any) (int, bool) {
	switch typed := value.(type) {
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case float64:
		if typed != float64(int(typed)) {
			return 0, false
		}
		return int(typed), true
	default:
		return 0, false
	}
}

func stringValue(value any) string {
	text, _ := value.(string)
	return strings.TrimSpace(text)
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if text := stringValue(item); text != "" {
			out = append(out, text)
		}
	}
	return out
}
