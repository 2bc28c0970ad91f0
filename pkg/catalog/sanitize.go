package catalog

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formwizard/pkg/model"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup from externally supplied copy. Entities produced
// by the policy are decoded again because templates escape on output.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(trimmed)))
}

func sanitizePage(page model.Page) model.Page {
	page.ID = sanitizeText(page.ID)
	page.Title = sanitizeText(page.Title)
	page.Description = sanitizeText(page.Description)

	fields := make([]model.FieldSpec, len(page.Fields))
	for idx, field := range page.Fields {
		field.Label = sanitizeText(field.Label)
		field.Placeholder = sanitizeText(field.Placeholder)
		options := make([]string, 0, len(field.Options))
		for _, option := range field.Options {
			if cleaned := sanitizeText(option); cleaned != "" {
				options = append(options, cleaned)
			}
		}
		if len(options) == 0 {
			options = nil
		}
		field.Options = options
		fields[idx] = field
	}
	page.Fields = fields
	return page
}
