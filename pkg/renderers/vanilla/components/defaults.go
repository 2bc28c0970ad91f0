package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-formwizard/pkg/model"
)

const templatePrefix = "templates/components/"

// Theme partial keys that can replace the built-in control templates.
const (
	PartialInput  = "forms.input"
	PartialSelect = "forms.select"
)

// NewDefaultRegistry maps every field kind to its built-in control.
func NewDefaultRegistry() *Registry {
	registry := New()
	registry.MustRegister(model.FieldKindText, templateControl(PartialInput, "input.tpl", "text"))
	registry.MustRegister(model.FieldKindDate, templateControl(PartialInput, "input.tpl", "date"))
	registry.MustRegister(model.FieldKindNumber, templateControl(PartialInput, "input.tpl", "number"))
	registry.MustRegister(model.FieldKindSelect, templateControl(PartialSelect, "select.tpl", ""))
	return registry
}

// templateControl renders a component template. A theme partial registered
// under partialKey takes precedence over the built-in file.
func templateControl(partialKey, file, inputType string) Control {
	return func(buf *bytes.Buffer, field Field, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: no template engine for %s", file)
		}
		name := templatePrefix + file
		if partial := strings.TrimSpace(data.ThemePartials[partialKey]); partial != "" {
			name = partial
		}
		_, err := data.Template.RenderTemplate(name, map[string]any{
			"field":      field,
			"value":      data.Value,
			"input_type": inputType,
		}, buf)
		if err != nil {
			return fmt.Errorf("components: render %s: %w", name, err)
		}
		return nil
	}
}
