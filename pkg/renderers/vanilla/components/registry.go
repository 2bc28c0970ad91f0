// Package components renders the control markup of a single page field.
package components

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-formwizard/pkg/model"
	rendertemplate "github.com/goliatone/go-formwizard/pkg/render/template"
)

// Field is the view of one input handed to controls.
type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Kind        string   `json:"kind"`
	Required    bool     `json:"required"`
	Pattern     string   `json:"pattern,omitempty"`
	MaxLength   int      `json:"max_length,omitempty"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	ControlID   string   `json:"control_id"`
}

// Control writes the markup of a field into buf.
type Control func(buf *bytes.Buffer, field Field, data ComponentData) error

// ComponentData carries the template engine and per-render values.
type ComponentData struct {
	Template      rendertemplate.TemplateRenderer
	Value         string
	ThemePartials map[string]string
}

// Registry maps field kinds to controls. Kinds without a control of their
// own render as text inputs.
type Registry struct {
	mu       sync.RWMutex
	controls map[model.FieldKind]Control
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{controls: make(map[model.FieldKind]Control)}
}

// ErrDuplicateKind is returned when a kind already has a control.
var ErrDuplicateKind = errors.New("components: kind already registered")

// Register sets the control for kind. Use Override to swap an existing one.
func (r *Registry) Register(kind model.FieldKind, control Control) error {
	if kind == "" || control == nil {
		return fmt.Errorf("components: kind and control required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.controls[kind]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	r.controls[kind] = control
	return nil
}

// Override replaces the control for kind, registering it if absent.
func (r *Registry) Override(kind model.FieldKind, control Control) error {
	if kind == "" || control == nil {
		return fmt.Errorf("components: kind and control required")
	}
	r.mu.Lock()
	r.controls[kind] = control
	r.mu.Unlock()
	return nil
}

// MustRegister is Register for init-time wiring.
func (r *Registry) MustRegister(kind model.FieldKind, control Control) {
	if err := r.Register(kind, control); err != nil {
		panic(err)
	}
}

// Control returns the control used for kind.
func (r *Registry) Control(kind model.FieldKind) (Control, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if control, ok := r.controls[kind]; ok {
		return control, true
	}
	control, ok := r.controls[model.FieldKindText]
	return control, ok
}

// Render writes the markup of field into buf.
func (r *Registry) Render(buf *bytes.Buffer, field Field, data ComponentData) error {
	control, ok := r.Control(model.FieldKind(field.Kind))
	if !ok {
		return fmt.Errorf("components: no control for kind %q", field.Kind)
	}
	return control(buf, field, data)
}
