package validation

import "github.com/goliatone/go-formwizard/pkg/model"

// InputGuard enforces constraints while the user types: a value breaking the
// pattern or max-length is rejected and the field reverts to the last value
// that passed. Each label tracks its own last valid value, starting empty.
type InputGuard struct {
	last map[string]string
}

// NewInputGuard returns an empty guard.
func NewInputGuard() *InputGuard {
	return &InputGuard{last: make(map[string]string)}
}

// Input checks field.Value. It returns the value the field should hold
// afterwards: the new value when accepted, otherwise the last valid one
// together with the reason.
func (g *InputGuard) Input(field model.FieldRecord) (string, *FieldError) {
	if g.last == nil {
		g.last = make(map[string]string)
	}
	if err := constraintError(field); err != nil {
		return g.last[field.Label], err
	}
	g.last[field.Label] = field.Value
	return field.Value, nil
}

// Last returns the last accepted value for label.
func (g *InputGuard) Last(label string) string {
	if g == nil {
		return ""
	}
	return g.last[label]
}

// Seed primes the last valid value, e.g. after values are restored.
func (g *InputGuard) Seed(label, value string) {
	if g.last == nil {
		g.last = make(map[string]string)
	}
	g.last[label] = value
}
