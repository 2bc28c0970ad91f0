package validation

import (
	"unicode/utf8"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// Gate checks the fields of the displayed page before the controller moves
// forward.
type Gate struct {
	policy Policy
}

// NewGate returns a gate applying the given policy.
func NewGate(policy Policy) *Gate {
	return &Gate{policy: policy}
}

// Policy reports the active policy.
func (g *Gate) Policy() Policy {
	if g == nil {
		return PolicyRequired
	}
	return g.policy
}

// Validate returns the first invalid field in document order, or nil when the
// page may be left. It never mutates its input or any answer state.
func (g *Gate) Validate(fields []model.FieldRecord) *FieldError {
	for pos, field := range fields {
		if err := g.check(field); err != nil {
			err.Position = pos
			return err
		}
	}
	return nil
}

// Commit writes the trimmed value of every field into answers keyed by label.
// Callers invoke it only after Validate succeeded for the same fields.
func (g *Gate) Commit(answers *model.SavedAnswers, fields []model.FieldRecord) {
	if answers == nil {
		return
	}
	for _, field := range fields {
		answers.Set(field.Label, field.Trimmed())
	}
}

func (g *Gate) check(field model.FieldRecord) *FieldError {
	trimmed := field.Trimmed()
	if field.Required && trimmed == "" {
		return &FieldError{Label: field.Label, Reason: ReasonRequired, Message: requiredMessage(field.Label)}
	}
	if g.Policy() != PolicyStrict {
		return nil
	}
	return constraintError(field)
}

// constraintError mirrors native input validity: an empty value always
// satisfies pattern and length.
func constraintError(field model.FieldRecord) *FieldError {
	if field.Value == "" {
		return nil
	}
	if field.Pattern != nil && !field.Pattern.MatchString(field.Value) {
		return &FieldError{Label: field.Label, Reason: ReasonPattern, Message: patternMessage()}
	}
	if field.MaxLength > 0 && utf8.RuneCountInString(field.Value) > field.MaxLength {
		return &FieldError{Label: field.Label, Reason: ReasonMaxLength, Message: maxLengthMessage(field.Label, field.MaxLength)}
	}
	return nil
}
