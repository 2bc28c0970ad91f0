package validation

import "fmt"

// Reason classifies why a field was rejected.
type Reason string

const (
	ReasonRequired  Reason = "required"
	ReasonPattern   Reason = "pattern"
	ReasonMaxLength Reason = "maxLength"
)

// FieldError identifies the first invalid field of a page. It is a
// user-correctable condition rather than a system failure, but implements
// error so callers can log or wrap it.
type FieldError struct {
	Label   string
	Reason  Reason
	Message string
	// Position is the zero-based index of the field in document order.
	Position int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation: field %q: %s", e.Label, e.Message)
}

func requiredMessage(label string) string {
	return "Enter " + label
}

func patternMessage() string {
	return "Doesn't match pattern."
}

func maxLengthMessage(label string, limit int) string {
	return fmt.Sprintf("Enter a %s less than %d", label, limit)
}
