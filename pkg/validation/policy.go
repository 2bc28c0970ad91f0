package validation

import (
	"fmt"
	"strings"
)

// Policy selects how strictly fields are checked.
type Policy int

const (
	// PolicyRequired only rejects required fields left blank, checked when
	// the user asks for the next page.
	PolicyRequired Policy = iota
	// PolicyStrict additionally enforces pattern and max-length constraints
	// and enables real-time input correction.
	PolicyStrict
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyRequired:
		return "required"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy resolves a configuration value ("required", "strict"). An empty
// value selects PolicyRequired.
func ParsePolicy(raw string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "required", "current":
		return PolicyRequired, nil
	case "strict", "legacy":
		return PolicyStrict, nil
	default:
		return PolicyRequired, fmt.Errorf("validation: unknown policy %q", raw)
	}
}
