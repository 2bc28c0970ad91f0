package model

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldRecord is the transient view of one input as currently displayed. It
// is rebuilt from the document every time a page is checked and never
// persisted across pages.
type FieldRecord struct {
	Label     string
	Value     string
	Required  bool
	Pattern   *regexp.Regexp
	MaxLength int
}

// Trimmed returns the value with surrounding whitespace removed, the form in
// which answers are accepted.
func (r FieldRecord) Trimmed() string {
	return strings.TrimSpace(r.Value)
}

// Record builds a FieldRecord for the spec carrying the supplied value.
func (s FieldSpec) Record(value string) (FieldRecord, error) {
	pattern, err := CompilePattern(s.Pattern)
	if err != nil {
		return FieldRecord{}, fmt.Errorf("model: field %q: %w", s.Label, err)
	}
	return FieldRecord{
		Label:     s.Label,
		Value:     value,
		Required:  s.Required,
		Pattern:   pattern,
		MaxLength: s.MaxLength,
	}, nil
}

// CompilePattern compiles an HTML-style pattern attribute. The expression is
// anchored so it must match the entire value. An empty pattern yields nil.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return nil, nil
	}
	compiled, err := regexp.Compile("^(?:" + trimmed + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", trimmed, err)
	}
	return compiled, nil
}
