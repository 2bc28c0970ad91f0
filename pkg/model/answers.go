package model

import "sort"

// SavedAnswers accumulates the trimmed values accepted on forward navigation,
// keyed by field label. The zero value is ready to use.
type SavedAnswers struct {
	values map[string]string
	order  []string
}

// NewSavedAnswers seeds the store with prefilled values.
func NewSavedAnswers(prefill map[string]string) *SavedAnswers {
	answers := &SavedAnswers{}
	keys := make([]string, 0, len(prefill))
	for key := range prefill {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		answers.Set(key, prefill[key])
	}
	return answers
}

// Set records the accepted value for label, overwriting any previous value.
func (a *SavedAnswers) Set(label, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, exists := a.values[label]; !exists {
		a.order = append(a.order, label)
	}
	a.values[label] = value
}

// Get returns the accepted value for label.
func (a *SavedAnswers) Get(label string) (string, bool) {
	if a == nil || a.values == nil {
		return "", false
	}
	value, ok := a.values[label]
	return value, ok
}

// Len reports how many labels hold an accepted value.
func (a *SavedAnswers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Labels returns the labels in first-accepted order.
func (a *SavedAnswers) Labels() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.order...)
}

// Snapshot returns a copy of the accepted values.
func (a *SavedAnswers) Snapshot() map[string]string {
	out := make(map[string]string, a.Len())
	if a == nil {
		return out
	}
	for key, value := range a.values {
		out[key] = value
	}
	return out
}
