// Package validation implements the gate that guards forward navigation.
// Validate is a pure predicate returning the first offending field in
// document order; Commit records accepted values and is only called after a
// successful Validate. The Policy selects between the Next-time required
// check and the stricter legacy behaviour that also enforces pattern and
// length, including the per-keystroke InputGuard.
package validation
