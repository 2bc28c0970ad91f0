package navigation

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formwizard/pkg/history"
)

var (
	// ErrTransitionInFlight is returned when Advance or Restore is entered
	// while another transition on the same controller has not finished.
	ErrTransitionInFlight = errors.New("navigation: transition already in flight")
	// ErrMissingPage is returned when a history event carries no page index.
	ErrMissingPage = history.ErrMissingPage
	// ErrNotLoaded is returned when a transition is requested before Load.
	ErrNotLoaded = errors.New("navigation: controller not loaded")
)

// IntegrityError reports a structural fault: an element the controller
// relies on is missing from the document. It is not recoverable.
type IntegrityError struct {
	Element string
	Err     error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("navigation: document integrity fault on %q: %v", e.Element, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}
