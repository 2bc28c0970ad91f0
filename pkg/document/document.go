package document

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// Element ids every document must provide.
const (
	IDTitle       = "title"
	IDDescription = "desc"
	IDContent     = "content"
	IDNext        = "next"
	IDWarning     = "warning"
	IDWarningText = "warning-text"
	IDError       = "error"
)

// ErrElementNotFound signals that an element the controller relies on is not
// part of the document.
var ErrElementNotFound = errors.New("document: element not found")

// PageID returns the element id of the page container at index.
func PageID(index int) string {
	return "page-" + strconv.Itoa(index)
}

// Document is the capability the controller renders through.
type Document interface {
	// Has reports whether an element with id exists.
	Has(id string) bool
	// SetText replaces the text content of an element.
	SetText(id, text string) error
	// SetVisible shows or hides an element.
	SetVisible(id string, visible bool) error
	// Fields returns the inputs inside the page element in document order.
	Fields(pageID string) ([]model.FieldRecord, error)
	// SetValue replaces the value of the input labelled label inside pageID.
	SetValue(pageID, label, value string) error
	// MarkInvalid toggles the invalid state of the input labelled label.
	MarkInvalid(label string, invalid bool) error
	// Focus moves input focus to the input labelled label.
	Focus(label string) error
}

// NotFound wraps ErrElementNotFound with the missing id.
func NotFound(id string) error {
	return fmt.Errorf("%w: %q", ErrElementNotFound, id)
}
