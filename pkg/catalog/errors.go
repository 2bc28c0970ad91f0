package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCatalog is returned when a catalog is constructed without pages.
	ErrEmptyCatalog = errors.New("catalog: at least one page is required")
	// ErrDuplicatePage is returned when two pages share an identifier.
	ErrDuplicatePage = errors.New("catalog: duplicate page id")
	// ErrDuplicateLabel is returned when two fields share an accessible label.
	ErrDuplicateLabel = errors.New("catalog: duplicate field label")
)

// OutOfRangeError reports a page index outside 1..Len.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("catalog: page index %d out of range [1, %d]", e.Index, e.Len)
}
