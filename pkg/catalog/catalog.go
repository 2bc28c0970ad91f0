package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// Catalog is an ordered, read-only list of pages.
type Catalog struct {
	pages []model.Page
	index map[string]int
}

// New validates and freezes the supplied pages. Identifiers must be unique and
// non-empty, field labels unique across the whole form, and every pattern must
// compile.
func New(pages ...model.Page) (*Catalog, error) {
	if len(pages) == 0 {
		return nil, ErrEmptyCatalog
	}

	cat := &Catalog{
		pages: make([]model.Page, 0, len(pages)),
		index: make(map[string]int, len(pages)),
	}
	labels := make(map[string]string)

	for pos, page := range pages {
		id := strings.TrimSpace(page.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog: page %d has an empty id", pos+1)
		}
		if _, exists := cat.index[id]; exists {
			return nil, fmt.Errorf("%w %q", ErrDuplicatePage, id)
		}
		page.ID = id

		fields := make([]model.FieldSpec, 0, len(page.Fields))
		for _, field := range page.Fields {
			label := strings.TrimSpace(field.Label)
			if label == "" {
				label = model.DefaultLabeler(field.Name)
			}
			if label == "" {
				return nil, fmt.Errorf("catalog: page %q has a field without a label", id)
			}
			if owner, exists := labels[label]; exists {
				return nil, fmt.Errorf("%w %q (pages %q and %q)", ErrDuplicateLabel, label, owner, id)
			}
			labels[label] = id
			if _, err := model.CompilePattern(field.Pattern); err != nil {
				return nil, fmt.Errorf("catalog: page %q field %q: %w", id, label, err)
			}
			if field.Kind == "" {
				field.Kind = model.FieldKindText
			}
			field.Label = label
			field.Options = append([]string(nil), field.Options...)
			fields = append(fields, field)
		}
		page.Fields = fields

		cat.pages = append(cat.pages, page)
		cat.index[id] = pos + 1
	}

	return cat, nil
}

// MustNew panics on construction failure. Useful for static literals.
func MustNew(pages ...model.Page) *Catalog {
	cat, err := New(pages...)
	if err != nil {
		panic(err)
	}
	return cat
}

// Len returns the number of pages.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pages)
}

// At returns the descriptor for the 1-based index.
func (c *Catalog) At(index int) (model.PageDescriptor, error) {
	page, err := c.Page(index)
	if err != nil {
		return model.PageDescriptor{}, err
	}
	return page.PageDescriptor, nil
}

// Page returns the descriptor and fields for the 1-based index. The returned
// field slice is a copy.
func (c *Catalog) Page(index int) (model.Page, error) {
	if index < 1 || index > c.Len() {
		return model.Page{}, &OutOfRangeError{Index: index, Len: c.Len()}
	}
	page := c.pages[index-1]
	page.Fields = append([]model.FieldSpec(nil), page.Fields...)
	return page, nil
}

// Fields returns the field definitions of the page at index.
func (c *Catalog) Fields(index int) ([]model.FieldSpec, error) {
	page, err := c.Page(index)
	if err != nil {
		return nil, err
	}
	return page.Fields, nil
}

// Pages returns a copy of every page in navigation order.
func (c *Catalog) Pages() []model.Page {
	out := make([]model.Page, 0, c.Len())
	for idx := 1; idx <= c.Len(); idx++ {
		page, _ := c.Page(idx)
		out = append(out, page)
	}
	return out
}

// IndexOf resolves a page identifier to its 1-based index.
func (c *Catalog) IndexOf(id string) (int, bool) {
	if c == nil {
		return 0, false
	}
	idx, ok := c.index[strings.TrimSpace(id)]
	return idx, ok
}

// IsOutOfRange reports whether err carries an OutOfRangeError.
func IsOutOfRange(err error) bool {
	var target *OutOfRangeError
	return errors.As(err, &target)
}
