package document

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// Element is a node of the in-memory document.
type Element struct {
	ID      string
	Text    string
	Visible bool
	Inputs  []*Input
}

// Input is a form control inside a page element.
type Input struct {
	Spec    model.FieldSpec
	Value   string
	Invalid bool
}

// Memory is a Document kept entirely in process. All methods are safe for
// concurrent use.
type Memory struct {
	mu       sync.RWMutex
	elements map[string]*Element
	focused  string
}

var _ Document = (*Memory)(nil)

// NewMemory builds the static markup for the pages: one hidden container per
// page (the first one visible) plus the shared chrome elements.
func NewMemory(pages []model.Page) *Memory {
	doc := &Memory{elements: make(map[string]*Element)}
	for _, id := range []string{IDTitle, IDDescription, IDContent, IDNext, IDWarning, IDWarningText, IDError} {
		doc.elements[id] = &Element{ID: id}
	}
	doc.elements[IDContent].Visible = true
	doc.elements[IDNext].Visible = true
	doc.elements[IDDescription].Visible = true

	for idx, page := range pages {
		el := &Element{ID: PageID(idx + 1), Visible: idx == 0}
		for _, spec := range page.Fields {
			el.Inputs = append(el.Inputs, &Input{Spec: spec})
		}
		doc.elements[el.ID] = el
	}
	if len(pages) > 0 {
		doc.elements[IDTitle].Text = pages[0].Title
		doc.elements[IDDescription].Text = pages[0].Description
	}
	return doc
}

// Remove deletes an element, mostly useful to exercise integrity faults.
func (d *Memory) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.elements, id)
}

// Has implements Document.
func (d *Memory) Has(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.elements[id]
	return ok
}

// SetText implements Document.
func (d *Memory) SetText(id, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.elements[id]
	if !ok {
		return NotFound(id)
	}
	el.Text = text
	return nil
}

// SetVisible implements Document.
func (d *Memory) SetVisible(id string, visible bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.elements[id]
	if !ok {
		return NotFound(id)
	}
	el.Visible = visible
	return nil
}

// Fields implements Document.
func (d *Memory) Fields(pageID string) ([]model.FieldRecord, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	el, ok := d.elements[pageID]
	if !ok {
		return nil, NotFound(pageID)
	}
	records := make([]model.FieldRecord, 0, len(el.Inputs))
	for _, input := range el.Inputs {
		record, err := input.Spec.Record(input.Value)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// SetValue implements Document.
func (d *Memory) SetValue(pageID, label, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.elements[pageID]
	if !ok {
		return NotFound(pageID)
	}
	for _, input := range el.Inputs {
		if input.Spec.Label == label {
			input.Value = value
			return nil
		}
	}
	return NotFound(pageID + " " + label)
}

// MarkInvalid implements Document.
func (d *Memory) MarkInvalid(label string, invalid bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	input := d.inputLocked(label)
	if input == nil {
		return NotFound(label)
	}
	input.Invalid = invalid
	return nil
}

// Focus implements Document.
func (d *Memory) Focus(label string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inputLocked(label) == nil {
		return NotFound(label)
	}
	d.focused = label
	return nil
}

// Text returns the text of an element, or "" when it does not exist.
func (d *Memory) Text(id string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if el, ok := d.elements[id]; ok {
		return el.Text
	}
	return ""
}

// Visible reports whether an element exists and is shown.
func (d *Memory) Visible(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	el, ok := d.elements[id]
	return ok && el.Visible
}

// Focused returns the label of the focused input.
func (d *Memory) Focused() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.focused
}

// Invalid reports whether the input labelled label is marked invalid.
func (d *Memory) Invalid(label string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	input := d.inputLocked(label)
	return input != nil && input.Invalid
}

// Value returns the current value of the input labelled label.
func (d *Memory) Value(label string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if input := d.inputLocked(label); input != nil {
		return input.Value
	}
	return ""
}

// VisiblePages returns the ids of the page containers currently shown.
func (d *Memory) VisiblePages() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []string
	for id, el := range d.elements {
		if strings.HasPrefix(id, "page-") && el.Visible {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Snapshot returns a deep copy of the element, or false when missing.
func (d *Memory) Snapshot(id string) (Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	el, ok := d.elements[id]
	if !ok {
		return Element{}, false
	}
	out := Element{ID: el.ID, Text: el.Text, Visible: el.Visible}
	for _, input := range el.Inputs {
		clone := *input
		out.Inputs = append(out.Inputs, &clone)
	}
	return out, true
}

func (d *Memory) inputLocked(label string) *Input {
	for id, el := range d.elements {
		if !strings.HasPrefix(id, "page-") {
			continue
		}
		for _, input := range el.Inputs {
			if input.Spec.Label == label {
				return input
			}
		}
	}
	return nil
}
