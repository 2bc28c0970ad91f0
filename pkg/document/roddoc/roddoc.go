// Package roddoc implements the document and history contracts against a
// live browser page over the Chrome DevTools protocol, using go-rod. It lets
// the navigation controller, or a smoke test, work on the real markup served
// by the HTTP surface.
package roddoc

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formwizard/pkg/document"
	"github.com/goliatone/go-formwizard/pkg/history"
	"github.com/goliatone/go-formwizard/pkg/model"
)

// Document reads and mutates the elements of a rod page. Inputs are found by
// their aria-label, the same key the controller uses.
type Document struct {
	page *rod.Page
}

var (
	_ document.Document = (*Document)(nil)
	_ history.History   = (*History)(nil)
)

// New binds a document to page. Every evaluation runs under ctx.
func New(ctx context.Context, page *rod.Page) *Document {
	return &Document{page: page.Context(ctx)}
}

func (d *Document) eval(js string, args ...any) (*proto.RuntimeRemoteObject, error) {
	res, err := d.page.Evaluate(&rod.EvalOptions{
		JS:           js,
		JSArgs:       args,
		ByValue:      true,
		AwaitPromise: true,
	})
	if err != nil {
		return nil, fmt.Errorf("roddoc: evaluate: %w", err)
	}
	return res, nil
}

// found runs js, which must return a boolean telling whether the target
// element existed.
func (d *Document) found(id, js string, args ...any) error {
	res, err := d.eval(js, args...)
	if err != nil {
		return err
	}
	if !res.Value.Bool() {
		return document.NotFound(id)
	}
	return nil
}

func (d *Document) Has(id string) bool {
	res, err := d.eval(`(id) => document.getElementById(id) !== null`, id)
	return err == nil && res.Value.Bool()
}

func (d *Document) SetText(id, text string) error {
	return d.found(id, `(id, text) => {
		const el = document.getElementById(id);
		if (!el) return false;
		el.textContent = text;
		return true;
	}`, id, text)
}

func (d *Document) SetVisible(id string, visible bool) error {
	return d.found(id, `(id, visible) => {
		const el = document.getElementById(id);
		if (!el) return false;
		el.hidden = !visible;
		return true;
	}`, id, visible)
}

type fieldPayload struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Required  bool   `json:"required"`
	Pattern   string `json:"pattern"`
	MaxLength int    `json:"max_length"`
}

func (d *Document) Fields(pageID string) ([]model.FieldRecord, error) {
	res, err := d.eval(`(pageID) => {
		const page = document.getElementById(pageID);
		if (!page) return null;
		return Array.from(page.querySelectorAll("input, select")).map((el) => ({
			label: el.getAttribute("aria-label") || "",
			value: el.value,
			required: el.required,
			pattern: el.getAttribute("pattern") || "",
			max_length: el.maxLength > 0 ? el.maxLength : 0,
		}));
	}`, pageID)
	if err != nil {
		return nil, err
	}
	if res.Value.Nil() {
		return nil, document.NotFound(pageID)
	}

	raw, err := res.Value.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("roddoc: encode fields: %w", err)
	}
	var payload []fieldPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("roddoc: decode fields: %w", err)
	}

	records := make([]model.FieldRecord, 0, len(payload))
	for _, field := range payload {
		spec := model.FieldSpec{
			Label:     field.Label,
			Required:  field.Required,
			Pattern:   field.Pattern,
			MaxLength: field.MaxLength,
		}
		record, err := spec.Record(field.Value)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (d *Document) SetValue(pageID, label, value string) error {
	return d.found(label, `(pageID, label, value) => {
		const page = document.getElementById(pageID);
		if (!page) return false;
		const el = Array.from(page.querySelectorAll("input, select"))
			.find((node) => node.getAttribute("aria-label") === label);
		if (!el) return false;
		el.value = value;
		return true;
	}`, pageID, label, value)
}

func (d *Document) MarkInvalid(label string, invalid bool) error {
	return d.found(label, `(label, invalid) => {
		const el = Array.from(document.querySelectorAll("#content input, #content select"))
			.find((node) => node.getAttribute("aria-label") === label);
		if (!el) return false;
		if (invalid) {
			el.setAttribute("aria-invalid", "true");
		} else {
			el.removeAttribute("aria-invalid");
		}
		return true;
	}`, label, invalid)
}

func (d *Document) Focus(label string) error {
	return d.found(label, `(label) => {
		const el = Array.from(document.querySelectorAll("#content input, #content select"))
			.find((node) => node.getAttribute("aria-label") === label);
		if (!el) return false;
		el.focus();
		return true;
	}`, label)
}

// Text returns the text content of an element.
func (d *Document) Text(id string) (string, error) {
	res, err := d.eval(`(id) => {
		const el = document.getElementById(id);
		return el ? el.textContent : null;
	}`, id)
	if err != nil {
		return "", err
	}
	if res.Value.Nil() {
		return "", document.NotFound(id)
	}
	return res.Value.Str(), nil
}

// Visible reports whether an element exists and is not hidden.
func (d *Document) Visible(id string) (bool, error) {
	res, err := d.eval(`(id) => {
		const el = document.getElementById(id);
		return el ? !el.hidden : null;
	}`, id)
	if err != nil {
		return false, err
	}
	if res.Value.Nil() {
		return false, document.NotFound(id)
	}
	return res.Value.Bool(), nil
}

// Click dispatches a click on an element.
func (d *Document) Click(id string) error {
	return d.found(id, `(id) => {
		const el = document.getElementById(id);
		if (!el) return false;
		el.click();
		return true;
	}`, id)
}

// Location returns the current address of the page.
func (d *Document) Location() (string, error) {
	res, err := d.eval(`() => location.href`)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}
