package navigation

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/document"
	"github.com/goliatone/go-formwizard/pkg/history"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// ErrorScreenText is shown when history points at a page the catalog does
// not have.
const ErrorScreenText = "Error, please re-complete the form. Click \"Next\" to proceed."

// Controller tracks the active page of one form session. It is created once
// per session; transitions are synchronous and guarded against re-entry.
type Controller struct {
	catalog *catalog.Catalog
	doc     document.Document
	history history.History
	gate    Validator
	guard   *validation.InputGuard
	answers *model.SavedAnswers
	seed    *model.SavedAnswers
	logger  *zap.Logger

	index       int
	shown       string
	base        string
	flagged     *validation.FieldError
	errorScreen bool

	inFlight atomic.Bool
}

// New wires a controller. Call Load before any transition.
func New(cat *catalog.Catalog, doc document.Document, hist history.History, opts ...Option) *Controller {
	c := &Controller{
		catalog: cat,
		doc:     doc,
		history: hist,
		gate:    validation.NewGate(validation.PolicyRequired),
		guard:   validation.NewInputGuard(),
		answers: model.NewSavedAnswers(nil),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Load enters the form. Whatever page the address names, the controller
// starts on page 1 and the history entry is rewritten without parameters.
// Every input is emptied and the saved answers start over, holding only what
// WithAnswers seeded.
func (c *Controller) Load(ctx context.Context, address string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.base = history.StripParams(address)
	c.index = 1
	if err := c.reset(); err != nil {
		return err
	}
	if err := c.history.Replace(history.State{Page: 1}, c.base); err != nil {
		return fmt.Errorf("navigation: replace history: %w", err)
	}
	if err := c.hideErrorScreen(); err != nil {
		return err
	}
	if err := c.clearWarning(); err != nil {
		return err
	}
	c.logger.Debug("form loaded", zap.String("address", c.base))
	return c.display(1)
}

// Advance validates the displayed page and moves to the next one. A rejected
// field is returned as a value and flagged in the document; err is reserved
// for faults, including *catalog.OutOfRangeError on the last page.
func (c *Controller) Advance(ctx context.Context) (*validation.FieldError, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrTransitionInFlight
	}
	defer c.inFlight.Store(false)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.index == 0 {
		return nil, ErrNotLoaded
	}
	if c.errorScreen {
		c.logger.Debug("reloading after invalid history page")
		return nil, c.Load(ctx, c.base)
	}

	pageID := document.PageID(c.index)
	fields, err := c.doc.Fields(pageID)
	if err != nil {
		return nil, c.integrity(pageID, err)
	}

	if fieldErr := c.gate.Validate(fields); fieldErr != nil {
		c.logger.Debug("page rejected",
			zap.Int("page", c.index),
			zap.String("field", fieldErr.Label),
			zap.String("reason", string(fieldErr.Reason)),
		)
		return fieldErr, c.flag(fieldErr)
	}
	c.gate.Commit(c.answers, fields)
	if err := c.clearWarning(); err != nil {
		return nil, err
	}

	next := c.index + 1
	page, err := c.catalog.At(next)
	if err != nil {
		return nil, err
	}
	if err := c.history.Push(history.State{Page: next}, history.Address(page.ID, next)); err != nil {
		return nil, fmt.Errorf("navigation: push history: %w", err)
	}

	c.logger.Debug("advance", zap.Int("from", c.index), zap.Int("to", next))
	c.index = next
	return nil, c.display(next)
}

// Restore handles a history navigation event. The target page is shown
// without consulting the validator. Events without a page are logged and
// dropped; pages outside the catalog switch to the error screen.
func (c *Controller) Restore(ctx context.Context, event history.PopEvent) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrTransitionInFlight
	}
	defer c.inFlight.Store(false)

	if err := ctx.Err(); err != nil {
		return err
	}
	if c.index == 0 {
		return ErrNotLoaded
	}

	target, err := event.Page()
	if err != nil {
		c.logger.Error("history event without page", zap.String("url", event.URL), zap.Error(err))
		if !errors.Is(err, ErrMissingPage) {
			err = fmt.Errorf("%w: %w", ErrMissingPage, err)
		}
		return err
	}
	if target > c.catalog.Len() {
		c.logger.Warn("history points past the last page", zap.Int("page", target))
		return c.showErrorScreen()
	}

	if err := c.clearWarning(); err != nil {
		return err
	}
	if err := c.hideErrorScreen(); err != nil {
		return err
	}
	c.logger.Debug("restore", zap.Int("from", c.index), zap.Int("to", target))
	c.index = target
	return c.display(target)
}

// Input routes a keystroke on the labelled field of the current page. Under
// PolicyStrict a value that breaks the field's pattern or max length is
// reverted to the last accepted one, and an accepted value clears whatever
// warning is showing. The value the field ends up holding is returned.
func (c *Controller) Input(ctx context.Context, label, value string) (string, *validation.FieldError, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	if c.index == 0 {
		return "", nil, ErrNotLoaded
	}
	pageID := document.PageID(c.index)
	if c.gate.Policy() != validation.PolicyStrict {
		if err := c.doc.SetValue(pageID, label, value); err != nil {
			return "", nil, c.integrity(pageID, err)
		}
		return value, nil, nil
	}

	spec, ok := c.fieldSpec(c.index, label)
	if !ok {
		return "", nil, c.integrity(pageID, document.NotFound(label))
	}
	record, err := spec.Record(value)
	if err != nil {
		return "", nil, err
	}

	accepted, fieldErr := c.guard.Input(record)
	if err := c.doc.SetValue(pageID, label, accepted); err != nil {
		return "", nil, c.integrity(pageID, err)
	}
	if fieldErr != nil {
		return accepted, fieldErr, c.flag(fieldErr)
	}
	if c.flagged != nil {
		if err := c.clearWarning(); err != nil {
			return accepted, nil, err
		}
	}
	return accepted, nil, nil
}

// Prefill copies saved answers back into the inputs of the page at index.
func (c *Controller) Prefill(ctx context.Context, index int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fields, err := c.catalog.Fields(index)
	if err != nil {
		return err
	}
	pageID := document.PageID(index)
	for _, field := range fields {
		value, ok := c.answers.Get(field.Label)
		if !ok {
			continue
		}
		if err := c.doc.SetValue(pageID, field.Label, value); err != nil {
			return c.integrity(pageID, err)
		}
		c.guard.Seed(field.Label, value)
	}
	return nil
}

// Index returns the active 1-based page index, 0 before Load.
func (c *Controller) Index() int {
	return c.index
}

// Page returns the descriptor of the active page.
func (c *Controller) Page() (model.PageDescriptor, error) {
	if c.index == 0 {
		return model.PageDescriptor{}, ErrNotLoaded
	}
	return c.catalog.At(c.index)
}

// Answers returns a copy of every accepted answer.
func (c *Controller) Answers() map[string]string {
	return c.answers.Snapshot()
}

// Pending returns the field currently flagged in the document, if any.
func (c *Controller) Pending() *validation.FieldError {
	return c.flagged
}

// ErrorScreen reports whether the invalid-page screen is displayed.
func (c *Controller) ErrorScreen() bool {
	return c.errorScreen
}

// Policy reports the validation policy in effect.
func (c *Controller) Policy() validation.Policy {
	return c.gate.Policy()
}

// Catalog exposes the pages the controller navigates.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// display swaps the visible page. The content wrapper stays hidden while the
// descriptor text changes.
func (c *Controller) display(index int) error {
	page, err := c.catalog.At(index)
	if err != nil {
		return err
	}
	if err := c.setVisible(document.IDContent, false); err != nil {
		return err
	}

	previous := c.shown
	if previous == "" {
		previous = document.PageID(1)
	}
	if err := c.setVisible(previous, false); err != nil {
		return err
	}
	if err := c.setText(document.IDTitle, page.Title); err != nil {
		return err
	}
	if err := c.setText(document.IDDescription, page.Description); err != nil {
		return err
	}

	target := document.PageID(index)
	if err := c.setVisible(target, true); err != nil {
		return err
	}
	c.shown = target
	return c.setVisible(document.IDContent, true)
}

// flag marks the field invalid, focuses it and shows the warning. A field
// flagged earlier loses its invalid mark.
func (c *Controller) flag(fieldErr *validation.FieldError) error {
	if c.flagged != nil && c.flagged.Label != fieldErr.Label {
		if err := c.doc.MarkInvalid(c.flagged.Label, false); err != nil {
			return c.integrity(c.flagged.Label, err)
		}
	}
	if err := c.doc.MarkInvalid(fieldErr.Label, true); err != nil {
		return c.integrity(fieldErr.Label, err)
	}
	if err := c.doc.Focus(fieldErr.Label); err != nil {
		return c.integrity(fieldErr.Label, err)
	}
	if err := c.setText(document.IDWarningText, fieldErr.Message); err != nil {
		return err
	}
	if err := c.setVisible(document.IDWarning, true); err != nil {
		return err
	}
	c.flagged = fieldErr
	return nil
}

func (c *Controller) clearWarning() error {
	if c.flagged != nil {
		if err := c.doc.MarkInvalid(c.flagged.Label, false); err != nil {
			return c.integrity(c.flagged.Label, err)
		}
		c.flagged = nil
	}
	if err := c.setVisible(document.IDWarning, false); err != nil {
		return err
	}
	return c.setText(document.IDWarningText, "")
}

// reset empties every input and restarts the saved answers and the keystroke
// guard, as a page reload would.
func (c *Controller) reset() error {
	c.answers = model.NewSavedAnswers(nil)
	if c.seed != nil {
		c.answers = model.NewSavedAnswers(c.seed.Snapshot())
	}
	c.guard = validation.NewInputGuard()

	for index, page := range c.catalog.Pages() {
		pageID := document.PageID(index + 1)
		for _, field := range page.Fields {
			if err := c.doc.SetValue(pageID, field.Label, ""); err != nil {
				return c.integrity(pageID, err)
			}
		}
	}
	return nil
}

func (c *Controller) showErrorScreen() error {
	if err := c.clearWarning(); err != nil {
		return err
	}
	if c.shown != "" {
		if err := c.setVisible(c.shown, false); err != nil {
			return err
		}
		c.shown = ""
	}
	if err := c.setText(document.IDTitle, ""); err != nil {
		return err
	}
	if err := c.setText(document.IDDescription, ""); err != nil {
		return err
	}
	if err := c.setText(document.IDError, ErrorScreenText); err != nil {
		return err
	}
	if err := c.setVisible(document.IDError, true); err != nil {
		return err
	}
	c.errorScreen = true
	return nil
}

func (c *Controller) hideErrorScreen() error {
	c.errorScreen = false
	if !c.doc.Has(document.IDError) {
		return nil
	}
	return c.setVisible(document.IDError, false)
}

func (c *Controller) setVisible(id string, visible bool) error {
	if err := c.doc.SetVisible(id, visible); err != nil {
		return c.integrity(id, err)
	}
	return nil
}

func (c *Controller) setText(id, text string) error {
	if err := c.doc.SetText(id, text); err != nil {
		return c.integrity(id, err)
	}
	return nil
}

func (c *Controller) integrity(element string, err error) error {
	c.logger.Error("document integrity fault", zap.String("element", element), zap.Error(err))
	return &IntegrityError{Element: element, Err: err}
}

func (c *Controller) fieldSpec(index int, label string) (model.FieldSpec, bool) {
	fields, err := c.catalog.Fields(index)
	if err != nil {
		return model.FieldSpec{}, false
	}
	for _, field := range fields {
		if field.Label == label {
			return field, true
		}
	}
	return model.FieldSpec{}, false
}
