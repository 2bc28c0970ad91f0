package roddoc

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"

	"github.com/goliatone/go-formwizard/pkg/history"
)

// History drives window.history on a rod page.
type History struct {
	doc *Document
}

// NewHistory binds the history of page.
func NewHistory(ctx context.Context, page *rod.Page) *History {
	return &History{doc: New(ctx, page)}
}

func (h *History) Push(state history.State, address string) error {
	return h.apply("pushState", state, address)
}

func (h *History) Replace(state history.State, address string) error {
	return h.apply("replaceState", state, address)
}

func (h *History) apply(method string, state history.State, address string) error {
	raw, err := history.EncodeState(state)
	if err != nil {
		return err
	}
	_, err = h.doc.eval(`(method, state, address) => {
		history[method](JSON.parse(state), "", address);
		return true;
	}`, method, string(raw), address)
	if err != nil {
		return fmt.Errorf("roddoc: %s: %w", method, err)
	}
	return nil
}

// State returns the state of the current history entry as a pop event would
// carry it.
func (h *History) State() (history.PopEvent, error) {
	res, err := h.doc.eval(`() => ({ state: JSON.stringify(history.state), url: location.href })`)
	if err != nil {
		return history.PopEvent{}, err
	}
	return history.PopEvent{
		State: []byte(res.Value.Get("state").Str()),
		URL:   res.Value.Get("url").Str(),
	}, nil
}

// Back moves the page one entry back. The browser fires popstate
// asynchronously.
func (h *History) Back() error {
	_, err := h.doc.eval(`() => { history.back(); return true; }`)
	return err
}
