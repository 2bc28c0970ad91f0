package navigation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/document"
	"github.com/goliatone/go-formwizard/pkg/history"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/testsupport"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

const formURL = "http://localhost:8080/form"

type harness struct {
	ctrl  *Controller
	doc   *document.Memory
	stack *history.Stack
	cat   *catalog.Catalog
}

func newHarness(t testing.TB, cat *catalog.Catalog, opts ...Option) harness {
	t.Helper()
	doc := document.NewMemory(cat.Pages())
	stack := history.NewStack(formURL)
	ctrl := New(cat, doc, stack, opts...)
	if err := ctrl.Load(context.Background(), formURL); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return harness{ctrl: ctrl, doc: doc, stack: stack, cat: cat}
}

func linearCatalog(n int) *catalog.Catalog {
	return catalog.MustNew(testsupport.LinearPages(n)...)
}

func (h harness) fill(t testing.TB, index int, values map[string]string) {
	t.Helper()
	testsupport.FillPage(t, h.doc, index, values)
}

func (h harness) currentState(t testing.TB) history.State {
	t.Helper()
	state, err := history.DecodeState(h.stack.Current().State)
	if err != nil {
		t.Fatalf("decode current state: %v", err)
	}
	return state
}

type countingValidator struct {
	*validation.Gate
	calls int
}

func (v *countingValidator) Validate(fields []model.FieldRecord) *validation.FieldError {
	v.calls++
	return v.Gate.Validate(fields)
}

func TestController_SignupScenario(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, catalog.Default())

	if h.ctrl.Index() != 1 || h.doc.Text(document.IDTitle) != "Create a Google Account" {
		t.Fatalf("unexpected start: index=%d title=%q", h.ctrl.Index(), h.doc.Text(document.IDTitle))
	}

	h.fill(t, 1, map[string]string{"first name": "  Ada "})
	fieldErr, err := h.ctrl.Advance(ctx)
	if err != nil || fieldErr != nil {
		t.Fatalf("Advance page 1: fieldErr=%v err=%v", fieldErr, err)
	}
	if h.ctrl.Index() != 2 {
		t.Fatalf("expected index 2, got %d", h.ctrl.Index())
	}
	if url := h.stack.Current().URL; !strings.Contains(url, "page=2") {
		t.Fatalf("address %q does not carry page=2", url)
	}
	if got := h.doc.Text(document.IDTitle); got != "Basic information" {
		t.Fatalf("title = %q", got)
	}
	if got := h.doc.VisiblePages(); !cmp.Equal(got, []string{"page-2"}) {
		t.Fatalf("visible pages = %v", got)
	}

	h.fill(t, 2, map[string]string{"month": "May", "year": "1990", "gender": "Female"})
	fieldErr, err = h.ctrl.Advance(ctx)
	if err != nil {
		t.Fatalf("Advance page 2: %v", err)
	}
	if fieldErr == nil || fieldErr.Label != "day" {
		t.Fatalf("expected day to be rejected, got %v", fieldErr)
	}
	if h.ctrl.Index() != 2 {
		t.Fatalf("index moved to %d", h.ctrl.Index())
	}
	if !h.doc.Visible(document.IDWarning) || h.doc.Text(document.IDWarningText) != "Enter day" {
		t.Fatalf("warning not shown: %q", h.doc.Text(document.IDWarningText))
	}
	if !h.doc.Invalid("day") || h.doc.Focused() != "day" {
		t.Fatalf("day should be flagged and focused")
	}

	want := map[string]string{"first name": "Ada", "last name (optional)": ""}
	if diff := cmp.Diff(want, h.ctrl.Answers()); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestController_AdvanceReportsFirstBlankField(t *testing.T) {
	cat := catalog.MustNew(model.Page{
		PageDescriptor: model.PageDescriptor{ID: "only", Title: "Only"},
		Fields: []model.FieldSpec{
			{Label: "a", Required: true},
			{Label: "b", Required: true},
			{Label: "c", Required: true},
		},
	})
	h := newHarness(t, cat)
	h.fill(t, 1, map[string]string{"a": "x", "c": "   "})

	fieldErr, err := h.ctrl.Advance(context.Background())
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if fieldErr == nil || fieldErr.Label != "b" || fieldErr.Position != 1 {
		t.Fatalf("expected b at position 1, got %+v", fieldErr)
	}
	if len(h.ctrl.Answers()) != 0 {
		t.Fatalf("rejected page must not commit answers: %v", h.ctrl.Answers())
	}
}

func TestController_AdvanceOnLastPage(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, linearCatalog(1))
	h.fill(t, 1, map[string]string{"answer 1": "done"})
	entries := h.stack.Len()

	_, err := h.ctrl.Advance(ctx)
	if !catalog.IsOutOfRange(err) {
		t.Fatalf("expected out of range error, got %v", err)
	}
	if h.ctrl.Index() != 1 || h.stack.Len() != entries {
		t.Fatalf("terminal page must not move: index=%d entries=%d", h.ctrl.Index(), h.stack.Len())
	}
	if got, _ := h.ctrl.answers.Get("answer 1"); got != "done" {
		t.Fatalf("accepted terminal answers should be kept, got %q", got)
	}
}

func TestController_AdvanceProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(rt, "pages")
		stop := rapid.IntRange(1, n-1).Draw(rt, "stop")
		h := newHarness(t, linearCatalog(n))

		for i := 1; i <= stop; i++ {
			h.fill(t, i, map[string]string{fmt.Sprintf("answer %d", i): "ok"})
			if fieldErr, err := h.ctrl.Advance(context.Background()); fieldErr != nil || err != nil {
				rt.Fatalf("advance from %d: fieldErr=%v err=%v", i, fieldErr, err)
			}
			if h.ctrl.Index() != i+1 {
				rt.Fatalf("expected index %d, got %d", i+1, h.ctrl.Index())
			}
			if state := h.currentState(t); state.Page != i+1 {
				rt.Fatalf("pushed state %+v, want page %d", state, i+1)
			}
		}
	})
}

func TestController_RestoreSkipsValidation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(rt, "pages")
		target := rapid.IntRange(1, n).Draw(rt, "target")
		validator := &countingValidator{Gate: validation.NewGate(validation.PolicyRequired)}
		h := newHarness(t, linearCatalog(n), WithValidator(validator))

		raw, err := history.EncodeState(history.State{Page: target})
		if err != nil {
			rt.Fatalf("encode: %v", err)
		}
		if err := h.ctrl.Restore(context.Background(), history.PopEvent{State: raw}); err != nil {
			rt.Fatalf("Restore: %v", err)
		}
		if h.ctrl.Index() != target {
			rt.Fatalf("index = %d, want %d", h.ctrl.Index(), target)
		}
		if validator.calls != 0 {
			rt.Fatalf("validator invoked %d times", validator.calls)
		}
		if got := h.doc.VisiblePages(); len(got) != 1 || got[0] != document.PageID(target) {
			rt.Fatalf("visible pages = %v", got)
		}
	})
}

func TestController_LoadResetsAndStripsAddress(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, catalog.Default())
	h.fill(t, 1, map[string]string{"first name": "Ada"})
	if _, err := h.ctrl.Advance(ctx); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if err := h.ctrl.Load(ctx, formURL+"?birthdaygender&page=2#top"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h.ctrl.Index() != 1 {
		t.Fatalf("expected index 1, got %d", h.ctrl.Index())
	}
	current := h.stack.Current()
	if current.URL != formURL {
		t.Fatalf("address not stripped: %q", current.URL)
	}
	if state := h.currentState(t); state.Page != 1 {
		t.Fatalf("state = %+v", state)
	}
	if got := h.doc.VisiblePages(); !cmp.Equal(got, []string{"page-1"}) {
		t.Fatalf("visible pages = %v", got)
	}
}

func TestController_BackRestoresPreviousDescriptor(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, linearCatalog(4))

	for i := 1; i <= 3; i++ {
		title := h.doc.Text(document.IDTitle)
		desc := h.doc.Text(document.IDDescription)
		h.fill(t, i, map[string]string{fmt.Sprintf("answer %d", i): "ok"})
		if _, err := h.ctrl.Advance(ctx); err != nil {
			t.Fatalf("Advance from %d: %v", i, err)
		}
		if !strings.HasSuffix(h.stack.Current().URL, history.Address(fmt.Sprintf("step%d", i+1), i+1)) {
			t.Fatalf("unexpected address %q", h.stack.Current().URL)
		}

		event, ok := h.stack.Back()
		if !ok {
			t.Fatalf("no history to go back to")
		}
		if err := h.ctrl.Restore(ctx, event); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if h.ctrl.Index() != i {
			t.Fatalf("back from %d landed on %d", i+1, h.ctrl.Index())
		}
		if h.doc.Text(document.IDTitle) != title || h.doc.Text(document.IDDescription) != desc {
			t.Fatalf("descriptor not restored for page %d", i)
		}

		event, ok = h.stack.Forward()
		if !ok {
			t.Fatalf("no forward entry")
		}
		if err := h.ctrl.Restore(ctx, event); err != nil {
			t.Fatalf("Restore forward: %v", err)
		}
	}
}

func TestController_RestoreWithoutPage(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := newHarness(t, catalog.Default(), WithLogger(zap.New(core)))

	err := h.ctrl.Restore(context.Background(), history.PopEvent{URL: formURL})
	if !errors.Is(err, ErrMissingPage) {
		t.Fatalf("expected ErrMissingPage, got %v", err)
	}
	err = h.ctrl.Restore(context.Background(), history.PopEvent{State: []byte("{broken"), URL: formURL})
	if !errors.Is(err, ErrMissingPage) {
		t.Fatalf("expected ErrMissingPage for malformed state, got %v", err)
	}
	if h.ctrl.Index() != 1 {
		t.Fatalf("dropped transition moved index to %d", h.ctrl.Index())
	}
	if logs.FilterMessage("history event without page").Len() != 2 {
		t.Fatalf("expected two logged faults, got %d", logs.Len())
	}
}

func TestController_RestorePastLastPageShowsErrorScreen(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, catalog.Default())

	if err := h.ctrl.Restore(ctx, history.PopEvent{State: []byte(`{"page":7}`)}); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !h.ctrl.ErrorScreen() || !h.doc.Visible(document.IDError) {
		t.Fatalf("error screen not shown")
	}
	if h.doc.Text(document.IDError) != ErrorScreenText {
		t.Fatalf("error text = %q", h.doc.Text(document.IDError))
	}
	if len(h.doc.VisiblePages()) != 0 {
		t.Fatalf("pages should be hidden: %v", h.doc.VisiblePages())
	}

	fieldErr, err := h.ctrl.Advance(ctx)
	if fieldErr != nil || err != nil {
		t.Fatalf("reload: fieldErr=%v err=%v", fieldErr, err)
	}
	if h.ctrl.ErrorScreen() || h.doc.Visible(document.IDError) || h.ctrl.Index() != 1 {
		t.Fatalf("reload did not return to page 1")
	}
	if h.doc.Text(document.IDTitle) != "Create a Google Account" {
		t.Fatalf("title = %q", h.doc.Text(document.IDTitle))
	}
}

func TestController_MissingPageElementIsIntegrityFault(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := newHarness(t, catalog.Default(), WithLogger(zap.New(core)))
	h.doc.Remove(document.PageID(2))
	h.fill(t, 1, map[string]string{"first name": "Ada"})

	_, err := h.ctrl.Advance(context.Background())
	var integrity *IntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("expected IntegrityError, got %v", err)
	}
	if integrity.Element != "page-2" || !errors.Is(err, document.ErrElementNotFound) {
		t.Fatalf("unexpected integrity error %+v", integrity)
	}
	if logs.FilterMessage("document integrity fault").Len() != 1 {
		t.Fatalf("fault not logged")
	}
}

// reentrantDoc triggers a nested Advance while the outer one reads fields.
type reentrantDoc struct {
	*document.Memory
	ctrl   *Controller
	nested error
}

func (d *reentrantDoc) Fields(pageID string) ([]model.FieldRecord, error) {
	if d.ctrl != nil {
		_, d.nested = d.ctrl.Advance(context.Background())
	}
	return d.Memory.Fields(pageID)
}

func TestController_RejectsReentrantTransition(t *testing.T) {
	cat := catalog.Default()
	doc := &reentrantDoc{Memory: document.NewMemory(cat.Pages())}
	stack := history.NewStack(formURL)
	ctrl := New(cat, doc, stack)
	if err := ctrl.Load(context.Background(), formURL); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := doc.SetValue(document.PageID(1), "first name", "Ada"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	doc.ctrl = ctrl

	if _, err := ctrl.Advance(context.Background()); err != nil {
		t.Fatalf("outer Advance: %v", err)
	}
	if !errors.Is(doc.nested, ErrTransitionInFlight) {
		t.Fatalf("nested Advance should be rejected, got %v", doc.nested)
	}
	if ctrl.Index() != 2 {
		t.Fatalf("expected a single advance, index=%d", ctrl.Index())
	}
}

func TestController_StrictPolicy(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, catalog.Default(), WithPolicy(validation.PolicyStrict))
	h.fill(t, 1, map[string]string{"first name": "Ada"})
	if _, err := h.ctrl.Advance(ctx); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	got, fieldErr, err := h.ctrl.Input(ctx, "day", "12")
	if err != nil || fieldErr != nil || got != "12" {
		t.Fatalf("Input 12: got=%q fieldErr=%v err=%v", got, fieldErr, err)
	}
	got, fieldErr, err = h.ctrl.Input(ctx, "day", "123")
	if err != nil {
		t.Fatalf("Input 123: %v", err)
	}
	if got != "12" || fieldErr == nil || fieldErr.Reason != validation.ReasonPattern {
		t.Fatalf("expected revert to 12 with pattern error, got %q %+v", got, fieldErr)
	}
	if h.doc.Value("day") != "12" || h.doc.Text(document.IDWarningText) != "Doesn't match pattern." {
		t.Fatalf("document not reverted: value=%q warning=%q", h.doc.Value("day"), h.doc.Text(document.IDWarningText))
	}

	if _, fieldErr, _ = h.ctrl.Input(ctx, "day", "7"); fieldErr != nil {
		t.Fatalf("valid input rejected: %v", fieldErr)
	}
	if h.doc.Visible(document.IDWarning) || h.doc.Invalid("day") {
		t.Fatalf("accepted input should clear the warning")
	}

	h.fill(t, 2, map[string]string{"month": "May", "year": "19x0", "gender": "Male"})
	fieldErr, err = h.ctrl.Advance(ctx)
	if err != nil || fieldErr == nil || fieldErr.Label != "year" {
		t.Fatalf("expected strict year rejection, got fieldErr=%v err=%v", fieldErr, err)
	}
}

func TestController_InputUnderRequiredPolicyPassesThrough(t *testing.T) {
	h := newHarness(t, catalog.Default())
	got, fieldErr, err := h.ctrl.Input(context.Background(), "first name", strings.Repeat("a", 80))
	if err != nil || fieldErr != nil || len(got) != 80 {
		t.Fatalf("unexpected input result %q %v %v", got, fieldErr, err)
	}
}

func TestController_FlagMovesBetweenFields(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, catalog.Default())
	h.fill(t, 1, map[string]string{"first name": "Ada"})
	if _, err := h.ctrl.Advance(ctx); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if fieldErr, _ := h.ctrl.Advance(ctx); fieldErr == nil || fieldErr.Label != "month" {
		t.Fatalf("expected month, got %v", fieldErr)
	}
	h.fill(t, 2, map[string]string{"month": "June"})
	if fieldErr, _ := h.ctrl.Advance(ctx); fieldErr == nil || fieldErr.Label != "day" {
		t.Fatalf("expected day, got %v", fieldErr)
	}
	if h.doc.Invalid("month") || !h.doc.Invalid("day") {
		t.Fatalf("previous flag should be cleared")
	}
	if h.ctrl.Pending() == nil || h.ctrl.Pending().Label != "day" {
		t.Fatalf("pending = %v", h.ctrl.Pending())
	}
}

func TestController_PrefillFromAnswers(t *testing.T) {
	answers := model.NewSavedAnswers(map[string]string{"first name": "Grace", "day": "9"})
	h := newHarness(t, catalog.Default(), WithAnswers(answers))

	if err := h.ctrl.Prefill(context.Background(), 1); err != nil {
		t.Fatalf("Prefill: %v", err)
	}
	if h.doc.Value("first name") != "Grace" || h.doc.Value("day") != "" {
		t.Fatalf("prefill touched the wrong page: first=%q day=%q", h.doc.Value("first name"), h.doc.Value("day"))
	}
	if err := h.ctrl.Prefill(context.Background(), 3); !catalog.IsOutOfRange(err) {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestController_NotLoaded(t *testing.T) {
	cat := catalog.Default()
	ctrl := New(cat, document.NewMemory(cat.Pages()), history.NewStack(formURL))
	if _, err := ctrl.Advance(context.Background()); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
	if _, err := ctrl.Page(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded from Page, got %v", err)
	}
	if err := ctrl.Restore(context.Background(), history.PopEvent{State: []byte(`{"page":1}`)}); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded from Restore, got %v", err)
	}
	if _, _, err := ctrl.Input(context.Background(), "first name", "Ada"); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded from Input, got %v", err)
	}
}

func TestController_LoadForgetsAnswers(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, catalog.Default(), WithPolicy(validation.PolicyStrict))
	h.fill(t, 1, map[string]string{"first name": "Ada"})
	if fieldErr, err := h.ctrl.Advance(ctx); fieldErr != nil || err != nil {
		t.Fatalf("Advance: fieldErr=%v err=%v", fieldErr, err)
	}
	if _, _, err := h.ctrl.Input(ctx, "day", "12"); err != nil {
		t.Fatalf("Input: %v", err)
	}

	if err := h.ctrl.Load(ctx, formURL+"?name&page=1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := h.ctrl.Answers(); len(got) != 0 {
		t.Fatalf("answers survived the reload: %v", got)
	}
	if h.doc.Value("first name") != "" || h.doc.Value("day") != "" {
		t.Fatalf("inputs survived the reload: first=%q day=%q", h.doc.Value("first name"), h.doc.Value("day"))
	}

	h.fill(t, 1, map[string]string{"first name": "Grace"})
	if _, err := h.ctrl.Advance(ctx); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	got, fieldErr, err := h.ctrl.Input(ctx, "day", "123")
	if err != nil || fieldErr == nil {
		t.Fatalf("expected rejection, got fieldErr=%v err=%v", fieldErr, err)
	}
	if got != "" {
		t.Fatalf("rejected keystroke reverted to %q from before the reload", got)
	}
}

func TestController_LoadKeepsSeededAnswers(t *testing.T) {
	ctx := context.Background()
	seed := model.NewSavedAnswers(map[string]string{"first name": "Grace"})
	h := newHarness(t, catalog.Default(), WithAnswers(seed))
	h.fill(t, 1, map[string]string{"first name": "Ada"})
	if _, err := h.ctrl.Advance(ctx); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if err := h.ctrl.Load(ctx, formURL); err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := map[string]string{"first name": "Grace"}
	if diff := cmp.Diff(want, h.ctrl.Answers()); diff != "" {
		t.Fatalf("answers after reload (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, seed.Snapshot()); diff != "" {
		t.Fatalf("seed was modified (-want +got):\n%s", diff)
	}
}

func TestController_BackLeavesAnswersUntouched(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, catalog.Default())
	h.fill(t, 1, map[string]string{"first name": "Ada"})
	if _, err := h.ctrl.Advance(ctx); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	before := h.ctrl.Answers()

	h.fill(t, 2, map[string]string{"month": "May", "day": "4"})
	event, ok := h.stack.Back()
	if !ok {
		t.Fatalf("no history to go back to")
	}
	if err := h.ctrl.Restore(ctx, event); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if diff := cmp.Diff(before, h.ctrl.Answers()); diff != "" {
		t.Fatalf("back navigation wrote answers (-before +after):\n%s", diff)
	}

	h.fill(t, 1, map[string]string{"first name": "Grace"})
	event, ok = h.stack.Forward()
	if !ok {
		t.Fatalf("no forward entry")
	}
	if err := h.ctrl.Restore(ctx, event); err != nil {
		t.Fatalf("Restore forward: %v", err)
	}
	if diff := cmp.Diff(before, h.ctrl.Answers()); diff != "" {
		t.Fatalf("forward navigation wrote answers (-before +after):\n%s", diff)
	}
}

func TestController_StrictInputClearsAnyWarning(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, catalog.Default(), WithPolicy(validation.PolicyStrict))
	h.fill(t, 1, map[string]string{"first name": "Ada"})
	if _, err := h.ctrl.Advance(ctx); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if fieldErr, _ := h.ctrl.Advance(ctx); fieldErr == nil || fieldErr.Label != "month" {
		t.Fatalf("expected month flagged, got %v", fieldErr)
	}

	if _, fieldErr, err := h.ctrl.Input(ctx, "day", "4"); fieldErr != nil || err != nil {
		t.Fatalf("Input: fieldErr=%v err=%v", fieldErr, err)
	}
	if h.ctrl.Pending() != nil || h.doc.Visible(document.IDWarning) || h.doc.Invalid("month") {
		t.Fatalf("valid keystroke on another field should clear the warning")
	}
}

func TestController_CompletesSignup(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, catalog.Default())
	answers := testsupport.SignupAnswers()

	for index := 1; index <= h.cat.Len(); index++ {
		h.fill(t, index, answers[index])
		fieldErr, err := h.ctrl.Advance(ctx)
		if fieldErr != nil {
			t.Fatalf("page %d rejected: %v", index, fieldErr)
		}
		if index < h.cat.Len() && err != nil {
			t.Fatalf("advance from %d: %v", index, err)
		}
		if index == h.cat.Len() && !catalog.IsOutOfRange(err) {
			t.Fatalf("expected out of range on the last page, got %v", err)
		}
	}

	want := map[string]string{}
	for _, page := range answers {
		for label, value := range page {
			want[label] = value
		}
	}
	if diff := cmp.Diff(want, h.ctrl.Answers()); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
	if h.ctrl.Pending() != nil {
		t.Fatalf("no warning should remain after completion")
	}
}
