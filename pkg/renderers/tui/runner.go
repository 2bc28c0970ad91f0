package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/history"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/navigation"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// Address is the base address recorded in the terminal history.
const Address = "formwizard://form"

// Actions offered after the fields of a page.
const (
	ActionNext = "Next"
	ActionBack = "Back"
	ActionQuit = "Quit"
)

const skipOption = "(skip)"

// Runner walks a catalog in the terminal, one page at a time, through the
// same navigation controller the browser uses.
type Runner struct {
	catalog *catalog.Catalog
	driver  PromptDriver
	styles  Styles
	policy  validation.Policy
	logger  *zap.Logger
	out     io.Writer
	prefill map[string]string
}

// NewRunner constructs a runner with the survey driver and default styles.
func NewRunner(cat *catalog.Catalog, options ...Option) *Runner {
	r := &Runner{
		catalog: cat,
		styles:  DefaultStyles(),
		policy:  validation.PolicyRequired,
		logger:  zap.NewNop(),
		out:     os.Stdout,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	return r
}

// Run prompts until the last page is accepted and returns the answers. Quitting
// early returns the answers accepted so far together with ErrQuit.
func (r *Runner) Run(ctx context.Context) (map[string]string, error) {
	if r.catalog == nil {
		return nil, errors.New("tui: catalog is required")
	}

	doc := NewDocument(r.catalog.Pages(), r.styles)
	stack := history.NewStack(Address)
	ctrl := navigation.New(r.catalog, doc, stack,
		navigation.WithLogger(r.logger),
		navigation.WithPolicy(r.policy),
		navigation.WithAnswers(model.NewSavedAnswers(r.prefill)),
	)
	if err := ctrl.Load(ctx, Address); err != nil {
		return nil, err
	}
	if err := ctrl.Prefill(ctx, 1); err != nil {
		return nil, err
	}

	for {
		if err := r.driver.Info(ctx, doc.View()); err != nil {
			return ctrl.Answers(), err
		}
		if err := r.promptPage(ctx, ctrl, doc); err != nil {
			return ctrl.Answers(), err
		}

		action, err := r.promptAction(ctx, stack)
		if err != nil {
			return ctrl.Answers(), err
		}

		switch action {
		case ActionQuit:
			return ctrl.Answers(), ErrQuit
		case ActionBack:
			event, ok := stack.Back()
			if !ok {
				continue
			}
			if err := ctrl.Restore(ctx, event); err != nil {
				return ctrl.Answers(), err
			}
			if err := ctrl.Prefill(ctx, ctrl.Index()); err != nil {
				return ctrl.Answers(), err
			}
		default:
			fieldErr, err := ctrl.Advance(ctx)
			switch {
			case catalog.IsOutOfRange(err):
				return ctrl.Answers(), nil
			case err != nil:
				return ctrl.Answers(), err
			case fieldErr != nil:
				r.logger.Debug("page rejected", zap.String("field", fieldErr.Label))
			default:
				if err := ctrl.Prefill(ctx, ctrl.Index()); err != nil {
					return ctrl.Answers(), err
				}
			}
		}
	}
}

func (r *Runner) promptPage(ctx context.Context, ctrl *navigation.Controller, doc *Document) error {
	fields, err := r.catalog.Fields(ctrl.Index())
	if err != nil {
		return err
	}
	for _, field := range fields {
		if err := r.promptField(ctx, ctrl, doc, field); err != nil {
			return err
		}
	}
	return nil
}

// promptField asks for one value. Under the strict policy a rejected value is
// reported and the prompt repeats with the last accepted value.
func (r *Runner) promptField(ctx context.Context, ctrl *navigation.Controller, doc *Document, field model.FieldSpec) error {
	current := doc.Value(field.Label)
	for {
		value, err := r.ask(ctx, field, current)
		if err != nil {
			return err
		}
		accepted, fieldErr, err := ctrl.Input(ctx, field.Label, value)
		if err != nil {
			return err
		}
		if fieldErr == nil {
			return nil
		}
		if err := r.driver.Info(ctx, r.styles.Warning.Render("! "+fieldErr.Message)); err != nil {
			return err
		}
		current = accepted
	}
}

func (r *Runner) ask(ctx context.Context, field model.FieldSpec, current string) (string, error) {
	if field.Kind != model.FieldKindSelect || len(field.Options) == 0 {
		return r.driver.Input(ctx, TextPrompt{
			Label:       field.Label,
			Required:    field.Required,
			Default:     current,
			Placeholder: field.Placeholder,
		})
	}

	options := slices.Clone(field.Options)
	if !field.Required {
		options = append([]string{skipOption}, options...)
	}
	idx, err := r.driver.Select(ctx, ChoicePrompt{
		Label:    field.Label,
		Required: field.Required,
		Options:  options,
		Default:  max(slices.Index(options, current), 0),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("tui: select index %d out of range for %q", idx, field.Label)
	}
	if options[idx] == skipOption {
		return "", nil
	}
	return options[idx], nil
}

func (r *Runner) promptAction(ctx context.Context, stack *history.Stack) (string, error) {
	actions := []string{ActionNext}
	if stack.CanGoBack() {
		actions = append(actions, ActionBack)
	}
	actions = append(actions, ActionQuit)

	idx, err := r.driver.Select(ctx, ChoicePrompt{Label: "Continue", Options: actions})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(actions) {
		return "", fmt.Errorf("tui: action index %d out of range", idx)
	}
	return actions[idx], nil
}
