package navigation

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// Validator checks and accepts the fields of a page. *validation.Gate is the
// default implementation.
type Validator interface {
	Validate(fields []model.FieldRecord) *validation.FieldError
	Commit(answers *model.SavedAnswers, fields []model.FieldRecord)
	Policy() validation.Policy
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for faults and transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPolicy installs a validation gate applying policy.
func WithPolicy(policy validation.Policy) Option {
	return func(c *Controller) {
		c.gate = validation.NewGate(policy)
	}
}

// WithValidator replaces the gate entirely.
func WithValidator(v Validator) Option {
	return func(c *Controller) {
		if v != nil {
			c.gate = v
		}
	}
}

// WithAnswers seeds the saved answers, e.g. from a previous run. Every Load
// starts from a copy of the seed.
func WithAnswers(answers *model.SavedAnswers) Option {
	return func(c *Controller) {
		if answers != nil {
			c.seed = answers
			c.answers = model.NewSavedAnswers(answers.Snapshot())
		}
	}
}
