package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/validation"
)

// Styles controls how the terminal document is drawn.
type Styles struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Invalid     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Frame       lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1a73e8")),
		Description: lipgloss.NewStyle().Faint(true),
		Label:       lipgloss.NewStyle().Width(24),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("#e8eaed")),
		Invalid:     lipgloss.NewStyle().Foreground(lipgloss.Color("#d93025")).Underline(true),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("#d93025")),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d93025")),
		Frame:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// PlainStyles draws without colors or borders, which keeps output stable for
// logs and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:       plain,
		Description: plain,
		Label:       plain,
		Value:       plain,
		Invalid:     plain,
		Warning:     plain,
		Error:       plain,
		Frame:       plain,
	}
}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithStyles overrides the document styles.
func WithStyles(styles Styles) Option {
	return func(r *Runner) {
		r.styles = styles
	}
}

// WithPolicy selects the validation policy.
func WithPolicy(policy validation.Policy) Option {
	return func(r *Runner) {
		r.policy = policy
	}
}

// WithLogger sets the logger handed to the navigation controller.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithOutput sets where the default driver prints.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		if out != nil {
			r.out = out
		}
	}
}

// WithPrefill seeds answers from an earlier run.
func WithPrefill(values map[string]string) Option {
	return func(r *Runner) {
		r.prefill = values
	}
}
