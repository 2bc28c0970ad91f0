package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// TextPrompt asks for a free-text field value.
type TextPrompt struct {
	Label       string
	Required    bool
	Default     string
	Placeholder string
}

// Title is the prompt line shown to the user.
func (p TextPrompt) Title() string {
	return promptTitle(p.Label, p.Required)
}

// ChoicePrompt asks the user to pick one of Options. Default indexes the
// preselected option.
type ChoicePrompt struct {
	Label    string
	Required bool
	Options  []string
	Default  int
}

// Title is the prompt line shown to the user.
func (p ChoicePrompt) Title() string {
	return promptTitle(p.Label, p.Required)
}

func (p ChoicePrompt) preset() string {
	if p.Default < 0 || p.Default >= len(p.Options) {
		return ""
	}
	return p.Options[p.Default]
}

func promptTitle(label string, required bool) string {
	if required {
		return label + " *"
	}
	return label
}

// PromptDriver is the terminal seen by the Runner. Tests substitute a stub;
// NewDriver picks a real implementation.
type PromptDriver interface {
	Input(ctx context.Context, prompt TextPrompt) (string, error)
	Select(ctx context.Context, prompt ChoicePrompt) (int, error)
	Info(ctx context.Context, msg string) error
}

// Driver names accepted by NewDriver.
const (
	DriverSurvey = "survey"
	DriverHuh    = "huh"
)

// NewDriver returns the prompt driver registered under name.
func NewDriver(name string, out io.Writer) (PromptDriver, error) {
	switch name {
	case "", DriverSurvey:
		return NewSurveyDriver(out), nil
	case DriverHuh:
		return NewHuhDriver(out), nil
	default:
		return nil, fmt.Errorf("tui: unknown prompt driver %q", name)
	}
}

type surveyDriver struct {
	out io.Writer
}

// NewSurveyDriver prompts through AlecAivazis/survey.
func NewSurveyDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &surveyDriver{out: out}
}

func (d *surveyDriver) Input(ctx context.Context, prompt TextPrompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var answer string
	question := &survey.Input{
		Message: prompt.Title(),
		Default: prompt.Default,
		Help:    prompt.Placeholder,
	}
	if err := survey.AskOne(question, &answer); err != nil {
		return "", surveyErr(err)
	}
	return answer, nil
}

func (d *surveyDriver) Select(ctx context.Context, prompt ChoicePrompt) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(prompt.Options) == 0 {
		return 0, ErrNoOptions
	}
	var answer string
	question := &survey.Select{
		Message:  prompt.Title(),
		Options:  prompt.Options,
		PageSize: min(len(prompt.Options), 12),
	}
	if preset := prompt.preset(); preset != "" {
		question.Default = preset
	}
	if err := survey.AskOne(question, &answer); err != nil {
		return 0, surveyErr(err)
	}
	return slices.Index(prompt.Options, answer), nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func surveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
