package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

type huhDriver struct {
	out io.Writer
}

// NewHuhDriver prompts through charmbracelet/huh. Without a TTY on stdin the
// forms fall back to accessible (line based) mode.
func NewHuhDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &huhDriver{out: out}
}

func (d *huhDriver) Input(ctx context.Context, prompt TextPrompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer := prompt.Default
	input := huh.NewInput().
		Title(prompt.Title()).
		Placeholder(prompt.Placeholder).
		Value(&answer)
	if err := newForm(huh.NewGroup(input)).Run(); err != nil {
		return "", huhErr(err)
	}
	return answer, nil
}

func (d *huhDriver) Select(ctx context.Context, prompt ChoicePrompt) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(prompt.Options) == 0 {
		return 0, ErrNoOptions
	}
	answer := prompt.preset()
	sel := huh.NewSelect[string]().
		Title(prompt.Title()).
		Options(huh.NewOptions(prompt.Options...)...).
		Height(min(len(prompt.Options), 12) + 2).
		Value(&answer)
	if err := newForm(huh.NewGroup(sel)).Run(); err != nil {
		return 0, huhErr(err)
	}
	return slices.Index(prompt.Options, answer), nil
}

func (d *huhDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

func huhErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
