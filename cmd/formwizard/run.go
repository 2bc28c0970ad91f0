package main

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/renderers/tui"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Walk through the form in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cat, err := a.catalog(ctx)
			if err != nil {
				return err
			}
			policy, err := a.cfg.Policy()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			driver, err := tui.NewDriver(a.cfg.Terminal.Driver, out)
			if err != nil {
				return err
			}

			runner := tui.NewRunner(cat,
				tui.WithPromptDriver(driver),
				tui.WithPolicy(policy),
				tui.WithLogger(a.logger),
				tui.WithOutput(out),
			)
			answers, err := runner.Run(ctx)
			switch {
			case errors.Is(err, tui.ErrQuit):
				a.logger.Info("form left before the last page", zap.Int("answers", len(answers)))
			case err != nil:
				return err
			}

			encoded, err := json.MarshalIndent(answers, "", "  ")
			if err != nil {
				return fmt.Errorf("encode answers: %w", err)
			}
			_, err = fmt.Fprintln(out, string(encoded))
			return err
		},
	}
	cmd.Flags().String("driver", tui.DriverSurvey, "prompt driver (survey, huh)")
	a.bind(cmd, "driver", "terminal.driver")
	return cmd
}
