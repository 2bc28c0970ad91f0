package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	formwizard "github.com/goliatone/go-formwizard"
)

func newCatalogCmd(a *app) *cobra.Command {
	var (
		rendererName string
		output       string
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the resolved catalog as JSON or HTML",
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
			themeCfg, err := a.theme()
			if err != nil {
				return err
			}

			out, err := formwizard.Render(ctx, cat, rendererName, formwizard.RenderOptions{
				Policy: policy,
				Theme:  themeCfg,
			})
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "catalog written to %s\n", output)
			return err
		},
	}
	cmd.Flags().StringVar(&rendererName, "renderer", "json", "renderer to use (json, vanilla)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
