package main

import (
	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwizard/pkg/render"
)

// bind ties a flag of cmd to a config key so an explicit flag wins over file
// and environment values.
func (a *app) bind(cmd *cobra.Command, name, key string) {
	flag := cmd.PersistentFlags().Lookup(name)
	if flag == nil {
		flag = cmd.Flags().Lookup(name)
	}
	if flag == nil {
		return
	}
	_ = a.v.BindPFlag(key, flag)
}

// theme resolves the configured theme, or nil when none was asked for.
func (a *app) theme() (*theme.RendererConfig, error) {
	if a.cfg.Theme.Name == "" && a.cfg.Theme.Variant == "" {
		return nil, nil
	}
	selector := render.NewStaticSelector(render.DefaultManifest())
	return render.ResolveTheme(selector, a.cfg.Theme.Name, a.cfg.Theme.Variant)
}
