package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	formwizard "github.com/goliatone/go-formwizard"
	"github.com/goliatone/go-formwizard/internal/config"
	"github.com/goliatone/go-formwizard/internal/logging"
	"github.com/goliatone/go-formwizard/pkg/catalog"
)

// app carries state shared by the subcommands once the persistent pre-run has
// resolved configuration.
type app struct {
	v       *viper.Viper
	cfgPath string
	cfg     config.Config
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "formwizard",
		Short:         "Multi-page form wizard with validated forward navigation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.cfgPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "config file (default $FORMWIZARD_CONFIG)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("catalog", "", "catalog file; empty uses the built-in sign-up form")
	flags.String("catalog-format", config.CatalogYAML, "catalog format (yaml, openapi)")
	flags.String("policy", "required", "validation policy (required, strict)")
	flags.String("theme", "", "theme name for HTML output")
	flags.String("variant", "", "theme variant, e.g. dark")
	a.bind(root, "log-level", "log.level")
	a.bind(root, "log-format", "log.format")
	a.bind(root, "catalog", "catalog.path")
	a.bind(root, "catalog-format", "catalog.format")
	a.bind(root, "policy", "validation.policy")
	a.bind(root, "theme", "theme.name")
	a.bind(root, "variant", "theme.variant")

	root.AddCommand(
		newServeCmd(a),
		newRunCmd(a),
		newSmokeCmd(a),
		newCatalogCmd(a),
	)
	return root
}

func (a *app) catalog(ctx context.Context) (*catalog.Catalog, error) {
	cat, err := formwizard.LoadCatalog(ctx, a.cfg.Catalog.Path, a.cfg.Catalog.Format)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("catalog loaded", zap.String("path", a.cfg.Catalog.Path), zap.Int("pages", cat.Len()))
	return cat, nil
}
