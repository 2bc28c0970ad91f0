package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwizard/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

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

			srv, err := server.New(cat,
				server.WithLogger(a.logger),
				server.WithPolicy(policy),
				server.WithTheme(themeCfg),
			)
			if err != nil {
				return err
			}
			return srv.Run(ctx, a.cfg.Server.Addr, a.cfg.Server.ShutdownGrace)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Duration("grace", 5*time.Second, "shutdown grace period")
	a.bind(cmd, "addr", "server.addr")
	a.bind(cmd, "grace", "server.shutdown_grace")
	return cmd
}
