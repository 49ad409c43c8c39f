package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-quotepdf/internal/config"
	"github.com/alnah/go-quotepdf/internal/logger"
	"github.com/alnah/go-quotepdf/internal/server"
)

func newServeCmd(env *Environment, g *globalFlags) *cobra.Command {
	f := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the quotation HTTP API",
		Long: `Serve the quotation HTTP API.

  POST /generate-quotation      render, store under the public dir, return {success, file}
  POST /generate-quotation/pdf  render and return the PDF bytes
  GET  /templates               list template bundles
  GET  /health                  liveness and uptime
  GET  /public/*                generated files`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(env, g, f.apply)
			if err != nil {
				return err
			}
			return runServe(cmd, env, a)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func runServe(cmd *cobra.Command, env *Environment, a *app) error {
	cfg := a.cfg.Server
	srv := server.New(a.gen, a.reg, serverConfig(cfg),
		server.WithLogger(logger.WithComponent(a.log, "http")),
		server.WithClock(env.Now),
	)
	if err := srv.ListenAndServe(cmd.Context(), cfg.Addr, cfg.ShutdownTimeout); err != nil {
		return fmt.Errorf("serving on %s: %w", cfg.Addr, err)
	}
	return nil
}

func serverConfig(c config.ServerConfig) server.Config {
	return server.Config{
		PublicDir:    c.PublicDir,
		PublicURL:    c.PublicURL,
		MaxBodyBytes: c.MaxBodyBytes,
	}
}
