package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vcrobe/noobdev/internal/config"
	"github.com/vcrobe/noobdev/internal/server"
)

// ServeCmd serves the bundle directory.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
	Root string `help:"Bundle directory (overrides config)" type:"path"`
}

// Run implements the serve command.
func (c *ServeCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Addr = c.Addr
	}
	if c.Root != "" {
		cfg.Server.Root = c.Root
	}

	srv, err := server.New(cfg.Server, slog.Default())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
