package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ayasaad.dev/internal/handlers"
	"ayasaad.dev/internal/navigation"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.ServerAddr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, watch)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server_addr")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload shell_path when it changes")
	return cmd
}

func (a *app) serve(ctx context.Context, watch bool) error {
	shell, err := a.shell()
	if err != nil {
		return err
	}
	root, err := a.mount(shell)
	if err != nil {
		return err
	}

	if watch {
		if shell.Path() == "" {
			a.logger.Warn("--watch ignored, no shell_path configured")
		} else {
			go func() {
				if err := shell.Watch(ctx, a.logger); err != nil {
					a.logger.Error("shell watcher stopped", "error", err)
				}
			}()
		}
	}

	sessions := navigation.NewSessions()
	go sessions.Run(ctx, time.Minute, a.cfg.SessionIdle, a.logger)

	srv := &http.Server{
		Addr:              a.cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(a.cfg, root, sessions),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
