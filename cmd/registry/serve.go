package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"contract-registry/internal/interfaces/http/handlers"
	"contract-registry/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

var runServer = func(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newServeCommand(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the contract form API on a local address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.App.Env == "production" {
				gin.SetMode(gin.ReleaseMode)
			}

			r := newRouter(routeDeps{
				contractHandler: handlers.NewContractHandler(a.contracts, a.renderer),
			})
			srv := &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info(ctx, "Contract registry listening", zap.String("addr", addr), zap.String("db", a.dbPath))
			fmt.Fprintf(cmd.ErrOrStderr(), "API: http://%s/api/v1/contracts\n", addr)

			if err := runServer(ctx, srv); err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}
			logger.Info(context.Background(), "Contract registry stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", a.cfg.HTTP.Addr, "listen address")
	return cmd
}
