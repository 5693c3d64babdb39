package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"portfoliotracker/cmd"
	"portfoliotracker/internal/logger"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the http api and the sync scheduler",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		deps, err := loadDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		lg := logger.New()
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", deps.Config.Server.Port),
			Handler: deps.ApiHandler.InitializeRouterEngine(),
		}

		deps.Scheduler.Start()

		errCh := make(chan error, 1)
		go func() {
			lg.Infof("listening on %s", server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		lg.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}
