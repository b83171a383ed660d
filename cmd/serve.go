package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aashish23092/cashflow-analyzer/handler"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func (cli *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the cash-flow analysis HTTP API",
		RunE:  cli.runServe,
	}
	cmd.Flags().String("port", "8080", "Port to listen on")
	_ = cli.v.BindPFlag("server_port", cmd.Flags().Lookup("port"))
	return cmd
}

func (cli *CLI) runServe(cmd *cobra.Command, _ []string) error {
	svc, err := cli.newService()
	if err != nil {
		return err
	}

	if cli.cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	cashFlowHandler := handler.NewCashFlowHandler(svc, cli.cfg.MaxFileSize)
	router := handler.NewRouter(cashFlowHandler, cli.logger, cli.cfg.MaxMultipartMemory)

	srv := &http.Server{
		Addr:              ":" + cli.cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		cli.logger.Info().
			Str("port", cli.cfg.ServerPort).
			Int("heading_rules", len(svc.Rules().Headings())).
			Msg("starting Cash Flow Analyzer service")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	cli.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
