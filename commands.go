package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"training-chatbot/internal/infra/handlers"
	"training-chatbot/internal/infra/routes"
	"training-chatbot/internal/middleware"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(a.log))
	router.Use(middleware.MetricsMiddleware(a.metrics))

	routes.NewRoutes(router, handlers.NewHttpHandlers(a.log, a.conversation), a.metrics, a.cfg.ChatMode).Init()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.cfg.Port),
		Handler:           middleware.CORS(a.cfg.CORSAllowedOrigins)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serverErr := make(chan error, 1)
	go func() {
		a.log.Info(fmt.Sprintf("Server is running on port %s in %s mode", a.cfg.Port, a.cfg.ChatMode))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		a.log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
		return err
	case <-stop:
	case <-ctx.Done():
	}
	a.log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
		return err
	}
	a.log.Info("Server stopped gracefully.")
	return nil
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <userId>",
		Short: "Print the stored chat history of a user as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			transcript, err := a.conversation.GetHistory(ctx, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(transcript.Messages())
		},
	}
}

func newCompanyInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "company-info <details>",
		Short: "Replace the company details used by simulated customers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			if err := a.conversation.UpdateCompanyProfile(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Company information updated successfully")
			return nil
		},
	}
}
