package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "logistica_cotizaciones/docs"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Logistics Quote Service API
// @version         1.0
// @description     Freight quotes, transport tracking and user notifications.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configFile)
		},
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres schema and the notifications table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context(), configFile)
		},
	}

	root := &cobra.Command{
		Use:           "api",
		Short:         "Logistics quote service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "optional YAML config file")
	root.AddCommand(serve, migrate)
	return root
}

func runServe(ctx context.Context, configFile string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := InitializeApp(ctx, configFile)
	if err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	defer cleanup()

	if err := app.Server.Run(ctx, app.Config.Addr()); err != nil {
		app.Logger.Error("http server stopped", zap.Error(err))
		return err
	}
	return nil
}

func runMigrate(ctx context.Context, configFile string) error {
	migrator, cleanup, err := InitializeMigrator(ctx, configFile)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}
	defer cleanup()
	return migrator.Run(ctx)
}
