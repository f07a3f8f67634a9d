package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/harunnryd/skillmart/internal/config"
	"github.com/harunnryd/skillmart/internal/daemon"
	"github.com/harunnryd/skillmart/internal/daemon/components"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"daemon"},
	Short:   "Serve the catalog over HTTP",
	Long:    `Starts the catalog HTTP API as a long-running service using component lifecycle orchestration. It stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("config not loaded")
		}

		daemonMgr, err := daemon.NewDaemon(cfg)
		if err != nil {
			return fmt.Errorf("failed to create daemon manager: %w", err)
		}

		catalogComp := components.NewCatalogComponent(cfg)
		httpComp := components.NewHTTPServerComponent(daemonMgr, &cfg.Server, catalogComp)

		daemonMgr.AddComponent(catalogComp)
		daemonMgr.AddComponent(httpComp)

		slog.Info("Skillmart starting up...", "host", cfg.Server.Host, "port", cfg.Server.Port, "env", cfg.Env)
		err = daemonMgr.Start(commandContext(cmd))
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				slog.Info("Skillmart stopped gracefully")
				return nil
			}
			return fmt.Errorf("daemon failed: %w", err)
		}

		slog.Info("Skillmart stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("server.host", config.DefaultServerHost, "address to listen on")
	serveCmd.Flags().Int("server.port", config.DefaultServerPort, "port to listen on")
	serveCmd.Flags().Bool("catalog.write_through", false, "persist downloads and ratings to skills.json")
}
