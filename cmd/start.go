package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"text-share/core/config"
	"text-share/core/loader"
	"text-share/core/logger"
	"text-share/core/server"
	"text-share/feature/pages"
	"text-share/feature/text"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Text Share API
// @version 1.0
// @description Shared text buffer: submit text from one client and read it from another.
// @host localhost:3000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the text-share server",
	Long:  `Starts the HTTP server with the text API and the submission/reading pages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The store lives as long as the process; a restart resets it to "".
		store := text.NewStore()

		mgr := loader.NewManager()
		mgr.Register(text.NewFeature(store, logg))
		mgr.Register(pages.NewFeature(cfg.Server.PublicDir, logg))

		app, err := server.NewApp(cfg.Server, logg, mgr)
		if err != nil {
			return fmt.Errorf("failed to build server: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Server is running on "+cfg.Server.BaseURL(), zap.String("port", cfg.Server.Port))
			errCh <- app.Listen(cfg.Server.Addr())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-sig:
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
