package cmd

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/fourkey/topdesk-gateway/pkg/gateway"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gateway HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		var config *gateway.Config
		var err error
		if configFile := viper.GetString("config_file"); configFile != "" {
			config, err = gateway.LoadConfigFile(configFile)
		} else {
			config, err = gateway.FromEnv()
		}
		cobra.CheckErr(err)

		api, err := gateway.New(config)
		cobra.CheckErr(err)

		e := echo.New()
		e.HideBanner = true
		e.Use(middleware.Recover())
		api.MountRoutes(e.Group("/v1"))

		slog.Info("Starting topdesk-gateway", "addr", config.Address, "topdesk_url", config.TOPdesk.BaseURL)
		if err := e.Start(config.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	},
}
