package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fourkey/topdesk-gateway/pkg/gateway"
	"github.com/fourkey/topdesk-gateway/pkg/topdesk"
	"github.com/joho/godotenv"
	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose = false
var envFile = ""

var (
	rootCmd = &cobra.Command{
		Use:   "topdesk-gateway",
		Short: "HTTP gateway for the TOPdesk ITSM API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					fmt.Fprintf(os.Stderr, "Failed to load env file: %v\n", err)
					os.Exit(1)
				}
			} else {
				godotenv.Load()
			}

			logLevel := slog.LevelInfo
			if verbose {
				logLevel = slog.LevelDebug
			}
			if os.Getenv("PRETTY_LOGS") != "false" {
				logger := slog.New(
					console.NewHandler(os.Stderr, &console.HandlerOptions{Level: logLevel}),
				)
				slog.SetDefault(logger)
			} else {
				slog.SetLogLoggerLevel(logLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	viper.AutomaticEnv()
	persistentFlags := rootCmd.PersistentFlags()
	persistentFlags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	persistentFlags.StringVarP(&envFile, "env-file", "e", "", "load environment from file")
	persistentFlags.StringP("config-file", "f", "", "YAML config file, overrides environment settings")
	viper.BindPFlag("config_file", persistentFlags.Lookup("config-file"))
}

// newClient builds a TOPdesk client from the environment, for the commands
// that exercise the API directly.
func newClient() (*topdesk.Client, error) {
	return topdesk.NewClient(gateway.TOPdeskFromEnv())
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	cobra.CheckErr(err)
	fmt.Println(string(data))
}
