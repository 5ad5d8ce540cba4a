package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/postfolio/meet/internal/api"
	"github.com/postfolio/meet/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "meet",
	Short: "Postfolio client: video calls plus the social-network services",
	Long: `Meet is the command-line client for the Postfolio network. It joins
two-party video-call rooms through the signaling relay and talks to the
auth, profile, connection, post, job and CV services.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)

		var err error
		cfg, err = config.Load()
		return err
	},
}

// Execute runs the CLI. Called once from main.
func Execute() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newAPIClient() (*api.Client, error) {
	store, err := api.NewFileTokenStore()
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.AuthBaseURL, cfg.APIBaseURL, store), nil
}
