package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var loginName string

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in against the auth service and store the bearer token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.Login(args[0], args[1]); err != nil {
			return err
		}
		log.Info().Str("module", "cli").Str("email", args[0]).Msg("logged in")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <email> <password>",
	Short: "Create an account and store the issued token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.Register(loginName, args[0], args[1]); err != nil {
			return err
		}
		log.Info().Str("module", "cli").Str("email", args[0]).Msg("registered")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&loginName, "name", "", "display name for the new account")
	rootCmd.AddCommand(loginCmd, registerCmd)
}
