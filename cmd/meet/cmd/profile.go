package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your own profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		p, err := client.Me()
		if err != nil {
			return err
		}
		fmt.Printf("#%d %s <%s>\n", p.ID, p.Name, p.Email)
		if p.PositionOrInstitue != "" {
			fmt.Println(p.PositionOrInstitue)
		}
		if p.Bio != "" {
			fmt.Println(p.Bio)
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search for people on the network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		users, err := client.SearchUsers(args[0])
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("#%d %s <%s>\n", u.ID, u.Name, u.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd, searchCmd)
}
