package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/postfolio/meet/internal/api"
)

var postContent string

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "List the latest posts from your connections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		posts, err := client.Feed()
		if err != nil {
			return err
		}
		for _, p := range posts {
			line := p.Content
			if len(p.Tags) > 0 {
				line += " [" + strings.Join(p.Tags, ", ") + "]"
			}
			fmt.Printf("#%d (%s) %s\n", p.ID, p.CreatedAt, line)
		}
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Publish a post to your feed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		p, err := client.CreatePost(api.CreatePost{Content: postContent})
		if err != nil {
			return err
		}
		fmt.Printf("posted #%d\n", p.ID)
		return nil
	},
}

func init() {
	postCmd.Flags().StringVarP(&postContent, "content", "c", "", "post body")
	_ = postCmd.MarkFlagRequired("content")
	rootCmd.AddCommand(feedCmd, postCmd)
}
