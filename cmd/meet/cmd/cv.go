package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var cvOutput string

var cvCmd = &cobra.Command{
	Use:   "cv <profile-id>",
	Short: "Download the generated CV for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid profile id %q", args[0])
		}
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		doc, err := client.GenerateCV(id)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cvOutput, doc, 0o644); err != nil {
			return fmt.Errorf("write cv: %w", err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", cvOutput, len(doc))
		return nil
	},
}

func init() {
	cvCmd.Flags().StringVarP(&cvOutput, "output", "o", "cv.pdf", "output file")
	rootCmd.AddCommand(cvCmd)
}
