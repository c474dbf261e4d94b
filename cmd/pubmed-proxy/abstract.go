package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-proxy/internal/shape"
)

var abstractCmd = &cobra.Command{
	Use:   "abstract <pubmed_id>",
	Short: "Print the abstract of one article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := newClient(loadConfig()).FetchRecordXML(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, shape.Abstract(root))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(abstractCmd)
}
