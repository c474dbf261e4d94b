package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-proxy/internal/shape"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords <pubmed_id>",
	Short: "Print the keywords of one article, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		doc, err := newClient(loadConfig()).FetchSummaries(cmd.Context(), []string{id})
		if err != nil {
			return err
		}
		kw, err := shape.Keywords(doc, id)
		if err != nil {
			return err
		}
		writeKeywords(os.Stdout, kw)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

func writeKeywords(w io.Writer, kw types.Keywords) {
	if !kw.Found {
		fmt.Fprintln(w, types.KeywordsNotFound)
		return
	}
	for _, term := range kw.Terms {
		fmt.Fprintln(w, term)
	}
}
