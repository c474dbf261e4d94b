package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-proxy/internal/search"
	"github.com/pdiddy/pubmed-proxy/internal/shape"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search PubMed and print one page of results",
	Long: `Search runs the same flow as the web form: esearch for the requested page,
then esummary for the returned identifiers. Results print as a table, JSON,
or CSL-YAML. A search can be saved to a file with --save and printed again
later with --load, without querying PubMed.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("term", "", "search term, passed to esearch as given")
	searchCmd.Flags().Int("page", 1, "1-based results page")
	searchCmd.Flags().String("format", "table", "output format: table, json, csl")
	searchCmd.Flags().String("save", "", "write the query and results to this YAML file")
	searchCmd.Flags().String("load", "", "print results from a saved YAML file instead of searching")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	cfg := loadConfig()
	pager := shape.NewPaginator(cfg.Search.PageSize)

	if path, _ := cmd.Flags().GetString("load"); path != "" {
		qf, err := search.ReadQueryFile(path)
		if err != nil {
			return err
		}
		first := (qf.Query.Page-1)*qf.Summary.PageSize + 1
		return printPage(format, qf.Results, first)
	}

	term, _ := cmd.Flags().GetString("term")
	page, _ := cmd.Flags().GetInt("page")
	if strings.TrimSpace(term) == "" {
		return errors.New("--term is required")
	}
	if page < 1 {
		return errors.New("--page must be a positive integer")
	}

	q := types.SearchQuery{Term: term, Page: page}
	p, err := search.Run(cmd.Context(), newClient(cfg), pager, q)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := search.WriteQueryFile(path, q, pager.PageSize(), p); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved search to", path)
	}

	return printPage(format, p, pager.Offset(page)+1)
}

func printPage(format string, p types.SearchResultPage, first int) error {
	switch format {
	case "table":
		search.FormatTable(p, first, os.Stdout)
		return nil
	case "json":
		return search.FormatJSON(p, os.Stdout)
	case "csl":
		return search.FormatCSL(p, os.Stdout)
	default:
		return errors.Newf("unknown format %q (want table, json, or csl)", format)
	}
}
