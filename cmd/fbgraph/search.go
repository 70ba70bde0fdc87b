package main

import (
	"github.com/spf13/cobra"

	"github.com/fbgraph/fbgraph"
)

var (
	searchOpts   fbgraph.SearchOptions
	searchFilter string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the graph",
	Long: `Search the graph for objects of a given type, for example:

  fbgraph search --q coffee --type place --center 37.76,-122.42 --distance 1000`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchOpts.Query, "q", "", "search query")
	searchCmd.Flags().StringVar(&searchOpts.Type, "type", "", "object type (place, user, page, ...)")
	searchCmd.Flags().StringVar(&searchOpts.Center, "center", "", "latitude,longitude for place searches")
	searchCmd.Flags().IntVar(&searchOpts.Distance, "distance", 0, "search radius in meters")
	searchCmd.Flags().StringVar(&searchOpts.Fields, "fields", "", "comma-separated fields to return")
	searchCmd.Flags().IntVar(&searchOpts.Limit, "limit", 0, "maximum number of results")
	searchCmd.Flags().StringVar(&searchFilter, "filter", "", "expression applied to each entry of the data list")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	res, err := client.Search(ctx, searchOpts)
	if err != nil {
		return err
	}

	res, err = filterResult(res, searchFilter)
	if err != nil {
		return err
	}
	return printResult(res)
}
