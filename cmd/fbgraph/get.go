package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fbgraph/fbgraph"
)

var (
	getParams []string
	getFilter string
)

// maxConcurrentGets bounds concurrent fetches when several paths are given.
const maxConcurrentGets = 5

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <path> [path...]",
	Short: "Fetch one or more graph objects",
	Long: `Fetch graph objects by path, for example:

  fbgraph get /me
  fbgraph get /me/friends --param fields=name,location
  fbgraph get /me /me/friends /me/photos

Multiple paths are fetched concurrently; each result is printed in the
order the paths were given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringArrayVar(&getParams, "param", nil, "query parameter as key=value (repeatable)")
	getCmd.Flags().StringVar(&getFilter, "filter", "", "expression applied to each entry of the data list")
}

func runGet(cmd *cobra.Command, args []string) error {
	params, err := parseParams(getParams)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	results := make([]fbgraph.Result, len(args))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentGets)

	// Each goroutine writes its own slot; g.Wait orders the reads after them.
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			res, err := client.Get(ctx, path, params)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		res, err := filterResult(res, getFilter)
		if err != nil {
			return err
		}
		if err := printResult(res); err != nil {
			return err
		}
	}

	return nil
}
