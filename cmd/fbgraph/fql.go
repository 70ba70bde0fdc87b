package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fbgraph/fbgraph"
)

var (
	fqlNamed  []string
	fqlFilter string
)

// fqlCmd represents the fql command
var fqlCmd = &cobra.Command{
	Use:   "fql [query]",
	Short: "Run an FQL query or multiquery",
	Long: `Run an FQL query, for example:

  fbgraph fql "SELECT name FROM user WHERE uid = me()"

A multiquery bundles several named queries into one request:

  fbgraph fql --named me="SELECT uid FROM user WHERE uid = me()" \
              --named friends="SELECT uid2 FROM friend WHERE uid1 IN (SELECT uid FROM #me)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFQL,
}

func init() {
	rootCmd.AddCommand(fqlCmd)

	fqlCmd.Flags().StringArrayVar(&fqlNamed, "named", nil, "named query as name=query for a multiquery (repeatable)")
	fqlCmd.Flags().StringVar(&fqlFilter, "filter", "", "expression applied to each entry of the data list")
}

func runFQL(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(fqlNamed) == 0 {
		return fmt.Errorf("either a query argument or at least one --named query is required")
	}
	if len(args) > 0 && len(fqlNamed) > 0 {
		return fmt.Errorf("a query argument and --named queries are mutually exclusive")
	}

	ctx, cancel := requestContext()
	defer cancel()

	var res fbgraph.Result
	var err error

	if len(args) > 0 {
		res, err = client.FQL(ctx, args[0])
	} else {
		queries := make(map[string]string, len(fqlNamed))
		for _, nq := range fqlNamed {
			name, q, found := strings.Cut(nq, "=")
			if !found || name == "" {
				return fmt.Errorf("invalid named query %q: expected name=query", nq)
			}
			queries[name] = q
		}
		res, err = client.FQLMulti(ctx, queries)
	}
	if err != nil {
		return err
	}

	res, err = filterResult(res, fqlFilter)
	if err != nil {
		return err
	}
	return printResult(res)
}
