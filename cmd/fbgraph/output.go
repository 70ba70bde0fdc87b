package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fbgraph/fbgraph"
	"github.com/fbgraph/fbgraph/filter"
)

// parseParams turns key=value arguments into url.Values.
func parseParams(args []string) (url.Values, error) {
	if len(args) == 0 {
		return nil, nil
	}
	params := url.Values{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", arg)
		}
		params.Add(key, value)
	}
	return params, nil
}

// printResult pretty-prints a result to stdout.
func printResult(res fbgraph.Result) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// filterResult applies an expression filter to the result's data list. An
// empty expression is a no-op; a result without a data list is an error since
// there is nothing to filter.
func filterResult(res fbgraph.Result, expression string) (fbgraph.Result, error) {
	if expression == "" {
		return res, nil
	}

	items := res.List("data")
	if items == nil {
		return nil, fmt.Errorf("response has no data list to filter")
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, err
	}

	matched, err := f.Apply(items)
	if err != nil {
		return nil, err
	}

	filtered := fbgraph.Result{}
	for k, v := range res {
		filtered[k] = v
	}
	filtered["data"] = matched
	return filtered, nil
}
