package main

import (
	"github.com/spf13/cobra"
)

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post <path> [key=value...]",
	Short: "Publish to a graph path",
	Long: `Publish data to a graph path, for example:

  fbgraph post /me/feed message="hello world"
  fbgraph post /123456/comments message="nice"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPost,
}

// delCmd represents the del command
var delCmd = &cobra.Command{
	Use:   "del <path>",
	Short: "Delete a graph object",
	Long: `Delete a graph object by path, for example:

  fbgraph del /123456`,
	Args: cobra.ExactArgs(1),
	RunE: runDel,
}

func init() {
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(delCmd)
}

func runPost(cmd *cobra.Command, args []string) error {
	payload, err := parseParams(args[1:])
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	res, err := client.Post(ctx, args[0], payload)
	if err != nil {
		return err
	}
	return printResult(res)
}

func runDel(cmd *cobra.Command, args []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	res, err := client.Delete(ctx, args[0])
	if err != nil {
		return err
	}
	return printResult(res)
}
