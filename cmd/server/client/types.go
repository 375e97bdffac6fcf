package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var typesJSONOutput bool

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the localized type menu",
	RunE:  runTypes,
}

func init() {
	typesCmd.Flags().BoolVar(&typesJSONOutput, "json", false, "Output as JSON")
}

func runTypes(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := createAPIClient().ListTypes(ctx, language)
	if err != nil {
		return fmt.Errorf("failed to list types: %w", err)
	}

	if typesJSONOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	for _, t := range resp.Types {
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", t.Key, t.Name)
	}
	return nil
}
