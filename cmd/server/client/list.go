package client

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	listPage       int
	listSearch     string
	listType       string
	listJSONOutput bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of pokemon",
	Long:  `List one page of pokemon, optionally filtered by a name search and a type.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Case-insensitive name search")
	listCmd.Flags().StringVar(&listType, "type", "", "Type key or localized name")
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting page %d from %s...", listPage, serverAddr)

	resp, err := createAPIClient().ListPokemon(ctx, listPage, listSearch, listType, language)
	if err != nil {
		return fmt.Errorf("failed to list pokemon: %w", err)
	}

	if listJSONOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Page %d of %d (%d pokemon in total, %d shown of %d loaded)\n\n",
		resp.Page.Number, resp.Page.TotalPages, resp.Page.Count, len(resp.Pokemon), resp.Loaded)

	for _, p := range resp.Pokemon {
		fmt.Fprintf(out, "#%-4d %-20s %s\n", p.ID, p.Name, strings.Join(p.Types, ", "))
	}

	if resp.Page.HasNext {
		fmt.Fprintf(os.Stderr, "\nMore results available: --page %d\n", resp.Page.Number+1)
	}
	return nil
}
