package client

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

var getJSONOutput bool

var getCmd = &cobra.Command{
	Use:   "get [id-or-name]",
	Short: "Get the detail record of one pokemon",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getJSONOutput, "json", false, "Output as JSON")
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting pokemon %s from %s...", args[0], serverAddr)

	resp, err := createAPIClient().GetPokemon(ctx, args[0], language)
	if err != nil {
		return fmt.Errorf("failed to get pokemon: %w", err)
	}

	if getJSONOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	p := resp.Pokemon
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "#%d %s\n", p.ID, p.Name)
	fmt.Fprintf(out, "   Types: %s\n", strings.Join(p.Types, ", "))
	fmt.Fprintf(out, "   Height: %d cm\n", p.HeightCM)
	fmt.Fprintf(out, "   Weight: %g kg\n", p.WeightKG)
	if len(p.Abilities) > 0 {
		fmt.Fprintf(out, "   Abilities: %s\n", strings.Join(p.Abilities, ", "))
	}
	fmt.Fprintf(out, "   Stats:\n")
	for _, stat := range p.Stats {
		fmt.Fprintf(out, "     - %s: %d\n", stat.Label, stat.Value)
	}
	fmt.Fprintf(out, "\n%s\n", p.Description)
	return nil
}
