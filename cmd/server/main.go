// Package main is the entry point for the pokedex server and its test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Pokedex web server",
	Long: `Pokedex serves localized Pokemon pages and a JSON API assembled on demand from PokeAPI,
plus a gRPC health service for orchestrators.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
