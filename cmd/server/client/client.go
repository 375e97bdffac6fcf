// Package client provides test commands for the pokedex HTTP API and gRPC
// health service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	// Connection flags
	serverAddr string
	grpcAddr   string
	timeout    time.Duration
	language   string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the pokedex server",
	Long:  `Client commands query a running pokedex server through its JSON API and health service.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "addr", "http://localhost:8080", "HTTP server base URL")
	ClientCmd.PersistentFlags().StringVar(&grpcAddr, "grpc-addr", "localhost:50051", "gRPC health server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&language, "lang", "", "Display language (server default when empty)")

	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(typesCmd)
	ClientCmd.AddCommand(healthCmd)
}

// createConnection creates a gRPC connection to the health server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(grpcAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

func createAPIClient() *apiClient {
	return newAPIClient(serverAddr, timeout)
}
