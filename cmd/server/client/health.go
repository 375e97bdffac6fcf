package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/encoding/protojson"
)

var (
	healthService    string
	healthJSONOutput bool
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Query the gRPC health service",
	RunE:  runHealth,
}

func init() {
	healthCmd.Flags().StringVar(&healthService, "service", "", "Service name to check (empty checks the server)")
	healthCmd.Flags().BoolVar(&healthJSONOutput, "json", false, "Output as JSON")
}

func runHealth(cmd *cobra.Command, _ []string) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{
		Service: healthService,
	})
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if healthJSONOutput {
		marshaler := protojson.MarshalOptions{
			Multiline:       true,
			Indent:          "  ",
			EmitUnpopulated: true,
		}
		data, err := marshaler.Marshal(resp)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.GetStatus().String())
	return nil
}
