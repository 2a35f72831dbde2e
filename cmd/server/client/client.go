// Package client provides test commands for the battle gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	battlev1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	playerID string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the battle API",
	Long:  `Client commands allow you to drive battles by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&playerID, "player-id", "", "Player ID")

	ClientCmd.AddCommand(startEncounterCmd)
	ClientCmd.AddCommand(getBattleCmd)
	ClientCmd.AddCommand(nextTurnCmd)
	ClientCmd.AddCommand(captureCmd)
	ClientCmd.AddCommand(endBattleCmd)
	ClientCmd.AddCommand(touchCmd)
	ClientCmd.AddCommand(autoBattleCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createBattleClient creates a battle service client
func createBattleClient() (battlev1alpha1.BattleServiceClient, func(), error) {
	if playerID == "" {
		return nil, nil, fmt.Errorf("--player-id is required")
	}

	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return battlev1alpha1.NewBattleServiceClient(conn), cleanup, nil
}
