package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	battlev1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
)

var getBattleCmd = &cobra.Command{
	Use:   "get-battle",
	Short: "Show the player's current battle",
	RunE:  runGetBattle,
}

func runGetBattle(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetBattle(ctx, &battlev1alpha1.GetBattleRequest{PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to get battle: %w", err)
	}

	printBattle(resp.Battle)
	return nil
}
