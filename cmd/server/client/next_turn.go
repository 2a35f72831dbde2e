package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	battlev1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
)

var nextTurnCmd = &cobra.Command{
	Use:   "next-turn",
	Short: "Resolve one turn of the player's battle",
	RunE:  runNextTurn,
}

func runNextTurn(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.NextTurn(ctx, &battlev1alpha1.NextTurnRequest{PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to resolve turn: %w", err)
	}

	printTurn(resp.Turn)
	if resp.Turn != nil && resp.Turn.BattleEnded {
		fmt.Printf("\nBattle over: %s\n", resp.Battle.Outcome)
	}
	return nil
}
