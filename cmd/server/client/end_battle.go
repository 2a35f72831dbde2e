package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	battlev1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
)

var endBattleCmd = &cobra.Command{
	Use:   "end-battle",
	Short: "End the player's battle and discard it",
	RunE:  runEndBattle,
}

var touchCmd = &cobra.Command{
	Use:   "touch",
	Short: "Refresh the battle's activity timestamp",
	RunE:  runTouch,
}

func runEndBattle(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.EndBattle(ctx, &battlev1alpha1.EndBattleRequest{PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to end battle: %w", err)
	}

	fmt.Println("Battle ended")
	printBattle(resp.Battle)
	return nil
}

func runTouch(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Touch(ctx, &battlev1alpha1.TouchRequest{PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to touch battle: %w", err)
	}

	if resp.Touched {
		fmt.Println("Battle kept alive")
	} else {
		fmt.Println("No playable battle to keep alive")
	}
	return nil
}
