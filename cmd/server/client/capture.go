package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	battlev1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
)

var ball string

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Throw a ball at the wild creature",
	Long: `Attempt to capture the wild creature. Balls: poke, great, ultra, master.

  capture --player-id p1 --ball great`,
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().StringVar(&ball, "ball", string(entities.BallPoke), "Ball to throw")
}

func runCapture(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AttemptCapture(ctx, &battlev1alpha1.AttemptCaptureRequest{
		PlayerID: playerID,
		Ball:     entities.Ball(ball),
	})
	if err != nil {
		return fmt.Errorf("failed to attempt capture: %w", err)
	}

	printCapture(resp.Capture)
	return nil
}
