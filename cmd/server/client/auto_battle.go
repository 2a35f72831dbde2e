package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	battlev1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
)

var (
	tickInterval   time.Duration
	captureBelowHP float64
	maxTurns       int
)

var autoBattleCmd = &cobra.Command{
	Use:   "auto-battle",
	Short: "Play the current battle turn by turn until it ends",
	Long: `Resolve turns on an interval the way an idle client would. When the wild
creature drops under the capture threshold a ball is thrown instead.

  auto-battle --player-id p1 --tick 500ms --capture-below 0.25 --ball great`,
	RunE: runAutoBattle,
}

func init() {
	autoBattleCmd.Flags().DurationVar(&tickInterval, "tick", time.Second, "Delay between turns")
	autoBattleCmd.Flags().Float64Var(&captureBelowHP, "capture-below", 0, "Throw a ball when wild HP fraction falls below this (0 disables)")
	autoBattleCmd.Flags().StringVar(&ball, "ball", string(entities.BallPoke), "Ball to throw")
	autoBattleCmd.Flags().IntVar(&maxTurns, "max-turns", 200, "Stop after this many turns")
}

func runAutoBattle(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for i := 0; i < maxTurns; i++ {
		done, err := autoStep(client)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		<-ticker.C
	}

	fmt.Printf("Stopped after %d turns\n", maxTurns)
	return nil
}

// autoStep plays one turn or throw and reports whether the battle is over
func autoStep(client battlev1alpha1.BattleServiceClient) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	state, err := client.GetBattle(ctx, &battlev1alpha1.GetBattleRequest{PlayerID: playerID})
	if err != nil {
		return false, fmt.Errorf("failed to get battle: %w", err)
	}
	b := state.Battle
	if b.Status != entities.StatusBattling {
		fmt.Printf("Battle is %s (%s)\n", b.Status, b.Outcome)
		return true, nil
	}

	if captureBelowHP > 0 && b.Wild != nil && b.Wild.MaxHP > 0 &&
		float64(b.WildHP)/float64(b.Wild.MaxHP) < captureBelowHP {
		resp, err := client.AttemptCapture(ctx, &battlev1alpha1.AttemptCaptureRequest{
			PlayerID: playerID,
			Ball:     entities.Ball(ball),
		})
		if err != nil {
			return false, fmt.Errorf("failed to attempt capture: %w", err)
		}
		printCapture(resp.Capture)
		return resp.Capture.Caught, nil
	}

	resp, err := client.NextTurn(ctx, &battlev1alpha1.NextTurnRequest{PlayerID: playerID})
	if err != nil {
		return false, fmt.Errorf("failed to resolve turn: %w", err)
	}
	printTurn(resp.Turn)
	if resp.Turn.BattleEnded {
		fmt.Printf("\nBattle over: %s\n", resp.Battle.Outcome)
		return true, nil
	}
	return false, nil
}
