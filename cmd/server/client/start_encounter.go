package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	battlev1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
)

var (
	zoneID       string
	leadSpecies  string
	leadLevel    int
	leadNickname string
)

var startEncounterCmd = &cobra.Command{
	Use:   "start-encounter",
	Short: "Start a wild battle in a zone",
	Long: `Spawn a wild creature in a zone and start a battle against it. Example:

  start-encounter --player-id p1 --zone verdant-meadow --species sproutle --level 8`,
	RunE: runStartEncounter,
}

func init() {
	startEncounterCmd.Flags().StringVar(&zoneID, "zone", "", "Zone ID (required)")
	startEncounterCmd.Flags().StringVar(&leadSpecies, "species", "", "Lead creature species (required)")
	startEncounterCmd.Flags().IntVar(&leadLevel, "level", 5, "Lead creature level")
	startEncounterCmd.Flags().StringVar(&leadNickname, "name", "", "Lead creature nickname")
	_ = startEncounterCmd.MarkFlagRequired("zone")    // nolint:errcheck // safe to ignore in init
	_ = startEncounterCmd.MarkFlagRequired("species") // nolint:errcheck // safe to ignore in init
}

func runStartEncounter(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.StartEncounter(ctx, &battlev1alpha1.StartEncounterRequest{
		PlayerID: playerID,
		ZoneID:   zoneID,
		Lead: &battlev1alpha1.LeadCreature{
			SpeciesID: leadSpecies,
			Level:     leadLevel,
			Name:      leadNickname,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start encounter: %w", err)
	}

	fmt.Printf("🌿 A wild creature appeared in %s (%s encounter, grade %s)\n\n", zoneID, resp.EncounterType, resp.Grade)
	printBattle(resp.Battle)

	return nil
}
