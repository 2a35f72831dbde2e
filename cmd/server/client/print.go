package client

import (
	"fmt"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	battlev1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
)

func printBattle(b *battlev1alpha1.Battle) {
	if b == nil {
		fmt.Println("No battle")
		return
	}
	fmt.Printf("⚔️  Battle for %s\n", b.PlayerID)
	fmt.Printf("Status: %s  Outcome: %s  Turn: %d\n", b.Status, b.Outcome, b.Turn)
	printSide("You ", b.Player, b.PlayerHP)
	printSide("Wild", b.Wild, b.WildHP)
	if b.TimedOutAt != nil {
		fmt.Printf("Timed out at: %s\n", b.TimedOutAt.Format("15:04:05"))
	}
}

func printSide(label string, c *entities.Combatant, hp int) {
	if c == nil {
		return
	}
	shiny := ""
	if c.Shiny {
		shiny = " ✨"
	}
	fmt.Printf("  %s: %s Lv%d %v%s  HP %d/%d\n", label, c.Name, c.Level, c.Types, shiny, hp, c.MaxHP)
}

func printTurn(t *entities.TurnOutcome) {
	if t == nil {
		return
	}
	line := fmt.Sprintf("Turn %d: %s used %s on %s for %d",
		t.Turn, t.AttackerName, t.Move, t.DefenderName, t.Damage)
	if t.IsCritical {
		line += " (critical)"
	}
	if t.Effectiveness != entities.EffectivenessNeutral {
		line += fmt.Sprintf(" [%s]", t.Effectiveness)
	}
	fmt.Println(line)
	fmt.Printf("  HP you %d/%d, wild %d/%d\n", t.PlayerHP, t.PlayerMaxHP, t.WildHP, t.WildMaxHP)
}

func printCapture(c *entities.CaptureOutcome) {
	if c == nil {
		return
	}
	fmt.Printf("Threw a %s ball... %d shake(s)\n", c.Ball, c.Shakes)
	if !c.Caught {
		fmt.Println("It broke free!")
		return
	}
	fmt.Println("🎉 Caught!")
	if cr := c.Creature; cr != nil {
		fmt.Printf("  ID: %s\n", cr.ID)
		fmt.Printf("  %s Lv%d grade %s\n", cr.Name, cr.Level, cr.Grade)
		fmt.Printf("  Stats: %+v\n", cr.Stats)
	}
}
