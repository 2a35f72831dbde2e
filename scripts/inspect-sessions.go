// Command inspect-sessions scans stored battle sessions and offers to delete
// the ones that no longer decode or break the session invariants.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning battle sessions...")

	iter := client.Scan(ctx, 0, "battle_session:*", 0).Iterator()

	var brokenKeys []string
	var checkedCount int
	statusCounts := map[entities.SessionStatus]int{}

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var session entities.BattleSession
		if err := json.Unmarshal(data, &session); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			brokenKeys = append(brokenKeys, key)
			continue
		}

		if problem := checkSession(&session); problem != "" {
			fmt.Printf("✗ %s: %s\n", key, problem)
			brokenKeys = append(brokenKeys, key)
			continue
		}
		statusCounts[session.Status]++
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d sessions, found %d broken\n", checkedCount, len(brokenKeys))
	for status, n := range statusCounts {
		fmt.Printf("  %s: %d\n", status, n)
	}

	if len(brokenKeys) == 0 {
		return
	}

	fmt.Print("\nDo you want to DELETE the broken sessions? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}
	for _, key := range brokenKeys {
		playerID := strings.TrimPrefix(key, "battle_session:")
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.SRem(ctx, "battle_index:active", playerID)
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
}

// checkSession returns a description of the first broken invariant, or ""
func checkSession(s *entities.BattleSession) string {
	switch {
	case s.PlayerID == "":
		return "missing player_id"
	case !s.Status.Valid():
		return fmt.Sprintf("unknown status %q", s.Status)
	case s.Player == nil || s.Wild == nil:
		return "missing combatant"
	case s.PlayerHP < 0 || s.PlayerHP > s.Player.MaxHP:
		return fmt.Sprintf("player_hp %d outside [0, %d]", s.PlayerHP, s.Player.MaxHP)
	case s.WildHP < 0 || s.WildHP > s.Wild.MaxHP:
		return fmt.Sprintf("wild_hp %d outside [0, %d]", s.WildHP, s.Wild.MaxHP)
	case s.Status == entities.StatusTimedOut && s.TimedOutAt == nil:
		return "timed out without timed_out_at"
	}
	return ""
}
