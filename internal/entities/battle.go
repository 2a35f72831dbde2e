package entities

import "time"

// SessionStatus is the lifecycle status of a battle session
type SessionStatus string

// Session statuses
const (
	StatusBattling SessionStatus = "battling"
	StatusCatching SessionStatus = "catching"
	StatusComplete SessionStatus = "complete"
	StatusTimedOut SessionStatus = "timed_out"
)

// Valid reports whether s is a known status
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusBattling, StatusCatching, StatusComplete, StatusTimedOut:
		return true
	}
	return false
}

// BattleOutcome is the turn-level state of the fight itself
type BattleOutcome string

// Battle outcomes
const (
	OutcomeOngoing     BattleOutcome = "ongoing"
	OutcomePlayerWin   BattleOutcome = "player_win"
	OutcomePlayerFaint BattleOutcome = "player_faint"
	OutcomeCaught      BattleOutcome = "caught"
)

// Side identifies which combatant acted
type Side string

// Sides
const (
	SidePlayer Side = "player"
	SideWild   Side = "wild"
)

// BattleSession is the authoritative state of one player's battle
type BattleSession struct {
	PlayerID       string        `json:"player_id"`
	Player         *Combatant    `json:"player"`
	Wild           *Combatant    `json:"wild"`
	PlayerHP       int           `json:"player_hp"`
	WildHP         int           `json:"wild_hp"`
	Turn           int           `json:"turn"`
	PlayerFirst    bool          `json:"player_first"`
	Status         SessionStatus `json:"status"`
	Outcome        BattleOutcome `json:"outcome"`
	CreatedAt      time.Time     `json:"created_at"`
	LastActivityAt time.Time     `json:"last_activity_at"`
	TimedOutAt     *time.Time    `json:"timed_out_at,omitempty"`
}

// Clone returns a deep copy so callers never alias stored state
func (s *BattleSession) Clone() *BattleSession {
	if s == nil {
		return nil
	}
	out := *s
	out.Player = s.Player.Clone()
	out.Wild = s.Wild.Clone()
	if s.TimedOutAt != nil {
		t := *s.TimedOutAt
		out.TimedOutAt = &t
	}
	return &out
}

// ActingSide returns the side that acts on the given turn. The first mover
// acts on even turns and the other side on odd turns.
func (s *BattleSession) ActingSide(turn int) Side {
	isEvenTurn := turn%2 == 0
	if isEvenTurn == s.PlayerFirst {
		return SidePlayer
	}
	return SideWild
}

// IdleFor returns how long the session has gone without activity
func (s *BattleSession) IdleFor(now time.Time) time.Duration {
	return now.Sub(s.LastActivityAt)
}

// TurnOutcome is the immutable record of one resolved turn
type TurnOutcome struct {
	Turn          int           `json:"turn"`
	Actor         Side          `json:"actor"`
	AttackerName  string        `json:"attacker_name"`
	DefenderName  string        `json:"defender_name"`
	Damage        int           `json:"damage"`
	IsCritical    bool          `json:"is_critical"`
	Effectiveness Effectiveness `json:"effectiveness"`
	PlayerHP      int           `json:"player_hp"`
	PlayerMaxHP   int           `json:"player_max_hp"`
	WildHP        int           `json:"wild_hp"`
	WildMaxHP     int           `json:"wild_max_hp"`
	Move          string        `json:"move"`
	MoveType      Element       `json:"move_type"`
	BattleEnded   bool          `json:"battle_ended"`
	PlayerWon     bool          `json:"player_won"`
}

// Ball is the kind of capture device thrown
type Ball string

// Balls
const (
	BallPoke   Ball = "poke"
	BallGreat  Ball = "great"
	BallUltra  Ball = "ultra"
	BallMaster Ball = "master"
)

// CaptureOutcome is the result of one capture attempt
type CaptureOutcome struct {
	Caught   bool      `json:"caught"`
	Shakes   int       `json:"shakes"`
	Ball     Ball      `json:"ball"`
	Creature *Creature `json:"creature,omitempty"`
}
