// Package battle owns the lifecycle of per-player battle sessions
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/idlemon-api/internal/engine"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/clock"
	battlesession "github.com/KirkDiggler/idlemon-api/internal/repositories/battle_session"
)

const (
	// DefaultIdleTimeout is how long a battle may sit untouched before the
	// sweep flags it timed out
	DefaultIdleTimeout = 30 * time.Second

	// DefaultEvictAfter is how long a finished or timed out battle is kept
	// for a reconnecting client
	DefaultEvictAfter = 5 * time.Minute
)

// Service defines the interface for battle operations
type Service interface {
	// Session management
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)
	Touch(ctx context.Context, input *TouchInput) (*TouchOutput, error)
	UpdateBattle(ctx context.Context, input *UpdateBattleInput) (*UpdateBattleOutput, error)
	EndBattle(ctx context.Context, input *EndBattleInput) (*EndBattleOutput, error)

	// Player actions
	NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error)
	AttemptCapture(ctx context.Context, input *AttemptCaptureInput) (*AttemptCaptureOutput, error)

	// Housekeeping
	SweepIdle(ctx context.Context, input *SweepIdleInput) (*SweepIdleOutput, error)
	EvictStale(ctx context.Context, input *EvictStaleInput) (*EvictStaleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Repository battlesession.Repository
	Engine     engine.Engine
	Clock      clock.Clock

	// EventBus receives EventTypeBattleTimedOut when set
	EventBus events.EventBus

	// IdleTimeout defaults to DefaultIdleTimeout
	IdleTimeout time.Duration
	// EvictAfter defaults to DefaultEvictAfter
	EvictAfter time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IdleTimeout < 0 {
		vb.Fieldf("IdleTimeout", "must not be negative, got %s", c.IdleTimeout)
	}
	if c.EvictAfter < 0 {
		vb.Fieldf("EvictAfter", "must not be negative, got %s", c.EvictAfter)
	}

	return vb.Build()
}

type orchestrator struct {
	repo        battlesession.Repository
	engine      engine.Engine
	clock       clock.Clock
	eventBus    events.EventBus
	idleTimeout time.Duration
	evictAfter  time.Duration
	locks       *playerLocks
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repo:        cfg.Repository,
		engine:      cfg.Engine,
		clock:       cfg.Clock,
		eventBus:    cfg.EventBus,
		idleTimeout: cfg.IdleTimeout,
		evictAfter:  cfg.EvictAfter,
		locks:       newPlayerLocks(),
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.idleTimeout == 0 {
		o.idleTimeout = DefaultIdleTimeout
	}
	if o.evictAfter == 0 {
		o.evictAfter = DefaultEvictAfter
	}

	return o, nil
}

// StartBattle creates a session for the player, replacing any previous one
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.PlayerID == "" {
		vb.RequiredField("player_id")
	}
	if input.Player == nil {
		vb.RequiredField("player")
	}
	if input.Wild == nil {
		vb.RequiredField("wild")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlock, err := o.locks.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire battle lock")
	}
	defer unlock()

	replaced := false
	if _, err := o.repo.Remove(ctx, &battlesession.RemoveInput{PlayerID: input.PlayerID}); err == nil {
		replaced = true
	} else if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to discard previous battle")
	}

	now := o.clock.Now()
	player := input.Player.Clone()
	wild := input.Wild.Clone()
	player.Heal()
	wild.Heal()

	session := &entities.BattleSession{
		PlayerID:       input.PlayerID,
		Player:         player,
		Wild:           wild,
		PlayerHP:       player.MaxHP,
		WildHP:         wild.MaxHP,
		PlayerFirst:    player.Stats.Speed >= wild.Stats.Speed,
		Status:         entities.StatusBattling,
		Outcome:        entities.OutcomeOngoing,
		CreatedAt:      now,
		LastActivityAt: now,
	}

	if _, err := o.repo.Put(ctx, &battlesession.PutInput{Session: session}); err != nil {
		return nil, errors.Wrap(err, "failed to save battle")
	}

	slog.InfoContext(ctx, "Battle started",
		"player_id", session.PlayerID,
		"player_species", player.SpeciesID,
		"wild_species", wild.SpeciesID,
		"wild_level", wild.Level,
		"player_first", session.PlayerFirst,
		"replaced", replaced)

	return &StartBattleOutput{Session: session, Replaced: replaced}, nil
}

// GetBattle returns the player's session
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	session, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &GetBattleOutput{Session: session}, nil
}

// Touch refreshes the player's activity timestamp. A missing session is not
// an error. Timed out and complete sessions keep their activity time so
// eviction is not postponed by a client that keeps pinging.
func (o *orchestrator) Touch(ctx context.Context, input *TouchInput) (*TouchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	unlock, err := o.locks.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire battle lock")
	}
	defer unlock()

	session, err := o.load(ctx, input.PlayerID)
	if errors.Is(err, errors.ErrNoActiveSession) {
		return &TouchOutput{}, nil
	}
	if err != nil {
		return nil, err
	}
	if isFinished(session) {
		return &TouchOutput{}, nil
	}

	session.LastActivityAt = o.clock.Now()
	if err := o.save(ctx, session); err != nil {
		return nil, err
	}
	return &TouchOutput{Touched: true}, nil
}

// UpdateBattle merges the given fields into the session
func (o *orchestrator) UpdateBattle(ctx context.Context, input *UpdateBattleInput) (*UpdateBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Turn != nil && *input.Turn < 0 {
		return nil, errors.InvalidArgumentf("turn must not be negative, got %d", *input.Turn)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, errors.InvalidArgumentf("unknown status %q", *input.Status)
	}

	unlock, err := o.locks.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire battle lock")
	}
	defer unlock()

	session, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !reachable(session.Status, *input.Status) {
			return nil, errors.InvalidTransition("cannot move a battle from %s to %s", session.Status, *input.Status).
				WithMeta("player_id", session.PlayerID)
		}
		if *input.Status == entities.StatusTimedOut && session.Status != entities.StatusTimedOut {
			now := o.clock.Now()
			session.TimedOutAt = &now
		}
		session.Status = *input.Status
	}
	if input.PlayerHP != nil {
		session.PlayerHP = clampHP(*input.PlayerHP, session.Player.MaxHP)
	}
	if input.WildHP != nil {
		session.WildHP = clampHP(*input.WildHP, session.Wild.MaxHP)
	}
	if input.Turn != nil {
		session.Turn = *input.Turn
	}
	if err := reconcileOutcome(ctx, session); err != nil {
		return nil, err
	}

	session.LastActivityAt = o.clock.Now()
	if err := o.save(ctx, session); err != nil {
		return nil, err
	}

	return &UpdateBattleOutput{Session: session}, nil
}

// reconcileOutcome keeps the outcome in step with the merged HP and status.
// A side at zero HP decides a running battle, and a complete battle must
// have been decided.
func reconcileOutcome(ctx context.Context, session *entities.BattleSession) error {
	if session.Outcome == entities.OutcomeOngoing && (session.WildHP == 0 || session.PlayerHP == 0) {
		if session.Status != entities.StatusBattling {
			return errors.InvalidTransition("cannot knock out a side of a battle that is %s", session.Status).
				WithMeta("player_id", session.PlayerID)
		}
		event := EventPlayerFainted
		session.Outcome = entities.OutcomePlayerFaint
		if session.WildHP == 0 {
			event = EventWildFainted
			session.Outcome = entities.OutcomePlayerWin
		}
		if err := transition(ctx, session, event); err != nil {
			return err
		}
	}

	if session.Status == entities.StatusComplete && session.Outcome == entities.OutcomeOngoing {
		return errors.InvalidTransition("a battle completes only when a side faints or the wild creature is caught").
			WithMeta("player_id", session.PlayerID)
	}
	return nil
}

// isFinished reports whether the session can no longer be played
func isFinished(session *entities.BattleSession) bool {
	return session.Status == entities.StatusTimedOut || session.Status == entities.StatusComplete
}

// EndBattle removes and returns the player's session
func (o *orchestrator) EndBattle(ctx context.Context, input *EndBattleInput) (*EndBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	unlock, err := o.locks.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire battle lock")
	}
	defer unlock()

	out, err := o.repo.Remove(ctx, &battlesession.RemoveInput{PlayerID: input.PlayerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NoActiveSession(input.PlayerID)
		}
		return nil, errors.Wrap(err, "failed to end battle")
	}

	slog.InfoContext(ctx, "Battle ended",
		"player_id", input.PlayerID,
		"status", out.Session.Status,
		"outcome", out.Session.Outcome,
		"turns", out.Session.Turn)

	return &EndBattleOutput{Session: out.Session}, nil
}

// NextTurn resolves one turn. A second call for the same player while one
// is in flight is rejected rather than queued.
func (o *orchestrator) NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	unlock, ok := o.locks.TryLock(input.PlayerID)
	if !ok {
		return nil, errors.TurnInProgress(input.PlayerID)
	}
	defer unlock()

	session, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if session.Status != entities.StatusBattling || session.Outcome != entities.OutcomeOngoing {
		return nil, errors.InvalidTransition("cannot take a turn in a battle that is %s", describe(session)).
			WithMeta("player_id", session.PlayerID)
	}

	result, err := o.engine.ResolveTurn(ctx, &engine.ResolveTurnInput{Session: session})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve turn")
	}
	outcome := result.Outcome

	if outcome.BattleEnded {
		event := EventPlayerFainted
		if outcome.PlayerWon {
			event = EventWildFainted
		}
		if err := transition(ctx, session, event); err != nil {
			return nil, err
		}
	}

	session.LastActivityAt = o.clock.Now()
	if err := o.save(ctx, session); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Turn resolved",
		"player_id", session.PlayerID,
		"turn", outcome.Turn,
		"actor", outcome.Actor,
		"move", outcome.Move,
		"damage", outcome.Damage,
		"critical", outcome.IsCritical,
		"effectiveness", outcome.Effectiveness)
	if outcome.BattleEnded {
		slog.InfoContext(ctx, "Battle decided",
			"player_id", session.PlayerID,
			"outcome", session.Outcome,
			"turns", session.Turn,
			"mutual_knockout", outcome.PlayerHP == 0 && outcome.WildHP == 0)
	}

	return &NextTurnOutput{Outcome: outcome, Session: session}, nil
}

// AttemptCapture throws a ball at the wild combatant. The session sits in
// catching while the throw resolves, then completes or returns to battling.
func (o *orchestrator) AttemptCapture(ctx context.Context, input *AttemptCaptureInput) (*AttemptCaptureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}
	ball := input.Ball
	if ball == "" {
		ball = entities.BallPoke
	}

	unlock, ok := o.locks.TryLock(input.PlayerID)
	if !ok {
		return nil, errors.TurnInProgress(input.PlayerID)
	}
	defer unlock()

	session, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if session.Outcome != entities.OutcomeOngoing {
		return nil, errors.InvalidTransition("cannot throw a ball in a battle that is %s", describe(session)).
			WithMeta("player_id", session.PlayerID)
	}
	if err := transition(ctx, session, EventThrow); err != nil {
		return nil, err
	}
	session.LastActivityAt = o.clock.Now()
	if err := o.save(ctx, session); err != nil {
		return nil, err
	}

	result, err := o.engine.ResolveCapture(ctx, &engine.ResolveCaptureInput{Session: session, Ball: ball})
	if err != nil {
		o.abandonThrow(ctx, session)
		return nil, errors.Wrap(err, "failed to resolve capture")
	}
	outcome := result.Outcome

	event := EventBrokeFree
	if outcome.Caught {
		event = EventCaught
	}
	if err := transition(ctx, session, event); err != nil {
		return nil, err
	}
	if outcome.Caught {
		session.Outcome = entities.OutcomeCaught
	}
	session.LastActivityAt = o.clock.Now()
	if err := o.save(ctx, session); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Capture attempted",
		"player_id", session.PlayerID,
		"species_id", session.Wild.SpeciesID,
		"ball", ball,
		"caught", outcome.Caught,
		"shakes", outcome.Shakes)

	return &AttemptCaptureOutput{Outcome: outcome, Session: session}, nil
}

// abandonThrow returns a session stuck in catching to battling
func (o *orchestrator) abandonThrow(ctx context.Context, session *entities.BattleSession) {
	if err := transition(ctx, session, EventBrokeFree); err != nil {
		slog.ErrorContext(ctx, "Failed to revert capture", "player_id", session.PlayerID, "error", err)
		return
	}
	if err := o.save(ctx, session); err != nil {
		slog.ErrorContext(ctx, "Failed to revert capture", "player_id", session.PlayerID, "error", err)
	}
}

// SweepIdle flags battles that have gone quiet as timed out. Sessions whose
// lock is held are skipped and picked up on a later sweep.
func (o *orchestrator) SweepIdle(ctx context.Context, input *SweepIdleInput) (*SweepIdleOutput, error) {
	list, err := o.repo.List(ctx, &battlesession.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list battles")
	}

	out := &SweepIdleOutput{}
	for _, candidate := range list.Sessions {
		if !o.isIdle(candidate) {
			continue
		}

		flagged, busy, err := o.flagTimedOut(ctx, candidate.PlayerID)
		if err != nil {
			slog.WarnContext(ctx, "Failed to flag idle battle", "player_id", candidate.PlayerID, "error", err)
			continue
		}
		if busy {
			out.Skipped++
		}
		if flagged {
			out.Flagged++
		}
	}

	if out.Flagged > 0 || out.Skipped > 0 {
		slog.InfoContext(ctx, "Swept idle battles", "flagged", out.Flagged, "skipped", out.Skipped)
	}
	return out, nil
}

func (o *orchestrator) isIdle(session *entities.BattleSession) bool {
	if session.Status != entities.StatusBattling && session.Status != entities.StatusCatching {
		return false
	}
	return session.IdleFor(o.clock.Now()) > o.idleTimeout
}

// flagTimedOut re-reads the session under its lock so a turn that landed
// since the listing keeps the battle alive
func (o *orchestrator) flagTimedOut(ctx context.Context, playerID string) (flagged, busy bool, err error) {
	unlock, ok := o.locks.TryLock(playerID)
	if !ok {
		return false, true, nil
	}
	defer unlock()

	session, err := o.load(ctx, playerID)
	if errors.Is(err, errors.ErrNoActiveSession) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	if !o.isIdle(session) {
		return false, false, nil
	}

	if err := transition(ctx, session, EventTimeout); err != nil {
		return false, false, err
	}
	now := o.clock.Now()
	session.TimedOutAt = &now
	if err := o.save(ctx, session); err != nil {
		return false, false, err
	}

	slog.InfoContext(ctx, "Battle timed out",
		"player_id", playerID,
		"idle_for", session.IdleFor(now).String(),
		"turn", session.Turn)
	o.publishTimedOut(ctx, playerID)
	return true, false, nil
}

// EvictStale removes finished battles that nobody came back for
func (o *orchestrator) EvictStale(ctx context.Context, input *EvictStaleInput) (*EvictStaleOutput, error) {
	list, err := o.repo.List(ctx, &battlesession.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list battles")
	}

	out := &EvictStaleOutput{}
	for _, candidate := range list.Sessions {
		if !o.isStale(candidate) {
			continue
		}

		unlock, ok := o.locks.TryLock(candidate.PlayerID)
		if !ok {
			out.Skipped++
			continue
		}
		evicted, err := o.evict(ctx, candidate.PlayerID)
		unlock()
		if err != nil {
			slog.WarnContext(ctx, "Failed to evict battle", "player_id", candidate.PlayerID, "error", err)
			continue
		}
		if evicted {
			out.Evicted++
		}
	}

	if out.Evicted > 0 {
		slog.InfoContext(ctx, "Evicted stale battles", "evicted", out.Evicted, "skipped", out.Skipped)
	}
	return out, nil
}

func (o *orchestrator) isStale(session *entities.BattleSession) bool {
	if !isFinished(session) {
		return false
	}
	return session.IdleFor(o.clock.Now()) > o.evictAfter
}

func (o *orchestrator) evict(ctx context.Context, playerID string) (bool, error) {
	session, err := o.load(ctx, playerID)
	if errors.Is(err, errors.ErrNoActiveSession) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !o.isStale(session) {
		return false, nil
	}

	if _, err := o.repo.Remove(ctx, &battlesession.RemoveInput{PlayerID: playerID}); err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (o *orchestrator) load(ctx context.Context, playerID string) (*entities.BattleSession, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}
	out, err := o.repo.Get(ctx, &battlesession.GetInput{PlayerID: playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NoActiveSession(playerID)
		}
		return nil, errors.Wrapf(err, "failed to load battle for %s", playerID)
	}
	return out.Session, nil
}

func (o *orchestrator) save(ctx context.Context, session *entities.BattleSession) error {
	if _, err := o.repo.Put(ctx, &battlesession.PutInput{Session: session}); err != nil {
		return errors.Wrap(err, "failed to save battle")
	}
	return nil
}

func describe(session *entities.BattleSession) string {
	if session.Outcome != entities.OutcomeOngoing {
		return string(session.Outcome)
	}
	return string(session.Status)
}

func clampHP(hp, maxHP int) int {
	if hp < 0 {
		return 0
	}
	if hp > maxHP {
		return maxHP
	}
	return hp
}
