// Package capture resolves ball throws at a wild combatant.
//
// A throw computes a catch value from the target's remaining HP, its
// species capture rate and the ball bonus. A value of 255 or more is an
// immediate capture; anything less turns into up to four shake checks, each
// a d65536 roll that must come in under the shake threshold.
package capture

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
)

const (
	// GuaranteedValue is the catch value at or above which no shakes are rolled
	GuaranteedValue = 255
	// Shakes is the number of checks needed to hold the creature
	Shakes    = 4
	shakeDie  = 65536
	shakeBase = 1048560
	shakeRoot = 16711680
)

var ballBonus = map[entities.Ball]float64{
	entities.BallPoke:  1,
	entities.BallGreat: 1.5,
	entities.BallUltra: 2,
}

// Config configures a Resolver
type Config struct {
	Roller dice.Roller
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// Resolver rolls capture attempts
type Resolver struct {
	roller dice.Roller
}

// NewResolver creates a capture resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Resolver{roller: cfg.Roller}, nil
}

// AttemptInput describes one throw
type AttemptInput struct {
	MaxHP       int
	HP          int
	CaptureRate int
	Ball        entities.Ball
}

// AttemptOutput is the result of a throw
type AttemptOutput struct {
	Caught bool
	// Shakes counts passed checks; a capture always reports all four
	Shakes int
}

// Attempt throws a ball
func (r *Resolver) Attempt(input *AttemptInput) (*AttemptOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MaxHP <= 0 {
		return nil, errors.InvalidArgumentf("max hp must be positive, got %d", input.MaxHP)
	}

	if input.Ball == entities.BallMaster {
		return &AttemptOutput{Caught: true, Shakes: Shakes}, nil
	}
	bonus, ok := ballBonus[input.Ball]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown ball %q", input.Ball)
	}

	a := CatchValue(input.MaxHP, input.HP, input.CaptureRate, bonus)
	if a >= GuaranteedValue {
		return &AttemptOutput{Caught: true, Shakes: Shakes}, nil
	}

	threshold := ShakeThreshold(a)
	if threshold <= 0 {
		return &AttemptOutput{}, nil
	}

	shakes := 0
	for shakes < Shakes {
		roll, err := r.roller.Roll(shakeDie)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll shake check")
		}
		if roll-1 >= threshold {
			return &AttemptOutput{Shakes: shakes}, nil
		}
		shakes++
	}
	return &AttemptOutput{Caught: true, Shakes: shakes}, nil
}

// CatchValue is floor((3*maxHP - 2*hp) * rate * bonus / (3*maxHP)). HP is
// clamped to [0, maxHP] first.
func CatchValue(maxHP, hp, captureRate int, bonus float64) int {
	if maxHP <= 0 || captureRate <= 0 {
		return 0
	}
	hp = min(max(hp, 0), maxHP)
	value := float64(3*maxHP-2*hp) * float64(captureRate) * bonus / float64(3*maxHP)
	return int(math.Floor(value))
}

// ShakeThreshold converts a catch value into the bound each shake roll must
// come in under.
func ShakeThreshold(catchValue int) int {
	if catchValue <= 0 {
		return 0
	}
	if catchValue >= GuaranteedValue {
		return shakeDie
	}
	return int(math.Floor(shakeBase / math.Sqrt(math.Sqrt(shakeRoot/float64(catchValue)))))
}
