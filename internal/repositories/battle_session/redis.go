package battlesession

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	redisclient "github.com/KirkDiggler/idlemon-api/internal/redis"
)

const (
	sessionKeyPrefix = "battle_session:"
	// the index lives outside the session prefix so no player id can
	// collide with it
	activeIndexKey = "battle_index:active"

	// DefaultTTL bounds how long an abandoned session survives if the
	// evictor never reaches it
	DefaultTTL = time.Hour
)

// RedisConfig configures the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	TTL    time.Duration
}

// Validate validates the config
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

var _ Repository = (*redisRepository)(nil)

// NewRedis creates a Redis-backed repository. Sessions are stored as JSON
// under battle_session:<player_id> and indexed in the battle_index:active
// set.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{client: cfg.Client, ttl: ttl}, nil
}

func sessionKey(playerID string) string {
	return sessionKeyPrefix + playerID
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := r.client.Get(ctx, sessionKey(input.PlayerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("battle session for player %s not found", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get battle session")
	}

	session, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Session: session}, nil
}

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle session")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(input.Session.PlayerID), data, r.ttl)
	pipe.SAdd(ctx, activeIndexKey, input.Session.PlayerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store battle session")
	}

	return &PutOutput{}, nil
}

func (r *redisRepository) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	got, err := r.Get(ctx, &GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(input.PlayerID))
	pipe.SRem(ctx, activeIndexKey, input.PlayerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to remove battle session")
	}

	return &RemoveOutput{Session: got.Session}, nil
}

// List reads every indexed session. Index entries whose session expired
// through the TTL are dropped from the index. Sessions that no longer decode
// are logged and skipped so one bad record cannot hide the rest.
func (r *redisRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	playerIDs, err := r.client.SMembers(ctx, activeIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battle sessions")
	}
	if len(playerIDs) == 0 {
		return &ListOutput{Sessions: []*entities.BattleSession{}}, nil
	}

	// per-key GETs in a pipeline so keys may live on different cluster slots
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(playerIDs))
	for i, id := range playerIDs {
		cmds[i] = pipe.Get(ctx, sessionKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to load battle sessions")
	}

	sessions := make([]*entities.BattleSession, 0, len(playerIDs))
	var dangling []interface{}
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if err == redis.Nil {
			dangling = append(dangling, playerIDs[i])
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load battle session %s", playerIDs[i])
		}

		session, err := decode(data)
		if err != nil {
			slog.WarnContext(ctx, "Skipping undecodable battle session",
				"player_id", playerIDs[i],
				"error", err)
			continue
		}
		sessions = append(sessions, session)
	}

	if len(dangling) > 0 {
		if err := r.client.SRem(ctx, activeIndexKey, dangling...).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to prune battle session index")
		}
	}

	return &ListOutput{Sessions: sessions}, nil
}

func decode(data []byte) (*entities.BattleSession, error) {
	var session entities.BattleSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal battle session")
	}
	return &session, nil
}
