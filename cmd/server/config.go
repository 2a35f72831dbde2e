package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/idlemon-api/internal/engine/damage"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/handlers/gateway"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle"
	battlesession "github.com/KirkDiggler/idlemon-api/internal/repositories/battle_session"
)

// Config is the server configuration file
type Config struct {
	GRPC   GRPCConfig   `yaml:"grpc"`
	HTTP   HTTPConfig   `yaml:"http"`
	Redis  RedisConfig  `yaml:"redis"`
	Battle BattleConfig `yaml:"battle"`
	Log    LogConfig    `yaml:"log"`
}

// GRPCConfig configures the gRPC listener
type GRPCConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// HTTPConfig configures the gateway listener
type HTTPConfig struct {
	Port           int           `yaml:"port"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
}

// RedisConfig selects the session store. With no addresses sessions are
// kept in memory.
type RedisConfig struct {
	Addrs      []string      `yaml:"addrs"`
	Password   string        `yaml:"password"`
	DB         int           `yaml:"db"`
	PoolSize   int           `yaml:"pool_size"`
	UseTLS     bool          `yaml:"use_tls"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// BattleConfig holds the battle timing and combat tuning
type BattleConfig struct {
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	SweepInterval  time.Duration `yaml:"sweep_interval"`
	EvictAfter     time.Duration `yaml:"evict_after"`
	EvictInterval  time.Duration `yaml:"evict_interval"`
	CritChance     float64       `yaml:"crit_chance"`
	CritMultiplier float64       `yaml:"crit_multiplier"`
	// Seed fixes the random source; zero seeds from the runtime
	Seed uint64 `yaml:"seed"`
}

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		GRPC: GRPCConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
		},
		HTTP: HTTPConfig{
			Port:         8080,
			WriteTimeout: gateway.DefaultWriteTimeout,
			ReadTimeout:  gateway.DefaultReadTimeout,
		},
		Redis: RedisConfig{
			SessionTTL: battlesession.DefaultTTL,
		},
		Battle: BattleConfig{
			IdleTimeout:    battle.DefaultIdleTimeout,
			SweepInterval:  battle.DefaultSweepInterval,
			EvictAfter:     battle.DefaultEvictAfter,
			EvictInterval:  battle.DefaultEvictInterval,
			CritChance:     damage.DefaultCritChance,
			CritMultiplier: damage.DefaultCritMultiplier,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
	}
	return cfg, nil
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPC.Port <= 0 || c.GRPC.Port > 65535 {
		vb.Fieldf("grpc.port", "must be a valid port, got %d", c.GRPC.Port)
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		vb.Fieldf("http.port", "must be a valid port or 0 to disable, got %d", c.HTTP.Port)
	}
	if c.HTTP.Port != 0 && c.HTTP.Port == c.GRPC.Port {
		vb.Field("http.port", "must differ from grpc.port")
	}
	errors.ValidatePositiveDuration("battle.idle_timeout", c.Battle.IdleTimeout, vb)
	errors.ValidatePositiveDuration("battle.sweep_interval", c.Battle.SweepInterval, vb)
	errors.ValidatePositiveDuration("battle.evict_after", c.Battle.EvictAfter, vb)
	errors.ValidatePositiveDuration("battle.evict_interval", c.Battle.EvictInterval, vb)
	errors.ValidateProbability("battle.crit_chance", c.Battle.CritChance, vb)
	if c.Battle.CritMultiplier < 1 {
		vb.Fieldf("battle.crit_multiplier", "must be at least 1, got %g", c.Battle.CritMultiplier)
	}
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		vb.Fieldf("log.level", "unknown level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		vb.Fieldf("log.format", "must be text or json, got %q", c.Log.Format)
	}

	return vb.Build()
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the process logger
func (c *LogConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevels[strings.ToLower(c.Level)]}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
