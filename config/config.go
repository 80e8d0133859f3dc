package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// loads .env into the process environment if present
	_ "github.com/joho/godotenv/autoload"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Engine EngineConfig
	Game   GameConfig
	Server ServerConfig
	Logs   LogConfig
}

type EngineConfig struct {
	Bot   string
	Depth int
	Seed  int64
}

// GameConfig holds the delays the controller uses before the computer
// replies. ReplyDelay runs after the human's move, ThinkDelay after the
// "thinking" status is shown.
type GameConfig struct {
	ReplyDelay time.Duration
	ThinkDelay time.Duration
}

type ServerConfig struct {
	Addr         string
	WebRoot      string
	AllowOrigins []string
}

type LogConfig struct {
	Search bool
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{Bot: "negamax", Depth: 3, Seed: 1},
		Game: GameConfig{
			ReplyDelay: 300 * time.Millisecond,
			ThinkDelay: 100 * time.Millisecond,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			WebRoot:      "web",
			AllowOrigins: []string{"*"},
		},
	}
}

// LoadConfig reads the process environment on top of Default.
func LoadConfig() (*Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, which has the signature of
// os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("AI_BOT"); ok {
		cfg.Engine.Bot = strings.ToLower(v)
	}
	if v, ok := get("AI_DEPTH"); ok {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: AI_DEPTH: %v", ErrInvalidConfig, err)
		}
		cfg.Engine.Depth = depth
	}
	if cfg.Engine.Depth < 1 {
		return nil, fmt.Errorf("%w: AI_DEPTH must be at least 1, got %d", ErrInvalidConfig, cfg.Engine.Depth)
	}
	if v, ok := get("AI_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: AI_SEED: %v", ErrInvalidConfig, err)
		}
		cfg.Engine.Seed = seed
	}

	var err error
	if cfg.Game.ReplyDelay, err = millis(get, "AI_REPLY_DELAY_MS", cfg.Game.ReplyDelay); err != nil {
		return nil, err
	}
	if cfg.Game.ThinkDelay, err = millis(get, "AI_THINK_DELAY_MS", cfg.Game.ThinkDelay); err != nil {
		return nil, err
	}

	if v, ok := get("HTTP_ADDR"); ok {
		cfg.Server.Addr = v
	}
	if v, ok := get("WEB_ROOT"); ok {
		cfg.Server.WebRoot = v
	}
	if v, ok := get("CORS_ORIGINS"); ok {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.AllowOrigins = origins
	}

	if v, ok := get("LOG_SEARCH"); ok {
		search, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: LOG_SEARCH: %v", ErrInvalidConfig, err)
		}
		cfg.Logs.Search = search
	}

	return cfg, nil
}

func millis(get func(string) (string, bool), key string, def time.Duration) (time.Duration, error) {
	v, ok := get(key)
	if !ok {
		return def, nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	if ms < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, key)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
