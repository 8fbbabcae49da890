package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/foxtrail/internal/telemetry"
	"github.com/samdwyer/foxtrail/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed           = "FOXTRAIL_SEED"
	EnvWidth          = "FOXTRAIL_WIDTH"
	EnvHeight         = "FOXTRAIL_HEIGHT"
	EnvNPCs           = "FOXTRAIL_NPCS"
	EnvMoveInterval   = "FOXTRAIL_MOVE_INTERVAL"
	EnvNPCInterval    = "FOXTRAIL_NPC_INTERVAL"
	EnvMap            = "FOXTRAIL_MAP"
	EnvLogPath        = "FOXTRAIL_LOG"
	EnvLogLevel       = "FOXTRAIL_LOG_LEVEL"
	EnvFollowRadius   = "FOXTRAIL_FOLLOW_RADIUS"
	EnvExpansionLimit = "FOXTRAIL_EXPANSION_LIMIT"
)

// ErrBadConfig is wrapped by every configuration error.
var ErrBadConfig = errors.New("game: bad config")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible forest generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Forest size when generating. Ignored when MapName is set.
	Width  int
	Height int

	// MapName selects an embedded map instead of a generated forest.
	MapName string

	// NPCs is how many non-player characters to spawn.
	NPCs int

	// MoveInterval is the game time between two steps of a walking player.
	MoveInterval time.Duration
	// NPCInterval is the game time between NPC turns.
	NPCInterval time.Duration

	// FollowRadius is how close the player must be for followers to chase.
	FollowRadius float64

	// ExpansionLimit caps each path search; 0 means unlimited.
	ExpansionLimit int

	LogPath  string
	LogLevel slog.Level
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Width:          world.DefaultWidth,
		Height:         world.DefaultHeight,
		NPCs:           4,
		MoveInterval:   100 * time.Millisecond,
		NPCInterval:    400 * time.Millisecond,
		FollowRadius:   8,
		ExpansionLimit: 10000,
		LogLevel:       slog.LevelInfo,
	}
}

// LoadConfig reads FOXTRAIL_* environment variables over DefaultConfig.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	var err error

	if cfg.Seed, err = envInt64(EnvSeed, cfg.Seed); err != nil {
		return cfg, err
	}
	if cfg.Width, err = envInt(EnvWidth, cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = envInt(EnvHeight, cfg.Height); err != nil {
		return cfg, err
	}
	if cfg.NPCs, err = envInt(EnvNPCs, cfg.NPCs); err != nil {
		return cfg, err
	}
	if cfg.MoveInterval, err = envDuration(EnvMoveInterval, cfg.MoveInterval); err != nil {
		return cfg, err
	}
	if cfg.NPCInterval, err = envDuration(EnvNPCInterval, cfg.NPCInterval); err != nil {
		return cfg, err
	}
	if cfg.FollowRadius, err = envFloat(EnvFollowRadius, cfg.FollowRadius); err != nil {
		return cfg, err
	}
	if cfg.ExpansionLimit, err = envInt(EnvExpansionLimit, cfg.ExpansionLimit); err != nil {
		return cfg, err
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		if cfg.LogLevel, err = telemetry.ParseLevel(v); err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrBadConfig, EnvLogLevel, err)
		}
	}
	cfg.MapName = os.Getenv(EnvMap)
	cfg.LogPath = os.Getenv(EnvLogPath)

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MapName == "" &&
		(c.Width < world.MinSize || c.Width > world.MaxSize || c.Height < world.MinSize || c.Height > world.MaxSize) {
		return fmt.Errorf("%w: forest size %dx%d outside [%d, %d]", ErrBadConfig, c.Width, c.Height, world.MinSize, world.MaxSize)
	}
	if c.NPCs < 0 {
		return fmt.Errorf("%w: negative NPC count %d", ErrBadConfig, c.NPCs)
	}
	if c.MoveInterval <= 0 || c.NPCInterval <= 0 {
		return fmt.Errorf("%w: intervals must be positive", ErrBadConfig)
	}
	if c.FollowRadius < 0 {
		return fmt.Errorf("%w: negative follow radius %g", ErrBadConfig, c.FollowRadius)
	}
	if c.ExpansionLimit < 0 {
		return fmt.Errorf("%w: negative expansion limit %d", ErrBadConfig, c.ExpansionLimit)
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s: %w", ErrBadConfig, key, err)
	}
	return n, nil
}

func envInt64(key string, def int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%w: %s: %w", ErrBadConfig, key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%w: %s: %w", ErrBadConfig, key, err)
	}
	return f, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s: %w", ErrBadConfig, key, err)
	}
	return d, nil
}
