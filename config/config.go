package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"snake-arcade/game/types"
)

// Frontends the game can be drawn on.
const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
)

// Asset file names, relative to Config.Assets.
const (
	ClipFile  = "snak2.gif"
	LogoFile  = "rtu1.png"
	BadgeFile = "turkic1.png"
)

// Config holds the options a player can change. Playfield geometry and the
// difficulty table are fixed and live in game/types.
type Config struct {
	Assets     string
	Frontend   string
	Seed       uint64
	Obstacles  int
	Mute       bool
	StrictTail bool
	LogLevel   string
	LogFile    string
}

func Default() Config {
	return Config{
		Assets:     "assets",
		Frontend:   FrontendRaylib,
		Obstacles:  types.DefaultObstacles,
		StrictTail: true,
		LogLevel:   "info",
	}
}

// FromEnv returns the defaults overridden by SNAKE_* environment variables.
func FromEnv() Config {
	cfg := Default()
	cfg.Assets = getEnv("SNAKE_ASSETS", cfg.Assets)
	cfg.Frontend = getEnv("SNAKE_FRONTEND", cfg.Frontend)
	cfg.LogLevel = getEnv("SNAKE_LOG_LEVEL", cfg.LogLevel)
	return cfg
}

func getEnv(varName, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendRaylib, FrontendTerminal:
	default:
		return errors.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.Obstacles < 0 {
		return errors.Errorf("obstacle count must not be negative, got %d", c.Obstacles)
	}
	grid := types.DefaultGrid()
	if limit := (grid.Cols() - 1) * (grid.Rows() - 1); c.Obstacles > limit {
		return errors.Errorf("obstacle count %d exceeds the %d placeable cells", c.Obstacles, limit)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}

// AssetPath resolves name inside the assets directory.
func (c Config) AssetPath(name string) string {
	return filepath.Join(c.Assets, name)
}

// Level is the parsed log level; Validate must have passed.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(c.LogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
