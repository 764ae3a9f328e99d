package config

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/domain/session"
)

// AppConfig is the root config for app.json
type AppConfig struct {
	Display       DisplayConfig  `json:"display"`
	Session       SessionConfig  `json:"session"`
	InitialScreen state.ScreenID `json:"initialScreen"`
	LogLevel      string         `json:"logLevel"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// SessionConfig holds the forced defaults for the shared session
type SessionConfig struct {
	DefaultDifficulty session.Difficulty `json:"defaultDifficulty"`
	Player            string             `json:"player"`
}

// Defaults converts the session config to forced session defaults
func (c SessionConfig) Defaults() session.Defaults {
	return session.Defaults{
		Difficulty: c.DefaultDifficulty,
		Player:     c.Player,
	}
}

// Default returns the built-in configuration
func Default() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			ScreenWidth:  720,
			ScreenHeight: 480,
			Scale:        1,
			Framerate:    60,
			Title:        "Sudoku",
		},
		Session: SessionConfig{
			DefaultDifficulty: session.DifficultyEasy,
			Player:            "Player",
		},
		InitialScreen: state.ScreenMainMenu,
		LogLevel:      "info",
	}
}

// Validate checks that the config can drive the application
func (c *AppConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("invalid scale %d", d.Scale)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("invalid framerate %d", d.Framerate)
	}
	if !c.InitialScreen.Valid() {
		return fmt.Errorf("invalid initial screen %d", int(c.InitialScreen))
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel. An empty level means info.
func (c *AppConfig) SlogLevel() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
