package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/domain/session"
)

// EnvOverrides are the environment variables that override app.json.
// Empty values leave the file's setting untouched.
type EnvOverrides struct {
	InitialScreen string `env:"SUDOKU_INITIAL_SCREEN"`
	Player        string `env:"SUDOKU_PLAYER"`
	Difficulty    string `env:"SUDOKU_DIFFICULTY"`
	LogLevel      string `env:"SUDOKU_LOG_LEVEL"`
}

// ParseEnv reads overrides from environ, or from the process environment
// when environ is nil.
func ParseEnv(environ map[string]string) (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return o, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// ApplyEnv applies environment overrides to cfg.
func ApplyEnv(cfg *AppConfig, environ map[string]string) error {
	o, err := ParseEnv(environ)
	if err != nil {
		return err
	}

	if o.InitialScreen != "" {
		id, err := state.ParseScreenID(o.InitialScreen)
		if err != nil {
			return fmt.Errorf("SUDOKU_INITIAL_SCREEN: %w", err)
		}
		cfg.InitialScreen = id
	}
	if o.Difficulty != "" {
		d, err := session.ParseDifficulty(o.Difficulty)
		if err != nil {
			return fmt.Errorf("SUDOKU_DIFFICULTY: %w", err)
		}
		cfg.Session.DefaultDifficulty = d
	}
	if o.Player != "" {
		cfg.Session.Player = o.Player
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	return nil
}
