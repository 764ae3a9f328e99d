// Package session holds the data that survives screen transitions.
//
// A Session is owned by the game driver for the whole process lifetime.
// Every field is optional: a screen entered without upstream setup relies
// on Defaults, which Force materializes in place.
package session

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Difficulty is the puzzle difficulty chosen on the SelectDifficulty screen.
type Difficulty int

const (
	DifficultyUnset Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

// String returns the string representation of the difficulty
func (d Difficulty) String() string {
	switch d {
	case DifficultyUnset:
		return "Unset"
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Clues returns how many cells a puzzle of this difficulty starts with.
func (d Difficulty) Clues() int {
	switch d {
	case DifficultyEasy:
		return 40
	case DifficultyMedium:
		return 32
	case DifficultyHard:
		return 26
	default:
		return 0
	}
}

// ParseDifficulty parses a difficulty name, ignoring case.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyUnset, fmt.Errorf("unknown difficulty %q", name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Result is one finished game.
type Result struct {
	Player     string
	Difficulty Difficulty
	Ticks      int
}

// Duration converts the tick count to wall time at the given tick rate.
func (r Result) Duration(tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Duration(r.Ticks) * time.Second / time.Duration(tps)
}

// Defaults are the forced fallback values used when a screen is entered
// without the session data it expects.
type Defaults struct {
	Difficulty Difficulty
	Player     string
}

// DefaultDefaults returns the documented fallbacks: Easy, played by "Player".
func DefaultDefaults() Defaults {
	return Defaults{
		Difficulty: DifficultyEasy,
		Player:     "Player",
	}
}

// Session is the shared context passed between screens.
type Session struct {
	Difficulty Difficulty
	Player     string
	Results    []Result
}

// New returns an empty session. No field is populated.
func New() *Session {
	return &Session{}
}

// NewForced returns a session with every field populated from d.
func NewForced(d Defaults) *Session {
	s := New()
	s.Force(d)
	return s
}

// Force fills unset fields from d and returns the names of the fields it
// synthesized. Fields that are already set are left alone. Zero values in
// d fall back to DefaultDefaults.
func (s *Session) Force(d Defaults) []string {
	fallback := DefaultDefaults()
	if d.Difficulty == DifficultyUnset {
		d.Difficulty = fallback.Difficulty
	}
	if d.Player == "" {
		d.Player = fallback.Player
	}

	var forced []string
	if s.Difficulty == DifficultyUnset {
		s.Difficulty = d.Difficulty
		forced = append(forced, "difficulty")
	}
	if s.Player == "" {
		s.Player = d.Player
		forced = append(forced, "player")
	}
	return forced
}

// Record appends a finished game.
func (s *Session) Record(r Result) {
	s.Results = append(s.Results, r)
}

// Leaders returns up to n best results for the difficulty, fastest first.
// DifficultyUnset ranks all results together. Ties keep recording order.
func (s *Session) Leaders(d Difficulty, n int) []Result {
	out := make([]Result, 0, len(s.Results))
	for _, r := range s.Results {
		if d == DifficultyUnset || r.Difficulty == d {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ticks < out[j].Ticks
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
