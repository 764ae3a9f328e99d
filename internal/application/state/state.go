package state

import (
	"fmt"
	"strings"
)

// ScreenID identifies one of the application's screens.
type ScreenID int

const (
	ScreenMainMenu ScreenID = iota
	ScreenSelectDifficulty
	ScreenPlaying
	ScreenLeaderBoard
)

// String returns the string representation of the screen id
func (s ScreenID) String() string {
	switch s {
	case ScreenMainMenu:
		return "MainMenu"
	case ScreenSelectDifficulty:
		return "SelectDifficulty"
	case ScreenPlaying:
		return "Playing"
	case ScreenLeaderBoard:
		return "LeaderBoard"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the known screens.
func (s ScreenID) Valid() bool {
	return s >= ScreenMainMenu && s <= ScreenLeaderBoard
}

// NeedsSession reports whether the screen reads session data that an
// upstream screen normally selects. Entering such a screen without that
// data requires forced defaults.
func (s ScreenID) NeedsSession() bool {
	return s == ScreenPlaying
}

// AllScreens returns every screen id in declaration order.
func AllScreens() []ScreenID {
	return []ScreenID{ScreenMainMenu, ScreenSelectDifficulty, ScreenPlaying, ScreenLeaderBoard}
}

// ParseScreenID parses a screen name. Matching ignores case, dashes and
// underscores, so "main-menu", "MainMenu" and "main_menu" are equivalent.
func ParseScreenID(name string) (ScreenID, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for _, id := range AllScreens() {
		if strings.ToLower(id.String()) == key {
			return id, nil
		}
	}
	return ScreenMainMenu, fmt.Errorf("unknown screen %q", name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ScreenID) UnmarshalText(text []byte) error {
	id, err := ParseScreenID(string(text))
	if err != nil {
		return err
	}
	*s = id
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s ScreenID) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid screen id %d", int(s))
	}
	return []byte(s.String()), nil
}
