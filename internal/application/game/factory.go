package game

import (
	"errors"
	"fmt"

	"github.com/younwookim/sudoku/internal/application/scene"
	"github.com/younwookim/sudoku/internal/application/scene/leaderboard"
	"github.com/younwookim/sudoku/internal/application/scene/mainmenu"
	"github.com/younwookim/sudoku/internal/application/scene/playing"
	"github.com/younwookim/sudoku/internal/application/scene/selectdifficulty"
	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/domain/session"
)

// ErrUnknownScreen is returned when a factory is asked for a screen id
// outside the known set.
var ErrUnknownScreen = errors.New("unknown screen")

// Factory constructs the screen for id. shared is the driver's session;
// constructors may read it but keep only what they need.
type Factory func(ctx *scene.Context, id state.ScreenID, shared *session.Session) (scene.Screen, error)

// DefaultFactory builds the four application screens.
func DefaultFactory(ctx *scene.Context, id state.ScreenID, shared *session.Session) (scene.Screen, error) {
	switch id {
	case state.ScreenMainMenu:
		return mainmenu.New(ctx), nil
	case state.ScreenSelectDifficulty:
		return selectdifficulty.New(ctx, shared.Difficulty), nil
	case state.ScreenPlaying:
		return playing.New(ctx, shared), nil
	case state.ScreenLeaderBoard:
		return leaderboard.New(ctx, shared), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownScreen, int(id))
}
