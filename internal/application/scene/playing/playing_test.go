package playing

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sudoku/internal/application/scene"
	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/domain/session"
	"github.com/younwookim/sudoku/internal/infrastructure/render"
)

// createTestContext creates a minimal context for testing
func createTestContext(t *testing.T) *scene.Context {
	t.Helper()
	assets, err := render.LoadAssets()
	require.NoError(t, err)
	return &scene.Context{Assets: assets, Width: 720, Height: 480, TPS: 60}
}

func click(p *Playing, a Action) {
	x, y := p.Bounds(a).Center()
	p.HandlePointer(ebiten.MouseButtonLeft, x, y)
}

func TestNew_UsesSessionValues(t *testing.T) {
	shared := &session.Session{Difficulty: session.DifficultyHard, Player: "kim"}
	p := New(createTestContext(t), shared)

	assert.Equal(t, state.ScreenPlaying, p.ID())
	assert.Equal(t, session.DifficultyHard, p.Difficulty())
	assert.Equal(t, "kim", p.player)
	assert.Zero(t, p.Ticks())
}

func TestPlaying_UpdateAdvancesClock(t *testing.T) {
	shared := session.NewForced(session.DefaultDefaults())
	p := New(createTestContext(t), shared)

	for i := 0; i < 120; i++ {
		_, ok := p.Update(shared)
		require.False(t, ok)
	}

	assert.Equal(t, 120, p.Ticks())
	assert.Equal(t, "00:02", formatClock(p.Ticks(), 60))
}

func TestPlaying_FinishRecordsResult(t *testing.T) {
	shared := &session.Session{Difficulty: session.DifficultyMedium, Player: "kim"}
	p := New(createTestContext(t), shared)

	for i := 0; i < 30; i++ {
		p.Update(shared)
	}
	click(p, ActionFinish)

	next, ok := p.Update(shared)
	require.True(t, ok)
	assert.Equal(t, state.ScreenLeaderBoard, next)

	require.Len(t, shared.Results, 1)
	assert.Equal(t, session.Result{Player: "kim", Difficulty: session.DifficultyMedium, Ticks: 30}, shared.Results[0])
}

func TestPlaying_AbandonRecordsNothing(t *testing.T) {
	shared := session.NewForced(session.DefaultDefaults())
	p := New(createTestContext(t), shared)

	click(p, ActionAbandon)

	next, ok := p.Update(shared)
	require.True(t, ok)
	assert.Equal(t, state.ScreenMainMenu, next)
	assert.Empty(t, shared.Results)
}

func TestPlaying_ClickOnBoardIsNoop(t *testing.T) {
	shared := session.NewForced(session.DefaultDefaults())
	p := New(createTestContext(t), shared)

	p.HandlePointer(ebiten.MouseButtonLeft, boardX+10, boardY+10)

	_, ok := p.Update(shared)
	assert.False(t, ok)
}

func TestPlaying_OnExit(t *testing.T) {
	p := New(createTestContext(t), session.NewForced(session.DefaultDefaults()))
	p.OnExit()

	assert.True(t, p.Released())
	assert.Nil(t, p.buttons)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		ticks, tps int
		want       string
	}{
		{0, 60, "00:00"},
		{59, 60, "00:00"},
		{60 * 75, 60, "01:15"},
		{30, 30, "00:01"},
		{60, 0, "00:01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatClock(tt.ticks, tt.tps))
	}
}
