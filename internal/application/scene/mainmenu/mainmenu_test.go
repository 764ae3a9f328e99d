package mainmenu

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

type mockHost struct {
	exitCalled int
}

func (h *mockHost) RequestExit() { h.exitCalled++ }

func createTestContext(t *testing.T) (*scene.Context, *mockHost) {
	t.Helper()
	assets, err := render.LoadAssets()
	require.NoError(t, err)
	host := &mockHost{}
	return &scene.Context{Assets: assets, Host: host, Width: 720, Height: 480, TPS: 60}, host
}

func click(m *MainMenu, a Action) {
	x, y := m.Bounds(a).Center()
	m.HandlePointer(ebiten.MouseButtonLeft, x, y)
}

func TestNew_Layout(t *testing.T) {
	ctx, _ := createTestContext(t)
	m := New(ctx)

	assert.Equal(t, state.ScreenMainMenu, m.ID())
	assert.Equal(t, 320.0, m.Bounds(ActionPlay).X)
	assert.Equal(t, 200.0, m.Bounds(ActionPlay).Y)
	assert.Equal(t, 280.0, m.Bounds(ActionLeaderBoard).X)
	assert.Equal(t, 320.0, m.Bounds(ActionExit).Y)
}

func TestMainMenu_Transitions(t *testing.T) {
	tests := []struct {
		action Action
		want   state.ScreenID
	}{
		{ActionPlay, state.ScreenSelectDifficulty},
		{ActionLeaderBoard, state.ScreenLeaderBoard},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			ctx, _ := createTestContext(t)
			m := New(ctx)
			shared := session.New()

			click(m, tt.action)

			next, ok := m.Update(shared)
			assert.True(t, ok)
			assert.Equal(t, tt.want, next)

			_, ok = m.Update(shared)
			assert.False(t, ok, "transition is returned once")
		})
	}
}

func TestMainMenu_UpdateWithoutInput(t *testing.T) {
	ctx, _ := createTestContext(t)
	m := New(ctx)

	for i := 0; i < 5; i++ {
		_, ok := m.Update(session.New())
		assert.False(t, ok)
	}
}

func TestMainMenu_ExitRequestsHostExit(t *testing.T) {
	ctx, host := createTestContext(t)
	m := New(ctx)

	click(m, ActionExit)

	assert.Equal(t, 1, host.exitCalled)
	_, ok := m.Update(session.New())
	assert.False(t, ok, "exit is not a screen transition")
}

func TestMainMenu_IgnoresMissesAndOtherButtons(t *testing.T) {
	ctx, host := createTestContext(t)
	m := New(ctx)

	m.HandlePointer(ebiten.MouseButtonLeft, 5, 5)
	x, y := m.Bounds(ActionPlay).Center()
	m.HandlePointer(ebiten.MouseButtonRight, x, y)

	_, ok := m.Update(session.New())
	assert.False(t, ok)
	assert.Zero(t, host.exitCalled)
}

func TestMainMenu_OnExitReleases(t *testing.T) {
	ctx, _ := createTestContext(t)
	m := New(ctx)

	m.OnExit()

	assert.True(t, m.Released())
	assert.Nil(t, m.buttons)
	assert.Nil(t, m.background.Vertices)
}
