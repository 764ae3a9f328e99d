package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sudoku/internal/application/system"
)

func TestRecorder_Record(t *testing.T) {
	r := NewRecorder("MainMenu")

	r.Record(nil)
	r.Record([]system.PointerEvent{{Button: ebiten.MouseButtonRight, X: 10, Y: 20}})

	data := r.GetData()
	require.Len(t, data.Ticks, 2)
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "MainMenu", data.Initial)
	assert.Equal(t, 0, data.Ticks[0].F)
	assert.Empty(t, data.Ticks[0].E)
	assert.Equal(t, 1, data.Ticks[1].F)
	assert.Equal(t, []PointerInput{{B: int(ebiten.MouseButtonRight), X: 10, Y: 20}}, data.Ticks[1].E)
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder("MainMenu")
	r.Record(nil)
	r.Stop()
	r.Record(nil)

	assert.False(t, r.IsRecording())
	assert.Equal(t, 1, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder("MainMenu")
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestRecorderAndReplayer(t *testing.T) {
	click := system.PointerEvent{Button: ebiten.MouseButtonLeft, X: 360, Y: 220}

	r := NewRecorder("Playing")
	r.Record(nil)
	r.Record([]system.PointerEvent{click})
	r.Record(nil)

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)

	rp := NewReplayer(*data)
	assert.Equal(t, 3, rp.TotalFrames())
	assert.Equal(t, "Playing", rp.Initial())

	assert.Empty(t, rp.Poll())
	assert.Equal(t, []system.PointerEvent{click}, rp.Poll())
	assert.Empty(t, rp.Poll())
	assert.True(t, rp.Done())
	assert.Empty(t, rp.Poll(), "exhausted replay yields nothing")

	rp.Reset()
	assert.Equal(t, 0, rp.CurrentFrame())
	assert.False(t, rp.Done())
}

func TestReplayer_ThenTakesOverWhenDone(t *testing.T) {
	live := system.PointerEvent{Button: ebiten.MouseButtonLeft, X: 1, Y: 2}
	next := system.NewScriptedInput(map[int][]system.PointerEvent{0: {live}})
	rp := NewReplayer(CreateTestReplayData(2, 0, 10, 20)).Then(next)

	assert.Equal(t, []system.PointerEvent{{X: 10, Y: 20}}, rp.Poll())
	assert.Empty(t, rp.Poll())
	assert.Equal(t, 0, next.Tick(), "live input untouched while replaying")

	assert.True(t, rp.Done())
	assert.Equal(t, []system.PointerEvent{live}, rp.Poll())
	assert.Equal(t, 1, next.Tick())
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"0.1","ticks":[]}`), 0o644))
	_, err = LoadReplay(old)
	assert.Error(t, err)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(5, 2, 100, 200)

	require.Len(t, data.Ticks, 5)
	assert.Empty(t, data.Ticks[1].E)
	assert.Equal(t, []PointerInput{{X: 100, Y: 200}}, data.Ticks[2].E)
	assert.Equal(t, 4, data.Ticks[4].F)
}
