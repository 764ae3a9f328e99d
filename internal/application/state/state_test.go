package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenID_String(t *testing.T) {
	tests := []struct {
		id       ScreenID
		expected string
	}{
		{ScreenMainMenu, "MainMenu"},
		{ScreenSelectDifficulty, "SelectDifficulty"},
		{ScreenPlaying, "Playing"},
		{ScreenLeaderBoard, "LeaderBoard"},
		{ScreenID(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.id.String())
		})
	}
}

func TestScreenIDConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, ScreenID(0), ScreenMainMenu)
	assert.Equal(t, ScreenID(1), ScreenSelectDifficulty)
	assert.Equal(t, ScreenID(2), ScreenPlaying)
	assert.Equal(t, ScreenID(3), ScreenLeaderBoard)
}

func TestScreenID_Valid(t *testing.T) {
	for _, id := range AllScreens() {
		assert.True(t, id.Valid(), id.String())
	}
	assert.False(t, ScreenID(-1).Valid())
	assert.False(t, ScreenID(4).Valid())
}

func TestScreenID_NeedsSession(t *testing.T) {
	assert.True(t, ScreenPlaying.NeedsSession())
	assert.False(t, ScreenMainMenu.NeedsSession())
	assert.False(t, ScreenSelectDifficulty.NeedsSession())
	assert.False(t, ScreenLeaderBoard.NeedsSession())
}

func TestParseScreenID(t *testing.T) {
	tests := []struct {
		in   string
		want ScreenID
	}{
		{"MainMenu", ScreenMainMenu},
		{"main-menu", ScreenMainMenu},
		{"select_difficulty", ScreenSelectDifficulty},
		{"PLAYING", ScreenPlaying},
		{"leader board", ScreenLeaderBoard},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScreenID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseScreenID("credits")
	assert.Error(t, err)
}

func TestScreenID_TextRoundTrip(t *testing.T) {
	var cfg struct {
		Initial ScreenID `json:"initial"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"initial":"playing"}`), &cfg))
	assert.Equal(t, ScreenPlaying, cfg.Initial)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"initial":"Playing"}`, string(out))

	_, err = ScreenID(42).MarshalText()
	assert.Error(t, err)
}
