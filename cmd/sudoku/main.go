package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sudoku/internal/application/game"
	"github.com/younwookim/sudoku/internal/application/replay"
	"github.com/younwookim/sudoku/internal/application/state"
	"github.com/younwookim/sudoku/internal/application/system"
	"github.com/younwookim/sudoku/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	screenFlag := flag.String("screen", "", "Initial screen: MainMenu, SelectDifficulty, Playing or LeaderBoard")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto for a timestamped name)")
	replayFlag := flag.String("replay", "", "Replay input from file")
	flag.Parse()

	// Config errors are reported before the real logger exists
	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fatal(newLogger(os.Stderr, slog.LevelInfo), "failed to load config", err)
	}
	level, _ := cfg.SlogLevel()
	logger := newLogger(os.Stderr, level)

	var replayData *replay.ReplayData
	if *replayFlag != "" {
		replayData, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			fatal(logger, "failed to load replay", err)
		}
	}

	initial, err := resolveInitial(*screenFlag, cfg, replayData)
	if err != nil {
		fatal(logger, "invalid initial screen", err)
	}

	opts := []game.Option{
		game.WithLogger(logger),
		game.WithScreenSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		game.WithTPS(cfg.Display.Framerate),
		game.WithDefaults(cfg.Session.Defaults()),
	}
	if replayData != nil {
		// Live input takes over once the recording runs out
		rp := replay.NewReplayer(*replayData).Then(system.NewEbitenInput())
		opts = append(opts, game.WithInput(rp))
		logger.Info("replaying input", "file", *replayFlag, "ticks", len(replayData.Ticks))
	} else {
		opts = append(opts, game.WithInput(system.NewEbitenInput()))
	}

	var recorder *replay.Recorder
	recordFile := recordPath(*recordFlag)
	if recordFile != "" {
		recorder = replay.NewRecorder(initial.String())
		opts = append(opts, game.WithRecorder(recorder))
		logger.Info("recording enabled", "file", recordFile)
	}

	// Fonts and the initial screen must exist before the window opens
	g, err := game.New(initial, opts...)
	if err != nil {
		fatal(logger, "failed to start", err)
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	runErr := ebiten.RunGame(g)

	if recorder != nil {
		if err := recorder.Save(recordFile); err != nil {
			logger.Error("failed to save recording", "err", err)
		} else {
			logger.Info("recording saved", "file", recordFile, "ticks", recorder.FrameCount())
		}
	}

	if runErr != nil {
		fatal(logger, "game stopped", runErr)
	}
}

// loadConfig loads app.json from dir, or from the embedded configs when
// dir is empty.
func loadConfig(dir string) (*config.AppConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// resolveInitial picks the initial screen: the -screen flag first, then
// the screen a replay was recorded on, then the config.
func resolveInitial(flagValue string, cfg *config.AppConfig, data *replay.ReplayData) (state.ScreenID, error) {
	if flagValue != "" {
		return state.ParseScreenID(flagValue)
	}
	if data != nil && data.Initial != "" {
		return state.ParseScreenID(data.Initial)
	}
	return cfg.InitialScreen, nil
}

// recordPath returns the file a recording is saved to. "auto" picks a
// timestamped name.
func recordPath(flagValue string) string {
	if flagValue == "auto" {
		return replay.GenerateFilename()
	}
	return flagValue
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
