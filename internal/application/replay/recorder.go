package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sudoku/internal/application/system"
)

// Recorder records pointer input for replay
type Recorder struct {
	data      ReplayData
	recording bool
	tick      int
}

// NewRecorder creates a new recorder for a session starting on the named screen
func NewRecorder(initial string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Initial:   initial,
			StartTime: time.Now().Format(time.RFC3339),
			Ticks:     make([]TickInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Record records a single tick's pointer events
func (r *Recorder) Record(events []system.PointerEvent) {
	if !r.recording {
		return
	}

	ti := TickInput{F: r.tick}
	for _, ev := range events {
		ti.E = append(ti.E, PointerInput{B: int(ev.Button), X: ev.X, Y: ev.Y})
	}

	r.data.Ticks = append(r.data.Ticks, ti)
	r.tick++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Ticks) == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded ticks
func (r *Recorder) FrameCount() int {
	return len(r.data.Ticks)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}

func toEvent(p PointerInput) system.PointerEvent {
	return system.PointerEvent{Button: ebiten.MouseButton(p.B), X: p.X, Y: p.Y}
}
