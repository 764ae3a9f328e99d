package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/sudoku/internal/application/system"
)

// Replayer plays back recorded pointer input. It implements
// system.InputSource.
type Replayer struct {
	data ReplayData
	tick int
	then system.InputSource
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data: data,
		tick: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// Then sets the source polled once every recorded tick was played,
// so a finished replay hands control back to the player.
func (r *Replayer) Then(next system.InputSource) *Replayer {
	r.then = next
	return r
}

// Poll returns the events for the current tick and advances.
// After the last recorded tick it polls the Then source, or returns
// nothing when there is none.
func (r *Replayer) Poll() []system.PointerEvent {
	if r.tick >= len(r.data.Ticks) {
		if r.then != nil {
			return r.then.Poll()
		}
		return nil
	}

	ti := r.data.Ticks[r.tick]
	r.tick++

	var events []system.PointerEvent
	for _, p := range ti.E {
		events = append(events, toEvent(p))
	}
	return events
}

// CurrentFrame returns the current tick number
func (r *Replayer) CurrentFrame() int {
	return r.tick
}

// TotalFrames returns the total number of ticks
func (r *Replayer) TotalFrames() int {
	return len(r.data.Ticks)
}

// Done reports whether every recorded tick was played
func (r *Replayer) Done() bool {
	return r.tick >= len(r.data.Ticks)
}

// Initial returns the screen name the recording started on
func (r *Replayer) Initial() string {
	return r.data.Initial
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.tick = 0
}

// CreateTestReplayData creates replay data for testing: idle ticks with a
// single left press at the given tick.
func CreateTestReplayData(ticks, clickAt int, x, y float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Initial:   "MainMenu",
		StartTime: time.Now().Format(time.RFC3339),
		Ticks:     make([]TickInput, ticks),
	}

	for i := 0; i < ticks; i++ {
		data.Ticks[i] = TickInput{F: i}
		if i == clickAt {
			data.Ticks[i].E = []PointerInput{{X: x, Y: y}}
		}
	}

	return data
}
