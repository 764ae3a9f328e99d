package replay

// Version is the replay format version written by Recorder.
const Version = "1.0"

// PointerInput is one recorded pointer press
type PointerInput struct {
	B int     `json:"b,omitempty"` // Mouse button (0 = left)
	X float64 `json:"x"`           // X in screen coordinates
	Y float64 `json:"y"`           // Y in screen coordinates
}

// TickInput records the pointer presses delivered on a single tick
type TickInput struct {
	F int            `json:"f"`           // Tick number
	E []PointerInput `json:"e,omitempty"` // Presses
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string      `json:"version"`
	Initial   string      `json:"initial"`
	StartTime string      `json:"startTime"`
	Ticks     []TickInput `json:"ticks"`
}
