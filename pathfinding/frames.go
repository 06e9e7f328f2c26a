package pathfinding

// FrameKind says how a frame's node should be highlighted.
type FrameKind string

const (
	FrameVisit FrameKind = "visit"
	FramePath  FrameKind = "path"
)

// Frame is one animation step: a single node snapshot and how to show it.
type Frame struct {
	Node Node      `json:"node"`
	Kind FrameKind `json:"kind"`
}

// Frames flattens a result into the playback order: every visited node, then
// every node on the path.
func (r Result) Frames() []Frame {
	frames := make([]Frame, 0, len(r.Visited)+len(r.Path))
	for _, n := range r.Visited {
		frames = append(frames, Frame{Node: n, Kind: FrameVisit})
	}
	for _, n := range r.Path {
		frames = append(frames, Frame{Node: n, Kind: FramePath})
	}
	return frames
}
