package viewer

import "fmt"

const (
	MinScale  = 0.5
	MaxScale  = 3.0
	ScaleStep = 0.25
)

// Op names a viewer transition as sent by the browser.
type Op string

const (
	OpNext     Op = "next"
	OpPrev     Op = "prev"
	OpZoomIn   Op = "zoomIn"
	OpZoomOut  Op = "zoomOut"
	OpRotate   Op = "rotate"
	OpDownload Op = "download"
)

// State is the local image-review state of a document preview.
// All transitions are total; none of them touch the network.
type State struct {
	Images            []string `json:"images"`
	CurrentImageIndex int      `json:"currentImageIndex"`
	Scale             float64  `json:"scale"`
	Rotation          int      `json:"rotation"`
}

// New opens a viewer on the first image at 100% with no rotation.
func New(images []string) State {
	return State{Images: append([]string(nil), images...), Scale: 1}
}

// Current returns the URL of the displayed image, or "" when there are none.
func (s State) Current() string {
	if len(s.Images) == 0 {
		return ""
	}
	return s.Images[s.CurrentImageIndex]
}

// Next moves forward, wrapping to the first image, and resets zoom and rotation.
func (s State) Next() State {
	if n := len(s.Images); n > 0 {
		s.CurrentImageIndex = (s.CurrentImageIndex + 1) % n
	}
	return s.reset()
}

// Prev moves back, wrapping to the last image, and resets zoom and rotation.
func (s State) Prev() State {
	if n := len(s.Images); n > 0 {
		s.CurrentImageIndex = (s.CurrentImageIndex - 1 + n) % n
	}
	return s.reset()
}

// ZoomIn grows the scale by one step, stopping at MaxScale.
func (s State) ZoomIn() State {
	s.Scale = clamp(s.Scale + ScaleStep)
	return s
}

// ZoomOut shrinks the scale by one step, stopping at MinScale.
func (s State) ZoomOut() State {
	s.Scale = clamp(s.Scale - ScaleStep)
	return s
}

// Rotate turns the image a quarter clockwise.
func (s State) Rotate() State {
	s.Rotation = (s.Rotation + 90) % 360
	return s
}

// Download returns the URL to fetch; the state is unchanged.
func (s State) Download() (State, string) {
	return s, s.Current()
}

// Apply runs op and returns the new state plus, for downloads, the URL to fetch.
func (s State) Apply(op Op) (State, string, error) {
	switch op {
	case OpNext:
		return s.Next(), "", nil
	case OpPrev:
		return s.Prev(), "", nil
	case OpZoomIn:
		return s.ZoomIn(), "", nil
	case OpZoomOut:
		return s.ZoomOut(), "", nil
	case OpRotate:
		return s.Rotate(), "", nil
	case OpDownload:
		st, url := s.Download()
		return st, url, nil
	default:
		return s, "", fmt.Errorf("viewer: unknown op %q", op)
	}
}

func (s State) reset() State {
	s.Scale = 1
	s.Rotation = 0
	return s
}

func clamp(v float64) float64 {
	if v < MinScale {
		return MinScale
	}
	if v > MaxScale {
		return MaxScale
	}
	return v
}
