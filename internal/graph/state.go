package graph

import "image/color"

// Marker holds the freehand marker drawing options set by the marker tool.
type Marker struct {
	Size  float32
	Color color.Color
}

// State is the concrete canvas state used by the application. It has a
// single writer, the UI event loop, so it carries no locking.
type State struct {
	mode           Mode
	nodeDraw       NodeDraw
	annotationType ShapeType
	marker         Marker
	stoppedCount   int
}

func NewState() *State {
	return &State{
		mode:           ModeSelect,
		annotationType: ShapeMarker,
		marker:         Marker{Size: 3, Color: color.RGBA{R: 255, A: 255}},
	}
}

func (s *State) SetMode(m Mode)                { s.mode = m }
func (s *State) Mode() Mode                    { return s.mode }
func (s *State) SetNodeDraw(n NodeDraw)        { s.nodeDraw = n }
func (s *State) NodeDraw() NodeDraw            { return s.nodeDraw }
func (s *State) SetAnnotationType(t ShapeType) { s.annotationType = t }
func (s *State) AnnotationType() ShapeType     { return s.annotationType }
func (s *State) SetMarker(m Marker)            { s.marker = m }
func (s *State) Marker() Marker                { return s.marker }

// StoppedSession clears runtime-only visuals. The counter backs tests that
// assert it fires exactly once per stop.
func (s *State) StoppedSession() {
	s.stoppedCount++
	s.mode = ModeSelect
}

func (s *State) StoppedCount() int { return s.stoppedCount }
