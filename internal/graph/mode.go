// Package graph defines the canvas collaborator contract: the interaction
// mode the toolbar drives and the node/shape payloads that go with it.
package graph

import "fmt"

// Mode is the canvas interaction behavior. The node and annotation payloads
// only carry meaning in ModePlaceNode and ModeAnnotation respectively.
type Mode int

const (
	// ModeSelect moves and selects existing elements.
	ModeSelect Mode = iota
	// ModeEdge draws links between nodes.
	ModeEdge
	// ModePlaceNode places the currently chosen node type.
	ModePlaceNode
	// ModeAnnotation draws the currently chosen shape.
	ModeAnnotation
)

func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeEdge:
		return "edge"
	case ModePlaceNode:
		return "place-node"
	case ModeAnnotation:
		return "annotation"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ShapeType is an annotation shape choice.
type ShapeType string

const (
	ShapeMarker    ShapeType = "marker"
	ShapeOval      ShapeType = "oval"
	ShapeRectangle ShapeType = "rectangle"
	ShapeText      ShapeType = "text"
)

// IsMarker reports whether the shape is the freehand marker, which opens
// the marker tool when selected.
func (s ShapeType) IsMarker() bool {
	return s == ShapeMarker
}

// Canvas is the surface the toolbar mutates. All calls happen on the UI
// event loop.
type Canvas interface {
	SetMode(Mode)
	SetNodeDraw(NodeDraw)
	SetAnnotationType(ShapeType)
	// StoppedSession is invoked once when a session has been torn down so
	// runtime-only visuals can be cleared.
	StoppedSession()
}
