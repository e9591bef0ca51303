// Package flip implements the page-flip engine: page bookkeeping, fold-shape
// geometry for the page being peeled, and sampled flip-animation paths.
package flip

import "github.com/pageturn/pageturn/internal/geom"

// Corner identifies which page corner a fold or flip is anchored to.
type Corner int

const (
	// CornerTop anchors the fold to the top page corner.
	CornerTop Corner = iota
	// CornerBottom anchors the fold to the bottom page corner.
	CornerBottom
)

// String returns the wire name of the corner.
func (c Corner) String() string {
	if c == CornerTop {
		return "top"
	}
	return "bottom"
}

// State describes what the engine is currently doing.
type State string

const (
	// StateRead means no fold or flip is in progress.
	StateRead State = "read"
	// StateFoldCorner means a corner is folded by a hover, not a drag.
	StateFoldCorner State = "fold_corner"
	// StateUserFold means the user is actively dragging a corner.
	StateUserFold State = "user_fold"
	// StateFlipping means an animated page turn is running.
	StateFlipping State = "flipping"
)

// PageRect describes the widget bounding box and the width of a single page
// within it (half the box for a two-page spread, the full box otherwise).
type PageRect struct {
	Left      float64
	Top       float64
	Width     float64
	Height    float64
	PageWidth float64
}

// FoldShape is the renderable description of the current fold: the anchored
// corner, the crease angle against the page edge, the dragged fold point,
// and the outline of the folded triangle.
type FoldShape struct {
	Corner  Corner
	Angle   float64
	Pos     geom.Point
	Outline []geom.Point
}
