package flip

import (
	"fmt"
	"sync"

	"github.com/pageturn/pageturn/internal/geom"
)

// foldReach limits how far a fold point may travel from the spine, in page
// widths. A fully unfolded page reaches twice its width.
const foldReach = 2.0

// Book tracks the open page and the fold/flip in progress. All methods are
// safe for concurrent use; the control channel and the gesture drag timer
// run on different goroutines.
type Book struct {
	mu      sync.Mutex
	rect    PageRect
	pages   int
	current int
	state   State
	corner  Corner
	fold    *geom.Point
	frames  []geom.Point
}

// NewBook creates a book with the given bounding box and page count.
func NewBook(rect PageRect, pages int) *Book {
	return &Book{
		rect:  rect,
		pages: pages,
		state: StateRead,
	}
}

// StartUserTouch begins a corner drag at the given point.
func (b *Book) StartUserTouch(p geom.Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finishAnimationLocked()
	b.corner = b.cornerFor(p)
	b.state = StateUserFold
	fold := b.clampFold(p)
	b.fold = &fold
}

// UserMove updates an in-progress fold. A non-dragging move folds the corner
// as a hover preview; a dragging move peels the page.
func (b *Book) UserMove(p geom.Point, isDragging bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateFlipping {
		return
	}
	if b.fold == nil {
		b.corner = b.cornerFor(p)
	}
	fold := b.clampFold(p)
	b.fold = &fold
	if isDragging {
		b.state = StateUserFold
	} else if b.state == StateRead {
		b.state = StateFoldCorner
	}
}

// UserStop ends the current interaction. A swipe stop only clears the fold;
// the navigation was already dispatched. A drag stop completes the flip when
// the page was peeled past half its width, and rolls it back otherwise.
func (b *Book) UserStop(p geom.Point, wasSwipe bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if wasSwipe || b.fold == nil {
		b.fold = nil
		if b.state != StateFlipping {
			b.state = StateRead
		}
		return
	}

	fold := *b.fold
	corner := b.cornerPoint(b.corner)
	if corner.X-fold.X > b.rect.PageWidth/2 {
		b.flipForwardLocked(b.corner)
		return
	}
	// Not peeled far enough: animate the fold back to its corner.
	b.frames = geom.SamplePath(fold, corner)
	b.fold = nil
	b.state = StateRead
}

// FlipNext turns to the next page with an animated flip from the corner.
func (b *Book) FlipNext(corner Corner) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flipForwardLocked(corner)
}

// FlipPrev turns to the previous page with an animated flip from the corner.
func (b *Book) FlipPrev(corner Corner) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finishAnimationLocked()
	if b.current == 0 {
		b.fold = nil
		b.state = StateRead
		return
	}
	b.current--
	b.startFlipAnimationLocked(corner)
}

// TurnToPage jumps to the given page without animation.
func (b *Book) TurnToPage(n int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 0 || n >= b.pages {
		return fmt.Errorf("page %d out of range [0, %d)", n, b.pages)
	}
	b.finishAnimationLocked()
	b.current = n
	b.fold = nil
	b.state = StateRead
	return nil
}

// State returns the current engine state.
func (b *Book) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Rect returns the widget bounding box and page width.
func (b *Book) Rect() PageRect {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rect
}

// CurrentPage returns the zero-based open page index.
func (b *Book) CurrentPage() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// PageCount returns the total number of pages.
func (b *Book) PageCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pages
}

// FoldShape returns the renderable fold description, or nil when no fold is
// in progress.
func (b *Book) FoldShape() *FoldShape {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fold == nil {
		return nil
	}
	return b.foldShapeLocked()
}

// AnimationFrames returns the remaining fold-point path of the running flip.
func (b *Book) AnimationFrames() []geom.Point {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]geom.Point, len(b.frames))
	copy(out, b.frames)
	return out
}

// FinishAnimation completes the running flip immediately.
func (b *Book) FinishAnimation() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finishAnimationLocked()
}

// flipForwardLocked advances a page and starts the flip animation. A flip
// already running is finished first so rapid gestures queue.
func (b *Book) flipForwardLocked(corner Corner) {
	b.finishAnimationLocked()
	if b.current >= b.pages-1 {
		b.fold = nil
		b.state = StateRead
		return
	}
	b.current++
	b.startFlipAnimationLocked(corner)
}

// startFlipAnimationLocked samples the fold-point path from the outer corner
// across the spread.
func (b *Book) startFlipAnimationLocked(corner Corner) {
	b.corner = corner
	start := b.cornerPoint(corner)
	if b.fold != nil {
		start = *b.fold
	}
	end := geom.Point{X: b.rect.Left, Y: start.Y}
	b.frames = geom.SamplePath(start, end)
	b.fold = nil
	b.state = StateFlipping
}

// finishAnimationLocked drops any pending animation frames.
func (b *Book) finishAnimationLocked() {
	if len(b.frames) != 0 {
		b.frames = nil
		if b.state == StateFlipping {
			b.state = StateRead
		}
	}
}

// cornerFor picks the fold corner from the point's vertical position.
func (b *Book) cornerFor(p geom.Point) Corner {
	if p.Y < b.rect.Top+b.rect.Height/2 {
		return CornerTop
	}
	return CornerBottom
}

// cornerPoint returns the outer corner of the flippable page.
func (b *Book) cornerPoint(corner Corner) geom.Point {
	y := b.rect.Top
	if corner == CornerBottom {
		y = b.rect.Top + b.rect.Height
	}
	return geom.Point{X: b.rect.Left + b.rect.Width, Y: y}
}

// spinePoint returns the spine end of the flippable page's corner edge.
func (b *Book) spinePoint(corner Corner) geom.Point {
	p := b.cornerPoint(corner)
	p.X -= b.rect.PageWidth
	return p
}

// clampFold keeps the fold point within reach of the spine so the page
// cannot tear off its binding.
func (b *Book) clampFold(p geom.Point) geom.Point {
	return geom.ClampToCircle(b.spinePoint(b.corner), foldReach*b.rect.PageWidth, p)
}

// foldShapeLocked computes the crease and folded-triangle outline. The
// crease is the perpendicular bisector of the segment from the page corner
// to the fold point, clipped against the page edges.
func (b *Book) foldShapeLocked() *FoldShape {
	fold := *b.fold
	corner := b.cornerPoint(b.corner)

	mid := geom.Point{X: (corner.X + fold.X) / 2, Y: (corner.Y + fold.Y) / 2}
	crease := geom.Segment{
		Start: mid,
		End:   geom.Point{X: mid.X + (corner.Y - fold.Y), Y: mid.Y + (fold.X - corner.X)},
	}

	page := geom.Rect{
		Left:   b.rect.Left + b.rect.Width - b.rect.PageWidth,
		Top:    b.rect.Top,
		Width:  b.rect.PageWidth,
		Height: b.rect.Height,
	}
	hEdge := geom.Segment{Start: b.spinePoint(b.corner), End: corner}
	vEdge := geom.Segment{Start: b.cornerPoint(CornerTop), End: b.cornerPoint(CornerBottom)}

	shape := &FoldShape{
		Corner:  b.corner,
		Angle:   geom.AngleBetween(crease, hEdge),
		Pos:     fold,
		Outline: []geom.Point{fold},
	}

	onH, err := geom.Intersect(page, crease, hEdge)
	if err != nil {
		// Coincident crease and edge: the fold collapsed onto the page
		// border, the degenerate outline is just fold and corner.
		shape.Outline = append(shape.Outline, corner)
		return shape
	}
	onV, err := geom.Intersect(page, crease, vEdge)
	if err != nil {
		shape.Outline = append(shape.Outline, corner)
		return shape
	}
	if onH != nil {
		shape.Outline = append(shape.Outline, *onH)
	}
	if onV != nil {
		shape.Outline = append(shape.Outline, *onV)
	}
	return shape
}
