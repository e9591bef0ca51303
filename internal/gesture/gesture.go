// Package gesture resolves raw pointer events into flip commands.
package gesture

import (
	"math"
	"sync"
	"time"

	"github.com/pageturn/pageturn/internal/config"
	"github.com/pageturn/pageturn/internal/flip"
	"github.com/pageturn/pageturn/internal/geom"
)

const (
	// dragTimerDelay is how long a press must hold before it becomes a
	// corner drag instead of a tap or swipe.
	dragTimerDelay = 250 * time.Millisecond
	// swipeTimeout bounds the duration of an up-detected fast swipe.
	swipeTimeout = 250 * time.Millisecond
	// tapTimeout bounds the duration of a single-page tap.
	tapTimeout = 400 * time.Millisecond
	// tapSlop is the maximum per-axis travel of a tap, in px.
	tapSlop = 15.0
	// dragJitter is the horizontal travel below which touch moves are left
	// to native scrolling, in px.
	dragJitter = 10.0
	// swipeDominance is how much horizontal travel must outweigh vertical
	// travel before a move resolves as a swipe.
	swipeDominance = 1.2
	// tapZone is the fraction of the page width on each side that maps a
	// tap to navigation.
	tapZone = 0.25
)

// Engine is the flip-engine surface the gesture machine drives.
type Engine interface {
	StartUserTouch(p geom.Point)
	UserMove(p geom.Point, isDragging bool)
	UserStop(p geom.Point, wasSwipe bool)
	FlipNext(corner flip.Corner)
	FlipPrev(corner flip.Corner)
	State() flip.State
	Rect() flip.PageRect
}

// session tracks one pointer-down-to-pointer-up interaction.
type session struct {
	origin    geom.Point
	startedAt time.Time
}

// Controller owns the single active pointer session of a widget instance
// and classifies it into exactly one terminal action. The mutex is needed
// because the corner-drag timer fires on its own goroutine.
type Controller struct {
	mu       sync.Mutex
	cfg      config.Settings
	engine   Engine
	session  *session
	resolved bool
	now      func() time.Time
	schedule func(d time.Duration, fn func())
}

// NewController returns a gesture controller for the given engine.
func NewController(cfg config.Settings, engine Engine) *Controller {
	return &Controller{
		cfg:      cfg,
		engine:   engine,
		now:      time.Now,
		schedule: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// SetNowFunc overrides the clock used for gesture timing.
func (c *Controller) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		c.now = fn
	}
}

// SetScheduleFunc overrides the corner-drag timer scheduler.
func (c *Controller) SetScheduleFunc(fn func(d time.Duration, fn func())) {
	if fn != nil {
		c.schedule = fn
	}
}

// HandleDown opens a pointer session. Events on interactive children pass
// through untouched when click forwarding is enabled, so embedded links and
// buttons stay clickable. Non-single-page layouts arm the corner-drag timer;
// its callback checks that the same session is still open and unresolved, so
// a swipe resolved first always wins.
func (c *Controller) HandleDown(p geom.Point, interactiveTarget bool) {
	if !c.cfg.UseMouseEvents {
		return
	}
	if interactiveTarget && c.cfg.ClickEventForward {
		return
	}

	c.mu.Lock()
	sess := &session{origin: p, startedAt: c.now()}
	c.session = sess
	c.resolved = false
	c.mu.Unlock()

	if c.cfg.SinglePage {
		// Corner drag is a desktop affordance that fights touch scrolling.
		return
	}
	c.schedule(dragTimerDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.session != sess || c.resolved {
			return
		}
		c.engine.StartUserTouch(sess.origin)
	})
}

// HandleMove processes a pointer move and reports whether the caller should
// suppress native scrolling. A move that reaches the swipe distance with
// dominant horizontal travel resolves the session as a swipe immediately, so
// navigation fires the moment direction is unambiguous.
func (c *Controller) HandleMove(p geom.Point) bool {
	if !c.cfg.UseMouseEvents {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resolved {
		// Swipe already fired; remaining moves only keep scroll locked.
		return true
	}
	if c.session == nil {
		c.engine.UserMove(p, false)
		return false
	}

	dx := p.X - c.session.origin.X
	absDx := math.Abs(dx)
	absDy := math.Abs(p.Y - c.session.origin.Y)

	if absDx >= c.cfg.SwipeDistance && absDx > swipeDominance*absDy {
		corner := c.cornerFor(c.session.origin)
		c.resolved = true
		c.session = nil
		if dx > 0 {
			c.engine.FlipPrev(corner)
		} else {
			c.engine.FlipNext(corner)
		}
		return true
	}

	if c.cfg.MobileScrollSupport {
		if absDx > dragJitter || c.engine.State() != flip.StateRead {
			c.engine.UserMove(p, true)
		}
		return c.engine.State() != flip.StateRead
	}
	c.engine.UserMove(p, true)
	return false
}

// HandleUp closes the pointer session, running the fallback fast-swipe
// detector and the single-page tap zones before settling for a plain stop.
// The session is always cleared, whichever branch fires.
func (c *Controller) HandleUp(p geom.Point) {
	if !c.cfg.UseMouseEvents {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.session
	resolved := c.resolved
	c.session = nil
	c.resolved = false

	if resolved {
		c.engine.UserStop(p, true)
		return
	}
	if sess == nil {
		return
	}

	elapsed := c.now().Sub(sess.startedAt)
	dx := p.X - sess.origin.X
	absDx := math.Abs(dx)
	absDy := math.Abs(p.Y - sess.origin.Y)

	// Fast gestures can outrun the move-based detector.
	if absDx > c.cfg.SwipeDistance && absDy < 2*c.cfg.SwipeDistance && elapsed < swipeTimeout {
		corner := c.cornerFor(sess.origin)
		if dx > 0 {
			c.engine.FlipPrev(corner)
		} else {
			c.engine.FlipNext(corner)
		}
		c.engine.UserStop(p, true)
		return
	}

	if c.cfg.SinglePage && absDx < tapSlop && absDy < tapSlop && elapsed < tapTimeout {
		c.handleTapZone(p)
		return
	}

	c.engine.UserStop(p, false)
}

// handleTapZone maps a tap to discrete navigation by horizontal position:
// left quarter previous, right quarter next, middle half nothing. A tap
// exactly on a boundary does not navigate.
func (c *Controller) handleTapZone(p geom.Point) {
	width := c.engine.Rect().PageWidth
	switch {
	case p.X < tapZone*width:
		c.engine.FlipPrev(flip.CornerBottom)
	case p.X > (1-tapZone)*width:
		c.engine.FlipNext(flip.CornerBottom)
	}
}

// cornerFor picks the flip corner from the point's vertical position within
// the widget.
func (c *Controller) cornerFor(p geom.Point) flip.Corner {
	if p.Y < c.engine.Rect().Height/2 {
		return flip.CornerTop
	}
	return flip.CornerBottom
}
