package testutil

import (
	"github.com/pageturn/pageturn/internal/flip"
	"github.com/pageturn/pageturn/internal/geom"
)

// Call records a single command dispatched to the engine.
type Call struct {
	Name   string
	Point  geom.Point
	Corner flip.Corner
	Flag   bool
}

// FakeEngine records flip commands for tests. RectValue and StateValue are
// what the read-only queries report.
type FakeEngine struct {
	Calls      []Call
	RectValue  flip.PageRect
	StateValue flip.State
}

// NewFakeEngine returns a fake engine in the read state with the given rect.
func NewFakeEngine(rect flip.PageRect) *FakeEngine {
	return &FakeEngine{RectValue: rect, StateValue: flip.StateRead}
}

// StartUserTouch records a corner-drag start.
func (f *FakeEngine) StartUserTouch(p geom.Point) {
	f.Calls = append(f.Calls, Call{Name: "StartUserTouch", Point: p})
}

// UserMove records a drag or hover update.
func (f *FakeEngine) UserMove(p geom.Point, isDragging bool) {
	f.Calls = append(f.Calls, Call{Name: "UserMove", Point: p, Flag: isDragging})
}

// UserStop records the end of an interaction.
func (f *FakeEngine) UserStop(p geom.Point, wasSwipe bool) {
	f.Calls = append(f.Calls, Call{Name: "UserStop", Point: p, Flag: wasSwipe})
}

// FlipNext records a forward navigation.
func (f *FakeEngine) FlipNext(corner flip.Corner) {
	f.Calls = append(f.Calls, Call{Name: "FlipNext", Corner: corner})
}

// FlipPrev records a backward navigation.
func (f *FakeEngine) FlipPrev(corner flip.Corner) {
	f.Calls = append(f.Calls, Call{Name: "FlipPrev", Corner: corner})
}

// State reports the configured state.
func (f *FakeEngine) State() flip.State {
	return f.StateValue
}

// Rect reports the configured bounding box.
func (f *FakeEngine) Rect() flip.PageRect {
	return f.RectValue
}

// Named returns the recorded calls with the given name.
func (f *FakeEngine) Named(name string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
