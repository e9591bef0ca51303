// Package control receives pointer events over websocket and feeds them to
// the gesture machine.
package control

// Message is a control websocket payload sent by the client.
type Message struct {
	T      string  `json:"t"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Target string  `json:"target,omitempty"`
	Page   *int    `json:"page,omitempty"`
}

// FoldPayload describes the current fold for the client renderer.
type FoldPayload struct {
	Corner  string      `json:"corner"`
	Angle   float64     `json:"angle"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Outline [][]float64 `json:"outline"`
}

// StateMessage is the state push sent after every handled message.
type StateMessage struct {
	T     string       `json:"t"`
	Page  int          `json:"page"`
	Pages int          `json:"pages"`
	State string       `json:"state"`
	Fold  *FoldPayload `json:"fold,omitempty"`
}

// interactiveTargets are the client element tags whose events bypass gesture
// capture so embedded links and buttons stay clickable.
var interactiveTargets = map[string]bool{
	"a":      true,
	"button": true,
}

// IsInteractiveTarget reports whether the event target tag is an interactive
// child element.
func IsInteractiveTarget(tag string) bool {
	return interactiveTargets[tag]
}
