package control

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pageturn/pageturn/internal/flip"
	"github.com/pageturn/pageturn/internal/gesture"
	"github.com/pageturn/pageturn/internal/geom"
)

// Server handles the websocket control channel of one widget instance.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	book     *flip.Book
	gestures *gesture.Controller
	conn     *websocket.Conn
}

// NewServer creates a control websocket server for the given book and
// gesture controller.
func NewServer(book *flip.Book, gestures *gesture.Controller) *Server {
	return &Server{
		book:     book,
		gestures: gestures,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages until the
// client disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		s.handleMessage(msg)
		if err := conn.WriteJSON(s.buildState()); err != nil {
			return
		}
	}
}

// Close tears down the active connection so no handler outlives the server.
func (s *Server) Close() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches a single control message. Unknown message kinds
// and out-of-range page requests are no-ops, not connection errors.
func (s *Server) handleMessage(msg Message) {
	p := geom.Point{X: msg.X, Y: msg.Y}
	switch msg.T {
	case "down":
		s.gestures.HandleDown(p, IsInteractiveTarget(msg.Target))
	case "move":
		s.gestures.HandleMove(p)
	case "up":
		s.gestures.HandleUp(p)
	case "flipNext":
		s.book.FlipNext(flip.CornerBottom)
	case "flipPrev":
		s.book.FlipPrev(flip.CornerBottom)
	case "turnTo":
		if msg.Page != nil {
			_ = s.book.TurnToPage(*msg.Page)
		}
	}
}

// buildState snapshots the book for a state push.
func (s *Server) buildState() StateMessage {
	state := StateMessage{
		T:     "state",
		Page:  s.book.CurrentPage(),
		Pages: s.book.PageCount(),
		State: string(s.book.State()),
	}
	if shape := s.book.FoldShape(); shape != nil {
		fold := &FoldPayload{
			Corner: shape.Corner.String(),
			Angle:  shape.Angle,
			X:      shape.Pos.X,
			Y:      shape.Pos.Y,
		}
		for _, p := range shape.Outline {
			fold.Outline = append(fold.Outline, []float64{p.X, p.Y})
		}
		state.Fold = fold
	}
	return state
}
