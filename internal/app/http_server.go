package app

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pageturn/pageturn/internal/flip"
	"github.com/pageturn/pageturn/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}

	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/flip", a.handleFlip)
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
	mux.Handle("/", staticFileServer(staticDir))
}

type stateResponse struct {
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
	State string `json:"state"`
}

type flipRequest struct {
	Dir    string `json:"dir"`
	Corner string `json:"corner,omitempty"`
}

// handleState returns the current book state.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	resp := stateResponse{
		Page:  a.book.CurrentPage(),
		Pages: a.book.PageCount(),
		State: string(a.book.State()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// handleFlip performs programmatic navigation.
func (a *App) handleFlip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req flipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	corner := flip.CornerBottom
	if req.Corner == "top" {
		corner = flip.CornerTop
	}
	switch req.Dir {
	case "next":
		a.book.FlipNext(corner)
	case "prev":
		a.book.FlipPrev(corner)
	default:
		http.Error(w, "dir must be next or prev", http.StatusBadRequest)
		return
	}
	a.handleState(w, r)
}

// staticFileServer returns a handler for static assets, preferring disk then
// embed.
func staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
