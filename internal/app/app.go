// Package app wires settings, the flip engine, gestures, and HTTP together.
package app

import (
	"path/filepath"

	"github.com/pageturn/pageturn/internal/bookmark"
	"github.com/pageturn/pageturn/internal/config"
	"github.com/pageturn/pageturn/internal/control"
	"github.com/pageturn/pageturn/internal/flip"
	"github.com/pageturn/pageturn/internal/gesture"
)

// App coordinates the HTTP API, the control websocket, and the book state.
type App struct {
	cfg          config.Settings
	book         *flip.Book
	gestures     *gesture.Controller
	control      *control.Server
	bookmarkPath string
}

// New creates an application with its dependencies wired and the last-read
// page restored from the bookmark file.
func New(cfg config.Settings) (*App, error) {
	book := flip.NewBook(bookRect(cfg), cfg.PageCount)
	bookmarkPath := filepath.Join(cfg.DataDir, "bookmark.json")

	mark, err := bookmark.Load(bookmarkPath)
	if err != nil {
		return nil, err
	}
	if mark.Page > 0 && mark.Page < cfg.PageCount {
		if err := book.TurnToPage(mark.Page); err != nil {
			return nil, err
		}
	}

	a := &App{
		cfg:          cfg,
		book:         book,
		gestures:     gesture.NewController(cfg, book),
		bookmarkPath: bookmarkPath,
	}
	a.control = control.NewServer(book, a.gestures)
	return a, nil
}

// Book returns the flip engine.
func (a *App) Book() *flip.Book {
	return a.book
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}

// Stop tears down the control connection and saves the bookmark.
func (a *App) Stop() error {
	a.control.Close()
	return bookmark.Save(a.bookmarkPath, bookmark.Bookmark{Page: a.book.CurrentPage()})
}

// bookRect derives the widget bounding box from the settings. A two-page
// spread splits the width between the pages; single-page mode uses all of it.
func bookRect(cfg config.Settings) flip.PageRect {
	pageWidth := cfg.Width / 2
	if cfg.SinglePage {
		pageWidth = cfg.Width
	}
	return flip.PageRect{
		Width:     cfg.Width,
		Height:    cfg.Height,
		PageWidth: pageWidth,
	}
}
