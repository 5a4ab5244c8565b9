package web

import (
	"github.com/thinkkisan/think-kisan-blog/internal/gallery"
	"github.com/thinkkisan/think-kisan-blog/internal/notify"
)

// tileFrame is the outgoing WebSocket message format for tile operations.
type tileFrame struct {
	Type    string `json:"type"` // "tile_append" or "tile_remove"
	ID      string `json:"id"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// TileSurface implements gallery.Surface by pushing tile events to every
// connected page through the notification hub. The grid in the browser is
// driven entirely by these frames.
type TileSurface struct {
	hub *notify.Hub
}

// NewTileSurface creates a TileSurface backed by the given hub.
func NewTileSurface(hub *notify.Hub) *TileSurface {
	return &TileSurface{hub: hub}
}

// AppendTile implements gallery.Surface.
func (s *TileSurface) AppendTile(id string, src gallery.Source, caption string) {
	s.hub.Broadcast(tileFrame{
		Type:    "tile_append",
		ID:      id,
		URL:     "/api/images/" + id + "/raw",
		Caption: caption,
		Width:   src.Width,
		Height:  src.Height,
	})
}

// RemoveTile implements gallery.Surface.
func (s *TileSurface) RemoveTile(id string) {
	s.hub.Broadcast(tileFrame{Type: "tile_remove", ID: id})
}
