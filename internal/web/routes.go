// Package web is the HTTP rendering surface: the blog page with its
// gallery grid, the image API, and the websocket the page listens on.
package web

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thinkkisan/think-kisan-blog/internal/blog"
	"github.com/thinkkisan/think-kisan-blog/internal/config"
	"github.com/thinkkisan/think-kisan-blog/internal/gallery"
	"github.com/thinkkisan/think-kisan-blog/internal/ingest"
	"github.com/thinkkisan/think-kisan-blog/internal/notify"
)

// maxMultipartMemory bounds how much of a multipart body is held in memory
// while parsing; larger parts spill to temp files.
const maxMultipartMemory = 32 << 20

// Handler serves the blog page and the gallery API.
type Handler struct {
	cfg     *config.Config
	tracker *gallery.Tracker
	hub     *notify.Hub
	posts   []blog.Post
}

// NewHandler creates a Handler.
func NewHandler(cfg *config.Config, tracker *gallery.Tracker, hub *notify.Hub, posts []blog.Post) *Handler {
	return &Handler{cfg: cfg, tracker: tracker, hub: hub, posts: posts}
}

// RegisterRoutes mounts all web and API routes onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/static/theme.css", h.handleThemeCSS)
	r.Get("/ws", h.hub.HandleWS)

	r.Route("/api/images", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleUpload)
		r.Get("/{id}/raw", h.handleRaw)
		r.Delete("/{id}", h.handleDelete)
	})
}

// tileView is the JSON shape of one entry in listings and in the initial
// server-rendered grid.
type tileView struct {
	ID             string `json:"id"`
	URL            string `json:"url"`
	Caption        string `json:"caption,omitempty"`
	OriginFilename string `json:"origin_filename,omitempty"`
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
	Preloaded      bool   `json:"preloaded"`
}

func (h *Handler) tiles() []tileView {
	entries := h.tracker.Entries()
	views := make([]tileView, 0, len(entries))
	for _, e := range entries {
		views = append(views, tileView{
			ID:             e.ID,
			URL:            "/api/images/" + e.ID + "/raw",
			Caption:        e.Caption,
			OriginFilename: e.OriginFilename,
			Width:          e.Source.Width,
			Height:         e.Source.Height,
			Preloaded:      !e.Source.IsUpload(),
		})
	}
	return views
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tiles())
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		http.Error(w, "no files provided", http.StatusBadRequest)
		return
	}

	candidates := make([]ingest.Candidate, 0, len(files))
	for _, fh := range files {
		fh := fh
		candidates = append(candidates, ingest.Candidate{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open:        func() (io.ReadCloser, error) { return fh.Open() },
		})
	}

	res := h.tracker.Ingest(candidates)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleRaw(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	src, ok := h.tracker.View(id)
	if !ok {
		http.Error(w, "image not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	if src.IsUpload() {
		w.Header().Set("Content-Type", src.MediaType)
		w.Write(src.Data)
		return
	}
	http.ServeFile(w, r, src.Path)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	// Removal is idempotent-safe: deleting an unknown id is a no-op.
	h.tracker.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding response", http.StatusInternalServerError)
	}
}
