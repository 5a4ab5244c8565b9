package web

import (
	_ "embed"
	"html/template"
	"log"
	"net/http"

	"github.com/thinkkisan/think-kisan-blog/internal/blog"
	"github.com/thinkkisan/think-kisan-blog/internal/config"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// indexData holds the data passed to the page template.
type indexData struct {
	Title        string
	HighContrast bool
	Posts        []blog.Post
	Tiles        []tileView
	MaxUploadMiB int64
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Title:        h.cfg.Title,
		HighContrast: h.cfg.Theme == config.ThemeHighContrast,
		Posts:        h.posts,
		Tiles:        h.tiles(),
		MaxUploadMiB: h.cfg.MaxUploadMiB,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		log.Printf("web: rendering index: %v", err)
	}
}
