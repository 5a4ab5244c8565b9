// Package ingest is the file ingestion boundary: it turns candidate files
// into displayable in-memory image representations.
package ingest

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// Candidate is one file offered for ingestion. Name, declared content type
// and size are known before any bytes are read; Open supplies the bytes.
type Candidate struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Decoded is the displayable representation of an accepted candidate.
type Decoded struct {
	Data      []byte
	MediaType string
	Width     int
	Height    int
}

// IsImageType reports whether the declared content type indicates an image.
func IsImageType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// Decode reads the candidate's bytes and decodes them as an image. The
// media type is sniffed from the content rather than trusted from the
// declaration. Each call is independent; failures affect only this
// candidate.
func Decode(c Candidate) (*Decoded, error) {
	if c.Open == nil {
		return nil, fmt.Errorf("decoding %s: no byte source", c.Name)
	}

	rc, err := c.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", c.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.Name, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.Name, err)
	}

	return &Decoded{
		Data:      data,
		MediaType: http.DetectContentType(data),
		Width:     cfg.Width,
		Height:    cfg.Height,
	}, nil
}

// TypeByExtension maps a file path to an image media type by extension,
// defaulting to application/octet-stream for unknown extensions.
func TypeByExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// ImageExtensions lists the file extensions treated as trusted static
// images when scanning the preload directory.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// HasImageExtension reports whether path ends in a known image extension.
func HasImageExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
