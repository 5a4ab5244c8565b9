package ingest

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"
)

func pngCandidate(t *testing.T, name string) Candidate {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 3))); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	data := buf.Bytes()
	return Candidate{
		Name:        name,
		ContentType: "image/png",
		Size:        int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func TestIsImageType(t *testing.T) {
	cases := []struct {
		contentType string
		want        bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"image/webp", true},
		{"text/plain", false},
		{"application/pdf", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsImageType(c.contentType); got != c.want {
			t.Errorf("IsImageType(%q) = %v, want %v", c.contentType, got, c.want)
		}
	}
}

func TestDecode(t *testing.T) {
	decoded, err := Decode(pngCandidate(t, "photo.png"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Width != 4 || decoded.Height != 3 {
		t.Errorf("dimensions = %dx%d, want 4x3", decoded.Width, decoded.Height)
	}
	if decoded.MediaType != "image/png" {
		t.Errorf("media type = %q, want image/png", decoded.MediaType)
	}
	if len(decoded.Data) == 0 {
		t.Error("expected original bytes to be retained")
	}
}

func TestDecodeFailure(t *testing.T) {
	c := Candidate{
		Name:        "broken.png",
		ContentType: "image/png",
		Size:        12,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("not an image")), nil
		},
	}
	if _, err := Decode(c); err == nil {
		t.Fatal("expected decode error for non-image bytes")
	}
}

func TestDecodeNoByteSource(t *testing.T) {
	if _, err := Decode(Candidate{Name: "empty"}); err == nil {
		t.Fatal("expected error for candidate without byte source")
	}
}

func TestTypeByExtension(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"farm.jpg", "image/jpeg"},
		{"harvest.JPEG", "image/jpeg"},
		{"soil.png", "image/png"},
		{"crop.gif", "image/gif"},
		{"seed.webp", "image/webp"},
		{"readme.txt", "application/octet-stream"},
	}
	for _, c := range cases {
		if got := TypeByExtension(c.path); got != c.want {
			t.Errorf("TypeByExtension(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestHasImageExtension(t *testing.T) {
	if !HasImageExtension("photos/a.PNG") {
		t.Error("expected .PNG to be an image extension")
	}
	if HasImageExtension("photos/a.txt") {
		t.Error("expected .txt not to be an image extension")
	}
}
