package gallery

// Source is an entry's displayable source: either a trusted static asset
// path (preloaded entries) or decoded in-memory bytes (uploads). Exactly
// one of Path and Data is set.
type Source struct {
	Path      string `json:"path,omitempty"`
	Data      []byte `json:"-"`
	MediaType string `json:"media_type"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// IsUpload reports whether the source holds uploaded bytes rather than a
// static asset reference.
func (s Source) IsUpload() bool {
	return s.Path == ""
}

// Entry is one logical image record tracked by the gallery. Entries are
// immutable after creation; they leave the collection only through Remove.
type Entry struct {
	ID             string `json:"id"`
	Source         Source `json:"source"`
	Caption        string `json:"caption,omitempty"`
	OriginFilename string `json:"origin_filename,omitempty"`
}

// Preload describes one trusted static asset inserted at initialization.
type Preload struct {
	Path      string
	MediaType string
	Caption   string
}

// Surface receives tile operations from the tracker. The tracker assumes
// nothing about the surface beyond tiles being identified by entry id.
type Surface interface {
	AppendTile(id string, src Source, caption string)
	RemoveTile(id string)
}

// NopSurface is a Surface that does nothing.
type NopSurface struct{}

func (NopSurface) AppendTile(id string, src Source, caption string) {}
func (NopSurface) RemoveTile(id string)                            {}
