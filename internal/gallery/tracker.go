// Package gallery maintains the authoritative in-memory collection of
// image entries and drives a rendering surface to match it: one tile per
// entry, in insertion order, preloads before uploads.
package gallery

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thinkkisan/think-kisan-blog/internal/ingest"
	"github.com/thinkkisan/think-kisan-blog/internal/notify"
)

// DefaultMaxUploadBytes is the upload size ceiling (5 MiB).
const DefaultMaxUploadBytes int64 = 5 << 20

// DefaultRemoveDelay is the visual transition window between a removal
// request and the entry actually leaving the collection.
const DefaultRemoveDelay = 300 * time.Millisecond

// Options configures a Tracker. Zero-value fields fall back to defaults:
// a UUID id source, the 5 MiB ceiling, the standard removal delay, and
// the ingest package's decoder. A negative RemoveDelay removes entries
// synchronously, with no transition window.
type Options struct {
	Surface        Surface
	Notifier       notify.Notifier
	NewID          func() string
	MaxUploadBytes int64
	RemoveDelay    time.Duration
	Decode         func(ingest.Candidate) (*ingest.Decoded, error)
}

// Tracker owns the entry collection. All collection access goes through
// its mutex; per-candidate decodes run outside the lock and only take it
// to append their own entry.
type Tracker struct {
	mu      sync.Mutex
	entries []Entry
	byID    map[string]int

	surface  Surface
	notifier notify.Notifier
	newID    func() string
	maxBytes int64
	delay    time.Duration
	decode   func(ingest.Candidate) (*ingest.Decoded, error)
}

// New constructs a Tracker. Construct it once and share the reference;
// there is no other holder of gallery state.
func New(opts Options) *Tracker {
	t := &Tracker{
		byID:     make(map[string]int),
		surface:  opts.Surface,
		notifier: opts.Notifier,
		newID:    opts.NewID,
		maxBytes: opts.MaxUploadBytes,
		delay:    opts.RemoveDelay,
		decode:   opts.Decode,
	}
	if t.surface == nil {
		t.surface = NopSurface{}
	}
	if t.notifier == nil {
		t.notifier = notify.LogNotifier{}
	}
	if t.newID == nil {
		t.newID = func() string { return uuid.New().String() }
	}
	if t.maxBytes == 0 {
		t.maxBytes = DefaultMaxUploadBytes
	}
	if t.delay == 0 {
		t.delay = DefaultRemoveDelay
	}
	if t.decode == nil {
		t.decode = ingest.Decode
	}
	return t
}

// Initialize appends the fixed preload set in order and renders one tile
// per entry. Preload sources are trusted static assets; no validation.
//
// There is no re-entry guard: a second call appends the same preloads
// again under fresh ids.
func (t *Tracker) Initialize(preloads []Preload) {
	for _, p := range preloads {
		mediaType := p.MediaType
		if mediaType == "" {
			mediaType = ingest.TypeByExtension(p.Path)
		}
		entry := Entry{
			ID:      t.newID(),
			Source:  Source{Path: p.Path, MediaType: mediaType},
			Caption: p.Caption,
		}
		t.append(entry)
	}
}

// Ingest validates and decodes each candidate independently. Rejected
// candidates are reported by name and skipped; the batch continues.
// Accepted candidates decode concurrently with no ordering barrier, so
// entries may appear in a different order than submitted. Ingest returns
// once every candidate has been resolved.
func (t *Tracker) Ingest(candidates []ingest.Candidate) BatchResult {
	var (
		resMu sync.Mutex
		res   BatchResult
		wg    sync.WaitGroup
	)

	reject := func(name string, reason error, detail string) {
		resMu.Lock()
		res.Rejections = append(res.Rejections, Rejection{Filename: name, Reason: reason, Detail: detail})
		resMu.Unlock()
		t.notifier.Notify(fmt.Sprintf("%s: %s", name, detail), notify.SeverityError)
	}

	for _, c := range candidates {
		if !ingest.IsImageType(c.ContentType) {
			reject(c.Name, ErrInvalidType, fmt.Sprintf("not an image (%s)", c.ContentType))
			continue
		}
		if c.Size > t.maxBytes {
			reject(c.Name, ErrTooLarge, fmt.Sprintf("exceeds the %d MiB limit", t.maxBytes>>20))
			continue
		}

		wg.Add(1)
		go func(c ingest.Candidate) {
			defer wg.Done()

			decoded, err := t.decode(c)
			if err != nil {
				reject(c.Name, ErrDecodeFailure, "could not be decoded as an image")
				return
			}

			entry := Entry{
				ID: t.newID(),
				Source: Source{
					Data:      decoded.Data,
					MediaType: decoded.MediaType,
					Width:     decoded.Width,
					Height:    decoded.Height,
				},
				OriginFilename: c.Name,
			}
			t.append(entry)

			resMu.Lock()
			res.Accepted++
			resMu.Unlock()
			t.notifier.Notify(fmt.Sprintf("%s uploaded", c.Name), notify.SeveritySuccess)
		}(c)
	}

	wg.Wait()
	return res
}

// Remove takes the entry out of the collection and its tile off the
// surface after the transition delay. During the delay the entry is
// logically still present. Removing an unknown id is a no-op.
func (t *Tracker) Remove(id string) {
	t.mu.Lock()
	_, ok := t.byID[id]
	t.mu.Unlock()
	if !ok {
		return
	}

	if t.delay < 0 {
		t.dropEntry(id)
		return
	}
	time.AfterFunc(t.delay, func() { t.dropEntry(id) })
}

// View resolves an entry's displayable source for the overlay viewer. It
// has no effect on the collection.
func (t *Tracker) View(id string) (Source, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx, ok := t.byID[id]
	if !ok {
		return Source{}, false
	}
	return t.entries[idx].Source, true
}

// Entries returns a snapshot of the collection in insertion order.
func (t *Tracker) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the current collection size.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Tracker) append(e Entry) {
	t.mu.Lock()
	t.byID[e.ID] = len(t.entries)
	t.entries = append(t.entries, e)
	t.mu.Unlock()

	t.surface.AppendTile(e.ID, e.Source, e.Caption)
}

func (t *Tracker) dropEntry(id string) {
	t.mu.Lock()
	idx, ok := t.byID[id]
	if !ok {
		t.mu.Unlock()
		return
	}
	t.entries = append(t.entries[:idx], t.entries[idx+1:]...)
	delete(t.byID, id)
	for i := idx; i < len(t.entries); i++ {
		t.byID[t.entries[i].ID] = i
	}
	t.mu.Unlock()

	t.surface.RemoveTile(id)
}
