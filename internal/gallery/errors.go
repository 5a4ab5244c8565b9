package gallery

import "errors"

// Rejection reasons for candidates that do not become entries. Every
// failure is local to its candidate: it is reported and discarded, never
// retried, and never aborts the rest of the batch.
var (
	ErrInvalidType   = errors.New("declared content type is not an image")
	ErrTooLarge      = errors.New("file exceeds the size ceiling")
	ErrDecodeFailure = errors.New("file could not be decoded as an image")
)

// Rejection records why one candidate was not ingested.
type Rejection struct {
	Filename string `json:"filename"`
	Reason   error  `json:"-"`
	Detail   string `json:"error"`
}

// BatchResult summarises one Ingest call.
type BatchResult struct {
	Accepted   int         `json:"count"`
	Rejections []Rejection `json:"errors,omitempty"`
}
