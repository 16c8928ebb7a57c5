package storage

import "io"

// File describes one uploaded audio payload materialized to the store.
// Exactly one File exists per request; the pipeline that receives it is the
// sole owner and removes it when the request finishes.
type File struct {
	Path         string
	OriginalName string
	Size         int64
}

// Store is the temporary file store the upload handler writes into and the
// transcription pipeline reads from and deletes.
type Store interface {
	Save(originalName string, r io.Reader) (*File, error)
	Read(path string) ([]byte, error)
	Remove(path string) error
}
