package stt

import (
	"context"
	"fmt"
)

// Job statuses as reported by the provider. queued and processing are
// in-progress; completed and error are terminal.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// Job is one remote transcription task. Only status reads mutate it; the
// pipeline never writes job state back to the provider.
type Job struct {
	ID     string
	Status string
	Text   string
	Error  string
}

func (j Job) Terminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusError
}

func (j Job) Completed() bool { return j.Status == StatusCompleted }

// Client mediates all interaction with the remote transcription service.
// Every method issues exactly one outbound call; retry policy belongs to
// the caller.
type Client interface {
	// UploadAudio sends raw audio bytes and returns the provider-hosted URL.
	UploadAudio(ctx context.Context, audio []byte) (string, error)
	// SubmitJob requests transcription of a previously uploaded resource.
	SubmitJob(ctx context.Context, audioURL string) (string, error)
	// JobStatus performs a single synchronous read of current job state.
	JobStatus(ctx context.Context, jobID string) (Job, error)
}

// APIError is a non-success HTTP response from the provider. Body carries
// the upstream payload so handlers can echo it to the caller.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.StatusCode, e.Body)
}
