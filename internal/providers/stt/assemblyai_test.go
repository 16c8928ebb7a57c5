package stt

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *AssemblyAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewAssemblyAI("test-key")
	c.BaseURL = srv.URL
	return c
}

func TestUploadAudio(t *testing.T) {
	audio := []byte("RIFF....WAVEdata")

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/upload", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, audio, body)

		_ = json.NewEncoder(w).Encode(map[string]string{"upload_url": "https://cdn.example.com/upload/u1"})
	}))

	url, err := c.UploadAudio(context.Background(), audio)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/upload/u1", url)
}

func TestSubmitJob(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/transcript", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://cdn.example.com/upload/u1", req["audio_url"])

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "j1", "status": "queued"})
	}))

	id, err := c.SubmitJob(context.Background(), "https://cdn.example.com/upload/u1")
	require.NoError(t, err)
	assert.Equal(t, "j1", id)
}

func TestJobStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/transcript/j1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":     "j1",
			"status": "completed",
			"text":   "hello world",
		})
	}))

	job, err := c.JobStatus(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, Job{ID: "j1", Status: StatusCompleted, Text: "hello world"}, job)
	assert.True(t, job.Terminal())
	assert.True(t, job.Completed())
}

func TestJobStatusError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":     "j1",
			"status": "error",
			"error":  "audio duration too short",
		})
	}))

	job, err := c.JobStatus(context.Background(), "j1")
	require.NoError(t, err)
	assert.True(t, job.Terminal())
	assert.False(t, job.Completed())
	assert.Equal(t, "audio duration too short", job.Error)
}

func TestNonSuccessStatusBecomesAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid api key"}`))
	}))

	_, err := c.UploadAudio(context.Background(), []byte("audio"))
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, `{"error":"invalid api key"}`, apiErr.Body)
}

func TestPendingStatusesAreNotTerminal(t *testing.T) {
	for _, status := range []string{StatusQueued, StatusProcessing} {
		assert.False(t, Job{Status: status}.Terminal(), status)
	}
}
