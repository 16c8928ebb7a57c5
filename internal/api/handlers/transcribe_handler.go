package handlers

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kalashsatyapal/speech-to-text-backend/internal/services"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/storage"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/utils"
)

type TranscribeHandler struct {
	svc   services.TranscriptionService
	store storage.Store
}

func NewTranscribeHandler(svc services.TranscriptionService, store storage.Store) *TranscribeHandler {
	return &TranscribeHandler{svc: svc, store: store}
}

type TranscribeResponse struct {
	Transcription string `json:"transcription"`
}

type SubmitResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type JobStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text,omitempty"`
}

// Transcribe is the synchronous endpoint: it holds the request open for the
// whole upload/submit/poll pipeline. The pipeline runs on a context detached
// from the connection so a dropped caller does not abort persistence or
// cleanup.
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	file, ok := h.saveUpload(c)
	if !ok {
		return
	}

	t, err := h.svc.Transcribe(context.WithoutCancel(c.Request.Context()), file)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TranscribeResponse{Transcription: t.Transcription})
}

// Submit creates a job and returns its id without waiting for completion.
func (h *TranscribeHandler) Submit(c *gin.Context) {
	file, ok := h.saveUpload(c)
	if !ok {
		return
	}

	id, err := h.svc.Submit(c.Request.Context(), file)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, SubmitResponse{ID: id, Status: "queued"})
}

func (h *TranscribeHandler) Status(c *gin.Context) {
	job, err := h.svc.JobStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := JobStatusResponse{ID: job.ID, Status: job.Status}
	if job.Completed() {
		resp.Text = job.Text
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TranscribeHandler) List(c *gin.Context) {
	out, err := h.svc.ListRecent(c.Request.Context(), 20)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcripts": out})
}

// saveUpload materializes the multipart "audio" field into the temp store.
// Exactly one stored file per request; the service owns its removal.
func (h *TranscribeHandler) saveUpload(c *gin.Context) (*storage.File, bool) {
	fh, err := c.FormFile("audio")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "TranscribeHandler", "No file uploaded", err))
		return nil, false
	}

	file, err := h.saveFormFile(fh)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "TranscribeHandler", "Failed to transcribe audio", err))
		return nil, false
	}
	return file, true
}

func (h *TranscribeHandler) saveFormFile(fh *multipart.FileHeader) (*storage.File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return h.store.Save(fh.Filename, src)
}
