package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kalashsatyapal/speech-to-text-backend/internal/cache"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/models"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/providers/stt"
	mongorepo "github.com/Kalashsatyapal/speech-to-text-backend/internal/repositories/mongo"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/storage"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/utils"
)

// genericFailure is what the caller sees whenever there is no upstream
// payload worth echoing.
const genericFailure = "Failed to transcribe audio"

type TranscriptionService interface {
	// Transcribe runs the full pipeline on a stored upload: read bytes,
	// upload to the provider, submit a job, poll to a terminal state,
	// persist, and return the transcript. The stored file is removed on
	// every path.
	Transcribe(ctx context.Context, file *storage.File) (*models.Transcript, error)
	// Submit uploads the audio and creates a job without waiting for it.
	// The stored file is removed before returning.
	Submit(ctx context.Context, file *storage.File) (string, error)
	// JobStatus performs a single provider status read.
	JobStatus(ctx context.Context, jobID string) (stt.Job, error)
	// ListRecent returns recently persisted transcripts, newest first.
	ListRecent(ctx context.Context, limit int64) ([]models.Transcript, error)
}

type Options struct {
	PollInterval time.Duration // wait between status reads
	PollTimeout  time.Duration // overall poll budget per job
	CacheTTL     time.Duration
}

type transcriptionService struct {
	provider    stt.Client
	store       storage.Store
	transcripts mongorepo.TranscriptRepository
	cache       cache.TranscriptCache // nil when no cache is configured
	log         *logrus.Logger
	opts        Options
}

func NewTranscriptionService(provider stt.Client, store storage.Store, transcripts mongorepo.TranscriptRepository, c cache.TranscriptCache, log *logrus.Logger, opts Options) TranscriptionService {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 5 * time.Second
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 10 * time.Minute
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 24 * time.Hour
	}
	if log == nil {
		log = logrus.New()
	}
	return &transcriptionService{
		provider:    provider,
		store:       store,
		transcripts: transcripts,
		cache:       c,
		log:         log,
		opts:        opts,
	}
}

func (s *transcriptionService) Transcribe(ctx context.Context, file *storage.File) (*models.Transcript, error) {
	const op = "TranscriptionService.Transcribe"

	if file == nil || file.Path == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "No file uploaded", nil)
	}
	defer s.removeFile(file.Path)

	audio, err := s.store.Read(file.Path)
	if err != nil {
		return nil, utils.E(utils.CodeUploadFailed, op, genericFailure, err)
	}

	key := cacheKey(audio)
	if s.cache != nil {
		if cached, hit, err := s.cache.Get(ctx, key); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("transcript cache read failed")
		} else if hit {
			s.log.WithField("key", key).Debug("transcript cache hit")
			return cached, nil
		}
	}

	audioURL, err := s.provider.UploadAudio(ctx, audio)
	if err != nil {
		return nil, utils.E(utils.CodeUploadFailed, op, providerMessage(err), err)
	}
	s.log.WithFields(logrus.Fields{"file": file.Path, "audio_url": audioURL}).Info("audio uploaded to provider")

	jobID, err := s.provider.SubmitJob(ctx, audioURL)
	if err != nil {
		return nil, utils.E(utils.CodeSubmitFailed, op, providerMessage(err), err)
	}
	s.log.WithFields(logrus.Fields{"file": file.Path, "job_id": jobID}).Info("transcription job submitted")

	job, err := s.awaitTerminal(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.Completed() {
		msg := job.Error
		if msg == "" {
			msg = genericFailure
		}
		return nil, utils.E(utils.CodeTranscriptionFailed, op, msg, nil)
	}

	t := &models.Transcript{
		Transcription: job.Text,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.transcripts.Insert(ctx, t); err != nil {
		return nil, utils.E(utils.CodePersistFailed, op, genericFailure, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, t, s.opts.CacheTTL); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("transcript cache write failed")
		}
	}

	s.log.WithFields(logrus.Fields{"job_id": jobID, "chars": len(job.Text)}).Info("transcription completed")
	return t, nil
}

func (s *transcriptionService) Submit(ctx context.Context, file *storage.File) (string, error) {
	const op = "TranscriptionService.Submit"

	if file == nil || file.Path == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "No file uploaded", nil)
	}
	defer s.removeFile(file.Path)

	audio, err := s.store.Read(file.Path)
	if err != nil {
		return "", utils.E(utils.CodeUploadFailed, op, genericFailure, err)
	}

	audioURL, err := s.provider.UploadAudio(ctx, audio)
	if err != nil {
		return "", utils.E(utils.CodeUploadFailed, op, providerMessage(err), err)
	}

	jobID, err := s.provider.SubmitJob(ctx, audioURL)
	if err != nil {
		return "", utils.E(utils.CodeSubmitFailed, op, providerMessage(err), err)
	}

	s.log.WithFields(logrus.Fields{"file": file.Path, "job_id": jobID}).Info("transcription job submitted async")
	return jobID, nil
}

func (s *transcriptionService) JobStatus(ctx context.Context, jobID string) (stt.Job, error) {
	const op = "TranscriptionService.JobStatus"

	if jobID == "" {
		return stt.Job{}, utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}

	job, err := s.provider.JobStatus(ctx, jobID)
	if err != nil {
		var apiErr *stt.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
			return stt.Job{}, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return stt.Job{}, utils.E(utils.CodePollingError, op, providerMessage(err), err)
	}
	return job, nil
}

func (s *transcriptionService) ListRecent(ctx context.Context, limit int64) ([]models.Transcript, error) {
	const op = "TranscriptionService.ListRecent"

	if !s.transcripts.Enabled() {
		return nil, utils.E(utils.CodeUnavailable, op, "persistence is not configured", nil)
	}
	out, err := s.transcripts.ListRecent(ctx, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list transcripts", err)
	}
	return out, nil
}

// awaitTerminal polls the provider at a fixed interval until the job
// reaches a terminal state or the poll budget runs out. A terminal first
// read returns without any wait.
func (s *transcriptionService) awaitTerminal(ctx context.Context, jobID string) (stt.Job, error) {
	const op = "TranscriptionService.awaitTerminal"

	deadline := time.Now().Add(s.opts.PollTimeout)
	for {
		job, err := s.provider.JobStatus(ctx, jobID)
		if err != nil {
			return stt.Job{}, utils.E(utils.CodePollingError, op, providerMessage(err), err)
		}
		if job.Terminal() {
			return job, nil
		}
		s.log.WithFields(logrus.Fields{"job_id": jobID, "status": job.Status}).Debug("job still pending")

		if time.Now().After(deadline) {
			return stt.Job{}, utils.E(utils.CodeTimeout, op, genericFailure, nil)
		}

		timer := time.NewTimer(s.opts.PollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return stt.Job{}, utils.E(utils.CodePollingError, op, genericFailure, ctx.Err())
		case <-timer.C:
		}
	}
}

// removeFile is best-effort cleanup; it never masks the pipeline outcome.
func (s *transcriptionService) removeFile(path string) {
	if err := s.store.Remove(path); err != nil {
		s.log.WithError(err).WithField("file", path).Warn("failed to remove uploaded file")
		return
	}
	s.log.WithField("file", path).Debug("uploaded file removed")
}

func cacheKey(audio []byte) string {
	sum := sha256.Sum256(audio)
	return "transcript:" + hex.EncodeToString(sum[:])
}

func providerMessage(err error) string {
	var apiErr *stt.APIError
	if errors.As(err, &apiErr) && apiErr.Body != "" {
		return apiErr.Body
	}
	return genericFailure
}
