package cache

import (
	"context"
	"time"

	"github.com/Kalashsatyapal/speech-to-text-backend/internal/models"
)

// TranscriptCache memoizes completed transcripts keyed by a content hash of
// the audio bytes. Purely an optimization: misses and errors are equivalent.
type TranscriptCache interface {
	Get(ctx context.Context, key string) (*models.Transcript, bool, error)
	Set(ctx context.Context, key string, t *models.Transcript, ttl time.Duration) error
}
