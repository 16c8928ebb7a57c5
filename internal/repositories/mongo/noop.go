package mongo

import (
	"context"

	"github.com/Kalashsatyapal/speech-to-text-backend/internal/models"
)

// noopRepo serves the persistence-less configuration: inserts succeed
// without storing anything, so the pipeline has one code path either way.
type noopRepo struct{}

func NewNoopTranscriptRepo() TranscriptRepository { return noopRepo{} }

func (noopRepo) Insert(ctx context.Context, t *models.Transcript) error { return nil }

func (noopRepo) ListRecent(ctx context.Context, limit int64) ([]models.Transcript, error) {
	return nil, nil
}

func (noopRepo) Enabled() bool { return false }
