package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Kalashsatyapal/speech-to-text-backend/internal/models"
)

// TranscriptRepository is the persistence sink for completed transcripts.
// Inserts are independent per request; no read-modify-write anywhere.
type TranscriptRepository interface {
	Insert(ctx context.Context, t *models.Transcript) error
	ListRecent(ctx context.Context, limit int64) ([]models.Transcript, error)
	// Enabled reports whether writes actually reach durable storage.
	Enabled() bool
}

type transcriptRepo struct {
	col *mongo.Collection
}

func NewTranscriptRepo(db *mongo.Database) TranscriptRepository {
	return &transcriptRepo{col: db.Collection("transcripts")}
}

func (r *transcriptRepo) Insert(ctx context.Context, t *models.Transcript) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, bson.M{
		"transcription": t.Transcription,
		"created_at":    t.CreatedAt,
	})
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid.Hex()
	}
	return nil
}

func (r *transcriptRepo) ListRecent(ctx context.Context, limit int64) ([]models.Transcript, error) {
	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Transcript
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *transcriptRepo) Enabled() bool { return true }
