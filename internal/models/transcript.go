package models

import "time"

// Transcript is the persisted form of a completed transcription. Written at
// most once per request and never updated afterwards.
type Transcript struct {
	ID            string    `bson:"_id,omitempty" json:"id,omitempty"`
	Transcription string    `bson:"transcription" json:"transcription"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
