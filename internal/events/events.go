// Package events publishes prediction lifecycle events to downstream consumers.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Skufu/heartguard/internal/ml"
)

const TypePredictionCompleted = "prediction.completed"

// Event is the payload emitted after an assessment is stored.
type Event struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	PatientID    string    `json:"patientId"`
	PredictionID uuid.UUID `json:"predictionId"`
	Score        float64   `json:"score"`
	Label        ml.Label  `json:"label"`
	ModelVersion string    `json:"modelVersion"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NewPredictionCompleted builds the event for a finished prediction.
func NewPredictionCompleted(patientID string, predictionID uuid.UUID, result ml.PredictionResult, at time.Time) Event {
	return Event{
		ID:           uuid.New(),
		Type:         TypePredictionCompleted,
		PatientID:    patientID,
		PredictionID: predictionID,
		Score:        result.Score,
		Label:        result.Label,
		ModelVersion: result.ModelVersion,
		OccurredAt:   at.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event. Used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
