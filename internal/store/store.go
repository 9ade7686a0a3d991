// Package store persists clinical records, their predictions and patient
// condition tags.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Skufu/heartguard/internal/ml"
)

var ErrNotFound = errors.New("not found")

// Assessment is one clinical record submission and the prediction it produced.
type Assessment struct {
	ID        uuid.UUID           `json:"id"`
	PatientID string              `json:"patientId"`
	Record    ml.ClinicalRecord   `json:"record"`
	Result    ml.PredictionResult `json:"result"`
	CreatedAt time.Time           `json:"createdAt"`
}

type Store interface {
	SaveAssessment(ctx context.Context, a *Assessment) error
	GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error)
	// LatestAssessment returns the newest assessment for a patient.
	LatestAssessment(ctx context.Context, patientID string) (*Assessment, error)
	// ListAssessments returns up to limit assessments, newest first.
	ListAssessments(ctx context.Context, patientID string, limit int) ([]Assessment, error)
	// SetConditions replaces the patient's condition tags.
	SetConditions(ctx context.Context, patientID string, tags []string) error
	Conditions(ctx context.Context, patientID string) ([]string, error)
	Ping(ctx context.Context) error
	Close()
}
