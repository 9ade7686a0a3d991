// Package prediction coordinates scoring, persistence, stratification and
// event publishing for patient assessments.
package prediction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/Skufu/heartguard/internal/events"
	"github.com/Skufu/heartguard/internal/metrics"
	"github.com/Skufu/heartguard/internal/ml"
	"github.com/Skufu/heartguard/internal/store"
	"github.com/Skufu/heartguard/internal/stratification"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Stratification is the care-management view of a patient's latest assessment.
type Stratification struct {
	PatientID     string               `json:"patientId"`
	PredictionID  uuid.UUID            `json:"predictionId"`
	Score         float64              `json:"score"`
	Level         stratification.Level `json:"level"`
	ConditionTags []string             `json:"conditionTags"`
}

type Service struct {
	store     store.Store
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(s store.Store, p events.Publisher, logger *zap.Logger) *Service {
	if p == nil {
		p = events.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: s, publisher: p, logger: logger, now: time.Now}
}

// Assess scores the record, stores the outcome and announces it. An empty
// patientID is replaced with a generated one.
func (s *Service) Assess(ctx context.Context, patientID string, record ml.ClinicalRecord) (*store.Assessment, error) {
	result, err := ml.Predict(record)
	if err != nil {
		var verr *ml.ValidationError
		if errors.As(err, &verr) {
			metrics.RecordValidationFailure(verr.Field)
		}
		return nil, err
	}

	if patientID == "" {
		patientID = uuid.NewString()
	}
	a := &store.Assessment{
		ID:        uuid.New(),
		PatientID: patientID,
		Record:    record,
		Result:    result,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.store.SaveAssessment(ctx, a); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}
	metrics.RecordPrediction(string(result.Label), result.Score)

	event := events.NewPredictionCompleted(a.PatientID, a.ID, result, a.CreatedAt)
	if err := s.publisher.Publish(ctx, event); err != nil {
		metrics.RecordEventPublishFailure()
		s.logger.Warn("publish prediction event failed",
			zap.String("prediction_id", a.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("prediction completed",
		zap.String("prediction_id", a.ID.String()),
		zap.String("patient_id", a.PatientID),
		zap.Float64("score", result.Score),
		zap.String("label", string(result.Label)),
	)
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*store.Assessment, error) {
	return s.store.GetAssessment(ctx, id)
}

// History returns a patient's assessments newest first. Non-positive limits
// fall back to the default; larger ones are capped.
func (s *Service) History(ctx context.Context, patientID string, limit int) ([]store.Assessment, error) {
	list, err := s.store.ListAssessments(ctx, patientID, ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []store.Assessment{}
	}
	return list, nil
}

// SetConditions replaces the patient's condition tags and returns the
// normalized set that was stored.
func (s *Service) SetConditions(ctx context.Context, patientID string, tags []string) ([]string, error) {
	normalized := NormalizeTags(tags)
	if err := s.store.SetConditions(ctx, patientID, normalized); err != nil {
		return nil, fmt.Errorf("save conditions: %w", err)
	}
	return normalized, nil
}

// Stratify places the patient's latest assessment into a care level.
// Returns store.ErrNotFound when the patient has no assessment.
func (s *Service) Stratify(ctx context.Context, patientID string) (*Stratification, error) {
	latest, err := s.store.LatestAssessment(ctx, patientID)
	if err != nil {
		return nil, err
	}
	tags, err := s.store.Conditions(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("load conditions: %w", err)
	}

	score := stratification.ToPercent(latest.Result.Score)
	level := stratification.Stratify(score, latest.Result.TopContributions, tags)
	metrics.RecordStratification(string(level))

	return &Stratification{
		PatientID:     patientID,
		PredictionID:  latest.ID,
		Score:         score,
		Level:         level,
		ConditionTags: tags,
	}, nil
}

// Classify stratifies a caller-supplied 0-100 score without touching storage.
func (s *Service) Classify(score float64, contributions []ml.RiskContribution, conditionTags []string) stratification.Level {
	level := stratification.Stratify(score, contributions, conditionTags)
	metrics.RecordStratification(string(level))
	return level
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}

// NormalizeTags trims, lower-cases and de-duplicates tags, dropping blanks.
func NormalizeTags(tags []string) []string {
	normalized := lo.Map(tags, func(t string, _ int) string {
		return stratification.NormalizeTag(t)
	})
	normalized = lo.Compact(normalized)
	return lo.Uniq(normalized)
}
