package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/heartguard/internal/ml"
)

func newAssessment(patientID string, at time.Time, score float64) *Assessment {
	return &Assessment{
		ID:        uuid.New(),
		PatientID: patientID,
		Result:    ml.PredictionResult{Score: score, Label: ml.LabelFor(score), ModelVersion: ml.ModelVersion},
		CreatedAt: at,
	}
}

func TestMemory_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	a := newAssessment("patient-1", time.Now(), 0.42)
	require.NoError(t, m.SaveAssessment(ctx, a))

	got, err := m.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.PatientID, got.PatientID)
	assert.Equal(t, ml.LabelMedium, got.Result.Label)

	_, err = m.GetAssessment(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	older := newAssessment("patient-1", base, 0.2)
	newer := newAssessment("patient-1", base.Add(time.Hour), 0.8)
	other := newAssessment("patient-2", base.Add(2*time.Hour), 0.5)
	for _, a := range []*Assessment{older, newer, other} {
		require.NoError(t, m.SaveAssessment(ctx, a))
	}

	list, err := m.ListAssessments(ctx, "patient-1", 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	list, err = m.ListAssessments(ctx, "patient-1", 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	latest, err := m.LatestAssessment(ctx, "patient-1")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)

	_, err = m.LatestAssessment(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Conditions(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	tags, err := m.Conditions(ctx, "patient-1")
	require.NoError(t, err)
	assert.Empty(t, tags)

	in := []string{"diabetes-type-2"}
	require.NoError(t, m.SetConditions(ctx, "patient-1", in))
	in[0] = "mutated"

	tags, err = m.Conditions(ctx, "patient-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"diabetes-type-2"}, tags)
}

func TestMigrationFilesOrdered(t *testing.T) {
	files, err := MigrationFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_assessments.sql", "002_patient_conditions.sql"}, files)
}
