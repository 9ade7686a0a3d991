package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store used when no database is configured.
type Memory struct {
	mu          sync.RWMutex
	assessments map[uuid.UUID]Assessment
	conditions  map[string][]string
}

func NewMemory() *Memory {
	return &Memory{
		assessments: make(map[uuid.UUID]Assessment),
		conditions:  make(map[string][]string),
	}
}

func (m *Memory) SaveAssessment(_ context.Context, a *Assessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assessments[a.ID] = *a
	return nil
}

func (m *Memory) GetAssessment(_ context.Context, id uuid.UUID) (*Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assessments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *Memory) LatestAssessment(ctx context.Context, patientID string) (*Assessment, error) {
	list, err := m.ListAssessments(ctx, patientID, 1)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNotFound
	}
	return &list[0], nil
}

func (m *Memory) ListAssessments(_ context.Context, patientID string, limit int) ([]Assessment, error) {
	m.mu.RLock()
	var out []Assessment
	for _, a := range m.assessments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() > out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) SetConditions(_ context.Context, patientID string, tags []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conditions[patientID] = append([]string(nil), tags...)
	return nil
}

func (m *Memory) Conditions(_ context.Context, patientID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string{}, m.conditions[patientID]...), nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() {}
