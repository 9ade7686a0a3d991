package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/heartguard/internal/ml"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublish(t *testing.T) {
	w := &fakeWriter{}
	k := &Kafka{writer: w, timeout: time.Second}

	predictionID := uuid.New()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := NewPredictionCompleted("patient-7", predictionID, ml.PredictionResult{
		Score: 0.6746, Label: ml.LabelMedium, ModelVersion: ml.ModelVersion,
	}, at)

	require.NoError(t, k.Publish(context.Background(), e))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "patient-7", string(msg.Key))
	assert.Equal(t, TypePredictionCompleted, string(msg.Headers[0].Value))

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, predictionID, decoded.PredictionID)
	assert.Equal(t, ml.LabelMedium, decoded.Label)
	assert.Equal(t, 0.6746, decoded.Score)
	assert.True(t, at.Equal(decoded.OccurredAt))

	require.NoError(t, k.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublishError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}
	k := &Kafka{writer: w, timeout: time.Second}

	err := k.Publish(context.Background(), Event{ID: uuid.New(), PatientID: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}
