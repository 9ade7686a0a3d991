package ml

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardiacRecordJSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(cardiacRecord())
	require.NoError(t, err)
	return string(data)
}

func TestDecodeRecord(t *testing.T) {
	got, err := DecodeRecord([]byte(cardiacRecordJSON(t)))
	require.NoError(t, err)
	assert.Equal(t, cardiacRecord(), got)
}

func TestDecodeRecord_MissingRequiredField(t *testing.T) {
	_, err := DecodeRecord([]byte(`{"restingBloodPressure":120,"cholesterol":180,"maxHeartRateAchieved":150}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age", verr.Field)
	assert.Equal(t, "is required", verr.Reason)
}

func TestDecodeRecord_ReportsFirstMissingFieldInOrder(t *testing.T) {
	body := strings.Replace(cardiacRecordJSON(t), `"stSlope":1,`, "", 1)
	body = strings.Replace(body, `"thalassemiaType":1,`, "", 1)

	_, err := DecodeRecord([]byte(body))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "stSlope", verr.Field)
}

func TestDecodeRecord_ExplicitZeroIsPresent(t *testing.T) {
	r := healthyRecord()
	data, err := json.Marshal(r)
	require.NoError(t, err)

	got, err := DecodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ChestPainType)
	assert.False(t, got.ExerciseInducedAngina)
	assert.Equal(t, 0.0, got.STDepression)
}

func TestDecodeRecord_OptionalFieldsMayBeAbsent(t *testing.T) {
	got, err := DecodeRecord([]byte(cardiacRecordJSON(t)))
	require.NoError(t, err)
	assert.Nil(t, got.HeightCm)
	assert.Nil(t, got.WeightKg)
}

func TestDecodeRecord_TypeError(t *testing.T) {
	body := strings.Replace(cardiacRecordJSON(t), `"age":60`, `"age":"sixty"`, 1)

	_, err := DecodeRecord([]byte(body))
	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "age", typeErr.Field)
}

func TestNewValidatorRegistersRules(t *testing.T) {
	assert.NotPanics(t, func() { newValidator() })
}
