package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/heartguard/internal/ml"
)

const cardiacRecordJSON = `{
	"age": 60,
	"sex": 1,
	"chestPainType": 2,
	"restingBloodPressure": 145,
	"cholesterol": 250,
	"fastingBloodSugarHigh": false,
	"restingEcgResult": 0,
	"maxHeartRateAchieved": 130,
	"exerciseInducedAngina": true,
	"stDepression": 1.5,
	"stSlope": 1,
	"majorVesselCount": 1,
	"thalassemiaType": 1,
	"smokingStatus": "current"
}`

func TestRunPredict(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runPredict(strings.NewReader(cardiacRecordJSON), &out, nil))

	var got predictOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 0.6746, got.Score)
	assert.Equal(t, ml.LabelMedium, got.Label)
	assert.Empty(t, got.StratificationLevel)
	assert.Contains(t, out.String(), "\n  \"score\": 0.6746")
}

func TestRunPredict_WithConditions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runPredict(strings.NewReader(cardiacRecordJSON), &out, []string{"Heart-Disease"}))

	var got predictOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "very-high", string(got.StratificationLevel))
}

func TestRunPredict_InvalidRecord(t *testing.T) {
	body := strings.Replace(cardiacRecordJSON, `"cholesterol": 250`, `"cholesterol": 700`, 1)

	var out bytes.Buffer
	err := runPredict(strings.NewReader(body), &out, nil)

	var verr *ml.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cholesterol", verr.Field)
	assert.Empty(t, out.String())
}

func TestRunPredict_MissingField(t *testing.T) {
	body := `{"restingBloodPressure":120,"cholesterol":180,"maxHeartRateAchieved":150}`

	var out bytes.Buffer
	err := runPredict(strings.NewReader(body), &out, nil)

	var verr *ml.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age", verr.Field)
	assert.Equal(t, "is required", verr.Reason)
	assert.Empty(t, out.String())
}

func TestRunPredict_ExplicitZerosAccepted(t *testing.T) {
	body := strings.Replace(cardiacRecordJSON, `"chestPainType": 2`, `"chestPainType": 0`, 1)

	var out bytes.Buffer
	require.NoError(t, runPredict(strings.NewReader(body), &out, nil))
}

func TestRunPredict_MalformedJSON(t *testing.T) {
	err := runPredict(strings.NewReader(`{"age":`), &bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestPredictCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(cardiacRecordJSON), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"predict", "--file", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"label": "medium"`)
}

func TestMigrateCommand_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	rootCmd.SetArgs([]string{"migrate"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
