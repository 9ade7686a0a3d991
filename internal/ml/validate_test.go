package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *ClinicalRecord)
		wantField string
	}{
		{name: "valid", mutate: func(r *ClinicalRecord) {}},
		{name: "age lower bound", mutate: func(r *ClinicalRecord) { r.Age = 0 }},
		{name: "age upper bound", mutate: func(r *ClinicalRecord) { r.Age = 120 }},
		{name: "age below range", mutate: func(r *ClinicalRecord) { r.Age = -1 }, wantField: "age"},
		{name: "age above range", mutate: func(r *ClinicalRecord) { r.Age = 121 }, wantField: "age"},
		{name: "unknown sex", mutate: func(r *ClinicalRecord) { r.Sex = 2 }, wantField: "sex"},
		{name: "chest pain type", mutate: func(r *ClinicalRecord) { r.ChestPainType = 4 }, wantField: "chestPainType"},
		{name: "blood pressure low", mutate: func(r *ClinicalRecord) { r.RestingBloodPressure = 49 }, wantField: "restingBloodPressure"},
		{name: "blood pressure high", mutate: func(r *ClinicalRecord) { r.RestingBloodPressure = 301 }, wantField: "restingBloodPressure"},
		{name: "cholesterol", mutate: func(r *ClinicalRecord) { r.Cholesterol = 99 }, wantField: "cholesterol"},
		{name: "resting ecg", mutate: func(r *ClinicalRecord) { r.RestingECGResult = 3 }, wantField: "restingEcgResult"},
		{name: "max heart rate", mutate: func(r *ClinicalRecord) { r.MaxHeartRateAchieved = 251 }, wantField: "maxHeartRateAchieved"},
		{name: "st depression negative", mutate: func(r *ClinicalRecord) { r.STDepression = -0.1 }, wantField: "stDepression"},
		{name: "st depression above range", mutate: func(r *ClinicalRecord) { r.STDepression = 10.1 }, wantField: "stDepression"},
		{name: "st depression NaN", mutate: func(r *ClinicalRecord) { r.STDepression = math.NaN() }, wantField: "stDepression"},
		{name: "st slope", mutate: func(r *ClinicalRecord) { r.STSlope = 3 }, wantField: "stSlope"},
		{name: "vessels", mutate: func(r *ClinicalRecord) { r.MajorVesselCount = 4 }, wantField: "majorVesselCount"},
		{name: "thalassemia", mutate: func(r *ClinicalRecord) { r.ThalassemiaType = 3 }, wantField: "thalassemiaType"},
		{name: "height present and valid", mutate: func(r *ClinicalRecord) { r.HeightCm = IntPtr(100) }},
		{name: "height too short", mutate: func(r *ClinicalRecord) { r.HeightCm = IntPtr(99) }, wantField: "heightCm"},
		{name: "height zero is invalid not absent", mutate: func(r *ClinicalRecord) { r.HeightCm = IntPtr(0) }, wantField: "heightCm"},
		{name: "weight too heavy", mutate: func(r *ClinicalRecord) { r.WeightKg = IntPtr(301) }, wantField: "weightKg"},
		{name: "smoking unknown", mutate: func(r *ClinicalRecord) { r.SmokingStatus = SmokingPtr("sometimes") }, wantField: "smokingStatus"},
		{name: "smoking former", mutate: func(r *ClinicalRecord) { r.SmokingStatus = SmokingPtr(SmokingFormer) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := healthyRecord()
			tt.mutate(&r)

			err := Validate(r)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NotEmpty(t, verr.Reason)
		})
	}
}

func TestValidate_FailsFastOnFirstField(t *testing.T) {
	r := healthyRecord()
	r.Cholesterol = 50
	r.Age = -5
	r.ThalassemiaType = 9

	err := Validate(r)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age", verr.Field)
	assert.Equal(t, "must be at least 0", verr.Reason)
	assert.Equal(t, "validation error: age must be at least 0", err.Error())
}

func TestValidate_Reasons(t *testing.T) {
	r := healthyRecord()
	r.SmokingStatus = SmokingPtr("daily")
	var verr *ValidationError
	require.ErrorAs(t, Validate(r), &verr)
	assert.Equal(t, "must be one of [never, former, current]", verr.Reason)

	r = healthyRecord()
	r.STDepression = math.Inf(1)
	require.ErrorAs(t, Validate(r), &verr)
	assert.Equal(t, "must be a finite number", verr.Reason)

	r = healthyRecord()
	r.MaxHeartRateAchieved = 300
	require.ErrorAs(t, Validate(r), &verr)
	assert.Equal(t, "must be at most 250", verr.Reason)
}
