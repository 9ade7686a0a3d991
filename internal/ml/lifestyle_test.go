package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var generalRecs = []string{RecGeneralExercise, RecGeneralDiet, RecGeneralSleep, RecGeneralStress}

func TestRecommend_ExactSequence(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *ClinicalRecord)
		score  float64
		want   []string
	}{
		{
			name:  "low risk",
			score: 0.39,
			want:  []string{RecMaintain},
		},
		{
			name:  "medium boundary",
			score: 0.40,
			want:  []string{RecPreventiveCheckup, RecPreventiveMonitor},
		},
		{
			name:  "high boundary",
			score: 0.70,
			want:  []string{RecUrgentCardiology, RecUrgentSymptoms},
		},
		{
			name: "all modifiable factors",
			mutate: func(r *ClinicalRecord) {
				r.RestingBloodPressure = 150
				r.Cholesterol = 260
				r.SmokingStatus = SmokingPtr(SmokingCurrent)
				r.HeightCm = IntPtr(170)
				r.WeightKg = IntPtr(100)
			},
			score: 0.8,
			want: []string{
				RecUrgentCardiology, RecUrgentSymptoms,
				RecBPSodium, RecBPDash,
				RecCholFats, RecCholFiber,
				RecSmokingQuit, RecSmokingSecondhand,
				RecWeightStructured, RecWeightCalories,
			},
		},
		{
			name: "former smoker overweight",
			mutate: func(r *ClinicalRecord) {
				r.SmokingStatus = SmokingPtr(SmokingFormer)
				r.HeightCm = IntPtr(180)
				r.WeightKg = IntPtr(85)
			},
			score: 0.1,
			want:  []string{RecMaintain, RecSmokingStayQuit, RecWeightHealthy},
		},
		{
			name: "bp just below threshold adds nothing",
			mutate: func(r *ClinicalRecord) {
				r.RestingBloodPressure = 139
				r.Cholesterol = 239
			},
			score: 0.1,
			want:  []string{RecMaintain},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := healthyRecord()
			if tt.mutate != nil {
				tt.mutate(&r)
			}
			want := append(append([]string{}, tt.want...), generalRecs...)
			assert.Equal(t, want, Recommend(r, tt.score))
		})
	}
}
