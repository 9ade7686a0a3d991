package ml

import (
	"fmt"
	"math"
	"sort"
)

// MaxContributions caps the explanation list.
const MaxContributions = 5

// Factor names used in explanations. They match the ClinicalRecord JSON names
// so callers can link an explanation back to the input field.
const (
	FactorAge           = "age"
	FactorSex           = "sex"
	FactorBloodPressure = "restingBloodPressure"
	FactorCholesterol   = "cholesterol"
	FactorAngina        = "exerciseInducedAngina"
	FactorChestPain     = "chestPainType"
	FactorHeartRate     = "maxHeartRateAchieved"
	FactorSTDepression  = "stDepression"
	FactorSTSlope       = "stSlope"
	FactorVessels       = "majorVesselCount"
	FactorThalassemia   = "thalassemiaType"
	FactorBMI           = "bmi"
	FactorSmoking       = "smokingStatus"
)

var (
	chestPainNames   = [...]string{"none", "typical angina", "atypical angina", "non-anginal pain"}
	stSlopeNames     = [...]string{"upsloping", "flat", "downsloping"}
	thalassemiaNames = [...]string{"normal", "fixed defect", "reversible defect"}
)

// Explain returns the weighted contribution of every applicable factor,
// ordered by absolute contribution descending and truncated to
// MaxContributions.
//
// Candidates are appended in a fixed order (age, sex, blood pressure,
// cholesterol, angina, chest pain, heart rate, ST depression, ST slope,
// vessels, thalassemia, BMI, smoking) and sorted stably, so ties keep that
// order and the earlier factor survives truncation.
func Explain(r ClinicalRecord, f FactorScores) []RiskContribution {
	out := candidates(r, f)
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].RawContribution) > math.Abs(out[j].RawContribution)
	})
	if len(out) > MaxContributions {
		out = out[:MaxContributions]
	}
	return out
}

// candidates lists the applicable factors in enumeration order, unsorted.
func candidates(r ClinicalRecord, f FactorScores) []RiskContribution {
	out := make([]RiskContribution, 0, 13)
	add := func(name string, weighted float64, text string) {
		out = append(out, RiskContribution{FactorName: name, RawContribution: round4(weighted), ExplanationText: text})
	}

	add(FactorAge, f.Age,
		fmt.Sprintf("At %d years old, age contributes to cardiovascular risk; risk increases after age 40.", r.Age))
	add(FactorSex, f.SexAge, sexText(r))
	add(FactorBloodPressure, WeightBloodPressure*f.BloodPressure,
		fmt.Sprintf("Resting blood pressure of %d mmHg; readings of 130 mmHg or higher increase risk.", r.RestingBloodPressure))
	add(FactorCholesterol, WeightCholesterol*f.Cholesterol,
		fmt.Sprintf("Cholesterol of %d mg/dL; levels of 200 mg/dL or higher increase risk.", r.Cholesterol))
	if r.ExerciseInducedAngina {
		add(FactorAngina, WeightAngina*f.Angina,
			"Chest pain during exercise (exercise-induced angina) is a strong indicator of coronary artery disease.")
	}
	if r.ChestPainType != 0 {
		add(FactorChestPain, WeightChestPain*f.ChestPain,
			fmt.Sprintf("Chest pain type %d (%s) is associated with heart disease.", r.ChestPainType, nameAt(chestPainNames[:], r.ChestPainType)))
	}
	add(FactorHeartRate, WeightHeartRate*f.HeartRate,
		fmt.Sprintf("Maximum heart rate of %d bpm is %.0f%% of the age-predicted maximum; below 80%% suggests reduced cardiac reserve.",
			r.MaxHeartRateAchieved, HeartRateReservePercent(r.MaxHeartRateAchieved, r.Age)))
	if r.STDepression != 0 {
		add(FactorSTDepression, WeightSTDepression*f.STDepression,
			fmt.Sprintf("ST depression of %.1f mm during exercise indicates possible ischemia.", r.STDepression))
	}
	if r.STSlope != 0 {
		add(FactorSTSlope, WeightSTSlope*f.STSlope,
			fmt.Sprintf("A %s ST segment slope at peak exercise is associated with higher risk.", nameAt(stSlopeNames[:], r.STSlope)))
	}
	if r.MajorVesselCount != 0 {
		add(FactorVessels, WeightVessels*f.Vessels,
			fmt.Sprintf("%d major vessel(s) colored by fluoroscopy indicates coronary narrowing.", r.MajorVesselCount))
	}
	if r.ThalassemiaType != 0 {
		add(FactorThalassemia, WeightThalassemia*f.Thalassemia,
			fmt.Sprintf("A thalassemia %s affects blood flow to the heart muscle.", nameAt(thalassemiaNames[:], r.ThalassemiaType)))
	}
	if bmi, ok := r.BMI(); ok && f.BMIApplicable && f.BMI != 0 {
		add(FactorBMI, WeightBMI*f.BMI,
			fmt.Sprintf("A BMI of %.1f; values of 25 or higher increase cardiovascular risk.", bmi))
	}
	switch r.Smoking() {
	case SmokingCurrent:
		add(FactorSmoking, f.Smoking, "Current smoking damages blood vessels and significantly raises heart disease risk.")
	case SmokingFormer:
		add(FactorSmoking, f.Smoking, "Former smoking leaves residual cardiovascular risk that declines over time.")
	}
	return out
}

func sexText(r ClinicalRecord) string {
	if r.Sex == SexMale {
		return fmt.Sprintf("Male sex at age %d; coronary risk in men rises notably after 45.", r.Age)
	}
	return fmt.Sprintf("Female sex at age %d; coronary risk in women rises after menopause, typically after 55.", r.Age)
}

func nameAt(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}
