package ml

import "math"

// Weights applied to calculator outputs. Age and sex×age enter at full
// weight; smoking, fasting blood sugar and resting ECG are flat addends.
const (
	WeightBloodPressure = 0.15
	WeightCholesterol   = 0.12
	WeightAngina        = 0.18
	WeightChestPain     = 0.10
	WeightHeartRate     = 0.08
	WeightSTDepression  = 0.10
	WeightSTSlope       = 0.07
	WeightVessels       = 0.12
	WeightThalassemia   = 0.08
	WeightBMI           = 0.05
)

// Label thresholds, inclusive at the lower bound of each band.
const (
	HighThreshold   = 0.70
	MediumThreshold = 0.40
)

// Aggregate combines calculator outputs into a score in [0,1], rounded to
// four decimal places, and its label.
func Aggregate(f FactorScores) (float64, Label) {
	sum := f.Age +
		f.SexAge +
		WeightBloodPressure*f.BloodPressure +
		WeightCholesterol*f.Cholesterol +
		WeightAngina*f.Angina +
		WeightChestPain*f.ChestPain +
		WeightHeartRate*f.HeartRate +
		WeightSTDepression*f.STDepression +
		WeightSTSlope*f.STSlope +
		WeightVessels*f.Vessels +
		WeightThalassemia*f.Thalassemia
	if f.BMIApplicable {
		sum += WeightBMI * f.BMI
	}
	sum += f.Smoking + f.FastingSugar + f.RestingECG

	score := round4(clamp01(sum))
	return score, LabelFor(score)
}

func LabelFor(score float64) Label {
	switch {
	case score >= HighThreshold:
		return LabelHigh
	case score >= MediumThreshold:
		return LabelMedium
	default:
		return LabelLow
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
