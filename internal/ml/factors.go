package ml

// FactorScores holds the raw (unweighted) output of every calculator for one
// record. BMIApplicable is false when height or weight is missing.
type FactorScores struct {
	Age           float64
	SexAge        float64
	BloodPressure float64
	Cholesterol   float64
	Angina        float64
	ChestPain     float64
	HeartRate     float64
	STDepression  float64
	STSlope       float64
	Vessels       float64
	Thalassemia   float64
	BMI           float64
	BMIApplicable bool
	Smoking       float64
	FastingSugar  float64
	RestingECG    float64
}

// ScoreFactors runs every calculator against a validated record.
func ScoreFactors(r ClinicalRecord) FactorScores {
	f := FactorScores{
		Age:           AgeRisk(r.Age),
		SexAge:        SexAgeRisk(r.Sex, r.Age),
		BloodPressure: BloodPressureRisk(r.RestingBloodPressure),
		Cholesterol:   CholesterolRisk(r.Cholesterol),
		Angina:        AnginaRisk(r.ExerciseInducedAngina),
		ChestPain:     ChestPainRisk(r.ChestPainType),
		HeartRate:     HeartRateReserveRisk(r.MaxHeartRateAchieved, r.Age),
		STDepression:  STDepressionRisk(r.STDepression),
		STSlope:       STSlopeRisk(r.STSlope),
		Vessels:       VesselRisk(r.MajorVesselCount),
		Thalassemia:   ThalassemiaRisk(r.ThalassemiaType),
		Smoking:       SmokingRisk(r.SmokingStatus),
		FastingSugar:  FastingBloodSugarRisk(r.FastingBloodSugarHigh),
		RestingECG:    RestingECGRisk(r.RestingECGResult),
	}
	if bmi, ok := r.BMI(); ok {
		f.BMI = BMIRisk(bmi)
		f.BMIApplicable = true
	}
	return f
}

func AgeRisk(age int) float64 {
	switch {
	case age < 40:
		return 0.05
	case age < 50:
		return 0.10
	case age < 60:
		return 0.15
	case age < 70:
		return 0.25
	default:
		return 0.35
	}
}

// SexAgeRisk models the earlier onset of coronary disease in men.
func SexAgeRisk(sex Sex, age int) float64 {
	if sex == SexMale {
		if age < 45 {
			return 0.05
		}
		return 0.12
	}
	if age < 55 {
		return 0.02
	}
	return 0.08
}

func BloodPressureRisk(systolic int) float64 {
	switch {
	case systolic < 120:
		return 0.0
	case systolic < 130:
		return 0.05
	case systolic < 140:
		return 0.10
	case systolic < 180:
		return 0.20
	default:
		return 0.35
	}
}

func CholesterolRisk(mgdl int) float64 {
	switch {
	case mgdl < 200:
		return 0.0
	case mgdl < 240:
		return 0.08
	default:
		return 0.18
	}
}

func AnginaRisk(present bool) float64 {
	if present {
		return 0.25
	}
	return 0.0
}

var chestPainRisk = [...]float64{0.0, 0.05, 0.12, 0.20}

func ChestPainRisk(cpType int) float64 {
	return lookup(chestPainRisk[:], cpType)
}

// HeartRateReserveRisk scores the achieved rate as a percentage of the
// age-predicted maximum (220 - age).
func HeartRateReserveRisk(achieved, age int) float64 {
	pct := HeartRateReservePercent(achieved, age)
	switch {
	case pct < 70:
		return 0.15
	case pct < 80:
		return 0.08
	default:
		return 0.0
	}
}

func HeartRateReservePercent(achieved, age int) float64 {
	predicted := 220 - age
	if predicted <= 0 {
		return 100
	}
	return float64(achieved) / float64(predicted) * 100
}

func STDepressionRisk(oldpeak float64) float64 {
	switch {
	case oldpeak == 0:
		return 0.0
	case oldpeak < 1:
		return 0.08
	case oldpeak < 2:
		return 0.15
	default:
		return 0.25
	}
}

var stSlopeRisk = [...]float64{0.05, 0.10, 0.20}

func STSlopeRisk(slope int) float64 {
	return lookup(stSlopeRisk[:], slope)
}

var vesselRisk = [...]float64{0.0, 0.10, 0.20, 0.30}

func VesselRisk(count int) float64 {
	return lookup(vesselRisk[:], count)
}

var thalassemiaRisk = [...]float64{0.0, 0.15, 0.25}

func ThalassemiaRisk(thal int) float64 {
	return lookup(thalassemiaRisk[:], thal)
}

func BMIRisk(bmi float64) float64 {
	switch {
	case bmi < 18.5:
		return 0.05
	case bmi < 25:
		return 0.0
	case bmi < 30:
		return 0.10
	default:
		return 0.20
	}
}

func SmokingRisk(status *SmokingStatus) float64 {
	if status == nil {
		return 0.0
	}
	switch *status {
	case SmokingCurrent:
		return 0.15
	case SmokingFormer:
		return 0.08
	default:
		return 0.0
	}
}

func FastingBloodSugarRisk(high bool) float64 {
	if high {
		return 0.03
	}
	return 0.0
}

// RestingECGRisk adds risk only for left ventricular hypertrophy (result 2).
func RestingECGRisk(result int) float64 {
	if result == 2 {
		return 0.05
	}
	return 0.0
}

// lookup returns table[i], or 0 for an index outside the table. Validated
// records never hit the fallback.
func lookup(table []float64, i int) float64 {
	if i < 0 || i >= len(table) {
		return 0
	}
	return table[i]
}
