package ml

// Risk factor categories, evaluated in this order.
const (
	CategoryBloodPressure    = "bloodPressure"
	CategoryCholesterol      = "cholesterol"
	CategorySmoking          = "smoking"
	CategoryWeight           = "weight"
	CategoryExerciseResponse = "exerciseResponse"
	CategoryAge              = "age"
)

// Advise flags modifiable and non-modifiable risk factors with a severity and
// a fixed recommendation. It does not depend on the aggregate score.
func Advise(r ClinicalRecord) []RiskFactor {
	factors := []RiskFactor{}

	if r.RestingBloodPressure >= 140 {
		factors = append(factors, RiskFactor{
			Category:       CategoryBloodPressure,
			Severity:       SeverityHigh,
			Recommendation: "Blood pressure is in the hypertensive range; consult your doctor about treatment and monitor it daily.",
		})
	} else if r.RestingBloodPressure >= 120 {
		factors = append(factors, RiskFactor{
			Category:       CategoryBloodPressure,
			Severity:       SeverityModerate,
			Recommendation: "Blood pressure is elevated; reduce sodium intake and check it regularly.",
		})
	}

	if r.Cholesterol >= 240 {
		factors = append(factors, RiskFactor{
			Category:       CategoryCholesterol,
			Severity:       SeverityHigh,
			Recommendation: "Cholesterol is high; discuss lipid-lowering therapy with your doctor and limit saturated fats.",
		})
	} else if r.Cholesterol >= 200 {
		factors = append(factors, RiskFactor{
			Category:       CategoryCholesterol,
			Severity:       SeverityModerate,
			Recommendation: "Cholesterol is borderline high; increase fiber intake and reduce saturated fats.",
		})
	}

	switch r.Smoking() {
	case SmokingCurrent:
		factors = append(factors, RiskFactor{
			Category:       CategorySmoking,
			Severity:       SeverityHigh,
			Recommendation: "Quit smoking; ask your doctor about cessation programs and nicotine replacement.",
		})
	case SmokingFormer:
		factors = append(factors, RiskFactor{
			Category:       CategorySmoking,
			Severity:       SeverityModerate,
			Recommendation: "Stay smoke-free and avoid second-hand smoke.",
		})
	}

	if bmi, ok := r.BMI(); ok {
		if bmi >= 30 {
			factors = append(factors, RiskFactor{
				Category:       CategoryWeight,
				Severity:       SeverityHigh,
				Recommendation: "BMI is in the obese range; a structured weight-loss plan is recommended.",
			})
		} else if bmi >= 25 {
			factors = append(factors, RiskFactor{
				Category:       CategoryWeight,
				Severity:       SeverityModerate,
				Recommendation: "BMI is above the healthy range; aim for gradual weight loss through diet and activity.",
			})
		}
	}

	if r.ExerciseInducedAngina {
		factors = append(factors, RiskFactor{
			Category:       CategoryExerciseResponse,
			Severity:       SeverityHigh,
			Recommendation: "Chest pain during exercise needs prompt cardiology evaluation before increasing activity.",
		})
	}

	if r.Age >= 65 {
		factors = append(factors, RiskFactor{
			Category:       CategoryAge,
			Severity:       SeverityModerate,
			Recommendation: "Schedule regular cardiovascular check-ups; risk increases with age.",
		})
	} else if r.Age >= 50 {
		factors = append(factors, RiskFactor{
			Category:       CategoryAge,
			Severity:       SeverityLow,
			Recommendation: "Have an annual heart health screening.",
		})
	}

	return factors
}
