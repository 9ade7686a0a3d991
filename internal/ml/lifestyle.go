package ml

// Recommendation strings. The order in which Recommend emits them is part of
// its contract.
const (
	RecUrgentCardiology  = "Schedule an appointment with a cardiologist as soon as possible."
	RecUrgentSymptoms    = "Seek emergency care immediately if you experience chest pain, shortness of breath, or fainting."
	RecPreventiveCheckup = "Schedule a check-up with your doctor within the next month to review your heart health."
	RecPreventiveMonitor = "Monitor your blood pressure and cholesterol regularly."
	RecMaintain          = "Maintain your current healthy habits and have an annual check-up."
	RecBPSodium          = "Limit sodium intake to less than 2,300 mg per day."
	RecBPDash            = "Follow the DASH diet, rich in fruits, vegetables, and low-fat dairy."
	RecCholFats          = "Reduce saturated and trans fats in your diet."
	RecCholFiber         = "Eat more soluble fiber such as oats, beans, and fruit."
	RecSmokingQuit       = "Quit smoking; consider a cessation program or nicotine replacement therapy."
	RecSmokingSecondhand = "Avoid exposure to second-hand smoke."
	RecSmokingStayQuit   = "Stay smoke-free to keep lowering your cardiovascular risk."
	RecWeightStructured  = "Work with a healthcare provider on a structured weight-loss plan."
	RecWeightCalories    = "Aim for a gradual weight loss of 0.5-1 kg per week through diet and exercise."
	RecWeightHealthy     = "Aim to reach a healthy weight through balanced nutrition and regular activity."
	RecGeneralExercise   = "Get at least 150 minutes of moderate aerobic exercise per week."
	RecGeneralDiet       = "Eat a heart-healthy diet rich in vegetables, whole grains, and lean protein."
	RecGeneralSleep      = "Get 7-9 hours of sleep each night."
	RecGeneralStress     = "Manage stress through relaxation techniques such as meditation or deep breathing."
)

// Recommend builds the ordered lifestyle recommendation list for a record and
// its aggregate score.
func Recommend(r ClinicalRecord, score float64) []string {
	recs := make([]string, 0, 12)

	switch {
	case score >= HighThreshold:
		recs = append(recs, RecUrgentCardiology, RecUrgentSymptoms)
	case score >= MediumThreshold:
		recs = append(recs, RecPreventiveCheckup, RecPreventiveMonitor)
	default:
		recs = append(recs, RecMaintain)
	}

	if r.RestingBloodPressure >= 140 {
		recs = append(recs, RecBPSodium, RecBPDash)
	}
	if r.Cholesterol >= 240 {
		recs = append(recs, RecCholFats, RecCholFiber)
	}
	switch r.Smoking() {
	case SmokingCurrent:
		recs = append(recs, RecSmokingQuit, RecSmokingSecondhand)
	case SmokingFormer:
		recs = append(recs, RecSmokingStayQuit)
	}
	if bmi, ok := r.BMI(); ok {
		if bmi >= 30 {
			recs = append(recs, RecWeightStructured, RecWeightCalories)
		} else if bmi >= 25 {
			recs = append(recs, RecWeightHealthy)
		}
	}

	return append(recs, RecGeneralExercise, RecGeneralDiet, RecGeneralSleep, RecGeneralStress)
}
