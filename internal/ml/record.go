// Package ml implements the HeartGuard heart-disease risk model: clinical input
// validation, per-factor risk calculators, weighted aggregation, ranked
// explanations, risk-factor advice and lifestyle recommendations.
//
// Every function in this package is a pure function of its arguments.
package ml

// ModelVersion is embedded in every PredictionResult.
const ModelVersion = "v3.0.0"

type Sex int

const (
	SexFemale Sex = 0
	SexMale   Sex = 1
)

type SmokingStatus string

const (
	SmokingNever   SmokingStatus = "never"
	SmokingFormer  SmokingStatus = "former"
	SmokingCurrent SmokingStatus = "current"
)

// ClinicalRecord is the fixed 13-field clinical input plus optional
// anthropometrics and smoking status. Optional fields are nil when absent.
type ClinicalRecord struct {
	Age                   int            `json:"age" validate:"min=0,max=120"`
	Sex                   Sex            `json:"sex" validate:"oneof=0 1"`
	ChestPainType         int            `json:"chestPainType" validate:"min=0,max=3"`
	RestingBloodPressure  int            `json:"restingBloodPressure" validate:"min=50,max=300"`
	Cholesterol           int            `json:"cholesterol" validate:"min=100,max=600"`
	FastingBloodSugarHigh bool           `json:"fastingBloodSugarHigh"`
	RestingECGResult      int            `json:"restingEcgResult" validate:"min=0,max=2"`
	MaxHeartRateAchieved  int            `json:"maxHeartRateAchieved" validate:"min=50,max=250"`
	ExerciseInducedAngina bool           `json:"exerciseInducedAngina"`
	STDepression          float64        `json:"stDepression" validate:"finite,min=0,max=10"`
	STSlope               int            `json:"stSlope" validate:"min=0,max=2"`
	MajorVesselCount      int            `json:"majorVesselCount" validate:"min=0,max=3"`
	ThalassemiaType       int            `json:"thalassemiaType" validate:"min=0,max=2"`
	HeightCm              *int           `json:"heightCm,omitempty" validate:"omitempty,min=100,max=250"`
	WeightKg              *int           `json:"weightKg,omitempty" validate:"omitempty,min=30,max=300"`
	SmokingStatus         *SmokingStatus `json:"smokingStatus,omitempty" validate:"omitempty,oneof=never former current"`
}

// BMI returns weight/(height in metres)^2 and false when either height or
// weight is missing.
func (r ClinicalRecord) BMI() (float64, bool) {
	if r.HeightCm == nil || r.WeightKg == nil || *r.HeightCm <= 0 {
		return 0, false
	}
	m := float64(*r.HeightCm) / 100
	return float64(*r.WeightKg) / (m * m), true
}

// Smoking returns the smoking status, treating an absent value as never.
func (r ClinicalRecord) Smoking() SmokingStatus {
	if r.SmokingStatus == nil {
		return SmokingNever
	}
	return *r.SmokingStatus
}

type Label string

const (
	LabelLow    Label = "low"
	LabelMedium Label = "medium"
	LabelHigh   Label = "high"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// RiskContribution is one factor's weighted share of the score.
type RiskContribution struct {
	FactorName      string  `json:"factorName"`
	RawContribution float64 `json:"rawContribution"`
	ExplanationText string  `json:"explanationText"`
}

type RiskFactor struct {
	Category       string   `json:"category"`
	Severity       Severity `json:"severity"`
	Recommendation string   `json:"recommendation"`
}

type PredictionResult struct {
	Score                    float64            `json:"score"`
	Label                    Label              `json:"label"`
	ModelVersion             string             `json:"modelVersion"`
	TopContributions         []RiskContribution `json:"topContributions"`
	RiskFactors              []RiskFactor       `json:"riskFactors"`
	LifestyleRecommendations []string           `json:"lifestyleRecommendations"`
}

// IntPtr and SmokingPtr build optional record fields.
func IntPtr(v int) *int { return &v }

func SmokingPtr(s SmokingStatus) *SmokingStatus { return &s }
