package ml

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

// ClinicalRecordInput is the wire form of a ClinicalRecord. Pointers let an
// absent field be told apart from an explicit zero.
type ClinicalRecordInput struct {
	Age                   *int           `json:"age" validate:"required"`
	Sex                   *Sex           `json:"sex" validate:"required"`
	ChestPainType         *int           `json:"chestPainType" validate:"required"`
	RestingBloodPressure  *int           `json:"restingBloodPressure" validate:"required"`
	Cholesterol           *int           `json:"cholesterol" validate:"required"`
	FastingBloodSugarHigh *bool          `json:"fastingBloodSugarHigh" validate:"required"`
	RestingECGResult      *int           `json:"restingEcgResult" validate:"required"`
	MaxHeartRateAchieved  *int           `json:"maxHeartRateAchieved" validate:"required"`
	ExerciseInducedAngina *bool          `json:"exerciseInducedAngina" validate:"required"`
	STDepression          *float64       `json:"stDepression" validate:"required"`
	STSlope               *int           `json:"stSlope" validate:"required"`
	MajorVesselCount      *int           `json:"majorVesselCount" validate:"required"`
	ThalassemiaType       *int           `json:"thalassemiaType" validate:"required"`
	HeightCm              *int           `json:"heightCm"`
	WeightKg              *int           `json:"weightKg"`
	SmokingStatus         *SmokingStatus `json:"smokingStatus"`
}

// Record checks that every required field is present and returns the
// record. Range checks are left to Validate.
func (in ClinicalRecordInput) Record() (ClinicalRecord, error) {
	err := validate.Struct(in)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return ClinicalRecord{}, FromFieldError(verrs[0])
		}
		return ClinicalRecord{}, err
	}

	return ClinicalRecord{
		Age:                   *in.Age,
		Sex:                   *in.Sex,
		ChestPainType:         *in.ChestPainType,
		RestingBloodPressure:  *in.RestingBloodPressure,
		Cholesterol:           *in.Cholesterol,
		FastingBloodSugarHigh: *in.FastingBloodSugarHigh,
		RestingECGResult:      *in.RestingECGResult,
		MaxHeartRateAchieved:  *in.MaxHeartRateAchieved,
		ExerciseInducedAngina: *in.ExerciseInducedAngina,
		STDepression:          *in.STDepression,
		STSlope:               *in.STSlope,
		MajorVesselCount:      *in.MajorVesselCount,
		ThalassemiaType:       *in.ThalassemiaType,
		HeightCm:              in.HeightCm,
		WeightKg:              in.WeightKg,
		SmokingStatus:         in.SmokingStatus,
	}, nil
}

// DecodeRecord parses a JSON clinical record, rejecting it with a
// *ValidationError when a required field is missing. JSON syntax and type
// errors are returned as produced by encoding/json.
func DecodeRecord(data []byte) (ClinicalRecord, error) {
	var in ClinicalRecordInput
	if err := json.Unmarshal(data, &in); err != nil {
		return ClinicalRecord{}, err
	}
	return in.Record()
}
