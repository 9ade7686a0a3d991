package server

import (
	"encoding/json"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Skufu/heartguard/internal/ml"
)

var registerOnce sync.Once

// useJSONFieldNames makes gin's validator report fields by their JSON names.
func useJSONFieldNames() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(ml.JSONFieldName)
		}
	})
}

// decodePredictionRequest accepts either {"patientId": ..., "record": {...}}
// or the record fields at the top level.
func decodePredictionRequest(body []byte) (string, ml.ClinicalRecord, error) {
	var envelope struct {
		PatientID string          `json:"patientId"`
		Record    json.RawMessage `json:"record"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", ml.ClinicalRecord{}, err
	}

	raw := []byte(envelope.Record)
	if len(raw) == 0 || string(raw) == "null" {
		raw = body
	}

	record, err := ml.DecodeRecord(raw)
	if err != nil {
		return "", ml.ClinicalRecord{}, err
	}
	return envelope.PatientID, record, nil
}

type conditionsRequest struct {
	ConditionTags []string `json:"conditionTags" binding:"required"`
}

type stratifyRequest struct {
	Score         *float64              `json:"score" binding:"required,min=0,max=100"`
	Contributions []ml.RiskContribution `json:"contributions"`
	ConditionTags []string              `json:"conditionTags"`
}
