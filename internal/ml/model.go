package ml

// Model is the heart-disease risk model. It carries no state; the zero value
// is ready to use and safe for concurrent use.
type Model struct{}

// Predict validates the record and scores it. The only error it returns is
// *ValidationError.
func (Model) Predict(r ClinicalRecord) (PredictionResult, error) {
	if err := Validate(r); err != nil {
		return PredictionResult{}, err
	}

	factors := ScoreFactors(r)
	score, label := Aggregate(factors)

	return PredictionResult{
		Score:                    score,
		Label:                    label,
		ModelVersion:             ModelVersion,
		TopContributions:         Explain(r, factors),
		RiskFactors:              Advise(r),
		LifestyleRecommendations: Recommend(r, score),
	}, nil
}

// Predict scores a record with the default Model.
func Predict(r ClinicalRecord) (PredictionResult, error) {
	return Model{}.Predict(r)
}
