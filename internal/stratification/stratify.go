// Package stratification buckets patients into care-management risk levels
// from a prediction score, its top contributions and known conditions.
//
// Scores here are on a 0-100 scale. Predictions from package ml are on [0,1];
// convert with ToPercent at the boundary.
package stratification

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/Skufu/heartguard/internal/ml"
)

type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very-high"
)

const (
	// SignificantContribution is the absolute contribution above which a
	// factor counts toward the multi-factor escalation.
	SignificantContribution = 0.15
	// SignificantFactorCount is how many significant factors trigger it.
	SignificantFactorCount = 3
)

// SevereConditions escalate the level by one step when any is present.
var SevereConditions = []string{"heart-disease", "severe-hypertension", "diabetes-type-2"}

// Stratify maps a 0-100 score to a level, escalating once when at least three
// contributions exceed 0.15 in magnitude and once more when a severe condition
// tag is present. Both escalations cap at very-high.
func Stratify(score float64, contributions []ml.RiskContribution, conditionTags []string) Level {
	level := baseLevel(score)

	significant := lo.CountBy(contributions, func(c ml.RiskContribution) bool {
		return math.Abs(c.RawContribution) > SignificantContribution
	})
	if significant >= SignificantFactorCount {
		if level == LevelHigh || level == LevelVeryHigh {
			level = LevelVeryHigh
		} else {
			level = LevelHigh
		}
	}

	if HasSevereCondition(conditionTags) {
		level = escalate(level)
	}
	return level
}

// ToPercent converts a [0,1] prediction score to the 0-100 scale.
func ToPercent(score float64) float64 {
	return math.Round(score*100*100) / 100
}

// HasSevereCondition reports whether any tag names a severe condition.
// Tags are compared case-insensitively after trimming.
func HasSevereCondition(tags []string) bool {
	return lo.SomeBy(tags, func(tag string) bool {
		return lo.Contains(SevereConditions, NormalizeTag(tag))
	})
}

func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func baseLevel(score float64) Level {
	switch {
	case score > 75:
		return LevelVeryHigh
	case score > 50:
		return LevelHigh
	case score > 30:
		return LevelModerate
	default:
		return LevelLow
	}
}

func escalate(l Level) Level {
	switch l {
	case LevelLow:
		return LevelModerate
	case LevelModerate:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}
