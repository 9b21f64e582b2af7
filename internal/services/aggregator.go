package services

import (
	"math"

	"github.com/talentsift/resume-analyzer/internal/models"
)

// Penalty subtracted from the weighted score when at least one must-have
// requirement is unmet (category III).
const mustHavePenalty = 20

// Category buckets for the overall rating.
const (
	CategoryNotSuitable    = "Not Suitable"
	CategoryModerateMatch  = "Moderate Match"
	CategoryGoodMatch      = "Good Match"
	CategoryExcellentMatch = "Excellent Match"
)

// Aggregate combines the three numeric section ratings into one overall
// rating and category. It is pure and total: any rating triple, weight
// triple, and category are valid inputs.
//
// Ratings are consumed on their native scales (education/experience 1-120,
// skills 1-100) without rescaling, so a section rated above 100 contributes
// more than its nominal weight share. That is intended: the >100 zone marks
// candidates who exceed requirements.
func Aggregate(eduRating, expRating, skillsRating int, weights models.SectionWeights, mhCategory models.MustHaveCategory) (models.OverallScore, string) {
	// All three sections at zero means no usable signal, not a zero score.
	if eduRating == 0 && expRating == 0 && skillsRating == 0 {
		return models.OverallScore{NA: true}, "NA"
	}

	experienceWeight := weights.Experience
	skillsWeight := weights.Skills
	educationWeight := weights.EducationAndCertification

	totalWeight := experienceWeight + skillsWeight + educationWeight
	if totalWeight != 100 && totalWeight > 0 {
		experienceWeight = (experienceWeight / totalWeight) * 100
		skillsWeight = (skillsWeight / totalWeight) * 100
		educationWeight = (educationWeight / totalWeight) * 100
	}

	weightedScore := (float64(expRating)*experienceWeight +
		float64(skillsRating)*skillsWeight +
		float64(eduRating)*educationWeight) / 100

	if mhCategory == models.CategoryIII {
		weightedScore = math.Max(0, weightedScore-mustHavePenalty)
	}

	overall := int(math.Round(weightedScore))

	return models.OverallScore{Value: overall}, FindCategory(overall)
}

// FindCategory maps an overall rating onto its qualitative bucket.
// Breakpoints sit at 41, 61, and 81.
func FindCategory(rating int) string {
	switch {
	case rating < 41:
		return CategoryNotSuitable
	case rating < 61:
		return CategoryModerateMatch
	case rating < 81:
		return CategoryGoodMatch
	default:
		return CategoryExcellentMatch
	}
}
