// Package services provides business logic implementations.
// #IMPLEMENTATION_DECISION: Handlers are thin - delegate business logic to services
package services

import (
	"math"

	"github.com/brixon-tools/maltacheck_backend/internal/catalog"
	"github.com/brixon-tools/maltacheck_backend/internal/models"
)

// ScoringService computes the weighted suitability score for an answer set.
// Pure and side-effect-free; safe for unlimited parallelism.
type ScoringService interface {
	Score(answers models.AnswerSet) *models.ScoreResult
}

// scoringService implements ScoringService against the static catalog
type scoringService struct{}

// NewScoringService creates a new scoring service
func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score walks the catalog in order, accumulating the weighted score of
// answered questions and the maximum possible weighted score of ALL questions.
// #BUSINESS_RULE: Missing or unmatched answers are skipped silently - partial
// submissions are valid and simply score lower. Never "upgrade" this to a
// validation error; scoring must stay stable for partially-filled forms.
func (s *scoringService) Score(answers models.AnswerSet) *models.ScoreResult {
	result := &models.ScoreResult{
		DetailedResults: []models.DetailedResult{},
	}

	for _, question := range catalog.All() {
		// The denominator counts every question, answered or not
		result.TotalPossibleWeightedScore += float64(question.MaxOptionScore()) * question.Weight

		value, answered := answers[question.ID]
		if !answered {
			continue
		}

		option, found := question.OptionByValue(value)
		if !found {
			// Unknown value token: treat as unanswered, do not penalize
			continue
		}

		result.WeightedScore += float64(option.Score) * question.Weight
		result.DetailedResults = append(result.DetailedResults, models.DetailedResult{
			QuestionID:        question.ID,
			QuestionText:      question.Text,
			Answer:            option.Label,
			AnswerDescription: option.Description,
			Score:             option.Score,
			Category:          models.CategoryForScore(option.Score),
		})
	}

	if result.TotalPossibleWeightedScore > 0 {
		// Half-up rounding to an integer percentage
		result.Percentage = int(math.Round(result.WeightedScore / result.TotalPossibleWeightedScore * 100))
	}

	return result
}
