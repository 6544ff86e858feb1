package services

import (
	"testing"

	"github.com/brixon-tools/maltacheck_backend/internal/catalog"
	"github.com/brixon-tools/maltacheck_backend/internal/models"
)

// fullCatalogMax answers every question with its maximum-scoring option
func fullCatalogMax(t *testing.T) models.AnswerSet {
	t.Helper()
	answers := models.AnswerSet{}
	for _, q := range catalog.All() {
		best := q.Options[0]
		for _, o := range q.Options {
			if o.Score > best.Score {
				best = o
			}
		}
		answers[q.ID] = best.Value
	}
	return answers
}

func TestScore_FullCatalogMaximum(t *testing.T) {
	svc := NewScoringService()

	result := svc.Score(fullCatalogMax(t))

	if result.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100", result.Percentage)
	}
	if result.WeightedScore != result.TotalPossibleWeightedScore {
		t.Errorf("WeightedScore = %v, want %v", result.WeightedScore, result.TotalPossibleWeightedScore)
	}
	if len(result.DetailedResults) != 12 {
		t.Errorf("DetailedResults has %d entries, want 12", len(result.DetailedResults))
	}
}

func TestScore_EmptyAnswerSet(t *testing.T) {
	svc := NewScoringService()

	result := svc.Score(models.AnswerSet{})

	if result.Percentage != 0 {
		t.Errorf("Percentage = %d, want 0", result.Percentage)
	}
	if result.WeightedScore != 0 {
		t.Errorf("WeightedScore = %v, want 0", result.WeightedScore)
	}
	if len(result.DetailedResults) != 0 {
		t.Errorf("DetailedResults has %d entries, want 0", len(result.DetailedResults))
	}
	// The denominator covers the full catalog even with nothing answered
	if result.TotalPossibleWeightedScore != 178.0 {
		t.Errorf("TotalPossibleWeightedScore = %v, want 178.0", result.TotalPossibleWeightedScore)
	}
}

func TestScore_PartialSubmission(t *testing.T) {
	svc := NewScoringService()

	// q001 value 4 scores 10 at weight 2.0; q003 value 4 scores 10 at weight 2.0
	result := svc.Score(models.AnswerSet{"q001": "4", "q003": "4"})

	if result.WeightedScore != 40.0 {
		t.Errorf("WeightedScore = %v, want 40.0", result.WeightedScore)
	}
	if result.TotalPossibleWeightedScore != 178.0 {
		t.Errorf("TotalPossibleWeightedScore = %v, want 178.0", result.TotalPossibleWeightedScore)
	}
	// round(40/178*100) = round(22.47) = 22
	if result.Percentage != 22 {
		t.Errorf("Percentage = %d, want 22", result.Percentage)
	}
	if len(result.DetailedResults) != 2 {
		t.Fatalf("DetailedResults has %d entries, want 2", len(result.DetailedResults))
	}
	// Detail list follows catalog order
	if result.DetailedResults[0].QuestionID != "q001" || result.DetailedResults[1].QuestionID != "q003" {
		t.Errorf("detail order = %s, %s; want q001, q003",
			result.DetailedResults[0].QuestionID, result.DetailedResults[1].QuestionID)
	}
	for _, d := range result.DetailedResults {
		if d.Category != models.AnswerCategoryPositive {
			t.Errorf("question %s category = %s, want positive", d.QuestionID, d.Category)
		}
	}
}

func TestScore_UnknownValueSkippedSilently(t *testing.T) {
	svc := NewScoringService()

	// "99" matches no q001 option: not scored, not penalized
	result := svc.Score(models.AnswerSet{"q001": "99", "q003": "4"})

	if result.WeightedScore != 20.0 {
		t.Errorf("WeightedScore = %v, want 20.0", result.WeightedScore)
	}
	if len(result.DetailedResults) != 1 {
		t.Errorf("DetailedResults has %d entries, want 1", len(result.DetailedResults))
	}
}

func TestScore_UnknownQuestionIgnored(t *testing.T) {
	svc := NewScoringService()

	result := svc.Score(models.AnswerSet{"q999": "1"})

	if result.WeightedScore != 0 {
		t.Errorf("WeightedScore = %v, want 0", result.WeightedScore)
	}
}

func TestScore_Bounds(t *testing.T) {
	svc := NewScoringService()

	sets := []models.AnswerSet{
		{},
		{"q001": "1"},
		{"q003": "1", "q005": "1", "q011": "4"},
		fullCatalogMax(t),
	}

	for _, answers := range sets {
		result := svc.Score(answers)
		if result.Percentage < 0 || result.Percentage > 100 {
			t.Errorf("Percentage %d outside [0,100] for %v", result.Percentage, answers)
		}
		if result.WeightedScore > result.TotalPossibleWeightedScore {
			t.Errorf("WeightedScore %v exceeds total possible %v for %v",
				result.WeightedScore, result.TotalPossibleWeightedScore, answers)
		}
	}
}

func TestScore_AnswerCategories(t *testing.T) {
	svc := NewScoringService()

	// q003 value 1 scores 3 (critical), q002 value 2 scores 6 (neutral),
	// q001 value 4 scores 10 (positive)
	result := svc.Score(models.AnswerSet{"q001": "4", "q002": "2", "q003": "1"})

	want := map[string]models.AnswerCategory{
		"q001": models.AnswerCategoryPositive,
		"q002": models.AnswerCategoryNeutral,
		"q003": models.AnswerCategoryCritical,
	}
	for _, d := range result.DetailedResults {
		if d.Category != want[d.QuestionID] {
			t.Errorf("question %s category = %s, want %s", d.QuestionID, d.Category, want[d.QuestionID])
		}
	}
}
