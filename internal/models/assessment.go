package models

import (
	"github.com/samber/lo"
)

// AnswerCategory classifies a single answered question by its raw option score
// #IMPLEMENTATION_DECISION: Fixed 0-10 option score scale, thresholds at 8 and 4
type AnswerCategory string

const (
	AnswerCategoryPositive AnswerCategory = "positive"
	AnswerCategoryNeutral  AnswerCategory = "neutral"
	AnswerCategoryCritical AnswerCategory = "critical"
)

// CategoryForScore derives the per-answer category from a raw option score.
func CategoryForScore(score int) AnswerCategory {
	switch {
	case score >= 8:
		return AnswerCategoryPositive
	case score <= 4:
		return AnswerCategoryCritical
	default:
		return AnswerCategoryNeutral
	}
}

// QuestionOption represents one selectable answer to a question
// #NORMALIZATION_DECISION: Options embedded in Question, never looked up independently
type QuestionOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Score       int    `json:"score"`
}

// Question represents one catalog item with a weight and scored options
// #DATA_ASSUMPTION: Weight is positive, typically 1.0-2.0; more important
// questions carry a higher weight
type Question struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Weight  float64          `json:"weight"`
	Options []QuestionOption `json:"options"`
}

// MaxOptionScore returns the highest option score for this question. It is
// the question's normalizing denominator when computing the total possible
// weighted score.
func (q *Question) MaxOptionScore() int {
	max := lo.MaxBy(q.Options, func(a, b QuestionOption) bool {
		return a.Score > b.Score
	})
	return max.Score
}

// OptionByValue returns the option whose value token exactly matches the
// submitted value. Matching is exact string comparison, no coercion.
func (q *Question) OptionByValue(value string) (QuestionOption, bool) {
	return lo.Find(q.Options, func(o QuestionOption) bool {
		return o.Value == value
	})
}

// AnswerSet maps question identifiers to the submitted value token.
// A partial set is valid; unanswered questions simply score lower.
type AnswerSet map[string]string

// DetailedResult is the per-answered-question breakdown included in the
// score response and the webhook payload.
type DetailedResult struct {
	QuestionID        string         `json:"questionId"`
	QuestionText      string         `json:"questionText"`
	Answer            string         `json:"answer"`
	AnswerDescription string         `json:"answerDescription"`
	Score             int            `json:"score"`
	Category          AnswerCategory `json:"category"`
}

// ScoreResult holds the outcome of scoring one answer set
// #BUSINESS_RULE: TotalPossibleWeightedScore covers the FULL catalog,
// regardless of which questions were answered
type ScoreResult struct {
	Percentage                 int              `json:"percentage"`
	WeightedScore              float64          `json:"weightedScore"`
	TotalPossibleWeightedScore float64          `json:"totalPossibleWeightedScore"`
	DetailedResults            []DetailedResult `json:"detailedResults"`
}

// Interpretation is one of five ordered suitability bands over the percentage
type Interpretation struct {
	Category       string `json:"category"`
	CategoryLabel  string `json:"categoryLabel"`
	Interpretation string `json:"interpretation"`
}

// Contact holds the free-form contact fields of a submission. No cross-field
// invariants; persisted nowhere, forwarded once to the webhook.
type Contact struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// SubmissionMeta carries request metadata forwarded to the webhook
type SubmissionMeta struct {
	IP        string
	UserAgent string
	Referrer  string
}
