package models

import (
	"testing"
)

func TestCategoryForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected AnswerCategory
	}{
		{"Score 10 is positive", 10, AnswerCategoryPositive},
		{"Score 8 is positive", 8, AnswerCategoryPositive},
		{"Score 7 is neutral", 7, AnswerCategoryNeutral},
		{"Score 5 is neutral", 5, AnswerCategoryNeutral},
		{"Score 4 is critical", 4, AnswerCategoryCritical},
		{"Score 0 is critical", 0, AnswerCategoryCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryForScore(tt.score); got != tt.expected {
				t.Errorf("CategoryForScore(%d) = %v, want %v", tt.score, got, tt.expected)
			}
		})
	}
}

func TestQuestion_MaxOptionScore(t *testing.T) {
	q := Question{
		ID:     "q001",
		Weight: 2.0,
		Options: []QuestionOption{
			{Value: "1", Score: 8},
			{Value: "2", Score: 6},
			{Value: "3", Score: 10},
			{Value: "4", Score: 7},
		},
	}

	if got := q.MaxOptionScore(); got != 10 {
		t.Errorf("MaxOptionScore() = %d, want 10", got)
	}
}

func TestQuestion_OptionByValue(t *testing.T) {
	q := Question{
		ID: "q003",
		Options: []QuestionOption{
			{Value: "1", Label: "No", Score: 3},
			{Value: "4", Label: "Yes, long term", Score: 10},
		},
	}

	opt, found := q.OptionByValue("4")
	if !found {
		t.Fatal("OptionByValue(\"4\") not found")
	}
	if opt.Score != 10 {
		t.Errorf("OptionByValue(\"4\").Score = %d, want 10", opt.Score)
	}

	// Matching is exact: no numeric coercion
	if _, found := q.OptionByValue("04"); found {
		t.Error("OptionByValue(\"04\") should not match value \"4\"")
	}

	if _, found := q.OptionByValue("99"); found {
		t.Error("OptionByValue(\"99\") should not be found")
	}
}

func TestErrorGroups(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		auth  bool
		throt bool
		bad   bool
	}{
		{"Nonce invalid is authorization", ErrNonceInvalid, true, false, false},
		{"Nonce expired is authorization", ErrNonceExpired, true, false, false},
		{"Rate limit is throttling", ErrRateLimitExceeded, false, true, false},
		{"No data is malformed", ErrNoData, false, false, true},
		{"Invalid JSON is malformed", ErrInvalidJSON, false, false, true},
		{"Missing answers is malformed", ErrMissingAnswers, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthorizationError(tt.err); got != tt.auth {
				t.Errorf("IsAuthorizationError() = %v, want %v", got, tt.auth)
			}
			if got := IsThrottlingError(tt.err); got != tt.throt {
				t.Errorf("IsThrottlingError() = %v, want %v", got, tt.throt)
			}
			if got := IsMalformedRequestError(tt.err); got != tt.bad {
				t.Errorf("IsMalformedRequestError() = %v, want %v", got, tt.bad)
			}
		})
	}
}
