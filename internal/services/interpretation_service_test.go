package services

import "testing"

func TestClassify_StandardBoundaries(t *testing.T) {
	svc := NewInterpretationService("standard")

	tests := []struct {
		percentage int
		category   string
	}{
		{0, "explore"},
		{19, "explore"},
		{20, "fair"}, // lower bound closed
		{39, "fair"},
		{40, "moderate"},
		{59, "moderate"},
		{60, "good"},
		{74, "good"},
		{75, "excellent"},
		{100, "excellent"},
	}

	for _, tt := range tests {
		if got := svc.Classify(tt.percentage); got.Category != tt.category {
			t.Errorf("Classify(%d).Category = %s, want %s", tt.percentage, got.Category, tt.category)
		}
	}
}

func TestClassify_LegacyBoundaries(t *testing.T) {
	svc := NewInterpretationService("legacy")

	tests := []struct {
		percentage int
		category   string
	}{
		{19, "explore"},
		{20, "fair"},
		{34, "fair"},
		{35, "moderate"},
		{54, "moderate"},
		{55, "good"},
		{74, "good"},
		{75, "excellent"},
		{100, "excellent"},
	}

	for _, tt := range tests {
		if got := svc.Classify(tt.percentage); got.Category != tt.category {
			t.Errorf("Classify(%d).Category = %s, want %s", tt.percentage, got.Category, tt.category)
		}
	}
}

func TestClassify_AlwaysReturnsBand(t *testing.T) {
	svc := NewInterpretationService("standard")

	for pct := 0; pct <= 100; pct++ {
		interp := svc.Classify(pct)
		if interp.Category == "" || interp.CategoryLabel == "" || interp.Interpretation == "" {
			t.Fatalf("Classify(%d) returned incomplete interpretation: %+v", pct, interp)
		}
	}
}

func TestNewInterpretationService_UnknownVariantFallsBack(t *testing.T) {
	svc := NewInterpretationService("unknown")

	// Standard table: 35 is still "fair" (legacy would say "moderate")
	if got := svc.Classify(35); got.Category != "fair" {
		t.Errorf("Classify(35).Category = %s, want fair (standard table)", got.Category)
	}
}
