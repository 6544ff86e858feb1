package services

import (
	"github.com/brixon-tools/maltacheck_backend/internal/models"
)

// band is one right-open percentage range with its suitability verdict.
// UpperBound is exclusive; the final band of a table covers up to 100 inclusive.
type band struct {
	UpperBound     int
	Interpretation models.Interpretation
}

// InterpretationService classifies a percentage into one of five ordered
// suitability bands. Pure lookup; no failure mode.
type InterpretationService interface {
	Classify(percentage int) *models.Interpretation
}

// interpretationService holds one policy table
type interpretationService struct {
	bands []band
}

// NewInterpretationService creates an interpretation service for the given
// policy variant ("standard" or "legacy").
// #IMPLEMENTATION_DECISION: Two band tables exist in observed deployments
// (thresholds 20/40/60/75 vs 20/35/55/75). The variant is configuration-level
// policy, not a hardcoded truth; unknown variants fall back to standard.
func NewInterpretationService(variant string) InterpretationService {
	bands := standardBands
	if variant == "legacy" {
		bands = legacyBands
	}
	return &interpretationService{bands: bands}
}

// Classify returns the band containing the percentage. Bands are closed on
// the lower end and open on the upper end; the last band absorbs everything
// up to and including 100.
func (s *interpretationService) Classify(percentage int) *models.Interpretation {
	for i := range s.bands {
		if percentage < s.bands[i].UpperBound {
			return &s.bands[i].Interpretation
		}
	}
	last := s.bands[len(s.bands)-1]
	return &last.Interpretation
}

// standardBands is the current production table (thresholds 20/40/60/75).
var standardBands = []band{
	{
		UpperBound: 20,
		Interpretation: models.Interpretation{
			Category:       "explore",
			CategoryLabel:  "Lassen Sie uns sprechen",
			Interpretation: "Ihre Situation erfordert eine individuelle Beratung. Kontaktieren Sie uns für ein persönliches Gespräch über Ihre Möglichkeiten. Malta bietet flexible Lösungen für verschiedenste Situationen.",
		},
	},
	{
		UpperBound: 40,
		Interpretation: models.Interpretation{
			Category:       "fair",
			CategoryLabel:  "Malta könnte geeignet sein",
			Interpretation: "Malta könnte für Sie funktionieren. Eine detaillierte Einzelfallprüfung ist notwendig. Mit gezielten Anpassungen können Sie von Maltas Vorteilen profitieren.",
		},
	},
	{
		UpperBound: 60,
		Interpretation: models.Interpretation{
			Category:       "moderate",
			CategoryLabel:  "Malta ist bedingt geeignet",
			Interpretation: "Malta bietet interessante Möglichkeiten für Sie. Einzelfallprüfung empfohlen. Die Kombination aus niedrigen Steuern, EU-Mitgliedschaft und hoher Lebensqualität macht Malta attraktiv.",
		},
	},
	{
		UpperBound: 75,
		Interpretation: models.Interpretation{
			Category:       "good",
			CategoryLabel:  "Malta ist gut geeignet",
			Interpretation: "Malta bietet signifikante Vorteile für Ihre Situation. Mit der richtigen Planung ist dies ein erfolgversprechender Schritt. Wir helfen Ihnen, die optimale Struktur für Ihre spezifische Situation zu finden.",
		},
	},
	{
		UpperBound: 101,
		Interpretation: models.Interpretation{
			Category:       "excellent",
			CategoryLabel:  "Malta ist sehr gut geeignet",
			Interpretation: "Ihre Situation ist sehr gut für Malta geeignet. Sie können von vielen Vorteilen profitieren - lassen Sie uns die Details besprechen! Hohe Erfolgswahrscheinlichkeit bei korrekter Umsetzung.",
		},
	},
}

// legacyBands is the earlier deployment table (thresholds 20/35/55/75) with
// its more cautious wording for bands two through five.
var legacyBands = []band{
	{
		UpperBound: 20,
		Interpretation: models.Interpretation{
			Category:       "explore",
			CategoryLabel:  "Lassen Sie uns sprechen",
			Interpretation: "Ihre Situation erfordert eine individuelle Beratung. Kontaktieren Sie uns für ein persönliches Gespräch über Ihre Möglichkeiten.",
		},
	},
	{
		UpperBound: 35,
		Interpretation: models.Interpretation{
			Category:       "fair",
			CategoryLabel:  "Malta ist eingeschränkt geeignet",
			Interpretation: "Eine Malta-Struktur ist in Ihrer Situation nur eingeschränkt sinnvoll. Eine detaillierte Einzelfallprüfung ist zwingend notwendig, bevor weitere Schritte erfolgen.",
		},
	},
	{
		UpperBound: 55,
		Interpretation: models.Interpretation{
			Category:       "moderate",
			CategoryLabel:  "Malta ist bedingt geeignet",
			Interpretation: "Malta kann für Sie interessant sein, einzelne Faktoren sprechen jedoch dagegen. Wir empfehlen eine Einzelfallprüfung Ihrer Situation.",
		},
	},
	{
		UpperBound: 75,
		Interpretation: models.Interpretation{
			Category:       "good",
			CategoryLabel:  "Malta ist gut geeignet",
			Interpretation: "Malta bietet deutliche Vorteile für Ihre Situation. Mit der richtigen Planung ist dies ein erfolgversprechender Schritt.",
		},
	},
	{
		UpperBound: 101,
		Interpretation: models.Interpretation{
			Category:       "excellent",
			CategoryLabel:  "Malta ist sehr gut geeignet",
			Interpretation: "Ihre Situation passt sehr gut zu einer Malta-Struktur. Lassen Sie uns die Details besprechen.",
		},
	},
}
