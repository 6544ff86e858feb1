// Package catalog holds the static Malta-suitability question catalog.
// #SEED_DATA: 12 weighted single-choice questions, compiled in at build time
// #DATA_ASSUMPTION: Question texts are in German (the submission's source
// language); the frontend translates them via hosted JSON files
package catalog

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/brixon-tools/maltacheck_backend/internal/models"
)

// questions is the fixed assessment catalog. Order is significant for the
// detail list's sequence only, not for the numeric result.
// Changes here must stay in sync with the frontend and its translation files.
var questions = []models.Question{
	{
		ID:     "q001",
		Text:   "Was beschreibt Ihre geschäftliche Situation am besten?",
		Weight: 2.0,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Ich plane, in Malta ein komplett neues Business zu starten", Score: 8},
			{Value: "2", Label: "Ich habe ein bestehendes Business (unter 500k EUR Umsatz)", Score: 6},
			{Value: "3", Label: "Ich habe ein etabliertes Business (500k - 2 Mio. EUR)", Score: 8},
			{Value: "4", Label: "Ich habe ein größeres Business (über 2 Mio. EUR)", Score: 10},
			{Value: "5", Label: "Ich möchte mich erstmal informieren / keine Angabe", Score: 7},
		},
	},
	{
		ID:     "q002",
		Text:   "Wie international ist Ihr Business ausgerichtet (oder soll es sein)?",
		Weight: 1.5,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Neues Business - plane internationale Ausrichtung", Score: 8},
			{Value: "2", Label: "Hauptsächlich lokal, aber offen für internationale Expansion", Score: 6},
			{Value: "3", Label: "Mix aus lokalen und internationalen Kunden", Score: 8},
			{Value: "4", Label: "Vollständig international / digitales Business", Score: 10},
			{Value: "5", Label: "Noch in Planung / keine Angabe", Score: 7},
		},
	},
	{
		ID:     "q003",
		Text:   "Sind Sie bereit, nach Malta umzuziehen und dort mindestens 183 Tage pro Jahr zu verbringen?",
		Weight: 2.0,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Nein, auf keinen Fall", Score: 3},
			{Value: "2", Label: "Ungern, nur wenn unbedingt nötig", Score: 6},
			{Value: "3", Label: "Ja, aber nur vorübergehend (2-3 Jahre)", Score: 8},
			{Value: "4", Label: "Ja, langfristig bereit", Score: 10},
		},
	},
	{
		ID:     "q004",
		Text:   "Welches Geschäftsmodell beschreibt Ihr Unternehmen am besten?",
		Weight: 1.5,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Lokale Dienstleistung mit persönlichem Kundenkontakt", Score: 4},
			{Value: "2", Label: "E-Commerce / Handel", Score: 7},
			{Value: "3", Label: "SaaS / Digitale Produkte", Score: 9},
			{Value: "4", Label: "Holding / Beteiligungsgesellschaft", Score: 10},
			{Value: "5", Label: "Beratung / Professional Services (ortsunabhängig)", Score: 8},
		},
	},
	{
		ID:     "q005",
		Text:   "Können Sie echte wirtschaftliche Substanz in Malta aufbauen (Büro, Mitarbeiter, Management)?",
		Weight: 2.0,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Nein, nur Briefkastenfirma ohne Aktivität", Score: 3},
			{Value: "2", Label: "Minimale Substanz (Virtual Office, keine Mitarbeiter)", Score: 5},
			{Value: "3", Label: "Moderate Substanz (kleines Büro, 1-2 lokale Teilzeitmitarbeiter)", Score: 8},
			{Value: "4", Label: "Volle Substanz (eigenes Büro, mehrere Vollzeitmitarbeiter, Management vor Ort)", Score: 10},
		},
	},
	{
		ID:     "q006",
		Text:   "Sind Sie bereit, höhere Compliance-Anforderungen auf sich zu nehmen?",
		Weight: 1.5,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Nein, ich bevorzuge minimale Compliance", Score: 4},
			{Value: "2", Label: "Unsicher / möchte mehr erfahren", Score: 6},
			{Value: "3", Label: "Ja, bei angemessenem Nutzen", Score: 8},
			{Value: "4", Label: "Ja, volle Compliance ist mir wichtig", Score: 10},
		},
	},
	{
		ID:     "q007",
		Text:   "Haben Sie bereits Niederlassungen in anderen Ländern oder planen Sie diese?",
		Weight: 1.5,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Nein, und nicht geplant", Score: 6},
			{Value: "2", Label: "Noch nicht, aber für die Zukunft geplant", Score: 7},
			{Value: "3", Label: "Ja, eine Niederlassung in einem weiteren Land", Score: 8},
			{Value: "4", Label: "Ja, mehrere Niederlassungen / Tochtergesellschaften", Score: 10},
			{Value: "5", Label: "Unsicher / keine Angabe", Score: 6},
		},
	},
	{
		ID:     "q008",
		Text:   "Wie würden Sie Ihre Profitabilität einschätzen?",
		Weight: 1.5,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Noch nicht profitabel / Start-up Phase", Score: 5},
			{Value: "2", Label: "Break-even oder leicht profitabel", Score: 7},
			{Value: "3", Label: "Solide Profitabilität", Score: 9},
			{Value: "4", Label: "Sehr profitabel", Score: 10},
			{Value: "5", Label: "Keine Angabe", Score: 6},
		},
	},
	{
		ID:     "q009",
		Text:   "Wie wichtig ist Ihnen EU-Marktzugang?",
		Weight: 1.5,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Nicht wichtig / fokussiere auf Nicht-EU", Score: 6},
			{Value: "2", Label: "Etwas wichtig / nice to have", Score: 7},
			{Value: "3", Label: "Wichtig / plane EU-Expansion", Score: 9},
			{Value: "4", Label: "Sehr wichtig / kritisch für mein Geschäftsmodell", Score: 10},
		},
	},
	{
		ID:     "q010",
		Text:   "Haben Sie bereits Erfahrung mit internationalen Unternehmensstrukturen?",
		Weight: 1.0,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Nein, vollständig neu für mich", Score: 6},
			{Value: "2", Label: "Etwas Erfahrung", Score: 7},
			{Value: "3", Label: "Gute Erfahrung mit internationalen Strukturen", Score: 9},
			{Value: "4", Label: "Umfangreiche Erfahrung", Score: 10},
		},
	},
	{
		ID:     "q011",
		Text:   "Wie wichtig ist Ihnen Privatsphäre / Diskretion?",
		Weight: 1.0,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Nicht wichtig / volle Transparenz ist OK", Score: 8},
			{Value: "2", Label: "Etwas wichtig", Score: 7},
			{Value: "3", Label: "Wichtig / möchte diskrete Strukturen", Score: 7},
			{Value: "4", Label: "Sehr wichtig / maximale Diskretion gewünscht", Score: 6},
		},
	},
	{
		ID:     "q012",
		Text:   "Welche Zeitschiene haben Sie für die Umsetzung?",
		Weight: 1.0,
		Options: []models.QuestionOption{
			{Value: "1", Label: "Informationsphase / über 12 Monate", Score: 7},
			{Value: "2", Label: "Mittelfristig (6-12 Monate)", Score: 8},
			{Value: "3", Label: "Kurzfristig (3-6 Monate)", Score: 9},
			{Value: "4", Label: "Sofort / unter 3 Monaten", Score: 10},
		},
	},
}

// All returns every catalog question in display order.
func All() []models.Question {
	return questions
}

// ByID returns the question with the given identifier.
// Callers treat a not-found as "skip this answer".
func ByID(id string) (*models.Question, error) {
	q, found := lo.Find(questions, func(q models.Question) bool {
		return q.ID == id
	})
	if !found {
		return nil, models.ErrQuestionNotFound
	}
	return &q, nil
}

// Validate checks the catalog invariants: unique identifiers, positive
// weights, and at least one option per question. Called once at startup.
func Validate() error {
	seen := make(map[string]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
		if q.Weight <= 0 {
			return fmt.Errorf("question %s has non-positive weight %v", q.ID, q.Weight)
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("question %s has no options", q.ID)
		}
	}
	return nil
}
