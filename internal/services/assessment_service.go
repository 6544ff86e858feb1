package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/brixon-tools/maltacheck_backend/internal/auth"
	"github.com/brixon-tools/maltacheck_backend/internal/config"
	"github.com/brixon-tools/maltacheck_backend/internal/language"
	"github.com/brixon-tools/maltacheck_backend/internal/models"
)

// RateLimiter admits or rejects a request for the given client identifier
// #INTEGRATION_POINT: ratelimit.Limiter in production, mocks in tests
type RateLimiter interface {
	CheckAndRecord(ctx context.Context, clientID string) (bool, error)
}

// SubmissionInput is one raw assessment submission as received by the handler
type SubmissionInput struct {
	Nonce   string
	RawData string
	Meta    models.SubmissionMeta
}

// SubmissionOutcome is the scored and classified result of a submission
type SubmissionOutcome struct {
	Score          *models.ScoreResult
	Interpretation *models.Interpretation
	Language       string
}

// rawSubmission mirrors the JSON document in the `data` form field.
// Answers stays raw so a missing key and a wrong-typed value can be told apart.
type rawSubmission struct {
	Answers   json.RawMessage `json:"answers"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone"`
	Company   string          `json:"company"`
	Language  string          `json:"language"`
}

// AssessmentService processes assessment submissions end to end
type AssessmentService interface {
	Submit(ctx context.Context, input SubmissionInput) (*SubmissionOutcome, error)
}

// assessmentService implements the strictly sequential submission pipeline:
// token check, rate check, parse, validate, sanitize, score, classify,
// best-effort notify.
type assessmentService struct {
	cfg            *config.Config
	nonces         auth.NonceService
	limiter        RateLimiter
	scoring        ScoringService
	interpretation InterpretationService
	webhook        WebhookService
}

// NewAssessmentService wires the submission pipeline.
func NewAssessmentService(
	cfg *config.Config,
	nonces auth.NonceService,
	limiter RateLimiter,
	scoring ScoringService,
	interpretation InterpretationService,
	webhook WebhookService,
) AssessmentService {
	return &assessmentService{
		cfg:            cfg,
		nonces:         nonces,
		limiter:        limiter,
		scoring:        scoring,
		interpretation: interpretation,
		webhook:        webhook,
	}
}

// Submit runs the pipeline. Terminal failures map onto the error taxonomy in
// models; the handler translates groups into HTTP statuses.
// #BUSINESS_RULE: A request with a bad nonce never reaches the rate limiter
// or the scoring engine - the ordering is load-bearing
func (s *assessmentService) Submit(ctx context.Context, input SubmissionInput) (*SubmissionOutcome, error) {
	// Token check
	if input.Nonce == "" {
		return nil, models.ErrNonceMissing
	}
	if err := s.nonces.Verify(input.Nonce); err != nil {
		if errors.Is(err, auth.ErrNonceExpired) {
			return nil, models.ErrNonceExpired
		}
		return nil, models.ErrNonceInvalid
	}

	// Rate check
	allowed, err := s.limiter.CheckAndRecord(ctx, input.Meta.IP)
	if err != nil {
		// Store outage: admit rather than block every submission, but say so
		log.Printf("[RATELIMIT] store error, admitting request: %v", err)
	} else if !allowed {
		return nil, models.ErrRateLimitExceeded
	}

	// Parse
	if input.RawData == "" {
		return nil, models.ErrNoData
	}
	var raw rawSubmission
	if err := json.Unmarshal([]byte(input.RawData), &raw); err != nil {
		return nil, models.ErrInvalidJSON
	}

	// Validate: answers must be present and decode to an object
	if len(raw.Answers) == 0 || string(raw.Answers) == "null" {
		return nil, models.ErrMissingAnswers
	}
	var rawAnswers map[string]interface{}
	if err := json.Unmarshal(raw.Answers, &rawAnswers); err != nil {
		return nil, models.ErrMissingAnswers
	}

	// Sanitize
	answers := SanitizeAnswers(rawAnswers)
	contact := SanitizeContact(models.Contact{
		Email:     raw.Email,
		FirstName: raw.FirstName,
		LastName:  raw.LastName,
		Phone:     raw.Phone,
		Company:   raw.Company,
	})
	lang := language.Normalize(raw.Language, s.cfg.SupportedLanguages, s.cfg.DefaultLanguage)

	// Score and classify
	scoreResult := s.scoring.Score(answers)
	interp := s.interpretation.Classify(scoreResult.Percentage)

	if s.cfg.DebugMode {
		log.Printf("[ASSESS] Score: %d%% (%s) for %s", scoreResult.Percentage, interp.Category, contact.Email)
	}

	// Notify, fire-and-forget: webhook latency must never inflate the
	// caller-visible response time, and a failed delivery never alters the
	// caller's result
	if s.cfg.WebhookEnabled && s.cfg.WebhookURL != "" {
		meta := input.Meta
		go func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), s.cfg.WebhookTimeout)
			defer cancel()
			s.webhook.Send(sendCtx, contact, answers, scoreResult, interp, lang, meta)
		}()
	}

	return &SubmissionOutcome{
		Score:          scoreResult,
		Interpretation: interp,
		Language:       lang,
	}, nil
}
